package forestry

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/application/forestry/dto"
	domain "forestdash/internal/domain/forestry"
	"forestdash/internal/interfaces/http/handlers/testutil"
	"forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateOfficerUC struct {
	got    *dto.CreateOfficerRequest
	result *domain.Officer
	err    error
}

func (m *mockCreateOfficerUC) Execute(_ context.Context, cmd dto.CreateOfficerRequest) (*domain.Officer, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockGetOfficerUC struct {
	result *domain.Officer
	err    error
}

func (m *mockGetOfficerUC) Execute(_ context.Context, _ uint) (*domain.Officer, error) {
	return m.result, m.err
}

type mockUpdateOfficerUC struct {
	gotID  uint
	got    *dto.UpdateOfficerRequest
	result *domain.Officer
	err    error
}

func (m *mockUpdateOfficerUC) Execute(_ context.Context, id uint, patch dto.UpdateOfficerRequest) (*domain.Officer, error) {
	m.gotID = id
	m.got = &patch
	return m.result, m.err
}

type mockListOfficersUC struct {
	result []*domain.Officer
	err    error
}

func (m *mockListOfficersUC) Execute(_ context.Context) ([]*domain.Officer, error) {
	return m.result, m.err
}

type officerHandlerMocks struct {
	create *mockCreateOfficerUC
	get    *mockGetOfficerUC
	update *mockUpdateOfficerUC
	list   *mockListOfficersUC
}

func newOfficerHandler() (*CRUDHandler[dto.CreateOfficerRequest, dto.UpdateOfficerRequest, domain.Officer], *officerHandlerMocks) {
	m := &officerHandlerMocks{
		create: &mockCreateOfficerUC{},
		get:    &mockGetOfficerUC{},
		update: &mockUpdateOfficerUC{},
		list:   &mockListOfficersUC{},
	}
	h := NewCRUDHandler[dto.CreateOfficerRequest, dto.UpdateOfficerRequest, domain.Officer](
		"officer", m.create, m.get, m.update, m.list, logger.NewNopLogger(),
	)
	return h, m
}

const validOfficerBody = `{
	"name": "Anita Rao",
	"designation": "Range Forest Officer",
	"range": "Sakleshpur",
	"email": "anita.rao@forest.gov.in",
	"phone": "+91-9000000001",
	"circle": "Hassan",
	"techScore": 82,
	"id": 99
}`

// =====================================================================
// Create
// =====================================================================

func TestCRUDHandler_Create(t *testing.T) {
	t.Run("valid body returns 201 and drops unknown fields", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.create.result = &domain.Officer{Base: domain.Base{ID: 1}, Name: "Anita Rao"}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/officers", validOfficerBody)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, m.create.got)
		assert.Equal(t, 82, m.create.got.TechScore)

		var officer domain.Officer
		require.NoError(t, testutil.DecodeData(w, &officer))
		assert.Equal(t, uint(1), officer.ID)
	})

	t.Run("missing required fields are listed", func(t *testing.T) {
		h, m := newOfficerHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/officers", `{"name":"Anita Rao"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, m.create.got)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "validation_error", resp.Error.Type)
		assert.ElementsMatch(t, []string{"designation", "range", "email", "phone", "circle"}, resp.Error.Fields)
	})

	t.Run("wrong type names the field", func(t *testing.T) {
		h, _ := newOfficerHandler()
		body := `{"name":"A","designation":"B","range":"C","email":"a@b.in","phone":"1","circle":"D","techScore":"high"}`
		c, w := testutil.NewTestContext(http.MethodPost, "/api/officers", body)

		h.Create(c)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"techScore"}, resp.Error.Fields)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.create.err = errors.NewConstraintError("officer with this email already exists")
		c, w := testutil.NewTestContext(http.MethodPost, "/api/officers", validOfficerBody)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// =====================================================================
// Get / List
// =====================================================================

func TestCRUDHandler_Get(t *testing.T) {
	t.Run("non-numeric id", func(t *testing.T) {
		h, _ := newOfficerHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/officers/abc", nil)
		testutil.SetURLParam(c, "id", "abc")

		h.Get(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing record", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.get.err = errors.NewNotFoundError("officer not found")
		c, w := testutil.NewTestContext(http.MethodGet, "/api/officers/5", nil)
		testutil.SetURLParam(c, "id", "5")

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.get.result = &domain.Officer{Base: domain.Base{ID: 5}, Email: "x@forest.gov.in"}
		c, w := testutil.NewTestContext(http.MethodGet, "/api/officers/5", nil)
		testutil.SetURLParam(c, "id", "5")

		h.Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"x@forest.gov.in"`)
	})
}

func TestCRUDHandler_ListReturnsEmptyArray(t *testing.T) {
	h, m := newOfficerHandler()
	m.list.result = []*domain.Officer{}
	c, w := testutil.NewTestContext(http.MethodGet, "/api/officers", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestCRUDHandler_ListHidesInternalDetails(t *testing.T) {
	h, m := newOfficerHandler()
	m.list.err = errors.NewInternalError("database unavailable", "dial tcp 10.0.0.5:3306")
	c, w := testutil.NewTestContext(http.MethodGet, "/api/officers", nil)

	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

// =====================================================================
// Update
// =====================================================================

func TestCRUDHandler_Update(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.update.result = &domain.Officer{Base: domain.Base{ID: 3}, TechScore: 91}
		c, w := testutil.NewTestContext(http.MethodPut, "/api/officers/3", `{"techScore":91}`)
		testutil.SetURLParam(c, "id", "3")

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), m.update.gotID)
		require.NotNil(t, m.update.got.TechScore)
		assert.Equal(t, 91, *m.update.got.TechScore)
		assert.Nil(t, m.update.got.Name)
	})

	t.Run("non-writable field is rejected", func(t *testing.T) {
		h, m := newOfficerHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/officers/3", `{"techScore":91,"createdAt":"2020-01-01T00:00:00Z"}`)
		testutil.SetURLParam(c, "id", "3")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, m.update.got)
		assert.Contains(t, w.Body.String(), "createdAt")
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		h, m := newOfficerHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/officers/3", `{}`)
		testutil.SetURLParam(c, "id", "3")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, m.update.got)
	})

	t.Run("invalid email in patch", func(t *testing.T) {
		h, _ := newOfficerHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/officers/3", `{"email":"not-an-email"}`)
		testutil.SetURLParam(c, "id", "3")

		h.Update(c)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"email"}, resp.Error.Fields)
	})

	t.Run("missing record", func(t *testing.T) {
		h, m := newOfficerHandler()
		m.update.err = errors.NewNotFoundError("officer not found")
		c, w := testutil.NewTestContext(http.MethodPut, "/api/officers/3", `{"isActive":false}`)
		testutil.SetURLParam(c, "id", "3")

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
