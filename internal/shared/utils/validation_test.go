package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sampleCreate struct {
	Name     string `json:"name" binding:"required,max=20,nomarkup"`
	Severity string `json:"severity" binding:"required,oneof=low medium high"`
	Score    int    `json:"score" binding:"gte=0,lte=100"`
}

type samplePatch struct {
	Name     *string `json:"name" binding:"omitempty,min=1,nomarkup"`
	Severity *string `json:"severity" binding:"omitempty,oneof=low medium high"`
	Score    *int    `json:"score" binding:"omitempty,gte=0,lte=100"`
}

func newJSONContext(method, body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindJSON(t *testing.T) {
	t.Run("unknown fields are dropped", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, `{"name":"Ravi","severity":"low","score":10,"extra":true}`)
		require.NoError(t, BindJSON(c, &req))
		assert.Equal(t, "Ravi", req.Name)
	})

	t.Run("wrong primitive type names the field", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, `{"name":"Ravi","severity":"low","score":"ten"}`)
		err := BindJSON(c, &req)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, []string{"score"}, errors.GetAppError(err).Fields)
	})

	t.Run("missing required fields are listed", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, `{"score":10}`)
		err := BindJSON(c, &req)
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"name", "severity"}, errors.GetAppError(err).Fields)
	})

	t.Run("closed enum rejects unexpected strings", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, `{"name":"Ravi","severity":"catastrophic"}`)
		err := BindJSON(c, &req)
		require.Error(t, err)
		assert.Equal(t, []string{"severity"}, errors.GetAppError(err).Fields)
	})

	t.Run("markup is rejected", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, `{"name":"<b>Ravi</b>","severity":"low"}`)
		err := BindJSON(c, &req)
		require.Error(t, err)
		assert.Equal(t, []string{"name"}, errors.GetAppError(err).Fields)
	})

	t.Run("empty body", func(t *testing.T) {
		var req sampleCreate
		c := newJSONContext(http.MethodPost, ``)
		err := BindJSON(c, &req)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestBindPatchJSON(t *testing.T) {
	t.Run("subset of fields", func(t *testing.T) {
		var req samplePatch
		c := newJSONContext(http.MethodPut, `{"score":42}`)
		require.NoError(t, BindPatchJSON(c, &req))
		require.NotNil(t, req.Score)
		assert.Equal(t, 42, *req.Score)
		assert.Nil(t, req.Name)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		var req samplePatch
		c := newJSONContext(http.MethodPut, `{"score":42,"id":9}`)
		err := BindPatchJSON(c, &req)
		require.Error(t, err)
		assert.Equal(t, []string{"id"}, errors.GetAppError(err).Fields)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		var req samplePatch
		c := newJSONContext(http.MethodPut, `{}`)
		err := BindPatchJSON(c, &req)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("present fields are validated", func(t *testing.T) {
		var req samplePatch
		c := newJSONContext(http.MethodPut, `{"score":101}`)
		err := BindPatchJSON(c, &req)
		require.Error(t, err)
		assert.Equal(t, []string{"score"}, errors.GetAppError(err).Fields)
	})
}

func TestParseUintParam(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "17"}, {Key: "bad", Value: "abc"}, {Key: "zero", Value: "0"}}

	id, err := ParseUintParam(c, "id", "officer")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	_, err = ParseUintParam(c, "bad", "officer")
	assert.True(t, errors.IsValidationError(err))

	_, err = ParseUintParam(c, "zero", "officer")
	assert.True(t, errors.IsValidationError(err))
}

func TestErrorResponseWithError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, errors.NewAggregationError(assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, string(errors.ErrorTypeAggregation), resp.Error.Type)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestErrorResponseWithError_UnknownErrorIsInternal(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.ErrorTypeInternal))
}
