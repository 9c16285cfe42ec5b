package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
	apperrors "forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

func TestCreateUseCase_RepositoryErrorIsReturned(t *testing.T) {
	repo := &mockRepository[forestry.Officer]{
		CreateFunc: func(ctx context.Context, entity *forestry.Officer) error {
			return apperrors.NewConstraintError("officer already exists")
		},
	}
	uc := NewCreateUseCase("officer", forestry.OfficerRepository(repo), buildOfficer, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), dto.CreateOfficerRequest{Name: "A", Email: "a@forest.gov.in"})

	assert.Nil(t, got)
	assert.True(t, apperrors.IsConstraintError(err))
}

func TestCreateUseCase_UsesClock(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	var saved *forestry.FireAlert
	repo := &mockRepository[forestry.FireAlert]{
		CreateFunc: func(ctx context.Context, entity *forestry.FireAlert) error {
			entity.ID = 7
			saved = entity
			return nil
		},
	}
	uc := NewCreateUseCase("fire alert", forestry.FireAlertRepository(repo), buildFireAlert, logger.NewNopLogger())
	uc.now = func() time.Time { return fixed }

	got, err := uc.Execute(context.Background(), dto.CreateFireAlertRequest{RangeID: 1, Location: "Ridge", Severity: "high"})

	require.NoError(t, err)
	assert.Same(t, saved, got)
	assert.Equal(t, fixed, got.DetectedAt)
	assert.Equal(t, uint(7), got.ID)
}

func TestGetUseCase(t *testing.T) {
	t.Run("missing record is not found", func(t *testing.T) {
		uc := NewGetUseCase("permit", forestry.PermitRepository(&mockRepository[forestry.Permit]{}), logger.NewNopLogger())

		got, err := uc.Execute(context.Background(), 99)

		assert.Nil(t, got)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("storage failure passes through", func(t *testing.T) {
		cause := errors.New("connection reset")
		repo := &mockRepository[forestry.Permit]{
			GetByIDFunc: func(ctx context.Context, id uint) (*forestry.Permit, error) { return nil, cause },
		}
		uc := NewGetUseCase("permit", forestry.PermitRepository(repo), logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), 1)

		assert.ErrorIs(t, err, cause)
	})
}

func TestUpdateUseCase_MissingRecordIsNotFound(t *testing.T) {
	updated := false
	repo := &mockRepository[forestry.Officer]{
		UpdateFunc: func(ctx context.Context, entity *forestry.Officer) error {
			updated = true
			return nil
		},
	}
	uc := NewUpdateUseCase("officer", forestry.OfficerRepository(repo), applyOfficerPatch, logger.NewNopLogger())
	name := "New"

	_, err := uc.Execute(context.Background(), 3, dto.UpdateOfficerRequest{Name: &name})

	assert.True(t, apperrors.IsNotFoundError(err))
	assert.False(t, updated)
}

func TestUpdateUseCase_InvalidPatchIsNotSaved(t *testing.T) {
	updated := false
	repo := &mockRepository[forestry.FireAlert]{
		GetByIDFunc: func(ctx context.Context, id uint) (*forestry.FireAlert, error) {
			return &forestry.FireAlert{Base: forestry.Base{ID: id}, Status: "active"}, nil
		},
		UpdateFunc: func(ctx context.Context, entity *forestry.FireAlert) error {
			updated = true
			return nil
		},
	}
	uc := NewUpdateUseCase("fire alert", forestry.FireAlertRepository(repo), applyFireAlertPatch, logger.NewNopLogger())
	status := "extinguished"

	_, err := uc.Execute(context.Background(), 1, dto.UpdateFireAlertRequest{Status: &status})

	require.Error(t, err)
	assert.Equal(t, []string{"status"}, apperrors.GetAppError(err).Fields)
	assert.False(t, updated)
}

func TestFindByUseCase_PassesFieldAndValue(t *testing.T) {
	var gotField string
	var gotValue any
	repo := &mockRepository[forestry.PlantationRecord]{
		FindByFunc: func(ctx context.Context, field string, value any) ([]*forestry.PlantationRecord, error) {
			gotField, gotValue = field, value
			return []*forestry.PlantationRecord{}, nil
		},
	}
	uc := NewFindByUseCase[uint]("plantation record", forestry.FieldRangeID, forestry.PlantationRecordRepository(repo), logger.NewNopLogger())

	items, err := uc.Execute(context.Background(), 4)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, forestry.FieldRangeID, gotField)
	assert.Equal(t, uint(4), gotValue)
}
