package usecases

import (
	"context"
	"fmt"
	"time"

	"forestdash/internal/domain/forestry"
	"forestdash/internal/shared/biztime"
	"forestdash/internal/shared/errors"
	"forestdash/internal/shared/logger"
)

// BuildFunc turns a validated create request into a new entity.
type BuildFunc[C, E any] func(cmd C, now time.Time) (*E, error)

// PatchFunc merges the present fields of a patch into entity and re-applies
// derivations and status transitions.
type PatchFunc[P, E any] func(entity *E, patch P, now time.Time) error

func recordID(entity any) uint {
	if r, ok := entity.(forestry.Record); ok {
		return r.GetID()
	}
	return 0
}

type CreateUseCase[C, E any] struct {
	entity string
	repo   forestry.Repository[E]
	build  BuildFunc[C, E]
	now    func() time.Time
	logger logger.Interface
}

func NewCreateUseCase[C, E any](
	entity string,
	repo forestry.Repository[E],
	build BuildFunc[C, E],
	logger logger.Interface,
) *CreateUseCase[C, E] {
	return &CreateUseCase[C, E]{
		entity: entity,
		repo:   repo,
		build:  build,
		now:    biztime.NowUTC,
		logger: logger,
	}
}

func (uc *CreateUseCase[C, E]) Execute(ctx context.Context, cmd C) (*E, error) {
	uc.logger.Infow("executing create use case", "entity", uc.entity)

	created, err := uc.build(cmd, uc.now())
	if err != nil {
		uc.logger.Warnw("invalid create command", "entity", uc.entity, "error", err)
		return nil, err
	}

	if err := uc.repo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to create entity", "entity", uc.entity, "error", err)
		return nil, err
	}

	uc.logger.Infow("entity created successfully", "entity", uc.entity, "id", recordID(created))
	return created, nil
}

type GetUseCase[E any] struct {
	entity string
	repo   forestry.Repository[E]
	logger logger.Interface
}

func NewGetUseCase[E any](entity string, repo forestry.Repository[E], logger logger.Interface) *GetUseCase[E] {
	return &GetUseCase[E]{entity: entity, repo: repo, logger: logger}
}

// Execute returns a not-found error when no record has the given id.
func (uc *GetUseCase[E]) Execute(ctx context.Context, id uint) (*E, error) {
	found, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get entity", "entity", uc.entity, "id", id, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s not found", uc.entity), fmt.Sprintf("id=%d", id))
	}
	return found, nil
}

type UpdateUseCase[P, E any] struct {
	entity string
	repo   forestry.Repository[E]
	apply  PatchFunc[P, E]
	now    func() time.Time
	logger logger.Interface
}

func NewUpdateUseCase[P, E any](
	entity string,
	repo forestry.Repository[E],
	apply PatchFunc[P, E],
	logger logger.Interface,
) *UpdateUseCase[P, E] {
	return &UpdateUseCase[P, E]{
		entity: entity,
		repo:   repo,
		apply:  apply,
		now:    biztime.NowUTC,
		logger: logger,
	}
}

// Execute loads the record, merges the patch and saves the result. Fields
// absent from the patch keep their stored values.
func (uc *UpdateUseCase[P, E]) Execute(ctx context.Context, id uint, patch P) (*E, error) {
	uc.logger.Infow("executing update use case", "entity", uc.entity, "id", id)

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load entity for update", "entity", uc.entity, "id", id, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s not found", uc.entity), fmt.Sprintf("id=%d", id))
	}

	if err := uc.apply(existing, patch, uc.now()); err != nil {
		uc.logger.Warnw("invalid update command", "entity", uc.entity, "id", id, "error", err)
		return nil, err
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update entity", "entity", uc.entity, "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("entity updated successfully", "entity", uc.entity, "id", id)
	return existing, nil
}

type ListUseCase[E any] struct {
	entity string
	repo   forestry.Repository[E]
	logger logger.Interface
}

func NewListUseCase[E any](entity string, repo forestry.Repository[E], logger logger.Interface) *ListUseCase[E] {
	return &ListUseCase[E]{entity: entity, repo: repo, logger: logger}
}

func (uc *ListUseCase[E]) Execute(ctx context.Context) ([]*E, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list entities", "entity", uc.entity, "error", err)
		return nil, err
	}
	return items, nil
}

// FindByUseCase is an equality filter on one fixed field.
type FindByUseCase[V, E any] struct {
	entity string
	field  string
	repo   forestry.Repository[E]
	logger logger.Interface
}

func NewFindByUseCase[V, E any](entity, field string, repo forestry.Repository[E], logger logger.Interface) *FindByUseCase[V, E] {
	return &FindByUseCase[V, E]{entity: entity, field: field, repo: repo, logger: logger}
}

func (uc *FindByUseCase[V, E]) Execute(ctx context.Context, value V) ([]*E, error) {
	items, err := uc.repo.FindBy(ctx, uc.field, value)
	if err != nil {
		uc.logger.Errorw("failed to filter entities",
			"entity", uc.entity,
			"field", uc.field,
			"value", value,
			"error", err,
		)
		return nil, err
	}
	return items, nil
}
