package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"forestdash/internal/domain/forestry"
	"forestdash/internal/shared/db"
	"forestdash/internal/shared/errors"
	"forestdash/internal/shared/mapper"
)

// GormRepository implements forestry.Repository for entity E stored as model M.
type GormRepository[E any, M any] struct {
	db         *gorm.DB
	mapper     *mapper.Mapper[*E, *M]
	entityName string
}

func NewGormRepository[E any, M any](gdb *gorm.DB, m *mapper.Mapper[*E, *M], entityName string) *GormRepository[E, M] {
	return &GormRepository[E, M]{
		db:         gdb,
		mapper:     m,
		entityName: entityName,
	}
}

func (r *GormRepository[E, M]) Create(ctx context.Context, entity *E) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return r.translate("create", err)
	}

	*entity = *r.mapper.ToDomain(model)
	return nil
}

func (r *GormRepository[E, M]) GetByID(ctx context.Context, id uint) (*E, error) {
	var model M
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id).Limit(1).Find(&model)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.entityName, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.mapper.ToDomain(&model), nil
}

// Update writes every column of entity except id and created_at. The row
// must already exist; callers load it before merging changes.
func (r *GormRepository[E, M]) Update(ctx context.Context, entity *E) error {
	record, ok := any(entity).(forestry.Record)
	if !ok {
		return fmt.Errorf("%s does not expose an id", r.entityName)
	}

	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(new(M)).
		Where("id = ?", record.GetID()).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model).Error
	if err != nil {
		return r.translate("update", err)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *GormRepository[E, M]) List(ctx context.Context) ([]*E, error) {
	var models []*M
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.entityName, err)
	}

	return r.mapper.ToDomainList(models), nil
}

func (r *GormRepository[E, M]) FindBy(ctx context.Context, field string, value any) ([]*E, error) {
	// Only whitelisted column names reach the query string.
	if !forestry.IsFilterableField(field) {
		return nil, fmt.Errorf("field %q is not filterable", field)
	}

	var models []*M
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.entityName, field, err)
	}

	return r.mapper.ToDomainList(models), nil
}

func (r *GormRepository[E, M]) translate(op string, err error) error {
	switch {
	case errors.IsDuplicateError(err):
		return errors.NewConstraintError(
			fmt.Sprintf("%s violates a uniqueness constraint", r.entityName),
			err.Error(),
		)
	case errors.IsForeignKeyError(err):
		return errors.NewReferentialError(
			fmt.Sprintf("%s references a record that does not exist", r.entityName),
			err.Error(),
		)
	}
	return fmt.Errorf("failed to %s %s: %w", op, r.entityName, err)
}
