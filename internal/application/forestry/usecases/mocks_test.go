package usecases

import (
	"context"
)

type mockRepository[E any] struct {
	CreateFunc  func(ctx context.Context, entity *E) error
	GetByIDFunc func(ctx context.Context, id uint) (*E, error)
	UpdateFunc  func(ctx context.Context, entity *E) error
	ListFunc    func(ctx context.Context) ([]*E, error)
	FindByFunc  func(ctx context.Context, field string, value any) ([]*E, error)
}

func (m *mockRepository[E]) Create(ctx context.Context, entity *E) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	return nil
}

func (m *mockRepository[E]) GetByID(ctx context.Context, id uint) (*E, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository[E]) Update(ctx context.Context, entity *E) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockRepository[E]) List(ctx context.Context) ([]*E, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*E{}, nil
}

func (m *mockRepository[E]) FindBy(ctx context.Context, field string, value any) ([]*E, error) {
	if m.FindByFunc != nil {
		return m.FindByFunc(ctx, field, value)
	}
	return []*E{}, nil
}
