package usecases

import (
	"context"
)

type CreateExecutor[C, E any] interface {
	Execute(ctx context.Context, cmd C) (*E, error)
}

type GetExecutor[E any] interface {
	Execute(ctx context.Context, id uint) (*E, error)
}

type UpdateExecutor[P, E any] interface {
	Execute(ctx context.Context, id uint, patch P) (*E, error)
}

type ListExecutor[E any] interface {
	Execute(ctx context.Context) ([]*E, error)
}

type FindExecutor[V, E any] interface {
	Execute(ctx context.Context, value V) ([]*E, error)
}
