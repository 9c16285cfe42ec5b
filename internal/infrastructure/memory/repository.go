// Package memory provides map-backed repositories that honour the same
// contract as the relational ones. They back the "memory" database driver
// and use case tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"forestdash/internal/domain/forestry"
	"forestdash/internal/shared/errors"
)

// record constrains E so that *E is a stored forestry entity.
type record[E any] interface {
	*E
	forestry.Record
}

// Reference declares that field of E must name an existing row in target.
type Reference[E any] struct {
	Name   string
	Value  func(*E) *uint
	Exists func(ctx context.Context, id uint) (bool, error)
}

// Repository is an in-memory forestry.Repository. Rows are copied on every
// write and read. Pointer fields are copied too when the entity registers
// them with WithDeepCopy, otherwise they stay shared with the caller.
type Repository[E any, P record[E]] struct {
	mu         sync.RWMutex
	rows       map[uint]E
	order      []uint
	nextID     uint
	entityName string
	uniqueKey  func(*E) string
	references []Reference[E]
	detach     func(*E)
	now        func() time.Time
}

type Option[E any] func(*options[E])

type options[E any] struct {
	uniqueKey  func(*E) string
	references []Reference[E]
	detach     func(*E)
	now        func() time.Time
}

// WithUnique rejects writes whose key collides with another row.
func WithUnique[E any](key func(*E) string) Option[E] {
	return func(o *options[E]) { o.uniqueKey = key }
}

// WithReference enforces a foreign key on writes.
func WithReference[E any](ref Reference[E]) Option[E] {
	return func(o *options[E]) { o.references = append(o.references, ref) }
}

// WithDeepCopy registers detach, which must give every pointer field of a
// shallow copy its own allocation.
func WithDeepCopy[E any](detach func(*E)) Option[E] {
	return func(o *options[E]) { o.detach = detach }
}

// clonePtr returns a fresh pointer to a copy of *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// WithClock overrides the creation timestamp source.
func WithClock[E any](now func() time.Time) Option[E] {
	return func(o *options[E]) { o.now = now }
}

func NewRepository[E any, P record[E]](entityName string, opts ...Option[E]) *Repository[E, P] {
	o := options[E]{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[E, P]{
		rows:       make(map[uint]E),
		entityName: entityName,
		uniqueKey:  o.uniqueKey,
		references: o.references,
		detach:     o.detach,
		now:        o.now,
	}
}

func (r *Repository[E, P]) Create(ctx context.Context, entity *E) error {
	if err := r.checkReferences(ctx, entity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(entity, 0); err != nil {
		return err
	}

	r.nextID++
	P(entity).SetID(r.nextID)
	P(entity).SetCreatedAt(r.now())

	r.rows[r.nextID] = r.copyOf(entity)
	r.order = append(r.order, r.nextID)
	return nil
}

func (r *Repository[E, P]) GetByID(_ context.Context, id uint) (*E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	row := r.copyOf(&stored)
	return &row, nil
}

func (r *Repository[E, P]) Update(ctx context.Context, entity *E) error {
	if err := r.checkReferences(ctx, entity); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := P(entity).GetID()
	existing, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("%s %d does not exist", r.entityName, id)
	}
	if err := r.checkUnique(entity, id); err != nil {
		return err
	}

	// created_at is immutable once stored
	updated := r.copyOf(entity)
	P(&updated).SetCreatedAt(P(&existing).GetCreatedAt())
	r.rows[id] = updated
	return nil
}

func (r *Repository[E, P]) List(_ context.Context) ([]*E, error) {
	return r.collect(func(*E) bool { return true }), nil
}

func (r *Repository[E, P]) FindBy(_ context.Context, field string, value any) ([]*E, error) {
	if !forestry.IsFilterableField(field) {
		return nil, fmt.Errorf("field %q is not filterable", field)
	}
	return r.collect(func(e *E) bool {
		v, ok := P(e).FieldValue(field)
		return ok && v == value
	}), nil
}

// Reset drops every row and restarts id assignment.
func (r *Repository[E, P]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make(map[uint]E)
	r.order = nil
	r.nextID = 0
}

// Exists reports whether id is stored. It satisfies Reference.Exists.
func (r *Repository[E, P]) Exists(_ context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *Repository[E, P]) collect(keep func(*E) bool) []*E {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*E, 0, len(r.order))
	for _, id := range r.order {
		stored := r.rows[id]
		row := r.copyOf(&stored)
		if keep(&row) {
			result = append(result, &row)
		}
	}
	return result
}

func (r *Repository[E, P]) copyOf(e *E) E {
	c := *e
	if r.detach != nil {
		r.detach(&c)
	}
	return c
}

func (r *Repository[E, P]) checkUnique(entity *E, selfID uint) error {
	if r.uniqueKey == nil {
		return nil
	}
	key := r.uniqueKey(entity)
	for id, row := range r.rows {
		if id != selfID && r.uniqueKey(&row) == key {
			return errors.NewConstraintError(
				fmt.Sprintf("%s violates a uniqueness constraint", r.entityName),
			)
		}
	}
	return nil
}

func (r *Repository[E, P]) checkReferences(ctx context.Context, entity *E) error {
	for _, ref := range r.references {
		id := ref.Value(entity)
		if id == nil {
			continue
		}
		ok, err := ref.Exists(ctx, *id)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewReferentialError(
				fmt.Sprintf("%s references a record that does not exist", r.entityName),
				fmt.Sprintf("%s %d not found", ref.Name, *id),
			)
		}
	}
	return nil
}
