// Package mapper holds the generic entity <-> row conversion used by the
// gorm repositories.
package mapper

// Mapper converts between a domain entity E and its persisted row M.
type Mapper[E any, M any] struct {
	toModel  func(E) M
	toDomain func(M) E
}

func New[E any, M any](toModel func(E) M, toDomain func(M) E) *Mapper[E, M] {
	return &Mapper[E, M]{toModel: toModel, toDomain: toDomain}
}

func (m *Mapper[E, M]) ToModel(entity E) M {
	return m.toModel(entity)
}

func (m *Mapper[E, M]) ToDomain(row M) E {
	return m.toDomain(row)
}

// ToDomainList converts rows in order. nil rows yield an empty, non-nil
// slice so list endpoints encode [] rather than null.
func (m *Mapper[E, M]) ToDomainList(rows []M) []E {
	return MapSlice(rows, m.toDomain)
}

func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}
