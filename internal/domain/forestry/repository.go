package forestry

import (
	"context"
	"time"
)

// Filterable field names accepted by Repository.FindBy.
const (
	FieldStatus    = "status"
	FieldType      = "type"
	FieldRangeID   = "range_id"
	FieldOfficerID = "officer_id"
	FieldIsActive  = "is_active"
)

var filterableFields = map[string]bool{
	FieldStatus:    true,
	FieldType:      true,
	FieldRangeID:   true,
	FieldOfficerID: true,
	FieldIsActive:  true,
}

// IsFilterableField reports whether field may be used with FindBy.
func IsFilterableField(field string) bool {
	return filterableFields[field]
}

// Record is implemented by every stored entity.
type Record interface {
	GetID() uint
	SetID(id uint)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	// FieldValue returns the primitive value of a filterable field.
	FieldValue(field string) (any, bool)
}

// Repository is the storage contract shared by all forestry entities.
// GetByID returns (nil, nil) when the record does not exist. Create and
// Update fail with a constraint error on a uniqueness violation and with a
// referential error when a referenced record is missing.
type Repository[E any] interface {
	Create(ctx context.Context, entity *E) error
	GetByID(ctx context.Context, id uint) (*E, error)
	Update(ctx context.Context, entity *E) error
	List(ctx context.Context) ([]*E, error)
	FindBy(ctx context.Context, field string, value any) ([]*E, error)
}

type (
	OfficerRepository            = Repository[Officer]
	ForestRangeRepository        = Repository[ForestRange]
	FireAlertRepository          = Repository[FireAlert]
	PlantationRecordRepository   = Repository[PlantationRecord]
	PermitRepository             = Repository[Permit]
	ForestStatsRepository        = Repository[ForestStats]
	Vision2047ProgressRepository = Repository[Vision2047Progress]
	OfficerPerformanceRepository = Repository[OfficerPerformance]
)

// Repositories groups one repository per entity.
type Repositories struct {
	Officers     OfficerRepository
	Ranges       ForestRangeRepository
	FireAlerts   FireAlertRepository
	Plantations  PlantationRecordRepository
	Permits      PermitRepository
	ForestStats  ForestStatsRepository
	Vision2047   Vision2047ProgressRepository
	Performances OfficerPerformanceRepository
}

// Base carries the server-assigned identity of a stored entity.
type Base struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Base) GetID() uint              { return b.ID }
func (b *Base) SetID(id uint)            { b.ID = id }
func (b *Base) GetCreatedAt() time.Time  { return b.CreatedAt }
func (b *Base) SetCreatedAt(t time.Time) { b.CreatedAt = t }
