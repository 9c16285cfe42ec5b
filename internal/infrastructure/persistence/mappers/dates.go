package mappers

import (
	"time"

	"gorm.io/datatypes"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

func toModelDate(d vo.Date) datatypes.Date {
	return datatypes.Date(d.Time)
}

func toDomainDate(d datatypes.Date) vo.Date {
	return vo.DateOf(time.Time(d))
}

func toModelDatePtr(d *vo.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	md := toModelDate(*d)
	return &md
}

func toDomainDatePtr(d *datatypes.Date) *vo.Date {
	if d == nil {
		return nil
	}
	dd := toDomainDate(*d)
	return &dd
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
