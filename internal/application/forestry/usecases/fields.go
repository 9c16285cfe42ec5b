package usecases

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	vo "forestdash/internal/domain/forestry/valueobjects"
	"forestdash/internal/shared/errors"
)

// assign copies *src into *dst when src is present.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// normalizeText stores free text in NFC so that names typed with combining
// marks compare equal to their precomposed form.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}

func assignText(dst *string, src *string) {
	if src != nil {
		*dst = normalizeText(*src)
	}
}

// normalizeEmail lower-cases addresses so uniqueness holds regardless of
// the collation of the backing store.
func normalizeEmail(s string) string {
	return strings.ToLower(s)
}

func assignEmail(dst *string, src *string) {
	if src != nil {
		*dst = normalizeEmail(*src)
	}
}

func fieldError(field string, err error) error {
	return errors.NewFieldValidationError([]string{field}, []string{err.Error()})
}

func parseDate(field, raw string) (vo.Date, error) {
	d, err := vo.ParseDate(raw)
	if err != nil {
		return vo.Date{}, fieldError(field, err)
	}
	return d, nil
}

func parseOptionalDate(field string, raw *string) (*vo.Date, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
