package forestry

import (
	"testing"

	"github.com/stretchr/testify/require"

	vo "forestdash/internal/domain/forestry/valueobjects"
)

func mustDate(t *testing.T, s string) vo.Date {
	t.Helper()
	d, err := vo.ParseDate(s)
	require.NoError(t, err)
	return d
}
