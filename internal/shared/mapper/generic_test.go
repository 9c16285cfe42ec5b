package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	t.Run("nil input returns empty slice", func(t *testing.T) {
		got := MapSlice[int, string](nil, strconv.Itoa)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("maps every element in order", func(t *testing.T) {
		got := MapSlice([]int{3, 1, 2}, strconv.Itoa)
		assert.Equal(t, []string{"3", "1", "2"}, got)
	})
}

type area struct{ hectares float64 }

type areaRow struct{ Hectares string }

func TestMapper(t *testing.T) {
	m := New(
		func(a *area) *areaRow { return &areaRow{Hectares: strconv.FormatFloat(a.hectares, 'f', 2, 64)} },
		func(r *areaRow) *area {
			v, _ := strconv.ParseFloat(r.Hectares, 64)
			return &area{hectares: v}
		},
	)

	assert.Equal(t, "150.00", m.ToModel(&area{hectares: 150}).Hectares)
	assert.Equal(t, 40.5, m.ToDomain(&areaRow{Hectares: "40.5"}).hectares)

	list := m.ToDomainList([]*areaRow{{Hectares: "1"}, {Hectares: "2"}})
	require.Len(t, list, 2)
	assert.Equal(t, 2.0, list[1].hectares)
	assert.NotNil(t, m.ToDomainList(nil))
}
