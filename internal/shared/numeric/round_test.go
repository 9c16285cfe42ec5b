package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{26.666666, 26.67},
		{1.004, 1.0},
		{0, 0},
		{100, 100},
		{82.125, 82.13},
		{1.005, 1.01},
		{2.675, 2.68},
		{0.125, 0.13},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-9, "Round2(%v)", tt.in)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(10, 0))
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.InDelta(t, 26.67, Percentage(40, 150), 1e-9)
	assert.InDelta(t, 80.0, Percentage(400, 500), 1e-9)
	assert.Equal(t, 1.01, Percentage(2010, 200000))
}
