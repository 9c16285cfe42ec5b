// Package numeric holds the rounding rules shared by derived values and
// dashboard percentages.
package numeric

import (
	"math"
	"strconv"
)

// Round2 rounds x half-up to two decimal places. The scaled value is first
// settled to nine decimals so that inputs such as 1.005, whose binary form
// sits just below the half, still round up.
func Round2(x float64) float64 {
	scaled, err := strconv.ParseFloat(strconv.FormatFloat(x*100, 'f', 9, 64), 64)
	if err != nil {
		return x
	}
	return math.Round(scaled) / 100
}

// Percentage returns part/whole*100 rounded to two decimals, or 0 when whole is zero.
func Percentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(part / whole * 100)
}
