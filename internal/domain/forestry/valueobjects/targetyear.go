package valueobjects

import "fmt"

// TargetYear is a Vision 2047 milestone year.
type TargetYear int

const (
	TargetYear2029 TargetYear = 2029
	TargetYear2035 TargetYear = 2035
	TargetYear2047 TargetYear = 2047
)

func (y TargetYear) Int() int {
	return int(y)
}

func (y TargetYear) IsValid() bool {
	switch y {
	case TargetYear2029, TargetYear2035, TargetYear2047:
		return true
	}
	return false
}

func NewTargetYear(year int) (TargetYear, error) {
	y := TargetYear(year)
	if !y.IsValid() {
		return 0, fmt.Errorf("invalid target year: %d", year)
	}
	return y, nil
}
