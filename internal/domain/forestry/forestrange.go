package forestry

// ForestRange is an administrative forest subdivision headed by a range
// forest officer.
type ForestRange struct {
	Base
	Name        string  `json:"name"`
	Circle      string  `json:"circle"`
	Area        float64 `json:"area"`
	ForestCover float64 `json:"forestCover"`
	RFOID       *uint   `json:"rfoId"`
	IsActive    bool    `json:"isActive"`
}

func (r *ForestRange) FieldValue(field string) (any, bool) {
	if field == FieldIsActive {
		return r.IsActive, true
	}
	return nil, false
}
