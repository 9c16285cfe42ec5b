package forestry

// Officer is a member of the forest department staff.
type Officer struct {
	Base
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Range       string `json:"range"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Circle      string `json:"circle"`
	TechScore   int    `json:"techScore"`
	IsActive    bool   `json:"isActive"`
}

func (o *Officer) FieldValue(field string) (any, bool) {
	if field == FieldIsActive {
		return o.IsActive, true
	}
	return nil, false
}
