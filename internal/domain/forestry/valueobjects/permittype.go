package valueobjects

import "fmt"

type PermitType string

const (
	PermitTypeTreeCutting    PermitType = "tree_cutting"
	PermitTypeForestProduce  PermitType = "forest_produce"
	PermitTypeWildlifeRescue PermitType = "wildlife_rescue"
	PermitTypeResearch       PermitType = "research"
)

var validPermitTypes = map[PermitType]bool{
	PermitTypeTreeCutting:    true,
	PermitTypeForestProduce:  true,
	PermitTypeWildlifeRescue: true,
	PermitTypeResearch:       true,
}

func (t PermitType) String() string {
	return string(t)
}

func (t PermitType) IsValid() bool {
	return validPermitTypes[t]
}

func NewPermitType(s string) (PermitType, error) {
	t := PermitType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid permit type: %s", s)
	}
	return t, nil
}
