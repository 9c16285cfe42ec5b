package usecases

import (
	"time"

	"forestdash/internal/application/forestry/dto"
	"forestdash/internal/domain/forestry"
)

func buildPlantationRecord(cmd dto.CreatePlantationRecordRequest, _ time.Time) (*forestry.PlantationRecord, error) {
	planted, err := parseDate("plantedDate", cmd.PlantedDate)
	if err != nil {
		return nil, err
	}
	surveyed, err := parseOptionalDate("lastSurveyDate", cmd.LastSurveyDate)
	if err != nil {
		return nil, err
	}

	p := &forestry.PlantationRecord{
		RangeID:         cmd.RangeID,
		Species:         normalizeText(cmd.Species),
		SaplingsPlanted: cmd.SaplingsPlanted,
		SurvivalCount:   cmd.SurvivalCount,
		PlantedDate:     planted,
		LastSurveyDate:  surveyed,
	}
	p.Recompute()
	return p, nil
}

func applyPlantationRecordPatch(p *forestry.PlantationRecord, patch dto.UpdatePlantationRecordRequest, _ time.Time) error {
	assign(&p.RangeID, patch.RangeID)
	assignText(&p.Species, patch.Species)
	assign(&p.SaplingsPlanted, patch.SaplingsPlanted)

	if patch.SurvivalCount != nil {
		count := *patch.SurvivalCount
		p.SurvivalCount = &count
	}

	if patch.PlantedDate != nil {
		planted, err := parseDate("plantedDate", *patch.PlantedDate)
		if err != nil {
			return err
		}
		p.PlantedDate = planted
	}

	if patch.LastSurveyDate != nil {
		surveyed, err := parseOptionalDate("lastSurveyDate", patch.LastSurveyDate)
		if err != nil {
			return err
		}
		p.LastSurveyDate = surveyed
	}

	p.Recompute()
	return nil
}
