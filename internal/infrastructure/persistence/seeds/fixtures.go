package seeds

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Officers    []OfficerFixture     `yaml:"officers"`
	Ranges      []RangeFixture       `yaml:"ranges"`
	FireAlerts  []FireAlertFixture   `yaml:"fire_alerts"`
	Plantations []PlantationFixture  `yaml:"plantations"`
	Permits     []PermitFixture      `yaml:"permits"`
	ForestStats []ForestStatsFixture `yaml:"forest_stats"`
	Vision2047  []VisionFixture      `yaml:"vision2047"`
	Performance []PerformanceFixture `yaml:"performance"`
}

// OfficerFixture and RangeFixture carry a key that later fixtures use to
// reference them.
type OfficerFixture struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Range       string `yaml:"range"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Circle      string `yaml:"circle"`
	TechScore   int    `yaml:"tech_score"`
	IsActive    bool   `yaml:"is_active"`
}

type RangeFixture struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Circle      string  `yaml:"circle"`
	Area        float64 `yaml:"area"`
	ForestCover float64 `yaml:"forest_cover"`
	RFO         string  `yaml:"rfo"`
	IsActive    bool    `yaml:"is_active"`
}

type FireAlertFixture struct {
	Range                string `yaml:"range"`
	Location             string `yaml:"location"`
	Severity             string `yaml:"severity"`
	Status               string `yaml:"status"`
	DetectedDaysAgo      int    `yaml:"detected_days_ago"`
	ResolvedAfterMinutes int    `yaml:"resolved_after_minutes"`
}

type PlantationFixture struct {
	Range           string `yaml:"range"`
	Species         string `yaml:"species"`
	SaplingsPlanted int    `yaml:"saplings_planted"`
	SurvivalCount   *int   `yaml:"survival_count"`
	PlantedDate     string `yaml:"planted_date"`
	LastSurveyDate  string `yaml:"last_survey_date"`
}

type PermitFixture struct {
	Type             string  `yaml:"type"`
	ApplicantName    string  `yaml:"applicant_name"`
	ApplicantContact string  `yaml:"applicant_contact"`
	Range            string  `yaml:"range"`
	Status           string  `yaml:"status"`
	ProcessedBy      string  `yaml:"processed_by"`
	Fees             float64 `yaml:"fees"`
	AppliedDaysAgo   int     `yaml:"applied_days_ago"`
	DecidedAfterDays int     `yaml:"decided_after_days"`
}

type ForestStatsFixture struct {
	Range                 string  `yaml:"range"`
	StatDate              string  `yaml:"stat_date"`
	ForestCoverPercentage float64 `yaml:"forest_cover_percentage"`
	TotalArea             float64 `yaml:"total_area"`
	DenseForestArea       float64 `yaml:"dense_forest_area"`
	MediumForestArea      float64 `yaml:"medium_forest_area"`
	OpenForestArea        float64 `yaml:"open_forest_area"`
	CarbonSequestration   float64 `yaml:"carbon_sequestration"`
	BiodiversityIndex     float64 `yaml:"biodiversity_index"`
}

type VisionFixture struct {
	Range                 string  `yaml:"range"`
	TargetYear            int     `yaml:"target_year"`
	ForestCoverTarget     float64 `yaml:"forest_cover_target"`
	CurrentProgress       float64 `yaml:"current_progress"`
	InitiativesCompleted  int     `yaml:"initiatives_completed"`
	TotalInitiatives      int     `yaml:"total_initiatives"`
	CarbonCreditGenerated float64 `yaml:"carbon_credit_generated"`
	RevenueGenerated      float64 `yaml:"revenue_generated"`
}

type PerformanceFixture struct {
	Officer                string `yaml:"officer"`
	Month                  int    `yaml:"month"`
	Year                   int    `yaml:"year"`
	TransparencyScore      int    `yaml:"transparency_score"`
	EfficiencyScore        int    `yaml:"efficiency_score"`
	CostEffectivenessScore int    `yaml:"cost_effectiveness_score"`
	HumaneApproachScore    int    `yaml:"humane_approach_score"`
}

// DefaultFixtures returns the data set embedded in the binary.
func DefaultFixtures() (*Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

// ParseFixtures decodes a YAML fixture document, rejecting unknown keys.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}
	return &f, nil
}
