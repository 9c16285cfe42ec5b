// Package dto holds the request bodies accepted by the forestry API.
//
// Create requests bind leniently: unknown keys are dropped and required
// fields are enforced. Update requests use pointer fields so that an absent
// key leaves the stored value untouched; they are decoded strictly.
package dto

type CreateOfficerRequest struct {
	Name        string `json:"name" binding:"required,max=100,nomarkup"`
	Designation string `json:"designation" binding:"required,max=100,nomarkup"`
	Range       string `json:"range" binding:"required,max=100,nomarkup"`
	Email       string `json:"email" binding:"required,email,max=191"`
	Phone       string `json:"phone" binding:"required,max=20,nomarkup"`
	Circle      string `json:"circle" binding:"required,max=100,nomarkup"`
	TechScore   int    `json:"techScore" binding:"gte=0,lte=100"`
	IsActive    *bool  `json:"isActive"`
}

type CreateForestRangeRequest struct {
	Name        string  `json:"name" binding:"required,max=100,nomarkup"`
	Circle      string  `json:"circle" binding:"required,max=100,nomarkup"`
	Area        float64 `json:"area" binding:"gte=0"`
	ForestCover float64 `json:"forestCover" binding:"gte=0,lte=100"`
	RFOID       *uint   `json:"rfoId" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"isActive"`
}

type CreateFireAlertRequest struct {
	RangeID      uint   `json:"rangeId" binding:"required,gt=0"`
	Location     string `json:"location" binding:"required,max=200,nomarkup"`
	Severity     string `json:"severity" binding:"required,oneof=low medium high"`
	Status       string `json:"status" binding:"omitempty,oneof=active investigating resolved"`
	ResponseTime *int   `json:"responseTime" binding:"omitempty,gte=0"`
}

type CreatePlantationRecordRequest struct {
	RangeID         uint    `json:"rangeId" binding:"required,gt=0"`
	Species         string  `json:"species" binding:"required,max=100,nomarkup"`
	SaplingsPlanted int     `json:"saplingsPlanted" binding:"gte=0"`
	SurvivalCount   *int    `json:"survivalCount" binding:"omitempty,gte=0"`
	PlantedDate     string  `json:"plantedDate" binding:"required,datetime=2006-01-02"`
	LastSurveyDate  *string `json:"lastSurveyDate" binding:"omitempty,datetime=2006-01-02"`
}

type CreatePermitRequest struct {
	Type             string  `json:"type" binding:"required,oneof=tree_cutting forest_produce wildlife_rescue research"`
	ApplicantName    string  `json:"applicantName" binding:"required,max=100,nomarkup"`
	ApplicantContact string  `json:"applicantContact" binding:"required,max=100,nomarkup"`
	RangeID          uint    `json:"rangeId" binding:"required,gt=0"`
	Status           string  `json:"status" binding:"omitempty,oneof=pending under_review approved rejected"`
	ProcessedBy      *uint   `json:"processedBy" binding:"omitempty,gt=0"`
	Fees             float64 `json:"fees" binding:"gte=0"`
}

type CreateForestStatsRequest struct {
	RangeID               uint    `json:"rangeId" binding:"required,gt=0"`
	StatDate              string  `json:"statDate" binding:"required,datetime=2006-01-02"`
	ForestCoverPercentage float64 `json:"forestCoverPercentage" binding:"gte=0,lte=100"`
	TotalArea             float64 `json:"totalArea" binding:"gte=0"`
	DenseForestArea       float64 `json:"denseForestArea" binding:"gte=0"`
	MediumForestArea      float64 `json:"mediumForestArea" binding:"gte=0"`
	OpenForestArea        float64 `json:"openForestArea" binding:"gte=0"`
	CarbonSequestration   float64 `json:"carbonSequestration" binding:"gte=0"`
	BiodiversityIndex     float64 `json:"biodiversityIndex" binding:"gte=0"`
}

type CreateVision2047ProgressRequest struct {
	RangeID               uint    `json:"rangeId" binding:"required,gt=0"`
	TargetYear            int     `json:"targetYear" binding:"required,oneof=2029 2035 2047"`
	ForestCoverTarget     float64 `json:"forestCoverTarget" binding:"gte=0,lte=100"`
	CurrentProgress       float64 `json:"currentProgress" binding:"gte=0"`
	InitiativesCompleted  int     `json:"initiativesCompleted" binding:"gte=0"`
	TotalInitiatives      int     `json:"totalInitiatives" binding:"gte=0"`
	CarbonCreditGenerated float64 `json:"carbonCreditGenerated" binding:"gte=0"`
	RevenueGenerated      float64 `json:"revenueGenerated" binding:"gte=0"`
}

type CreateOfficerPerformanceRequest struct {
	OfficerID              uint `json:"officerId" binding:"required,gt=0"`
	Month                  int  `json:"month" binding:"required,gte=1,lte=12"`
	Year                   int  `json:"year" binding:"required,gte=2000,lte=2100"`
	TransparencyScore      int  `json:"transparencyScore" binding:"gte=0,lte=100"`
	EfficiencyScore        int  `json:"efficiencyScore" binding:"gte=0,lte=100"`
	CostEffectivenessScore int  `json:"costEffectivenessScore" binding:"gte=0,lte=100"`
	HumaneApproachScore    int  `json:"humaneApproachScore" binding:"gte=0,lte=100"`
}
