package dto

type UpdateOfficerRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100,nomarkup"`
	Designation *string `json:"designation" binding:"omitempty,min=1,max=100,nomarkup"`
	Range       *string `json:"range" binding:"omitempty,min=1,max=100,nomarkup"`
	Email       *string `json:"email" binding:"omitempty,email,max=191"`
	Phone       *string `json:"phone" binding:"omitempty,min=1,max=20,nomarkup"`
	Circle      *string `json:"circle" binding:"omitempty,min=1,max=100,nomarkup"`
	TechScore   *int    `json:"techScore" binding:"omitempty,gte=0,lte=100"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateForestRangeRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100,nomarkup"`
	Circle      *string  `json:"circle" binding:"omitempty,min=1,max=100,nomarkup"`
	Area        *float64 `json:"area" binding:"omitempty,gte=0"`
	ForestCover *float64 `json:"forestCover" binding:"omitempty,gte=0,lte=100"`
	RFOID       *uint    `json:"rfoId" binding:"omitempty,gt=0"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateFireAlertRequest struct {
	RangeID      *uint   `json:"rangeId" binding:"omitempty,gt=0"`
	Location     *string `json:"location" binding:"omitempty,min=1,max=200,nomarkup"`
	Severity     *string `json:"severity" binding:"omitempty,oneof=low medium high"`
	Status       *string `json:"status" binding:"omitempty,oneof=active investigating resolved"`
	ResponseTime *int    `json:"responseTime" binding:"omitempty,gte=0"`
}

type UpdatePlantationRecordRequest struct {
	RangeID         *uint   `json:"rangeId" binding:"omitempty,gt=0"`
	Species         *string `json:"species" binding:"omitempty,min=1,max=100,nomarkup"`
	SaplingsPlanted *int    `json:"saplingsPlanted" binding:"omitempty,gte=0"`
	SurvivalCount   *int    `json:"survivalCount" binding:"omitempty,gte=0"`
	PlantedDate     *string `json:"plantedDate" binding:"omitempty,datetime=2006-01-02"`
	LastSurveyDate  *string `json:"lastSurveyDate" binding:"omitempty,datetime=2006-01-02"`
}

type UpdatePermitRequest struct {
	Type             *string  `json:"type" binding:"omitempty,oneof=tree_cutting forest_produce wildlife_rescue research"`
	ApplicantName    *string  `json:"applicantName" binding:"omitempty,min=1,max=100,nomarkup"`
	ApplicantContact *string  `json:"applicantContact" binding:"omitempty,min=1,max=100,nomarkup"`
	RangeID          *uint    `json:"rangeId" binding:"omitempty,gt=0"`
	Status           *string  `json:"status" binding:"omitempty,oneof=pending under_review approved rejected"`
	ProcessedBy      *uint    `json:"processedBy" binding:"omitempty,gt=0"`
	Fees             *float64 `json:"fees" binding:"omitempty,gte=0"`
}

type UpdateForestStatsRequest struct {
	RangeID               *uint    `json:"rangeId" binding:"omitempty,gt=0"`
	StatDate              *string  `json:"statDate" binding:"omitempty,datetime=2006-01-02"`
	ForestCoverPercentage *float64 `json:"forestCoverPercentage" binding:"omitempty,gte=0,lte=100"`
	TotalArea             *float64 `json:"totalArea" binding:"omitempty,gte=0"`
	DenseForestArea       *float64 `json:"denseForestArea" binding:"omitempty,gte=0"`
	MediumForestArea      *float64 `json:"mediumForestArea" binding:"omitempty,gte=0"`
	OpenForestArea        *float64 `json:"openForestArea" binding:"omitempty,gte=0"`
	CarbonSequestration   *float64 `json:"carbonSequestration" binding:"omitempty,gte=0"`
	BiodiversityIndex     *float64 `json:"biodiversityIndex" binding:"omitempty,gte=0"`
}

type UpdateVision2047ProgressRequest struct {
	RangeID               *uint    `json:"rangeId" binding:"omitempty,gt=0"`
	TargetYear            *int     `json:"targetYear" binding:"omitempty,oneof=2029 2035 2047"`
	ForestCoverTarget     *float64 `json:"forestCoverTarget" binding:"omitempty,gte=0,lte=100"`
	CurrentProgress       *float64 `json:"currentProgress" binding:"omitempty,gte=0"`
	InitiativesCompleted  *int     `json:"initiativesCompleted" binding:"omitempty,gte=0"`
	TotalInitiatives      *int     `json:"totalInitiatives" binding:"omitempty,gte=0"`
	CarbonCreditGenerated *float64 `json:"carbonCreditGenerated" binding:"omitempty,gte=0"`
	RevenueGenerated      *float64 `json:"revenueGenerated" binding:"omitempty,gte=0"`
}

type UpdateOfficerPerformanceRequest struct {
	OfficerID              *uint `json:"officerId" binding:"omitempty,gt=0"`
	Month                  *int  `json:"month" binding:"omitempty,gte=1,lte=12"`
	Year                   *int  `json:"year" binding:"omitempty,gte=2000,lte=2100"`
	TransparencyScore      *int  `json:"transparencyScore" binding:"omitempty,gte=0,lte=100"`
	EfficiencyScore        *int  `json:"efficiencyScore" binding:"omitempty,gte=0,lte=100"`
	CostEffectivenessScore *int  `json:"costEffectivenessScore" binding:"omitempty,gte=0,lte=100"`
	HumaneApproachScore    *int  `json:"humaneApproachScore" binding:"omitempty,gte=0,lte=100"`
}
