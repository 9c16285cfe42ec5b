package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Route parameters
	ParamID        = "id"
	ParamRangeID   = "rangeId"
	ParamOfficerID = "officerId"
	ParamStatus    = "status"

	// Database table names
	TableOfficers           = "officers"
	TableForestRanges       = "forest_ranges"
	TableFireAlerts         = "fire_alerts"
	TablePlantationRecords  = "plantation_records"
	TablePermits            = "permits"
	TableForestStats        = "forest_stats"
	TableVision2047Progress = "vision2047_progress"
	TableOfficerPerformance = "officer_performance"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgRateLimited         = "rate limit exceeded, please try again later"
)
