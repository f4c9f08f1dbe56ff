package request_models

// SubmitCheckinRequest intentionally carries no binding tags; the
// check-in validator produces a distinct reason per missing or invalid
// field instead of gin's generic binding error.
type SubmitCheckinRequest struct {
	JourneyID       string                 `json:"journeyId"`
	Date            string                 `json:"date"`
	ClientCheckinID *string                `json:"clientCheckinId"`
	Details         []CheckinDetailRequest `json:"details"`
}

type CheckinDetailRequest struct {
	DimensionID string `json:"dimensionId"`
	EffortLevel int    `json:"effortLevel"`
}

type ListCheckinsQuery struct {
	JourneyID string `form:"journeyId" binding:"required"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
