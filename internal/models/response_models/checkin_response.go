package response_models

// CheckinResult is the full answer to a submission: the persisted row,
// its per-dimension breakdown and the streak after this check-in. Badge
// evaluation, when it lands, will consume this same shape.
type CheckinResult struct {
	CheckinID  string                `json:"checkinId"`
	JourneyID  string                `json:"journeyId"`
	Date       string                `json:"date"`
	TotalScore float64               `json:"totalScore"`
	Details    []CheckinDetailResult `json:"details"`
	Streak     StreakInfo            `json:"streak"`
}

type CheckinDetailResult struct {
	DimensionID   string  `json:"dimensionId"`
	DimensionName string  `json:"dimensionName,omitempty"`
	EffortLevel   int     `json:"effortLevel"`
	Score         float64 `json:"score"`
}

type StreakInfo struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type CheckinResponse struct {
	ID         string                `json:"id"`
	JourneyID  string                `json:"journeyId"`
	Date       string                `json:"date"`
	TotalScore float64               `json:"totalScore"`
	Details    []CheckinDetailResult `json:"details"`
}
