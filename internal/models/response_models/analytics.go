package response_models

type RadarResponse struct {
	Dimensions []RadarDimension `json:"dimensions"`
	Period     Period           `json:"period"`
}

type RadarDimension struct {
	DimensionID  string  `json:"dimensionId"`
	Dimension    string  `json:"dimension"`
	AvgScore     float64 `json:"avgScore"`
	MaxScore     float64 `json:"maxScore"`
	CheckinCount int     `json:"checkinCount"`
}

type LineResponse struct {
	Points []LinePoint `json:"points"`
	Period Period      `json:"period"`
}

type LinePoint struct {
	Date       string  `json:"date"`
	TotalScore float64 `json:"totalScore"`
}

type HeatmapResponse struct {
	Days   []HeatmapDay `json:"days"`
	Period Period       `json:"period"`
}

type HeatmapDay struct {
	Date       string  `json:"date"`
	TotalScore float64 `json:"totalScore"`
	CheckedIn  bool    `json:"checkedIn"`
}

type StackedBarResponse struct {
	Days       []StackedBarDay `json:"days"`
	Dimensions []string        `json:"dimensions"`
	Period     Period          `json:"period"`
}

// StackedBarDay is one bar: the day's total with one segment per
// dimension scored that day.
type StackedBarDay struct {
	Date       string              `json:"date"`
	TotalScore float64             `json:"totalScore"`
	Segments   []StackedBarSegment `json:"segments"`
}

type StackedBarSegment struct {
	DimensionID string  `json:"dimensionId"`
	Dimension   string  `json:"dimension"`
	Score       float64 `json:"score"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
