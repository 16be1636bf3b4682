package models

// Integration source names, matching the stub data endpoints.
const (
	SourceSmartMeter = "smart-meter"
	SourceGrocery    = "grocery"
	SourceTravel     = "travel"
)

// SourceReading is what an external data source reports: an impact
// figure in score units plus source-specific detail values.
type SourceReading struct {
	Source string             `json:"source"`
	Impact float64            `json:"impact"`
	Detail map[string]float64 `json:"detail,omitempty"`
}
