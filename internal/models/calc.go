package models

// CalcOutcome is one quick-calculator result, already logged to the
// history under its category.
type CalcOutcome struct {
	Category  string  `json:"category"`
	Kilograms float64 `json:"kilograms"`
	Summary   string  `json:"summary"`
}
