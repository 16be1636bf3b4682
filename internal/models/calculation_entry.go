package models

import "time"

// Emission categories tracked by the history log.
const (
	CategoryHome   = "home"
	CategoryFood   = "food"
	CategoryTravel = "travel"
)

// CalculationEntry is one calculator result in the history log.
type CalculationEntry struct {
	EntryID    string    `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Category   string    `json:"category"`  // home | food | travel
	Kilograms  float64   `json:"kilograms"` // kg CO2e, rounded to 2 decimals
	Metadata   any       `json:"metadata,omitempty"`
}

// CategoryTotals sums kilograms per recognized category.
type CategoryTotals struct {
	Home   float64 `json:"home"`
	Food   float64 `json:"food"`
	Travel float64 `json:"travel"`
}
