package models

import "time"

// Scenario lever values. Unknown values fall back to the first
// (zero-contribution) entry of each group.
const (
	EnergyGrid      = "grid"
	EnergyRenewable = "renewable"

	MaterialsVirgin   = "virgin"
	MaterialsRecycled = "recycled"

	LogisticsTruck = "truck"
	LogisticsRail  = "rail"
	LogisticsShip  = "ship"

	CommutePrivate = "private"
	CommutePublic  = "public"
	CommuteRemote  = "remote"
)

// ScenarioChoice is a combination of what-if levers.
type ScenarioChoice struct {
	Energy    string `json:"energy"`    // grid | renewable
	Materials string `json:"materials"` // virgin | recycled
	Logistics string `json:"logistics"` // truck | rail | ship
	Commute   string `json:"commute"`   // private | public | remote
}

// ScenarioResult is the projected effect of a choice against the
// baseline at run time. At most one result is persisted; each run
// overwrites the previous one.
type ScenarioResult struct {
	ScenarioChoice
	ReductionPct float64   `json:"reduction_pct"` // 0..0.55
	BaselineKg   float64   `json:"baseline_kg"`
	ProjectedKg  float64   `json:"projected_kg"`
	AvoidedKg    float64   `json:"avoided_kg"`
	CreatedAt    time.Time `json:"created_at"`
}
