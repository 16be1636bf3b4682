package models

// Insight is one display-ready guidance record.
type Insight struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ActionItem is one concrete step with an estimated monthly saving.
type ActionItem struct {
	Title         string  `json:"title"`
	Detail        string  `json:"detail"`
	ImpactKgMonth float64 `json:"impact_kg_month"`
}

// InsightReport bundles ordered insights with a short action plan.
type InsightReport struct {
	Insights   []Insight    `json:"insights"`
	ActionPlan []ActionItem `json:"action_plan"` // at most 4 entries
}
