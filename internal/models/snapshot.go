package models

// CoreSnapshot is the derived aggregate every dashboard widget reads.
// It is recomputed on demand and never persisted; identical inputs
// must produce identical snapshots.
type CoreSnapshot struct {
	Scope1Kg      float64          `json:"scope1_kg"` // direct: fuel, waste, recent travel
	Scope2Kg      float64          `json:"scope2_kg"` // purchased energy
	Scope3Kg      float64          `json:"scope3_kg"` // value chain
	CarbonTotalKg float64          `json:"carbon_total_kg"`
	Resources     ResourceSummary  `json:"resources"`
	Materials     MaterialSummary  `json:"materials"`
	Logistics     LogisticsSummary `json:"logistics"`
}

type ResourceSummary struct {
	ElectricityKwh float64 `json:"electricity_kwh"`
	WaterM3        float64 `json:"water_m3"`
	FuelLiters     float64 `json:"fuel_liters"`
	WasteKg        float64 `json:"waste_kg"`
	RecycleRate    float64 `json:"recycle_rate"`
}

type MaterialSummary struct {
	MaterialsKg       float64 `json:"materials_kg"`
	RecycledWasteKg   float64 `json:"recycled_waste_kg"`
	VirginMaterialsKg float64 `json:"virgin_materials_kg"`
}

type LogisticsSummary struct {
	LogisticsKm   float64 `json:"logistics_km"`
	CommuteKmWeek float64 `json:"commute_km_week"`
}

// TimeSeries is a label/value pair list ready for charting.
type TimeSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// LifecycleStage is one slice of the five-stage impact decomposition.
type LifecycleStage struct {
	Stage     string  `json:"stage"`
	Kilograms float64 `json:"kilograms"`
}
