package models

import "time"

// BaselineProfile holds the user's self-reported resource usage.
// All quantities are monthly unless the field name says otherwise.
type BaselineProfile struct {
	ElectricityKwh float64   `json:"electricity_kwh"`
	WaterM3        float64   `json:"water_m3"`
	FuelLiters     float64   `json:"fuel_liters"`
	WasteKg        float64   `json:"waste_kg"`
	RecycleRate    float64   `json:"recycle_rate"` // percent, 0..100
	MaterialsKg    float64   `json:"materials_kg"`
	LogisticsKm    float64   `json:"logistics_km"`
	CommuteKmWeek  float64   `json:"commute_km_week"`
	UpdatedAt      time.Time `json:"updated_at"`
}
