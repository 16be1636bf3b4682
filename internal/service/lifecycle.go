package service

import (
	"context"

	"ecotrack/internal/models"
)

// Stage weighting heuristics. The stage values deliberately do not
// sum to the carbon total: each stage mixes a share of the total with
// its own profile-driven term. Dashboards show them as independent
// magnitudes, not as a partition.
const (
	lifecycleFloorKg = 1 // avoids an all-zero allocation for empty baselines

	rawTotalShare        = 0.22
	rawMaterialsFactor   = 0.4
	mfgTotalShare        = 0.24
	mfgElectricityFactor = 0.09
	transportTotalShare  = 0.20
	transportKmFactor    = 0.03
	usageTotalShare      = 0.24
	usageCommuteFactor   = 0.05
	disposalTotalShare   = 0.10
	disposalWasteFactor  = 0.25
)

type LifecycleService struct {
	agg Aggregation
}

func NewLifecycleService(agg Aggregation) *LifecycleService {
	return &LifecycleService{agg: agg}
}

// AllocateStages decomposes a snapshot across the five fixed stages.
// The order is always raw material, manufacturing, transport, usage,
// disposal.
func AllocateStages(s models.CoreSnapshot) []models.LifecycleStage {
	total := s.CarbonTotalKg
	if total < lifecycleFloorKg {
		total = lifecycleFloorKg
	}

	return []models.LifecycleStage{
		{Stage: "Raw material", Kilograms: round2(total*rawTotalShare + s.Materials.MaterialsKg*rawMaterialsFactor)},
		{Stage: "Manufacturing", Kilograms: round2(total*mfgTotalShare + s.Resources.ElectricityKwh*mfgElectricityFactor)},
		{Stage: "Transport", Kilograms: round2(total*transportTotalShare + s.Logistics.LogisticsKm*transportKmFactor)},
		{Stage: "Usage", Kilograms: round2(total*usageTotalShare + s.Logistics.CommuteKmWeek*weeksPerMonth*usageCommuteFactor)},
		{Stage: "Disposal", Kilograms: round2(total*disposalTotalShare + s.Resources.WasteKg*disposalWasteFactor)},
	}
}

func (s *LifecycleService) AllocateLifecycle(ctx context.Context) ([]models.LifecycleStage, error) {
	snap, err := s.agg.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return AllocateStages(snap), nil
}
