package service

import (
	"context"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Documented defaults, substituted field-by-field whenever a stored
// value is absent, non-finite, negative, or (for the recycle rate)
// outside 0..100.
const (
	defaultElectricityKwh = 300
	defaultWaterM3        = 18
	defaultFuelLiters     = 45
	defaultWasteKg        = 28
	defaultRecycleRate    = 35
	defaultMaterialsKg    = 120
	defaultLogisticsKm    = 900
	defaultCommuteKmWeek  = 80
)

type ProfileService struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// DefaultProfile returns the demo baseline used until the user saves
// their own figures.
func DefaultProfile() models.BaselineProfile {
	return models.BaselineProfile{
		ElectricityKwh: defaultElectricityKwh,
		WaterM3:        defaultWaterM3,
		FuelLiters:     defaultFuelLiters,
		WasteKg:        defaultWasteKg,
		RecycleRate:    defaultRecycleRate,
		MaterialsKg:    defaultMaterialsKg,
		LogisticsKm:    defaultLogisticsKm,
		CommuteKmWeek:  defaultCommuteKmWeek,
	}
}

// sanitizeProfile substitutes the default for every unusable field.
// The result is always finite and non-negative; NaN or negatives
// never propagate downstream.
func sanitizeProfile(p models.BaselineProfile) models.BaselineProfile {
	if !isUsableNumber(p.ElectricityKwh) {
		p.ElectricityKwh = defaultElectricityKwh
	}
	if !isUsableNumber(p.WaterM3) {
		p.WaterM3 = defaultWaterM3
	}
	if !isUsableNumber(p.FuelLiters) {
		p.FuelLiters = defaultFuelLiters
	}
	if !isUsableNumber(p.WasteKg) {
		p.WasteKg = defaultWasteKg
	}
	if !isUsableNumber(p.RecycleRate) || p.RecycleRate > 100 {
		p.RecycleRate = defaultRecycleRate
	}
	if !isUsableNumber(p.MaterialsKg) {
		p.MaterialsKg = defaultMaterialsKg
	}
	if !isUsableNumber(p.LogisticsKm) {
		p.LogisticsKm = defaultLogisticsKm
	}
	if !isUsableNumber(p.CommuteKmWeek) {
		p.CommuteKmWeek = defaultCommuteKmWeek
	}
	return p
}

// GetProfile never fails on content: a missing row yields the default
// profile and unusable stored fields read back as their defaults.
func (s *ProfileService) GetProfile(ctx context.Context) (models.BaselineProfile, error) {
	p, ok, err := s.profileRepo.Load(ctx)
	if err != nil {
		return models.BaselineProfile{}, err
	}
	if !ok {
		return DefaultProfile(), nil
	}
	return sanitizeProfile(p), nil
}

// SaveProfile normalizes the candidate (negatives and non-finite
// values fall back to defaults, recycle rate is clamped to 0..100)
// and overwrites the whole row atomically.
func (s *ProfileService) SaveProfile(ctx context.Context, p models.BaselineProfile) (models.BaselineProfile, error) {
	p.RecycleRate = clampFloat(p.RecycleRate, 0, 100)
	p = sanitizeProfile(p)
	p.UpdatedAt = time.Now().UTC()
	if err := s.profileRepo.Save(ctx, p); err != nil {
		return models.BaselineProfile{}, err
	}
	return p, nil
}
