package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"ecotrack/internal/models"
)

type profileRepoStub struct {
	profile models.BaselineProfile
	ok      bool
	loadErr error
	saved   []models.BaselineProfile
	saveErr error
}

func (s *profileRepoStub) Save(ctx context.Context, p models.BaselineProfile) error {
	s.saved = append(s.saved, p)
	return s.saveErr
}

func (s *profileRepoStub) Load(ctx context.Context) (models.BaselineProfile, bool, error) {
	return s.profile, s.ok, s.loadErr
}

func TestProfileService_GetProfile_DefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(&profileRepoStub{ok: false})

	got, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	want := DefaultProfile()
	if got != want {
		t.Errorf("want defaults %+v, got %+v", want, got)
	}
}

func TestProfileService_GetProfile_SanitizesStoredGarbage(t *testing.T) {
	t.Parallel()

	stored := models.BaselineProfile{
		ElectricityKwh: -10,          // negative
		WaterM3:        math.NaN(),   // non-finite
		FuelLiters:     60,           // fine
		WasteKg:        math.Inf(1),  // non-finite
		RecycleRate:    120,          // out of range
		MaterialsKg:    0,            // zero is usable
		LogisticsKm:    500,          // fine
		CommuteKmWeek:  -1,           // negative
	}
	svc := NewProfileService(&profileRepoStub{profile: stored, ok: true})

	got, err := svc.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ElectricityKwh != defaultElectricityKwh {
		t.Errorf("ElectricityKwh: want default %v, got %v", float64(defaultElectricityKwh), got.ElectricityKwh)
	}
	if got.WaterM3 != defaultWaterM3 {
		t.Errorf("WaterM3: want default %v, got %v", float64(defaultWaterM3), got.WaterM3)
	}
	if got.FuelLiters != 60 {
		t.Errorf("FuelLiters: want 60, got %v", got.FuelLiters)
	}
	if got.RecycleRate != defaultRecycleRate {
		t.Errorf("RecycleRate: want default %v, got %v", float64(defaultRecycleRate), got.RecycleRate)
	}
	if got.MaterialsKg != 0 {
		t.Errorf("MaterialsKg: zero must survive, got %v", got.MaterialsKg)
	}
	if got.CommuteKmWeek != defaultCommuteKmWeek {
		t.Errorf("CommuteKmWeek: want default %v, got %v", float64(defaultCommuteKmWeek), got.CommuteKmWeek)
	}
}

func TestProfileService_GetProfile_PropagatesRepoError(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(&profileRepoStub{loadErr: errors.New("db down")})
	if _, err := svc.GetProfile(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProfileService_SaveProfile_ClampsAndStamps(t *testing.T) {
	t.Parallel()

	repo := &profileRepoStub{}
	svc := NewProfileService(repo)

	saved, err := svc.SaveProfile(context.Background(), models.BaselineProfile{
		ElectricityKwh: 250,
		WaterM3:        20,
		FuelLiters:     30,
		WasteKg:        -4,  // falls back to default
		RecycleRate:    150, // clamped to 100
		MaterialsKg:    100,
		LogisticsKm:    800,
		CommuteKmWeek:  60,
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if saved.RecycleRate != 100 {
		t.Errorf("RecycleRate: want clamped 100, got %v", saved.RecycleRate)
	}
	if saved.WasteKg != defaultWasteKg {
		t.Errorf("WasteKg: want default %v, got %v", float64(defaultWasteKg), saved.WasteKg)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt must be stamped")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("want one Save call, got %d", len(repo.saved))
	}
	if repo.saved[0] != saved {
		t.Errorf("persisted row differs from returned: %+v vs %+v", repo.saved[0], saved)
	}
}

func TestProfileService_SaveProfile_NegativeRecycleClampsToZero(t *testing.T) {
	t.Parallel()

	repo := &profileRepoStub{}
	svc := NewProfileService(repo)

	saved, err := svc.SaveProfile(context.Background(), models.BaselineProfile{RecycleRate: -5})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if saved.RecycleRate != 0 {
		t.Errorf("RecycleRate: want 0, got %v", saved.RecycleRate)
	}
}
