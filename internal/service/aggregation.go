package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Emission factors (kg CO2e per unit). Kept together so the scope
// split is auditable in one place.
const (
	factorFuelPerLiter   = 2.31  // scope 1: combusted fuel
	factorWastePerKg     = 0.28  // scope 1: waste handling
	factorRecentTravelKg = 0.35  // scope 1: share of logged travel
	factorGridPerKwh     = 0.233 // scope 2: purchased electricity
	factorMaterialsPerKg = 0.65  // scope 3: material sourcing
	factorLogisticsPerKm = 0.09  // scope 3: freight
	factorCommutePerKm   = 0.08  // scope 3: commuting

	weeksPerMonth = 4
)

// recentWindowDays is the rolling window the snapshot folds logged
// calculations over.
const recentWindowDays = 30

// Bucketing regime boundaries for time series.
const (
	dailyRangeMaxDays  = 45
	weeklyRangeMaxDays = 180
	minWeeklyBuckets   = 4
	minMonthlyBuckets  = 6
	maxMonthlyBuckets  = 12
)

// Demo fallback series, substituted when the history holds nothing in
// the requested range so first-run dashboards are not flat zero.
var (
	fallbackShortSeries    = []float64{12, 10, 11, 9, 8, 7, 6}
	fallbackMonthlySeries  = []float64{320, 300, 280, 260, 290, 310}
	fallbackCategoryValues = []float64{40, 30, 30}
)

var categoryLabels = []string{"Home", "Food", "Travel"}

type AggregationService struct {
	profile     Profile
	historyRepo repository.HistoryRepo
	cacheRepo   repository.CacheRepo
	now         func() time.Time
}

func NewAggregationService(profile Profile, historyRepo repository.HistoryRepo, cacheRepo repository.CacheRepo) *AggregationService {
	return &AggregationService{
		profile:     profile,
		historyRepo: historyRepo,
		cacheRepo:   cacheRepo,
		now:         time.Now,
	}
}

// BuildSnapshot derives the scope totals from a normalized profile
// and the recent category sums. Pure: identical inputs yield
// bit-identical snapshots, which widgets rely on when they each call
// it per render.
func BuildSnapshot(p models.BaselineProfile, recent models.CategoryTotals) models.CoreSnapshot {
	scope1 := round2(p.FuelLiters*factorFuelPerLiter + p.WasteKg*factorWastePerKg + recent.Travel*factorRecentTravelKg)
	scope2 := round2(p.ElectricityKwh * factorGridPerKwh)
	scope3 := round2(recent.Food + p.MaterialsKg*factorMaterialsPerKg + p.LogisticsKm*factorLogisticsPerKm + p.CommuteKmWeek*weeksPerMonth*factorCommutePerKm)

	rate := clampFloat(p.RecycleRate, 0, 100)

	return models.CoreSnapshot{
		Scope1Kg:      scope1,
		Scope2Kg:      scope2,
		Scope3Kg:      scope3,
		CarbonTotalKg: round2(scope1 + scope2 + scope3),
		Resources: models.ResourceSummary{
			ElectricityKwh: p.ElectricityKwh,
			WaterM3:        p.WaterM3,
			FuelLiters:     p.FuelLiters,
			WasteKg:        p.WasteKg,
			RecycleRate:    rate,
		},
		Materials: models.MaterialSummary{
			MaterialsKg:       p.MaterialsKg,
			RecycledWasteKg:   round2(p.WasteKg * rate / 100),
			VirginMaterialsKg: round2(p.MaterialsKg * (1 - rate/100)),
		},
		Logistics: models.LogisticsSummary{
			LogisticsKm:   p.LogisticsKm,
			CommuteKmWeek: p.CommuteKmWeek,
		},
	}
}

// Snapshot recomputes the core aggregate from current profile and
// history. Never cached; repeated calls with no intervening writes
// return identical values.
func (s *AggregationService) Snapshot(ctx context.Context) (models.CoreSnapshot, error) {
	p, err := s.profile.GetProfile(ctx)
	if err != nil {
		return models.CoreSnapshot{}, err
	}
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.CoreSnapshot{}, err
	}
	return BuildSnapshot(p, recentTotalsAt(entries, recentWindowDays, s.now())), nil
}

// TimeSeries buckets history into a chartable series. The regime is
// picked from rangeDays: calendar days up to 45, 7-day half-open
// windows up to 180, calendar months beyond. Empty buckets are zero
// and never omitted; a range with no entries at all substitutes the
// demo fallback series.
func (s *AggregationService) TimeSeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	if rangeDays < 1 {
		rangeDays = 1
	}
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.TimeSeries{}, err
	}
	return buildTimeSeries(entries, rangeDays, s.now()), nil
}

// CategorySeries returns the per-category totals within the range,
// ordered [home, food, travel].
func (s *AggregationService) CategorySeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	if rangeDays < 1 {
		rangeDays = 1
	}
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.TimeSeries{}, err
	}
	return buildCategorySeries(entries, rangeDays, s.now()), nil
}

// Cache keys for the standard dashboard ranges.
const (
	cacheKeyCategorySeries = "series:categories:30"
	cacheKeyDailySeries    = "series:daily:7"
	cacheKeyWeeklySeries   = "series:weekly:90"
	cacheKeyMonthlySeries  = "series:monthly:365"
)

// RefreshCaches rebuilds the persisted display series for the
// standard ranges. Called synchronously after every history write and
// periodically by the background refresher; the cache is derived
// state the engine may rebuild at any time.
func (s *AggregationService) RefreshCaches(ctx context.Context) error {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return err
	}
	now := s.now()

	for key, series := range map[string]models.TimeSeries{
		cacheKeyCategorySeries: buildCategorySeries(entries, 30, now),
		cacheKeyDailySeries:    buildTimeSeries(entries, 7, now),
		cacheKeyWeeklySeries:   buildTimeSeries(entries, 90, now),
		cacheKeyMonthlySeries:  buildTimeSeries(entries, 365, now),
	} {
		if err := s.cacheRepo.Put(ctx, key, series); err != nil {
			return fmt.Errorf("refresh %s: %w", key, err)
		}
	}
	return nil
}

func buildTimeSeries(entries []models.CalculationEntry, rangeDays int, now time.Time) models.TimeSeries {
	switch {
	case rangeDays <= dailyRangeMaxDays:
		return bucketDaily(entries, rangeDays, now)
	case rangeDays <= weeklyRangeMaxDays:
		return bucketWeekly(entries, rangeDays, now)
	default:
		return bucketMonthly(entries, rangeDays, now)
	}
}

// bucketDaily sums entries per local calendar date, one bucket per
// day, oldest first, ending today.
func bucketDaily(entries []models.CalculationEntry, rangeDays int, now time.Time) models.TimeSeries {
	today := startOfDay(now)

	labels := make([]string, rangeDays)
	values := make([]float64, rangeDays)
	matched := 0

	for i := 0; i < rangeDays; i++ {
		day := today.AddDate(0, 0, -(rangeDays - 1 - i))
		labels[i] = day.Format("Jan 2")
		next := day.AddDate(0, 0, 1)
		for _, e := range entries {
			ts := e.OccurredAt.In(now.Location())
			if !ts.Before(day) && ts.Before(next) {
				values[i] = round2(values[i] + e.Kilograms)
				matched++
			}
		}
	}
	if matched == 0 {
		return models.TimeSeries{Labels: labels, Values: demoSeries(fallbackShortSeries, rangeDays)}
	}
	return models.TimeSeries{Labels: labels, Values: values}
}

// bucketWeekly covers the range with half-open [start, start+7d)
// windows, at least four of them, the last one ending after today.
func bucketWeekly(entries []models.CalculationEntry, rangeDays int, now time.Time) models.TimeSeries {
	n := ceilDiv(rangeDays, 7)
	if n < minWeeklyBuckets {
		n = minWeeklyBuckets
	}
	end := startOfDay(now).AddDate(0, 0, 1) // tomorrow midnight, exclusive

	labels := make([]string, n)
	values := make([]float64, n)
	matched := 0

	for i := 0; i < n; i++ {
		start := end.AddDate(0, 0, -7*(n-i))
		stop := start.AddDate(0, 0, 7)
		labels[i] = start.Format("Jan 2")
		for _, e := range entries {
			ts := e.OccurredAt.In(now.Location())
			if !ts.Before(start) && ts.Before(stop) {
				values[i] = round2(values[i] + e.Kilograms)
				matched++
			}
		}
	}
	if matched == 0 {
		return models.TimeSeries{Labels: labels, Values: demoSeries(fallbackShortSeries, n)}
	}
	return models.TimeSeries{Labels: labels, Values: values}
}

// bucketMonthly keys buckets by calendar year-month, between six and
// twelve of them, the current month last.
func bucketMonthly(entries []models.CalculationEntry, rangeDays int, now time.Time) models.TimeSeries {
	n := clampInt(ceilDiv(rangeDays, 30), minMonthlyBuckets, maxMonthlyBuckets)
	current := startOfMonth(now)

	labels := make([]string, n)
	values := make([]float64, n)
	matched := 0

	for i := 0; i < n; i++ {
		month := current.AddDate(0, -(n - 1 - i), 0)
		labels[i] = month.Format("Jan")
		for _, e := range entries {
			ts := e.OccurredAt.In(now.Location())
			if ts.Year() == month.Year() && ts.Month() == month.Month() {
				values[i] = round2(values[i] + e.Kilograms)
				matched++
			}
		}
	}
	if matched == 0 {
		return models.TimeSeries{Labels: labels, Values: demoSeries(fallbackMonthlySeries, n)}
	}
	return models.TimeSeries{Labels: labels, Values: values}
}

func buildCategorySeries(entries []models.CalculationEntry, rangeDays int, now time.Time) models.TimeSeries {
	totals := recentTotalsAt(entries, rangeDays, now)
	if totals.Home == 0 && totals.Food == 0 && totals.Travel == 0 {
		return models.TimeSeries{
			Labels: append([]string(nil), categoryLabels...),
			Values: append([]float64(nil), fallbackCategoryValues...),
		}
	}
	return models.TimeSeries{
		Labels: append([]string(nil), categoryLabels...),
		Values: []float64{totals.Home, totals.Food, totals.Travel},
	}
}

// demoSeries cycles the fallback values to the requested length.
func demoSeries(base []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}
