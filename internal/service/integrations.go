package service

import (
	"context"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Stub readings for the three mock data sources, matching the demo
// endpoint payloads. A real deployment would fetch these from the
// connected services.
var stubReadings = []models.SourceReading{
	{Source: models.SourceSmartMeter, Impact: 300, Detail: map[string]float64{"consumption_kwh": 320}},
	{Source: models.SourceGrocery, Impact: 180, Detail: map[string]float64{"purchases_last_month": 42}},
	{Source: models.SourceTravel, Impact: 210, Detail: map[string]float64{"km_driven": 120}},
}

type IntegrationService struct {
	historyRepo repository.HistoryRepo
	now         func() time.Time
	// readings can be swapped out in tests or when a source is down
	readings func(ctx context.Context) []models.SourceReading
}

func NewIntegrationService(historyRepo repository.HistoryRepo) *IntegrationService {
	return &IntegrationService{
		historyRepo: historyRepo,
		now:         time.Now,
		readings: func(ctx context.Context) []models.SourceReading {
			return stubReadings
		},
	}
}

// Readings returns whatever the data sources currently report. An
// unreachable source simply produces no reading.
func (s *IntegrationService) Readings(ctx context.Context) ([]models.SourceReading, error) {
	return s.readings(ctx), nil
}

// Breakdown starts from the history-derived category totals and lets
// any reachable source reading with a positive impact override its
// category. With every source absent the result is pure history data,
// so aggregation never depends on the integrations being up.
func (s *IntegrationService) Breakdown(ctx context.Context) (models.CategoryTotals, error) {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.CategoryTotals{}, err
	}
	b := recentTotalsAt(entries, recentWindowDays, s.now())

	for _, r := range s.readings(ctx) {
		if r.Impact <= 0 {
			continue
		}
		switch r.Source {
		case models.SourceSmartMeter:
			b.Home = r.Impact
		case models.SourceGrocery:
			b.Food = r.Impact
		case models.SourceTravel:
			b.Travel = r.Impact
		}
	}
	return b, nil
}
