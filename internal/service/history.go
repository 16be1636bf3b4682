package service

import (
	"context"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
)

// maxHistoryEntries bounds the log; the oldest entries are evicted
// first once the cap is reached.
const maxHistoryEntries = 500

type HistoryService struct {
	historyRepo repository.HistoryRepo
	agg         Aggregation
	now         func() time.Time
}

func NewHistoryService(historyRepo repository.HistoryRepo, agg Aggregation) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		agg:         agg,
		now:         time.Now,
	}
}

// Record appends one calculator result. Non-finite or negative
// kilograms are rejected as a silent no-op; nothing invalid is ever
// stored. On success the derived display caches are rebuilt before
// returning, so no reader can observe a partially updated state.
func (s *HistoryService) Record(ctx context.Context, category string, kilograms float64, metadata map[string]any) error {
	if !isUsableNumber(kilograms) {
		return nil
	}

	var meta any
	if len(metadata) > 0 {
		meta = metadata
	}
	entry := models.CalculationEntry{
		EntryID:    uuid.NewString(),
		OccurredAt: s.now().UTC(),
		Category:   strings.ToLower(strings.TrimSpace(category)),
		Kilograms:  round2(kilograms),
		Metadata:   meta,
	}

	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return err
	}
	if err := s.historyRepo.Prune(ctx, maxHistoryEntries); err != nil {
		return err
	}
	return s.agg.RefreshCaches(ctx)
}

// Entries returns the log oldest-to-newest.
func (s *HistoryService) Entries(ctx context.Context) ([]models.CalculationEntry, error) {
	return s.historyRepo.List(ctx)
}

// RecentTotals sums kilograms per category over a rolling window.
// Entries with non-positive kilograms or an unrecognized category are
// excluded from the sums but stay in the log.
func (s *HistoryService) RecentTotals(ctx context.Context, windowDays int) (models.CategoryTotals, error) {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.CategoryTotals{}, err
	}
	return recentTotalsAt(entries, windowDays, s.now()), nil
}

// recentTotalsAt is the pure window sum shared with the aggregation
// engine.
func recentTotalsAt(entries []models.CalculationEntry, windowDays int, now time.Time) models.CategoryTotals {
	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)

	var t models.CategoryTotals
	for _, e := range entries {
		if e.Kilograms <= 0 || !e.OccurredAt.After(cutoff) {
			continue
		}
		switch e.Category {
		case models.CategoryHome:
			t.Home += e.Kilograms
		case models.CategoryFood:
			t.Food += e.Kilograms
		case models.CategoryTravel:
			t.Travel += e.Kilograms
		}
	}
	t.Home = round2(t.Home)
	t.Food = round2(t.Food)
	t.Travel = round2(t.Travel)
	return t
}
