package service

import (
	"context"
	"math"
	"testing"
	"time"

	"ecotrack/internal/models"
)

type historyRepoStub struct {
	entries    []models.CalculationEntry
	appended   []models.CalculationEntry
	pruneCalls []int
}

func (s *historyRepoStub) Append(ctx context.Context, e models.CalculationEntry) error {
	s.appended = append(s.appended, e)
	return nil
}

func (s *historyRepoStub) List(ctx context.Context) ([]models.CalculationEntry, error) {
	return s.entries, nil
}

func (s *historyRepoStub) Prune(ctx context.Context, keep int) error {
	s.pruneCalls = append(s.pruneCalls, keep)
	return nil
}

type aggStub struct {
	refreshCalls int
	snap         models.CoreSnapshot
	snapErr      error
	series       models.TimeSeries
}

func (s *aggStub) Snapshot(ctx context.Context) (models.CoreSnapshot, error) {
	return s.snap, s.snapErr
}

func (s *aggStub) TimeSeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	return s.series, nil
}

func (s *aggStub) CategorySeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	return s.series, nil
}

func (s *aggStub) RefreshCaches(ctx context.Context) error {
	s.refreshCalls++
	return nil
}

func TestHistoryService_Record_RejectsUnusableAsNoOp(t *testing.T) {
	t.Parallel()

	for _, kg := range []float64{-5, math.NaN(), math.Inf(1)} {
		repo := &historyRepoStub{}
		agg := &aggStub{}
		svc := NewHistoryService(repo, agg)

		if err := svc.Record(context.Background(), models.CategoryHome, kg, nil); err != nil {
			t.Fatalf("Record(%v) error = %v, want nil", kg, err)
		}
		if len(repo.appended) != 0 {
			t.Errorf("Record(%v) appended %d entries, want 0", kg, len(repo.appended))
		}
		if agg.refreshCalls != 0 {
			t.Errorf("Record(%v) refreshed caches %d times, want 0", kg, agg.refreshCalls)
		}
	}
}

func TestHistoryService_Record_ZeroIsStored(t *testing.T) {
	t.Parallel()

	repo := &historyRepoStub{}
	agg := &aggStub{}
	svc := NewHistoryService(repo, agg)

	if err := svc.Record(context.Background(), models.CategoryHome, 0, nil); err != nil {
		t.Fatalf("Record(0) error = %v, want nil", err)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("Record(0) appended %d entries, want 1", len(repo.appended))
	}
	if repo.appended[0].Kilograms != 0 {
		t.Errorf("Kilograms = %v, want 0", repo.appended[0].Kilograms)
	}
	if agg.refreshCalls != 1 {
		t.Errorf("refreshed caches %d times, want 1", agg.refreshCalls)
	}
}

func TestHistoryService_Record_NormalizesAndCascades(t *testing.T) {
	t.Parallel()

	repo := &historyRepoStub{}
	agg := &aggStub{}
	svc := NewHistoryService(repo, agg)
	fixed := time.Date(2026, 3, 10, 14, 30, 0, 0, time.FixedZone("X", 3*3600))
	svc.now = func() time.Time { return fixed }

	if err := svc.Record(context.Background(), "  Travel ", 12.345, map[string]any{"km": 50.0}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d entries, want 1", len(repo.appended))
	}
	e := repo.appended[0]
	if e.EntryID == "" {
		t.Error("EntryID must be generated")
	}
	if e.Category != models.CategoryTravel {
		t.Errorf("Category: want %q, got %q", models.CategoryTravel, e.Category)
	}
	if e.Kilograms != 12.35 {
		t.Errorf("Kilograms: want 12.35, got %v", e.Kilograms)
	}
	if e.OccurredAt.Location() != time.UTC {
		t.Errorf("OccurredAt must be UTC, got %v", e.OccurredAt.Location())
	}
	if !e.OccurredAt.Equal(fixed) {
		t.Errorf("OccurredAt: want %v, got %v", fixed.UTC(), e.OccurredAt)
	}

	if len(repo.pruneCalls) != 1 || repo.pruneCalls[0] != maxHistoryEntries {
		t.Errorf("prune calls: want [%d], got %v", maxHistoryEntries, repo.pruneCalls)
	}
	if agg.refreshCalls != 1 {
		t.Errorf("cache refreshes: want 1, got %d", agg.refreshCalls)
	}
}

func TestRecentTotalsAt_WindowAndCategoryFiltering(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.CalculationEntry{
		{OccurredAt: now.Add(-1 * time.Hour), Category: models.CategoryHome, Kilograms: 10},
		{OccurredAt: now.Add(-29 * 24 * time.Hour), Category: models.CategoryFood, Kilograms: 4.2},
		{OccurredAt: now.Add(-31 * 24 * time.Hour), Category: models.CategoryTravel, Kilograms: 99}, // outside window
		{OccurredAt: now.Add(-2 * time.Hour), Category: "misc", Kilograms: 50},                      // unknown category
		{OccurredAt: now.Add(-2 * time.Hour), Category: models.CategoryTravel, Kilograms: -3},       // non-positive
		{OccurredAt: now.Add(-3 * time.Hour), Category: models.CategoryTravel, Kilograms: 7.5},
	}

	got := recentTotalsAt(entries, 30, now)

	if got.Home != 10 {
		t.Errorf("Home: want 10, got %v", got.Home)
	}
	if got.Food != 4.2 {
		t.Errorf("Food: want 4.2, got %v", got.Food)
	}
	if got.Travel != 7.5 {
		t.Errorf("Travel: want 7.5, got %v", got.Travel)
	}
}

func TestRecentTotalsAt_CutoffIsExclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	onCutoff := []models.CalculationEntry{
		{OccurredAt: now.Add(-30 * 24 * time.Hour), Category: models.CategoryHome, Kilograms: 5},
	}
	if got := recentTotalsAt(onCutoff, 30, now); got.Home != 0 {
		t.Errorf("entry exactly on cutoff must be excluded, got %v", got.Home)
	}
}
