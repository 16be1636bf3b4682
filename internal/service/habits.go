package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
)

var ErrEmptyHabitAction = errors.New("habit action is required")

// The log keeps the 200 newest entries; the streak view folds over a
// rolling 7-day window.
const (
	habitLogCap       = 200
	streakWindowHours = 7 * 24
)

type HabitService struct {
	habitRepo repository.HabitRepo
	now       func() time.Time
}

func NewHabitService(habitRepo repository.HabitRepo) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
		now:       time.Now,
	}
}

// LogHabit appends an eco-action to the log and prunes it to the cap.
// An unusable or zero count falls back to 1, the form default.
func (s *HabitService) LogHabit(ctx context.Context, action string, count float64) (models.HabitLog, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return models.HabitLog{}, ErrEmptyHabitAction
	}
	if !isUsableNumber(count) || count == 0 {
		count = 1
	}

	log := models.HabitLog{
		LogID:    uuid.NewString(),
		Action:   action,
		Count:    count,
		LoggedAt: s.now().UTC(),
	}
	if err := s.habitRepo.Append(ctx, log); err != nil {
		return models.HabitLog{}, err
	}
	if err := s.habitRepo.Prune(ctx, habitLogCap); err != nil {
		return models.HabitLog{}, err
	}
	return log, nil
}

// Streaks sums counts per action over the logs of the last seven days
// (strictly younger than the window), highest weekly count first.
func (s *HabitService) Streaks(ctx context.Context) ([]models.HabitStreak, error) {
	logs, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-streakWindowHours * time.Hour)
	totals := map[string]float64{}
	for _, l := range logs {
		if !l.LoggedAt.After(cutoff) {
			continue
		}
		totals[l.Action] += l.Count
	}

	out := make([]models.HabitStreak, 0, len(totals))
	for action, count := range totals {
		out = append(out, models.HabitStreak{Action: action, WeekCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeekCount != out[j].WeekCount {
			return out[i].WeekCount > out[j].WeekCount
		}
		return out[i].Action < out[j].Action
	})
	return out, nil
}
