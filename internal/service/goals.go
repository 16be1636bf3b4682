package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
)

var ErrEmptyGoalTitle = errors.New("goal title is required")

type GoalService struct {
	goalRepo repository.GoalRepo
	now      func() time.Time
}

func NewGoalService(goalRepo repository.GoalRepo) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// PledgeGoal records a reduction pledge. The target percentage is
// clamped to 0..100; the due date is informational and stored as
// given.
func (s *GoalService) PledgeGoal(ctx context.Context, title string, targetPct float64, due string) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Goal{}, ErrEmptyGoalTitle
	}
	if !isUsableNumber(targetPct) {
		targetPct = 0
	}

	goal := models.Goal{
		GoalID:    uuid.NewString(),
		Title:     title,
		TargetPct: clampFloat(targetPct, 0, 100),
		Due:       strings.TrimSpace(due),
		Progress:  0,
		CreatedAt: s.now().UTC(),
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.goalRepo.List(ctx)
}
