package service

import (
	"context"
	"math"
	"sort"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Eco-credit scoring: a fixed budget minus weighted category impacts,
// clamped to the display range.
const (
	scoreBudget       = 800
	scoreWeightHome   = 0.3
	scoreWeightFood   = 0.2
	scoreWeightTravel = 0.25
	scoreMax          = 1000

	levelHeroMin     = 800
	levelAdvocateMin = 650
)

// Display tiers.
const (
	LevelHero     = "Eco Hero"
	LevelAdvocate = "Eco Advocate"
	LevelNovice   = "Eco Novice"
)

// Fixed neighbour entries shown next to the user's own score.
var neighbourRanks = []models.RankEntry{
	{Name: "Average Neighbour", Score: 640},
	{Name: "Top Local", Score: 880},
}

type ScoreService struct {
	integrations Integrations
	scenarioRepo repository.ScenarioRepo
	profile      Profile
}

func NewScoreService(integrations Integrations, scenarioRepo repository.ScenarioRepo, profile Profile) *ScoreService {
	return &ScoreService{
		integrations: integrations,
		scenarioRepo: scenarioRepo,
		profile:      profile,
	}
}

// ComputeScore turns a category breakdown into the 0..1000 eco-credit
// score.
func ComputeScore(b models.CategoryTotals) int {
	raw := scoreBudget - (b.Home*scoreWeightHome + b.Food*scoreWeightFood + b.Travel*scoreWeightTravel)
	return clampInt(int(math.Round(raw)), 0, scoreMax)
}

// LevelFor maps a score to its display tier.
func LevelFor(score int) string {
	switch {
	case score > levelHeroMin:
		return LevelHero
	case score > levelAdvocateMin:
		return LevelAdvocate
	default:
		return LevelNovice
	}
}

// moodFor picks the dashboard caption by score thirds.
func moodFor(score int) string {
	pct := float64(score) / scoreMax
	switch {
	case pct > 0.66:
		return "Purr-fect, keep it up!"
	case pct > 0.33:
		return "Good, small wins matter"
	default:
		return "Let's try some small changes today"
	}
}

func (s *ScoreService) ScoreReport(ctx context.Context) (models.ScoreReport, error) {
	breakdown, err := s.integrations.Breakdown(ctx)
	if err != nil {
		return models.ScoreReport{}, err
	}
	score := ComputeScore(breakdown)
	return models.ScoreReport{
		Score:     score,
		Level:     LevelFor(score),
		Mood:      moodFor(score),
		Breakdown: breakdown,
	}, nil
}

// Gamification derives badges from current state; nothing is stored.
func (s *ScoreService) Gamification(ctx context.Context) (models.Gamification, error) {
	report, err := s.ScoreReport(ctx)
	if err != nil {
		return models.Gamification{}, err
	}

	badges := []string{"Getting Started"}
	if scenario, err := s.scenarioRepo.Load(ctx); err == nil && scenario != nil && scenario.ReductionPct > 0 {
		badges = append(badges, "Scenario Planner")
	}
	if p, err := s.profile.GetProfile(ctx); err == nil && p.RecycleRate >= recycleRateTarget {
		badges = append(badges, "Recycling Champion")
	}

	board := make([]models.RankEntry, 0, len(neighbourRanks)+1)
	board = append(board, models.RankEntry{Name: "You", Score: report.Score})
	board = append(board, neighbourRanks...)
	sort.SliceStable(board, func(i, j int) bool { return board[i].Score > board[j].Score })

	return models.Gamification{
		Level:       report.Level,
		Badges:      badges,
		Leaderboard: board,
	}, nil
}
