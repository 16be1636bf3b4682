package service

import (
	"context"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Profile reads and writes the baseline resource-usage profile.
// Reads always return a fully normalized profile; stored garbage
// degrades to documented defaults, never to an error.
type Profile interface {
	GetProfile(ctx context.Context) (models.BaselineProfile, error)
	SaveProfile(ctx context.Context, p models.BaselineProfile) (models.BaselineProfile, error)
}

// History is the bounded, append-only calculation log. Record leaves
// all derived display caches consistent with the new entry before it
// returns.
type History interface {
	Record(ctx context.Context, category string, kilograms float64, metadata map[string]any) error
	Entries(ctx context.Context) ([]models.CalculationEntry, error)
	RecentTotals(ctx context.Context, windowDays int) (models.CategoryTotals, error)
}

// Aggregation derives scope totals and chart series from the profile
// and history. Everything here is a pure recomputation; nothing is
// read back from caches.
type Aggregation interface {
	Snapshot(ctx context.Context) (models.CoreSnapshot, error)
	TimeSeries(ctx context.Context, rangeDays int) (models.TimeSeries, error)
	CategorySeries(ctx context.Context, rangeDays int) (models.TimeSeries, error)
	RefreshCaches(ctx context.Context) error
}

// Scenario projects what-if lever combinations against the current
// baseline and persists the latest result.
type Scenario interface {
	RunScenario(ctx context.Context, choice models.ScenarioChoice) (models.ScenarioResult, error)
	SavedScenario(ctx context.Context) (*models.ScenarioResult, error)
}

// Lifecycle decomposes the current total across the five fixed stages.
type Lifecycle interface {
	AllocateLifecycle(ctx context.Context) ([]models.LifecycleStage, error)
}

// Insights produces the ranked guidance records and the action plan.
type Insights interface {
	GenerateInsights(ctx context.Context) (models.InsightReport, error)
}

// Score computes the eco-credit score and the gamification view.
type Score interface {
	ScoreReport(ctx context.Context) (models.ScoreReport, error)
	Gamification(ctx context.Context) (models.Gamification, error)
}

// Integrations exposes the external data-source readings and the
// category breakdown merged from them. Aggregation works identically
// when no source is reachable.
type Integrations interface {
	Readings(ctx context.Context) ([]models.SourceReading, error)
	Breakdown(ctx context.Context) (models.CategoryTotals, error)
}

// Community is the shared impact board.
type Community interface {
	Board(ctx context.Context) (models.CommunityBoard, error)
	PostStory(ctx context.Context, name, text string, impactKg float64) (models.CommunityStory, error)
}

// Goals manages user pledges.
type Goals interface {
	PledgeGoal(ctx context.Context, title string, targetPct float64, due string) (models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
}

// Habits is the eco-action logger behind the weekly streak view.
type Habits interface {
	LogHabit(ctx context.Context, action string, count float64) (models.HabitLog, error)
	Streaks(ctx context.Context) ([]models.HabitStreak, error)
}

// Calculators are the quick single-purpose estimators. Each call logs
// its result into the history as a side effect.
type Calculators interface {
	CalcTravel(ctx context.Context, km float64, mode string) (models.CalcOutcome, error)
	CalcDiet(ctx context.Context, meals float64, diet string) (models.CalcOutcome, error)
	CalcHome(ctx context.Context, kwh float64) (models.CalcOutcome, error)
}

// Refresher runs the background loop that keeps display caches warm
// across day boundaries. Stop via context cancellation in main().
type Refresher interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Profile
	History
	Aggregation
	Scenario
	Lifecycle
	Insights
	Score
	Integrations
	Community
	Calculators
	Goals
	Habits
	Refresher
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	prof := NewProfileService(repos.Profile)
	agg := NewAggregationService(prof, repos.History, repos.Cache)
	integ := NewIntegrationService(repos.History)
	hist := NewHistoryService(repos.History, agg)

	return &Service{
		Profile:       prof,
		History:       hist,
		Aggregation:   agg,
		Scenario:      NewScenarioService(repos.Scenario, agg),
		Lifecycle:     NewLifecycleService(agg),
		Insights:      NewInsightService(agg, repos.Scenario, repos.History),
		Score:         NewScoreService(integ, repos.Scenario, prof),
		Integrations:  integ,
		Community:     NewCommunityService(repos.Community),
		Calculators:   NewCalculatorService(hist),
		Goals:         NewGoalService(repos.Goals),
		Habits:        NewHabitService(repos.Habits),
		Refresher:     NewRefresherService(agg),
		Authorization: NewAuthService(repos.Auth),
	}
}
