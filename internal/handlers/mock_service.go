package handlers

import (
	"context"
	"net/http"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfile struct {
	profile models.BaselineProfile
	getErr  error
	saveErr error
	saved   []models.BaselineProfile
}

func (m *mockProfile) GetProfile(ctx context.Context) (models.BaselineProfile, error) {
	return m.profile, m.getErr
}
func (m *mockProfile) SaveProfile(ctx context.Context, p models.BaselineProfile) (models.BaselineProfile, error) {
	m.saved = append(m.saved, p)
	return p, m.saveErr
}

type mockHistory struct {
	entries      []models.CalculationEntry
	recordErr    error
	lastCategory string
	lastKg       float64
	recordCalls  int
}

func (m *mockHistory) Record(ctx context.Context, category string, kilograms float64, metadata map[string]any) error {
	m.recordCalls++
	m.lastCategory = category
	m.lastKg = kilograms
	return m.recordErr
}
func (m *mockHistory) Entries(ctx context.Context) ([]models.CalculationEntry, error) {
	return m.entries, nil
}
func (m *mockHistory) RecentTotals(ctx context.Context, windowDays int) (models.CategoryTotals, error) {
	return models.CategoryTotals{}, nil
}

type mockAggregation struct {
	snap          models.CoreSnapshot
	snapErr       error
	series        models.TimeSeries
	lastRangeDays int
}

func (m *mockAggregation) Snapshot(ctx context.Context) (models.CoreSnapshot, error) {
	return m.snap, m.snapErr
}
func (m *mockAggregation) TimeSeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	m.lastRangeDays = rangeDays
	return m.series, nil
}
func (m *mockAggregation) CategorySeries(ctx context.Context, rangeDays int) (models.TimeSeries, error) {
	m.lastRangeDays = rangeDays
	return m.series, nil
}
func (m *mockAggregation) RefreshCaches(ctx context.Context) error { return nil }

type mockScenario struct {
	result     models.ScenarioResult
	runErr     error
	saved      *models.ScenarioResult
	lastChoice models.ScenarioChoice
}

func (m *mockScenario) RunScenario(ctx context.Context, choice models.ScenarioChoice) (models.ScenarioResult, error) {
	m.lastChoice = choice
	return m.result, m.runErr
}
func (m *mockScenario) SavedScenario(ctx context.Context) (*models.ScenarioResult, error) {
	return m.saved, nil
}

type mockLifecycle struct {
	stages []models.LifecycleStage
	err    error
}

func (m *mockLifecycle) AllocateLifecycle(ctx context.Context) ([]models.LifecycleStage, error) {
	return m.stages, m.err
}

type mockInsights struct {
	report models.InsightReport
	err    error
}

func (m *mockInsights) GenerateInsights(ctx context.Context) (models.InsightReport, error) {
	return m.report, m.err
}

type mockScore struct {
	report models.ScoreReport
	view   models.Gamification
	err    error
}

func (m *mockScore) ScoreReport(ctx context.Context) (models.ScoreReport, error) {
	return m.report, m.err
}
func (m *mockScore) Gamification(ctx context.Context) (models.Gamification, error) {
	return m.view, m.err
}

type mockIntegrations struct {
	readings  []models.SourceReading
	breakdown models.CategoryTotals
	err       error
}

func (m *mockIntegrations) Readings(ctx context.Context) ([]models.SourceReading, error) {
	return m.readings, m.err
}
func (m *mockIntegrations) Breakdown(ctx context.Context) (models.CategoryTotals, error) {
	return m.breakdown, m.err
}

type mockCommunity struct {
	board    models.CommunityBoard
	story    models.CommunityStory
	boardErr error
	postErr  error
}

func (m *mockCommunity) Board(ctx context.Context) (models.CommunityBoard, error) {
	return m.board, m.boardErr
}
func (m *mockCommunity) PostStory(ctx context.Context, name, text string, impactKg float64) (models.CommunityStory, error) {
	return m.story, m.postErr
}

type mockGoals struct {
	goals []models.Goal
	goal  models.Goal
	err   error
}

func (m *mockGoals) PledgeGoal(ctx context.Context, title string, targetPct float64, due string) (models.Goal, error) {
	return m.goal, m.err
}
func (m *mockGoals) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return m.goals, m.err
}

type mockHabits struct {
	log        models.HabitLog
	streaks    []models.HabitStreak
	logErr     error
	lastAction string
	lastCount  float64
}

func (m *mockHabits) LogHabit(ctx context.Context, action string, count float64) (models.HabitLog, error) {
	m.lastAction = action
	m.lastCount = count
	return m.log, m.logErr
}
func (m *mockHabits) Streaks(ctx context.Context) ([]models.HabitStreak, error) {
	return m.streaks, nil
}

type mockCalculators struct {
	outcome  models.CalcOutcome
	err      error
	lastMode string
	lastKm   float64
}

func (m *mockCalculators) CalcTravel(ctx context.Context, km float64, mode string) (models.CalcOutcome, error) {
	m.lastKm = km
	m.lastMode = mode
	return m.outcome, m.err
}
func (m *mockCalculators) CalcDiet(ctx context.Context, meals float64, diet string) (models.CalcOutcome, error) {
	return m.outcome, m.err
}
func (m *mockCalculators) CalcHome(ctx context.Context, kwh float64) (models.CalcOutcome, error) {
	return m.outcome, m.err
}

type mockRefresher struct{}

func (m *mockRefresher) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func applyHeader(req *http.Request, header http.Header) {
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}
