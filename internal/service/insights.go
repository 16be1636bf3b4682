package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Thresholds for the conditional insight rules.
const (
	recycleRateTarget    = 50 // percent
	travelInsightMinKg   = 50 // recent logged travel
	waterInsightMinM3    = 22
	maxActionPlanEntries = 4
)

// Cut factors: the estimated reachable share of the dominant scope.
const (
	scope1CutFactor = 0.30
	scope2CutFactor = 0.25
	scope3CutFactor = 0.20
)

// insightInput is everything the rule table reads. Generation is a
// pure function of it, so identical inputs always produce the same
// report.
type insightInput struct {
	snap           models.CoreSnapshot
	scenario       *models.ScenarioResult
	recentTravelKg float64
}

// insightRule is one row of the decision table: a predicate, the
// insight it emits, and an optional action-plan entry. Rules run in
// table order, which fixes the output ordering.
type insightRule struct {
	applies func(insightInput) bool
	insight func(insightInput) models.Insight
	action  func(insightInput) *models.ActionItem
}

type playbookEntry struct {
	title        string
	text         string
	actionTitle  string
	actionDetail string
	cutFactor    float64
}

// scopePlaybook is indexed by dominant scope (0 = scope 1). Ties are
// broken toward the lower index, so scope 1 wins over 2 wins over 3.
var scopePlaybook = [3]playbookEntry{
	{
		title:        "Direct emissions lead",
		text:         "Fuel burn and waste handling are your largest source. Service the heating system, cut short car trips and compost organics.",
		actionTitle:  "Reduce direct fuel use",
		actionDetail: "Combine errands, tune the boiler, compost organic waste",
		cutFactor:    scope1CutFactor,
	},
	{
		title:        "Purchased energy leads",
		text:         "Electricity is your largest source. Switch to LED bulbs and smarter heating controls.",
		actionTitle:  "Trim electricity use",
		actionDetail: "LED retrofit, smart thermostat, off-peak appliance runs",
		cutFactor:    scope2CutFactor,
	},
	{
		title:        "Value chain leads",
		text:         "Materials and logistics dominate your footprint. Prefer recycled inputs and shift freight to rail.",
		actionTitle:  "Rework sourcing and freight",
		actionDetail: "Recycled materials, consolidated shipments, rail over road",
		cutFactor:    scope3CutFactor,
	},
}

func dominantScope(s models.CoreSnapshot) int {
	scopes := [3]float64{s.Scope1Kg, s.Scope2Kg, s.Scope3Kg}
	best := 0
	for i := 1; i < len(scopes); i++ {
		if scopes[i] > scopes[best] { // strict: first-listed wins ties
			best = i
		}
	}
	return best
}

func scopeValue(s models.CoreSnapshot, idx int) float64 {
	switch idx {
	case 0:
		return s.Scope1Kg
	case 1:
		return s.Scope2Kg
	default:
		return s.Scope3Kg
	}
}

// insightRules is evaluated top to bottom; the order here is the
// display order.
var insightRules = []insightRule{
	{
		// 1. playbook entry for whichever scope is largest
		applies: func(insightInput) bool { return true },
		insight: func(in insightInput) models.Insight {
			e := scopePlaybook[dominantScope(in.snap)]
			return models.Insight{Title: e.title, Text: e.text}
		},
		action: func(in insightInput) *models.ActionItem {
			idx := dominantScope(in.snap)
			e := scopePlaybook[idx]
			return &models.ActionItem{
				Title:         e.actionTitle,
				Detail:        e.actionDetail,
				ImpactKgMonth: round2(scopeValue(in.snap, idx) * e.cutFactor),
			}
		},
	},
	{
		// 2. recycling rate, branching at the target threshold
		applies: func(insightInput) bool { return true },
		insight: func(in insightInput) models.Insight {
			rate := in.snap.Resources.RecycleRate
			if rate < recycleRateTarget {
				return models.Insight{
					Title: "Recycling below target",
					Text:  fmt.Sprintf("You recycle %.0f%% of waste. Separating organics and packaging would push this past %d%%.", rate, recycleRateTarget),
				}
			}
			return models.Insight{
				Title: "Recycling on track",
				Text:  fmt.Sprintf("A %.0f%% recycling rate keeps most of your waste out of landfill. Keep it up.", rate),
			}
		},
		action: func(in insightInput) *models.ActionItem {
			if in.snap.Resources.RecycleRate >= recycleRateTarget {
				return nil
			}
			return &models.ActionItem{
				Title:         "Raise the recycling rate",
				Detail:        "Separate organics and packaging at the source",
				ImpactKgMonth: round2(in.snap.Resources.WasteKg * factorWastePerKg / 2),
			}
		},
	},
	{
		// 3. scenario status: report the saved run or prompt for one
		applies: func(insightInput) bool { return true },
		insight: func(in insightInput) models.Insight {
			if in.scenario != nil && in.scenario.ReductionPct > 0 {
				return models.Insight{
					Title: "Scenario saved",
					Text: fmt.Sprintf("Your saved scenario cuts %.0f%% (%.2f kg) off the current baseline.",
						in.scenario.ReductionPct*100, in.scenario.AvoidedKg),
				}
			}
			return models.Insight{
				Title: "No scenario yet",
				Text:  "Run a what-if scenario to see how energy, sourcing and commute choices would move your total.",
			}
		},
		action: func(in insightInput) *models.ActionItem {
			if in.scenario == nil || in.scenario.ReductionPct <= 0 {
				return nil
			}
			return &models.ActionItem{
				Title:         "Apply your saved scenario",
				Detail:        "Switch the levers you already projected",
				ImpactKgMonth: in.scenario.AvoidedKg,
			}
		},
	},
	{
		// 4. travel beats water; at most one of the two appears
		applies: func(in insightInput) bool {
			return in.recentTravelKg > travelInsightMinKg || in.snap.Resources.WaterM3 > waterInsightMinM3
		},
		insight: func(in insightInput) models.Insight {
			if in.recentTravelKg > travelInsightMinKg {
				return models.Insight{
					Title: "Frequent travel",
					Text:  "You log a lot of travel. Try combining errands or taking public transit once per week.",
				}
			}
			return models.Insight{
				Title: "High water use",
				Text:  fmt.Sprintf("Water use above %d cubic meters a month. Shorter showers and fixing drips pay off quickly.", waterInsightMinM3),
			}
		},
		action: func(in insightInput) *models.ActionItem {
			if in.recentTravelKg > travelInsightMinKg {
				return &models.ActionItem{
					Title:         "Shift two trips to transit",
					Detail:        "Replace recurring car trips with bus or train",
					ImpactKgMonth: round2(in.recentTravelKg * factorRecentTravelKg),
				}
			}
			return &models.ActionItem{
				Title:         "Cut household water use",
				Detail:        "Shorter showers, full loads, fix dripping taps",
				ImpactKgMonth: round2((in.snap.Resources.WaterM3 - waterInsightMinM3) * 0.7),
			}
		},
	},
	{
		// 5. fixed closing insight
		applies: func(insightInput) bool { return true },
		insight: func(insightInput) models.Insight {
			return models.Insight{
				Title: "Keep tracking",
				Text:  "Log calculations weekly and revisit the baseline each quarter; trends beat snapshots.",
			}
		},
		action: func(insightInput) *models.ActionItem { return nil },
	},
}

// BuildInsights evaluates the rule table in order. The insight list
// is unbounded; the action plan keeps only the first four entries.
func BuildInsights(snap models.CoreSnapshot, scenario *models.ScenarioResult, recentTravelKg float64) models.InsightReport {
	in := insightInput{snap: snap, scenario: scenario, recentTravelKg: recentTravelKg}

	report := models.InsightReport{
		Insights:   make([]models.Insight, 0, len(insightRules)),
		ActionPlan: make([]models.ActionItem, 0, maxActionPlanEntries),
	}
	for _, rule := range insightRules {
		if !rule.applies(in) {
			continue
		}
		report.Insights = append(report.Insights, rule.insight(in))
		if a := rule.action(in); a != nil && len(report.ActionPlan) < maxActionPlanEntries {
			report.ActionPlan = append(report.ActionPlan, *a)
		}
	}
	return report
}

type InsightService struct {
	agg          Aggregation
	scenarioRepo repository.ScenarioRepo
	historyRepo  repository.HistoryRepo
	now          func() time.Time
}

func NewInsightService(agg Aggregation, scenarioRepo repository.ScenarioRepo, historyRepo repository.HistoryRepo) *InsightService {
	return &InsightService{
		agg:          agg,
		scenarioRepo: scenarioRepo,
		historyRepo:  historyRepo,
		now:          time.Now,
	}
}

func (s *InsightService) GenerateInsights(ctx context.Context) (models.InsightReport, error) {
	snap, err := s.agg.Snapshot(ctx)
	if err != nil {
		return models.InsightReport{}, err
	}
	scenario, err := s.scenarioRepo.Load(ctx)
	if err != nil {
		return models.InsightReport{}, err
	}
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return models.InsightReport{}, err
	}
	recentTravel := recentTotalsAt(entries, recentWindowDays, s.now()).Travel

	return BuildInsights(snap, scenario, recentTravel), nil
}
