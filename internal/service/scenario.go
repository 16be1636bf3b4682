package service

import (
	"context"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
)

// Additive reduction contributions per lever choice, capped overall.
const (
	reductionRenewable = 0.18
	reductionRecycled  = 0.12
	reductionRail      = 0.10
	reductionShip      = 0.07
	reductionPublic    = 0.07
	reductionRemote    = 0.12

	maxReductionPct = 0.55
)

type ScenarioService struct {
	scenarioRepo repository.ScenarioRepo
	agg          Aggregation
	now          func() time.Time
}

func NewScenarioService(scenarioRepo repository.ScenarioRepo, agg Aggregation) *ScenarioService {
	return &ScenarioService{
		scenarioRepo: scenarioRepo,
		agg:          agg,
		now:          time.Now,
	}
}

// normalizeChoice lowercases the levers and maps anything unknown to
// its zero-contribution default, so a malformed request projects the
// status quo instead of failing.
func normalizeChoice(c models.ScenarioChoice) models.ScenarioChoice {
	lower := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	c.Energy = lower(c.Energy)
	if c.Energy != models.EnergyRenewable {
		c.Energy = models.EnergyGrid
	}
	c.Materials = lower(c.Materials)
	if c.Materials != models.MaterialsRecycled {
		c.Materials = models.MaterialsVirgin
	}
	c.Logistics = lower(c.Logistics)
	if c.Logistics != models.LogisticsRail && c.Logistics != models.LogisticsShip {
		c.Logistics = models.LogisticsTruck
	}
	c.Commute = lower(c.Commute)
	if c.Commute != models.CommutePublic && c.Commute != models.CommuteRemote {
		c.Commute = models.CommutePrivate
	}
	return c
}

// ReductionFor sums the independent lever contributions for an
// already-normalized choice. Always within [0, 0.55].
func ReductionFor(c models.ScenarioChoice) float64 {
	r := 0.0
	if c.Energy == models.EnergyRenewable {
		r += reductionRenewable
	}
	if c.Materials == models.MaterialsRecycled {
		r += reductionRecycled
	}
	switch c.Logistics {
	case models.LogisticsRail:
		r += reductionRail
	case models.LogisticsShip:
		r += reductionShip
	}
	switch c.Commute {
	case models.CommutePublic:
		r += reductionPublic
	case models.CommuteRemote:
		r += reductionRemote
	}
	if r > maxReductionPct {
		r = maxReductionPct
	}
	return r
}

// RunScenario projects the choice against the carbon total at call
// time, persists the result (overwriting any previous run) and
// returns it. Neither the profile nor the history is touched.
func (s *ScenarioService) RunScenario(ctx context.Context, choice models.ScenarioChoice) (models.ScenarioResult, error) {
	choice = normalizeChoice(choice)

	snap, err := s.agg.Snapshot(ctx)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	// persisted ReductionPct stays on the 2-decimal grid
	reduction := round2(ReductionFor(choice))
	baseline := snap.CarbonTotalKg
	projected := round2(baseline * (1 - reduction))

	result := models.ScenarioResult{
		ScenarioChoice: choice,
		ReductionPct:   reduction,
		BaselineKg:     baseline,
		ProjectedKg:    projected,
		AvoidedKg:      round2(baseline - projected),
		CreatedAt:      s.now().UTC(),
	}

	if err := s.scenarioRepo.Save(ctx, result); err != nil {
		return models.ScenarioResult{}, err
	}
	return result, nil
}

// SavedScenario returns the last persisted run, or nil when none.
func (s *ScenarioService) SavedScenario(ctx context.Context) (*models.ScenarioResult, error) {
	return s.scenarioRepo.Load(ctx)
}
