package service

import (
	"context"
	"fmt"
	"strings"

	"ecotrack/internal/models"
)

// Per-km emission factors by travel mode; unknown modes use the
// generic factor.
var travelModeFactors = map[string]float64{
	"car":   0.21,
	"bus":   0.05,
	"train": 0.06,
	"plane": 0.255,
}

const travelGenericFactor = 0.2

// Per-meal factors by diet; unknown diets use the generic factor.
var dietMealFactors = map[string]float64{
	"omnivore":   3.0,
	"vegetarian": 1.6,
	"vegan":      1.1,
}

const dietGenericFactor = 2.0

type CalculatorService struct {
	history History
}

func NewCalculatorService(history History) *CalculatorService {
	return &CalculatorService{history: history}
}

// CalcTravel converts a distance and mode to kg CO2 and logs it under
// the travel category. Unusable distances count as zero, matching the
// form behavior of treating blank input as 0.
func (s *CalculatorService) CalcTravel(ctx context.Context, km float64, mode string) (models.CalcOutcome, error) {
	if !isUsableNumber(km) {
		km = 0
	}
	mode = strings.ToLower(strings.TrimSpace(mode))
	factor, ok := travelModeFactors[mode]
	if !ok {
		factor = travelGenericFactor
	}
	kg := round2(km * factor)

	if err := s.history.Record(ctx, models.CategoryTravel, kg, map[string]any{"mode": mode, "km": km}); err != nil {
		return models.CalcOutcome{}, err
	}
	return models.CalcOutcome{
		Category:  models.CategoryTravel,
		Kilograms: kg,
		Summary:   fmt.Sprintf("%.2f kg CO2 for %.0f km by %s", kg, km, mode),
	}, nil
}

// CalcDiet estimates weekly meal emissions and logs them under the
// food category.
func (s *CalculatorService) CalcDiet(ctx context.Context, meals float64, diet string) (models.CalcOutcome, error) {
	if !isUsableNumber(meals) {
		meals = 0
	}
	diet = strings.ToLower(strings.TrimSpace(diet))
	perMeal, ok := dietMealFactors[diet]
	if !ok {
		perMeal = dietGenericFactor
	}
	kg := round2(meals * perMeal)

	if err := s.history.Record(ctx, models.CategoryFood, kg, map[string]any{"diet": diet, "meals": meals}); err != nil {
		return models.CalcOutcome{}, err
	}
	return models.CalcOutcome{
		Category:  models.CategoryFood,
		Kilograms: kg,
		Summary:   fmt.Sprintf("%.2f kg CO2 per week for %.0f meals as %s", kg, meals, diet),
	}, nil
}

// CalcHome converts monthly electricity use to kg CO2 and logs it
// under the home category.
func (s *CalculatorService) CalcHome(ctx context.Context, kwh float64) (models.CalcOutcome, error) {
	if !isUsableNumber(kwh) {
		kwh = 0
	}
	kg := round2(kwh * factorGridPerKwh)

	if err := s.history.Record(ctx, models.CategoryHome, kg, map[string]any{"kwh": kwh}); err != nil {
		return models.CalcOutcome{}, err
	}
	return models.CalcOutcome{
		Category:  models.CategoryHome,
		Kilograms: kg,
		Summary:   fmt.Sprintf("%.2f kg CO2 / month for %.0f kWh", kg, kwh),
	}, nil
}
