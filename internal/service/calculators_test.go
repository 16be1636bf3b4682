package service

import (
	"context"
	"math"
	"testing"

	"ecotrack/internal/models"
)

// calcHistoryStub satisfies the History interface and records calls.
type calcHistoryStub struct {
	categories []string
	kilograms  []float64
	metadata   []map[string]any
	recordErr  error
}

func (s *calcHistoryStub) Record(ctx context.Context, category string, kilograms float64, metadata map[string]any) error {
	s.categories = append(s.categories, category)
	s.kilograms = append(s.kilograms, kilograms)
	s.metadata = append(s.metadata, metadata)
	return s.recordErr
}

func (s *calcHistoryStub) Entries(ctx context.Context) ([]models.CalculationEntry, error) {
	return nil, nil
}

func (s *calcHistoryStub) RecentTotals(ctx context.Context, windowDays int) (models.CategoryTotals, error) {
	return models.CategoryTotals{}, nil
}

func TestCalculatorService_CalcTravel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		km     float64
		mode   string
		wantKg float64
	}{
		{"car", 120, "car", 25.2},
		{"train normalizes case", 100, " Train ", 6},
		{"plane", 1000, "plane", 255},
		{"unknown mode uses generic factor", 100, "scooter", 20},
		{"NaN distance counts as zero", math.NaN(), "car", 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hist := &calcHistoryStub{}
			svc := NewCalculatorService(hist)

			out, err := svc.CalcTravel(context.Background(), tc.km, tc.mode)
			if err != nil {
				t.Fatalf("CalcTravel: %v", err)
			}
			if out.Kilograms != tc.wantKg {
				t.Errorf("Kilograms: want %v, got %v", tc.wantKg, out.Kilograms)
			}
			if out.Category != models.CategoryTravel {
				t.Errorf("Category: want travel, got %q", out.Category)
			}
			if len(hist.categories) != 1 || hist.categories[0] != models.CategoryTravel {
				t.Errorf("history record categories: %v", hist.categories)
			}
			if hist.kilograms[0] != tc.wantKg {
				t.Errorf("logged kilograms: want %v, got %v", tc.wantKg, hist.kilograms[0])
			}
		})
	}
}

func TestCalculatorService_CalcDiet(t *testing.T) {
	t.Parallel()

	hist := &calcHistoryStub{}
	svc := NewCalculatorService(hist)

	out, err := svc.CalcDiet(context.Background(), 14, "vegan")
	if err != nil {
		t.Fatalf("CalcDiet: %v", err)
	}
	if out.Kilograms != 15.4 {
		t.Errorf("Kilograms: want 15.4, got %v", out.Kilograms)
	}
	if out.Category != models.CategoryFood {
		t.Errorf("Category: want food, got %q", out.Category)
	}
	if hist.metadata[0]["diet"] != "vegan" {
		t.Errorf("metadata diet: got %v", hist.metadata[0]["diet"])
	}

	// unknown diet falls back to the generic per-meal factor
	out, err = svc.CalcDiet(context.Background(), 10, "fruitarian")
	if err != nil {
		t.Fatalf("CalcDiet: %v", err)
	}
	if out.Kilograms != 20 {
		t.Errorf("generic diet: want 20, got %v", out.Kilograms)
	}
}

func TestCalculatorService_CalcHome(t *testing.T) {
	t.Parallel()

	hist := &calcHistoryStub{}
	svc := NewCalculatorService(hist)

	out, err := svc.CalcHome(context.Background(), 300)
	if err != nil {
		t.Fatalf("CalcHome: %v", err)
	}
	if out.Kilograms != 69.9 {
		t.Errorf("Kilograms: want 69.9, got %v", out.Kilograms)
	}
	if out.Category != models.CategoryHome {
		t.Errorf("Category: want home, got %q", out.Category)
	}
	if hist.metadata[0]["kwh"] != 300.0 {
		t.Errorf("metadata kwh: got %v", hist.metadata[0]["kwh"])
	}
}
