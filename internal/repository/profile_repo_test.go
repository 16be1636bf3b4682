package repository_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

// sqlmockArgumentFunc adapts a predicate to sqlmock's Argument interface.
type sqlmockArgumentFunc func(driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool { return f(v) }

func TestProfileSQLite_Save_UpsertsSingleRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewProfileSQLite(db)

	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p := models.BaselineProfile{
		ElectricityKwh: 300,
		WaterM3:        18,
		FuelLiters:     45,
		WasteKg:        28,
		RecycleRate:    35,
		MaterialsKg:    120,
		LogisticsKm:    900,
		CommuteKmWeek:  80,
		UpdatedAt:      ts,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO baseline_profile")).
		WithArgs(1, 300.0, 18.0, 45.0, 28.0, 35.0, 120.0, 900.0, 80.0, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProfileSQLite_Save_StampsZeroTimeAsUTCNow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewProfileSQLite(db)

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok {
			return false
		}
		if tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO baseline_profile")).
		WithArgs(1, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, isUTCRecent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), models.BaselineProfile{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProfileSQLite_Load_ScansRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewProfileSQLite(db)

	ts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"electricity_kwh", "water_m3", "fuel_liters", "waste_kg", "recycle_rate",
		"materials_kg", "logistics_km", "commute_km_week", "updated_at",
	}).AddRow(250.0, 20.0, 40.0, 25.0, 50.0, 110.0, 850.0, 70.0, ts)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT electricity_kwh")).
		WithArgs(1).
		WillReturnRows(rows)

	p, ok, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if p.ElectricityKwh != 250 || p.RecycleRate != 50 || p.CommuteKmWeek != 70 {
		t.Errorf("unexpected profile: %+v", p)
	}
	if !p.UpdatedAt.Equal(ts) {
		t.Errorf("UpdatedAt: want %v, got %v", ts, p.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProfileSQLite_Load_NoRowsIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewProfileSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT electricity_kwh")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"electricity_kwh", "water_m3", "fuel_liters", "waste_kg", "recycle_rate",
			"materials_kg", "logistics_km", "commute_km_week", "updated_at",
		}))

	p, ok, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false for missing row")
	}
	if p != (models.BaselineProfile{}) {
		t.Errorf("expected zero profile, got %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
