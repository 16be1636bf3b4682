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

func TestHabitSQLite_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewHabitSQLite(db)

	ts := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO habit_logs")).
		WithArgs("log-1", "biked_to_work", 2.0, "2026-03-10 14:30:00").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Append(context.Background(), models.HabitLog{
		LogID:    "log-1",
		Action:   "biked_to_work",
		Count:    2,
		LoggedAt: ts,
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHabitSQLite_Append_GeneratesMissingFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewHabitSQLite(db)

	isNonEmptyString := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		return ok && s != ""
	})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO habit_logs")).
		WithArgs(isNonEmptyString, "recycled", 1.0, isNonEmptyString).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), models.HabitLog{Action: "recycled", Count: 1}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHabitSQLite_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewHabitSQLite(db)

	ts := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "action", "count", "logged_at"}).
		AddRow("log-2", "recycled", 4.0, ts).
		AddRow("log-1", "biked_to_work", 2.0, ts.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, action, count, logged_at")).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].LogID != "log-2" || got[0].Count != 4 {
		t.Errorf("unexpected first log: %+v", got[0])
	}
	if got[1].LoggedAt.Location() != time.UTC {
		t.Errorf("LoggedAt must be UTC, got %v", got[1].LoggedAt.Location())
	}
}

func TestHabitSQLite_Prune(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewHabitSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM habit_logs")).
		WithArgs(200).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.Prune(context.Background(), 200); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
