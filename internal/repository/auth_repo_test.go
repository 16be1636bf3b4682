package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"ecotrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("sam", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create("sam", "hash")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 7 {
		t.Errorf("id: want 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Create_WrapsError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer db.Close()

	repo := repository.NewUserRepository(db)

	dup := errors.New("UNIQUE constraint failed")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("sam", "hash").
		WillReturnError(dup)

	if _, err := repo.Create("sam", "hash"); !errors.Is(err, dup) {
		t.Fatalf("want wrapped %v, got %v", dup, err)
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New(): %v", err)
		}
		defer db.Close()

		repo := repository.NewUserRepository(db)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(1, "sam", "hash")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash FROM users")).
			WithArgs("sam").
			WillReturnRows(rows)

		u, err := repo.GetByUsername("sam")
		if err != nil {
			t.Fatalf("GetByUsername() error = %v", err)
		}
		if u == nil || u.ID != 1 || u.Username != "sam" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New(): %v", err)
		}
		defer db.Close()

		repo := repository.NewUserRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash FROM users")).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

		u, err := repo.GetByUsername("nobody")
		if err != nil {
			t.Fatalf("GetByUsername() error = %v", err)
		}
		if u != nil {
			t.Errorf("want nil user, got %+v", u)
		}
	})
}
