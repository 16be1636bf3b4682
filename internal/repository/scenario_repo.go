package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecotrack/internal/models"
)

type ScenarioSQLite struct {
	db *sql.DB
}

func NewScenarioSQLite(db *sql.DB) *ScenarioSQLite { return &ScenarioSQLite{db: db} }

var _ ScenarioRepo = (*ScenarioSQLite)(nil)

const (
	scenarioRowID = 1

	insertOrUpdateScenarioSQL = `
		INSERT INTO scenario_result
			(id, energy, materials, logistics, commute, reduction_pct,
			 baseline_kg, projected_kg, avoided_kg, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			energy=excluded.energy,
			materials=excluded.materials,
			logistics=excluded.logistics,
			commute=excluded.commute,
			reduction_pct=excluded.reduction_pct,
			baseline_kg=excluded.baseline_kg,
			projected_kg=excluded.projected_kg,
			avoided_kg=excluded.avoided_kg,
			created_at=excluded.created_at
	`

	selectScenarioSQL = `
		SELECT energy, materials, logistics, commute, reduction_pct,
		       baseline_kg, projected_kg, avoided_kg, created_at
		FROM scenario_result WHERE id=?
	`
)

// Save overwrites the single scenario row (id always 1).
func (r *ScenarioSQLite) Save(ctx context.Context, res models.ScenarioResult) error {
	tsUTC := res.CreatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateScenarioSQL,
		scenarioRowID,
		res.Energy,
		res.Materials,
		res.Logistics,
		res.Commute,
		res.ReductionPct,
		res.BaselineKg,
		res.ProjectedKg,
		res.AvoidedKg,
		tsUTC,
	)
	return err
}

// Load fetches the saved scenario, or nil when none was run yet.
func (r *ScenarioSQLite) Load(ctx context.Context) (*models.ScenarioResult, error) {
	row := r.db.QueryRowContext(ctx, selectScenarioSQL, scenarioRowID)

	var res models.ScenarioResult
	if err := row.Scan(
		&res.Energy,
		&res.Materials,
		&res.Logistics,
		&res.Commute,
		&res.ReductionPct,
		&res.BaselineKg,
		&res.ProjectedKg,
		&res.AvoidedKg,
		&res.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	res.CreatedAt = res.CreatedAt.UTC()

	return &res, nil
}
