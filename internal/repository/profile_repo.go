package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecotrack/internal/models"
)

type ProfileSQLite struct {
	db *sql.DB
}

func NewProfileSQLite(db *sql.DB) *ProfileSQLite {
	return &ProfileSQLite{db: db}
}

var _ ProfileRepo = (*ProfileSQLite)(nil)

const (
	baselineProfileRowID = 1

	insertOrUpdateProfileSQL = `
		INSERT INTO baseline_profile
			(id, electricity_kwh, water_m3, fuel_liters, waste_kg, recycle_rate,
			 materials_kg, logistics_km, commute_km_week, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			electricity_kwh=excluded.electricity_kwh,
			water_m3=excluded.water_m3,
			fuel_liters=excluded.fuel_liters,
			waste_kg=excluded.waste_kg,
			recycle_rate=excluded.recycle_rate,
			materials_kg=excluded.materials_kg,
			logistics_km=excluded.logistics_km,
			commute_km_week=excluded.commute_km_week,
			updated_at=excluded.updated_at
	`

	selectProfileSQL = `
		SELECT electricity_kwh, water_m3, fuel_liters, waste_kg, recycle_rate,
		       materials_kg, logistics_km, commute_km_week, updated_at
		FROM baseline_profile WHERE id=?
	`
)

// Save upserts the whole profile row (id always 1); there is no
// partial update.
func (r *ProfileSQLite) Save(ctx context.Context, p models.BaselineProfile) error {
	// ensure UpdatedAt is always persisted as UTC; set if zero
	tsUTC := p.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateProfileSQL,
		baselineProfileRowID,
		p.ElectricityKwh,
		p.WaterM3,
		p.FuelLiters,
		p.WasteKg,
		p.RecycleRate,
		p.MaterialsKg,
		p.LogisticsKm,
		p.CommuteKmWeek,
		tsUTC,
	)
	return err
}

// Load fetches the single profile row (id=1). ok is false when the
// user has never saved a profile.
func (r *ProfileSQLite) Load(ctx context.Context) (models.BaselineProfile, bool, error) {
	row := r.db.QueryRowContext(ctx, selectProfileSQL, baselineProfileRowID)

	var p models.BaselineProfile
	if err := row.Scan(
		&p.ElectricityKwh,
		&p.WaterM3,
		&p.FuelLiters,
		&p.WasteKg,
		&p.RecycleRate,
		&p.MaterialsKg,
		&p.LogisticsKm,
		&p.CommuteKmWeek,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BaselineProfile{}, false, nil // no profile yet
		}
		return models.BaselineProfile{}, false, err
	}
	p.UpdatedAt = p.UpdatedAt.UTC()

	return p, true, nil
}
