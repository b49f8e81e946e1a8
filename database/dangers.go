package database

import (
	"context"
	"fmt"

	"travelrisk/models"
	"travelrisk/risk"

	"github.com/apex/log"
)

// CreateDanger stores a per-city danger record. The risk value is recomputed
// from the category scores immediately before the write; whatever the caller
// put in riskValue is discarded.
func (s *Service) CreateDanger(ctx context.Context, d models.Danger) (*models.Danger, error) {
	d.ID = newID()
	d.DefaultScores()
	d.RiskValue = risk.Aggregate(d.CategoryScores())

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dangers (id, city, lat, lng,
			terrorism, meteo, health_issues, poison, natural_disasters,
			political_unrest, economic_crisis, car_crashes, fires,
			carnivors_zones, robberies, scams, over_tourism, risk_value)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.City, d.Lat, d.Lng,
		d.Terrorism, d.Meteo, d.HealthIssues, d.Poison, d.NaturalDisasters,
		d.PoliticalUnrest, d.EconomicCrisis, d.CarCrashes, d.Fires,
		d.CarnivorsZones, d.Robberies, d.Scams, d.OverTourism, d.RiskValue)
	if err != nil {
		return nil, fmt.Errorf("failed to insert danger: %w", err)
	}

	log.WithField("city", d.City).WithField("risk_value", d.RiskValue).Info("Danger record created")
	return &d, nil
}

// ListDangers returns all per-city danger records.
func (s *Service) ListDangers(ctx context.Context) ([]models.Danger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, city, lat, lng,
			terrorism, meteo, health_issues, poison, natural_disasters,
			political_unrest, economic_crisis, car_crashes, fires,
			carnivors_zones, robberies, scams, over_tourism, risk_value
		 FROM dangers`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dangers: %w", err)
	}
	defer rows.Close()

	dangers := make([]models.Danger, 0)
	for rows.Next() {
		var d models.Danger
		if err := rows.Scan(&d.ID, &d.City, &d.Lat, &d.Lng,
			&d.Terrorism, &d.Meteo, &d.HealthIssues, &d.Poison, &d.NaturalDisasters,
			&d.PoliticalUnrest, &d.EconomicCrisis, &d.CarCrashes, &d.Fires,
			&d.CarnivorsZones, &d.Robberies, &d.Scams, &d.OverTourism, &d.RiskValue); err != nil {
			return nil, fmt.Errorf("failed to scan danger: %w", err)
		}
		dangers = append(dangers, d)
	}
	return dangers, rows.Err()
}

// UpdateDanger rewrites a danger record. Same invariant as create: riskValue
// is recomputed from the submitted category scores before the write.
func (s *Service) UpdateDanger(ctx context.Context, d models.Danger) (*models.Danger, error) {
	d.DefaultScores()
	d.RiskValue = risk.Aggregate(d.CategoryScores())

	result, err := s.db.ExecContext(ctx,
		`UPDATE dangers SET city = ?, lat = ?, lng = ?,
			terrorism = ?, meteo = ?, health_issues = ?, poison = ?, natural_disasters = ?,
			political_unrest = ?, economic_crisis = ?, car_crashes = ?, fires = ?,
			carnivors_zones = ?, robberies = ?, scams = ?, over_tourism = ?, risk_value = ?
		 WHERE id = ?`,
		d.City, d.Lat, d.Lng,
		d.Terrorism, d.Meteo, d.HealthIssues, d.Poison, d.NaturalDisasters,
		d.PoliticalUnrest, d.EconomicCrisis, d.CarCrashes, d.Fires,
		d.CarnivorsZones, d.Robberies, d.Scams, d.OverTourism, d.RiskValue,
		d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update danger: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := s.dangerExists(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
	}

	log.WithField("city", d.City).WithField("risk_value", d.RiskValue).Info("Danger record updated")
	return s.GetDanger(ctx, d.ID)
}

// DeleteDanger removes a danger record by id.
func (s *Service) DeleteDanger(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM dangers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete danger: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	log.WithField("danger_id", id).Info("Danger record deleted")
	return nil
}

// GetDanger returns a single danger record by id.
func (s *Service) GetDanger(ctx context.Context, id string) (*models.Danger, error) {
	var d models.Danger
	err := s.db.QueryRowContext(ctx,
		`SELECT id, city, lat, lng,
			terrorism, meteo, health_issues, poison, natural_disasters,
			political_unrest, economic_crisis, car_crashes, fires,
			carnivors_zones, robberies, scams, over_tourism, risk_value
		 FROM dangers WHERE id = ?`, id).
		Scan(&d.ID, &d.City, &d.Lat, &d.Lng,
			&d.Terrorism, &d.Meteo, &d.HealthIssues, &d.Poison, &d.NaturalDisasters,
			&d.PoliticalUnrest, &d.EconomicCrisis, &d.CarCrashes, &d.Fires,
			&d.CarnivorsZones, &d.Robberies, &d.Scams, &d.OverTourism, &d.RiskValue)
	if err != nil {
		return nil, scanError("danger", err)
	}
	return &d, nil
}

func (s *Service) dangerExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dangers WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check danger existence: %w", err)
	}
	return n > 0, nil
}
