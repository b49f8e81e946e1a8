package database

import (
	"context"
	"fmt"
	"time"

	"travelrisk/models"

	"github.com/apex/log"
)

// CreateReport files an incident report. The reporter username is taken from
// the session claims by the handler and stored verbatim; it is not checked
// against the accounts table again.
func (s *Service) CreateReport(ctx context.Context, username string, req models.CreateReportRequest) (*models.Report, error) {
	report := &models.Report{
		ID:          newID(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Username:    username,
		Status:      models.ParseStatus(req.Status),
		RiskLevel:   models.ParseRiskLevel(req.RiskLevel),
		Date:        req.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if report.Date.IsZero() {
		report.Date = report.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (id, title, description, location, username, status, risk_level, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, report.Title, report.Description, report.Location, report.Username,
		string(report.Status), string(report.RiskLevel), report.Date, report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	log.WithField("username", username).WithField("report_id", report.ID).Info("Report filed")
	return report, nil
}

// ListReports returns all incident reports.
func (s *Service) ListReports(ctx context.Context) ([]models.Report, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, location, username, status, risk_level, date, created_at
		 FROM reports`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var r models.Report
		var status, riskLevel string
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Location, &r.Username,
			&status, &riskLevel, &r.Date, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		r.Status = models.ReportStatus(status)
		r.RiskLevel = models.RiskLevel(riskLevel)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// UpdateReport applies a moderation edit. Status and risk level pass through
// the enum coercions again so an admin cannot store an off-enum value either.
func (s *Service) UpdateReport(ctx context.Context, req models.UpdateReportRequest) (*models.Report, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE reports
		 SET title = ?, description = ?, location = ?, username = ?, status = ?, risk_level = ?, date = ?
		 WHERE id = ?`,
		req.Title, req.Description, req.Location, req.Username,
		string(models.ParseStatus(req.Status)), string(models.ParseRiskLevel(req.RiskLevel)),
		date, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := s.reportExists(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
	}

	return s.getReport(ctx, req.ID)
}

// DeleteReport removes a report by id.
func (s *Service) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	log.WithField("report_id", id).Info("Report deleted")
	return nil
}

func (s *Service) getReport(ctx context.Context, id string) (*models.Report, error) {
	var r models.Report
	var status, riskLevel string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, location, username, status, risk_level, date, created_at
		 FROM reports WHERE id = ?`, id).
		Scan(&r.ID, &r.Title, &r.Description, &r.Location, &r.Username,
			&status, &riskLevel, &r.Date, &r.CreatedAt)
	if err != nil {
		return nil, scanError("report", err)
	}
	r.Status = models.ReportStatus(status)
	r.RiskLevel = models.RiskLevel(riskLevel)
	return &r, nil
}

func (s *Service) reportExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reports WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check report existence: %w", err)
	}
	return n > 0, nil
}
