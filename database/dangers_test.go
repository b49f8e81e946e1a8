package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"travelrisk/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
	svc  *Service
)

func setUp() {
	db, mock, _ = sqlmock.New()
	svc = NewService(db, "test-secret")
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

var dangerColumns = []string{
	"id", "city", "lat", "lng",
	"terrorism", "meteo", "health_issues", "poison", "natural_disasters",
	"political_unrest", "economic_crisis", "car_crashes", "fires",
	"carnivors_zones", "robberies", "scams", "over_tourism", "risk_value",
}

func dangerRow(d *models.Danger) *sqlmock.Rows {
	return sqlmock.NewRows(dangerColumns).AddRow(
		d.ID, d.City, d.Lat, d.Lng,
		d.Terrorism, d.Meteo, d.HealthIssues, d.Poison, d.NaturalDisasters,
		d.PoliticalUnrest, d.EconomicCrisis, d.CarCrashes, d.Fires,
		d.CarnivorsZones, d.Robberies, d.Scams, d.OverTourism, d.RiskValue)
}

func TestCreateDangerComputesRiskValue(t *testing.T) {
	it(func() {
		testCases := []struct {
			name          string
			danger        models.Danger
			wantRiskValue string
		}{
			{
				name: "Terrorism and natural disasters at ten",
				danger: models.Danger{
					City: "Kabul", Lat: 34.5, Lng: 69.2,
					Terrorism: "10", NaturalDisasters: "10",
				},
				wantRiskValue: "2.56",
			},
			{
				name:          "All categories default to zero",
				danger:        models.Danger{City: "Reykjavik", Lat: 64.1, Lng: -21.9},
				wantRiskValue: "0.00",
			},
			{
				name: "Client-supplied riskValue is discarded",
				danger: models.Danger{
					City: "Oslo", Lat: 59.9, Lng: 10.7, RiskValue: "9.99",
				},
				wantRiskValue: "0.00",
			},
			{
				name: "Malformed score contributes zero",
				danger: models.Danger{
					City: "Lima", Lat: -12.0, Lng: -77.0,
					Terrorism: "ten", NaturalDisasters: "10",
				},
				// 10*5 = 50, 50/39 = 1.2820...
				wantRiskValue: "1.28",
			},
		}

		for _, testCase := range testCases {
			mock.ExpectExec("INSERT INTO dangers").
				WillReturnResult(sqlmock.NewResult(1, 1))

			stored, err := svc.CreateDanger(context.Background(), testCase.danger)
			if err != nil {
				t.Errorf("%s: CreateDanger: unexpected error %v", testCase.name, err)
				continue
			}
			if stored.RiskValue != testCase.wantRiskValue {
				t.Errorf("%s: riskValue = %q, want %q", testCase.name, stored.RiskValue, testCase.wantRiskValue)
			}
			if stored.ID == "" {
				t.Errorf("%s: stored danger has no id", testCase.name)
			}
		}
	})
}

func TestCreateDangerRoundTrip(t *testing.T) {
	it(func() {
		danger := models.Danger{City: "Naples", Lat: 40.8, Lng: 14.3, Fires: "7", Scams: "9"}

		mock.ExpectExec("INSERT INTO dangers").
			WillReturnResult(sqlmock.NewResult(1, 1))
		stored, err := svc.CreateDanger(context.Background(), danger)
		if err != nil {
			t.Fatalf("CreateDanger: unexpected error %v", err)
		}

		mock.ExpectQuery("SELECT (.+) FROM dangers WHERE id = ?").
			WithArgs(stored.ID).
			WillReturnRows(dangerRow(stored))
		read, err := svc.GetDanger(context.Background(), stored.ID)
		if err != nil {
			t.Fatalf("GetDanger: unexpected error %v", err)
		}

		// 7*4 + 9*2 = 46, 46/39 = 1.1794...
		if read.RiskValue != "1.18" {
			t.Errorf("read-back riskValue = %q, want %q", read.RiskValue, "1.18")
		}
		if read.RiskValue != stored.RiskValue {
			t.Errorf("read-back riskValue %q differs from stored %q", read.RiskValue, stored.RiskValue)
		}
	})
}

func TestUpdateDangerRecomputesRiskValue(t *testing.T) {
	it(func() {
		danger := models.Danger{
			ID: "abc123", City: "Athens", Lat: 38.0, Lng: 23.7,
			Robberies: "6", RiskValue: "0.00",
		}

		// 6*3 = 18, 18/39 = 0.4615...; the recomputed value must reach the
		// UPDATE despite the caller-supplied "0.00".
		mock.ExpectExec("UPDATE dangers SET").
			WithArgs("Athens", 38.0, 23.7,
				"0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "6", "0", "0",
				"0.46", "abc123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		expected := danger
		expected.DefaultScores()
		expected.RiskValue = "0.46"
		mock.ExpectQuery("SELECT (.+) FROM dangers WHERE id = ?").
			WithArgs(danger.ID).
			WillReturnRows(dangerRow(&expected))

		updated, err := svc.UpdateDanger(context.Background(), danger)
		if err != nil {
			t.Fatalf("UpdateDanger: unexpected error %v", err)
		}
		if updated.RiskValue != "0.46" {
			t.Errorf("riskValue = %q, want %q", updated.RiskValue, "0.46")
		}
	})
}

func TestUpdateDangerNotFound(t *testing.T) {
	it(func() {
		mock.ExpectExec("UPDATE dangers SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM dangers WHERE id = ?").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := svc.UpdateDanger(context.Background(), models.Danger{ID: "missing", City: "Nowhere"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateDanger on absent id: err = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteDanger(t *testing.T) {
	it(func() {
		testCases := []struct {
			name         string
			id           string
			rowsAffected int64
			wantErr      error
		}{
			{"Existing record", "abc123", 1, nil},
			{"Absent record", "missing", 0, ErrNotFound},
		}

		for _, testCase := range testCases {
			mock.ExpectExec("DELETE FROM dangers WHERE id = ?").
				WithArgs(testCase.id).
				WillReturnResult(sqlmock.NewResult(0, testCase.rowsAffected))

			err := svc.DeleteDanger(context.Background(), testCase.id)
			if !errors.Is(err, testCase.wantErr) {
				t.Errorf("%s: DeleteDanger err = %v, want %v", testCase.name, err, testCase.wantErr)
			}
		}
	})
}
