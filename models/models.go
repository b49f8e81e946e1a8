package models

import "time"

// Role is the account role carried in the session token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts the "admin" literal only; anything else, including an
// empty value, becomes a regular user.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// RiskLevel is the moderation classification of an incident report.
type RiskLevel string

const (
	RiskUndefined RiskLevel = "Undefined"
	RiskHigh      RiskLevel = "High"
	RiskMedium    RiskLevel = "Medium"
	RiskLow       RiskLevel = "Low"
)

// ParseRiskLevel coerces anything outside {High, Medium, Low} to Undefined.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskHigh, RiskMedium, RiskLow:
		return RiskLevel(s)
	}
	return RiskUndefined
}

// ReportStatus is the moderation status of an incident report.
type ReportStatus string

const (
	StatusOpen     ReportStatus = "Open"
	StatusResolved ReportStatus = "Resolved"
)

// ParseStatus coerces anything that is not "Resolved" to Open.
func ParseStatus(s string) ReportStatus {
	if s == string(StatusResolved) {
		return StatusResolved
	}
	return StatusOpen
}

// User is an account record. The password hash never leaves the service.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report is a user-filed incident report.
type Report struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Username    string       `json:"username"`
	Status      ReportStatus `json:"status"`
	RiskLevel   RiskLevel    `json:"riskLevel"`
	Date        time.Time    `json:"date"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Danger is the per-city risk record shown on the map. The thirteen category
// scores are stored as string-encoded integers in 0..10, matching the wire
// schema of existing stored data; RiskValue is derived on every save.
type Danger struct {
	ID               string  `json:"_id"`
	City             string  `json:"city"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Terrorism        string  `json:"terrorism"`
	Meteo            string  `json:"meteo"`
	HealthIssues     string  `json:"health_issues"`
	Poison           string  `json:"poison"`
	NaturalDisasters string  `json:"natural_disasters"`
	PoliticalUnrest  string  `json:"political_unrest"`
	EconomicCrisis   string  `json:"economic_crisis"`
	CarCrashes       string  `json:"car_crashes"`
	Fires            string  `json:"fires"`
	CarnivorsZones   string  `json:"carnivors_zones"`
	Robberies        string  `json:"robberies"`
	Scams            string  `json:"scams"`
	OverTourism      string  `json:"over_tourism"`
	RiskValue        string  `json:"riskValue"`
}

// CategoryScores maps the category field names to their stored scores, keyed
// the same way as the aggregator weight table.
func (d *Danger) CategoryScores() map[string]string {
	return map[string]string{
		"terrorism":         d.Terrorism,
		"meteo":             d.Meteo,
		"health_issues":     d.HealthIssues,
		"poison":            d.Poison,
		"natural_disasters": d.NaturalDisasters,
		"political_unrest":  d.PoliticalUnrest,
		"economic_crisis":   d.EconomicCrisis,
		"car_crashes":       d.CarCrashes,
		"fires":             d.Fires,
		"carnivors_zones":   d.CarnivorsZones,
		"robberies":         d.Robberies,
		"scams":             d.Scams,
		"over_tourism":      d.OverTourism,
	}
}

// DefaultScores fills empty category scores with the schema default "0".
func (d *Danger) DefaultScores() {
	for _, score := range []*string{
		&d.Terrorism, &d.Meteo, &d.HealthIssues, &d.Poison,
		&d.NaturalDisasters, &d.PoliticalUnrest, &d.EconomicCrisis,
		&d.CarCrashes, &d.Fires, &d.CarnivorsZones, &d.Robberies,
		&d.Scams, &d.OverTourism,
	} {
		if *score == "" {
			*score = "0"
		}
	}
}

// SessionClaims is the identity carried by a session token.
type SessionClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the session may perform administrative operations.
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
