package models

import "time"

// CreateUserRequest represents the signup request.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=256"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UpdateUserRequest represents an admin update of an account. A non-empty
// password is re-hashed before storage.
type UpdateUserRequest struct {
	ID       string `json:"_id" binding:"required"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the credentials login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the authentication response.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
	User      *User  `json:"user,omitempty"`
}

// CreateReportRequest represents a user-filed incident report. Status and
// risk level pass through the enum coercions before storage; the reporter
// username comes from the session, not the body.
type CreateReportRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	RiskLevel   string    `json:"riskLevel"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// UpdateReportRequest represents an admin update of a report.
type UpdateReportRequest struct {
	ID          string    `json:"_id" binding:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Username    string    `json:"username"`
	RiskLevel   string    `json:"riskLevel"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// CreateDangerRequest represents a new per-city danger record. Coordinates
// are pointers so a legitimate 0.0 still satisfies the required binding; a
// body that omits them is rejected instead of being stored at (0, 0).
type CreateDangerRequest struct {
	City             string   `json:"city" binding:"required"`
	Lat              *float64 `json:"lat" binding:"required"`
	Lng              *float64 `json:"lng" binding:"required"`
	Terrorism        string   `json:"terrorism"`
	Meteo            string   `json:"meteo"`
	HealthIssues     string   `json:"health_issues"`
	Poison           string   `json:"poison"`
	NaturalDisasters string   `json:"natural_disasters"`
	PoliticalUnrest  string   `json:"political_unrest"`
	EconomicCrisis   string   `json:"economic_crisis"`
	CarCrashes       string   `json:"car_crashes"`
	Fires            string   `json:"fires"`
	CarnivorsZones   string   `json:"carnivors_zones"`
	Robberies        string   `json:"robberies"`
	Scams            string   `json:"scams"`
	OverTourism      string   `json:"over_tourism"`
	RiskValue        string   `json:"riskValue"`
}

// ToDanger maps the request onto the storage entity. The submitted riskValue
// rides along only to be discarded by the store's recomputation.
func (r *CreateDangerRequest) ToDanger() Danger {
	return Danger{
		City:             r.City,
		Lat:              *r.Lat,
		Lng:              *r.Lng,
		Terrorism:        r.Terrorism,
		Meteo:            r.Meteo,
		HealthIssues:     r.HealthIssues,
		Poison:           r.Poison,
		NaturalDisasters: r.NaturalDisasters,
		PoliticalUnrest:  r.PoliticalUnrest,
		EconomicCrisis:   r.EconomicCrisis,
		CarCrashes:       r.CarCrashes,
		Fires:            r.Fires,
		CarnivorsZones:   r.CarnivorsZones,
		Robberies:        r.Robberies,
		Scams:            r.Scams,
		OverTourism:      r.OverTourism,
		RiskValue:        r.RiskValue,
	}
}

// UpdateDangerRequest represents an admin rewrite of a danger record.
type UpdateDangerRequest struct {
	ID string `json:"_id"`
	CreateDangerRequest
}

// ToDanger maps the update request onto the storage entity.
func (r *UpdateDangerRequest) ToDanger() Danger {
	d := r.CreateDangerRequest.ToDanger()
	d.ID = r.ID
	return d
}

// TravelRisk is a static advisory entry served to the client dashboard.
type TravelRisk struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
