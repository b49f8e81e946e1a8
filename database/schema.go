package database

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitializeSchema creates the tables if they do not exist yet.
func InitializeSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(32) PRIMARY KEY,
			username VARCHAR(256) NOT NULL,
			email VARCHAR(256) NOT NULL,
			password_hash VARCHAR(256) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'user',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_users_email (email),
			INDEX idx_users_username (username)
		)`,
		`CREATE TABLE IF NOT EXISTS reports (
			id VARCHAR(32) PRIMARY KEY,
			title VARCHAR(512) NOT NULL,
			description TEXT NOT NULL,
			location VARCHAR(512) NOT NULL,
			username VARCHAR(256) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'Open',
			risk_level VARCHAR(16) NOT NULL DEFAULT 'Undefined',
			date DATETIME NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS dangers (
			id VARCHAR(32) PRIMARY KEY,
			city VARCHAR(256) NOT NULL,
			lat DOUBLE NOT NULL,
			lng DOUBLE NOT NULL,
			terrorism VARCHAR(8) NOT NULL DEFAULT '0',
			meteo VARCHAR(8) NOT NULL DEFAULT '0',
			health_issues VARCHAR(8) NOT NULL DEFAULT '0',
			poison VARCHAR(8) NOT NULL DEFAULT '0',
			natural_disasters VARCHAR(8) NOT NULL DEFAULT '0',
			political_unrest VARCHAR(8) NOT NULL DEFAULT '0',
			economic_crisis VARCHAR(8) NOT NULL DEFAULT '0',
			car_crashes VARCHAR(8) NOT NULL DEFAULT '0',
			fires VARCHAR(8) NOT NULL DEFAULT '0',
			carnivors_zones VARCHAR(8) NOT NULL DEFAULT '0',
			robberies VARCHAR(8) NOT NULL DEFAULT '0',
			scams VARCHAR(8) NOT NULL DEFAULT '0',
			over_tourism VARCHAR(8) NOT NULL DEFAULT '0',
			risk_value VARCHAR(16) NOT NULL DEFAULT '0.00'
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}

	log.Info("Database schema initialized")
	return nil
}
