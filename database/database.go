package database

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"travelrisk/config"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// Domain errors surfaced to handlers for status mapping.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Service owns the database handle and the token secret. All entity
// operations hang off it.
type Service struct {
	db        *sql.DB
	jwtSecret []byte
}

// NewService creates a service around an open database handle.
func NewService(db *sql.DB, jwtSecret string) *Service {
	return &Service{
		db:        db,
		jwtSecret: []byte(jwtSecret),
	}
}

// Connect opens the MySQL pool and waits for the database to become
// reachable, with bounded exponential backoff. Containerized databases
// routinely come up after the service does.
func Connect(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	maxOpen := envInt("DB_MAX_OPEN_CONNS", 25)
	maxIdle := envInt("DB_MAX_IDLE_CONNS", 10)
	connMaxLifetimeMin := envInt("DB_CONN_MAX_LIFETIME_MIN", 5)
	pingMaxWaitSec := envInt("DB_PING_MAX_WAIT_SEC", 60)

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMin) * time.Minute)

	deadline := time.Now().Add(time.Duration(pingMaxWaitSec) * time.Second)
	waitInterval := time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		pingErr := db.PingContext(ctx)
		cancel()
		if pingErr == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database ping timeout after %ds: %w", pingMaxWaitSec, pingErr)
		}
		log.Infof("Database connection failed, retrying in %v: %v", waitInterval, pingErr)
		time.Sleep(waitInterval)
		waitInterval *= 2
		if waitInterval > 30*time.Second {
			waitInterval = 30 * time.Second
		}
	}

	log.Infof("Established db connection pool: open=%d idle=%d max_lifetime_min=%d",
		maxOpen, maxIdle, connMaxLifetimeMin)
	return db, nil
}

func envInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func scanError(kind string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to query %s: %w", kind, err)
}

// newID returns an opaque 24-character hex record id. The entropy source
// failing means nothing in the process can be trusted, so it is fatal.
func newID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("entropy source unavailable: %v", err))
	}
	return hex.EncodeToString(b)
}
