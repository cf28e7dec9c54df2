package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// ErrUnavailable is returned whenever the store cannot be reached, either at
// startup or when a handler fails to begin its transaction. Its text is the
// exact body clients receive on a 500.
var ErrUnavailable = errors.New("Database connection failed")

// Connect opens a Postgres connection pool from DB_* environment variables and
// verifies it with a ping.
func Connect() (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "inventory"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, ErrUnavailable
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, ErrUnavailable
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
