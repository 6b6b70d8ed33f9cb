package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/config"
)

// DBService represents a service that interacts with the database.
type DBService struct {
	DB *sql.DB
}

// NewDBService establishes the connection pool and verifies it with a ping.
func NewDBService(cfg *config.Config) (*DBService, error) {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %v", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to the database: %v", err)
	}

	return &DBService{DB: db}, nil
}

// WithinTx runs fn inside a single transaction, committing when fn returns
// nil and rolling back otherwise.
func (s *DBService) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		safeRollback(tx)
		return err
	}
	return tx.Commit()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *DBService) Health() map[string]string {
	stats := make(map[string]string)

	err := s.DB.Ping()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}

// Close closes the database connection.
func (s *DBService) Close() error {
	log.Println("Closing database connection")
	return s.DB.Close()
}
