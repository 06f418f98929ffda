package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the catalog schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// SAUCES
	// -------------------------------
	sauceTableSQL := `
		CREATE TABLE IF NOT EXISTS sauces (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			is_dry_rub BOOLEAN NOT NULL DEFAULT FALSE,
			heat_level SMALLINT NOT NULL DEFAULT 0,
			image_url VARCHAR(500),
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, sauceTableSQL); err != nil {
		return err
	}

	addSortOrderSQL := `
		ALTER TABLE sauces
		ADD COLUMN IF NOT EXISTS sort_order INT NOT NULL DEFAULT 0
	`
	if _, err := db.Exec(ctx, addSortOrderSQL); err != nil {
		log.Println("Note: sort_order column may already exist")
	}

	// -------------------------------
	// CATERING PACKAGES
	// -------------------------------
	packageTableSQL := `
		CREATE TABLE IF NOT EXISTS catering_packages (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			total_wings INT NOT NULL,
			serves INT NOT NULL,
			base_price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, packageTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
