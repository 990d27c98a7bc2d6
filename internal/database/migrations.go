package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a single schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations ship with the binary rather than as files on disk; the schema is
// small and versioned in lockstep with the code.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_activities",
		SQL: `
			CREATE TABLE IF NOT EXISTS activities (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				kind TEXT NOT NULL,
				name TEXT NOT NULL,
				distance_km REAL NOT NULL DEFAULT 0,
				duration_seconds INTEGER NOT NULL DEFAULT 0,
				pace_min_per_km REAL NOT NULL DEFAULT 0,
				co2_saved_kg REAL NOT NULL DEFAULT 0,
				life_gained_hours REAL NOT NULL DEFAULT 0,
				positions TEXT NOT NULL DEFAULT '[]',
				created_at INTEGER NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "add_activity_indexes",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_activities_user_created
				ON activities(user_id, created_at DESC);
			CREATE INDEX IF NOT EXISTS idx_activities_kind
				ON activities(kind)
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("failed to apply migration %d_%s: %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d_%s", m.Version, m.Name)
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// applyMigration runs a single migration and records it atomically
func applyMigration(db *sql.DB, m Migration) error {
	return Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(m.SQL); err != nil {
			return err
		}
		_, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name)
		return err
	})
}
