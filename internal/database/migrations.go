package database

import (
	"database/sql"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Schema migrations are compiled in so that in-memory databases (tests,
// tooling) migrate the same way as the on-disk store.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_loads",
		SQL: `
			CREATE TABLE IF NOT EXISTS loads (
				load_id INTEGER PRIMARY KEY AUTOINCREMENT,
				load_date TEXT NOT NULL,
				pickup_location TEXT NOT NULL,
				dropoff_location TEXT NOT NULL,
				total_miles INTEGER NOT NULL CHECK (total_miles > 0),
				revenue REAL NOT NULL,
				is_drop_and_hook INTEGER NOT NULL DEFAULT 0,
				wait_time_hours REAL NOT NULL DEFAULT 0,
				notes TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_loads_date ON loads(load_date);
		`,
	},
	{
		Version: 2,
		Name:    "create_fuel_stops",
		SQL: `
			CREATE TABLE IF NOT EXISTS fuel_stops (
				fuel_stop_id INTEGER PRIMARY KEY AUTOINCREMENT,
				load_id INTEGER NOT NULL REFERENCES loads(load_id) ON DELETE CASCADE,
				stop_date TEXT NOT NULL,
				gallons REAL NOT NULL CHECK (gallons > 0),
				total_cost REAL NOT NULL CHECK (total_cost > 0),
				location TEXT,
				notes TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_fuel_stops_load ON fuel_stops(load_id);
		`,
	},
	{
		Version: 3,
		Name:    "create_expenses",
		SQL: `
			CREATE TABLE IF NOT EXISTS expenses (
				expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
				load_id INTEGER NOT NULL REFERENCES loads(load_id) ON DELETE CASCADE,
				expense_date TEXT NOT NULL,
				category TEXT NOT NULL,
				amount REAL NOT NULL CHECK (amount >= 0),
				description TEXT,
				notes TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_expenses_load ON expenses(load_id);
			CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date);
		`,
	},
}

// Migrate applies all pending migrations to the given database.
func Migrate(conn *sql.DB) error {
	if err := initMigrationsTable(conn); err != nil {
		return err
	}

	applied, err := appliedMigrations(conn)
	if err != nil {
		return err
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	for _, m := range pending {
		if err := applyMigration(conn, m); err != nil {
			return err
		}
	}

	return nil
}

func initMigrationsTable(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.Query("SELECT version FROM migrations ORDER BY version")
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

func applyMigration(conn *sql.DB, m Migration) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	log.WithFields(log.Fields{"version": m.Version, "name": m.Name}).Info("applied migration")
	return nil
}
