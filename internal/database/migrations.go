package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the schema in version order. The analytics only read
// these tables; writes come from the importer that produces the SQLite file.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "init_shots",
		SQL: `
			CREATE TABLE IF NOT EXISTS Shots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				player_name TEXT NOT NULL,
				x_coord REAL NOT NULL,
				y_coord REAL NOT NULL,
				shot_result TEXT NOT NULL,
				action_type TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_shots_player ON Shots(player_name);
		`,
	},
	{
		Version: 2,
		Name:    "init_team_stats",
		SQL: `
			CREATE TABLE IF NOT EXISTS Team_Stats (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				game_id INTEGER NOT NULL,
				team_name TEXT NOT NULL,
				is_home INTEGER NOT NULL DEFAULT 0,
				points REAL NOT NULL DEFAULT 0,
				fouls REAL NOT NULL DEFAULT 0,
				free_throws_made REAL NOT NULL DEFAULT 0,
				field_goals_made REAL NOT NULL DEFAULT 0,
				assists REAL NOT NULL DEFAULT 0,
				rebounds REAL NOT NULL DEFAULT 0,
				steals REAL NOT NULL DEFAULT 0,
				turnovers REAL NOT NULL DEFAULT 0,
				blocks REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_team_stats_team ON Team_Stats(team_name);
		`,
	},
	{
		Version: 3,
		Name:    "init_officials",
		SQL: `
			CREATE TABLE IF NOT EXISTS Officials (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				game_id INTEGER NOT NULL,
				full_name TEXT NOT NULL,
				role TEXT NOT NULL,
				fouls_called REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_officials_name ON Officials(full_name);
		`,
	},
}

// InitMigrationsTable creates the migrations tracking table
func InitMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions.
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

	return applied, nil
}

// applyMigration applies a single migration inside a transaction.
func applyMigration(db *sql.DB, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	log.Printf("Applied migration %d: %s", migration.Version, migration.Name)
	return nil
}

// RunMigrations runs all pending migrations
func RunMigrations(db *sql.DB) error {
	if err := InitMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := applyMigration(db, migration); err != nil {
			return err
		}
	}

	return nil
}
