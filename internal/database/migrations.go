package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RunMigrations executes all SQL migration files for the active dialect.
// Migrations live under migrationsPath/<dialect subdir> and run exactly once,
// tracked in the migrations table. This replaces any per-request DDL: schema
// setup happens here, at startup, and nowhere else.
func (db *DB) RunMigrations(migrationsPath string) error {
	// Create migrations table if it doesn't exist
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Get all migration files for this dialect
	dir := filepath.Join(migrationsPath, db.Dialect.MigrationsSubdir())
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	// Sort files to ensure they run in order
	sort.Strings(files)

	for _, file := range files {
		filename := filepath.Base(file)

		hasRun, err := db.hasMigrationRun(filename)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if hasRun {
			continue
		}

		if err := db.applyMigration(file); err != nil {
			return err
		}

		fmt.Printf("Migration completed: %s\n", filename)
	}

	return nil
}

// applyMigration executes one migration file and records it in the same
// transaction, so a half-applied migration is never marked as done.
func (db *DB) applyMigration(path string) error {
	filename := filepath.Base(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", filename, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", filename, err)
	}

	// Migration SQL runs raw: files contain no placeholders to rewrite.
	if _, err := tx.Tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %s: %w", filename, err)
	}

	if err := recordMigration(tx, filename); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", filename, err)
	}

	return tx.Commit()
}

// createMigrationsTable creates the table to track completed migrations
func (db *DB) createMigrationsTable() error {
	_, err := db.DB.Exec(db.Dialect.CreateMigrationsTableQuery())
	return err
}

// hasMigrationRun checks if a migration has already been executed
func (db *DB) hasMigrationRun(filename string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE filename = ?"
	err := db.QueryRow(query, filename).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// recordMigration marks a migration as completed
func recordMigration(tx DBTX, filename string) error {
	query := "INSERT INTO migrations (filename) VALUES (?)"
	_, err := tx.Exec(query, filename)
	return err
}
