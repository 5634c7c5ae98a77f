// Package history records per-item download outcomes in a SQLite archive,
// letting later runs skip items that already completed.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"chanarr/internal/domain/consts"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Database wraps the history store's sql.DB.
type Database struct {
	DB *sql.DB
}

// InitDB opens (or creates) the history database inside the output directory.
func InitDB(outputDir string) (*Database, error) {
	path := filepath.Join(outputDir, consts.HistoryDBFile)

	db, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	d := &Database{DB: db}
	if err := d.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the underlying database handle.
func (d *Database) Close() error {
	return d.DB.Close()
}

// initTables initializes the SQL tables.
func (d *Database) initTables() error {
	const query = `
	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL UNIQUE,
		title TEXT,
		status TEXT NOT NULL,
		error TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`

	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create downloads table: %w", err)
	}
	return nil
}
