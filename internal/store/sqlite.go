// Package store persists the directory visit history for the browser.
package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// VisitRecord represents a visited directory
type VisitRecord struct {
	Dir       string
	Visits    int
	LastVisit time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	// Create tables
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS visits (
		dir TEXT PRIMARY KEY,
		visits INTEGER NOT NULL,
		last_visit INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_last_visit ON visits(last_visit DESC);
	`

	_, err := db.Exec(query)
	return err
}

// RecordVisit increments the visit count for a directory
func (db *DB) RecordVisit(dir string) error {
	query := `
	INSERT INTO visits (dir, visits, last_visit)
	VALUES (?, 1, ?)
	ON CONFLICT(dir) DO UPDATE SET
		visits = visits + 1,
		last_visit = excluded.last_visit
	`

	_, err := db.Exec(query, dir, time.Now().Unix())
	return err
}

// TopDirs retrieves the most visited directories
func (db *DB) TopDirs(limit int) ([]VisitRecord, error) {
	query := `
	SELECT dir, visits, last_visit
	FROM visits
	ORDER BY visits DESC, last_visit DESC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []VisitRecord
	for rows.Next() {
		var r VisitRecord
		var ts int64
		if err := rows.Scan(&r.Dir, &r.Visits, &ts); err != nil {
			return nil, err
		}
		r.LastVisit = time.Unix(ts, 0)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Visit retrieves the record for a specific directory
func (db *DB) Visit(dir string) (*VisitRecord, error) {
	query := `
	SELECT dir, visits, last_visit
	FROM visits
	WHERE dir = ?
	`

	var r VisitRecord
	var ts int64
	err := db.QueryRow(query, dir).Scan(&r.Dir, &r.Visits, &ts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.LastVisit = time.Unix(ts, 0)
	return &r, nil
}

// Forget deletes the record for a directory
func (db *DB) Forget(dir string) error {
	_, err := db.Exec("DELETE FROM visits WHERE dir = ?", dir)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
