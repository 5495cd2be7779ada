package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const AreasSchema = `
	CREATE TABLE IF NOT EXISTS areas (
		id VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL
	);
`

const DriversSchema = `
	CREATE TABLE IF NOT EXISTS drivers (
		id VARCHAR PRIMARY KEY,
		full_name VARCHAR NOT NULL,
		manager INTEGER NOT NULL DEFAULT 0,
		seasonal INTEGER NOT NULL DEFAULT 0,
		area_id VARCHAR NULL REFERENCES areas(id)
	);
`

const AssignmentsSchema = `
	CREATE TABLE IF NOT EXISTS driver_number_assignments (
		id VARCHAR PRIMARY KEY,
		driver_id VARCHAR NOT NULL REFERENCES drivers(id),
		week_start DATE NOT NULL,
		week_end DATE NULL
	);
`

const DriverNumbersSchema = `
	CREATE TABLE IF NOT EXISTS driver_numbers (
		assignment_id VARCHAR NOT NULL REFERENCES driver_number_assignments(id),
		driver_number VARCHAR NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	);
`

const DeliveriesSchema = `
	CREATE TABLE IF NOT EXISTS delivery_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		driver_assignment_id VARCHAR NOT NULL REFERENCES driver_number_assignments(id),
		delivery_date DATE NOT NULL,
		deliveries INTEGER NOT NULL CHECK (deliveries >= 0)
	);
`

const SessionsSchema = `
	CREATE TABLE IF NOT EXISTS sessions (
		token VARCHAR PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		role VARCHAR NOT NULL,
		expires_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	AreasSchema,
	DriversSchema,
	AssignmentsSchema,
	DriverNumbersSchema,
	DeliveriesSchema,
	SessionsSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the SQLite database and ensures the read-model schema
// exists. The tables are owned by the roster-sync and delivery-logging
// collaborators; this service only reads them.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", settings.DbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("boot query failed: %w", err)
		}
	}
	return db, nil
}

// placeholders renders "?, ?, ?" for an IN clause of n values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
