package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sqlx.DB) error {
	schema := postgresSchema
	if conn.DriverName() == DriverSQLite {
		schema = sqliteSchema
	}

	_, err := conn.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// stage_id and stable_id carry no foreign key constraint: references are
// checked by the application and the delete policy decides what happens to
// dependents.
const postgresSchema = `
-- Stages
CREATE TABLE IF NOT EXISTS stages (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    date DATE NOT NULL,
    lap_length DOUBLE PRECISION NOT NULL,
    attendance INTEGER
);

-- Stables
CREATE TABLE IF NOT EXISTS stables (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    motor TEXT,
    tire TEXT
);

-- Results
CREATE TABLE IF NOT EXISTS results (
    id SERIAL PRIMARY KEY,
    stage_id INTEGER NOT NULL,
    stable_id INTEGER NOT NULL,
    driver_name TEXT NOT NULL,
    race_time DOUBLE PRECISION NOT NULL,
    laps INTEGER NOT NULL,
    pit_stops INTEGER,
    position INTEGER
);

CREATE INDEX IF NOT EXISTS idx_results_stage_id ON results(stage_id);
CREATE INDEX IF NOT EXISTS idx_results_stable_id ON results(stable_id);
CREATE INDEX IF NOT EXISTS idx_results_race_time ON results(race_time);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS stages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    date DATE NOT NULL,
    lap_length REAL NOT NULL,
    attendance INTEGER
);

CREATE TABLE IF NOT EXISTS stables (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    motor TEXT,
    tire TEXT
);

CREATE TABLE IF NOT EXISTS results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    stage_id INTEGER NOT NULL,
    stable_id INTEGER NOT NULL,
    driver_name TEXT NOT NULL,
    race_time REAL NOT NULL,
    laps INTEGER NOT NULL,
    pit_stops INTEGER,
    position INTEGER
);

CREATE INDEX IF NOT EXISTS idx_results_stage_id ON results(stage_id);
CREATE INDEX IF NOT EXISTS idx_results_stable_id ON results(stable_id);
CREATE INDEX IF NOT EXISTS idx_results_race_time ON results(race_time);
`
