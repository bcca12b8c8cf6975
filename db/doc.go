/*
Package db opens the connection pool and creates the schema.

# Opening

Open supports the postgres (lib/pq) and sqlite (modernc.org/sqlite) drivers
and returns an *sqlx.DB so queries can be written once with ? placeholders:

	conn, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL, cfg.MaxConns)

For postgres, Open first calls EnsureDatabase, which connects once to the
"postgres" maintenance database, checks pg_database and issues CREATE
DATABASE when the target is missing. The normal pool is opened afterwards.

# Schema Creation

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - stages: race events
  - stables: racing teams
  - results: one driver's outcome per stage and stable

# Relationships

	stages  1──* results (results.stage_id)
	stables 1──* results (results.stable_id)

References are validated by the store when a result is written. There are
no storage-level foreign keys, so the configured delete policy decides what
happens to results of a deleted stage or stable.

# Indexes

  - results.stage_id
  - results.stable_id
  - results.race_time
*/
package db
