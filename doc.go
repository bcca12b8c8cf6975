/*
Package main provides the entry point for the Formula1 racing API server.

The server records racing stages, stables (teams) and per-driver race
results, and answers a handful of aggregate queries over them.

# Starting the Server

Configuration comes from CLI flags, then environment variables, then a
.env file in the working directory:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8000 -t sqlite -d racing.db

# Configuration

  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - DATABASE_URL (-d): connection string or sqlite file; built from
    DB_USER, DB_PASSWORD, DB_HOST, DB_PORT and DB_NAME when unset
  - PORT (-p): server port (default: 8000)
  - DELETE_POLICY (-delete-policy): restrict, cascade or dangle
  - DB_MAX_CONNS (-max-conns): connection pool size
  - LOG_LEVEL (-log-level): debug, info, warn or error

On postgres the target database is created if it does not exist, and the
tables are created on every start.

# Architecture

  - handlers: HTTP request handlers (stages, stables, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON and parameter helpers
  - store: Transactional data access over sqlx
  - models: Row, request and response types
  - metrics: Prometheus collectors
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
