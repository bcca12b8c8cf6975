/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnvFile reads an optional .env file, then ParseFlags returns a Config:

	_ = cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p              Server port (default 8000)
	-d              Database URL, or the file path for sqlite
	-t              Database type: postgres (default) or sqlite
	-delete-policy  restrict (default), cascade or dangle
	-max-conns      Connection pool size (default 10)
	-log-level      debug, info, warn or error
	-read-timeout   HTTP read timeout (default 15s)
	-write-timeout  HTTP write timeout (default 15s)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DELETE_POLICY → -delete-policy
	DB_MAX_CONNS  → -max-conns
	LOG_LEVEL     → -log-level

When no database URL is given, a postgres URL is assembled from DB_USER,
DB_PASSWORD, DB_HOST, DB_PORT (5432), DB_NAME and DB_SSLMODE (disable). For
sqlite, DB_NAME is used as the file path, defaulting to racing.db.

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the .env file.
*/
package cliparse
