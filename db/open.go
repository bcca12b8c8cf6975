package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Driver names registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// adminDatabase is the maintenance database used to create the target one.
const adminDatabase = "postgres"

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the configured store and verifies the connection. For
// postgres the target database is created first if it does not exist.
func Open(ctx context.Context, driver, dsn string, maxConns int) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres:
		if err := EnsureDatabase(ctx, dsn); err != nil {
			return nil, err
		}
	case DriverSQLite:
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
		maxConns = 1
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return conn, nil
}

// EnsureDatabase connects to the postgres maintenance database with the
// credentials of dsn and creates the database named in dsn when missing.
// Key/value style DSNs are left alone.
func EnsureDatabase(ctx context.Context, dsn string) error {
	u, err := url.Parse(dsn)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		slog.Debug("skipping database creation for non-URL DSN")
		return nil
	}

	name := strings.TrimPrefix(u.Path, "/")
	if name == "" || name == adminDatabase {
		return nil
	}

	adminURL := *u
	adminURL.Path = "/" + adminDatabase

	admin, err := sql.Open(DriverPostgres, adminURL.String())
	if err != nil {
		return fmt.Errorf("open admin connection: %w", err)
	}
	defer admin.Close()

	created, err := createDatabaseIfNotExists(ctx, admin, name)
	if err != nil {
		slog.Error("error while checking or creating the database", "database", name, "error", err)
		return err
	}
	if created {
		slog.Info("database created", "database", name)
	} else {
		slog.Info("database already exists", "database", name)
	}
	return nil
}

func createDatabaseIfNotExists(ctx context.Context, admin *sql.DB, name string) (bool, error) {
	var one int
	err := admin.QueryRowContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", name).Scan(&one)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("check database %s: %w", name, err)
	}

	// CREATE DATABASE does not accept bind parameters.
	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		var pqErr *pq.Error
		// duplicate_database: created concurrently by another process
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return false, nil
		}
		return false, fmt.Errorf("create database %s: %w", name, err)
	}
	return true, nil
}
