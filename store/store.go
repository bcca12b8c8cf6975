package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/LizaButReallyEliza/Formula1-project/db"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrReferenced       = errors.New("still referenced")
	ErrStorage          = errors.New("storage failure")
)

// DeletePolicy decides what deleting a stage or stable does to its results.
type DeletePolicy string

const (
	// Restrict refuses the delete while results reference the row.
	Restrict DeletePolicy = "restrict"
	// Cascade deletes the dependent results in the same transaction.
	Cascade DeletePolicy = "cascade"
	// Dangle deletes only the row and leaves results pointing at it.
	Dangle DeletePolicy = "dangle"
)

// ReferenceError reports a stage_id or stable_id that does not resolve.
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s: does not exist", e.Field)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// ArgumentError reports an unrecognized parameter value.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ReferencedError is returned by a restricted delete.
type ReferencedError struct {
	Entity  string
	ID      int64
	Results int
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("%s %d is referenced by %d results", e.Entity, e.ID, e.Results)
}

func (e *ReferencedError) Is(target error) bool {
	return target == ErrReferenced
}

type Store struct {
	db     *sqlx.DB
	policy DeletePolicy
}

func New(conn *sqlx.DB, policy DeletePolicy) *Store {
	if policy == "" {
		policy = Restrict
	}
	return &Store{db: conn, policy: policy}
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

// storageErr logs a driver error and wraps it so callers can match both
// ErrStorage and the original error.
func storageErr(op string, err error) error {
	attrs := []any{"op", op, "error", err}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		attrs = append(attrs, "sqlstate", string(pqErr.Code))
	}
	slog.Error("storage failure", attrs...)
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// withTx runs fn in a transaction. Any error from fn or from the commit
// rolls the transaction back.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, err)
	}
	return nil
}

func (s *Store) q(query string) string {
	return s.db.Rebind(query)
}

// lockShare keeps a referenced row from being deleted until the transaction
// ends. sqlite locks the whole database on write, so it needs no clause.
func (s *Store) lockShare() string {
	if s.db.DriverName() == db.DriverPostgres {
		return " FOR SHARE"
	}
	return ""
}

func (s *Store) lockUpdate() string {
	if s.db.DriverName() == db.DriverPostgres {
		return " FOR UPDATE"
	}
	return ""
}

// exists checks that id is present in table inside tx, holding a share lock.
func (s *Store) exists(ctx context.Context, tx *sqlx.Tx, op, table string, id int64) (bool, error) {
	var found int64
	err := tx.GetContext(ctx, &found, s.q("SELECT id FROM "+table+" WHERE id = ?"+s.lockShare()), id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(op, err)
	}
	return true, nil
}

// deleteParent removes a stage or stable, applying the delete policy to the
// results whose refColumn points at it.
func (s *Store) deleteParent(ctx context.Context, entity, table, refColumn string, id int64) error {
	op := "delete " + entity
	return s.withTx(ctx, op, func(tx *sqlx.Tx) error {
		var found int64
		err := tx.GetContext(ctx, &found, s.q("SELECT id FROM "+table+" WHERE id = ?"+s.lockUpdate()), id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return storageErr(op, err)
		}

		switch s.policy {
		case Restrict:
			var n int
			err := tx.GetContext(ctx, &n, s.q("SELECT COUNT(*) FROM results WHERE "+refColumn+" = ?"), id)
			if err != nil {
				return storageErr(op, err)
			}
			if n > 0 {
				return &ReferencedError{Entity: entity, ID: id, Results: n}
			}
		case Cascade:
			res, err := tx.ExecContext(ctx, s.q("DELETE FROM results WHERE "+refColumn+" = ?"), id)
			if err != nil {
				return storageErr(op, err)
			}
			if n, err := res.RowsAffected(); err == nil && n > 0 {
				slog.Info("cascaded delete", "entity", entity, "id", id, "results", n)
			}
		case Dangle:
		}

		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM "+table+" WHERE id = ?"), id); err != nil {
			return storageErr(op, err)
		}
		return nil
	})
}
