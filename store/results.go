package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/LizaButReallyEliza/Formula1-project/models"
)

const resultColumns = "id, stage_id, stable_id, driver_name, race_time, laps, pit_stops, position"

// checkReferences verifies stable then stage, the order in which errors are reported.
func (s *Store) checkReferences(ctx context.Context, tx *sqlx.Tx, op string, stageID, stableID *int64) error {
	if stableID != nil {
		ok, err := s.exists(ctx, tx, op, "stables", *stableID)
		if err != nil {
			return err
		}
		if !ok {
			return &ReferenceError{Field: "stable_id", ID: *stableID}
		}
	}
	if stageID != nil {
		ok, err := s.exists(ctx, tx, op, "stages", *stageID)
		if err != nil {
			return err
		}
		if !ok {
			return &ReferenceError{Field: "stage_id", ID: *stageID}
		}
	}
	return nil
}

// CreateResult checks both references and inserts the result in one
// transaction. Nothing is written when a reference does not resolve.
func (s *Store) CreateResult(ctx context.Context, req models.CreateResultRequest) (models.Result, error) {
	const op = "create result"
	var result models.Result
	err := s.withTx(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.checkReferences(ctx, tx, op, req.StageID, req.StableID); err != nil {
			return err
		}
		err := tx.GetContext(ctx, &result, s.q(`
			INSERT INTO results (stage_id, stable_id, driver_name, race_time, laps, pit_stops, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING `+resultColumns),
			*req.StageID, *req.StableID, req.DriverName, *req.RaceTime, *req.Laps, req.PitStops, req.Position)
		if err != nil {
			return storageErr(op, err)
		}
		return nil
	})
	if err != nil {
		return models.Result{}, err
	}
	return result, nil
}

func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	return s.selectResults(ctx, "list results", "SELECT "+resultColumns+" FROM results ORDER BY id")
}

func (s *Store) GetResult(ctx context.Context, id int64) (models.Result, error) {
	var result models.Result
	err := s.db.GetContext(ctx, &result, s.q("SELECT "+resultColumns+" FROM results WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Result{}, ErrNotFound
	}
	if err != nil {
		return models.Result{}, storageErr("get result", err)
	}
	return result, nil
}

// FilterResults returns the results of one stable in one stage.
func (s *Store) FilterResults(ctx context.Context, stageID, stableID int64) ([]models.Result, error) {
	return s.selectResults(ctx, "filter results", s.q(`
		SELECT `+resultColumns+`
		FROM results
		WHERE stage_id = ? AND stable_id = ?
		ORDER BY id`), stageID, stableID)
}

// ListResultsWithDetails joins each result with its stage and stable names.
// Results whose stage or stable no longer exists are left out.
func (s *Store) ListResultsWithDetails(ctx context.Context) ([]models.ResultDetail, error) {
	details := []models.ResultDetail{}
	err := s.db.SelectContext(ctx, &details, `
		SELECT r.id, r.driver_name, r.race_time, sg.name AS stage_name, sb.name AS stable_name
		FROM results r
		JOIN stages sg ON r.stage_id = sg.id
		JOIN stables sb ON r.stable_id = sb.id
		ORDER BY r.id`)
	if err != nil {
		return nil, storageErr("list result details", err)
	}
	return details, nil
}

// UpdateLapsAboveThreshold sets laps to newLaps on every result with
// race_time strictly greater than threshold and returns how many changed.
func (s *Store) UpdateLapsAboveThreshold(ctx context.Context, threshold float64, newLaps int64) (int64, error) {
	const op = "update laps"
	if newLaps < 0 {
		return 0, &ArgumentError{Msg: "new_laps must not be negative"}
	}

	var updated int64
	err := s.withTx(ctx, op, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, s.q("UPDATE results SET laps = ? WHERE race_time > ?"), newLaps, threshold)
		if err != nil {
			return storageErr(op, err)
		}
		updated, err = res.RowsAffected()
		if err != nil {
			return storageErr(op, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// SortedResults orders all results by race_time. order is "asc" or "desc",
// case-insensitive.
func (s *Store) SortedResults(ctx context.Context, order string) ([]models.Result, error) {
	var direction string
	switch strings.ToLower(order) {
	case models.OrderAsc:
		direction = "ASC"
	case models.OrderDesc:
		direction = "DESC"
	default:
		return nil, &ArgumentError{Msg: "Invalid order parameter. Use 'asc' or 'desc'."}
	}

	return s.selectResults(ctx, "sort results",
		"SELECT "+resultColumns+" FROM results ORDER BY race_time "+direction+", id")
}

// UpdateResult writes only the fields present in req. A changed stage_id or
// stable_id is checked in the same transaction as the update.
func (s *Store) UpdateResult(ctx context.Context, id int64, req models.UpdateResultRequest) (models.Result, error) {
	const op = "update result"
	var a assignments
	setIf(&a, "stage_id", req.StageID)
	setIf(&a, "stable_id", req.StableID)
	setIf(&a, "driver_name", req.DriverName)
	setIf(&a, "race_time", req.RaceTime)
	setIf(&a, "laps", req.Laps)
	setIf(&a, "pit_stops", req.PitStops)
	setIf(&a, "position", req.Position)
	if a.empty() {
		return s.GetResult(ctx, id)
	}

	var stageID, stableID *int64
	if req.StageID.Set {
		stageID = &req.StageID.Value
	}
	if req.StableID.Set {
		stableID = &req.StableID.Value
	}

	var result models.Result
	err := s.withTx(ctx, op, func(tx *sqlx.Tx) error {
		ok, err := s.exists(ctx, tx, op, "results", id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		if err := s.checkReferences(ctx, tx, op, stageID, stableID); err != nil {
			return err
		}
		query, args := a.statement("results", resultColumns, id)
		err = tx.GetContext(ctx, &result, s.q(query), args...)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return storageErr(op, err)
		}
		return nil
	})
	if err != nil {
		return models.Result{}, err
	}
	return result, nil
}

func (s *Store) DeleteResult(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q("DELETE FROM results WHERE id = ?"), id)
	if err != nil {
		return storageErr("delete result", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete result", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) selectResults(ctx context.Context, op, query string, args ...any) ([]models.Result, error) {
	results := []models.Result{}
	if err := s.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, storageErr(op, err)
	}
	return results, nil
}
