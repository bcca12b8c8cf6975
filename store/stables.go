package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LizaButReallyEliza/Formula1-project/models"
)

const stableColumns = "id, name, country, motor, tire"

func (s *Store) CreateStable(ctx context.Context, req models.CreateStableRequest) (models.Stable, error) {
	var stable models.Stable
	err := s.db.GetContext(ctx, &stable, s.q(`
		INSERT INTO stables (name, country, motor, tire)
		VALUES (?, ?, ?, ?)
		RETURNING `+stableColumns),
		req.Name, req.Country, req.Motor, req.Tire)
	if err != nil {
		return models.Stable{}, storageErr("create stable", err)
	}
	return stable, nil
}

func (s *Store) ListStables(ctx context.Context) ([]models.Stable, error) {
	stables := []models.Stable{}
	if err := s.db.SelectContext(ctx, &stables, "SELECT "+stableColumns+" FROM stables ORDER BY id"); err != nil {
		return nil, storageErr("list stables", err)
	}
	return stables, nil
}

func (s *Store) GetStable(ctx context.Context, id int64) (models.Stable, error) {
	var stable models.Stable
	err := s.db.GetContext(ctx, &stable, s.q("SELECT "+stableColumns+" FROM stables WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Stable{}, ErrNotFound
	}
	if err != nil {
		return models.Stable{}, storageErr("get stable", err)
	}
	return stable, nil
}

func (s *Store) UpdateStable(ctx context.Context, id int64, req models.UpdateStableRequest) (models.Stable, error) {
	var a assignments
	setIf(&a, "name", req.Name)
	setIf(&a, "country", req.Country)
	setIf(&a, "motor", req.Motor)
	setIf(&a, "tire", req.Tire)
	if a.empty() {
		return s.GetStable(ctx, id)
	}

	query, args := a.statement("stables", stableColumns, id)
	var stable models.Stable
	err := s.db.GetContext(ctx, &stable, s.q(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Stable{}, ErrNotFound
	}
	if err != nil {
		return models.Stable{}, storageErr("update stable", err)
	}
	return stable, nil
}

func (s *Store) DeleteStable(ctx context.Context, id int64) error {
	return s.deleteParent(ctx, "stable", "stables", "stable_id", id)
}
