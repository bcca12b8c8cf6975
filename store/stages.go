package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LizaButReallyEliza/Formula1-project/models"
)

const stageColumns = "id, name, country, date, lap_length, attendance"

// CreateStage inserts a stage and returns it with its assigned id.
func (s *Store) CreateStage(ctx context.Context, req models.CreateStageRequest) (models.Stage, error) {
	var stage models.Stage
	err := s.db.GetContext(ctx, &stage, s.q(`
		INSERT INTO stages (name, country, date, lap_length, attendance)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+stageColumns),
		req.Name, req.Country, *req.Date, *req.LapLength, req.Attendance)
	if err != nil {
		return models.Stage{}, storageErr("create stage", err)
	}
	return stage, nil
}

func (s *Store) ListStages(ctx context.Context) ([]models.Stage, error) {
	stages := []models.Stage{}
	if err := s.db.SelectContext(ctx, &stages, "SELECT "+stageColumns+" FROM stages ORDER BY id"); err != nil {
		return nil, storageErr("list stages", err)
	}
	return stages, nil
}

func (s *Store) GetStage(ctx context.Context, id int64) (models.Stage, error) {
	var stage models.Stage
	err := s.db.GetContext(ctx, &stage, s.q("SELECT "+stageColumns+" FROM stages WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Stage{}, ErrNotFound
	}
	if err != nil {
		return models.Stage{}, storageErr("get stage", err)
	}
	return stage, nil
}

// UpdateStage writes only the fields present in req.
func (s *Store) UpdateStage(ctx context.Context, id int64, req models.UpdateStageRequest) (models.Stage, error) {
	var a assignments
	setIf(&a, "name", req.Name)
	setIf(&a, "country", req.Country)
	setIf(&a, "date", req.Date)
	setIf(&a, "lap_length", req.LapLength)
	setIf(&a, "attendance", req.Attendance)
	if a.empty() {
		return s.GetStage(ctx, id)
	}

	query, args := a.statement("stages", stageColumns, id)
	var stage models.Stage
	err := s.db.GetContext(ctx, &stage, s.q(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Stage{}, ErrNotFound
	}
	if err != nil {
		return models.Stage{}, storageErr("update stage", err)
	}
	return stage, nil
}

func (s *Store) DeleteStage(ctx context.Context, id int64) error {
	return s.deleteParent(ctx, "stage", "stages", "stage_id", id)
}

// AverageRaceTimePerStage averages race_time over the results of each
// stage. Stages without results do not appear.
func (s *Store) AverageRaceTimePerStage(ctx context.Context) ([]models.StageAverage, error) {
	averages := []models.StageAverage{}
	err := s.db.SelectContext(ctx, &averages, `
		SELECT stage_id, AVG(race_time) AS avg_race_time
		FROM results
		GROUP BY stage_id
		ORDER BY stage_id`)
	if err != nil {
		return nil, storageErr("average race time", err)
	}
	return averages, nil
}
