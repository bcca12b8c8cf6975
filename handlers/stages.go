package handlers

import (
	"log/slog"
	"net/http"

	"github.com/LizaButReallyEliza/Formula1-project/metrics"
	"github.com/LizaButReallyEliza/Formula1-project/middleware"
	"github.com/LizaButReallyEliza/Formula1-project/models"
	"github.com/LizaButReallyEliza/Formula1-project/store"
)

const stageNotFound = "Stage not found"

type StageHandler struct {
	store *store.Store
}

func NewStageHandler(st *store.Store) *StageHandler {
	return &StageHandler{store: st}
}

// CreateStage handles POST /stages/
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStageRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	stage, err := h.store.CreateStage(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}

	metrics.RecordCreated("stage")
	slog.Info("stage created", "stage_id", stage.ID, "name", stage.Name)

	middleware.JSONResponse(w, http.StatusCreated, stage)
}

// ListStages handles GET /stages/
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.store.ListStages(r.Context())
	if err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stages)
}

// GetStage handles GET /stages/{id}
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stage, err := h.store.GetStage(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stage)
}

// UpdateStage handles PATCH /stages/{id}
func (h *StageHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStageRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	stage, err := h.store.UpdateStage(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stage)
}

// DeleteStage handles DELETE /stages/{id}
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteStage(r.Context(), id); err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}

	slog.Info("stage deleted", "stage_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// AverageRaceTime handles GET /stages/group_by/
func (h *StageHandler) AverageRaceTime(w http.ResponseWriter, r *http.Request) {
	averages, err := h.store.AverageRaceTimePerStage(r.Context())
	if err != nil {
		writeStoreError(w, err, stageNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, averages)
}
