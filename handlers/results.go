package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/LizaButReallyEliza/Formula1-project/metrics"
	"github.com/LizaButReallyEliza/Formula1-project/middleware"
	"github.com/LizaButReallyEliza/Formula1-project/models"
	"github.com/LizaButReallyEliza/Formula1-project/store"
)

const resultNotFound = "Result not found"

type ResultHandler struct {
	store *store.Store
}

func NewResultHandler(st *store.Store) *ResultHandler {
	return &ResultHandler{store: st}
}

// CreateResult handles POST /results/
func (h *ResultHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	var req models.CreateResultRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.store.CreateResult(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}

	metrics.RecordCreated("result")
	slog.Info("result created",
		"result_id", result.ID,
		"stage_id", result.StageID,
		"stable_id", result.StableID,
		"driver", result.DriverName,
	)

	middleware.JSONResponse(w, http.StatusCreated, result)
}

// ListResults handles GET /results/
func (h *ResultHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetResult handles GET /results/{id}
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.store.GetResult(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// UpdateResult handles PATCH /results/{id}
func (h *ResultHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateResultRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.store.UpdateResult(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, result)
}

// DeleteResult handles DELETE /results/{id}
func (h *ResultHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteResult(r.Context(), id); err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}

	slog.Info("result deleted", "result_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// FilterResults handles GET /results/filter/?stage_id=&stable_id=
func (h *ResultHandler) FilterResults(w http.ResponseWriter, r *http.Request) {
	stageID, err := middleware.QueryInt(r, "stage_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	stableID, err := middleware.QueryInt(r, "stable_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.store.FilterResults(r.Context(), stageID, stableID)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// JoinResults handles GET /results/join/
func (h *ResultHandler) JoinResults(w http.ResponseWriter, r *http.Request) {
	details, err := h.store.ListResultsWithDetails(r.Context())
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, details)
}

// UpdateLaps handles PUT /results/update_laps/?race_time_threshold=&new_laps=
func (h *ResultHandler) UpdateLaps(w http.ResponseWriter, r *http.Request) {
	threshold, err := middleware.QueryFloat(r, "race_time_threshold")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	newLaps, err := middleware.QueryInt(r, "new_laps")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateLapsAboveThreshold(r.Context(), threshold, newLaps)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}

	metrics.RecordLapsUpdated(updated)
	slog.Info("laps updated", "threshold", threshold, "new_laps", newLaps, "updated", updated)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateLapsResponse{
		Message: fmt.Sprintf("%d results updated.", updated),
		Updated: updated,
	})
}

// SortedResults handles GET /results/sorted/?order=asc|desc
func (h *ResultHandler) SortedResults(w http.ResponseWriter, r *http.Request) {
	order := middleware.QueryString(r, "order", models.OrderAsc)

	results, err := h.store.SortedResults(r.Context(), order)
	if err != nil {
		writeStoreError(w, err, resultNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}
