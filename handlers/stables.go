package handlers

import (
	"log/slog"
	"net/http"

	"github.com/LizaButReallyEliza/Formula1-project/metrics"
	"github.com/LizaButReallyEliza/Formula1-project/middleware"
	"github.com/LizaButReallyEliza/Formula1-project/models"
	"github.com/LizaButReallyEliza/Formula1-project/store"
)

const stableNotFound = "Stable not found"

type StableHandler struct {
	store *store.Store
}

func NewStableHandler(st *store.Store) *StableHandler {
	return &StableHandler{store: st}
}

// CreateStable handles POST /stables/
func (h *StableHandler) CreateStable(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStableRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	stable, err := h.store.CreateStable(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, stableNotFound)
		return
	}

	metrics.RecordCreated("stable")
	slog.Info("stable created", "stable_id", stable.ID, "name", stable.Name)

	middleware.JSONResponse(w, http.StatusCreated, stable)
}

// ListStables handles GET /stables/
func (h *StableHandler) ListStables(w http.ResponseWriter, r *http.Request) {
	stables, err := h.store.ListStables(r.Context())
	if err != nil {
		writeStoreError(w, err, stableNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stables)
}

// GetStable handles GET /stables/{id}
func (h *StableHandler) GetStable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stable, err := h.store.GetStable(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, stableNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stable)
}

// UpdateStable handles PATCH /stables/{id}
func (h *StableHandler) UpdateStable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStableRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	stable, err := h.store.UpdateStable(r.Context(), id, req)
	if err != nil {
		writeStoreError(w, err, stableNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stable)
}

// DeleteStable handles DELETE /stables/{id}
func (h *StableHandler) DeleteStable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteStable(r.Context(), id); err != nil {
		writeStoreError(w, err, stableNotFound)
		return
	}

	slog.Info("stable deleted", "stable_id", id)
	w.WriteHeader(http.StatusNoContent)
}
