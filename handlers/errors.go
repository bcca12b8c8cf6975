package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/LizaButReallyEliza/Formula1-project/middleware"
	"github.com/LizaButReallyEliza/Formula1-project/store"
)

// writeStoreError maps a store error onto a status code. notFound is the
// message used for ErrNotFound.
func writeStoreError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrInvalidReference), errors.Is(err, store.ErrInvalidArgument):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrReferenced):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// validator is implemented by every request body type.
type validator interface {
	Validate() error
}

// decodeRequest parses and validates a JSON body, writing a 400 on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v validator) bool {
	if err := middleware.ParseJSONBody(r, v); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := v.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// pathID reads the {id} path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}
