package router

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/LizaButReallyEliza/Formula1-project/cliparse"
	"github.com/LizaButReallyEliza/Formula1-project/handlers"
	"github.com/LizaButReallyEliza/Formula1-project/metrics"
	"github.com/LizaButReallyEliza/Formula1-project/middleware"
	"github.com/LizaButReallyEliza/Formula1-project/store"
)

const banner = "Formula1 racing API v1"

func NewRouter(db *sqlx.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	st := store.New(db, store.DeletePolicy(cfg.DeletePolicy))

	// Initialize handlers
	stageHandler := handlers.NewStageHandler(st)
	stableHandler := handlers.NewStableHandler(st)
	resultHandler := handlers.NewResultHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Stages
	handle(mux, "POST /stages", stageHandler.CreateStage)
	handle(mux, "GET /stages", stageHandler.ListStages)
	handle(mux, "GET /stages/group_by", stageHandler.AverageRaceTime)
	mux.HandleFunc("GET /stages/{id}", middleware.WithLogging(stageHandler.GetStage))
	mux.HandleFunc("PATCH /stages/{id}", middleware.WithLogging(stageHandler.UpdateStage))
	mux.HandleFunc("DELETE /stages/{id}", middleware.WithLogging(stageHandler.DeleteStage))

	// Stables
	handle(mux, "POST /stables", stableHandler.CreateStable)
	handle(mux, "GET /stables", stableHandler.ListStables)
	mux.HandleFunc("GET /stables/{id}", middleware.WithLogging(stableHandler.GetStable))
	mux.HandleFunc("PATCH /stables/{id}", middleware.WithLogging(stableHandler.UpdateStable))
	mux.HandleFunc("DELETE /stables/{id}", middleware.WithLogging(stableHandler.DeleteStable))

	// Results
	handle(mux, "POST /results", resultHandler.CreateResult)
	handle(mux, "GET /results", resultHandler.ListResults)
	handle(mux, "GET /results/filter", resultHandler.FilterResults)
	handle(mux, "GET /results/join", resultHandler.JoinResults)
	handle(mux, "PUT /results/update_laps", resultHandler.UpdateLaps)
	handle(mux, "GET /results/sorted", resultHandler.SortedResults)
	mux.HandleFunc("GET /results/{id}", middleware.WithLogging(resultHandler.GetResult))
	mux.HandleFunc("PATCH /results/{id}", middleware.WithLogging(resultHandler.UpdateResult))
	mux.HandleFunc("DELETE /results/{id}", middleware.WithLogging(resultHandler.DeleteResult))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(banner))
	})

	return middleware.CORS(middleware.WithMetrics(mux))
}

// handle registers a collection route both with and without its trailing slash.
func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	wrapped := middleware.WithLogging(h)
	mux.HandleFunc(pattern, wrapped)
	mux.HandleFunc(pattern+"/{$}", wrapped)
}
