/*
Package middleware provides HTTP middleware and request/response helpers.

# Middleware

WithLogging logs the start and completion of each request with a request ID,
taken from X-Request-ID or generated as a UUID and echoed back:

	mux.HandleFunc("GET /stages/{$}", middleware.WithLogging(handler.ListStages))

WithMetrics wraps the whole mux and records Prometheus request metrics
labelled with the matched route pattern.

CORS allows cross-origin requests and answers preflight requests.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusCreated, stage)
	middleware.ErrorResponse(w, http.StatusNotFound, "Stage not found")
	err := middleware.ParseJSONBody(r, &req)

Error responses have the shape:

	{"error": "Not Found", "message": "Stage not found"}

# Parameters

PathID, QueryInt and QueryFloat parse required parameters and return an
error message suitable for a 400 response. QueryString returns an optional
parameter with a default.
*/
package middleware
