/*
Package router defines HTTP routes for the Formula 1 API.

# Route Registration

NewRouter builds the store and handlers and returns the configured
http.ServeMux wrapped in CORS and Prometheus middleware:

	handler := router.NewRouter(db, cfg)

Collection routes answer with and without a trailing slash.

# Endpoints

Health and metrics:

	GET /health  - Liveness, pings the database
	GET /metrics - Prometheus exposition

Stages:

	POST   /stages/          - Create stage
	GET    /stages/          - List stages
	GET    /stages/group_by/ - Average race time per stage
	GET    /stages/{id}      - Get stage
	PATCH  /stages/{id}      - Partial update
	DELETE /stages/{id}      - Delete, subject to the delete policy

Stables:

	POST   /stables/     - Create stable
	GET    /stables/     - List stables
	GET    /stables/{id} - Get stable
	PATCH  /stables/{id} - Partial update
	DELETE /stables/{id} - Delete, subject to the delete policy

Results:

	POST   /results/             - Create result (references checked)
	GET    /results/             - List results
	GET    /results/{id}         - Get result
	PATCH  /results/{id}         - Partial update
	DELETE /results/{id}         - Delete result
	GET    /results/filter/      - ?stage_id=&stable_id=
	GET    /results/join/        - Results with stage and stable names
	PUT    /results/update_laps/ - ?race_time_threshold=&new_laps=
	GET    /results/sorted/      - ?order=asc|desc
*/
package router
