/*
Package handlers contains HTTP request handlers for the Formula 1 API.

# Handler Types

Each handler is a struct holding the shared store:

  - StageHandler: stage CRUD and average race time per stage
  - StableHandler: stable CRUD
  - ResultHandler: result CRUD, filtering, joins, sorting and bulk laps updates

Handlers are created via constructor functions:

	stageHandler := handlers.NewStageHandler(st)

# Request Handling

Bodies are decoded with middleware.ParseJSONBody and checked with the
request type's Validate method. A body with anything after its JSON value
is rejected. Non-integer path ids are a 400; any integer id is looked up and
a missing row is a 404.

Store errors map onto status codes:

	store.ErrNotFound         → 404
	store.ErrInvalidReference → 400 ("Invalid stable_id: does not exist")
	store.ErrInvalidArgument  → 400
	store.ErrReferenced       → 409
	anything else             → 500 ("Database error")

Creates answer 201 with the stored row. Deletes answer 204 with no body.
*/
package handlers
