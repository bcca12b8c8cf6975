/*
Package store is the data-access layer for stages, stables and results.

Every method takes a context and returns a distinct error for each outcome
instead of an empty value:

  - ErrNotFound: the identifier does not resolve
  - ErrInvalidReference: a stage_id or stable_id does not exist (*ReferenceError)
  - ErrInvalidArgument: a parameter such as the sort order is invalid (*ArgumentError)
  - ErrReferenced: a restricted delete found dependent results (*ReferencedError)
  - ErrStorage: the database failed; the transaction was rolled back

Use errors.Is to tell them apart:

	result, err := st.CreateResult(ctx, req)
	switch {
	case errors.Is(err, store.ErrInvalidReference):
		// 400
	case errors.Is(err, store.ErrStorage):
		// 500
	}

# Transactions

Result creation checks the stable and the stage and inserts the row in a
single transaction. On postgres the referenced rows are read FOR SHARE, so a
concurrent delete waits for the insert to finish. Deletes of stages and
stables lock the row FOR UPDATE before looking at dependent results.

The bulk laps update is a single UPDATE committed once.

# Delete Policy

New takes the policy applied when a stage or stable still has results:
Restrict, Cascade or Dangle.
*/
package store
