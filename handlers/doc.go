/*
Package handlers contains the HTTP request handlers that expose the core
poll operations to the browser UI.

# Handler Types

Each handler is a struct holding the poll store:

	pollHandler := handlers.NewPollHandler(st)

  - PollHandler: list, create, fetch, delete
  - VotingHandler: vote submission
  - ResultsHandler: aggregated results
  - JoinHandler: join-by-code resolution

# Flows

Each endpoint corresponds 1:1 to a user-facing flow:

	GET    /polls              → list screen summaries
	POST   /polls              → create poll
	GET    /polls/{id}         → voting screen payload
	POST   /polls/{id}/vote    → record the single local vote
	GET    /polls/{id}/results → results screen payload
	DELETE /polls/{id}         → delete poll
	POST   /join               → resolve a share code

# Error Mapping

Domain errors translate to statuses in writeDomainError: validation
failures → 400, unknown poll/option → 404, duplicate vote → 409,
inactive poll → 410.
*/
package handlers
