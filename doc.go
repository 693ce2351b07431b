/*
Package main provides the entry point for the pollbox server.

Pollbox is a single-user poll tool: create polls (multiple choice,
yes/no, or rating scale), share a 6-character code, vote once per poll,
and view aggregated results. All state lives in a local database used as
plain key-value storage; there is no account system and no multi-user
synchronization. The process is the client.

# Starting the Server

	go run main.go

By default the server listens on port 3344 and persists to a sqlite
file, pollbox.db, in the working directory. Flags or environment
variables override this:

	go run main.go -p 8080 -d "file:polls.db"
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Architecture

  - models: data model, poll factory, results aggregation, error kinds
  - pollcode: share code generation, formatting, normalization
  - store: the poll store (in-memory collection mirrored to storage)
  - db: schema and the SQL-backed key-value layer
  - handlers: HTTP request handlers for each user flow
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, JSON helpers
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
