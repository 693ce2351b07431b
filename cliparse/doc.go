/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override defaults:

	go run main.go -p 3344 -d "file:pollbox.db"

# Settings

  - PORT (-p): server port (default: 3344)
  - DATABASE_URL (-d): sqlite file URL or postgres connection string
    (default: file:pollbox.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

A postgres backend requires an explicit DATABASE_URL.
*/
package cliparse
