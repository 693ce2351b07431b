/*
Package db handles schema creation and the SQL-backed key-value layer.

# Schema Creation

CreateSchema initializes the single required table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

	app_state (key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP)

The application treats the database as named whole-value storage, the
way the original treated browser local storage. The poll store writes
two rows: the serialized poll collection under "polls" and the user
vote map under "userVotes".

# Backends

The same SQL works against modernc.org/sqlite (default, including
":memory:" for tests) and lib/pq, selected by DATABASE_TYPE.
*/
package db
