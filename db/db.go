package db

import (
	"database/sql"
	"fmt"
	"time"
)

// CreateSchema creates the state table. Safe to call multiple times -
// uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Whole-value application state, one row per named collection
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// KV adapts a SQL database to the store's key-value persistence
// contract. One row per key, full-snapshot overwrites only. The SQL is
// kept to the dialect both sqlite and postgres accept.
type KV struct {
	conn *sql.DB
}

func NewKV(conn *sql.DB) *KV {
	return &KV{conn: conn}
}

func (kv *KV) Get(key string) ([]byte, bool, error) {
	var value string
	err := kv.conn.QueryRow(`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (kv *KV) Set(key string, value []byte) error {
	_, err := kv.conn.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	return nil
}
