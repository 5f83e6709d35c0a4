// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL sticks to the subset both postgres and sqlite accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    chosen BOOLEAN NOT NULL DEFAULT FALSE,
    assigned_number INTEGER UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
CREATE INDEX IF NOT EXISTS idx_users_chosen ON users(chosen);

-- Number pool: every number in the configured range, exactly once
CREATE TABLE IF NOT EXISTS numbers (
    number INTEGER PRIMARY KEY,
    status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'chosen')),
    chosen_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_numbers_status ON numbers(status);

-- Server-side opaque sessions backing the auth cookie
CREATE TABLE IF NOT EXISTS sessions (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    expires_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
`
