// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles driver selection, schema creation, and number seeding.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Statements are written in the SQL subset both drivers accept, including $1
placeholders, which postgres requires and sqlite binds positionally.

# Tables

The schema includes:

  - users: Registered members with credentials and assignment state
  - numbers: The shared pool, one row per number with a status flag
  - sessions: Server-side opaque session tokens

# Invariants

  - users.assigned_number is set if and only if users.chosen is true,
    enforced by the assignment transaction in package handlers
  - users.assigned_number carries a UNIQUE constraint as a backstop:
    even a buggy writer cannot bind one number to two users
  - numbers.status only moves available → chosen, never back

# Seeding

SeedNumbers fills an empty pool with 1..poolSize in a single transaction:

	seeded, err := db.SeedNumbers(conn, cfg.PoolSize)

A non-empty pool is left untouched, so restarts are safe.
*/
package db
