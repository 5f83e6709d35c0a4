// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// SeedNumbers inserts numbers 1..poolSize into the pool if it is empty.
// Returns the count of numbers inserted (zero when already seeded).
// The count check and inserts share a transaction so two servers starting
// at once cannot double-seed.
func SeedNumbers(db *sql.DB, poolSize int) (int, error) {
	if poolSize < 1 {
		return 0, fmt.Errorf("pool size must be at least 1, got %d", poolSize)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM numbers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count numbers: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	for n := 1; n <= poolSize; n++ {
		if _, err := tx.Exec(`INSERT INTO numbers (number, status) VALUES ($1, 'available')`, n); err != nil {
			return 0, fmt.Errorf("failed to seed number %d: %w", n, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return poolSize, nil
}
