// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/danielhkuo/chama-pick/models"
)

var (
	ErrAlreadyChosen      = errors.New("user has already chosen a number")
	ErrNoNumbersAvailable = errors.New("no numbers available")
	ErrUserNotFound       = errors.New("user not found")
	ErrAssignConflict     = errors.New("assignment conflict, please retry")
)

// maxAssignAttempts bounds the retry loop when a conditional commit loses a
// race. Each attempt re-reads the available set, so five attempts only fail
// while the pool is draining faster than we can re-draw.
const maxAssignAttempts = 5

// errLostRace signals that another picker took the selected number between
// our read and our commit. Internal to the retry loop, never surfaced.
var errLostRace = errors.New("lost assignment race")

// AssignNumber durably binds one available pool number to the given user.
//
// The guarantee - no number to two users, no second number to one user -
// comes from a single transaction whose two UPDATEs each carry their
// precondition in the WHERE clause:
//
//	UPDATE users   ... WHERE id = ? AND chosen = FALSE
//	UPDATE numbers ... WHERE number = ? AND status = 'available'
//
// If either touches zero rows the transaction rolls back without side
// effects. The random draw beforehand is perceived fairness only; it has no
// correctness obligation.
func AssignNumber(db *sql.DB, userID string) (int, error) {
	for attempt := 1; attempt <= maxAssignAttempts; attempt++ {
		number, err := assignOnce(db, userID)
		if errors.Is(err, errLostRace) {
			slog.Warn("assignment lost race, retrying", "user_id", userID, "attempt", attempt)
			continue
		}
		return number, err
	}

	return 0, ErrAssignConflict
}

func assignOnce(db *sql.DB, userID string) (int, error) {
	available, err := availableNumbers(db)
	if err != nil {
		return 0, err
	}
	if len(available) == 0 {
		return 0, ErrNoNumbersAvailable
	}

	// Uniform draw from the fresh read
	number := available[rand.IntN(len(available))]

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin assignment transaction: %w", err)
	}
	defer tx.Rollback()

	// User row first: a zero-row update here is a terminal condition
	// (already chosen or unknown user), never a retry.
	res, err := tx.Exec(`
		UPDATE users
		SET chosen = TRUE, assigned_number = $1
		WHERE id = $2 AND chosen = FALSE
	`, number, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		// Classify inside the same transaction
		var chosen bool
		err := tx.QueryRow(`SELECT chosen FROM users WHERE id = $1`, userID).Scan(&chosen)
		if err == sql.ErrNoRows {
			return 0, ErrUserNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("failed to query user: %w", err)
		}
		if chosen {
			return 0, ErrAlreadyChosen
		}
		return 0, errLostRace
	}

	res, err = tx.Exec(`
		UPDATE numbers
		SET status = $1, chosen_at = $2
		WHERE number = $3 AND status = $4
	`, models.StatusChosen, time.Now(), number, models.StatusAvailable)
	if err != nil {
		return 0, fmt.Errorf("failed to update number: %w", err)
	}

	rows, err = res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		// Another picker committed this number between our read and now
		return 0, errLostRace
	}

	if err := tx.Commit(); err != nil {
		// Serialization failures land here; retry with a fresh read
		slog.Warn("assignment commit failed", "user_id", userID, "number", number, "error", err)
		return 0, errLostRace
	}

	return number, nil
}

// availableNumbers reads the current available set in ascending order
func availableNumbers(db *sql.DB) ([]int, error) {
	rows, err := db.Query(`
		SELECT number FROM numbers WHERE status = $1 ORDER BY number
	`, models.StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to query available numbers: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan number: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

// chosenNumbers reads the chosen set in ascending order
func chosenNumbers(db *sql.DB) ([]int, error) {
	rows, err := db.Query(`
		SELECT number FROM numbers WHERE status = $1 ORDER BY number
	`, models.StatusChosen)
	if err != nil {
		return nil, fmt.Errorf("failed to query chosen numbers: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan number: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}
