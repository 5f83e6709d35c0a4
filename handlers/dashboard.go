// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/chama-pick/cliparse"
	"github.com/danielhkuo/chama-pick/middleware"
	"github.com/danielhkuo/chama-pick/models"
)

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// Get handles GET /api/dashboard
// Pure read: members partitioned into assigned (ascending by number) and
// unassigned (by name), plus both number lists. Clients poll this.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := SessionUser(h.db, r); err != nil {
		if errors.Is(err, ErrNoSession) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
			return
		}
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	assigned, err := h.queryEntries(`
		SELECT name, phone_number, assigned_number
		FROM users
		WHERE chosen = TRUE
		ORDER BY assigned_number
	`)
	if err != nil {
		slog.Error("failed to query assigned users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	unassigned, err := h.queryEntries(`
		SELECT name, phone_number, assigned_number
		FROM users
		WHERE chosen = FALSE
		ORDER BY name
	`)
	if err != nil {
		slog.Error("failed to query unassigned users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	available, err := availableNumbers(h.db)
	if err != nil {
		slog.Error("failed to query available numbers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	chosen, err := chosenNumbers(h.db)
	if err != nil {
		slog.Error("failed to query chosen numbers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardResponse{
		Assigned:         assigned,
		Unassigned:       unassigned,
		AvailableNumbers: available,
		ChosenNumbers:    chosen,
	})
}

func (h *DashboardHandler) queryEntries(query string) ([]models.DashboardEntry, error) {
	rows, err := h.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.DashboardEntry{}
	for rows.Next() {
		var entry models.DashboardEntry
		var assignedNumber sql.NullInt64
		if err := rows.Scan(&entry.Name, &entry.PhoneNumber, &assignedNumber); err != nil {
			return nil, err
		}
		if assignedNumber.Valid {
			n := int(assignedNumber.Int64)
			entry.AssignedNumber = &n
		}
		entry.PhoneNumber = MaskPhone(entry.PhoneNumber)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// MaskPhone hides all digits except the first three and last two.
// Non-digit characters (spaces, dashes, a leading +) pass through, so
// "0712345678" becomes "071*****78". A number too short to have a
// middle is returned unchanged. Presentation rule, not a security control.
func MaskPhone(phone string) string {
	total := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			total++
		}
	}
	if total <= 5 {
		return phone
	}

	var b strings.Builder
	b.Grow(len(phone))
	seen := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			if seen >= 3 && seen < total-2 {
				b.WriteRune('*')
			} else {
				b.WriteRune(r)
			}
			seen++
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
