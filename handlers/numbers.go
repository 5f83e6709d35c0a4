// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/chama-pick/cliparse"
	"github.com/danielhkuo/chama-pick/middleware"
	"github.com/danielhkuo/chama-pick/models"
	"github.com/danielhkuo/chama-pick/shuffle"
)

type NumberHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewNumberHandler(db *sql.DB, cfg cliparse.Config) *NumberHandler {
	return &NumberHandler{db: db, cfg: cfg}
}

// GetAvailable handles GET /api/numbers/available
// An optional ?shuffle=<seed> query returns the same numbers in a
// deterministic display order instead of ascending.
func (h *NumberHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	numbers, err := availableNumbers(h.db)
	if err != nil {
		slog.Error("failed to query available numbers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if seedStr := r.URL.Query().Get("shuffle"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "shuffle must be an unsigned integer seed")
			return
		}
		numbers = shuffle.Ints(numbers, seed)
	}

	middleware.JSONResponse(w, http.StatusOK, numberList(numbers))
}

// GetChosen handles GET /api/numbers/chosen
func (h *NumberHandler) GetChosen(w http.ResponseWriter, r *http.Request) {
	numbers, err := chosenNumbers(h.db)
	if err != nil {
		slog.Error("failed to query chosen numbers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, numberList(numbers))
}

// Pick handles POST /api/numbers/pick
// The session cookie decides who is picking; a body userId that contradicts
// the session is rejected rather than trusted.
func (h *NumberHandler) Pick(w http.ResponseWriter, r *http.Request) {
	sessionUserID, err := SessionUser(h.db, r)
	if errors.Is(err, ErrNoSession) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.PickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID != "" && req.UserID != sessionUserID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Cannot pick for another user")
		return
	}

	number, err := AssignNumber(h.db, sessionUserID)
	switch {
	case errors.Is(err, ErrAlreadyChosen):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already chosen a number")
		return
	case errors.Is(err, ErrNoNumbersAvailable):
		middleware.ErrorResponse(w, http.StatusConflict, "No numbers available")
		return
	case errors.Is(err, ErrUserNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, ErrAssignConflict):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Please try again")
		return
	case err != nil:
		slog.Error("failed to assign number", "error", err, "user_id", sessionUserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to pick a number")
		return
	}

	// Position in the draw, for the confirmation message only
	var position int
	if err := h.db.QueryRow(`
		SELECT COUNT(*) FROM numbers WHERE status = $1
	`, models.StatusChosen).Scan(&position); err != nil {
		position = 0
	}

	message := fmt.Sprintf("Number %d is yours.", number)
	if position > 0 {
		message = fmt.Sprintf("Number %d is yours. You are the %s member to draw.", number, humanize.Ordinal(position))
	}

	slog.Info("number assigned", "user_id", sessionUserID, "number", number)

	middleware.JSONResponse(w, http.StatusOK, models.PickResponse{
		Message:        message,
		AssignedNumber: number,
	})
}

// numberList wraps ints in the wire shape the client expects
func numberList(numbers []int) []models.Number {
	list := make([]models.Number, 0, len(numbers))
	for _, n := range numbers {
		list = append(list, models.Number{Number: n})
	}
	return list
}
