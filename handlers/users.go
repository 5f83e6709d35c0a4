// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/chama-pick/auth"
	"github.com/danielhkuo/chama-pick/cliparse"
	"github.com/danielhkuo/chama-pick/middleware"
	"github.com/danielhkuo/chama-pick/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.PhoneNumber == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "phoneNumber is required")
		return
	}
	if len(req.Username) < 2 || len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be 2-50 characters")
		return
	}
	if len(req.Password) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	userID := auth.NewUserID()

	// UNIQUE constraint on username prevents duplicates
	_, err = h.db.Exec(`
		INSERT INTO users (id, name, phone_number, username, password_hash, chosen, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
	`, userID, req.Name, req.PhoneNumber, req.Username, passwordHash, time.Now())

	if err != nil {
		// Check if it's a uniqueness violation (message differs per driver)
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", userID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Message: "Registration successful",
		UserID:  userID,
	})
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, phone_number, chosen, assigned_number, created_at
		FROM users
		ORDER BY name
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			slog.Error("failed to scan user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		users = append(users, user)
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	var user models.User
	var assignedNumber sql.NullInt64
	err := h.db.QueryRow(`
		SELECT id, name, phone_number, chosen, assigned_number, created_at
		FROM users
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Name, &user.PhoneNumber, &user.Chosen, &assignedNumber, &user.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if assignedNumber.Valid {
		n := int(assignedNumber.Int64)
		user.AssignedNumber = &n
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// scanUser reads one user row from a list query
func scanUser(rows *sql.Rows) (models.User, error) {
	var user models.User
	var assignedNumber sql.NullInt64
	err := rows.Scan(&user.ID, &user.Name, &user.PhoneNumber, &user.Chosen, &assignedNumber, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	if assignedNumber.Valid {
		n := int(assignedNumber.Int64)
		user.AssignedNumber = &n
	}
	return user, nil
}
