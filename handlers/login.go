// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/chama-pick/auth"
	"github.com/danielhkuo/chama-pick/cliparse"
	"github.com/danielhkuo/chama-pick/middleware"
	"github.com/danielhkuo/chama-pick/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var userID, passwordHash string
	var chosen bool
	var assignedNumber sql.NullInt64
	err := h.db.QueryRow(`
		SELECT id, password_hash, chosen, assigned_number
		FROM users
		WHERE username = $1
	`, req.Username).Scan(&userID, &passwordHash, &chosen, &assignedNumber)

	if err == sql.ErrNoRows {
		// Same response as a bad password; don't reveal which usernames exist
		slog.Warn("login failed", "username", req.Username, "ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
		slog.Warn("login failed", "username", req.Username, "ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session, err := CreateSession(h.db, userID)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	SetSessionCookie(w, session)

	resp := models.LoginResponse{
		Message: "Login successful",
		UserID:  userID,
	}
	if chosen && assignedNumber.Valid {
		n := int(assignedNumber.Int64)
		resp.AssignedNumber = &n
	}

	slog.Info("login successful", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(models.SessionCookie); err == nil && cookie.Value != "" {
		if err := DeleteSession(h.db, cookie.Value); err != nil {
			slog.Error("failed to delete session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
			return
		}
	}

	ClearSessionCookie(w)

	middleware.JSONResponse(w, http.StatusOK, models.LogoutResponse{
		Message: "Logged out",
	})
}
