// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielhkuo/chama-pick/auth"
	"github.com/danielhkuo/chama-pick/models"
)

// sessionTTL is how long a login stays valid without re-authenticating
const sessionTTL = 24 * time.Hour

var ErrNoSession = errors.New("no valid session")

// CreateSession inserts a session record and returns it.
// The token is the opaque value the client carries in its cookie.
func CreateSession(db *sql.DB, userID string) (models.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	_, err = db.Exec(`
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// SessionUser resolves the requesting user from the session cookie.
// Returns ErrNoSession when the cookie is absent, unknown, or expired.
func SessionUser(db *sql.DB, r *http.Request) (string, error) {
	cookie, err := r.Cookie(models.SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	var userID string
	err = db.QueryRow(`
		SELECT user_id FROM sessions
		WHERE token = $1 AND expires_at > $2
	`, cookie.Value, time.Now()).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to query session: %w", err)
	}

	return userID, nil
}

// DeleteSession removes a session record. Deleting an unknown token is not
// an error; logout is idempotent.
func DeleteSession(db *sql.DB, token string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SetSessionCookie delivers the session token out-of-band from the JSON body
func SetSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
