// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Chama Pick API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: Login and logout with cookie sessions
  - UserHandler: Registration and user record reads
  - NumberHandler: Pool reads and the pick operation
  - DashboardHandler: Partitioned member/number overview

Handlers are created via constructor functions that accept *sql.DB and Config:

	numberHandler := handlers.NewNumberHandler(db, cfg)

# Auth Flow

	POST /api/auth/login  → Login (sets session_token cookie)
	POST /api/auth/logout → Logout (deletes the session record)

Sessions are opaque server-side records; helpers in sessions.go create,
resolve, and delete them. Authenticated handlers call SessionUser to turn
the cookie into a user ID.

# Number Assignment

The one operation with a correctness obligation is AssignNumber in
assign.go:

	number, err := handlers.AssignNumber(db, userID)

It binds one available number to one not-yet-chosen user in a single
transaction whose UPDATEs carry their preconditions in the WHERE clause,
retrying a lost race at most five times. Error values:

  - ErrAlreadyChosen: the user holds a number; nothing changed
  - ErrNoNumbersAvailable: the pool is exhausted; nothing changed
  - ErrUserNotFound: unknown user ID
  - ErrAssignConflict: lost five straight races; the client may retry

# Read Paths

	GET /api/users             → List
	GET /api/users/{id}        → Get
	GET /api/numbers/available → GetAvailable (optional ?shuffle=<seed>)
	GET /api/numbers/chosen    → GetChosen
	GET /api/dashboard         → Get (masked phones, sorted partitions)

All reads are side-effect free and safe to poll.
*/
package handlers
