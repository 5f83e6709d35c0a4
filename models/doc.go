// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase to match the wire format the browser client
already speaks (userId, phoneNumber, assignedNumber).

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - RegisterRequest: name, phoneNumber, username, password
  - PickRequest: userId

# Response Types

Types for JSON responses:

  - LoginResponse: message, userId, assignedNumber (when already chosen)
  - LogoutResponse: message
  - RegisterResponse: message, userId
  - PickResponse: message, assignedNumber
  - DashboardResponse: assigned, unassigned, availableNumbers, chosenNumbers
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: member identity, credential hash, and assignment state
  - Number: one pool entry with its status
  - Session: server-side session record backing the cookie
  - DashboardEntry: masked user row for the dashboard

Credential and token fields carry `json:"-"` so they can never leak
through a response encoder.

# Constants

Number status values:

	StatusAvailable = "available"
	StatusChosen    = "chosen"

Cookie name:

	SessionCookie = "session_token"
*/
package models
