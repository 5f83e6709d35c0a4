package models

import "time"

// Number status constants
const (
	StatusAvailable = "available"
	StatusChosen    = "chosen"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session_token"

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

type PickRequest struct {
	UserID string `json:"userId"`
}

// Response types

type LoginResponse struct {
	Message        string `json:"message"`
	UserID         string `json:"userId"`
	AssignedNumber *int   `json:"assignedNumber,omitempty"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type PickResponse struct {
	Message        string `json:"message"`
	AssignedNumber int    `json:"assignedNumber"`
}

// Domain types

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phoneNumber"`
	Username       string    `json:"-"` // Never expose in JSON
	PasswordHash   string    `json:"-"` // Never expose in JSON
	Chosen         bool      `json:"chosen"`
	AssignedNumber *int      `json:"assignedNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Number struct {
	Number   int        `json:"number"`
	Status   string     `json:"status,omitempty"`
	ChosenAt *time.Time `json:"-"`
}

type Session struct {
	Token     string    `json:"-"` // Delivered via cookie, never in a body
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Dashboard types

// DashboardEntry is a user row as shown on the dashboard.
// PhoneNumber is masked before it leaves the server.
type DashboardEntry struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	AssignedNumber *int   `json:"assignedNumber,omitempty"`
}

type DashboardResponse struct {
	Assigned         []DashboardEntry `json:"assigned"`
	Unassigned       []DashboardEntry `json:"unassigned"`
	AvailableNumbers []int            `json:"availableNumbers"`
	ChosenNumbers    []int            `json:"chosenNumbers"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
