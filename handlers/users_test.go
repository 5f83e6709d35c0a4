// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/chama-pick/models"
	"github.com/danielhkuo/chama-pick/testutil"
)

func TestRegister_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		Name:        "Amina Wanjiru",
		PhoneNumber: "0712345678",
		Username:    "amina",
		Password:    "password123",
	}, nil)
	w := httptest.NewRecorder()
	userHandler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.UserID == "" {
		t.Error("expected a userId in the response")
	}

	// Password is stored hashed, never as submitted
	var hash string
	var chosen bool
	err := db.QueryRow(`SELECT password_hash, chosen FROM users WHERE id = $1`, resp.UserID).Scan(&hash, &chosen)
	if err != nil {
		t.Fatalf("Failed to query user: %v", err)
	}
	if hash == "password123" {
		t.Error("password stored in plaintext")
	}
	if chosen {
		t.Error("new user should start with chosen = false")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	testutil.CreateTestUser(t, db, "Brian", "0712345678", "brian", "password123", nil)

	req := testutil.MakeRequest("POST", "/api/users/register", models.RegisterRequest{
		Name:        "Other Brian",
		PhoneNumber: "0787654321",
		Username:    "brian",
		Password:    "password456",
	}, nil)
	w := httptest.NewRecorder()
	userHandler.Register(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestRegister_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing name", models.RegisterRequest{PhoneNumber: "0712345678", Username: "user1", Password: "password123"}},
		{"missing phone", models.RegisterRequest{Name: "A", Username: "user2", Password: "password123"}},
		{"short username", models.RegisterRequest{Name: "A", PhoneNumber: "0712345678", Username: "x", Password: "password123"}},
		{"short password", models.RegisterRequest{Name: "A", PhoneNumber: "0712345678", Username: "user3", Password: "short"}},
	}

	for _, tc := range cases {
		req := testutil.MakeRequest("POST", "/api/users/register", tc.req, nil)
		w := httptest.NewRecorder()
		userHandler.Register(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}
}

func TestListUsers_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	testutil.CreateTestUser(t, db, "Zainab", "0712345678", "zainab", "password123", nil)
	testutil.CreateTestUser(t, db, "Amina", "0722345678", "amina", "password123", nil)
	testutil.CreateTestUser(t, db, "Moses", "0732345678", "moses", "password123", nil)

	req := testutil.MakeRequest("GET", "/api/users", nil, nil)
	w := httptest.NewRecorder()
	userHandler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var users []models.User
	testutil.AssertJSON(t, w, &users)

	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, want := range []string{"Amina", "Moses", "Zainab"} {
		if users[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, users[i].Name)
		}
	}
}

func TestGetUser_RoundTripAfterPick(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)
	numberHandler := NewNumberHandler(db, cfg)

	testutil.SeedTestNumbers(t, db, 10)
	userID := testutil.CreateTestUser(t, db, "Cynthia", "0712345678", "cynthia", "password123", nil)

	number, err := AssignNumber(db, userID)
	if err != nil {
		t.Fatalf("AssignNumber failed: %v", err)
	}

	// The user record reports the assignment
	req := testutil.MakeRequest("GET", "/api/users/"+userID, nil, nil)
	req.SetPathValue("id", userID)
	w := httptest.NewRecorder()
	userHandler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var user models.User
	testutil.AssertJSON(t, w, &user)
	if !user.Chosen {
		t.Error("expected chosen = true")
	}
	if user.AssignedNumber == nil || *user.AssignedNumber != number {
		t.Errorf("expected assignedNumber %d, got %v", number, user.AssignedNumber)
	}

	// And the number no longer appears in the available list
	req = testutil.MakeRequest("GET", "/api/numbers/available", nil, nil)
	w = httptest.NewRecorder()
	numberHandler.GetAvailable(w, req)

	var available []models.Number
	testutil.AssertJSON(t, w, &available)
	for _, n := range available {
		if n.Number == number {
			t.Errorf("number %d still listed as available", number)
		}
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/api/users/no-such-id", nil, nil)
	req.SetPathValue("id", "no-such-id")
	w := httptest.NewRecorder()
	userHandler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListUsers_NeverExposesCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	userHandler := NewUserHandler(db, cfg)

	testutil.CreateTestUser(t, db, "Dan", "0712345678", "dan", "password123", nil)

	req := testutil.MakeRequest("GET", "/api/users", nil, nil)
	w := httptest.NewRecorder()
	userHandler.List(w, req)

	body := w.Body.String()
	if strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Errorf("response body leaks credential fields: %s", body)
	}
}
