// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/chama-pick/cliparse"
	"github.com/danielhkuo/chama-pick/handlers"
	"github.com/danielhkuo/chama-pick/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	numberHandler := handlers.NewNumberHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", middleware.WithLogging(authHandler.Logout))

	// Users
	mux.HandleFunc("POST /api/users/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.List))
	mux.HandleFunc("GET /api/users/{id}", middleware.WithLogging(userHandler.Get))

	// Number pool
	mux.HandleFunc("GET /api/numbers/available", middleware.WithLogging(numberHandler.GetAvailable))
	mux.HandleFunc("GET /api/numbers/chosen", middleware.WithLogging(numberHandler.GetChosen))
	mux.HandleFunc("POST /api/numbers/pick", middleware.WithLogging(numberHandler.Pick))

	// Dashboard (session-authenticated read)
	mux.HandleFunc("GET /api/dashboard", middleware.WithLogging(dashboardHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("chama-pick API v1"))
	})

	return mux
}
