// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Chama Pick API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication (session cookie):

	POST /api/auth/login  - Verify credentials, issue session cookie
	POST /api/auth/logout - Revoke session, clear cookie

Users:

	POST /api/users/register - Create a member record
	GET  /api/users          - All members
	GET  /api/users/{id}     - One member

Number pool:

	GET  /api/numbers/available - Available numbers (optional ?shuffle=<seed>)
	GET  /api/numbers/chosen    - Chosen numbers
	POST /api/numbers/pick      - Claim one number (session required)

Dashboard:

	GET /api/dashboard - Partitioned members and numbers (session required)

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	numberHandler := handlers.NewNumberHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
