// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Chama Pick API server.

Chama Pick is a small group lottery service: a fixed set of registered
members each claim exactly one number from a shared pool, then watch a
dashboard of who holds what.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 9000 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 9000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - POOL_SIZE (-n): size of the number pool seeded at startup (default: 10)
  - CLIENT_URL (--client-origin): browser origin allowed by CORS

A .env file in the working directory is loaded before flags are parsed.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, users, numbers, dashboard)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: password hashing and session token generation
  - db: driver selection, schema creation, number seeding
  - shuffle: deterministic display-order randomization
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
