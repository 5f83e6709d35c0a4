// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv), so a
local development setup needs no exported shell variables.

# Config Fields

  - Port: Server listen port (default: 9000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "postgres" or "sqlite" (default: postgres)
  - PoolSize: Size of the number pool seeded at startup (default: 10)
  - ClientOrigin: Browser origin allowed by credentialed CORS

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-n              Number pool size
	--client-origin Allowed browser origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	POOL_SIZE     → -n
	CLIENT_URL    → --client-origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be postgres or sqlite
  - POOL_SIZE must be at least 1

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
