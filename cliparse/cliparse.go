package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	PoolSize     int
	ClientOrigin string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; env vars may come from the shell instead
	_ = godotenv.Load()

	fs := flag.NewFlagSet("chama-pick", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Pool and client config
	fs.IntVar(&cfg.PoolSize, "n", 0, "Number pool size seeded at startup")
	fs.StringVar(&cfg.ClientOrigin, "client-origin", "", "Browser origin allowed by CORS")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 9000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.PoolSize == 0 {
		if sizeStr := os.Getenv("POOL_SIZE"); sizeStr != "" {
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Config{}, errors.New("invalid POOL_SIZE env variable")
			}
			cfg.PoolSize = size
		} else {
			cfg.PoolSize = 10 // default
		}
	}
	if cfg.PoolSize < 1 {
		return Config{}, errors.New("pool size must be at least 1")
	}

	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = os.Getenv("CLIENT_URL")
	}

	return cfg, nil
}
