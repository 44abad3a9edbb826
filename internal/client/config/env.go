package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envBaseURL = "ROAMER_SERVER_URL"
	envTimeout = "ROAMER_TIMEOUT_SECONDS"
	envDBPath  = "ROAMER_DB_PATH"
)

// parseEnv overlays cfg from the environment. A .env file in the working
// directory is loaded first when present; a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DatabasePath = v
	}
}
