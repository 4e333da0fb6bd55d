package config

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded automatically via godotenv before
// the variables are read.
//
// Recognized variables:
//
//	ROADCASE_API_BASE_URL     base URL of the RoadCase API
//	ROADCASE_DEVICE_NAME      device label sent on login
//	ROADCASE_TOKEN_DB_PATH    token database file path
//	ROADCASE_REQUEST_TIMEOUT  request timeout, Go duration string ("30s")
//	ROADCASE_LOG_LEVEL        zerolog level name
//
// Unset or empty variables leave the corresponding field untouched; a
// malformed timeout is ignored.
func parseEnv(cfg *Config) {
	if v := os.Getenv("ROADCASE_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ROADCASE_DEVICE_NAME"); v != "" {
		cfg.DeviceName = v
	}
	if v := os.Getenv("ROADCASE_TOKEN_DB_PATH"); v != "" {
		cfg.TokenDBPath = v
	}
	if v := os.Getenv("ROADCASE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("ROADCASE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
