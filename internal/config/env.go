package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client. A .env file in the working
// directory is loaded first; real environment variables win over it.
const (
	envServerAddr     = "USERHUB_SERVER_ADDR"
	envRequestTimeout = "USERHUB_REQUEST_TIMEOUT"
	envStateDir       = "USERHUB_STATE_DIR"
)

func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envStateDir); v != "" {
		cfg.StateDir = v
	}
}
