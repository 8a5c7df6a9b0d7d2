package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the UserHub client.
//
// Fields:
//   - ServerAddr: base URL of the UserHub REST API, including the base path.
//   - RequestTimeout: per-request HTTP timeout.
//   - StateDir: directory holding the durable session (token + profile).
type Config struct {
	ServerAddr     string
	RequestTimeout time.Duration
	StateDir       string
}

// LoadDefaults populates c with sensible defaults. The state directory lands
// under the user's config dir, falling back to the working directory when
// the platform reports none.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	c.StateDir = filepath.Join(base, "userhub")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
