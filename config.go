package client

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config groups the environment-level knobs the SDK needs at startup.
// Values are taken from environment variables with the prefix
// "ONTRACK_". Example: ONTRACK_BASE_URL=https://api.example.com/api .
type Config struct {
	// BaseURL is the backend's action-endpoint root.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080/api"`

	// AdminUsername/AdminPassword are the default credentials for the
	// unattended bootstrap. Empty values disable it.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// StateDir holds the persisted session record. Empty means the
	// per-user config directory.
	StateDir string `envconfig:"STATE_DIR" default:""`

	// RetryWindow enables transport-level retries when greater than
	// zero. Zero keeps every action single-shot.
	RetryWindow time.Duration `envconfig:"RETRY_WINDOW" default:"0"`
}

// LoadConfig populates Config from environment variables (prefix
// ONTRACK_). A .env file in the working directory is honored when
// present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var c Config
	return c, envconfig.Process("ONTRACK", &c)
}
