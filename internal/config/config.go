package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/scoopdesk/scoopdesk/internal/scoop"
)

// Config holds the application configuration
type Config struct {
	Host      string
	Port      string
	DataDir   string
	ScoopRoot string

	// APIKey enables bearer-token auth when non-empty. Local single-user
	// setups leave it blank and the API is open on the loopback interface.
	APIKey    string
	JWTSecret string

	CommandTimeout time.Duration // list, status, hold, bucket rm
	LongOpTimeout  time.Duration // update, uninstall
	InstallTimeout time.Duration // install, reset, bucket add
	SearchTimeout  time.Duration // search, versions
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	dataDir := os.Getenv("SCOOPDESK_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".scoopdesk")
	}

	scoopRoot := os.Getenv("SCOOPDESK_SCOOP_ROOT")
	if scoopRoot == "" {
		scoopRoot = scoop.DiscoverRoot()
	}

	return &Config{
		Host:           getEnv("SCOOPDESK_HOST", "127.0.0.1"),
		Port:           getEnv("SCOOPDESK_PORT", "8000"),
		DataDir:        dataDir,
		ScoopRoot:      scoopRoot,
		APIKey:         os.Getenv("SCOOPDESK_API_KEY"),
		JWTSecret:      getEnv("SCOOPDESK_JWT_SECRET", "change-me-in-production"),
		CommandTimeout: getEnvSeconds("SCOOPDESK_COMMAND_TIMEOUT", 120),
		LongOpTimeout:  getEnvSeconds("SCOOPDESK_LONG_OP_TIMEOUT", 600),
		InstallTimeout: getEnvSeconds("SCOOPDESK_INSTALL_TIMEOUT", 300),
		SearchTimeout:  getEnvSeconds("SCOOPDESK_SEARCH_TIMEOUT", 60),
	}, nil
}

// LogDBPath is the location of the operation log database.
func (c *Config) LogDBPath() string {
	return filepath.Join(c.DataDir, "logs.db")
}

// SettingsPath is the location of the user settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "config.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	seconds := defaultSeconds
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}
