package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration needed to boot the backend.
//
// Values are read from the environment, with a .env file in the working
// directory loaded first if present. Switches that only one component
// consults (CORS origins, pprof, the session lifetime) are read from the
// environment at the use site instead.
type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Database
	DBPath string

	// Logging and runtime behavior
	GinMode   string
	LogFormat string
}

// Load reads the configuration from the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		APIURL:    getEnv("API_URL", "http://localhost:8080"),
		DBPath:    getEnv("DB_PATH", "data/backend.db"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: getEnv("LOG_FORMAT", ""),
	}
}

// Validate returns an error if the configuration cannot be used to start the
// backend.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.GinMode != "release" && c.GinMode != "debug" && c.GinMode != "test" {
		return fmt.Errorf("invalid GIN_MODE %q: must be one of release, debug, test", c.GinMode)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
