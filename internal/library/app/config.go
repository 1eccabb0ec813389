package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DatabaseDriver      string        // sqlite or postgres (default: sqlite)
	DatabaseDSN         string        // sqlite file or postgres URL (default: stacks.db)
	PepperFile          string        // file holding the password pepper (default: ./pepper)
	Env                 string        // dev, staging, prod (default: dev)
	LogLevel            string        // debug, info, warn, error (default: info)
	LogFormat           string        // json, text (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after overlaying a .env file from the
// working directory when one exists. Variables already set win over .env.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseDriver:      getEnvOrDefault("STACKS_DATABASE_DRIVER", DriverSQLite),
		DatabaseDSN:         os.Getenv("STACKS_DATABASE_DSN"),
		PepperFile:          getEnvOrDefault("STACKS_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Only sqlite has a sensible local default.
	if cfg.DatabaseDSN == "" && cfg.DatabaseDriver == DriverSQLite {
		cfg.DatabaseDSN = "stacks.db"
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q (want %s or %s)", c.DatabaseDriver, DriverSQLite, DriverPostgres)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("STACKS_DATABASE_DSN is required for the %s driver", c.DatabaseDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
