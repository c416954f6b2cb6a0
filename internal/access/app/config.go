package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Optional: issuer label for otpauth URLs (default: GymOS)
	Timezone     string // Optional: IANA zone for day boundaries (default: UTC)
	DatabaseFile string // Optional: path to SQLite database file (default: ./access.db)
	PepperFile   string // Optional: path to file containing pepper for PIN hashing (default: ./pepper)
	TOTPWindow   int    // Optional: TOTP validation window in steps (default: 1; 0 accepts only the current step)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	AuditRetention       time.Duration // How long access decisions are kept (default: 90 days)
	ScanRetention        time.Duration // How long consumed scan events are kept (default: 24h)
}

func LoadConfig() Config {
	return Config{
		Issuer:       getEnvOrDefault("ACCESS_ISSUER", "GymOS"),
		Timezone:     getEnvOrDefault("ACCESS_TIMEZONE", "UTC"),
		DatabaseFile: getEnvOrDefault("ACCESS_DATABASE_FILE", "access.db"),
		PepperFile:   getEnvOrDefault("ACCESS_PEPPER_FILE", "pepper"),
		TOTPWindow:   getEnvIntOrDefault("ACCESS_TOTP_WINDOW", 1),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		AuditRetention:       getEnvDurationOrDefault("ACCESS_AUDIT_RETENTION", 90*24*time.Hour),
		ScanRetention:        getEnvDurationOrDefault("ACCESS_SCAN_RETENTION", 24*time.Hour),
	}
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
