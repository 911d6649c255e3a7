// Package config loads service configuration from the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CredentialMode selects how occupant credentials are normalized before
// storage.
type CredentialMode string

const (
	// CredentialModeLegacy truncates and right-pads credentials to the
	// fixed-width legacy column, preserving compatibility with existing rows.
	CredentialModeLegacy CredentialMode = "legacy"
	// CredentialModeBcrypt stores a bcrypt hash instead.
	CredentialModeBcrypt CredentialMode = "bcrypt"
)

// Config captures environment driven configuration for the hotel service.
type Config struct {
	HTTPPort        int
	SQLiteDSN       string
	CredentialMode  CredentialMode
	ShutdownTimeout time.Duration
}

// Load parses configuration from the current process environment, applying
// defaults for unset values and collecting every invalid entry into one
// error so misconfiguration is reported in a single pass.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:        8080,
		SQLiteDSN:       "file:hotel.db?_pragma=foreign_keys(1)",
		CredentialMode:  CredentialModeLegacy,
		ShutdownTimeout: 10 * time.Second,
	}

	var invalid []string

	if portValue := strings.TrimSpace(os.Getenv("HOTEL_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "HOTEL_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("HOTEL_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if mode := strings.TrimSpace(os.Getenv("HOTEL_CREDENTIAL_MODE")); mode != "" {
		switch CredentialMode(strings.ToLower(mode)) {
		case CredentialModeLegacy:
			cfg.CredentialMode = CredentialModeLegacy
		case CredentialModeBcrypt:
			cfg.CredentialMode = CredentialModeBcrypt
		default:
			invalid = append(invalid, "HOTEL_CREDENTIAL_MODE")
		}
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("HOTEL_SHUTDOWN_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "HOTEL_SHUTDOWN_TIMEOUT")
		} else {
			cfg.ShutdownTimeout = timeout
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
