package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ReadLoggerSettingsFromEnv
const (
	EnvLogLevel      = "RSA_LOG_LEVEL"
	EnvLogType       = "RSA_LOG_TYPE"
	EnvLogFile       = "RSA_LOG_FILE"
	EnvLogMaxSize    = "RSA_LOG_MAX_SIZE"
	EnvLogMaxBackups = "RSA_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "RSA_LOG_MAX_AGE"
)

// LoadEnvFile loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ReadLoggerSettingsFromEnv overlays the RSA_LOG_* environment variables on base.
// Unset variables keep the value from base.
func ReadLoggerSettingsFromEnv(base *LoggerSettings) (*LoggerSettings, error) {
	settings := *base

	if v := os.Getenv(EnvLogLevel); v != "" {
		settings.LogLevel = v
	}
	if v := os.Getenv(EnvLogType); v != "" {
		settings.LogType = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		settings.FilePath = v
	}

	ints := map[string]*int{
		EnvLogMaxSize:    &settings.MaxSize,
		EnvLogMaxBackups: &settings.MaxBackups,
		EnvLogMaxAge:     &settings.MaxAge,
	}
	for name, dst := range ints {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, not %q", name, v)
		}
		*dst = n
	}

	return &settings, nil
}
