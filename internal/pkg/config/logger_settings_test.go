//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerSettings(t *testing.T) {
	s := DefaultLoggerSettings()

	require.NoError(t, s.Validate())
	assert.Equal(t, LogLevelInfo, s.LogLevel)
	assert.Equal(t, LogTypeConsole, s.LogType)
	assert.Empty(t, s.FilePath)
}

func TestLoggerSettingsYAMLKeys(t *testing.T) {
	path := writeFile(t, "logger.yml", `
logger:
  log_level: critical
  log_type: file
  file_path: rsa.log
  max_size: 5
  max_backups: 2
  max_age: 7
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, LoggerSettings{
		LogLevel:   LogLevelCritical,
		LogType:    LogTypeFile,
		FilePath:   "rsa.log",
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
	}, s.Logger)
	assert.NoError(t, s.Logger.Validate())
}

func TestLoggerSettingsFromYAMLValidation(t *testing.T) {
	tests := []struct {
		name        string
		logger      string
		errContains string
	}{
		{
			name:   "level only keeps default type",
			logger: "  log_level: debug\n",
		},
		{
			name:   "rotation at lower bounds",
			logger: "  log_type: file\n  file_path: rsa.log\n  max_size: 1\n  max_backups: 1\n  max_age: 1\n",
		},
		{
			name:   "rotation at upper bounds",
			logger: "  log_type: file\n  file_path: rsa.log\n  max_size: 100\n  max_backups: 10\n  max_age: 365\n",
		},
		{
			name:        "unknown level",
			logger:      "  log_level: trace\n",
			errContains: "LogLevel",
		},
		{
			name:        "file without path",
			logger:      "  log_type: file\n  max_size: 1\n  max_backups: 1\n  max_age: 1\n",
			errContains: "file path is required",
		},
		{
			name:        "too many backups",
			logger:      "  log_type: file\n  file_path: rsa.log\n  max_size: 1\n  max_backups: 11\n  max_age: 1\n",
			errContains: "max backups",
		},
		{
			name:        "too old",
			logger:      "  log_type: file\n  file_path: rsa.log\n  max_size: 1\n  max_backups: 1\n  max_age: 366\n",
			errContains: "max age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSettings(writeFile(t, "settings.yml", "logger:\n"+tt.logger))
			require.NoError(t, err)

			err = s.Logger.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
