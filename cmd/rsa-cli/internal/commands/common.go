package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/config"
	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadSettings resolves the settings file, the .env file and the RSA_LOG_* environment.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, fmt.Errorf("invalid env-file flag: %w", err)
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}

	loggerSettings, err := config.ReadLoggerSettingsFromEnv(&settings.Logger)
	if err != nil {
		return nil, err
	}
	settings.Logger = *loggerSettings

	return settings, nil
}

// openInput opens path for reading; an empty path or "-" selects the command's standard input.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't open %s to read input: %w", path, err)
	}
	return file, func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}, nil
}

// openOutput opens path for writing; an empty path or "-" selects the command's standard output.
// The returned close function reports write-back errors of the file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't open %s to write output: %w", path, err)
	}
	return file, file.Close, nil
}

// discardOutput closes an output left incomplete by a failed operation and removes it
// when it is a file, so no partial plaintext or ciphertext stays on disk.
func discardOutput(path string, closeOut func() error) {
	if err := closeOut(); err != nil {
		log.Printf("warning: failed to close file: %v\n", err)
	}
	if path == "" || path == "-" {
		return
	}
	if err := os.Remove(filepath.Clean(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: failed to remove incomplete output %s: %v\n", path, err)
	}
}
