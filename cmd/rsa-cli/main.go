// Package main is the entry point for the rsa-cli application.
// It initializes the root command and registers the key generation, encryption, decryption
// and verification sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/MikaPS/PublicKeyCryptography/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA key generation and file encryption",
		Long: `rsa-cli generates RSA key pairs whose public key carries a signature over the
owner's identity, and encrypts and decrypts files block by block with those keys.

Logging can be configured through a YAML settings file (--config) or the environment:
- RSA_LOG_LEVEL
- RSA_LOG_TYPE
- RSA_LOG_FILE
Variables are also read from a .env file (--env-file) when present.

The scheme applies no padding and is meant for study, not for protecting real data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all commands BEFORE executing
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
