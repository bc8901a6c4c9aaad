// Package main is the entry point for the rsa-vault-cli application.
// It initializes the root command and registers the key generation,
// encryption and signature sub-commands, then executes the command-line
// interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_vault_service/cmd/rsa-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-vault-cli",
		Short: "From-scratch RSA operations CLI tool",
		Long: `rsa-vault-cli is a command-line tool for RSA cryptography built from
first principles: safe-prime key generation over a Blum Blum Shub stream,
OAEP encryption, PSS signatures and CRT private-key operations with
exponent blinding. Keys are stored as portable base64 blobs.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCryptCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize crypt commands: %w", err)
	}

	if err := commands.InitSignCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize sign commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
