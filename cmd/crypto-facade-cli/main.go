// Package main is the entry point for the crypto-facade-cli application.
// It registers the symmetric, RSA, digest and hex codec sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/challengezhou/zujool-common/cmd/crypto-facade-cli/internal/commands"
	"github.com/challengezhou/zujool-common/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-facade-cli",
		Short: "Symmetric, RSA and digest operations CLI tool",
		Long: `crypto-facade-cli is a command-line tool over the crypto facade.
Supports DES, DESede and AES encryption in ECB or CBC mode with PKCS5 padding,
RSA key generation, encryption and MD5 signatures with base64 DER keys,
message digests and hex encoding.

Logs go to stderr by default. Use --log-type file --log-file <path> to write
rotated JSON logs instead.`,
	}

	loggerSettings := commands.BindLoggerFlags(rootCmd)

	if err := initializeCommands(rootCmd, loggerSettings); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
// The logger settings are shared by every command and filled in from the persistent flags.
func initializeCommands(rootCmd *cobra.Command, loggerSettings *config.LoggerSettings) error {
	if err := commands.InitSymmetricCommands(rootCmd, loggerSettings); err != nil {
		return fmt.Errorf("failed to initialize symmetric commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd, loggerSettings); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitDigestCommands(rootCmd, loggerSettings); err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	if err := commands.InitCodecCommands(rootCmd, loggerSettings); err != nil {
		return fmt.Errorf("failed to initialize codec commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
