package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/infrastructure/cryptography"
	"github.com/challengezhou/zujool-common/internal/pkg/config"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DigestCommandHandler encapsulates logic for computing message digests via CLI.
type DigestCommandHandler struct {
	loggerSettings *config.LoggerSettings
	logger         logger.Logger
}

// NewDigestCommandHandler returns a DigestCommandHandler whose logger is built by Setup
// once the logging flags are parsed.
func NewDigestCommandHandler(loggerSettings *config.LoggerSettings) (*DigestCommandHandler, error) {
	if loggerSettings == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	return &DigestCommandHandler{loggerSettings: loggerSettings}, nil
}

// Setup configures the logger from the parsed flags
func (commandHandler *DigestCommandHandler) Setup(_ *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(commandHandler.loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	commandHandler.logger = loggerInstance
	return nil
}

// DigestCmd prints the hex digest over the concatenated --input values, or over --input-file
func (commandHandler *DigestCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}
	inputs, err := cmd.Flags().GetStringArray("input")
	if err != nil {
		commandHandler.logger.Error("invalid input flag: ", err)
		return
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}

	if inputFile != "" {
		content, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		inputs = append(inputs, string(content))
	}

	var digester crypto.Digester
	digester, err = cryptography.NewDigestSession(algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	digest, err := digester.Digest(inputs...)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), digest)
}

// InitDigestCommands registers the digest command
func InitDigestCommands(rootCmd *cobra.Command, loggerSettings *config.LoggerSettings) error {
	handler, err := NewDigestCommandHandler(loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to create digest command handler: %w", err)
	}

	var digestCmd = &cobra.Command{
		Use:     "digest",
		Short:   "Compute a hex message digest",
		PreRunE: handler.Setup,
		Run:     handler.DigestCmd,
	}
	digestCmd.Flags().StringP("algorithm", "a", crypto.AlgMD5, fmt.Sprintf("Digest algorithm, one of %v", cryptography.SupportedDigests()))
	digestCmd.Flags().StringArrayP("input", "i", nil, "Input string, repeat to concatenate several inputs")
	digestCmd.Flags().StringP("input-file", "", "", "Path to a file appended after the --input values")
	rootCmd.AddCommand(digestCmd)

	return nil
}
