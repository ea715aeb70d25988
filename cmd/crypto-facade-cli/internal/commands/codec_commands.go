package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/challengezhou/zujool-common/internal/pkg/codec"
	"github.com/challengezhou/zujool-common/internal/pkg/config"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CodecCommandHandler encapsulates logic for hex encoding via CLI.
type CodecCommandHandler struct {
	loggerSettings *config.LoggerSettings
	logger         logger.Logger
}

// NewCodecCommandHandler returns a CodecCommandHandler whose logger is built by Setup
// once the logging flags are parsed.
func NewCodecCommandHandler(loggerSettings *config.LoggerSettings) (*CodecCommandHandler, error) {
	if loggerSettings == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	return &CodecCommandHandler{loggerSettings: loggerSettings}, nil
}

// Setup configures the logger from the parsed flags
func (commandHandler *CodecCommandHandler) Setup(_ *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(commandHandler.loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	commandHandler.logger = loggerInstance
	return nil
}

// HexEncodeCmd prints the lowercase hex form of a file
func (commandHandler *CodecCommandHandler) HexEncodeCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), codec.BytesToHex(data))
}

// HexDecodeCmd decodes a lowercase hex string into a file
func (commandHandler *CodecCommandHandler) HexDecodeCmd(cmd *cobra.Command, _ []string) {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		commandHandler.logger.Error("invalid input flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	data, err := codec.HexToBytes(strings.TrimSpace(input))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decoded data path ", outputFile)
}

// InitCodecCommands registers hex codec commands
func InitCodecCommands(rootCmd *cobra.Command, loggerSettings *config.LoggerSettings) error {
	handler, err := NewCodecCommandHandler(loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to create codec command handler: %w", err)
	}

	var hexEncodeCmd = &cobra.Command{
		Use:     "hex-encode",
		Short:   "Print a file as lowercase hex",
		PreRunE: handler.Setup,
		Run:     handler.HexEncodeCmd,
	}
	hexEncodeCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be encoded")
	rootCmd.AddCommand(hexEncodeCmd)

	var hexDecodeCmd = &cobra.Command{
		Use:     "hex-decode",
		Short:   "Decode a lowercase hex string into a file",
		PreRunE: handler.Setup,
		Run:     handler.HexDecodeCmd,
	}
	hexDecodeCmd.Flags().StringP("input", "", "", "Lowercase hex string")
	hexDecodeCmd.Flags().StringP("output-file", "", "", "Path to decoded output file")
	rootCmd.AddCommand(hexDecodeCmd)

	return nil
}
