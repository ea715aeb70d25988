package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/challengezhou/zujool-common/internal/pkg/config"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// BindLoggerFlags registers the persistent logging flags on rootCmd and returns the
// settings they populate. The settings are only complete once the flags are parsed.
func BindLoggerFlags(rootCmd *cobra.Command) *config.LoggerSettings {
	settings := config.DefaultLoggerSettings()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "Log level (debug, info, warning, error, critical)")
	flags.StringVar(&settings.LogType, "log-type", settings.LogType, "Log destination (console or file)")
	flags.StringVar(&settings.FilePath, "log-file", settings.FilePath, "Log file path, required with --log-type file")
	flags.IntVar(&settings.MaxSize, "log-max-size", settings.MaxSize, "Log file size in megabytes before rotation")
	flags.IntVar(&settings.MaxBackups, "log-max-backups", settings.MaxBackups, "Number of rotated log files to keep")
	flags.IntVar(&settings.MaxAge, "log-max-age", settings.MaxAge, "Days to keep rotated log files")
	flags.BoolVar(&settings.Compress, "log-compress", settings.Compress, "Gzip rotated log files")

	return settings
}

// setupLogger builds a logger from the parsed flag settings. Each invocation gets its
// own logger so a file destination chosen on the command line is honored.
func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings cannot be nil")
	}

	loggerInstance, err := logger.NewLogger(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return loggerInstance, nil
}

// readKeyFile reads a base64 key blob written by generate-rsa-keys.
func readKeyFile(path string) (string, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}
