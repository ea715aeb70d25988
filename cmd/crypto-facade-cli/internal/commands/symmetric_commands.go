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

const defaultTransformation = "DESede/CBC/PKCS5Padding"

// SymmetricCommandHandler encapsulates logic for handling DES, DESede and AES operations via CLI.
type SymmetricCommandHandler struct {
	loggerSettings     *config.LoggerSettings
	symmetricProcessor crypto.SymmetricProcessor
	logger             logger.Logger
}

// NewSymmetricCommandHandler returns a SymmetricCommandHandler whose logger and symmetric
// processor are built by Setup once the logging flags are parsed.
func NewSymmetricCommandHandler(loggerSettings *config.LoggerSettings) (*SymmetricCommandHandler, error) {
	if loggerSettings == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	return &SymmetricCommandHandler{loggerSettings: loggerSettings}, nil
}

// Setup configures the logger and symmetric processor from the parsed flags
func (commandHandler *SymmetricCommandHandler) Setup(_ *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(commandHandler.loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	symmetricProcessor, err := cryptography.NewSymmetricProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create symmetric processor: %w", err)
	}

	commandHandler.logger = loggerInstance
	commandHandler.symmetricProcessor = symmetricProcessor
	return nil
}

type symmetricFlags struct {
	spec       crypto.CipherSpec
	key        string
	iv         string
	inputFile  string
	outputFile string
}

func (commandHandler *SymmetricCommandHandler) readFlags(cmd *cobra.Command) (*symmetricFlags, error) {
	transformation, err := cmd.Flags().GetString("transformation")
	if err != nil {
		return nil, fmt.Errorf("invalid transformation flag: %w", err)
	}
	spec, err := crypto.ParseCipherSpec(transformation)
	if err != nil {
		return nil, err
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return nil, fmt.Errorf("invalid key flag: %w", err)
	}
	iv, err := cmd.Flags().GetString("iv")
	if err != nil {
		return nil, fmt.Errorf("invalid iv flag: %w", err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return nil, fmt.Errorf("invalid output-file flag: %w", err)
	}

	return &symmetricFlags{
		spec:       spec,
		key:        key,
		iv:         iv,
		inputFile:  inputFile,
		outputFile: outputFile,
	}, nil
}

// EncryptCmd encrypts a file with the selected transformation
func (commandHandler *SymmetricCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	flags, err := commandHandler.readFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(flags.inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := commandHandler.symmetricProcessor.Encrypt(plainText, flags.key, flags.iv, flags.spec)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(flags.outputFile, cipherText, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", flags.outputFile)
}

// DecryptCmd decrypts a file with the selected transformation
func (commandHandler *SymmetricCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	flags, err := commandHandler.readFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := os.ReadFile(filepath.Clean(flags.inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := commandHandler.symmetricProcessor.Decrypt(cipherText, flags.key, flags.iv, flags.spec)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(flags.outputFile, plainText, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", flags.outputFile)
}

// ListTransformationsCmd prints every supported transformation with its key and IV requirements
func (commandHandler *SymmetricCommandHandler) ListTransformationsCmd(cmd *cobra.Command, _ []string) {
	for _, spec := range crypto.SupportedCipherSpecs() {
		iv := "no IV"
		if spec.RequiresIV() {
			iv = fmt.Sprintf("%d-byte IV", spec.BlockSize())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d-byte blocks\t%s\n", spec, spec.BlockSize(), iv)
	}
}

func addSymmetricFlags(cmd *cobra.Command, inputHelp, outputHelp string) {
	cmd.Flags().StringP("transformation", "t", defaultTransformation, "Cipher transformation, e.g. DES/ECB/PKCS5Padding or AES/CBC/PKCS5Padding")
	cmd.Flags().StringP("key", "", "", "Key whose UTF-8 bytes are used as-is (8 bytes for DES, 16 or 24 for DESede, 16, 24 or 32 for AES)")
	cmd.Flags().StringP("iv", "", "", "Initialization vector for CBC, one block long")
	cmd.Flags().StringP("input-file", "", "", inputHelp)
	cmd.Flags().StringP("output-file", "", "", outputHelp)
}

// InitSymmetricCommands registers DES, DESede and AES commands
func InitSymmetricCommands(rootCmd *cobra.Command, loggerSettings *config.LoggerSettings) error {
	handler, err := NewSymmetricCommandHandler(loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to create symmetric command handler: %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:     "encrypt",
		Short:   "Encrypt a file using DES, DESede or AES",
		PreRunE: handler.Setup,
		Run:     handler.EncryptCmd,
	}
	addSymmetricFlags(encryptCmd, "Path to input file which needs to be encrypted", "Path to encrypted output file")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:     "decrypt",
		Short:   "Decrypt a file using DES, DESede or AES",
		PreRunE: handler.Setup,
		Run:     handler.DecryptCmd,
	}
	addSymmetricFlags(decryptCmd, "Path to encrypted file", "Path to decrypted output file")
	rootCmd.AddCommand(decryptCmd)

	var listTransformationsCmd = &cobra.Command{
		Use:   "list-transformations",
		Short: "List the supported symmetric transformations",
		Run:   handler.ListTransformationsCmd,
	}
	rootCmd.AddCommand(listTransformationsCmd)

	return nil
}
