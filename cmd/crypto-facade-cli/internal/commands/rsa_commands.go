package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/infrastructure/cryptography"
	"github.com/challengezhou/zujool-common/internal/pkg/config"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	loggerSettings *config.LoggerSettings
	logger         logger.Logger
}

// NewRSACommandHandler returns a RSACommandHandler whose logger is built by Setup
// once the logging flags are parsed.
func NewRSACommandHandler(loggerSettings *config.LoggerSettings) (*RSACommandHandler, error) {
	if loggerSettings == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	return &RSACommandHandler{loggerSettings: loggerSettings}, nil
}

// Setup configures the logger from the parsed flags
func (commandHandler *RSACommandHandler) Setup(_ *cobra.Command, _ []string) error {
	loggerInstance, err := setupLogger(commandHandler.loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	commandHandler.logger = loggerInstance
	return nil
}

func (commandHandler *RSACommandHandler) newProcessor(cmd *cobra.Command) (crypto.RSAProcessor, error) {
	settings := config.DefaultRSASettings()

	if flag := cmd.Flags().Lookup("key-size"); flag != nil {
		keySize, err := cmd.Flags().GetInt("key-size")
		if err != nil {
			return nil, fmt.Errorf("invalid key-size flag: %w", err)
		}
		settings.KeySize = keySize
	}
	if flag := cmd.Flags().Lookup("signature-hash"); flag != nil {
		signatureHash, err := cmd.Flags().GetString("signature-hash")
		if err != nil {
			return nil, fmt.Errorf("invalid signature-hash flag: %w", err)
		}
		settings.SignatureHash = signatureHash
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(settings, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return rsaProcessor, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and persists both base64 keys in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	rsaProcessor, err := commandHandler.newProcessor(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyPair, err := rsaProcessor.GenerateKeyPair()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.b64", uniqueID))
	if err := os.WriteFile(privateKeyFilePath, []byte(keyPair.PrivateKey), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.b64", uniqueID))
	if err := os.WriteFile(publicKeyFilePath, []byte(keyPair.PublicKey), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("RSA keys saved to ", privateKeyFilePath, " and ", publicKeyFilePath)
}

// EncryptRSACmd encrypts a file of at most one RSA block with a public key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	rsaProcessor, err := commandHandler.newProcessor(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := readKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := rsaProcessor.EncryptWithPublicKey(plainText, publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptRSACmd decrypts a file using RSA
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	rsaProcessor, err := commandHandler.newProcessor(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := readKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := rsaProcessor.DecryptWithPrivateKey(encryptedData, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignRSACmd signs a file using RSA and saves the base64 signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	rsaProcessor, err := commandHandler.newProcessor(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := readKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := rsaProcessor.Sign(data, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(signatureFilePath, []byte(signature), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyRSACmd verifies a base64 signature using RSA and prints the outcome
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	rsaProcessor, err := commandHandler.newProcessor(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := readKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := readKeyFile(signatureFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := rsaProcessor.Verify(data, signature, publicKey)
	if err != nil {
		commandHandler.logger.Warn(err)
	}

	if valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
	}
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command, loggerSettings *config.LoggerSettings) error {
	handler, err := NewRSACommandHandler(loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:     "generate-rsa-keys",
		Short:   "Generate RSA keys",
		PreRunE: handler.Setup,
		Run:     handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", crypto.RSAKeySize1024, "RSA key size in bits")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:     "encrypt-rsa",
		Short:   "Encrypt a file using RSA",
		PreRunE: handler.Setup,
		Run:     handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", "", "Path to base64 RSA public key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:     "decrypt-rsa",
		Short:   "Decrypt a file using RSA",
		PreRunE: handler.Setup,
		Run:     handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", "", "Path to base64 RSA private key")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var signRSAFileCmd = &cobra.Command{
		Use:     "sign-rsa",
		Short:   "Sign a file using RSA",
		PreRunE: handler.Setup,
		Run:     handler.SignRSACmd,
	}
	signRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signRSAFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signRSAFileCmd.Flags().StringP("private-key", "", "", "Path to base64 RSA private key")
	signRSAFileCmd.Flags().StringP("signature-hash", "", config.SignatureHashMD5, "Signature digest (MD5, SHA-1 or SHA-256)")
	rootCmd.AddCommand(signRSAFileCmd)

	var verifyRSAFileCmd = &cobra.Command{
		Use:     "verify-rsa",
		Short:   "Verify a file is valid using RSA",
		PreRunE: handler.Setup,
		Run:     handler.VerifyRSACmd,
	}
	verifyRSAFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyRSAFileCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	verifyRSAFileCmd.Flags().StringP("public-key", "", "", "Path to base64 RSA public key")
	verifyRSAFileCmd.Flags().StringP("signature-hash", "", config.SignatureHashMD5, "Signature digest (MD5, SHA-1 or SHA-256)")
	rootCmd.AddCommand(verifyRSAFileCmd)

	return nil
}
