package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"errors"
	"fmt"

	cryptoDomain "github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/pkg/codec"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"
)

// symmetricProcessor struct that implements the SymmetricProcessor interface
type symmetricProcessor struct {
	logger logger.Logger
}

// NewSymmetricProcessor creates and returns a new instance of symmetricProcessor
func NewSymmetricProcessor(logger logger.Logger) (cryptoDomain.SymmetricProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &symmetricProcessor{
		logger: logger,
	}, nil
}

// Encrypt pads the plaintext and encrypts it under spec.
func (s *symmetricProcessor) Encrypt(plainText []byte, key, iv string, spec cryptoDomain.CipherSpec) ([]byte, error) {
	mode, err := newBlockMode(key, iv, spec, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	padded := pkcs5Pad(plainText, mode.BlockSize())
	cipherText := make([]byte, len(padded))
	mode.CryptBlocks(cipherText, padded)

	s.logger.Info(spec.String(), " encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts the ciphertext under spec and strips the padding.
func (s *symmetricProcessor) Decrypt(cipherText []byte, key, iv string, spec cryptoDomain.CipherSpec) ([]byte, error) {
	mode, err := newBlockMode(key, iv, spec, false)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	blockSize := mode.BlockSize()
	if len(cipherText) == 0 || len(cipherText)%blockSize != 0 {
		return nil, fmt.Errorf("failed to decrypt data: %w: ciphertext length %d is not a positive multiple of %d",
			cryptoDomain.ErrPadding, len(cipherText), blockSize)
	}

	plainText := make([]byte, len(cipherText))
	mode.CryptBlocks(plainText, cipherText)

	plainText, err = pkcs5Unpad(plainText, blockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	s.logger.Info(spec.String(), " decryption succeeded")
	return plainText, nil
}

// DesedeCBCEncrypt encrypts with DESede/CBC/PKCS5Padding.
func (s *symmetricProcessor) DesedeCBCEncrypt(plainText []byte, key, iv string) ([]byte, error) {
	return s.Encrypt(plainText, key, iv, cryptoDomain.DESedeCBCPKCS5)
}

// DesedeCBCDecrypt decrypts with DESede/CBC/PKCS5Padding.
func (s *symmetricProcessor) DesedeCBCDecrypt(cipherText []byte, key, iv string) ([]byte, error) {
	return s.Decrypt(cipherText, key, iv, cryptoDomain.DESedeCBCPKCS5)
}

// DESECBEncrypt encrypts with DES/ECB/PKCS5Padding.
func (s *symmetricProcessor) DESECBEncrypt(plainText []byte, key string) ([]byte, error) {
	return s.Encrypt(plainText, key, "", cryptoDomain.DESECBPKCS5)
}

// DESECBDecrypt decrypts with DES/ECB/PKCS5Padding.
func (s *symmetricProcessor) DESECBDecrypt(cipherText []byte, key string) ([]byte, error) {
	return s.Decrypt(cipherText, key, "", cryptoDomain.DESECBPKCS5)
}

// AESEncryptString encrypts the UTF-8 bytes of plainText with AES/ECB/PKCS5Padding.
func (s *symmetricProcessor) AESEncryptString(plainText, key string) ([]byte, error) {
	return s.Encrypt([]byte(plainText), key, "", cryptoDomain.AESECBPKCS5)
}

// AESDecryptBase64 decodes base64 ciphertext and decrypts it with AES/ECB/PKCS5Padding.
func (s *symmetricProcessor) AESDecryptBase64(cipherText, key string) ([]byte, error) {
	raw, err := codec.DecodeBase64(cipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w: %v", cryptoDomain.ErrPadding, err)
	}
	return s.Decrypt(raw, key, "", cryptoDomain.AESECBPKCS5)
}

// newBlockMode validates spec, key and IV and returns the chaining mode for one call.
func newBlockMode(key, iv string, spec cryptoDomain.CipherSpec, encrypt bool) (cipher.BlockMode, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	block, err := newBlockCipher(spec.Algorithm, []byte(key))
	if err != nil {
		return nil, err
	}

	switch spec.Mode {
	case cryptoDomain.ModeECB:
		if encrypt {
			return newECBEncrypter(block), nil
		}
		return newECBDecrypter(block), nil
	case cryptoDomain.ModeCBC:
		ivBytes := []byte(iv)
		if len(ivBytes) != block.BlockSize() {
			return nil, fmt.Errorf("%w: %s requires a %d-byte IV, got %d bytes",
				cryptoDomain.ErrKeyFormat, spec, block.BlockSize(), len(ivBytes))
		}
		if encrypt {
			return cipher.NewCBCEncrypter(block, ivBytes), nil
		}
		return cipher.NewCBCDecrypter(block, ivBytes), nil
	default:
		return nil, fmt.Errorf("%w: mode %s", cryptoDomain.ErrUnsupportedAlgorithm, spec.Mode)
	}
}

// newBlockCipher builds the block cipher for algorithm after checking the key length.
// A 16-byte DESede key is expanded to K1||K2||K1.
func newBlockCipher(algorithm string, key []byte) (cipher.Block, error) {
	if err := (cryptoDomain.SymmetricKey{Algorithm: algorithm, Size: len(key)}).Validate(); err != nil {
		return nil, err
	}

	var (
		block cipher.Block
		err   error
	)
	switch algorithm {
	case cryptoDomain.AlgorithmDES:
		block, err = des.NewCipher(key)
	case cryptoDomain.AlgorithmDESede:
		if len(key) == cryptoDomain.DESedeKeySize128 {
			expanded := make([]byte, 0, cryptoDomain.DESedeKeySize192)
			expanded = append(expanded, key...)
			key = append(expanded, key[:cryptoDomain.DESKeySize]...)
		}
		block, err = des.NewTripleDESCipher(key)
	case cryptoDomain.AlgorithmAES:
		block, err = aes.NewCipher(key)
	default:
		return nil, fmt.Errorf("%w: cipher %s", cryptoDomain.ErrUnsupportedAlgorithm, algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrKeyFormat, err)
	}

	return block, nil
}
