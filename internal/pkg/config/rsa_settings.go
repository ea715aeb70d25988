package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Signature digest constants
const (
	SignatureHashMD5    = "MD5"
	SignatureHashSHA1   = "SHA-1"
	SignatureHashSHA256 = "SHA-256"
)

// RSASettings parameterizes RSA key generation and signing.
type RSASettings struct {
	KeySize       int    `mapstructure:"key_size" validate:"required,oneof=1024 2048 3072 4096"`
	SignatureHash string `mapstructure:"signature_hash" validate:"required,oneof=MD5 SHA-1 SHA-256"`
}

// DefaultRSASettings returns 1024-bit keys with MD5 signatures.
// Both are weak by current standards and kept as the default for compatibility with existing key material.
func DefaultRSASettings() *RSASettings {
	return &RSASettings{
		KeySize:       1024,
		SignatureHash: SignatureHashMD5,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}
