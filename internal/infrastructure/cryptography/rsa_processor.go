package cryptography

import (
	"crypto"
	_ "crypto/md5"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha1"
	_ "crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	cryptoDomain "github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/pkg/codec"
	"github.com/challengezhou/zujool-common/internal/pkg/config"
	"github.com/challengezhou/zujool-common/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	keySize       int
	signatureHash crypto.Hash
	logger        logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// Nil settings select config.DefaultRSASettings.
func NewRSAProcessor(settings *config.RSASettings, logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if settings == nil {
		settings = config.DefaultRSASettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	hash, err := signatureHash(settings.SignatureHash)
	if err != nil {
		return nil, err
	}

	return &rsaProcessor{
		keySize:       settings.KeySize,
		signatureHash: hash,
		logger:        logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair and returns both keys base64 encoded,
// the public key as X.509 SubjectPublicKeyInfo DER and the private key as PKCS#8 DER.
func (r *rsaProcessor) GenerateKeyPair() (*cryptoDomain.KeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, r.keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	privKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}

	r.logger.Info("Generated RSA key pair of ", r.keySize, " bits")
	return &cryptoDomain.KeyPair{
		PublicKey:  codec.EncodeBase64(pubKeyBytes),
		PrivateKey: codec.EncodeBase64(privKeyBytes),
	}, nil
}

// Sign hashes data with the configured digest and signs it with PKCS#1 v1.5.
func (r *rsaProcessor) Sign(data []byte, privateKey string) (string, error) {
	key, err := r.ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	h := r.signatureHash.New()
	h.Write(data)

	signature, err := rsa.SignPKCS1v15(rand.Reader, key, r.signatureHash, h.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return codec.EncodeBase64(signature), nil
}

// Verify checks a base64 PKCS#1 v1.5 signature over data.
func (r *rsaProcessor) Verify(data []byte, signature, publicKey string) (bool, error) {
	key, err := r.ParsePublicKey(publicKey)
	if err != nil {
		return false, err
	}

	rawSignature, err := codec.DecodeBase64(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", cryptoDomain.ErrSignatureInvalid, err)
	}

	h := r.signatureHash.New()
	h.Write(data)

	if err := rsa.VerifyPKCS1v15(key, r.signatureHash, h.Sum(nil), rawSignature); err != nil {
		return false, fmt.Errorf("%w: %v", cryptoDomain.ErrSignatureInvalid, err)
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// EncryptWithPublicKey encrypts one block with PKCS#1 v1.5 padding.
// RSA can only encrypt up to the modulus size minus 11 bytes; larger input is rejected, not chunked.
func (r *rsaProcessor) EncryptWithPublicKey(data []byte, publicKey string) ([]byte, error) {
	key, err := r.ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	maxSize := key.Size() - cryptoDomain.RSAPKCS1v15Overhead
	if len(data) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d-byte limit", cryptoDomain.ErrBlockSize, len(data), maxSize)
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, key, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return encrypted, nil
}

// DecryptWithPrivateKey decrypts one PKCS#1 v1.5 block.
func (r *rsaProcessor) DecryptWithPrivateKey(data []byte, privateKey string) ([]byte, error) {
	key, err := r.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	if len(data) > key.Size() {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes exceeds the %d-byte modulus", cryptoDomain.ErrBlockSize, len(data), key.Size())
	}

	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, key, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w: %v", cryptoDomain.ErrPadding, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return decrypted, nil
}

// ParsePublicKey decodes a base64 X.509 SubjectPublicKeyInfo RSA public key.
func (r *rsaProcessor) ParsePublicKey(publicKey string) (*rsa.PublicKey, error) {
	der, err := codec.DecodeBase64(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %v", cryptoDomain.ErrKeyFormat, err)
	}

	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key: %v", cryptoDomain.ErrKeyFormat, err)
	}

	key, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoDomain.ErrKeyFormat)
	}

	return key, nil
}

// ParsePrivateKey decodes a base64 PKCS#8 RSA private key.
func (r *rsaProcessor) ParsePrivateKey(privateKey string) (*rsa.PrivateKey, error) {
	der, err := codec.DecodeBase64(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %v", cryptoDomain.ErrKeyFormat, err)
	}

	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key: %v", cryptoDomain.ErrKeyFormat, err)
	}

	key, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoDomain.ErrKeyFormat)
	}

	return key, nil
}

func signatureHash(name string) (crypto.Hash, error) {
	switch name {
	case config.SignatureHashMD5:
		return crypto.MD5, nil
	case config.SignatureHashSHA1:
		return crypto.SHA1, nil
	case config.SignatureHashSHA256:
		return crypto.SHA256, nil
	default:
		return 0, fmt.Errorf("%w: signature hash %s", cryptoDomain.ErrUnsupportedAlgorithm, name)
	}
}

