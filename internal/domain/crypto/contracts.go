package crypto

import (
	"crypto/rsa"
)

// SymmetricProcessor handles DES, DESede and AES block-cipher operations.
// Key and IV material are strings whose UTF-8 bytes are used as-is; they are never truncated or padded.
type SymmetricProcessor interface {
	// Encrypt pads the plaintext (PKCS#5) and encrypts it under the given transformation.
	// The IV is required for CBC and ignored for ECB.
	Encrypt(plainText []byte, key, iv string, spec CipherSpec) ([]byte, error)

	// Decrypt decrypts the ciphertext under the given transformation and strips the padding.
	// Returns ErrPadding when the padding does not verify.
	Decrypt(cipherText []byte, key, iv string, spec CipherSpec) ([]byte, error)

	// DesedeCBCEncrypt encrypts with DESede/CBC/PKCS5Padding.
	DesedeCBCEncrypt(plainText []byte, key, iv string) ([]byte, error)

	// DesedeCBCDecrypt decrypts with DESede/CBC/PKCS5Padding.
	DesedeCBCDecrypt(cipherText []byte, key, iv string) ([]byte, error)

	// DESECBEncrypt encrypts with DES/ECB/PKCS5Padding.
	DESECBEncrypt(plainText []byte, key string) ([]byte, error)

	// DESECBDecrypt decrypts with DES/ECB/PKCS5Padding.
	DESECBDecrypt(cipherText []byte, key string) ([]byte, error)

	// AESEncryptString encrypts the UTF-8 bytes of a string with AES/ECB/PKCS5Padding.
	AESEncryptString(plainText, key string) ([]byte, error)

	// AESDecryptBase64 decodes base64 ciphertext and decrypts it with AES/ECB/PKCS5Padding.
	// Malformed base64 is reported as ErrPadding, like any other corrupted ciphertext.
	AESDecryptBase64(cipherText, key string) ([]byte, error)
}

// RSAProcessor handles RSA key generation, PKCS#1 v1.5 encryption and signatures.
// Keys travel as base64 strings: X.509 SubjectPublicKeyInfo for public keys, PKCS#8 for private keys.
type RSAProcessor interface {
	// GenerateKeyPair generates an RSA key pair of the configured size.
	GenerateKeyPair() (*KeyPair, error)

	// Sign hashes the data with the configured digest, signs it with PKCS#1 v1.5
	// and returns the base64 encoded signature.
	Sign(data []byte, privateKey string) (string, error)

	// Verify checks a base64 signature produced by Sign.
	// Returns false and ErrSignatureInvalid when the signature does not match.
	Verify(data []byte, signature, publicKey string) (bool, error)

	// EncryptWithPublicKey encrypts a single block with PKCS#1 v1.5 padding.
	// Returns ErrBlockSize when data exceeds the modulus size minus 11 bytes.
	EncryptWithPublicKey(data []byte, publicKey string) ([]byte, error)

	// DecryptWithPrivateKey decrypts a single PKCS#1 v1.5 block.
	DecryptWithPrivateKey(data []byte, privateKey string) ([]byte, error)

	// ParsePublicKey decodes a base64 X.509 SubjectPublicKeyInfo RSA public key.
	ParsePublicKey(publicKey string) (*rsa.PublicKey, error)

	// ParsePrivateKey decodes a base64 PKCS#8 RSA private key.
	ParsePrivateKey(privateKey string) (*rsa.PrivateKey, error)
}

// Digester computes a one-shot message digest rendered as lowercase hex.
type Digester interface {
	// Algorithm returns the canonical name of the selected digest.
	Algorithm() string

	// Digest concatenates the inputs in order and returns the hex digest.
	Digest(inputs ...string) (string, error)
}
