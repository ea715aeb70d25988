// Package crypto defines the core interfaces, models and error values for the cryptographic facade:
// symmetric block-cipher transformations (DES, DESede, AES), RSA key pairs and signatures, and message digests.

package crypto
