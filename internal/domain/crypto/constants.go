package crypto

// AlgorithmDES represents the single DES block cipher
const AlgorithmDES = "DES"

// AlgorithmDESede represents the triple-DES (EDE) block cipher
const AlgorithmDESede = "DESede"

// AlgorithmAES represents the AES block cipher
const AlgorithmAES = "AES"

// AlgorithmRSA represents the RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// ModeECB represents the electronic-codebook mode
const ModeECB = "ECB"

// ModeCBC represents the cipher-block-chaining mode
const ModeCBC = "CBC"

// PaddingPKCS5 represents PKCS#5/PKCS#7 block padding
const PaddingPKCS5 = "PKCS5Padding"

// DESKeySize is the DES key size in bytes
const DESKeySize = 8

// DESedeKeySize128 is the two-key triple-DES key size in bytes (K1, K2, K1)
const DESedeKeySize128 = 16

// DESedeKeySize192 is the three-key triple-DES key size in bytes
const DESedeKeySize192 = 24

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// DESBlockSize is the block size in bytes shared by DES and DESede
const DESBlockSize = 8

// AESBlockSize is the AES block size in bytes
const AESBlockSize = 16

// RSAKeySize1024 is the RSA modulus size used unless configured otherwise
const RSAKeySize1024 = 1024

// RSAPKCS1v15Overhead is the number of bytes PKCS#1 v1.5 encryption padding consumes
const RSAPKCS1v15Overhead = 11

// Digest algorithm names
const (
	DigestMD5        = "MD5"
	DigestSHA1       = "SHA-1"
	DigestSHA224     = "SHA-224"
	DigestSHA256     = "SHA-256"
	DigestSHA384     = "SHA-384"
	DigestSHA512     = "SHA-512"
	DigestSHA512_224 = "SHA-512/224"
	DigestSHA512_256 = "SHA-512/256"
	DigestSHA3_224   = "SHA3-224"
	DigestSHA3_256   = "SHA3-256"
	DigestSHA3_384   = "SHA3-384"
	DigestSHA3_512   = "SHA3-512"
)

// AlgMD5 and AlgSHA1 are the lowercase names historical callers pass to the digest helper.
const (
	AlgMD5  = "md5"
	AlgSHA1 = "sha-1"
)
