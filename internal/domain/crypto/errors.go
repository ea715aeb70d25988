package crypto

import "errors"

// Error values returned by the cryptographic processors. Callers match them with errors.Is;
// the returned errors wrap them with call-specific detail.
var (
	// ErrKeyFormat reports a key or IV of the wrong length, or a key blob that is not valid base64/DER.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrPadding reports ciphertext whose padding does not verify (wrong key, corrupted or truncated data).
	ErrPadding = errors.New("bad padding")

	// ErrBlockSize reports an RSA payload larger than the modulus allows.
	ErrBlockSize = errors.New("data exceeds RSA block size")

	// ErrUnsupportedAlgorithm reports a cipher transformation or digest outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrEmptyInput reports a digest requested without any input strings.
	ErrEmptyInput = errors.New("hash input can not be empty")

	// ErrDigestSessionUsed reports a second digest on a single-use session.
	ErrDigestSessionUsed = errors.New("digest session already used")

	// ErrSignatureInvalid reports a signature that does not match the data and public key.
	ErrSignatureInvalid = errors.New("signature is invalid")
)
