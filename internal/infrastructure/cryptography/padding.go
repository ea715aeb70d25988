package cryptography

import (
	"fmt"

	cryptoDomain "github.com/challengezhou/zujool-common/internal/domain/crypto"
)

// pkcs5Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs5Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs5Unpad verifies and strips PKCS#5/#7 padding.
// A wrong key can still produce bytes that verify; that output is returned as-is.
func pkcs5Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: padded data length %d is not a multiple of %d", cryptoDomain.ErrPadding, len(data), blockSize)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: invalid padding length %d", cryptoDomain.ErrPadding, padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent padding bytes", cryptoDomain.ErrPadding)
		}
	}

	return data[:len(data)-padLen], nil
}
