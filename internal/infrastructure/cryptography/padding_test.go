//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS5Pad(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		blockSize int
		expected  []byte
	}{
		{"empty gets a full block", []byte{}, 8, []byte{8, 8, 8, 8, 8, 8, 8, 8}},
		{"partial block", []byte("abc"), 8, []byte{'a', 'b', 'c', 5, 5, 5, 5, 5}},
		{"full block gets another block", []byte("abcdefgh"), 8, append([]byte("abcdefgh"), 8, 8, 8, 8, 8, 8, 8, 8)},
		{"aes block", []byte("Hello World"), 16, append([]byte("Hello World"), 5, 5, 5, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := pkcs5Pad(tt.data, tt.blockSize)
			assert.Equal(t, tt.expected, padded)

			unpadded, err := pkcs5Unpad(padded, tt.blockSize)
			require.NoError(t, err)
			assert.Equal(t, tt.data, unpadded)
		})
	}
}

func TestPKCS5Pad_DoesNotAliasInput(t *testing.T) {
	data := make([]byte, 3, 16)
	copy(data, "abc")

	padded := pkcs5Pad(data, 8)
	padded[0] = 'z'

	assert.Equal(t, []byte("abc"), data)
}

func TestPKCS5Unpad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"not block aligned", []byte{1, 2, 3}},
		{"zero pad length", []byte{1, 2, 3, 4, 5, 6, 7, 0}},
		{"pad length above block size", []byte{1, 2, 3, 4, 5, 6, 7, 9}},
		{"inconsistent pad bytes", []byte{1, 2, 3, 4, 5, 6, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs5Unpad(tt.data, 8)
			assert.ErrorIs(t, err, crypto.ErrPadding)
		})
	}
}
