package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// hexAlphabet is the only alphabet HexToBytes accepts.
const hexAlphabet = "0123456789abcdef"

// ErrInvalidHex is returned when a hex string has an odd length or contains a
// character outside the lowercase hex alphabet.
var ErrInvalidHex = errors.New("invalid hex string")

// BytesToHex renders every byte as exactly two lowercase hex digits, in order.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// HexToBytes decodes pairs of lowercase hex digits into bytes.
// Uppercase digits, odd lengths and any other characters yield ErrInvalidHex.
func HexToBytes(hexStr string) ([]byte, error) {
	if len(hexStr)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(hexStr))
	}

	out := make([]byte, len(hexStr)/2)
	for i := range out {
		hi := strings.IndexByte(hexAlphabet, hexStr[2*i])
		lo := strings.IndexByte(hexAlphabet, hexStr[2*i+1])
		if hi < 0 || lo < 0 {
			return nil, fmt.Errorf("%w: unexpected character near offset %d", ErrInvalidHex, 2*i)
		}
		out[i] = byte(hi<<4 | lo)
	}

	return out, nil
}
