//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/pkg/codec"
	"github.com/challengezhou/zujool-common/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDESKey       = "abcdefgh"
	testDESedeKey128 = "abcdefghijklmnop"
	testDESedeKey192 = "abcdefghijklmnopqrstuvwx"
	testAESKey128    = "abcdefghijklmnop"
	testAESKey192    = "abcdefghijklmnopqrstuvwx"
	testAESKey256    = "abcdefghijklmnopqrstuvwxyz012345"
	testDESIV        = "12345678"
	testAESIV        = "1234567890123456"
)

func setupSymmetricProcessor(t *testing.T) crypto.SymmetricProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewSymmetricProcessor(logger)
	require.NoError(t, err)
	return processor
}

// validMaterial returns a key and IV that fit spec.
func validMaterial(spec crypto.CipherSpec) (string, string) {
	switch spec.Algorithm {
	case crypto.AlgorithmDES:
		return testDESKey, testDESIV
	case crypto.AlgorithmDESede:
		return testDESedeKey192, testDESIV
	default:
		return testAESKey128, testAESIV
	}
}

func TestNewSymmetricProcessor_NilLogger(t *testing.T) {
	processor, err := NewSymmetricProcessor(nil)
	assert.Error(t, err)
	assert.Nil(t, processor)
}

func TestSymmetricProcessor(t *testing.T) {
	processor := setupSymmetricProcessor(t)

	t.Run("RoundTripAllSpecs", func(t *testing.T) {
		random := make([]byte, 100)
		_, err := rand.Read(random)
		require.NoError(t, err)

		plainTexts := [][]byte{
			{},
			[]byte("a"),
			[]byte("12345678"),
			[]byte("1234567890123456"),
			[]byte("Hello World"),
			random,
		}

		for _, spec := range crypto.SupportedCipherSpecs() {
			key, iv := validMaterial(spec)
			for _, plainText := range plainTexts {
				cipherText, err := processor.Encrypt(plainText, key, iv, spec)
				require.NoError(t, err, spec.String())
				assert.Zero(t, len(cipherText)%spec.BlockSize())
				assert.Greater(t, len(cipherText), len(plainText))

				decrypted, err := processor.Decrypt(cipherText, key, iv, spec)
				require.NoError(t, err, spec.String())
				assert.Equal(t, plainText, decrypted, spec.String())
			}
		}
	})

	t.Run("DesedeCBCHelloWorld", func(t *testing.T) {
		cipherText, err := processor.DesedeCBCEncrypt([]byte("Hello World"), testDESedeKey192, testDESIV)
		require.NoError(t, err)
		assert.Equal(t, "1f1f7f850debd844076600c87257a004", codec.BytesToHex(cipherText))

		decrypted, err := processor.DesedeCBCDecrypt(cipherText, testDESedeKey192, testDESIV)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", string(decrypted))
	})

	t.Run("KnownAnswers", func(t *testing.T) {
		tests := []struct {
			spec     crypto.CipherSpec
			key      string
			iv       string
			expected string
		}{
			{crypto.DESECBPKCS5, testDESKey, "", "9512332e598d4e178f972cf4d0f0abb0"},
			{crypto.DESCBCPKCS5, testDESKey, testDESIV, "d33724f04458dbc2acfb2b64e64bc34b"},
			{crypto.DESedeECBPKCS5, testDESedeKey128, "", "b806c468d093741323c078d5e31e36dc"},
			{crypto.AESECBPKCS5, testAESKey128, "", "081f66d85a5e739b3142e2c2f487a6f0"},
			{crypto.AESCBCPKCS5, testAESKey128, testAESIV, "5d39c67942c3c9265a1c237669677bd7"},
		}

		for _, tt := range tests {
			cipherText, err := processor.Encrypt([]byte("Hello World"), tt.key, tt.iv, tt.spec)
			require.NoError(t, err, tt.spec.String())
			assert.Equal(t, tt.expected, codec.BytesToHex(cipherText), tt.spec.String())
		}
	})

	t.Run("TwoKeyDESedeMatchesExpandedKey", func(t *testing.T) {
		short, err := processor.Encrypt([]byte("Hello World"), testDESedeKey128, testDESIV, crypto.DESedeCBCPKCS5)
		require.NoError(t, err)

		expanded, err := processor.Encrypt([]byte("Hello World"), testDESedeKey128+testDESedeKey128[:8], testDESIV, crypto.DESedeCBCPKCS5)
		require.NoError(t, err)

		assert.Equal(t, expanded, short)
	})

	t.Run("ECBIsDeterministic", func(t *testing.T) {
		block := []byte("0123456789abcdef")
		plainText := append(append([]byte{}, block...), block...)

		first, err := processor.Encrypt(plainText, testAESKey128, "", crypto.AESECBPKCS5)
		require.NoError(t, err)
		second, err := processor.Encrypt(plainText, testAESKey128, "", crypto.AESECBPKCS5)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, first[:16], first[16:32], "identical plaintext blocks must give identical ciphertext blocks")
	})

	t.Run("ECBIgnoresIV", func(t *testing.T) {
		withIV, err := processor.Encrypt([]byte("Hello World"), testDESKey, "ignored-iv", crypto.DESECBPKCS5)
		require.NoError(t, err)
		withoutIV, err := processor.DESECBEncrypt([]byte("Hello World"), testDESKey)
		require.NoError(t, err)

		assert.Equal(t, withoutIV, withIV)

		decrypted, err := processor.DESECBDecrypt(withIV, testDESKey)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", string(decrypted))
	})

	t.Run("CBCDependsOnIV", func(t *testing.T) {
		first, err := processor.Encrypt([]byte("Hello World"), testAESKey256, testAESIV, crypto.AESCBCPKCS5)
		require.NoError(t, err)
		second, err := processor.Encrypt([]byte("Hello World"), testAESKey256, "6543210987654321", crypto.AESCBCPKCS5)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("AESKeySizes", func(t *testing.T) {
		for _, key := range []string{testAESKey128, testAESKey192, testAESKey256} {
			cipherText, err := processor.Encrypt([]byte("Hello World"), key, testAESIV, crypto.AESCBCPKCS5)
			require.NoError(t, err)

			decrypted, err := processor.Decrypt(cipherText, key, testAESIV, crypto.AESCBCPKCS5)
			require.NoError(t, err)
			assert.Equal(t, "Hello World", string(decrypted))
		}
	})

	t.Run("InvalidKeyLength", func(t *testing.T) {
		tests := []struct {
			spec crypto.CipherSpec
			key  string
		}{
			{crypto.DESECBPKCS5, "short"},
			{crypto.DESECBPKCS5, testDESedeKey192},
			{crypto.DESedeCBCPKCS5, testDESKey},
			{crypto.DESedeCBCPKCS5, "abcdefghijklmnopqrstu"},
			{crypto.AESECBPKCS5, "shortkey"},
			{crypto.AESCBCPKCS5, "abcdefghijklmnopq"},
			{crypto.AESECBPKCS5, ""},
		}

		for _, tt := range tests {
			_, iv := validMaterial(tt.spec)

			_, err := processor.Encrypt([]byte("Hello World"), tt.key, iv, tt.spec)
			assert.ErrorIs(t, err, crypto.ErrKeyFormat, "%s with %d-byte key", tt.spec, len(tt.key))

			_, err = processor.Decrypt(make([]byte, 32), tt.key, iv, tt.spec)
			assert.ErrorIs(t, err, crypto.ErrKeyFormat, "%s with %d-byte key", tt.spec, len(tt.key))
		}
	})

	t.Run("InvalidIVLength", func(t *testing.T) {
		_, err := processor.Encrypt([]byte("Hello World"), testDESedeKey192, "", crypto.DESedeCBCPKCS5)
		assert.ErrorIs(t, err, crypto.ErrKeyFormat)

		_, err = processor.Encrypt([]byte("Hello World"), testAESKey128, testDESIV, crypto.AESCBCPKCS5)
		assert.ErrorIs(t, err, crypto.ErrKeyFormat)

		_, err = processor.Decrypt(make([]byte, 16), testAESKey128, testAESIV+"x", crypto.AESCBCPKCS5)
		assert.ErrorIs(t, err, crypto.ErrKeyFormat)
	})

	t.Run("UnsupportedSpec", func(t *testing.T) {
		spec := crypto.CipherSpec{Algorithm: "Blowfish", Mode: crypto.ModeECB, Padding: crypto.PaddingPKCS5}
		_, err := processor.Encrypt([]byte("Hello World"), testDESKey, "", spec)
		assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)

		spec = crypto.CipherSpec{Algorithm: crypto.AlgorithmAES, Mode: "GCM", Padding: crypto.PaddingPKCS5}
		_, err = processor.Decrypt(make([]byte, 16), testAESKey128, "", spec)
		assert.ErrorIs(t, err, crypto.ErrUnsupportedAlgorithm)
	})

	t.Run("DecryptTruncatedCiphertext", func(t *testing.T) {
		cipherText, err := processor.Encrypt([]byte("Hello World, across blocks"), testAESKey128, testAESIV, crypto.AESCBCPKCS5)
		require.NoError(t, err)

		_, err = processor.Decrypt(cipherText[:len(cipherText)-1], testAESKey128, testAESIV, crypto.AESCBCPKCS5)
		assert.ErrorIs(t, err, crypto.ErrPadding)

		_, err = processor.Decrypt([]byte{}, testAESKey128, testAESIV, crypto.AESCBCPKCS5)
		assert.ErrorIs(t, err, crypto.ErrPadding)

		_, err = processor.Decrypt([]byte("short"), testDESKey, "", crypto.DESECBPKCS5)
		assert.ErrorIs(t, err, crypto.ErrPadding)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		plainText := []byte("Test decryption with wrong key.")
		cipherText, err := processor.Encrypt(plainText, testAESKey128, "", crypto.AESECBPKCS5)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(cipherText, "ponmlkjihgfedcba", "", crypto.AESECBPKCS5)

		if err == nil {
			assert.NotEqual(t, plainText, decrypted, "Decryption with wrong key should not return original message")
		} else {
			assert.ErrorIs(t, err, crypto.ErrPadding)
		}
	})

	t.Run("DecryptCorruptedPadding", func(t *testing.T) {
		block, err := newBlockCipher(crypto.AlgorithmAES, []byte(testAESKey128))
		require.NoError(t, err)

		for _, last := range []byte{0x00, 0x11, 0xff} {
			decryptsTo := bytes.Repeat([]byte{0x02}, 16)
			decryptsTo[15] = last

			forged := make([]byte, 16)
			block.Encrypt(forged, decryptsTo)

			_, err = processor.Decrypt(forged, testAESKey128, "", crypto.AESECBPKCS5)
			assert.ErrorIs(t, err, crypto.ErrPadding, "last byte %#x", last)
		}

		// Declares three bytes of padding but one of them differs.
		decryptsTo := bytes.Repeat([]byte{0x03}, 16)
		decryptsTo[14] = 0x01
		forged := make([]byte, 16)
		block.Encrypt(forged, decryptsTo)

		_, err = processor.Decrypt(forged, testAESKey128, "", crypto.AESECBPKCS5)
		assert.ErrorIs(t, err, crypto.ErrPadding)
	})

	t.Run("DecryptAcceptsAccidentallyValidPadding", func(t *testing.T) {
		block, err := newBlockCipher(crypto.AlgorithmAES, []byte(testAESKey128))
		require.NoError(t, err)

		decryptsTo := bytes.Repeat([]byte{0x41}, 16)
		decryptsTo[15] = 0x01
		forged := make([]byte, 16)
		block.Encrypt(forged, decryptsTo)

		decrypted, err := processor.Decrypt(forged, testAESKey128, "", crypto.AESECBPKCS5)
		require.NoError(t, err)
		assert.Equal(t, decryptsTo[:15], decrypted)
	})

	t.Run("AESStringHelpers", func(t *testing.T) {
		cipherText, err := processor.AESEncryptString("Hello World", testAESKey128)
		require.NoError(t, err)
		assert.Equal(t, "081f66d85a5e739b3142e2c2f487a6f0", codec.BytesToHex(cipherText))

		decrypted, err := processor.AESDecryptBase64(codec.EncodeBase64(cipherText), testAESKey128)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", string(decrypted))

		_, err = processor.AESDecryptBase64("%%%", testAESKey128)
		assert.ErrorIs(t, err, crypto.ErrPadding)
	})

	t.Run("AESDecryptBase64MalformedInput", func(t *testing.T) {
		for _, cipherText := range []string{"%%%", "CBH1ZoWl5zmzFC4sL0h6bw", "not base64!"} {
			decrypted, err := processor.AESDecryptBase64(cipherText, testAESKey128)
			assert.ErrorIs(t, err, crypto.ErrPadding, cipherText)
			assert.Nil(t, decrypted)
		}
	})
}

func TestSymmetricProcessor_Logging(t *testing.T) {
	mockLogger := new(MockLogger)
	mockLogger.On("Info", "DES/ECB/PKCS5Padding", " encryption succeeded").Once()
	mockLogger.On("Info", "DES/ECB/PKCS5Padding", " decryption succeeded").Once()

	processor, err := NewSymmetricProcessor(mockLogger)
	require.NoError(t, err)

	cipherText, err := processor.DESECBEncrypt([]byte("Hello World"), testDESKey)
	require.NoError(t, err)
	_, err = processor.DESECBDecrypt(cipherText, testDESKey)
	require.NoError(t, err)

	_, err = processor.DESECBDecrypt(cipherText, "hgfedcba")
	assert.Error(t, err)

	mockLogger.AssertExpectations(t)
	for _, call := range mockLogger.Calls {
		for _, arg := range call.Arguments {
			assert.NotContains(t, arg, testDESKey)
		}
	}
}
