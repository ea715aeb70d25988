package crypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/challengezhou/zujool-common/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var validate = validators.New()

// CipherSpec selects a symmetric transformation as {algorithm, mode, padding}.
// Only the combinations listed in SupportedCipherSpecs are accepted.
type CipherSpec struct {
	Algorithm string `validate:"required,oneof=DES DESede AES"`
	Mode      string `validate:"required,oneof=ECB CBC"`
	Padding   string `validate:"required,oneof=PKCS5Padding"`
}

// Supported symmetric transformations
var (
	DESECBPKCS5    = CipherSpec{Algorithm: AlgorithmDES, Mode: ModeECB, Padding: PaddingPKCS5}
	DESCBCPKCS5    = CipherSpec{Algorithm: AlgorithmDES, Mode: ModeCBC, Padding: PaddingPKCS5}
	DESedeECBPKCS5 = CipherSpec{Algorithm: AlgorithmDESede, Mode: ModeECB, Padding: PaddingPKCS5}
	DESedeCBCPKCS5 = CipherSpec{Algorithm: AlgorithmDESede, Mode: ModeCBC, Padding: PaddingPKCS5}
	AESECBPKCS5    = CipherSpec{Algorithm: AlgorithmAES, Mode: ModeECB, Padding: PaddingPKCS5}
	AESCBCPKCS5    = CipherSpec{Algorithm: AlgorithmAES, Mode: ModeCBC, Padding: PaddingPKCS5}
)

// SupportedCipherSpecs returns every transformation the symmetric processor implements.
func SupportedCipherSpecs() []CipherSpec {
	return []CipherSpec{
		DESECBPKCS5,
		DESCBCPKCS5,
		DESedeECBPKCS5,
		DESedeCBCPKCS5,
		AESECBPKCS5,
		AESCBCPKCS5,
	}
}

// String returns the transformation name, e.g. "DESede/CBC/PKCS5Padding".
func (s CipherSpec) String() string {
	return s.Algorithm + "/" + s.Mode + "/" + s.Padding
}

// BlockSize returns the block length in bytes of the spec's algorithm, or 0 if unknown.
func (s CipherSpec) BlockSize() int {
	switch s.Algorithm {
	case AlgorithmDES, AlgorithmDESede:
		return DESBlockSize
	case AlgorithmAES:
		return AESBlockSize
	default:
		return 0
	}
}

// RequiresIV reports whether the mode chains blocks from an initialization vector.
func (s CipherSpec) RequiresIV() bool {
	return s.Mode == ModeCBC
}

// Validate checks that the spec is one of the supported transformations.
func (s CipherSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrUnsupportedAlgorithm, s, validationMessage(err))
	}
	return nil
}

// ParseCipherSpec maps a transformation string onto a supported CipherSpec.
// Names are matched case-insensitively and whitespace around each segment is ignored. A bare algorithm name selects ECB with PKCS5Padding,
// and PKCS7Padding is accepted as a synonym of PKCS5Padding.
func ParseCipherSpec(transformation string) (CipherSpec, error) {
	parts := strings.Split(transformation, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var spec CipherSpec
	switch len(parts) {
	case 1:
		spec = CipherSpec{Algorithm: parts[0], Mode: ModeECB, Padding: PaddingPKCS5}
	case 3:
		spec = CipherSpec{Algorithm: parts[0], Mode: parts[1], Padding: parts[2]}
	default:
		return CipherSpec{}, fmt.Errorf("%w: malformed transformation %q", ErrUnsupportedAlgorithm, transformation)
	}

	switch strings.ToUpper(spec.Algorithm) {
	case "DES":
		spec.Algorithm = AlgorithmDES
	case "DESEDE", "TRIPLEDES":
		spec.Algorithm = AlgorithmDESede
	case "AES":
		spec.Algorithm = AlgorithmAES
	}

	spec.Mode = strings.ToUpper(spec.Mode)

	switch strings.ToUpper(spec.Padding) {
	case "PKCS5PADDING", "PKCS7PADDING":
		spec.Padding = PaddingPKCS5
	}

	if err := spec.Validate(); err != nil {
		return CipherSpec{}, err
	}
	return spec, nil
}

// SymmetricKey describes key material by algorithm and length in bytes.
type SymmetricKey struct {
	Algorithm string `validate:"required,oneof=DES DESede AES"`
	Size      int    `validate:"keysize"`
}

// Validate checks the key length against the algorithm's allowed sizes.
func (k SymmetricKey) Validate() error {
	if err := validate.Struct(k); err != nil {
		return fmt.Errorf("%w: %d-byte key not valid for %s", ErrKeyFormat, k.Size, k.Algorithm)
	}
	return nil
}

// KeyPair holds an RSA key pair as base64 strings: X.509 SubjectPublicKeyInfo DER for the
// public key and PKCS#8 DER for the private key.
type KeyPair struct {
	PublicKey  string `validate:"required,base64"`
	PrivateKey string `validate:"required,base64"`
}

// Validate checks that both keys are present and base64 encoded
func (k *KeyPair) Validate() error {
	if err := validate.Struct(k); err != nil {
		return fmt.Errorf("%w: %s", ErrKeyFormat, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Sprintf("validation failed: %v", messages)
	}
	return err.Error()
}
