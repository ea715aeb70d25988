package cryptography

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
	"sync"

	cryptoDomain "github.com/challengezhou/zujool-common/internal/domain/crypto"
	"github.com/challengezhou/zujool-common/internal/pkg/codec"
	"golang.org/x/crypto/sha3"
)

type digestAlgorithm struct {
	name string
	new  func() hash.Hash
}

var digestAlgorithms = []digestAlgorithm{
	{cryptoDomain.DigestMD5, md5.New},
	{cryptoDomain.DigestSHA1, sha1.New},
	{cryptoDomain.DigestSHA224, sha256.New224},
	{cryptoDomain.DigestSHA256, sha256.New},
	{cryptoDomain.DigestSHA384, sha512.New384},
	{cryptoDomain.DigestSHA512, sha512.New},
	{cryptoDomain.DigestSHA512_224, sha512.New512_224},
	{cryptoDomain.DigestSHA512_256, sha512.New512_256},
	{cryptoDomain.DigestSHA3_224, sha3.New224},
	{cryptoDomain.DigestSHA3_256, sha3.New256},
	{cryptoDomain.DigestSHA3_384, sha3.New384},
	{cryptoDomain.DigestSHA3_512, sha3.New512},
}

// digestAliases maps upper-cased alternative spellings onto canonical names.
var digestAliases = map[string]string{
	"SHA":      cryptoDomain.DigestSHA1,
	"SHA1":     cryptoDomain.DigestSHA1,
	"SHA224":   cryptoDomain.DigestSHA224,
	"SHA256":   cryptoDomain.DigestSHA256,
	"SHA384":   cryptoDomain.DigestSHA384,
	"SHA512":   cryptoDomain.DigestSHA512,
	"SHA3_224": cryptoDomain.DigestSHA3_224,
	"SHA3_256": cryptoDomain.DigestSHA3_256,
	"SHA3_384": cryptoDomain.DigestSHA3_384,
	"SHA3_512": cryptoDomain.DigestSHA3_512,
}

// SupportedDigests returns the canonical names NewDigestSession accepts.
func SupportedDigests() []string {
	names := make([]string, 0, len(digestAlgorithms))
	for _, alg := range digestAlgorithms {
		names = append(names, alg.name)
	}
	return names
}

func lookupDigest(algorithm string) (digestAlgorithm, bool) {
	name := strings.ToUpper(strings.TrimSpace(algorithm))
	if canonical, ok := digestAliases[name]; ok {
		name = canonical
	}
	for _, alg := range digestAlgorithms {
		if alg.name == name {
			return alg, true
		}
	}
	return digestAlgorithm{}, false
}

// DigestSession computes a single digest over the concatenation of its inputs.
// A session can be used once; concurrent callers race for that single use.
type DigestSession struct {
	algorithm digestAlgorithm

	mu   sync.Mutex
	used bool
}

// NewDigestSession selects a digest algorithm by name, e.g. "md5", "sha-1" or "SHA3-256".
func NewDigestSession(algorithm string) (*DigestSession, error) {
	alg, ok := lookupDigest(algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: digest %q", cryptoDomain.ErrUnsupportedAlgorithm, algorithm)
	}
	return &DigestSession{algorithm: alg}, nil
}

// Algorithm returns the canonical name of the selected digest.
func (d *DigestSession) Algorithm() string {
	return d.algorithm.name
}

// Digest feeds the UTF-8 bytes of each input in order and returns the lowercase hex digest.
func (d *DigestSession) Digest(inputs ...string) (string, error) {
	if len(inputs) == 0 {
		return "", cryptoDomain.ErrEmptyInput
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.used {
		return "", cryptoDomain.ErrDigestSessionUsed
	}
	d.used = true

	h := d.algorithm.new()
	for _, input := range inputs {
		h.Write([]byte(input))
	}

	return codec.BytesToHex(h.Sum(nil)), nil
}

var _ cryptoDomain.Digester = (*DigestSession)(nil)
