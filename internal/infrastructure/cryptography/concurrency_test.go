//go:build unit
// +build unit

package cryptography

import (
	"fmt"
	"sync"
	"testing"

	cryptoDomain "github.com/challengezhou/zujool-common/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const concurrentWorkers = 8

func TestProcessors_ConcurrentUse(t *testing.T) {
	rsaProcessor := setupRSAProcessor(t)
	symmetricProcessor := setupSymmetricProcessor(t)

	var wg sync.WaitGroup
	errs := make(chan error, concurrentWorkers)

	for i := 0; i < concurrentWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			errs <- roundTrips(rsaProcessor, symmetricProcessor, worker)
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// roundTrips generates a key pair and runs RSA and symmetric round trips on the shared processors.
func roundTrips(rsaProcessor cryptoDomain.RSAProcessor, symmetricProcessor cryptoDomain.SymmetricProcessor, worker int) error {
	message := []byte(fmt.Sprintf("message from worker %d", worker))

	keyPair, err := rsaProcessor.GenerateKeyPair()
	if err != nil {
		return err
	}

	encrypted, err := rsaProcessor.EncryptWithPublicKey(message, keyPair.PublicKey)
	if err != nil {
		return err
	}
	decrypted, err := rsaProcessor.DecryptWithPrivateKey(encrypted, keyPair.PrivateKey)
	if err != nil {
		return err
	}
	if string(decrypted) != string(message) {
		return fmt.Errorf("worker %d: RSA round trip returned %q", worker, decrypted)
	}

	signature, err := rsaProcessor.Sign(message, keyPair.PrivateKey)
	if err != nil {
		return err
	}
	if _, err := rsaProcessor.Verify(message, signature, keyPair.PublicKey); err != nil {
		return err
	}

	for _, spec := range cryptoDomain.SupportedCipherSpecs() {
		key, iv := validMaterial(spec)
		cipherText, err := symmetricProcessor.Encrypt(message, key, iv, spec)
		if err != nil {
			return err
		}
		plainText, err := symmetricProcessor.Decrypt(cipherText, key, iv, spec)
		if err != nil {
			return err
		}
		if string(plainText) != string(message) {
			return fmt.Errorf("worker %d: %s round trip returned %q", worker, spec, plainText)
		}
	}

	return nil
}

func TestDigestSession_ConcurrentDigestRunsOnce(t *testing.T) {
	session, err := NewDigestSession(cryptoDomain.AlgMD5)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []string
		rejected  int
	)

	for i := 0; i < concurrentWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			digest, err := session.Digest("Hello World")

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, cryptoDomain.ErrDigestSessionUsed)
				rejected++
				return
			}
			succeeded = append(succeeded, digest)
		}()
	}
	wg.Wait()

	require.Len(t, succeeded, 1)
	assert.Equal(t, "b10a8db164e0754105b7a99be72e3fe5", succeeded[0])
	assert.Equal(t, concurrentWorkers-1, rejected)
}
