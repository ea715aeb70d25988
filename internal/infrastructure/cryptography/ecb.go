package cryptography

import "crypto/cipher"

// ecb implements electronic-codebook mode: every block is transformed independently
// under the same key, so equal plaintext blocks give equal ciphertext blocks.
type ecb struct {
	b         cipher.Block
	blockSize int
}

type ecbEncrypter ecb

// newECBEncrypter returns a BlockMode which encrypts in electronic-codebook mode.
func newECBEncrypter(b cipher.Block) cipher.BlockMode {
	return (*ecbEncrypter)(&ecb{b: b, blockSize: b.BlockSize()})
}

func (x *ecbEncrypter) BlockSize() int { return x.blockSize }

func (x *ecbEncrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("cryptography/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("cryptography/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Encrypt(dst[:x.blockSize], src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}

type ecbDecrypter ecb

// newECBDecrypter returns a BlockMode which decrypts in electronic-codebook mode.
func newECBDecrypter(b cipher.Block) cipher.BlockMode {
	return (*ecbDecrypter)(&ecb{b: b, blockSize: b.BlockSize()})
}

func (x *ecbDecrypter) BlockSize() int { return x.blockSize }

func (x *ecbDecrypter) CryptBlocks(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("cryptography/ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("cryptography/ecb: output smaller than input")
	}
	for len(src) > 0 {
		x.b.Decrypt(dst[:x.blockSize], src[:x.blockSize])
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}
