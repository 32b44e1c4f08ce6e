package crypto

import (
	"crypto/cipher"
	"fmt"
)

// ecbCrypter runs crypt over each block independently. Identical plaintext
// blocks produce identical ciphertext blocks.
type ecbCrypter struct {
	blockSize int
	crypt     func(dst, src []byte)
}

func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Encrypt,
	}
}

func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Decrypt,
	}
}

func (cr *ecbCrypter) BlockSize() int {
	return cr.blockSize
}

func (cr *ecbCrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.blockSize
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", n, bs))
	}

	for i := 0; i < n; i += bs {
		cr.crypt(dst[i:i+bs], src[i:i+bs])
	}
}
