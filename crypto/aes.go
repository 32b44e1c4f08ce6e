package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// BlockSize is the AES block size in bytes.
const BlockSize = aes.BlockSize

// EncryptECB encrypts pt, which must already be padded to a whole number
// of blocks, under AES in ECB mode.
func EncryptECB(pt, key []byte) ([]byte, error) {
	c, err := newBlock(key, len(pt))
	if err != nil {
		return nil, err
	}
	ct := make([]byte, len(pt))
	NewECBEncrypter(c).CryptBlocks(ct, pt)
	return ct, nil
}

func DecryptECB(ct, key []byte) ([]byte, error) {
	c, err := newBlock(key, len(ct))
	if err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewECBDecrypter(c).CryptBlocks(pt, ct)
	return pt, nil
}

// EncryptCBC encrypts pt, which must already be padded, under AES in CBC
// mode. The IV is not included in the output.
func EncryptCBC(pt, key, iv []byte) ([]byte, error) {
	c, err := newBlock(key, len(pt))
	if err != nil {
		return nil, err
	}
	if len(iv) != c.BlockSize() {
		return nil, fmt.Errorf("%w: iv length %d, want %d", ErrCrypto, len(iv), c.BlockSize())
	}
	ct := make([]byte, len(pt))
	NewCBCEncrypter(c, iv).CryptBlocks(ct, pt)
	return ct, nil
}

func DecryptCBC(ct, key, iv []byte) ([]byte, error) {
	c, err := newBlock(key, len(ct))
	if err != nil {
		return nil, err
	}
	if len(iv) != c.BlockSize() {
		return nil, fmt.Errorf("%w: iv length %d, want %d", ErrCrypto, len(iv), c.BlockSize())
	}
	pt := make([]byte, len(ct))
	NewCBCDecrypter(c, iv).CryptBlocks(pt, ct)
	return pt, nil
}

func newBlock(key []byte, n int) (cipher.Block, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	if n%c.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: input length %d not a multiple of block size %d", ErrCrypto, n, c.BlockSize())
	}
	return c, nil
}
