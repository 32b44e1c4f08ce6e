package crypto

import (
	"bytes"
	"fmt"
)

// PadLength returns the length of an n-byte message after PKCS#7 padding.
// Padding always adds at least one byte.
func PadLength(n, blockSize int) int {
	return n + blockSize - n%blockSize
}

// Pad appends src followed by PKCS#7 padding to buf. buf may be src[:0].
func Pad(buf, src []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("invalid block size %d", blockSize))
	}
	p := blockSize - len(src)%blockSize
	buf = append(buf, src...)
	for i := 0; i < p; i++ {
		buf = append(buf, byte(p))
	}
	return buf
}

// Unpad strips PKCS#7 padding for the AES block size.
func Unpad(buf []byte) ([]byte, error) {
	return UnpadBlock(buf, BlockSize)
}

// UnpadBlock strips PKCS#7 padding. It returns a subslice of buf, or
// ErrInvalidPadding if the last byte n is zero, larger than blockSize or
// the buffer, or the last n bytes are not all n.
func UnpadBlock(buf []byte, blockSize int) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPadding)
	}
	p := int(buf[len(buf)-1])
	if p == 0 || p > blockSize || p > len(buf) {
		return nil, fmt.Errorf("%w: bad padding length %d", ErrInvalidPadding, p)
	}
	if !bytes.Equal(buf[len(buf)-p:], bytes.Repeat([]byte{byte(p)}, p)) {
		return nil, fmt.Errorf("%w: inconsistent padding bytes", ErrInvalidPadding)
	}
	return buf[:len(buf)-p], nil
}
