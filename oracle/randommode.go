package oracle

import (
	"crypto/rand"
	"fmt"
	"io"

	"jayconrod.com/cryptanalysis/crypto"
)

// RandomMode encrypts each plaintext under a fresh key, in ECB or CBC
// chosen at random, after wrapping it in 5 to 10 random bytes on each side.
type RandomMode struct {
	rand io.Reader
	iv   []byte
}

// A RandomModeOption configures a RandomMode oracle.
type RandomModeOption func(*RandomMode)

// WithIV sets the IV used when CBC is chosen. The default IV is all zero.
func WithIV(iv []byte) RandomModeOption {
	return func(o *RandomMode) { o.iv = append([]byte(nil), iv...) }
}

// NewRandomMode builds a RandomMode oracle that draws keys, junk and mode
// choices from r. A nil r means crypto/rand.
func NewRandomMode(r io.Reader, opts ...RandomModeOption) *RandomMode {
	if r == nil {
		r = rand.Reader
	}
	o := &RandomMode{rand: r, iv: make([]byte, crypto.BlockSize)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// EncryptRandomMode encrypts pt and reports which mode it used.
func (o *RandomMode) EncryptRandomMode(pt []byte) ([]byte, crypto.Mode, error) {
	r, err := crypto.ReadRandom(o.rand, KeySize+1)
	if err != nil {
		return nil, crypto.ModeUnset, err
	}
	key := r[:KeySize]
	config := int(r[KeySize])
	mode := crypto.ModeECB
	if config&1 != 0 {
		mode = crypto.ModeCBC
	}
	headJunkLen := ((config>>1)&7)%6 + 5
	tailJunkLen := ((config>>4)&7)%6 + 5
	junk, err := crypto.ReadRandom(o.rand, headJunkLen+tailJunkLen)
	if err != nil {
		return nil, crypto.ModeUnset, err
	}

	ptLen := headJunkLen + len(pt) + tailJunkLen
	buf := make([]byte, 0, crypto.PadLength(ptLen, crypto.BlockSize))
	buf = append(buf, junk[:headJunkLen]...)
	buf = append(buf, pt...)
	buf = append(buf, junk[headJunkLen:]...)
	buf = crypto.Pad(buf[:0], buf, crypto.BlockSize)

	var ct []byte
	switch mode {
	case crypto.ModeECB:
		ct, err = crypto.EncryptECB(buf, key)
	case crypto.ModeCBC:
		ct, err = crypto.EncryptCBC(buf, key, o.iv)
	}
	if err != nil {
		return nil, crypto.ModeUnset, fmt.Errorf("encrypting in %v mode: %w", mode, err)
	}
	return ct, mode, nil
}

// MangledText encrypts three blocks of a single random byte value. The
// repetition guarantees that ECB output contains duplicate blocks.
func (o *RandomMode) MangledText() ([]byte, crypto.Mode, error) {
	rb, err := crypto.ReadRandom(o.rand, 1)
	if err != nil {
		return nil, crypto.ModeUnset, err
	}
	pt := make([]byte, 3*crypto.BlockSize)
	for i := range pt {
		pt[i] = rb[0]
	}
	return o.EncryptRandomMode(pt)
}
