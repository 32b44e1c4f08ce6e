package attack

import (
	"bytes"
	"fmt"

	"jayconrod.com/cryptanalysis/oracle"
)

// Alignment describes how to place chosen plaintext on a block boundary
// behind data the oracle prepends.
type Alignment struct {
	// Padding is the number of Filler bytes to send ahead of the payload.
	Padding int
	Filler  byte

	// Blocks is the number of leading ciphertext blocks that cover the
	// oracle's prefix and the padding. The payload starts at block Blocks.
	Blocks int

	// Ciphertext is the oracle's output for the padded payload.
	Ciphertext []byte
}

// FindMatchingBlocks encrypts payload behind 0, 1, 2, ... filler bytes and
// counts the leading blocks that are identical between consecutive
// queries. The count only rises when the payload is pushed onto a fresh
// block boundary, which gives the padding needed to align it.
//
// The oracle must be deterministic and must not chain unpredictably between
// calls, i.e. ECB or CBC with a fixed IV. payload must not be empty.
func FindMatchingBlocks(o oracle.Oracle, payload []byte, blockSize int, opts ...Option) (Alignment, error) {
	if len(payload) == 0 {
		panic("empty payload")
	}
	cfg := newConfig(opts)
	filler := cfg.filler
	if payload[0] == filler {
		// The first payload byte must differ from the filler that
		// replaces it in the next query.
		filler ^= 1
	}
	query := func(k int) ([]byte, error) {
		pt := append(fill(filler, k), payload...)
		ct, err := o.Encrypt(pt)
		if err != nil {
			return nil, fmt.Errorf("querying oracle: %w", err)
		}
		return ct, nil
	}

	prev, err := query(0)
	if err != nil {
		return Alignment{}, err
	}
	base := -1
	for k := 0; k <= 2*blockSize; k++ {
		next, err := query(k + 1)
		if err != nil {
			return Alignment{}, err
		}
		n := matchingBlocks(prev, next, blockSize)
		if base < 0 {
			base = n
		} else if n > base {
			cfg.log.Debug("found alignment", "padding", k, "blocks", n)
			return Alignment{Padding: k, Filler: filler, Blocks: n, Ciphertext: prev}, nil
		}
		prev = next
	}
	return Alignment{}, fmt.Errorf("%w: matching block count stayed at %d after %d probes", ErrAlignmentNotFound, base, 2*blockSize+1)
}

// matchingBlocks counts the identical leading blocks of x and y.
func matchingBlocks(x, y []byte, blockSize int) int {
	n := 0
	for i := 0; i+blockSize <= len(x) && i+blockSize <= len(y); i += blockSize {
		if !bytes.Equal(x[i:i+blockSize], y[i:i+blockSize]) {
			break
		}
		n++
	}
	return n
}

// AlignedOracle wraps o so that chosen plaintext starts on a block
// boundary and the blocks covering o's prefix are removed from the output.
func AlignedOracle(o oracle.Oracle, a Alignment, blockSize int) oracle.Oracle {
	pad := fill(a.Filler, a.Padding)
	skip := a.Blocks * blockSize
	return oracle.Func(func(pt []byte) ([]byte, error) {
		ct, err := o.Encrypt(append(pad[:len(pad):len(pad)], pt...))
		if err != nil {
			return nil, err
		}
		if len(ct) < skip {
			return nil, fmt.Errorf("%w: ciphertext length %d shorter than aligned prefix %d", ErrAlignmentNotFound, len(ct), skip)
		}
		return ct[skip:], nil
	})
}
