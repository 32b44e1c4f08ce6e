package attack

import (
	"fmt"

	"jayconrod.com/cryptanalysis/oracle"
)

// RecoverSuffix decrypts the secret an ECB oracle appends to chosen
// plaintext, one byte at a time.
//
// For each secret byte, the oracle is given just enough filler that the
// byte lands at the end of a block. The attacker then encrypts every
// possible last byte behind the previous blockSize-1 known bytes and looks
// the target block up in that dictionary. A match on the value 1 is the
// first PKCS#7 padding byte and ends the attack.
func RecoverSuffix(o oracle.Oracle, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	bs, err := DetectBlockSize(o, cfg.maxBlockSize)
	if err != nil {
		return nil, err
	}
	ct, err := o.Encrypt(nil)
	if err != nil {
		return nil, fmt.Errorf("querying oracle: %w", err)
	}
	maxLen := len(ct)
	cfg.log.Debug("starting byte-at-a-time recovery", "blockSize", bs, "ciphertextLen", maxLen)

	// The first bs-1 bytes are filler, the known window for the first
	// dictionary.
	recovered := fill(cfg.filler, bs-1)
	probe := make([]byte, bs)
	for blk := 0; blk < maxLen/bs; blk++ {
		for i := 0; i < bs; i++ {
			dict := make(map[string]byte, 256)
			copy(probe, recovered[len(recovered)-(bs-1):])
			for v := 0; v < 256; v++ {
				probe[bs-1] = byte(v)
				out, err := o.Encrypt(probe)
				if err != nil {
					return nil, fmt.Errorf("querying oracle: %w", err)
				}
				if len(out) < bs {
					return nil, fmt.Errorf("%w: short ciphertext", ErrNoMatchForByte)
				}
				dict[string(out[:bs])] = byte(v)
			}

			out, err := o.Encrypt(fill(cfg.filler, bs-i-1))
			if err != nil {
				return nil, fmt.Errorf("querying oracle: %w", err)
			}
			off := blk * bs
			if len(out) < off+bs {
				return nil, fmt.Errorf("%w: block %d beyond ciphertext", ErrNoMatchForByte, blk)
			}
			v, ok := dict[string(out[off:off+bs])]
			if !ok {
				return nil, fmt.Errorf("%w: block %d, byte %d", ErrNoMatchForByte, blk, i)
			}
			if v == 1 {
				cfg.log.Debug("reached padding", "recovered", len(recovered)-(bs-1))
				return recovered[bs-1:], nil
			}
			recovered = append(recovered, v)
		}
	}
	return recovered[bs-1:], nil
}

// RecoverSuffixWithPrefix is RecoverSuffix for an oracle that also
// prepends an unknown, fixed prefix. It aligns chosen plaintext past the
// prefix first and attacks a wrapper that hides the prefix blocks.
func RecoverSuffixWithPrefix(o oracle.Oracle, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	bs, err := MeasureBlockSize(o, cfg.maxBlockSize)
	if err != nil {
		return nil, err
	}
	a, err := FindMatchingBlocks(o, []byte{^cfg.filler}, bs, opts...)
	if err != nil {
		return nil, err
	}
	cfg.log.Debug("aligned past prefix", "padding", a.Padding, "prefixBlocks", a.Blocks)
	return RecoverSuffix(AlignedOracle(o, a, bs), opts...)
}
