package attack

import (
	"bytes"
	"fmt"

	"jayconrod.com/cryptanalysis/crypto"
	"jayconrod.com/cryptanalysis/oracle"
)

// DetectBlockSize finds the smallest s in [1, maxBlockSize] such that
// encrypting 2s identical bytes yields two identical s-byte output blocks.
// The oracle must be ECB with no prefix ahead of the chosen plaintext.
//
// A short s can match by chance, so each candidate must match for two
// different fill bytes.
func DetectBlockSize(o oracle.Oracle, maxBlockSize int) (int, error) {
	for s := 1; s <= maxBlockSize; s++ {
		ok := true
		for _, b := range []byte{defaultFiller, defaultFiller ^ 0xff} {
			ct, err := o.Encrypt(fill(b, 2*s))
			if err != nil {
				return 0, fmt.Errorf("querying oracle: %w", err)
			}
			if len(ct) < 2*s || !bytes.Equal(ct[:s], ct[s:2*s]) {
				ok = false
				break
			}
		}
		if ok {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: tried sizes up to %d", ErrBlockSizeNotDetected, maxBlockSize)
}

// MeasureBlockSize feeds the oracle longer and longer inputs and returns
// the size of the first jump in ciphertext length. Unlike DetectBlockSize
// it works when the oracle prepends data of its own.
func MeasureBlockSize(o oracle.Oracle, maxBlockSize int) (int, error) {
	ct, err := o.Encrypt(nil)
	if err != nil {
		return 0, fmt.Errorf("querying oracle: %w", err)
	}
	base := len(ct)
	for i := 1; i <= maxBlockSize; i++ {
		ct, err := o.Encrypt(fill(defaultFiller, i))
		if err != nil {
			return 0, fmt.Errorf("querying oracle: %w", err)
		}
		if len(ct) > base {
			return len(ct) - base, nil
		}
	}
	return 0, fmt.Errorf("%w: ciphertext length did not grow", ErrBlockSizeNotDetected)
}

// DetectOracleMode encrypts four blocks of identical bytes and classifies
// the output with crypto.DetectMode.
func DetectOracleMode(o oracle.Oracle, blockSize int) (crypto.Mode, error) {
	ct, err := o.Encrypt(fill(defaultFiller, 4*blockSize))
	if err != nil {
		return crypto.ModeUnset, fmt.Errorf("querying oracle: %w", err)
	}
	return crypto.DetectMode(ct, blockSize), nil
}
