package crypto

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
)

// Mode identifies a block cipher mode of operation.
type Mode int

const (
	ModeUnset Mode = iota
	ModeECB
	ModeCBC
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	default:
		return "unset"
	}
}

// DetectMode guesses ECB if any two whole blocks of ct are identical, and
// CBC otherwise. ECB ciphertext of plaintext with no repeated blocks is
// reported as CBC.
func DetectMode(ct []byte, blockSize int) Mode {
	blocks := make(map[string]struct{})
	s := string(ct)
	for i := 0; i+blockSize <= len(s); i += blockSize {
		b := s[i : i+blockSize]
		if _, ok := blocks[b]; ok {
			return ModeECB
		}
		blocks[b] = struct{}{}
	}
	return ModeCBC
}

func DetectECB(ct []byte) bool {
	return DetectMode(ct, BlockSize) == ModeECB
}

// DetectECBLine returns the 1-based number of the first hex-encoded line
// in r that looks ECB encrypted.
func DetectECBLine(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		ct, err := hex.DecodeString(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", ErrEncoding, line, err)
		}
		if DetectECB(ct) {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return 0, fmt.Errorf("%w: no line has repeated blocks", ErrNotFound)
}
