// Package oracle provides encryption oracles: black boxes that encrypt
// attacker-chosen plaintext under a key the attacker never sees.
package oracle

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"jayconrod.com/cryptanalysis/crypto"
)

// KeySize is the AES-128 key size used by every oracle.
const KeySize = 16

// ErrMissingSuffix is returned by a suffix oracle with no secret to append.
var ErrMissingSuffix = fmt.Errorf("%w: secret suffix not set", crypto.ErrOracleMisconfigured)

// An Oracle encrypts chosen plaintext. Implementations may keep state
// between calls, so an Oracle must not be shared between goroutines unless
// it says otherwise.
type Oracle interface {
	Encrypt(plaintext []byte) ([]byte, error)
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(plaintext []byte) ([]byte, error)

func (f Func) Encrypt(plaintext []byte) ([]byte, error) { return f(plaintext) }

// GenerateKey returns a uniformly random AES-128 key read from rand.
func GenerateKey(rand io.Reader) ([]byte, error) {
	if rand == nil {
		return nil, errors.New("nil randomness source")
	}
	return crypto.ReadRandom(rand, KeySize)
}

var keySalt = []byte("jayconrod.com/cryptanalysis/oracle")

// DeriveKey stretches a passphrase into a fixed AES-128 key, so an oracle
// can be rebuilt with the same key across runs.
func DeriveKey(passphrase string) []byte {
	return pbkdf2.Key([]byte(passphrase), keySalt, 4096, KeySize, sha256.New)
}
