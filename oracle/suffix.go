package oracle

import (
	"crypto/rand"
	"io"

	"jayconrod.com/cryptanalysis/crypto"
)

// Suffix is an ECB oracle that appends a secret to every plaintext, and
// optionally prepends a secret prefix. Its key is fixed for its lifetime.
type Suffix struct {
	key    []byte
	prefix []byte
	suffix []byte
}

type suffixConfig struct {
	key          []byte
	prefix       []byte
	randomPrefix int
}

// A SuffixOption configures a Suffix oracle.
type SuffixOption func(*suffixConfig)

// WithKey fixes the oracle key instead of generating one.
func WithKey(key []byte) SuffixOption {
	return func(c *suffixConfig) { c.key = append([]byte(nil), key...) }
}

// WithPassphrase fixes the oracle key to DeriveKey(passphrase).
func WithPassphrase(passphrase string) SuffixOption {
	return func(c *suffixConfig) { c.key = DeriveKey(passphrase) }
}

// WithPrefix prepends prefix to every plaintext.
func WithPrefix(prefix []byte) SuffixOption {
	return func(c *suffixConfig) { c.prefix = append([]byte(nil), prefix...) }
}

// WithRandomPrefix prepends a prefix of random content and random length
// in [0, maxLen), chosen once when the oracle is built.
func WithRandomPrefix(maxLen int) SuffixOption {
	return func(c *suffixConfig) { c.randomPrefix = maxLen }
}

// NewSuffix builds a suffix oracle. Randomness for the key and any random
// prefix is read from r; a nil r means crypto/rand.
func NewSuffix(r io.Reader, suffix []byte, opts ...SuffixOption) (*Suffix, error) {
	if r == nil {
		r = rand.Reader
	}
	var cfg suffixConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	key := cfg.key
	if key == nil {
		var err error
		if key, err = GenerateKey(r); err != nil {
			return nil, err
		}
	}
	prefix := cfg.prefix
	if cfg.randomPrefix > 0 {
		lb, err := crypto.ReadRandom(r, 1)
		if err != nil {
			return nil, err
		}
		if prefix, err = crypto.ReadRandom(r, int(lb[0])%cfg.randomPrefix); err != nil {
			return nil, err
		}
	}
	o := &Suffix{key: key, prefix: prefix}
	if suffix != nil {
		o.suffix = append([]byte{}, suffix...)
	}
	return o, nil
}

// NewSuffixBase64 is NewSuffix with a base64-encoded secret.
func NewSuffixBase64(r io.Reader, suffix string, opts ...SuffixOption) (*Suffix, error) {
	secret, err := crypto.DecodeBase64(suffix)
	if err != nil {
		return nil, err
	}
	return NewSuffix(r, secret, opts...)
}

func (o *Suffix) BlockSize() int {
	return crypto.BlockSize
}

// Encrypt returns ECB(pad(prefix || plaintext || suffix)).
func (o *Suffix) Encrypt(plaintext []byte) ([]byte, error) {
	if o.suffix == nil {
		return nil, ErrMissingSuffix
	}
	ptLen := len(o.prefix) + len(plaintext) + len(o.suffix)
	buf := make([]byte, 0, crypto.PadLength(ptLen, crypto.BlockSize))
	buf = append(buf, o.prefix...)
	buf = append(buf, plaintext...)
	buf = append(buf, o.suffix...)
	buf = crypto.Pad(buf[:0], buf, crypto.BlockSize)
	return crypto.EncryptECB(buf, o.key)
}
