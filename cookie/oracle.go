package cookie

import (
	"crypto/rand"
	"fmt"
	"io"

	"jayconrod.com/cryptanalysis/crypto"
	"jayconrod.com/cryptanalysis/oracle"
)

// Cookie issues ECB-encrypted profiles under a per-session key and reads
// them back.
type Cookie struct {
	key []byte
}

// New returns a Cookie with a key read from r. A nil r means crypto/rand.
func New(r io.Reader) (*Cookie, error) {
	if r == nil {
		r = rand.Reader
	}
	key, err := oracle.GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &Cookie{key: key}, nil
}

func NewWithKey(key []byte) *Cookie {
	return &Cookie{key: append([]byte(nil), key...)}
}

func NewWithPassphrase(passphrase string) *Cookie {
	return &Cookie{key: oracle.DeriveKey(passphrase)}
}

func (c *Cookie) BlockSize() int {
	return crypto.BlockSize
}

func (c *Cookie) EncryptedProfileFor(email string) ([]byte, error) {
	return c.EncryptCookie(ProfileFor(email))
}

// Encrypt implements oracle.Oracle, treating plaintext as an email address.
func (c *Cookie) Encrypt(plaintext []byte) ([]byte, error) {
	return c.EncryptedProfileFor(string(plaintext))
}

func (c *Cookie) EncryptCookie(s string) ([]byte, error) {
	return crypto.EncryptECB(crypto.Pad(nil, []byte(s), crypto.BlockSize), c.key)
}

// DecryptCookie decrypts and unpads ct. It fails with
// crypto.ErrInvalidPadding if the padding is malformed.
func (c *Cookie) DecryptCookie(ct []byte) (string, error) {
	pt, err := crypto.DecryptECB(ct, c.key)
	if err != nil {
		return "", err
	}
	if pt, err = crypto.Unpad(pt); err != nil {
		return "", err
	}
	return string(pt), nil
}

func (c *Cookie) DecryptedProfileFor(ct []byte) (Profile, error) {
	s, err := c.DecryptCookie(ct)
	if err != nil {
		return Profile{}, err
	}
	p, err := ParseProfile(s)
	if err != nil {
		return Profile{}, fmt.Errorf("decrypted profile: %w", err)
	}
	return p, nil
}
