package oracle

import (
	"bytes"
	"crypto/rand"
	"io"
	"strings"

	"jayconrod.com/cryptanalysis/crypto"
)

const (
	commentPrefix = "comment1=cooking%20MCs;userdata="
	commentSuffix = ";comment2=%20like%20a%20pound%20of%20bacon"
)

var commentQuoter = strings.NewReplacer("=", "%3D", ";", "%3B")

// Comment is a CBC oracle that embeds quoted user data in a fixed
// semicolon-separated record. Key and IV are fixed for its lifetime.
type Comment struct {
	key, iv []byte
}

// NewComment reads a key and IV from r. A nil r means crypto/rand.
func NewComment(r io.Reader) (*Comment, error) {
	if r == nil {
		r = rand.Reader
	}
	key, err := GenerateKey(r)
	if err != nil {
		return nil, err
	}
	iv, err := crypto.ReadRandom(r, crypto.BlockSize)
	if err != nil {
		return nil, err
	}
	return &Comment{key: key, iv: iv}, nil
}

// Encrypt quotes '=' and ';' in userdata, wraps it in the record and
// encrypts the padded result.
func (o *Comment) Encrypt(userdata []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(commentPrefix)
	buf.WriteString(commentQuoter.Replace(string(userdata)))
	buf.WriteString(commentSuffix)
	return crypto.EncryptCBC(crypto.Pad(nil, buf.Bytes(), crypto.BlockSize), o.key, o.iv)
}

// IsAdmin decrypts ct and reports whether any field is exactly
// "admin=true".
func (o *Comment) IsAdmin(ct []byte) (bool, error) {
	pt, err := crypto.DecryptCBC(ct, o.key, o.iv)
	if err != nil {
		return false, err
	}
	if pt, err = crypto.Unpad(pt); err != nil {
		return false, err
	}
	for _, field := range bytes.Split(pt, []byte(";")) {
		if bytes.Equal(field, []byte("admin=true")) {
			return true, nil
		}
	}
	return false, nil
}
