package cookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/cryptanalysis/cookie"
	"jayconrod.com/cryptanalysis/crypto"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want map[string]string
	}{
		{"", map[string]string{}},
		{"foo=bar", map[string]string{"foo": "bar"}},
		{"foo=bar&baz=qux&zap=zazzle", map[string]string{"foo": "bar", "baz": "qux", "zap": "zazzle"}},
		{"a=1&a=2", map[string]string{"a": "2"}},
		{"a=&b==c", map[string]string{"a": "", "b": "=c"}},
	} {
		t.Run(test.in, func(t *testing.T) {
			got, err := cookie.Parse(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"foo", "a=1&", "a=1&&b=2"} {
		_, err := cookie.Parse(in)
		assert.ErrorIs(t, err, cookie.ErrMalformed, in)
		assert.ErrorIs(t, err, crypto.ErrEncoding, in)
	}
}

func TestEncode(t *testing.T) {
	got := cookie.Encode([]string{"b", "a"}, map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, "b=2&a=1", got)
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, "email=foo@bar.com&uid=10&role=user", cookie.ProfileFor("foo@bar.com"))
	assert.Equal(t, "email=foo@bar.comroleadmin&uid=10&role=user", cookie.ProfileFor("foo@bar.com&role=admin"))
}

func TestParseProfile(t *testing.T) {
	p, err := cookie.ParseProfile("email=foo@bar.com&uid=10&role=user")
	require.NoError(t, err)
	assert.Equal(t, cookie.Profile{Email: "foo@bar.com", UID: 10, Role: "user"}, p)
	assert.Equal(t, "email=foo@bar.com&uid=10&role=user", p.String())

	for _, in := range []string{
		"uid=10&role=user",
		"email=a&uid=ten",
		"email=a&admin=true",
		"email",
	} {
		_, err := cookie.ParseProfile(in)
		assert.ErrorIs(t, err, cookie.ErrMalformed, in)
	}
}

func TestCookieRoundTrip(t *testing.T) {
	c, err := cookie.New(crypto.NewMT19937Reader(13))
	require.NoError(t, err)
	assert.Equal(t, 16, c.BlockSize())

	ct, err := c.EncryptedProfileFor("foo@bar.com")
	require.NoError(t, err)
	assert.Len(t, ct, 48)
	p, err := c.DecryptedProfileFor(ct)
	require.NoError(t, err)
	assert.Equal(t, "user", p.Role)
	assert.Equal(t, "foo@bar.com", p.Email)

	viaOracle, err := c.Encrypt([]byte("foo@bar.com"))
	require.NoError(t, err)
	assert.Equal(t, ct, viaOracle)
}

func TestCookieKeys(t *testing.T) {
	a := cookie.NewWithPassphrase("sesame")
	b := cookie.NewWithPassphrase("sesame")
	ctA, err := a.EncryptCookie("email=x")
	require.NoError(t, err)
	ctB, err := b.EncryptCookie("email=x")
	require.NoError(t, err)
	assert.Equal(t, ctA, ctB)

	c := cookie.NewWithKey([]byte("YELLOW SUBMARINE"))
	ct, err := c.EncryptCookie("email=x")
	require.NoError(t, err)
	s, err := c.DecryptCookie(ct)
	require.NoError(t, err)
	assert.Equal(t, "email=x", s)

	// Decrypting under a different key ruins the padding or the record.
	_, err = a.DecryptedProfileFor(ct)
	assert.Error(t, err)

	_, err = c.DecryptCookie(ct[:15])
	assert.ErrorIs(t, err, crypto.ErrCrypto)
}
