package attack_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/cryptanalysis/attack"
	"jayconrod.com/cryptanalysis/cookie"
	"jayconrod.com/cryptanalysis/crypto"
	"jayconrod.com/cryptanalysis/oracle"
)

const secret = "Rollin' in my 5.0\nWith my rag-top down so my hair can blow\n"

func newSuffix(t *testing.T, seed uint32, suffix []byte, opts ...oracle.SuffixOption) *oracle.Suffix {
	t.Helper()
	o, err := oracle.NewSuffix(crypto.NewMT19937Reader(seed), suffix, opts...)
	require.NoError(t, err)
	return o
}

// randomModeOracle re-keys on every call, so nothing lines up between
// queries.
func randomModeOracle(seed uint32) oracle.Oracle {
	rm := oracle.NewRandomMode(crypto.NewMT19937Reader(seed))
	return oracle.Func(func(pt []byte) ([]byte, error) {
		ct, _, err := rm.EncryptRandomMode(pt)
		return ct, err
	})
}

func TestDetectBlockSize(t *testing.T) {
	o := newSuffix(t, 1, []byte(secret))
	bs, err := attack.DetectBlockSize(o, 32)
	require.NoError(t, err)
	assert.Equal(t, 16, bs)

	_, err = attack.DetectBlockSize(o, 8)
	assert.ErrorIs(t, err, attack.ErrBlockSizeNotDetected)
	assert.ErrorIs(t, err, crypto.ErrAttackFailed)

	_, err = attack.DetectBlockSize(randomModeOracle(2), 32)
	assert.ErrorIs(t, err, attack.ErrBlockSizeNotDetected)
}

func TestMeasureBlockSize(t *testing.T) {
	o := newSuffix(t, 3, []byte(secret), oracle.WithRandomPrefix(64))
	bs, err := attack.MeasureBlockSize(o, 32)
	require.NoError(t, err)
	assert.Equal(t, 16, bs)
}

func TestDetectOracleMode(t *testing.T) {
	mode, err := attack.DetectOracleMode(newSuffix(t, 4, []byte(secret)), 16)
	require.NoError(t, err)
	assert.Equal(t, crypto.ModeECB, mode)

	c, err := oracle.NewComment(crypto.NewMT19937Reader(5))
	require.NoError(t, err)
	mode, err = attack.DetectOracleMode(c, 16)
	require.NoError(t, err)
	assert.Equal(t, crypto.ModeCBC, mode)
}

func TestOracleErrorsPropagate(t *testing.T) {
	o := newSuffix(t, 6, nil)
	_, err := attack.RecoverSuffix(o)
	assert.ErrorIs(t, err, oracle.ErrMissingSuffix)
	_, err = attack.RecoverSuffixWithPrefix(o)
	assert.ErrorIs(t, err, oracle.ErrMissingSuffix)
}

func TestFindMatchingBlocks(t *testing.T) {
	c := cookie.NewWithPassphrase("align")
	payload := crypto.Pad(nil, []byte("admin"), 16)
	a, err := attack.FindMatchingBlocks(c, payload, 16)
	require.NoError(t, err)
	// "email=" is 6 bytes, so 10 filler bytes complete the first block.
	assert.Equal(t, 10, a.Padding)
	assert.Equal(t, 1, a.Blocks)
	assert.Equal(t, byte('e'), a.Filler)

	want, err := c.EncryptCookie("email=eeeeeeeeee")
	require.NoError(t, err)
	assert.Equal(t, want[:16], a.Ciphertext[:16])
}

func TestFindMatchingBlocksFillerCollision(t *testing.T) {
	o := newSuffix(t, 7, []byte(secret), oracle.WithPrefix([]byte("abc")))
	a, err := attack.FindMatchingBlocks(o, []byte("e"), 16)
	require.NoError(t, err)
	assert.Equal(t, byte('e'^1), a.Filler)
	assert.Equal(t, 13, a.Padding)
	assert.Equal(t, 1, a.Blocks)
}

func TestFindMatchingBlocksNotFound(t *testing.T) {
	_, err := attack.FindMatchingBlocks(randomModeOracle(8), []byte("x"), 16)
	assert.ErrorIs(t, err, attack.ErrAlignmentNotFound)
	assert.ErrorIs(t, err, crypto.ErrAttackFailed)
}

func TestFindMatchingBlocksEmptyPayload(t *testing.T) {
	assert.Panics(t, func() {
		attack.FindMatchingBlocks(newSuffix(t, 9, nil), nil, 16)
	})
}

func TestRecoverSuffix(t *testing.T) {
	for _, s := range []string{secret, "", "x", "exactly sixteen!"} {
		t.Run(fmt.Sprintf("len=%d", len(s)), func(t *testing.T) {
			got, err := attack.RecoverSuffix(newSuffix(t, 10, []byte(s)))
			require.NoError(t, err)
			assert.Equal(t, s, string(got))
		})
	}
}

func TestRecoverSuffixFiller(t *testing.T) {
	got, err := attack.RecoverSuffix(newSuffix(t, 11, []byte(secret)), attack.WithFiller('A'))
	require.NoError(t, err)
	assert.Equal(t, secret, string(got))
}

func TestRecoverSuffixWithPrefix(t *testing.T) {
	for seed := uint32(20); seed < 26; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			o := newSuffix(t, seed, []byte(secret), oracle.WithRandomPrefix(64))
			got, err := attack.RecoverSuffixWithPrefix(o)
			require.NoError(t, err)
			assert.Equal(t, secret, string(got))
		})
	}
}

func TestRecoverSuffixWithFixedPrefix(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 40} {
		t.Run(fmt.Sprintf("prefix=%d", n), func(t *testing.T) {
			o := newSuffix(t, 30, []byte(secret), oracle.WithPrefix(bytes.Repeat([]byte{'p'}, n)))
			got, err := attack.RecoverSuffixWithPrefix(o)
			require.NoError(t, err)
			assert.Equal(t, secret, string(got))
		})
	}
}

func TestAlignedOracle(t *testing.T) {
	key := []byte("YELLOW SUBMARINE")
	o := newSuffix(t, 31, []byte("tail"), oracle.WithKey(key), oracle.WithPrefix([]byte("0123456789")))
	a := attack.Alignment{Padding: 6, Filler: 'e', Blocks: 1}
	aligned := attack.AlignedOracle(o, a, 16)
	got, err := aligned.Encrypt([]byte("hello"))
	require.NoError(t, err)
	want, err := crypto.EncryptECB(crypto.Pad(nil, []byte("hellotail"), 16), key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestForgeAdminProfile(t *testing.T) {
	c, err := cookie.New(crypto.NewMT19937Reader(40))
	require.NoError(t, err)
	ct, err := attack.ForgeAdminProfile(c)
	require.NoError(t, err)
	p, err := c.DecryptedProfileFor(ct)
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, 10, p.UID)
}

func TestForgeAdminComment(t *testing.T) {
	for seed := uint32(50); seed < 54; seed++ {
		o, err := oracle.NewComment(crypto.NewMT19937Reader(seed))
		require.NoError(t, err)
		ct, err := attack.ForgeAdminComment(o)
		require.NoError(t, err)
		admin, err := o.IsAdmin(ct)
		require.NoError(t, err)
		assert.True(t, admin, "seed %d", seed)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := attack.RecoverSuffixWithPrefix(newSuffix(t, 60, []byte("hi"), oracle.WithPrefix([]byte("abc"))), attack.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "found alignment")
	assert.Contains(t, buf.String(), "reached padding")
}
