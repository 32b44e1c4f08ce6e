package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/cryptanalysis/crypto"
	"jayconrod.com/cryptanalysis/oracle"
)

func TestCommentQuotesMetacharacters(t *testing.T) {
	o, err := oracle.NewComment(crypto.NewMT19937Reader(30))
	require.NoError(t, err)

	ct, err := o.Encrypt([]byte(";admin=true;"))
	require.NoError(t, err)
	admin, err := o.IsAdmin(ct)
	require.NoError(t, err)
	assert.False(t, admin)

	_, err = o.IsAdmin(ct[:len(ct)-1])
	assert.ErrorIs(t, err, crypto.ErrCrypto)
}
