package btok

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bee2lab/btok/internal/bign"
)

// newTestCVC builds a CVC with a valid name/date/pubkey combination for the
// given private-key tier, leaving Sig empty. Tests that need a signed
// certificate use Wrap on top of this.
func newTestCVC(t *testing.T, authority, holder string, privLen int) *CVC {
	t.Helper()
	priv := newTestPriv(t, privLen)
	tr, ok := tierFromPrivLen(privLen)
	require.True(t, ok)
	pub, err := bign.New().CalcPubkey(tr, priv)
	require.NoError(t, err)

	return &CVC{
		Authority: authority,
		Holder:    holder,
		PubKey:    pub,
		From:      validDate(t, 24, 1, 1),
		Until:     validDate(t, 30, 1, 1),
	}
}

func newTestPriv(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}
