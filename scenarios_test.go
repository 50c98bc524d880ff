package btok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenario_S1_MinimalValidDates wraps and unwraps a certificate at the
// earliest possible date both fields can share, with no optional blocks.
func TestScenario_S1_MinimalValidDates(t *testing.T) {
	from := validDate(t, 19, 1, 1)
	until := validDate(t, 19, 1, 1)
	require.True(t, CheckDate(from))
	require.True(t, DateLeq(from, until))

	priv := newTestPriv(t, 32)
	cvc := blankCVC("ISSUER01", "HOLDER01")
	cvc.From, cvc.Until = from, until

	eng := DefaultEngine()
	cert, err := eng.Wrap(cvc, priv)
	require.NoError(t, err)

	got, err := eng.Unwrap(cert, cvc.PubKey)
	require.NoError(t, err)
	require.Equal(t, from, got.From)
	require.Equal(t, until, got.Until)
}

// TestScenario_S2_LeapDay checks the mod-4 leap rule both ways: year 20 and
// 24 both satisfy it, year 21 does not.
func TestScenario_S2_LeapDay(t *testing.T) {
	require.True(t, CheckDate(validDate(t, 20, 2, 29)))
	require.True(t, CheckDate(validDate(t, 24, 2, 29)))

	d, err := NewDate(21, 2, 29)
	require.NoError(t, err, "NewDate only range-checks digits, not calendar validity")
	require.False(t, CheckDate(d))
}

// TestScenario_S3_DateOrdering checks that Check rejects an inverted
// validity window before any encoding happens.
func TestScenario_S3_DateOrdering(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	cvc.From = validDate(t, 30, 6, 15)
	cvc.Until = validDate(t, 29, 12, 31)

	err := Check(cvc)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadDate)

	_, wrapErr := DefaultEngine().Wrap(cvc, newTestPriv(t, 32))
	require.Error(t, wrapErr)
}

// TestScenario_S4_BothHATsPresent checks that both optional blocks
// round-trip when present, and that zeroing hat_esign omits the CVExt
// block and shrinks the encoding.
func TestScenario_S4_BothHATsPresent(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	cvc.HATEid = []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	cvc.HATESign = []byte{0xAA, 0xBB}

	withBoth := EncodeBody(cvc)
	got, err := DecodeBody(withBoth)
	require.NoError(t, err)
	require.Equal(t, cvc.HATEid, got.HATEid)
	require.Equal(t, cvc.HATESign, got.HATESign)

	cvc.HATESign = []byte{0x00, 0x00}
	withoutSign := EncodeBody(cvc)
	require.Less(t, len(withoutSign), len(withBoth))

	got2, err := DecodeBody(withoutSign)
	require.NoError(t, err)
	require.Equal(t, cvc.HATEid, got2.HATEid)
	require.Nil(t, got2.HATESign)
}

// TestScenario_S5_SignatureLengthInference produces certificates at every
// tier and confirms Unwrap with no trust anchor infers the matching
// sig_len in every case.
func TestScenario_S5_SignatureLengthInference(t *testing.T) {
	wantSigLen := map[int]int{32: 48, 48: 72, 64: 96}

	for privLen, sigLen := range wantSigLen {
		priv := newTestPriv(t, privLen)
		cvc := newTestCVC(t, "ISSUER01", "HOLDER01", privLen)

		eng := DefaultEngine()
		cert, err := eng.Wrap(cvc, priv)
		require.NoError(t, err)
		require.Len(t, cvc.Sig, sigLen)

		got, err := eng.Unwrap(cert, nil)
		require.NoError(t, err)
		require.Len(t, got.Sig, sigLen)
	}
}

// TestScenario_S6_CrossKeyReject wraps with priv_A, then unwraps against
// derive(priv_B) expecting BadSig, and against derive(priv_A) expecting OK.
func TestScenario_S6_CrossKeyReject(t *testing.T) {
	eng := DefaultEngine()

	privA := newTestPriv(t, 32)
	privB := newTestPriv(t, 32)

	cvc := blankCVC("ISSUER01", "HOLDER01")
	cvc.From = validDate(t, 24, 1, 1)
	cvc.Until = validDate(t, 30, 1, 1)
	cert, err := eng.Wrap(cvc, privA)
	require.NoError(t, err)

	tr, ok := tierFromPrivLen(32)
	require.True(t, ok)
	pubB, err := eng.adapter.CalcPubkey(tr, privB)
	require.NoError(t, err)

	_, err = eng.Unwrap(cert, pubB)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadSig)

	_, err = eng.Unwrap(cert, cvc.PubKey)
	require.NoError(t, err)
}
