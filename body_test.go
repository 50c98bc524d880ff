package btok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBody_RoundTrip(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)

	raw := EncodeBody(cvc)
	got, err := DecodeBody(raw)
	require.NoError(t, err)

	require.Equal(t, cvc.Authority, got.Authority)
	require.Equal(t, cvc.Holder, got.Holder)
	require.Equal(t, cvc.PubKey, got.PubKey)
	require.Equal(t, cvc.From, got.From)
	require.Equal(t, cvc.Until, got.Until)
	require.Nil(t, got.HATEid)
	require.Nil(t, got.HATESign)
}

func TestEncodeDecodeBody_WithCertHAT(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	cvc.HATEid = []byte{1, 2, 3, 4, 5}

	raw := EncodeBody(cvc)
	got, err := DecodeBody(raw)
	require.NoError(t, err)
	require.Equal(t, cvc.HATEid, got.HATEid)
	require.Nil(t, got.HATESign)
}

func TestEncodeDecodeBody_WithCVExtDDT(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	cvc.HATESign = []byte{9, 9}

	raw := EncodeBody(cvc)
	got, err := DecodeBody(raw)
	require.NoError(t, err)
	require.Nil(t, got.HATEid)
	require.Equal(t, cvc.HATESign, got.HATESign)
}

func TestEncodeDecodeBody_WithBothOptionalBlocks(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 48)
	cvc.HATEid = []byte{1, 2, 3, 4, 5}
	cvc.HATESign = []byte{7, 8}

	raw := EncodeBody(cvc)
	got, err := DecodeBody(raw)
	require.NoError(t, err)
	require.Equal(t, cvc.HATEid, got.HATEid)
	require.Equal(t, cvc.HATESign, got.HATESign)
}

func TestEncodeBody_AllZeroHATEidOmitsBlock(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	plain := EncodeBody(cvc)

	cvc.HATEid = make([]byte, 5)
	raw := EncodeBody(cvc)
	require.Equal(t, plain, raw, "an all-zero HATEid must encode identically to a nil one")

	got, err := DecodeBody(raw)
	require.NoError(t, err)
	require.Nil(t, got.HATEid)
}

func TestEncodeBody_AllZeroHATESignOmitsBlock(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	plain := EncodeBody(cvc)

	cvc.HATESign = make([]byte, 2)
	raw := EncodeBody(cvc)
	require.Equal(t, plain, raw, "an all-zero HATESign must encode identically to a nil one")

	got, err := DecodeBody(raw)
	require.NoError(t, err)
	require.Nil(t, got.HATESign)
}

func TestDecodeBody_TamperedByteNotDecodedAsOriginal(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	raw := EncodeBody(cvc)

	// Flip a byte inside the authority name field.
	mutated := append([]byte(nil), raw...)
	for i, b := range mutated {
		if b == 'I' {
			mutated[i] ^= 0xFF
			break
		}
	}
	got, err := DecodeBody(mutated)
	if err == nil {
		require.NotEqual(t, cvc.Authority, got.Authority)
	}
}

func TestDecodeBody_RejectsTrailingBytes(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	raw := append(EncodeBody(cvc), 0x00)
	_, err := DecodeBody(raw)
	require.Error(t, err)
}

func TestDecodeBody_RejectsTruncatedInput(t *testing.T) {
	cvc := newTestCVC(t, "ISSUER01", "HOLDER01", 32)
	raw := EncodeBody(cvc)
	_, err := DecodeBody(raw[:len(raw)-10])
	require.Error(t, err)
}
