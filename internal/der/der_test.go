package der

import (
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderCursor_RoundTrip(t *testing.T) {
	b := NewBuilder()
	b.OpenConstructed(78, func(body *Builder) {
		body.AppendSizeZero(41)
		body.AppendPrintableString(2, "ISSUERNAME01")
		body.AppendOctetString(37, []byte{1, 9, 0, 1, 0, 1})
	})
	raw := b.Bytes()

	c := NewCursor(raw)
	inner, err := c.OpenConstructed(78)
	require.NoError(t, err)

	require.NoError(t, inner.ReadSizeZero(41))

	name, err := inner.ReadPrintableString(2, 8, 12)
	require.NoError(t, err)
	require.Equal(t, "ISSUERNAME01", name)

	date, err := inner.ReadOctetString(37, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 9, 0, 1, 0, 1}, date)

	require.NoError(t, inner.Finish())
	require.NoError(t, c.Finish())
}

func TestCursor_WrongTagRejected(t *testing.T) {
	b := NewBuilder()
	b.AppendOctetString(37, []byte{1, 9, 0, 1, 0, 1})

	c := NewCursor(b.Bytes())
	_, err := c.ReadOctetString(36, 6)
	require.Error(t, err)
}

func TestCursor_TrailingBytesRejected(t *testing.T) {
	b := NewBuilder()
	b.AppendOctetString(37, []byte{1, 9, 0, 1, 0, 1})
	b.AppendOctetString(36, []byte{1, 9, 0, 1, 0, 2})

	c := NewCursor(b.Bytes())
	_, err := c.ReadOctetString(37, 6)
	require.NoError(t, err)
	require.Error(t, c.Finish(), "a second element remains unconsumed")
}

func TestCursor_VersionMustBeZero(t *testing.T) {
	b := NewBuilder()
	b.appendElement(Tag{Number: 41}, []byte{1})

	c := NewCursor(b.Bytes())
	err := c.ReadSizeZero(41)
	require.Error(t, err)
}

func TestCursor_PrintableStringLengthBounds(t *testing.T) {
	b := NewBuilder()
	b.AppendPrintableString(2, "SHORT")

	c := NewCursor(b.Bytes())
	_, err := c.ReadPrintableString(2, 8, 12)
	require.Error(t, err)
}

func TestBitString_RejectsNonZeroUnusedBits(t *testing.T) {
	var raw []byte
	raw = append(raw, 0x03)
	raw = appendLength(raw, 2)
	raw = append(raw, 0x01, 0xFF) // unused-bits octet is 1, not 0

	c := NewCursor(raw)
	_, _, err := c.ReadBitString()
	require.Error(t, err)
}

func TestBitString_RoundTrip(t *testing.T) {
	bits := make([]byte, 64)
	for i := range bits {
		bits[i] = byte(i)
	}
	b := NewBuilder()
	b.AppendBitString(bits)

	c := NewCursor(b.Bytes())
	got, bitLen, err := c.ReadBitString()
	require.NoError(t, err)
	require.Equal(t, bits, got)
	require.Equal(t, 512, bitLen)
}

func TestUniversalOctetString_RoundTrip(t *testing.T) {
	b := NewBuilder()
	b.AppendUniversalOctetString([]byte{1, 2, 3, 4, 5})

	c := NewCursor(b.Bytes())
	got, err := c.ReadUniversalOctetString(5)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestUniversalOctetString_WrongLengthRejected(t *testing.T) {
	b := NewBuilder()
	b.AppendUniversalOctetString([]byte{1, 2, 3, 4, 5})

	c := NewCursor(b.Bytes())
	_, err := c.ReadUniversalOctetString(2)
	require.Error(t, err)
}

func TestOID_RoundTrip(t *testing.T) {
	oid := asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 2, 1}
	b := NewBuilder()
	b.AppendOID(oid)

	c := NewCursor(b.Bytes())
	require.NoError(t, c.ExpectOID(oid))
}

func TestOID_MismatchRejected(t *testing.T) {
	b := NewBuilder()
	b.AppendOID(asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 2, 1})

	c := NewCursor(b.Bytes())
	err := c.ExpectOID(asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 1})
	require.Error(t, err)
}

func TestOpenConstructedWithRaw_ReturnsExactBytes(t *testing.T) {
	b := NewBuilder()
	b.OpenConstructed(78, func(body *Builder) {
		body.AppendSizeZero(41)
	})
	outer := NewBuilder()
	outer.OpenConstructed(33, func(o *Builder) {
		o.AppendRaw(b.Bytes())
		o.AppendOctetString(55, []byte{0xAA, 0xBB})
	})

	c := NewCursor(outer.Bytes())
	cvCert, err := c.OpenConstructed(33)
	require.NoError(t, err)

	raw, inner, err := cvCert.OpenConstructedWithRaw(78)
	require.NoError(t, err)
	require.Equal(t, b.Bytes(), raw)
	require.NoError(t, inner.ReadSizeZero(41))
	require.NoError(t, inner.Finish())
}

func TestReadOctetStringAny_AcceptsAnyLength(t *testing.T) {
	b := NewBuilder()
	b.AppendOctetString(55, make([]byte, 72))

	c := NewCursor(b.Bytes())
	sig, err := c.ReadOctetStringAny(55)
	require.NoError(t, err)
	require.Len(t, sig, 72)
}

func TestLength_NonMinimalLongFormRejected(t *testing.T) {
	var raw []byte
	raw = append(raw, 0x42)       // APPLICATION 2, primitive
	raw = append(raw, 0x81, 0x05) // long-form length for a value that fits short-form
	raw = append(raw, make([]byte, 5)...)

	c := NewCursor(raw)
	_, err := c.readElement(2, false)
	require.Error(t, err)
}

func TestLength_IndefiniteRejected(t *testing.T) {
	var raw []byte
	raw = append(raw, 0x62) // APPLICATION 2, constructed
	raw = append(raw, 0x80) // indefinite length marker

	c := NewCursor(raw)
	_, err := c.readElement(2, true)
	require.Error(t, err)
}

func TestTag_HighTagNumberRoundTrip(t *testing.T) {
	tag := Tag{Number: 78, Constructed: true}
	encoded := tag.bytes()

	got, n, err := readTag(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, tag, got)
}
