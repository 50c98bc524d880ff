package der

import (
	"encoding/asn1"
	"fmt"
)

// Cursor reads a DER byte slice strictly in order, reporting how many bytes
// each read consumed — the Go analogue of the source engine's "advance
// pointer and decrement remaining" convention (spec.md §9).
type Cursor struct {
	buf []byte
}

// NewCursor wraps buf for sequential decoding.
func NewCursor(buf []byte) *Cursor { return &Cursor{buf: buf} }

// Empty reports whether every byte has been consumed.
func (c *Cursor) Empty() bool { return len(c.buf) == 0 }

// Remaining returns the unconsumed tail of the input.
func (c *Cursor) Remaining() []byte { return c.buf }

// Finish returns an error if any bytes remain unconsumed. Every constructed
// element's content must be fully consumed by its decoder before Finish is
// called on the sub-cursor — this is what turns trailing garbage inside a
// SEQUENCE into BadFormat rather than a silent truncation.
func (c *Cursor) Finish() error {
	if !c.Empty() {
		return fmt.Errorf("der: %d trailing byte(s)", len(c.buf))
	}
	return nil
}

// PeekApplicationTag reports the tag of the next element without consuming
// it, used to decide whether an OPTIONAL block is present (the Go analogue
// of derStartsWith).
func (c *Cursor) PeekApplicationTag() (Tag, bool) {
	tag, _, err := readTag(c.buf)
	if err != nil {
		return Tag{}, false
	}
	return tag, true
}

// readElement reads one full TLV from the front of the cursor and advances
// past it, verifying the tag matches wantNumber/wantConstructed.
func (c *Cursor) readElement(wantNumber uint32, wantConstructed bool) ([]byte, error) {
	tag, tagLen, err := readTag(c.buf)
	if err != nil {
		return nil, err
	}
	if tag.Number != wantNumber || tag.Constructed != wantConstructed {
		return nil, fmt.Errorf("der: expected tag number %d (constructed=%v), got %d (constructed=%v)",
			wantNumber, wantConstructed, tag.Number, tag.Constructed)
	}
	rest := c.buf[tagLen:]
	length, lenLen, err := readLength(rest)
	if err != nil {
		return nil, err
	}
	rest = rest[lenLen:]
	if length > len(rest) {
		return nil, fmt.Errorf("der: element length %d exceeds remaining input", length)
	}
	content := rest[:length]
	c.buf = rest[length:]
	return content, nil
}

// OpenConstructed reads a constructed APPLICATION element with the given tag
// number and returns a new Cursor scoped to its content. The caller must
// fully consume the returned Cursor (Finish returning nil) before the
// element is considered well-formed.
func (c *Cursor) OpenConstructed(tagNumber uint32) (*Cursor, error) {
	content, err := c.readElement(tagNumber, true)
	if err != nil {
		return nil, err
	}
	return NewCursor(content), nil
}

// OpenConstructedWithRaw behaves like OpenConstructed but additionally
// returns the complete encoded TLV (tag, length, and content) that was
// consumed. It exists for CertificateBody: the signature covers the exact
// encoded bytes, not a value reconstructed from the decoded fields.
func (c *Cursor) OpenConstructedWithRaw(tagNumber uint32) (raw []byte, inner *Cursor, err error) {
	start := c.buf
	content, err := c.readElement(tagNumber, true)
	if err != nil {
		return nil, nil, err
	}
	consumed := len(start) - len(c.buf)
	raw = start[:consumed]
	return raw, NewCursor(content), nil
}

// ReadSizeZero consumes the fixed version field: SIZE[APPLICATION
// tagNumber](0). Any other encoded value is rejected, matching spec.md
// §4.3's "decoders must reject any other value" edge case.
func (c *Cursor) ReadSizeZero(tagNumber uint32) error {
	content, err := c.readElement(tagNumber, false)
	if err != nil {
		return err
	}
	if len(content) != 1 || content[0] != 0 {
		return fmt.Errorf("der: version field is not the fixed value 0")
	}
	return nil
}

// ReadPrintableString consumes an APPLICATION-class primitive string
// element and enforces the given inclusive byte-length bounds. It does not
// otherwise validate the PrintableString alphabet; that is Validators'
// concern (internal/der only knows DER shape, not CVC semantics).
func (c *Cursor) ReadPrintableString(tagNumber uint32, minLen, maxLen int) (string, error) {
	content, err := c.readElement(tagNumber, false)
	if err != nil {
		return "", err
	}
	if len(content) < minLen || len(content) > maxLen {
		return "", fmt.Errorf("der: string length %d outside [%d,%d]", len(content), minLen, maxLen)
	}
	return string(content), nil
}

// ReadOctetString consumes an APPLICATION-class primitive OCTET STRING of
// exactly wantLen octets.
func (c *Cursor) ReadOctetString(tagNumber uint32, wantLen int) ([]byte, error) {
	content, err := c.readElement(tagNumber, false)
	if err != nil {
		return nil, err
	}
	if len(content) != wantLen {
		return nil, fmt.Errorf("der: octet string length %d, want %d", len(content), wantLen)
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// ReadOctetStringAny consumes an APPLICATION-class primitive OCTET STRING
// of whatever length the DER content declares, for fields like the
// signature whose width is not fixed by the schema itself but by the
// signing adapter in use.
func (c *Cursor) ReadOctetStringAny(tagNumber uint32) ([]byte, error) {
	content, err := c.readElement(tagNumber, false)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// ReadUniversalOctetString consumes a universal-class OCTET STRING element
// (tag 0x04) of exactly wantLen octets, used for the inner fields of
// PubKey/CertHAT/DDT.
func (c *Cursor) ReadUniversalOctetString(wantLen int) ([]byte, error) {
	if len(c.buf) == 0 {
		return nil, fmt.Errorf("der: empty input while reading OCTET STRING")
	}
	if c.buf[0] != 0x04 {
		return nil, fmt.Errorf("der: expected universal OCTET STRING tag, got %#x", c.buf[0])
	}
	length, lenLen, err := readLength(c.buf[1:])
	if err != nil {
		return nil, err
	}
	start := 1 + lenLen
	if start+length > len(c.buf) {
		return nil, fmt.Errorf("der: OCTET STRING length exceeds remaining input")
	}
	if length != wantLen {
		return nil, fmt.Errorf("der: OCTET STRING length %d, want %d", length, wantLen)
	}
	out := make([]byte, length)
	copy(out, c.buf[start:start+length])
	c.buf = c.buf[start+length:]
	return out, nil
}

// ReadOID consumes a universal-class OBJECT IDENTIFIER element, delegating
// the primitive decode to encoding/asn1 exactly as encoding/asn1 would if it
// could express the surrounding application tags.
func (c *Cursor) ReadOID() (asn1.ObjectIdentifier, error) {
	var oid asn1.ObjectIdentifier
	rest, err := asn1.Unmarshal(c.buf, &oid)
	if err != nil {
		return nil, fmt.Errorf("der: decoding OID: %w", err)
	}
	c.buf = rest
	return oid, nil
}

// ExpectOID consumes a universal-class OID element and verifies it equals want.
func (c *Cursor) ExpectOID(want asn1.ObjectIdentifier) error {
	got, err := c.ReadOID()
	if err != nil {
		return err
	}
	if !got.Equal(want) {
		return fmt.Errorf("der: OID mismatch: got %s, want %s", got, want)
	}
	return nil
}

// ReadBitString consumes a universal-class BIT STRING element (tag 0x03)
// and requires a zero unused-bits octet and an integral byte length — both
// mandatory per spec.md §4.3's edge-case rules for the PubKey field.
func (c *Cursor) ReadBitString() ([]byte, int, error) {
	if len(c.buf) == 0 {
		return nil, 0, fmt.Errorf("der: empty input while reading BIT STRING")
	}
	if c.buf[0] != 0x03 {
		return nil, 0, fmt.Errorf("der: expected universal BIT STRING tag, got %#x", c.buf[0])
	}
	length, lenLen, err := readLength(c.buf[1:])
	if err != nil {
		return nil, 0, err
	}
	start := 1 + lenLen
	if length == 0 {
		return nil, 0, fmt.Errorf("der: empty BIT STRING")
	}
	if start+length > len(c.buf) {
		return nil, 0, fmt.Errorf("der: BIT STRING length exceeds remaining input")
	}
	content := c.buf[start : start+length]
	unused := content[0]
	if unused != 0 {
		return nil, 0, fmt.Errorf("der: non-zero unused-bits octet in BIT STRING")
	}
	bits := make([]byte, length-1)
	copy(bits, content[1:])
	c.buf = c.buf[start+length:]
	return bits, 8 * len(bits), nil
}
