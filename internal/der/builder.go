package der

import "encoding/asn1"

// Builder accumulates a DER encoding bottom-up. Each Append* method returns
// a complete, self-contained element; OpenConstructed composes elements into
// a constructed parent. There is no dry-run mode (spec.md §9 notes this is an
// acceptable simplification of the source engine's null-buffer convention);
// callers that need a length without the bytes call len() on the result.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Bytes returns the accumulated DER encoding.
func (b *Builder) Bytes() []byte { return b.buf }

// Len reports the number of bytes accumulated so far.
func (b *Builder) Len() int { return len(b.buf) }

// AppendRaw appends already-encoded DER bytes verbatim.
func (b *Builder) AppendRaw(raw []byte) *Builder {
	b.buf = append(b.buf, raw...)
	return b
}

// OpenConstructed begins an APPLICATION-class constructed element (a SEQUENCE
// under the schema's naming) with the given tag number, runs fn against a
// fresh child Builder, and appends the closed element — tag, minimal-length
// prefix, content — to b. This mirrors the start/stop anchor pairing of the
// source engine's derTSEQEncStart/derTSEQEncStop, expressed as composition
// instead of a back-patched offset.
func (b *Builder) OpenConstructed(tagNumber uint32, fn func(child *Builder)) *Builder {
	child := NewBuilder()
	fn(child)
	return b.appendElement(Tag{Number: tagNumber, Constructed: true}, child.Bytes())
}

// AppendSizeZero appends the fixed version field: SIZE[APPLICATION
// tagNumber](0), a one-octet DER INTEGER with value 0.
func (b *Builder) AppendSizeZero(tagNumber uint32) *Builder {
	return b.appendElement(Tag{Number: tagNumber}, []byte{0})
}

// AppendPrintableString appends an APPLICATION-class primitive element
// whose content is the raw bytes of s. The caller is responsible for
// validating s is within the PrintableString alphabet and length bounds
// (internal/der only serializes; it does not apply CVC-specific semantic
// rules).
func (b *Builder) AppendPrintableString(tagNumber uint32, s string) *Builder {
	return b.appendElement(Tag{Number: tagNumber}, []byte(s))
}

// AppendOctetString appends an APPLICATION-class primitive OCTET STRING
// element containing content verbatim.
func (b *Builder) AppendOctetString(tagNumber uint32, content []byte) *Builder {
	return b.appendElement(Tag{Number: tagNumber}, content)
}

// AppendOID appends a universal-class OID element (tag 0x06), using the
// standard library's encoding/asn1 to produce the canonical DER encoding of
// the OID itself — only the surrounding application-tagged structure is
// hand-rolled in this package.
func (b *Builder) AppendOID(oid asn1.ObjectIdentifier) *Builder {
	raw, err := asn1.Marshal(oid)
	if err != nil {
		// oid is always one of the package-internal constants in
		// internal/cvcasn1; a marshal failure here is a programming error.
		panic("der: marshaling well-known OID: " + err.Error())
	}
	return b.AppendRaw(raw)
}

// AppendBitString appends a universal-class BIT STRING element (tag 0x03)
// containing bits with a zero unused-bits octet, as required for the
// PubKey field (spec.md requires an integral octet length with no unused
// bits — this builder never produces anything else).
func (b *Builder) AppendBitString(bits []byte) *Builder {
	content := make([]byte, 1+len(bits))
	copy(content[1:], bits)
	var buf []byte
	buf = append(buf, byte(0x03))
	buf = appendLength(buf, len(content))
	buf = append(buf, content...)
	return b.AppendRaw(buf)
}

// AppendUniversalOctetString appends a universal-class OCTET STRING
// element (tag 0x04), used for the inner fields of PubKey/CertHAT/DDT that
// the schema leaves untagged rather than giving an application tag.
func (b *Builder) AppendUniversalOctetString(content []byte) *Builder {
	var buf []byte
	buf = append(buf, byte(0x04))
	buf = appendLength(buf, len(content))
	buf = append(buf, content...)
	return b.AppendRaw(buf)
}

func (b *Builder) appendElement(tag Tag, content []byte) *Builder {
	var buf []byte
	buf = append(buf, tag.bytes()...)
	buf = appendLength(buf, len(content))
	buf = append(buf, content...)
	return b.AppendRaw(buf)
}
