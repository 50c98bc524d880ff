package btok

import (
	"github.com/bee2lab/btok/internal/cvcasn1"
	"github.com/bee2lab/btok/internal/der"
	"github.com/bee2lab/btok/internal/invariant"
)

// Tag numbers for CertificateBody and its nested elements (STB 34.101.79).
const (
	tagCertBody  = 78
	tagVersion   = 41
	tagAuthority = 2
	tagPubKey    = 73
	tagHolder    = 32
	tagCertHAT   = 76
	tagFrom      = 37
	tagUntil     = 36
	tagCVExt     = 5
	tagDDT       = 19
)

// isAllZero reports whether every byte of b is zero. An all-zero HATEid or
// HATESign is the wire's sentinel for "absent" (spec.md §3 invariant 6):
// EncodeBody omits the corresponding block for such a value exactly as it
// would for a nil slice, and decodeBody never reports one back.
func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// EncodeBody serializes cvc's CertificateBody fields (everything but the
// signature) to canonical DER. The caller is responsible for validating
// cvc beforehand; EncodeBody does not call Check, but it does assert the
// same shape Check enforces, catching a caller that skipped validation
// instead of silently encoding garbage.
func EncodeBody(cvc *CVC) []byte {
	invariant.Assert(seemsValid(cvc), "EncodeBody called with an unvalidated CVC")

	b := der.NewBuilder()
	b.OpenConstructed(tagCertBody, func(body *der.Builder) {
		body.AppendSizeZero(tagVersion)
		body.AppendPrintableString(tagAuthority, cvc.Authority)
		body.OpenConstructed(tagPubKey, func(pk *der.Builder) {
			pk.AppendOID(cvcasn1.OIDBignPubkey)
			pk.AppendBitString(cvc.PubKey)
		})
		body.AppendPrintableString(tagHolder, cvc.Holder)
		if len(cvc.HATEid) > 0 && !isAllZero(cvc.HATEid) {
			body.OpenConstructed(tagCertHAT, func(hat *der.Builder) {
				hat.AppendOID(cvcasn1.OIDEIdAccess)
				hat.AppendUniversalOctetString(cvc.HATEid)
			})
		}
		body.AppendOctetString(tagFrom, cvc.From[:])
		body.AppendOctetString(tagUntil, cvc.Until[:])
		if len(cvc.HATESign) > 0 && !isAllZero(cvc.HATESign) {
			body.OpenConstructed(tagCVExt, func(ext *der.Builder) {
				ext.OpenConstructed(tagDDT, func(ddt *der.Builder) {
					ddt.AppendOID(cvcasn1.OIDESignAccess)
					ddt.AppendUniversalOctetString(cvc.HATESign)
				})
			})
		}
	})
	return b.Bytes()
}

// DecodeBody parses a standalone CertificateBody DER encoding. Unwrap uses
// the unexported decodeBody directly against a Cursor already positioned
// inside a CVCertificate so it can also recover the body's raw bytes for
// signature verification; DecodeBody is for callers that have a bare
// CertificateBody value on its own.
func DecodeBody(raw []byte) (*CVC, error) {
	c := der.NewCursor(raw)
	inner, err := c.OpenConstructed(tagCertBody)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding CertificateBody", err)
	}
	cvc, err := decodeBody(inner)
	if err != nil {
		return nil, err
	}
	if err := c.Finish(); err != nil {
		return nil, wrapError(CodeBadFormat, "trailing bytes after CertificateBody", err)
	}
	return cvc, nil
}

func decodeBody(c *der.Cursor) (*CVC, error) {
	cvc := &CVC{}

	if err := c.ReadSizeZero(tagVersion); err != nil {
		return nil, wrapError(CodeBadFormat, "decoding version", err)
	}

	authority, err := c.ReadPrintableString(tagAuthority, 8, 12)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding authority", err)
	}
	cvc.Authority = authority

	pk, err := c.OpenConstructed(tagPubKey)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding PubKey", err)
	}
	if err := pk.ExpectOID(cvcasn1.OIDBignPubkey); err != nil {
		return nil, wrapError(CodeBadFormat, "decoding PubKey algorithm OID", err)
	}
	bits, bitLen, err := pk.ReadBitString()
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding PubKey bits", err)
	}
	if bitLen != 512 && bitLen != 768 && bitLen != 1024 {
		return nil, newError(CodeBadFormat, "public key bit length is not 512, 768, or 1024")
	}
	if err := pk.Finish(); err != nil {
		return nil, wrapError(CodeBadFormat, "trailing bytes in PubKey", err)
	}
	cvc.PubKey = bits

	holder, err := c.ReadPrintableString(tagHolder, 8, 12)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding holder", err)
	}
	cvc.Holder = holder

	if tag, ok := c.PeekApplicationTag(); ok && tag.Number == tagCertHAT && tag.Constructed {
		hat, err := c.OpenConstructed(tagCertHAT)
		if err != nil {
			return nil, wrapError(CodeBadFormat, "decoding CertHAT", err)
		}
		if err := hat.ExpectOID(cvcasn1.OIDEIdAccess); err != nil {
			return nil, wrapError(CodeBadFormat, "decoding CertHAT OID", err)
		}
		eid, err := hat.ReadUniversalOctetString(5)
		if err != nil {
			return nil, wrapError(CodeBadFormat, "decoding CertHAT access right", err)
		}
		if err := hat.Finish(); err != nil {
			return nil, wrapError(CodeBadFormat, "trailing bytes in CertHAT", err)
		}
		if !isAllZero(eid) {
			cvc.HATEid = eid
		}
	}

	fromBytes, err := c.ReadOctetString(tagFrom, 6)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding from date", err)
	}
	copy(cvc.From[:], fromBytes)

	untilBytes, err := c.ReadOctetString(tagUntil, 6)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding until date", err)
	}
	copy(cvc.Until[:], untilBytes)

	if tag, ok := c.PeekApplicationTag(); ok && tag.Number == tagCVExt && tag.Constructed {
		ext, err := c.OpenConstructed(tagCVExt)
		if err != nil {
			return nil, wrapError(CodeBadFormat, "decoding CVExt", err)
		}
		ddt, err := ext.OpenConstructed(tagDDT)
		if err != nil {
			return nil, wrapError(CodeBadFormat, "decoding DDT", err)
		}
		if err := ddt.ExpectOID(cvcasn1.OIDESignAccess); err != nil {
			return nil, wrapError(CodeBadFormat, "decoding DDT OID", err)
		}
		esign, err := ddt.ReadUniversalOctetString(2)
		if err != nil {
			return nil, wrapError(CodeBadFormat, "decoding DDT access right", err)
		}
		if err := ddt.Finish(); err != nil {
			return nil, wrapError(CodeBadFormat, "trailing bytes in DDT", err)
		}
		if err := ext.Finish(); err != nil {
			return nil, wrapError(CodeBadFormat, "trailing bytes in CVExt", err)
		}
		if !isAllZero(esign) {
			cvc.HATESign = esign
		}
	}

	if err := c.Finish(); err != nil {
		return nil, wrapError(CodeBadFormat, "trailing bytes in CertificateBody", err)
	}
	return cvc, nil
}
