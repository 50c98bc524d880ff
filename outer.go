package btok

import (
	"bytes"
	"io"

	"github.com/bee2lab/btok/internal/der"
	"github.com/bee2lab/btok/internal/invariant"
)

// Tag numbers for CVCertificate and its signature field (STB 34.101.79).
const (
	tagCVCertificate = 33
	tagSig           = 55
)

// Wrap validates cvc, computing its public key from priv first if cvc.PubKey
// is empty, signs its CertificateBody, and returns the complete
// CVCertificate DER encoding. cvc.PubKey and cvc.Sig are populated as a
// side effect.
func (e *Engine) Wrap(cvc *CVC, priv []byte) ([]byte, error) {
	t, ok := tierFromPrivLen(len(priv))
	if !ok {
		return nil, newError(CodeBadInput, "private key has an unsupported length")
	}

	if len(cvc.PubKey) == 0 {
		pub, err := e.adapter.CalcPubkey(t, priv)
		if err != nil {
			return nil, wrapError(CodeBadInput, "computing public key", err)
		}
		cvc.PubKey = pub
	}

	if err := e.Check(cvc); err != nil {
		return nil, err
	}

	body := EncodeBody(cvc)

	var rnd io.Reader
	if e.rand.IsInitialized() {
		buf := make([]byte, t.PrivLen)
		if err := e.rand.Fill(buf); err != nil {
			return nil, wrapError(CodeOutOfMemory, "filling nonce entropy", err)
		}
		rnd = bytes.NewReader(buf)
	}
	sig, err := e.adapter.Sign(t, body, priv, rnd)
	if err != nil {
		return nil, wrapError(CodeBadInput, "signing certificate body", err)
	}
	cvc.Sig = sig

	b := der.NewBuilder()
	b.OpenConstructed(tagCVCertificate, func(outer *der.Builder) {
		outer.AppendRaw(body)
		outer.AppendOctetString(tagSig, sig)
	})
	return b.Bytes(), nil
}

// Unwrap parses a CVCertificate. When pub is non-empty, it must be one of
// the three supported public key lengths and the signature is verified
// against it. When pub is empty, the signature is decoded but not
// verified, matching the source engine's "parse without a trust anchor"
// mode used while walking up a certificate chain.
func (e *Engine) Unwrap(cert []byte, pub []byte) (*CVC, error) {
	if len(pub) != 0 {
		if _, ok := tierFromPubLen(len(pub)); !ok {
			return nil, newError(CodeBadInput, "public key has an unsupported length")
		}
	}

	c := der.NewCursor(cert)
	outer, err := c.OpenConstructed(tagCVCertificate)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding CVCertificate", err)
	}

	bodyRaw, bodyCursor, err := outer.OpenConstructedWithRaw(tagCertBody)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding CertificateBody", err)
	}
	cvc, err := decodeBody(bodyCursor)
	if err != nil {
		return nil, err
	}

	sig, err := outer.ReadOctetStringAny(tagSig)
	if err != nil {
		return nil, wrapError(CodeBadFormat, "decoding signature", err)
	}
	if len(pub) == 0 {
		if _, ok := tierFromSigLen(len(sig)); !ok {
			return nil, newError(CodeBadFormat, "signature length does not match any known tier")
		}
	}
	cvc.Sig = sig

	if err := outer.Finish(); err != nil {
		return nil, wrapError(CodeBadFormat, "trailing bytes in CVCertificate", err)
	}
	if err := c.Finish(); err != nil {
		return nil, wrapError(CodeBadFormat, "trailing bytes after CVCertificate", err)
	}

	if len(pub) != 0 {
		// pub's length was already checked against the tier table above;
		// this lookup cannot fail.
		t, ok := tierFromPubLen(len(pub))
		invariant.Assert(ok, "pub length was already validated against the tier table")
		if err := e.adapter.Verify(t, bodyRaw, sig, pub); err != nil {
			return nil, wrapError(CodeBadSig, "verifying signature", err)
		}
	}

	if err := e.Check(cvc); err != nil {
		return nil, err
	}
	return cvc, nil
}
