package btok

// Issue parses the issuer's own certificate issuerCert, checks that
// issuerPriv corresponds to its public key, checks that cvc is consistent
// with the issuer (authority matches issuer's holder, start date within
// the issuer's validity period), and then wraps and signs cvc with
// issuerPriv. It is the only operation that produces a certificate whose
// authority is backed by a verified keypair rather than a bare claim.
func (e *Engine) Issue(cvc *CVC, issuerCert []byte, issuerPriv []byte) ([]byte, error) {
	cvca, err := e.Unwrap(issuerCert, nil)
	if err != nil {
		return nil, err
	}

	t, ok := tierFromPrivLen(len(issuerPriv))
	if !ok {
		return nil, newError(CodeBadInput, "issuer private key has an unsupported length")
	}
	if err := e.adapter.ValKeypair(t, issuerPriv, cvca.PubKey); err != nil {
		return nil, wrapError(CodeBadKeypair, "validating issuer keypair", err)
	}

	if err := e.Check2(cvc, cvca); err != nil {
		return nil, err
	}

	return e.Wrap(cvc, issuerPriv)
}
