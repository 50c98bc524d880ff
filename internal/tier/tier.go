// Package tier holds the key-length-driven parameter table CV-Certificates
// use to pick a curve, a hash algorithm, and a signature length from a bare
// private or public key length, with no separate algorithm identifier in
// the wire format. It has no dependency on the engine or any adapter
// package so both can import it without creating a cycle.
package tier

import (
	"encoding/asn1"

	"github.com/bee2lab/btok/internal/cvcasn1"
)

// Tier bundles the lengths and algorithm identifiers that go together for
// one of the three supported key sizes.
type Tier struct {
	// PrivLen is the private key length in octets: 32, 48, or 64.
	PrivLen int
	// PubLen is the corresponding public key length: always 2*PrivLen.
	PubLen int
	// SigLen is the corresponding signature length: PrivLen + PrivLen/2.
	SigLen int
	// Curve identifies the elliptic curve parameters for this tier.
	Curve asn1.ObjectIdentifier
	// Hash identifies the hash algorithm for this tier.
	Hash asn1.ObjectIdentifier
}

// All lists the three supported tiers, ordered by increasing key length.
var All = []Tier{
	{PrivLen: 32, PubLen: 64, SigLen: 48, Curve: cvcasn1.OIDCurve32, Hash: cvcasn1.OIDHashBelt},
	{PrivLen: 48, PubLen: 96, SigLen: 72, Curve: cvcasn1.OIDCurve48, Hash: cvcasn1.OIDHashBash384},
	{PrivLen: 64, PubLen: 128, SigLen: 96, Curve: cvcasn1.OIDCurve64, Hash: cvcasn1.OIDHashBash512},
}

// ByPrivLen looks up the tier matching a private key length.
func ByPrivLen(n int) (Tier, bool) {
	for _, t := range All {
		if t.PrivLen == n {
			return t, true
		}
	}
	return Tier{}, false
}

// ByPubLen looks up the tier matching a public key length.
func ByPubLen(n int) (Tier, bool) {
	for _, t := range All {
		if t.PubLen == n {
			return t, true
		}
	}
	return Tier{}, false
}

// BySigLen looks up the tier matching a signature length, used when the
// verifier's public key is not yet known and the tier must be guessed by
// trial decoding (spec.md's pubkey_len == 0 path).
func BySigLen(n int) (Tier, bool) {
	for _, t := range All {
		if t.SigLen == n {
			return t, true
		}
	}
	return Tier{}, false
}
