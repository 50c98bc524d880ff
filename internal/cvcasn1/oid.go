// Package cvcasn1 defines the ASN.1 OID constants used by CV-Certificates
// as specified in STB 34.101.79 (btok) and the STB 34.101.45 (bign) key
// formats it references.
package cvcasn1

import "encoding/asn1"

// Public key algorithm OID (STB 34.101.45, ASN.1 module bign-pubkey).
var (
	// OIDBignPubkey identifies a bign public key, independent of the curve
	// it was generated on; the curve itself is carried as a separate OID
	// alongside it.
	OIDBignPubkey = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 2, 1}
)

// Certificate holder authorization template access-right OIDs
// (STB 34.101.79, section on CertHAT).
var (
	// OIDEIdAccess identifies the identity-card access right.
	OIDEIdAccess = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 79, 6, 1}

	// OIDESignAccess identifies the signing-card access right.
	OIDESignAccess = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 79, 6, 2}
)

// Named curve OIDs (STB 34.101.45, Appendix A), indexed by the private key
// length they pair with: 32, 48, and 64 octets respectively.
var (
	// OIDCurve32 identifies the curve used with 32-octet private keys.
	OIDCurve32 = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 1}

	// OIDCurve48 identifies the curve used with 48-octet private keys.
	OIDCurve48 = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 2}

	// OIDCurve64 identifies the curve used with 64-octet private keys.
	OIDCurve64 = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 45, 3, 3}
)

// Hash algorithm OIDs, indexed the same way as the curve OIDs above: the
// 32-octet tier uses belt-hash, the 48/64-octet tiers use two output widths
// of the sponge-based bash-hash.
var (
	// OIDHashBelt identifies belt-hash (256-bit output), used with the
	// 32-octet tier.
	OIDHashBelt = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 31, 81}

	// OIDHashBash384 identifies bash-hash with a 384-bit output (192-bit
	// security level), used with the 48-octet tier.
	OIDHashBash384 = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 77, 12}

	// OIDHashBash512 identifies bash-hash with a 512-bit output, used with
	// the 64-octet tier.
	OIDHashBash512 = asn1.ObjectIdentifier{1, 2, 112, 0, 2, 0, 34, 101, 77, 13}
)
