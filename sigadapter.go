package btok

import (
	"io"

	"github.com/bee2lab/btok/internal/tier"
)

// Tier is this edition's name for the (PrivLen, PubLen, SigLen, Curve,
// Hash) bundle that a bare key length selects.
type Tier = tier.Tier

// SignatureAdapter is the boundary between the engine and the external
// asymmetric-signature primitive. Every method receives the Tier already
// selected from a key length, so an adapter never has to re-derive it.
type SignatureAdapter interface {
	// Sign computes the signature over body using priv. rnd supplies
	// entropy for the nonce when non-nil; when nil the adapter must derive
	// the nonce deterministically.
	Sign(t Tier, body, priv []byte, rnd io.Reader) ([]byte, error)
	// Verify checks sig over body against pub.
	Verify(t Tier, body, sig, pub []byte) error
	// CalcPubkey derives the public key that corresponds to priv.
	CalcPubkey(t Tier, priv []byte) ([]byte, error)
	// ValPubkey checks that pub is a valid point for t's curve.
	ValPubkey(t Tier, pub []byte) error
	// ValKeypair checks that priv and pub correspond to the same point.
	ValKeypair(t Tier, priv, pub []byte) error
}

func tierFromPrivLen(n int) (Tier, bool) { return tier.ByPrivLen(n) }
func tierFromPubLen(n int) (Tier, bool)  { return tier.ByPubLen(n) }
func tierFromSigLen(n int) (Tier, bool)  { return tier.BySigLen(n) }
