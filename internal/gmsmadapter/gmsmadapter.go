// Package gmsmadapter is an alternative SignatureAdapter that signs and
// verifies the 32-octet tier using the real github.com/tjfoc/gmsm/sm2
// Sm2Sign/Sm2Verify functions end-to-end, rather than the Schnorr-style stand-in
// internal/bign builds by hand. It exists to demonstrate that the engine's
// SignatureAdapter boundary is genuinely swappable, not merely
// theoretically pluggable; it intentionally supports only the one tier
// that has a real matching curve in the pack's gmsm dependency.
package gmsmadapter

import (
	"fmt"
	"io"
	"math/big"

	"github.com/tjfoc/gmsm/sm2"

	"github.com/bee2lab/btok/internal/tier"
)

// scalarLen is the fixed width each of r and s is padded to; sm2's curve
// order is exactly 256 bits.
const scalarLen = 32

// Adapter is the gmsm-backed SignatureAdapter. It only accepts the
// 32-octet tier; Sign/Verify/CalcPubkey/ValPubkey/ValKeypair all reject any
// other tier with a bad-input error rather than silently misbehaving.
type Adapter struct{}

// New returns a gmsm-backed Adapter.
func New() *Adapter { return &Adapter{} }

func (a *Adapter) checkTier(t tier.Tier) error {
	if t.PrivLen != 32 {
		return fmt.Errorf("gmsmadapter: unsupported tier with private key length %d (only 32 is supported)", t.PrivLen)
	}
	return nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

func (a *Adapter) privateKey(priv []byte) *sm2.PrivateKey {
	curve := sm2.P256Sm2()
	d := new(big.Int).SetBytes(priv)
	x, y := curve.ScalarBaseMult(priv)
	return &sm2.PrivateKey{
		PublicKey: sm2.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}
}

func (a *Adapter) publicKey(pub []byte) *sm2.PublicKey {
	return &sm2.PublicKey{
		Curve: sm2.P256Sm2(),
		X:     new(big.Int).SetBytes(pub[:scalarLen]),
		Y:     new(big.Int).SetBytes(pub[scalarLen:]),
	}
}

// CalcPubkey derives the public key corresponding to priv.
func (a *Adapter) CalcPubkey(t tier.Tier, priv []byte) ([]byte, error) {
	if err := a.checkTier(t); err != nil {
		return nil, err
	}
	curve := sm2.P256Sm2()
	x, y := curve.ScalarBaseMult(priv)
	pub := make([]byte, 2*scalarLen)
	copy(pub[:scalarLen], leftPad(x.Bytes(), scalarLen))
	copy(pub[scalarLen:], leftPad(y.Bytes(), scalarLen))
	return pub, nil
}

// ValPubkey checks that pub is a point on the sm2 curve.
func (a *Adapter) ValPubkey(t tier.Tier, pub []byte) error {
	if err := a.checkTier(t); err != nil {
		return err
	}
	if len(pub) != 2*scalarLen {
		return fmt.Errorf("gmsmadapter: public key length %d, want %d", len(pub), 2*scalarLen)
	}
	curve := sm2.P256Sm2()
	x := new(big.Int).SetBytes(pub[:scalarLen])
	y := new(big.Int).SetBytes(pub[scalarLen:])
	if !curve.IsOnCurve(x, y) {
		return fmt.Errorf("gmsmadapter: public key is not a point on the curve")
	}
	return nil
}

// ValKeypair checks that priv and pub correspond to the same point.
func (a *Adapter) ValKeypair(t tier.Tier, priv, pub []byte) error {
	calc, err := a.CalcPubkey(t, priv)
	if err != nil {
		return err
	}
	for i := range calc {
		if calc[i] != pub[i] {
			return fmt.Errorf("gmsmadapter: private and public key do not correspond")
		}
	}
	return nil
}

// Sign signs body with priv using sm2.Sm2Sign, encoding the result as a fixed
// 64-octet r||s pair. rnd is ignored: Sm2Sign is called with a nil uid and a
// nil random source, so the library uses its default uid and draws its own
// entropy from crypto/rand, and a nil rnd does not yield a deterministic
// signature the way internal/bign's stand-in does.
func (a *Adapter) Sign(t tier.Tier, body, priv []byte, rnd io.Reader) ([]byte, error) {
	if err := a.checkTier(t); err != nil {
		return nil, err
	}
	priv32 := leftPad(priv, scalarLen)
	key := a.privateKey(priv32)
	r, s, err := sm2.Sm2Sign(key, body, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gmsmadapter: sm2 sign: %w", err)
	}
	sig := make([]byte, 2*scalarLen)
	copy(sig[:scalarLen], leftPad(r.Bytes(), scalarLen))
	copy(sig[scalarLen:], leftPad(s.Bytes(), scalarLen))
	return sig, nil
}

// Verify checks a 64-octet r||s signature over body against pub using
// sm2.Sm2Verify.
func (a *Adapter) Verify(t tier.Tier, body, sig, pub []byte) error {
	if err := a.checkTier(t); err != nil {
		return err
	}
	if len(sig) != 2*scalarLen {
		return fmt.Errorf("gmsmadapter: signature length %d, want %d", len(sig), 2*scalarLen)
	}
	r := new(big.Int).SetBytes(sig[:scalarLen])
	s := new(big.Int).SetBytes(sig[scalarLen:])
	key := a.publicKey(pub)
	if !sm2.Sm2Verify(key, body, nil, r, s) {
		return fmt.Errorf("gmsmadapter: signature verification failed")
	}
	return nil
}
