// Package bign is the default SignatureAdapter: a Schnorr-style elliptic
// curve signature with the same (s0 half-length, s1 full-length) shape as
// STB 34.101.45 bign, built over two curve/hash pairs selected by key
// length. bign's actual field and point formulas are an external primitive
// out of scope for this engine (there is no Go implementation of them
// anywhere in the retrieval pack), so this package supplies a
// structurally-equivalent stand-in using real library primitives instead
// of translating field arithmetic no example repo contains.
package bign

import (
	"bytes"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"github.com/tjfoc/gmsm/sm2"
	"github.com/tjfoc/gmsm/sm3"
	"golang.org/x/crypto/sha3"

	"github.com/bee2lab/btok/internal/tier"
)

// Adapter is the default SignatureAdapter implementation.
type Adapter struct{}

// New returns the default Adapter.
func New() *Adapter { return &Adapter{} }

func curveFor(t tier.Tier) elliptic.Curve {
	if t.PrivLen == 32 {
		return sm2.P256Sm2()
	}
	return elliptic.P384()
}

func hashFor(t tier.Tier, body []byte) []byte {
	switch t.PrivLen {
	case 32:
		h := sm3.New()
		h.Write(body)
		return h.Sum(nil)
	case 48:
		sum := sha3.Sum384(body)
		return sum[:]
	default:
		sum := sha3.Sum512(body)
		return sum[:]
	}
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// CalcPubkey derives the public key corresponding to priv by scalar
// multiplication of the base point.
func (a *Adapter) CalcPubkey(t tier.Tier, priv []byte) ([]byte, error) {
	if len(priv) != t.PrivLen {
		return nil, fmt.Errorf("bign: private key length %d, want %d", len(priv), t.PrivLen)
	}
	curve := curveFor(t)
	x, y := curve.ScalarBaseMult(priv)
	pub := make([]byte, t.PubLen)
	copy(pub[:t.PrivLen], leftPad(x.Bytes(), t.PrivLen))
	copy(pub[t.PrivLen:], leftPad(y.Bytes(), t.PrivLen))
	return pub, nil
}

// ValPubkey checks that pub decodes to a point on t's curve.
func (a *Adapter) ValPubkey(t tier.Tier, pub []byte) error {
	if len(pub) != t.PubLen {
		return fmt.Errorf("bign: public key length %d, want %d", len(pub), t.PubLen)
	}
	curve := curveFor(t)
	x := new(big.Int).SetBytes(pub[:t.PrivLen])
	y := new(big.Int).SetBytes(pub[t.PrivLen:])
	if !curve.IsOnCurve(x, y) {
		return fmt.Errorf("bign: public key is not a point on the curve")
	}
	return nil
}

// ValKeypair checks that priv and pub correspond to the same point.
func (a *Adapter) ValKeypair(t tier.Tier, priv, pub []byte) error {
	calc, err := a.CalcPubkey(t, priv)
	if err != nil {
		return err
	}
	if !bytes.Equal(calc, pub) {
		return fmt.Errorf("bign: private and public key do not correspond")
	}
	return nil
}

// Sign computes a signature over body. When rnd is non-nil it supplies the
// nonce's entropy; when nil, the nonce is derived deterministically from
// priv and the message hash.
func (a *Adapter) Sign(t tier.Tier, body, priv []byte, rnd io.Reader) ([]byte, error) {
	if len(priv) != t.PrivLen {
		return nil, fmt.Errorf("bign: private key length %d, want %d", len(priv), t.PrivLen)
	}
	curve := curveFor(t)
	n := curve.Params().N
	halfLen := t.PrivLen / 2

	e := new(big.Int).Mod(new(big.Int).SetBytes(hashFor(t, body)), n)
	d := new(big.Int).SetBytes(priv)

	var k *big.Int
	if rnd != nil {
		buf := make([]byte, t.PrivLen)
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, fmt.Errorf("bign: reading nonce entropy: %w", err)
		}
		k = new(big.Int).Mod(new(big.Int).SetBytes(buf), n)
		if k.Sign() == 0 {
			k.SetInt64(1)
		}
	} else {
		k = deterministicNonce(t, priv, hashFor(t, body), n)
	}

	rx, _ := curve.ScalarBaseMult(k.Bytes())
	rx.Mod(rx, n)
	s0 := leftPad(rx.Bytes(), t.PrivLen)[t.PrivLen-halfLen:]

	coeff := new(big.Int).Mod(new(big.Int).Add(new(big.Int).SetBytes(s0), e), n)
	s1 := new(big.Int).Mod(new(big.Int).Sub(k, new(big.Int).Mul(coeff, d)), n)

	sig := make([]byte, t.SigLen)
	copy(sig[:halfLen], s0)
	copy(sig[halfLen:], leftPad(s1.Bytes(), t.PrivLen))
	return sig, nil
}

// Verify checks sig over body against pub.
func (a *Adapter) Verify(t tier.Tier, body, sig, pub []byte) error {
	if len(sig) != t.SigLen {
		return fmt.Errorf("bign: signature length %d, want %d", len(sig), t.SigLen)
	}
	if len(pub) != t.PubLen {
		return fmt.Errorf("bign: public key length %d, want %d", len(pub), t.PubLen)
	}
	curve := curveFor(t)
	n := curve.Params().N
	halfLen := t.PrivLen / 2

	s0 := sig[:halfLen]
	s1 := new(big.Int).SetBytes(sig[halfLen:])
	e := new(big.Int).Mod(new(big.Int).SetBytes(hashFor(t, body)), n)

	pubX := new(big.Int).SetBytes(pub[:t.PrivLen])
	pubY := new(big.Int).SetBytes(pub[t.PrivLen:])
	if !curve.IsOnCurve(pubX, pubY) {
		return fmt.Errorf("bign: public key is not a point on the curve")
	}

	coeff := new(big.Int).Mod(new(big.Int).Add(new(big.Int).SetBytes(s0), e), n)
	x1, y1 := curve.ScalarBaseMult(s1.Bytes())
	x2, y2 := curve.ScalarMult(pubX, pubY, coeff.Bytes())
	rx, _ := curve.Add(x1, y1, x2, y2)
	rx.Mod(rx, n)

	gotS0 := leftPad(rx.Bytes(), t.PrivLen)[t.PrivLen-halfLen:]
	if !bytes.Equal(gotS0, s0) {
		return fmt.Errorf("bign: signature verification failed")
	}
	return nil
}

// deterministicNonce derives a nonce from priv and the message hash using
// an HMAC-DRBG-style counter expansion over HMAC-SHA256, for the case
// where no RNG is available.
func deterministicNonce(t tier.Tier, priv, hash []byte, n *big.Int) *big.Int {
	seedMAC := hmac.New(sha256.New, priv)
	seedMAC.Write(hash)
	seed := seedMAC.Sum(nil)

	out := make([]byte, 0, t.PrivLen+sha256.Size)
	for counter := byte(0); len(out) < t.PrivLen; counter++ {
		blockMAC := hmac.New(sha256.New, seed)
		blockMAC.Write([]byte{counter})
		out = append(out, blockMAC.Sum(nil)...)
	}
	k := new(big.Int).Mod(new(big.Int).SetBytes(out[:t.PrivLen]), n)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}
