package btok

import (
	"github.com/bee2lab/btok/internal/bign"
	"github.com/bee2lab/btok/internal/rng"
)

// Engine holds the SignatureAdapter and RandSource collaborators that Wrap,
// Unwrap, and Issue operate through. The zero value is not usable; build
// one with NewEngine or DefaultEngine.
type Engine struct {
	adapter SignatureAdapter
	rand    RandSource
}

// RandSource supplies entropy for nonce generation. IsInitialized reports
// whether Fill can be trusted; when it returns false, Wrap does not call
// Fill and the signature adapter falls back to deterministic nonce
// derivation.
type RandSource = rng.Source

// EngineOption configures an Engine. Pass options to NewEngine.
type EngineOption func(*Engine)

// WithAdapter selects the SignatureAdapter an Engine signs and verifies
// through. The default is internal/bign's Schnorr-style adapter.
func WithAdapter(a SignatureAdapter) EngineOption {
	return func(e *Engine) { e.adapter = a }
}

// WithRand selects the RandSource an Engine draws nonce entropy from. The
// default is crypto/rand. Pass a RandSource that reports
// IsInitialized() == false to force deterministic nonce derivation, as
// tests that need reproducible signatures do.
func WithRand(r RandSource) EngineOption {
	return func(e *Engine) { e.rand = r }
}

// NewEngine builds an Engine from the given options, defaulting to the
// bign adapter and crypto/rand.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		adapter: bign.New(),
		rand:    rng.Default,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultEngine returns a ready-to-use Engine wired to the default
// collaborators.
func DefaultEngine() *Engine {
	return NewEngine()
}

// defaultPubkeyAdapter backs the standalone Check/Check2 functions, which
// validate a public key's curve membership independent of any particular
// Engine's chosen adapter, mirroring the source engine's own validators.
var defaultPubkeyAdapter = bign.New()
