package lvc

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/lagrangevc/lvc/internal/kzg"
	"github.com/lagrangevc/lvc/internal/xlog"
)

// Setup is the structured reference string shared by every prover and
// verifier working against vectors of length up to its domain size. It is
// immutable once built and safe to share across goroutines.
type Setup struct {
	inner *kzg.Setup
}

// SetupOption configures NewSetup.
type SetupOption func(*kzg.Options)

// WithTau injects a known secret in place of a freshly sampled one. This is
// the import path for an MPC ceremony's output: build the Setup once with
// the ceremony's published tau-derived powers (or, for testing, a literal
// seed) rather than trusting an in-process random sample.
func WithTau(tau fr.Element) SetupOption {
	return func(o *kzg.Options) {
		o.Tau = &tau
	}
}

// WithConcurrency caps the fan-out width used while building the setup.
// Zero, the default, means GOMAXPROCS.
func WithConcurrency(n int) SetupOption {
	return func(o *kzg.Options) {
		o.Concurrency = n
	}
}

// NewSetup builds the structured reference string for vectors of length up
// to n (rounded up to the next power of two, floored at two).
func NewSetup(n uint64, opts ...SetupOption) (*Setup, error) {
	var o kzg.Options
	for _, opt := range opts {
		opt(&o)
	}

	xlog.Logger().Debug().Uint64("n", n).Msg("building setup")

	s, err := kzg.Build(n, o)
	if err != nil {
		if errors.Is(err, kzg.ErrDomainUnavailable) {
			return nil, ErrSetupDomainUnavailable
		}
		return nil, err
	}
	return &Setup{inner: s}, nil
}

// Size returns the setup's domain cardinality: the vector length every
// Commit, Open, and Verify call against this setup must match exactly.
func (s *Setup) Size() uint64 {
	return s.inner.Domain.Cardinality
}
