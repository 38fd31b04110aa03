package kzg

import (
	"context"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// Setup is the structured reference string: pk_G1, pk_G2, the commitment to
// the vanishing polynomial in G2, and the evaluation domain. It is immutable
// after Build returns and may be shared freely across goroutines.
type Setup struct {
	PkG1         PublicKeyG1
	PkG2         PublicKeyG2
	VanishingTau bls12381.G2Affine
	Domain       *Domain
}

// Options configures Build.
type Options struct {
	// Tau, if non-nil, is used in place of a freshly sampled secret. This
	// is what lets a deterministic test, or a production MPC ceremony
	// replay, reconstruct an identical Setup.
	Tau *fr.Element
	// Concurrency caps the fan-out width used to compute powers of tau
	// and the G2 scalar multiplications; the G1 batch multiplication is
	// left to gnark-crypto. Zero means GOMAXPROCS.
	Concurrency int
}

// Build constructs the SRS for vectors of length up to n. n is rounded up to
// the next power of two.
func Build(n uint64, opts Options) (*Setup, error) {
	domain, err := NewDomain(n)
	if err != nil {
		return nil, err
	}
	m := domain.Cardinality

	var tau fr.Element
	if opts.Tau != nil {
		tau = *opts.Tau
	} else {
		if _, err := tau.SetRandom(); err != nil {
			return nil, err
		}
	}
	// Best-effort analogue of the Rust implementation's tau going out of
	// scope unread: this is the only copy the function ever makes.
	defer tau.SetZero()

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	tauPowers, err := powers(tau, m+1, concurrency)
	if err != nil {
		return nil, err
	}

	_, _, g1Gen, g2Gen := bls12381.Generators()

	pkG1 := bls12381.BatchScalarMultiplicationG1(&g1Gen, tauPowers)
	pkG2, err := batchScalarMulG2(&g2Gen, tauPowers, concurrency)
	if err != nil {
		return nil, err
	}

	// vanishing_tau = t(tau)*g2 where t(X) = X^m - 1, i.e. commit the
	// 2-term polynomial [-1, 0, ..., 0, 1] (coefficient m) in G2.
	vanishingCoeffs := make([]fr.Element, m+1)
	vanishingCoeffs[0].SetOne().Neg(&vanishingCoeffs[0])
	vanishingCoeffs[m].SetOne()
	vanishingTau, err := Commit[bls12381.G2Affine, *bls12381.G2Affine](pkG2, vanishingCoeffs)
	if err != nil {
		return nil, err
	}

	return &Setup{
		PkG1:         pkG1,
		PkG2:         pkG2,
		VanishingTau: vanishingTau,
		Domain:       domain,
	}, nil
}

// powers computes [tau^0, tau^1, ..., tau^(count-1)] by splitting the range
// into contiguous chunks computed concurrently, each chunk via repeated
// multiplication from its own starting power (so no goroutine needs another
// goroutine's result). Addition and multiplication in Fr are associative, so
// the concurrent schedule does not change the result.
func powers(tau fr.Element, count uint64, concurrency int) ([]fr.Element, error) {
	out := make([]fr.Element, count)
	if count == 0 {
		return out, nil
	}

	chunks := uint64(concurrency)
	if chunks > count {
		chunks = count
	}
	if chunks == 0 {
		chunks = 1
	}
	chunkSize := (count + chunks - 1) / chunks

	g, _ := errgroup.WithContext(context.Background())
	for start := uint64(0); start < count; start += chunkSize {
		start := start
		end := start + chunkSize
		if end > count {
			end = count
		}
		g.Go(func() error {
			var cur fr.Element
			cur.Exp(tau, big.NewInt(int64(start)))
			for i := start; i < end; i++ {
				out[i] = cur
				cur.Mul(&cur, &tau)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// batchScalarMulG2 lifts powers into G2. gnark-crypto does not expose a
// batch-affine helper for G2 the way it does for G1, so this fans the
// individual scalar multiplications out across a worker pool instead.
func batchScalarMulG2(gen *bls12381.G2Affine, scalars []fr.Element, concurrency int) ([]bls12381.G2Affine, error) {
	out := make([]bls12381.G2Affine, len(scalars))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)
	for i := range scalars {
		i := i
		g.Go(func() error {
			var bi big.Int
			scalars[i].BigInt(&bi)
			out[i].ScalarMultiplication(gen, &bi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
