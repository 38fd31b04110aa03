package kzg

import (
	"context"
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// DotProduct computes sum(a[i]*b[i]) as a data-parallel map-reduce: the
// range is split into contiguous chunks, each reduced by its own goroutine,
// and the partial sums are combined at the end. Addition in Fr is
// associative and commutative, so the chunking does not change the result.
func DotProduct(a, b []fr.Element, concurrency int) (fr.Element, error) {
	if len(a) != len(b) {
		return fr.Element{}, fmt.Errorf("%w: |a|=%d, |b|=%d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return fr.Element{}, nil
	}

	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	chunks := concurrency
	if chunks > len(a) {
		chunks = len(a)
	}
	chunkSize := (len(a) + chunks - 1) / chunks

	partials := make([]fr.Element, chunks)
	g, _ := errgroup.WithContext(context.Background())
	for c := 0; c < chunks; c++ {
		c := c
		start := c * chunkSize
		end := start + chunkSize
		if start >= len(a) {
			continue
		}
		if end > len(a) {
			end = len(a)
		}
		g.Go(func() error {
			var sum, tmp fr.Element
			for i := start; i < end; i++ {
				tmp.Mul(&a[i], &b[i])
				sum.Add(&sum, &tmp)
			}
			partials[c] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fr.Element{}, err
	}

	var total fr.Element
	for i := range partials {
		total.Add(&total, &partials[i])
	}
	return total, nil
}

// subtractConstant returns poly with c subtracted from its constant term,
// leaving poly untouched.
func subtractConstant(poly []fr.Element, c fr.Element) []fr.Element {
	out := make([]fr.Element, len(poly))
	copy(out, poly)
	if len(out) == 0 {
		out = append(out, fr.Element{})
	}
	out[0].Sub(&out[0], &c)
	return out
}

// divideByVanishing divides l (degree <= 2m-2, i.e. length <= 2m-1) by the
// vanishing polynomial t(X) = X^m - 1, returning the quotient h and the
// remainder's coefficients with the (provably zero) constant term already
// dropped and reindexed — i.e. rShifted such that X*rShifted(X) is the true
// remainder. This is the closed form for division by X^m-1: writing
// l(X) = h(X)*(X^m-1) + r(X) with deg(h) <= m-2 and deg(r) < m,
//
//	h[j]   = l[j+m]          for j = 0..m-2
//	r[i]   = l[i] + l[i+m]   for i = 0..m-2
//	r[m-1] = l[m-1]
//
// since no power of X in [m, 2m-2] other than h[j]*X^(j+m) can produce it.
func divideByVanishing(l []fr.Element, m uint64) (h, rShifted []fr.Element, err error) {
	padded := make([]fr.Element, 2*m-1)
	copy(padded, l)
	for i := 2*m - 1; i < uint64(len(l)); i++ {
		if !l[i].IsZero() {
			return nil, nil, fmt.Errorf("%w: Q(X)-y/m has degree >= 2m-1", ErrRemainderNotShifted)
		}
	}

	h = make([]fr.Element, 0)
	if m >= 2 {
		h = make([]fr.Element, m-1)
		for j := uint64(0); j < m-1; j++ {
			h[j] = padded[j+m]
		}
	}

	r := make([]fr.Element, m)
	if m >= 2 {
		for i := uint64(0); i < m-1; i++ {
			r[i].Add(&padded[i], &padded[i+m])
		}
	}
	r[m-1] = padded[m-1]

	if !r[0].IsZero() {
		return nil, nil, ErrRemainderNotShifted
	}

	return h, r[1:], nil
}
