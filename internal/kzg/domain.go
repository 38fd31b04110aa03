package kzg

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// ErrDomainUnavailable is returned when NewDomain is asked for a cardinality
// whose domain, or the double-size domain used to multiply polynomials on
// it, is larger than the largest 2-adic subgroup of Fr supports.
var ErrDomainUnavailable = errors.New("no evaluation domain of the requested size exists in Fr")

// Domain is the multiplicative subgroup that a and b's evaluations live on.
// It keeps the explicit root sequence the way crate-crypto/go-kzg-4844's own
// domain.go does (domain-membership checks, the vanishing polynomial), and
// wraps gnark-crypto's NTT (fft.Domain) to do the actual interpolation and
// polynomial multiplication.
type Domain struct {
	Cardinality    uint64
	CardinalityInv fr.Element
	// Generator for the multiplicative subgroup.
	// Not the primitive generator for the field.
	Generator    fr.Element
	GeneratorInv fr.Element

	// Roots of unity for the multiplicative subgroup, in natural order.
	Roots []fr.Element

	small *fft.Domain // cardinality Cardinality, used to interpolate a and b
	big   *fft.Domain // next_pow2(2*Cardinality-1), used to multiply A(X)*B(X)
}

// NewDomain builds the domain of size next_pow2(m), with a floor of 2: the
// degree-bound proof on R (section 4.3) needs tau^2 in the SRS, so a domain
// of cardinality 1 is never constructed even when the caller asks for n=1.
// Copied and modified from crate-crypto/go-kzg-4844's internal/kzg/domain.go.
func NewDomain(m uint64) (*Domain, error) {
	x := uint64(ecc.NextPowerOfTwo(m))
	if x < 2 {
		x = 2
	}

	const maxOrderRoot uint64 = 32
	logx := uint64(bits.TrailingZeros64(x))
	if logx > maxOrderRoot {
		return nil, fmt.Errorf("%w: m=%d", ErrDomainUnavailable, m)
	}

	var rootOfUnity fr.Element
	rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")

	d := &Domain{Cardinality: x}

	// Generator = rootOfUnity^(2^(maxOrderRoot-logx)) has order x.
	expo := uint64(1 << (maxOrderRoot - logx))
	d.Generator.Exp(rootOfUnity, big.NewInt(int64(expo)))
	d.GeneratorInv.Inverse(&d.Generator)
	d.CardinalityInv.SetUint64(x).Inverse(&d.CardinalityInv)

	d.Roots = make([]fr.Element, x)
	current := fr.One()
	for i := uint64(0); i < x; i++ {
		d.Roots[i] = current
		current.Mul(&current, &d.Generator)
	}

	bigSize := uint64(ecc.NextPowerOfTwo(2*x - 1))
	if bits.TrailingZeros64(bigSize) > int(maxOrderRoot) {
		return nil, fmt.Errorf("%w: 2m-1=%d", ErrDomainUnavailable, 2*x-1)
	}

	d.small = fft.NewDomain(x)
	d.big = fft.NewDomain(bigSize)

	return d, nil
}

// Size returns the cardinality m of the domain.
func (d *Domain) Size() uint64 {
	return d.Cardinality
}

// IsInDomain reports whether point is one of the domain's roots of unity.
func (d *Domain) IsInDomain(point fr.Element) bool {
	return d.findRootIndex(point) != -1
}

// findRootIndex returns the index of point in the domain, or -1 if point is
// not one of the domain's roots of unity.
func (d *Domain) findRootIndex(point fr.Element) int {
	for i := range d.Roots {
		if point.Equal(&d.Roots[i]) {
			return i
		}
	}
	return -1
}

// Interpolate converts evaluations on the domain (length Cardinality) into
// the monomial coefficients of the unique polynomial of degree < Cardinality
// agreeing with them, via an inverse NTT.
func (d *Domain) Interpolate(evals []fr.Element) ([]fr.Element, error) {
	if uint64(len(evals)) != d.Cardinality {
		return nil, fmt.Errorf("%w: got %d evaluations, domain size is %d", ErrLengthMismatch, len(evals), d.Cardinality)
	}
	coeffs := make([]fr.Element, len(evals))
	copy(coeffs, evals)
	d.small.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return coeffs, nil
}

// MulPolynomials returns the coefficients of A(X)*B(X), both given in
// monomial form, via a zero-padded NTT over the "big" domain — the
// small-domain/big-domain convolution idiom used throughout the PLONK and
// plookup backends in this corpus.
func (d *Domain) MulPolynomials(a, b []fr.Element) []fr.Element {
	n := d.big.Cardinality
	pa := make([]fr.Element, n)
	pb := make([]fr.Element, n)
	copy(pa, a)
	copy(pb, b)

	fft.BitReverse(pa)
	fft.BitReverse(pb)
	d.big.FFT(pa, fft.DIT)
	d.big.FFT(pb, fft.DIT)

	prod := make([]fr.Element, n)
	for i := range prod {
		prod[i].Mul(&pa[i], &pb[i])
	}

	d.big.FFTInverse(prod, fft.DIF)
	fft.BitReverse(prod)

	return prod
}
