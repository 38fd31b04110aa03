package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PublicKeyG1 and PublicKeyG2 are the ordered powers-of-tau sequences
// pk_G1 = (g1*tau^0, ..., g1*tau^n) and pk_G2 = (g2*tau^0, ..., g2*tau^n).
type (
	PublicKeyG1 = []bls12381.G1Affine
	PublicKeyG2 = []bls12381.G2Affine
)

// point is satisfied by *bls12381.G1Affine and *bls12381.G2Affine: the two
// source groups of the pairing are the only instantiations of the
// group-generic commit primitive spec.md section 4.1 asks for.
type point[T any] interface {
	*T
	MultiExp(points []T, scalars []fr.Element, config ecc.MultiExpConfig) (*T, error)
}

// Commit returns sum(v[i] * pk[i]), computed with gnark-crypto's Pippenger
// multi-scalar multiplication. It fails only if v is longer than pk.
func Commit[T any, PT point[T]](pk []T, v []fr.Element) (T, error) {
	var zero T
	if len(v) > len(pk) {
		return zero, ErrCommitLengthExceedsKey
	}

	var res T
	if _, err := PT(&res).MultiExp(pk[:len(v)], v, ecc.MultiExpConfig{}); err != nil {
		return zero, err
	}
	return res, nil
}

// InterpolateAndCommit interprets a as evaluations on domain of a polynomial
// of degree < domain.Size(), recovers its monomial coefficients via an
// inverse NTT, and commits to them.
func InterpolateAndCommit[T any, PT point[T]](domain *Domain, pk []T, a []fr.Element) (T, error) {
	var zero T
	coeffs, err := domain.Interpolate(a)
	if err != nil {
		return zero, err
	}
	return Commit[T, PT](pk, coeffs)
}
