package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestCommitLengthExceedsKey(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	pk := []bls12381.G1Affine{g1}
	v := []fr.Element{fr.NewElement(1), fr.NewElement(2)}

	_, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, v)
	if err != ErrCommitLengthExceedsKey {
		t.Fatalf("expected ErrCommitLengthExceedsKey, got %v", err)
	}
}

func TestCommitMatchesScalarMultiplication(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	pk := []bls12381.G1Affine{g1, g1, g1}
	v := []fr.Element{fr.NewElement(3), fr.NewElement(5), fr.NewElement(7)}

	got, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, v)
	if err != nil {
		t.Fatal(err)
	}

	var sum fr.Element
	for i := range v {
		sum.Add(&sum, &v[i])
	}
	var sumBig big.Int
	sum.BigInt(&sumBig)
	var want bls12381.G1Affine
	want.ScalarMultiplication(&g1, &sumBig)

	if !want.Equal(&got) {
		t.Errorf("commit disagrees with direct scalar multiplication")
	}
}

func TestCommitHomomorphism(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	pk := []bls12381.G1Affine{g1, g1}
	a := []fr.Element{fr.NewElement(2), fr.NewElement(3)}
	aPrime := []fr.Element{fr.NewElement(10), fr.NewElement(20)}

	ca, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, a)
	if err != nil {
		t.Fatal(err)
	}
	caPrime, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, aPrime)
	if err != nil {
		t.Fatal(err)
	}

	sum := make([]fr.Element, len(a))
	for i := range a {
		sum[i].Add(&a[i], &aPrime[i])
	}
	cSum, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, sum)
	if err != nil {
		t.Fatal(err)
	}

	var caJac, caPrimeJac, wantJac bls12381.G1Jac
	caJac.FromAffine(&ca)
	caPrimeJac.FromAffine(&caPrime)
	wantJac.Set(&caJac).AddAssign(&caPrimeJac)

	var want bls12381.G1Affine
	want.FromJacobian(&wantJac)

	if !want.Equal(&cSum) {
		t.Errorf("commit(a)+commit(a') != commit(a+a')")
	}
}

func TestInterpolateAndCommitPreservesIdentity(t *testing.T) {
	domain, err := NewDomain(4)
	if err != nil {
		t.Fatal(err)
	}
	_, _, g1, _ := bls12381.Generators()
	pk := make([]bls12381.G1Affine, domain.Cardinality)
	for i := range pk {
		pk[i] = g1
	}

	a := []fr.Element{fr.NewElement(1), fr.NewElement(2), fr.NewElement(3), fr.NewElement(4)}
	c, err := InterpolateAndCommit[bls12381.G1Affine, *bls12381.G1Affine](domain, pk, a)
	if err != nil {
		t.Fatal(err)
	}

	coeffs, err := domain.Interpolate(a)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](pk, coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if !want.Equal(&c) {
		t.Errorf("InterpolateAndCommit disagrees with Interpolate+Commit")
	}
}
