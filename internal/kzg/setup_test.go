package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func mustTau(t *testing.T, seed uint64) fr.Element {
	t.Helper()
	var tau fr.Element
	tau.SetUint64(seed)
	return tau
}

func TestBuildDeterministicGivenTau(t *testing.T) {
	tau := mustTau(t, 42)

	s1, err := Build(4, Options{Tau: &tau})
	if err != nil {
		t.Fatal(err)
	}
	tau2 := mustTau(t, 42)
	s2, err := Build(4, Options{Tau: &tau2})
	if err != nil {
		t.Fatal(err)
	}

	if len(s1.PkG1) != len(s2.PkG1) {
		t.Fatalf("pk_g1 length mismatch: %d vs %d", len(s1.PkG1), len(s2.PkG1))
	}
	for i := range s1.PkG1 {
		if !s1.PkG1[i].Equal(&s2.PkG1[i]) {
			t.Errorf("pk_g1[%d] differs between identically-seeded setups", i)
		}
	}
	for i := range s1.PkG2 {
		if !s1.PkG2[i].Equal(&s2.PkG2[i]) {
			t.Errorf("pk_g2[%d] differs between identically-seeded setups", i)
		}
	}
	if !s1.VanishingTau.Equal(&s2.VanishingTau) {
		t.Error("vanishing_tau differs between identically-seeded setups")
	}
}

func TestBuildRoundsUpToPowerOfTwoWithFloorTwo(t *testing.T) {
	tau := mustTau(t, 42)
	s, err := Build(1, Options{Tau: &tau})
	if err != nil {
		t.Fatal(err)
	}
	if s.Domain.Cardinality != 2 {
		t.Fatalf("expected domain cardinality 2, got %d", s.Domain.Cardinality)
	}
	if len(s.PkG1) != 3 || len(s.PkG2) != 3 {
		t.Fatalf("expected public keys of length 3 (tau^0..tau^2), got %d/%d", len(s.PkG1), len(s.PkG2))
	}
}

func TestBuildPublicKeysAreActualPowersOfTau(t *testing.T) {
	tau := mustTau(t, 7)
	s, err := Build(4, Options{Tau: &tau})
	if err != nil {
		t.Fatal(err)
	}

	taupowers, err := powers(tau, uint64(len(s.PkG1)), 1)
	if err != nil {
		t.Fatal(err)
	}

	_, _, g1, g2 := bls12381.Generators()
	for i, p := range taupowers {
		var bi big.Int
		p.BigInt(&bi)

		var wantG1 bls12381.G1Affine
		wantG1.ScalarMultiplication(&g1, &bi)
		if !wantG1.Equal(&s.PkG1[i]) {
			t.Errorf("pk_g1[%d] != tau^%d * g1", i, i)
		}

		var wantG2 bls12381.G2Affine
		wantG2.ScalarMultiplication(&g2, &bi)
		if !wantG2.Equal(&s.PkG2[i]) {
			t.Errorf("pk_g2[%d] != tau^%d * g2", i, i)
		}
	}
}
