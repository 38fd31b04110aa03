package kzg

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Proof certifies y = sum(a[i]*b[i]) against a commitment C = P_a(tau)*g1,
// without revealing a. It is the (r_tau, h_tau, r_hat_tau, y) tuple of
// spec.md section 4.3: r_hat_tau is a degree-bound proof binding R to have
// no X^0 or X^1 coefficient, which closes the soundness gap opened by
// dividing by the vanishing polynomial.
type Proof struct {
	RTau    bls12381.G1Affine
	HTau    bls12381.G1Affine
	RHatTau bls12381.G1Affine
	Y       fr.Element
}

// Open computes the opening proof that y = sum(a[i]*b[i]) for the
// commitment C = InterpolateAndCommit(setup.Domain, setup.PkG1, a).
//
// Modified from original_source/src/lvc.rs.
func Open(setup *Setup, a, b []fr.Element) (Proof, error) {
	m := setup.Domain.Cardinality
	if uint64(len(a)) != m || uint64(len(b)) != m {
		return Proof{}, fmt.Errorf("%w: |a|=%d |b|=%d domain size=%d", ErrLengthMismatch, len(a), len(b), m)
	}

	// A(X) = SUM a_i*lambda_i(X), B(X) = SUM b_i*lambda_i(X)
	coeffsA, err := setup.Domain.Interpolate(a)
	if err != nil {
		return Proof{}, err
	}
	coeffsB, err := setup.Domain.Interpolate(b)
	if err != nil {
		return Proof{}, err
	}

	// y = SUM a_i*b_i — an element-wise dot product, not a polynomial
	// multiplication.
	y, err := DotProduct(a, b, 0)
	if err != nil {
		return Proof{}, err
	}

	// Q(X) = A(X)*B(X)
	q := setup.Domain.MulPolynomials(coeffsA, coeffsB)

	// L(X) = Q(X) - y*m^-1
	var yM fr.Element
	yM.Mul(&y, &setup.Domain.CardinalityInv)
	l := subtractConstant(q, yM)

	// L(X) = H(X)*t(X) + R~(X), deg(R~) < m. R~'s constant term is zero
	// by construction; divideByVanishing asserts this and returns R~
	// already shifted down by one position (R~(X) = X*R(X)).
	h, r, err := divideByVanishing(l, m)
	if err != nil {
		return Proof{}, err
	}

	rTau, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](setup.PkG1, r)
	if err != nil {
		return Proof{}, err
	}
	hTau, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](setup.PkG1, h)
	if err != nil {
		return Proof{}, err
	}
	rHatCoeffs := make([]fr.Element, len(r)+2)
	copy(rHatCoeffs[2:], r)
	rHatTau, err := Commit[bls12381.G1Affine, *bls12381.G1Affine](setup.PkG1, rHatCoeffs)
	if err != nil {
		return Proof{}, err
	}

	return Proof{RTau: rTau, HTau: hTau, RHatTau: rHatTau, Y: y}, nil
}

// Verify checks proof against commitment c and selector b. It returns
// ErrVerifyOpeningProof, never disclosing which of the two pairing
// equations failed, if either does not hold.
//
// Modified from original_source/src/lvc.rs and
// crate-crypto/go-kzg-4844's internal/kzg/kzg_verify.go.
func Verify(setup *Setup, c *bls12381.G1Affine, b []fr.Element, proof *Proof) error {
	m := setup.Domain.Cardinality
	if uint64(len(b)) != m {
		return fmt.Errorf("%w: |b|=%d domain size=%d", ErrLengthMismatch, len(b), m)
	}

	cB, err := InterpolateAndCommit[bls12381.G2Affine, *bls12381.G2Affine](setup.Domain, setup.PkG2, b)
	if err != nil {
		return err
	}

	// y*m^-1*g1, using pk_G1[0] = g1.
	var yM fr.Element
	yM.Mul(&proof.Y, &setup.Domain.CardinalityInv)
	var yMBig big.Int
	yM.BigInt(&yMBig)
	var yG1 bls12381.G1Affine
	yG1.ScalarMultiplication(&setup.PkG1[0], &yMBig)

	eq1, err := checkEquation1(c, &cB, &yG1, proof, setup)
	if err != nil {
		return err
	}
	eq2, err := checkEquation2(proof, setup)
	if err != nil {
		return err
	}

	if !(eq1 && eq2) {
		return ErrVerifyOpeningProof
	}
	return nil
}

// checkEquation1 checks
//
//	e(C, c_b) * e(y*m^-1*g1, g2)^-1 == e(r_tau, tau*g2) * e(h_tau, t(tau)*g2)
//
// by moving every term to the left and testing the product of pairings
// against 1 in a single multi-Miller-loop call.
func checkEquation1(c, cB, yG1 *bls12381.G1Affine, proof *Proof, setup *Setup) (bool, error) {
	var negYG1, negRTau, negHTau bls12381.G1Affine
	negYG1.Neg(yG1)
	negRTau.Neg(&proof.RTau)
	negHTau.Neg(&proof.HTau)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{*c, negYG1, negRTau, negHTau},
		[]bls12381.G2Affine{*cB, setup.PkG2[0], setup.PkG2[1], setup.VanishingTau},
	)
}

// checkEquation2 checks e(r_tau, tau^2*g2) == e(r_hat_tau, g2), the degree
// bound proof that R~(tau) = tau*R(tau).
func checkEquation2(proof *Proof, setup *Setup) (bool, error) {
	var negRHatTau bls12381.G1Affine
	negRHatTau.Neg(&proof.RHatTau)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{proof.RTau, negRHatTau},
		[]bls12381.G2Affine{setup.PkG2[2], setup.PkG2[0]},
	)
}
