package lvc

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/lagrangevc/lvc/internal/kzg"
	"github.com/lagrangevc/lvc/internal/xlog"
)

// Domain is the multiplicative subgroup a setup's vectors are evaluated on.
type Domain = kzg.Domain

// PublicKeyG1 is the G1 half of a setup's powers-of-tau public key.
type PublicKeyG1 = kzg.PublicKeyG1

// DomainHandle returns the setup's evaluation domain.
func (s *Setup) DomainHandle() *Domain {
	return s.inner.Domain
}

// PublicKeyG1 returns the setup's G1 powers-of-tau public key.
func (s *Setup) PublicKeyG1() PublicKeyG1 {
	return s.inner.PkG1
}

// InterpolateAndCommit commits to the vector a, interpreted as evaluations
// of a polynomial of degree < domain.Size() on domain, against the public
// key pk.
func InterpolateAndCommit(domain *Domain, pk PublicKeyG1, a []fr.Element) (Commitment, error) {
	c, err := kzg.InterpolateAndCommit[bls12381.G1Affine, *bls12381.G1Affine](domain, pk, a)
	if err != nil {
		return Commitment{}, translateErr(err)
	}
	return commitmentFromAffine(c), nil
}

// Commit commits to a against setup, equivalent to calling
// InterpolateAndCommit with the setup's own domain and G1 public key.
func Commit(setup *Setup, a []fr.Element) (Commitment, error) {
	return InterpolateAndCommit(setup.inner.Domain, setup.inner.PkG1, a)
}

// Open produces a constant-size proof that y = sum(a[i]*b[i]), for the
// commitment Commit(setup, a). a and b must each have length
// setup.Size().
func Open(setup *Setup, a, b []fr.Element) (Proof, error) {
	xlog.Logger().Debug().Uint64("domain", setup.Size()).Msg("open")

	p, err := kzg.Open(setup.inner, a, b)
	if err != nil {
		return Proof{}, translateErr(err)
	}
	return proofFromInternal(p), nil
}

// Verify checks proof against commitment c and selector b. It returns
// ErrVerificationFailed, without disclosing which of the two underlying
// pairing checks failed, if the proof does not hold.
func Verify(setup *Setup, c Commitment, b []fr.Element, proof Proof) error {
	cAffine, err := c.affine()
	if err != nil {
		return err
	}
	p, err := proof.toInternal()
	if err != nil {
		return err
	}

	if err := kzg.Verify(setup.inner, &cAffine, b, &p); err != nil {
		xlog.Logger().Debug().Err(err).Msg("verify failed")
		return translateErr(err)
	}
	return nil
}

func translateErr(err error) error {
	switch {
	case errors.Is(err, kzg.ErrDomainUnavailable):
		return ErrSetupDomainUnavailable
	case errors.Is(err, kzg.ErrCommitLengthExceedsKey):
		return ErrCommitLengthExceedsKey
	case errors.Is(err, kzg.ErrInverseNonexistent):
		return ErrInverseNonexistent
	case errors.Is(err, kzg.ErrLengthMismatch):
		return ErrLengthMismatch
	case errors.Is(err, kzg.ErrVerifyOpeningProof):
		return ErrVerificationFailed
	default:
		return err
	}
}
