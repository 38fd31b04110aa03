package lvc

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Commitment is a compressed, canonical BLS12-381 G1 point: C = P(tau)*g1
// for the polynomial P interpolating a vector's entries over the setup's
// domain.
type Commitment [48]byte

func commitmentFromAffine(p bls12381.G1Affine) Commitment {
	return Commitment(p.Bytes())
}

// affine decodes c into a group element, checking that it lies on the curve
// and in the correct subgroup.
func (c Commitment) affine() (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(c[:]); err != nil {
		return bls12381.G1Affine{}, ErrSerializationInvalid
	}
	return p, nil
}

// Bytes returns the compressed encoding of the commitment.
func (c Commitment) Bytes() [48]byte {
	return [48]byte(c)
}

// CommitmentFromBytes decodes a compressed encoding previously produced by
// Commitment.Bytes, rejecting anything not on-curve or not in the G1
// subgroup.
func CommitmentFromBytes(b [48]byte) (Commitment, error) {
	c := Commitment(b)
	if _, err := c.affine(); err != nil {
		return Commitment{}, err
	}
	return c, nil
}
