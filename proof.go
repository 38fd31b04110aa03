package lvc

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/lagrangevc/lvc/internal/kzg"
)

// Proof is the constant-size opening certifying y = sum(a[i]*b[i]) for a
// commitment to a, without revealing a.
type Proof struct {
	RTau    Commitment
	HTau    Commitment
	RHatTau Commitment
	Y       [32]byte
}

func proofFromInternal(p kzg.Proof) Proof {
	return Proof{
		RTau:    commitmentFromAffine(p.RTau),
		HTau:    commitmentFromAffine(p.HTau),
		RHatTau: commitmentFromAffine(p.RHatTau),
		Y:       p.Y.Bytes(),
	}
}

func (p Proof) toInternal() (kzg.Proof, error) {
	rTau, err := p.RTau.affine()
	if err != nil {
		return kzg.Proof{}, err
	}
	hTau, err := p.HTau.affine()
	if err != nil {
		return kzg.Proof{}, err
	}
	rHatTau, err := p.RHatTau.affine()
	if err != nil {
		return kzg.Proof{}, err
	}

	var y fr.Element
	if err := y.SetBytesCanonical(p.Y[:]); err != nil {
		return kzg.Proof{}, ErrSerializationInvalid
	}

	return kzg.Proof{RTau: rTau, HTau: hTau, RHatTau: rHatTau, Y: y}, nil
}
