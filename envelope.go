package lvc

import (
	"encoding/binary"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fxamacker/cbor/v2"

	"github.com/lagrangevc/lvc/internal/kzg"
)

const (
	g1Size = 48
	g2Size = 96
)

// EncodeProof serializes proof as a CBOR map of canonical compressed
// byte strings, keyed by field name.
func EncodeProof(p Proof) ([]byte, error) {
	return cbor.Marshal(map[string][]byte{
		"r_tau":     p.RTau[:],
		"h_tau":     p.HTau[:],
		"r_hat_tau": p.RHatTau[:],
		"y":         p.Y[:],
	})
}

// DecodeProof is the inverse of EncodeProof. Every decoded commitment is
// checked for curve membership and correct subgroup, the same way
// CommitmentFromBytes and DecodeSetup validate their points.
func DecodeProof(data []byte) (Proof, error) {
	var m map[string][]byte
	if err := cbor.Unmarshal(data, &m); err != nil {
		return Proof{}, ErrSerializationInvalid
	}

	p := Proof{}
	fields := []struct {
		key string
		dst []byte
	}{
		{"r_tau", p.RTau[:]},
		{"h_tau", p.HTau[:]},
		{"r_hat_tau", p.RHatTau[:]},
		{"y", p.Y[:]},
	}
	for _, f := range fields {
		v, ok := m[f.key]
		if !ok || len(v) != len(f.dst) {
			return Proof{}, ErrSerializationInvalid
		}
		copy(f.dst, v)
	}

	if _, err := p.toInternal(); err != nil {
		return Proof{}, err
	}
	return p, nil
}

// EncodeSetup serializes the group-element portion of a setup (pk_g1,
// pk_g2, vanishing_tau) and its cardinality n as a CBOR map of byte
// strings, keyed by field name. pk_g1 and pk_g2 are the concatenation of
// each element's canonical compressed encoding.
func EncodeSetup(s *Setup) ([]byte, error) {
	pkG1 := make([]byte, 0, len(s.inner.PkG1)*g1Size)
	for _, p := range s.inner.PkG1 {
		b := p.Bytes()
		pkG1 = append(pkG1, b[:]...)
	}
	pkG2 := make([]byte, 0, len(s.inner.PkG2)*g2Size)
	for _, p := range s.inner.PkG2 {
		b := p.Bytes()
		pkG2 = append(pkG2, b[:]...)
	}
	vanishingTau := s.inner.VanishingTau.Bytes()

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, s.inner.Domain.Cardinality)

	return cbor.Marshal(map[string][]byte{
		"pk_g1":         pkG1,
		"pk_g2":         pkG2,
		"vanishing_tau": vanishingTau[:],
		"n":             n,
	})
}

// DecodeSetup is the inverse of EncodeSetup. Every decoded point is
// checked for curve membership and correct subgroup.
func DecodeSetup(data []byte) (*Setup, error) {
	var m map[string][]byte
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, ErrSerializationInvalid
	}

	nBytes, ok := m["n"]
	if !ok || len(nBytes) != 8 {
		return nil, ErrSerializationInvalid
	}
	cardinality := binary.BigEndian.Uint64(nBytes)

	domain, err := kzg.NewDomain(cardinality)
	if err != nil {
		return nil, translateErr(err)
	}

	pkG1Bytes, ok := m["pk_g1"]
	if !ok || len(pkG1Bytes)%g1Size != 0 {
		return nil, ErrSerializationInvalid
	}
	pkG1 := make([]bls12381.G1Affine, len(pkG1Bytes)/g1Size)
	for i := range pkG1 {
		var raw [g1Size]byte
		copy(raw[:], pkG1Bytes[i*g1Size:(i+1)*g1Size])
		if _, err := pkG1[i].SetBytes(raw[:]); err != nil {
			return nil, ErrSerializationInvalid
		}
	}

	pkG2Bytes, ok := m["pk_g2"]
	if !ok || len(pkG2Bytes)%g2Size != 0 {
		return nil, ErrSerializationInvalid
	}
	pkG2 := make([]bls12381.G2Affine, len(pkG2Bytes)/g2Size)
	for i := range pkG2 {
		var raw [g2Size]byte
		copy(raw[:], pkG2Bytes[i*g2Size:(i+1)*g2Size])
		if _, err := pkG2[i].SetBytes(raw[:]); err != nil {
			return nil, ErrSerializationInvalid
		}
	}

	vanishingBytes, ok := m["vanishing_tau"]
	if !ok || len(vanishingBytes) != g2Size {
		return nil, ErrSerializationInvalid
	}
	var vanishingTau bls12381.G2Affine
	if _, err := vanishingTau.SetBytes(vanishingBytes); err != nil {
		return nil, ErrSerializationInvalid
	}

	return &Setup{inner: &kzg.Setup{
		PkG1:         pkG1,
		PkG2:         pkG2,
		VanishingTau: vanishingTau,
		Domain:       domain,
	}}, nil
}
