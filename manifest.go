package lvc

import (
	"gopkg.in/yaml.v2"
)

// Manifest is a human-readable, non-secret description of a setup, meant
// for operators auditing which structured reference string a deployment is
// running against. It carries no group-element data and is not part of the
// serialization round-trip property Commitment/Proof/Setup are held to.
type Manifest struct {
	Cardinality uint64 `yaml:"cardinality"`
	SRSLength   uint64 `yaml:"srs_length"`
	Provenance  string `yaml:"provenance"`
}

// ManifestFor describes setup: its cardinality, the length of its
// powers-of-tau public keys, and a free-text provenance note (e.g. which
// ceremony or test seed produced it).
func ManifestFor(s *Setup, provenance string) Manifest {
	return Manifest{
		Cardinality: s.inner.Domain.Cardinality,
		SRSLength:   uint64(len(s.inner.PkG1)),
		Provenance:  provenance,
	}
}

// Marshal encodes the manifest for an operator-facing artifact.
func (m Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// UnmarshalManifestYAML decodes a manifest previously produced by
// Manifest.Marshal.
func UnmarshalManifestYAML(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
