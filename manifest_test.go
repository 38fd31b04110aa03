package lvc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestManifestRoundTrip(t *testing.T) {
	s := newTestSetup(t, 4, 7)
	want := ManifestFor(s, "test seed 7")

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalManifestYAML(data)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("manifest changed across a marshal/unmarshal round trip (-want +got):\n%s", diff)
	}
}

func TestManifestForReportsSetupShape(t *testing.T) {
	s := newTestSetup(t, 4, 7)
	m := ManifestFor(s, "provenance note")

	require.Equal(t, s.Size(), m.Cardinality)
	require.Equal(t, uint64(len(s.inner.PkG1)), m.SRSLength)
	require.Equal(t, "provenance note", m.Provenance)
}
