package lvc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCommitmentRoundTrip(t *testing.T) {
	s := newTestSetup(t, 4, 7)
	want, err := Commit(s, frVec(3, 5, 7, 11))
	require.NoError(t, err)

	got, err := CommitmentFromBytes(want.Bytes())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("commitment changed across a Bytes/FromBytes round trip (-want +got):\n%s", diff)
	}
}

func TestCommitmentFromBytesRejectsOffCurvePoint(t *testing.T) {
	var raw [48]byte
	for i := range raw {
		raw[i] = 0xff
	}
	_, err := CommitmentFromBytes(raw)
	require.ErrorIs(t, err, ErrSerializationInvalid)
}
