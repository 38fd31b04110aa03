package lvc

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestSetup(t *testing.T, n uint64, tauSeed uint64) *Setup {
	t.Helper()
	var tau fr.Element
	tau.SetUint64(tauSeed)
	s, err := NewSetup(n, WithTau(tau))
	require.NoError(t, err)
	return s
}

func TestNewSetupDeterministicGivenTau(t *testing.T) {
	s1 := newTestSetup(t, 4, 42)
	s2 := newTestSetup(t, 4, 42)

	b1, err := EncodeSetup(s1)
	require.NoError(t, err)
	b2, err := EncodeSetup(s2)
	require.NoError(t, err)

	if diff := cmp.Diff(b1, b2); diff != "" {
		t.Errorf("identically-seeded setups encode differently (-s1 +s2):\n%s", diff)
	}
}

func TestNewSetupRoundsUpDomainSize(t *testing.T) {
	s, err := NewSetup(5)
	require.NoError(t, err)
	require.Equal(t, uint64(8), s.Size())
}

func TestNewSetupDomainUnavailable(t *testing.T) {
	_, err := NewSetup(1 << 40)
	require.ErrorIs(t, err, ErrSetupDomainUnavailable)
}
