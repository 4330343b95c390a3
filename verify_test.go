package timelock

import (
	"crypto/rand"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/require"

	"github.com/privacybydesign/timelock/big"
)

func TestVerify(t *testing.T) {
	m := testModulus77(t)
	for _, tt := range equivalenceTs {
		require.NoError(t, Verify(tt, m.N, m.Phi))
	}
}

func TestVerifyWrongTotient(t *testing.T) {
	// 2^(2^10 mod 61) = 2^48 = 36 mod 77, but the puzzle result is 16
	err := Verify(10, big.NewInt(77), big.NewInt(61))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEquivalenceViolation))
	require.False(t, errors.Is(err, ErrInvalidInput))
	require.Contains(t, err.Error(), "t=10")

	m, err := GenerateModulus(rand.Reader, 128)
	require.NoError(t, err)
	wrong := new(big.Int).Add(m.Phi, big.NewInt(2))
	require.True(t, errors.Is(Verify(1000, m.N, wrong), ErrEquivalenceViolation))
}

func TestVerifyInvalidInput(t *testing.T) {
	err := Verify(3, big.NewInt(0), big.NewInt(60))
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.False(t, errors.Is(err, ErrEquivalenceViolation))

	err = Verify(3, big.NewInt(77), nil)
	require.True(t, errors.Is(err, ErrInvalidInput))

	require.True(t, errors.Is(VerifySolvers(testModulus77(t).Params(3)), ErrInvalidInput))
}

func TestVerifySolvers(t *testing.T) {
	m := testModulus77(t)
	require.NoError(t, VerifySolvers(m.Params(1000), testSolvers(t, m)...))

	err := VerifySolvers(m.Params(10), SequentialSquaring{}, TrapdoorShortcut{Phi: big.NewInt(61)})
	require.True(t, errors.Is(err, ErrEquivalenceViolation))
	require.Contains(t, err.Error(), "trapdoor")
}
