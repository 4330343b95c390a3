package timelock

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/require"

	"github.com/privacybydesign/timelock/big"
)

// n = 7 * 11
func testModulus77(t testing.TB) *Modulus {
	m, err := NewModulus(big.NewInt(7), big.NewInt(11))
	require.NoError(t, err)
	require.Equal(t, uint64(77), m.N.Uint64())
	require.Equal(t, uint64(60), m.Phi.Uint64())
	return m
}

func testSolvers(t testing.TB, m *Modulus) []PuzzleSolver {
	solvers, err := Solvers(m, true)
	require.NoError(t, err)
	require.Len(t, solvers, 3)
	return solvers
}

func TestConcreteScenario(t *testing.T) {
	m := testModulus77(t)

	// 2 -> 4 -> 16 -> 256 mod 77 = 25; and 2^(2^3 mod 60) = 2^8 = 256 mod 77 = 25
	for _, s := range testSolvers(t, m) {
		res, err := s.Solve(m.Params(3))
		require.NoError(t, err)
		require.Equal(t, uint64(25), res.Uint64(), s.Name())
	}
}

func TestSmallModulus(t *testing.T) {
	m := testModulus77(t)
	expected := map[uint64]uint64{0: 2, 1: 4, 2: 16, 3: 25, 4: 9, 6: 16, 10: 16, 1000: 9}

	for _, s := range testSolvers(t, m) {
		for tt, e := range expected {
			res, err := s.Solve(m.Params(tt))
			require.NoError(t, err)
			require.Equal(t, e, res.Uint64(), "%s, t=%d", s.Name(), tt)
		}
	}
}

func TestZeroDifficulty(t *testing.T) {
	for _, n := range []int64{3, 5, 9, 15, 77, 1000001} {
		res, err := SolveSequential(0, big.NewInt(n))
		require.NoError(t, err)
		require.Equal(t, uint64(2), res.Uint64(), "n=%d", n)
	}

	// reduced, not just returned
	res, err := SolveSequential(0, big.NewInt(1))
	require.NoError(t, err)
	require.Zero(t, res.Sign())
}

func TestTrapdoorDependsOnlyOnExponent(t *testing.T) {
	m := testModulus77(t)

	// 2^4 mod 60 = 2^(10^9) mod 60 = 16
	small, err := SolveTrapdoor(4, m.N, m.Phi)
	require.NoError(t, err)
	large, err := SolveTrapdoor(1000000000, m.N, m.Phi)
	require.NoError(t, err)
	require.Zero(t, small.Cmp(large))
	require.Equal(t, uint64(9), large.Uint64())

	// 2^2 mod 60 = 2^6 mod 60 = 4
	a, err := SolveTrapdoor(2, m.N, m.Phi)
	require.NoError(t, err)
	b, err := SolveTrapdoor(6, m.N, m.Phi)
	require.NoError(t, err)
	require.Zero(t, a.Cmp(b))

	pt, err := NewPrecomputedTrapdoor(m)
	require.NoError(t, err)
	res, err := pt.Solve(m.Params(1000000000))
	require.NoError(t, err)
	require.Zero(t, res.Cmp(large))
}

func TestResultRange(t *testing.T) {
	m, err := GenerateModulus(rand.Reader, 128)
	require.NoError(t, err)

	for _, s := range testSolvers(t, m) {
		for _, tt := range []uint64{0, 1, 7, 64, 513} {
			res, err := s.Solve(m.Params(tt))
			require.NoError(t, err)
			require.GreaterOrEqual(t, res.Sign(), 0)
			require.Equal(t, -1, res.Cmp(m.N), "%s result out of range for t=%d", s.Name(), tt)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	phi := big.NewInt(60)
	for _, n := range []*big.Int{nil, big.NewInt(0), big.NewInt(-77)} {
		_, err := SolveSequential(3, n)
		require.True(t, errors.Is(err, ErrInvalidInput), "n=%v", n)
		_, err = SolveTrapdoor(3, n, phi)
		require.True(t, errors.Is(err, ErrInvalidInput), "n=%v", n)
	}

	n := big.NewInt(77)
	for _, phi := range []*big.Int{nil, big.NewInt(0), big.NewInt(-60)} {
		_, err := SolveTrapdoor(3, n, phi)
		require.True(t, errors.Is(err, ErrInvalidInput), "phi=%v", phi)
		_, err = TrapdoorShortcut{Phi: phi}.Solve(&PuzzleParameters{N: n, T: 3})
		require.True(t, errors.Is(err, ErrInvalidInput), "phi=%v", phi)
	}
}

func TestPrecomputedTrapdoorRejectsOtherModulus(t *testing.T) {
	pt, err := NewPrecomputedTrapdoor(testModulus77(t))
	require.NoError(t, err)

	_, err = pt.Solve(&PuzzleParameters{N: big.NewInt(91), T: 3})
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewPrecomputedTrapdoor(&Modulus{N: big.NewInt(77), Phi: big.NewInt(77)})
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestSolverNames(t *testing.T) {
	names := map[string]bool{}
	for _, s := range testSolvers(t, testModulus77(t)) {
		names[s.Name()] = true
	}
	require.Equal(t, map[string]bool{"sequential": true, "trapdoor": true, "precomputed": true}, names)

	solvers, err := Solvers(testModulus77(t), false)
	require.NoError(t, err)
	require.Len(t, solvers, 2)
}

var benchmarkTs = []uint64{1000, 10000, 100000}

func benchmarkSolver(b *testing.B, build func(*Modulus) PuzzleSolver) {
	m, err := GenerateModulus(rand.Reader, 1024)
	require.NoError(b, err)
	solver := build(m)

	for _, tt := range benchmarkTs {
		params := m.Params(tt)
		b.Run(fmt.Sprintf("t=%d", tt), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := solver.Solve(params); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSequentialSquaring(b *testing.B) {
	benchmarkSolver(b, func(*Modulus) PuzzleSolver { return SequentialSquaring{} })
}

func BenchmarkTrapdoorShortcut(b *testing.B) {
	benchmarkSolver(b, func(m *Modulus) PuzzleSolver { return TrapdoorShortcut{Phi: m.Phi} })
}

func BenchmarkPrecomputedTrapdoor(b *testing.B) {
	benchmarkSolver(b, func(m *Modulus) PuzzleSolver {
		pt, err := NewPrecomputedTrapdoor(m)
		require.NoError(b, err)
		return pt
	})
}
