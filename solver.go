package timelock

import (
	"github.com/privacybydesign/timelock/big"
)

type (
	// PuzzleParameters determine a puzzle: its result is 2^(2^T) mod N.
	PuzzleParameters struct {
		N *big.Int
		T uint64
	}

	// PuzzleSolver computes the result of a puzzle. All implementations compute the same
	// function; they differ only in cost and in what they need to know about N.
	PuzzleSolver interface {
		Solve(params *PuzzleParameters) (*big.Int, error)
		Name() string
	}

	// SequentialSquaring solves a puzzle by T sequential modular squarings of 2. It needs
	// nothing but N, and no party is known to do fundamentally better without the trapdoor.
	SequentialSquaring struct{}

	// TrapdoorShortcut solves a puzzle using Euler's theorem: as 2 and N are coprime,
	// 2^(2^T) = 2^(2^T mod Phi) mod N. Its cost is independent of T.
	TrapdoorShortcut struct {
		Phi *big.Int
	}
)

func (SequentialSquaring) Name() string { return "sequential" }

func (SequentialSquaring) Solve(params *PuzzleParameters) (*big.Int, error) {
	return SolveSequential(params.T, params.N)
}

func (TrapdoorShortcut) Name() string { return "trapdoor" }

func (ts TrapdoorShortcut) Solve(params *PuzzleParameters) (*big.Int, error) {
	return SolveTrapdoor(params.T, params.N, ts.Phi)
}

// SolveSequential computes 2^(2^t) mod n by squaring 2 t times modulo n.
func SolveSequential(t uint64, n *big.Int) (*big.Int, error) {
	if err := checkPositive("n", n); err != nil {
		return nil, err
	}

	// Alternate between two buffers so that no squaring aliases its own output.
	res := new(big.Int).Mod(bigTWO, n)
	sq := new(big.Int)
	for i := uint64(0); i < t; i++ {
		sq.Mul(res, res)
		res.Mod(sq, n)
	}
	return res, nil
}

// SolveTrapdoor computes 2^(2^t) mod n as 2^b mod n, with b = 2^t mod phi.
func SolveTrapdoor(t uint64, n, phi *big.Int) (*big.Int, error) {
	b, err := trapdoorExponent(t, n, phi)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Exp(bigTWO, b, n), nil
}

func trapdoorExponent(t uint64, n, phi *big.Int) (*big.Int, error) {
	if err := checkPositive("n", n); err != nil {
		return nil, err
	}
	if err := checkPositive("phi", phi); err != nil {
		return nil, err
	}
	e := new(big.Int).SetUint64(t)
	return new(big.Int).Exp(bigTWO, e, phi), nil
}

func checkPositive(name string, x *big.Int) error {
	if x == nil {
		return invalidInput("%s is missing", name)
	}
	if x.Sign() <= 0 {
		return invalidInput("%s must be positive, got %s", name, x)
	}
	return nil
}

// Solvers returns a solver of each kind for the given modulus; the precomputed one
// only if precompute is set.
func Solvers(m *Modulus, precompute bool) ([]PuzzleSolver, error) {
	solvers := []PuzzleSolver{SequentialSquaring{}, TrapdoorShortcut{Phi: m.Phi}}
	if !precompute {
		return solvers, nil
	}
	pt, err := NewPrecomputedTrapdoor(m)
	if err != nil {
		return nil, err
	}
	return append(solvers, pt), nil
}
