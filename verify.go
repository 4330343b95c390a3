package timelock

import (
	"fmt"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/timelock/big"
)

// Verify computes the puzzle of difficulty t over n with both SequentialSquaring and
// TrapdoorShortcut, and returns an error wrapping ErrEquivalenceViolation if they differ.
// Invalid input is reported as such. A modulus that fails this check must not be used.
func Verify(t uint64, n, phi *big.Int) error {
	return VerifySolvers(&PuzzleParameters{N: n, T: t}, SequentialSquaring{}, TrapdoorShortcut{Phi: phi})
}

// VerifySolvers checks that all given solvers compute the same result for params.
func VerifySolvers(params *PuzzleParameters, solvers ...PuzzleSolver) error {
	if len(solvers) == 0 {
		return invalidInput("no solvers to compare")
	}
	expected, err := solvers[0].Solve(params)
	if err != nil {
		return err
	}
	for _, s := range solvers[1:] {
		res, err := s.Solve(params)
		if err != nil {
			return err
		}
		if res.Cmp(expected) != 0 {
			return errors.WrapPrefix(ErrEquivalenceViolation, fmt.Sprintf(
				"t=%d over %d-bit modulus: %s returned %x, %s returned %x",
				params.T, params.N.BitLen(), solvers[0].Name(), expected, s.Name(), res,
			), 0)
		}
	}
	return nil
}
