package timelock

import (
	"github.com/bwesterb/go-exptable"

	"github.com/privacybydesign/timelock/big"
)

// Window size in bits of the fixed-base exponentiation table. The table for a 6144-bit
// modulus takes roughly 18MB.
const tableWindow = 4

// PrecomputedTrapdoor is a TrapdoorShortcut for a single modulus, which speeds up the second
// exponentiation 2^b mod N by a precomputed table of powers of 2 modulo N. Building the table
// costs a few exponentiations, so it pays off when many puzzles are solved over one modulus.
// It is safe for concurrent use.
type PrecomputedTrapdoor struct {
	n     *big.Int
	phi   *big.Int
	table exptable.Table
}

// NewPrecomputedTrapdoor computes the table for the given modulus.
func NewPrecomputedTrapdoor(m *Modulus) (*PrecomputedTrapdoor, error) {
	if err := checkPositive("n", m.N); err != nil {
		return nil, err
	}
	if err := checkPositive("phi", m.Phi); err != nil {
		return nil, err
	}
	if m.Phi.Cmp(m.N) >= 0 {
		// exponents are reduced mod phi, and the table covers exponents below N
		return nil, invalidInput("phi must be smaller than n")
	}

	pt := &PrecomputedTrapdoor{
		n:   new(big.Int).Set(m.N),
		phi: new(big.Int).Set(m.Phi),
	}
	base := new(big.Int).Mod(bigTWO, pt.n)
	pt.table.Compute(base.Go(), pt.n.Go(), tableWindow)
	return pt, nil
}

func (*PrecomputedTrapdoor) Name() string { return "precomputed" }

func (pt *PrecomputedTrapdoor) Solve(params *PuzzleParameters) (*big.Int, error) {
	if err := checkPositive("n", params.N); err != nil {
		return nil, err
	}
	if params.N.Cmp(pt.n) != 0 {
		return nil, invalidInput("table was computed for a different modulus")
	}

	b, err := trapdoorExponent(params.T, pt.n, pt.phi)
	if err != nil {
		return nil, err
	}
	ret := new(big.Int)
	if b.Sign() == 0 {
		return ret.Mod(bigONE, pt.n), nil
	}
	pt.table.Exp(ret.Go(), b.Go())
	return ret, nil
}
