package main

import (
	"fmt"
	"time"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/privacybydesign/timelock"
	"github.com/privacybydesign/timelock/big"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle with the chosen strategy",
	Long: `Solve the puzzle 2^(2^t) mod n and print the result in hexadecimal. The modulus is read
from a file written by generate; alternatively, n can be given in decimal with --n, in which
case only the sequential strategy is available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		nstr, _ := cmd.Flags().GetString("n")
		t, _ := cmd.Flags().GetUint64("t")
		strategy, _ := cmd.Flags().GetString("strategy")

		params, solver, err := solverFor(in, nstr, t, strategy)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := solver.Solve(params)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("%x\n", res)
		timelock.Logger.WithField("strategy", solver.Name()).Info("solved in ", elapsed.Round(time.Microsecond))
		return nil
	},
}

func solverFor(in, nstr string, t uint64, strategy string) (*timelock.PuzzleParameters, timelock.PuzzleSolver, error) {
	if in == "" {
		if nstr == "" {
			return nil, nil, errors.New("either --in or --n is required")
		}
		n, ok := new(big.Int).SetString(nstr, 10)
		if !ok {
			return nil, nil, errors.Errorf("--n is not a decimal integer: %q", nstr)
		}
		if strategy != (timelock.SequentialSquaring{}).Name() {
			return nil, nil, errors.Errorf("strategy %s requires the trapdoor; use --in", strategy)
		}
		return &timelock.PuzzleParameters{N: n, T: t}, timelock.SequentialSquaring{}, nil
	}

	m, err := timelock.ReadModulusFromFile(in)
	if err != nil {
		return nil, nil, err
	}
	solvers, err := timelock.Solvers(m, strategy == "precomputed")
	if err != nil {
		return nil, nil, err
	}
	for _, s := range solvers {
		if s.Name() == strategy {
			return m.Params(t), s, nil
		}
	}
	return nil, nil, errors.Errorf("unknown strategy %q", strategy)
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("in", "i", "", "modulus file")
	solveCmd.Flags().String("n", "", "modulus in decimal, instead of --in")
	solveCmd.Flags().Uint64P("t", "t", 1000, "difficulty")
	solveCmd.Flags().StringP("strategy", "s", "sequential", "sequential, trapdoor or precomputed")
}
