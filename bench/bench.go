// Package bench measures the cost of solving time-lock puzzles with each PuzzleSolver, over
// a menu of difficulties and a number of freshly generated sample moduli.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/privacybydesign/timelock"
)

type (
	// Row holds the timings of one strategy at one difficulty.
	Row struct {
		T        uint64
		Strategy string
		Runs     int
		Total    time.Duration
		Min      time.Duration
		Max      time.Duration
	}

	// Report is the outcome of Run. SampleRuns holds the number of timed solves per
	// sample modulus, in the order of Fingerprints.
	Report struct {
		PrimeBits    int
		Fingerprints []string
		SampleRuns   []int
		Rows         []Row
	}

	sample struct {
		modulus *timelock.Modulus
		solvers []timelock.PuzzleSolver
	}
)

func (r *Row) add(d time.Duration) {
	if r.Runs == 0 || d < r.Min {
		r.Min = d
	}
	if d > r.Max {
		r.Max = d
	}
	r.Runs++
	r.Total += d
}

// Mean returns the average duration of a solve.
func (r Row) Mean() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Runs)
}

// Row returns the row for the given difficulty and strategy.
func (r *Report) Row(t uint64, strategy string) (Row, bool) {
	for _, row := range r.Rows {
		if row.T == t && row.Strategy == strategy {
			return row, true
		}
	}
	return Row{}, false
}

// Speedup returns how many times faster the trapdoor strategy was than sequential squaring
// at difficulty t, or 0 if either was not measured.
func (r *Report) Speedup(t uint64) float64 {
	seq, ok := r.Row(t, timelock.SequentialSquaring{}.Name())
	if !ok {
		return 0
	}
	trapdoor, ok := r.Row(t, timelock.TrapdoorShortcut{}.Name())
	if !ok || trapdoor.Mean() == 0 {
		return 0
	}
	return float64(seq.Mean()) / float64(trapdoor.Mean())
}

// Run generates cfg.Samples moduli from rand, checks that all strategies agree on each of
// them, and then times cfg.Iterations solves per strategy and difficulty. Consecutive solves
// cycle through the sample moduli across all rows, so every sample is measured. A modulus on which the strategies disagree aborts the run.
func Run(cfg *Config, rand io.Reader) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	Logger.WithFields(logrus.Fields{"bits": cfg.PrimeBits, "samples": cfg.Samples}).Info("generating sample moduli")
	moduli, err := timelock.GenerateModuli(rand, cfg.PrimeBits, cfg.Samples)
	if err != nil {
		return nil, err
	}

	samples, err := prepare(moduli, cfg.verifyT(), cfg.Precompute)
	if err != nil {
		return nil, err
	}

	report := &Report{PrimeBits: cfg.PrimeBits, SampleRuns: make([]int, len(samples))}
	for _, s := range samples {
		report.Fingerprints = append(report.Fingerprints, s.modulus.Fingerprint())
	}

	next := 0
	for _, t := range cfg.Ts {
		for k, solver := range samples[0].solvers {
			row := Row{T: t, Strategy: solver.Name()}
			for i := 0; i < cfg.Iterations; i++ {
				j := next % len(samples)
				next++
				s := samples[j]
				params := s.modulus.Params(t)

				start := time.Now()
				if _, err = s.solvers[k].Solve(params); err != nil {
					return nil, err
				}
				row.add(time.Since(start))
				report.SampleRuns[j]++
			}

			Logger.WithFields(logrus.Fields{
				"t":        t,
				"strategy": row.Strategy,
				"mean":     row.Mean(),
			}).Debug("measured")
			report.Rows = append(report.Rows, row)
		}
	}
	return report, nil
}

func prepare(moduli []*timelock.Modulus, verifyT uint64, precompute bool) ([]sample, error) {
	samples := make([]sample, 0, len(moduli))
	for i, m := range moduli {
		solvers, err := timelock.Solvers(m, precompute)
		if err != nil {
			return nil, err
		}
		if err = timelock.VerifySolvers(m.Params(verifyT), solvers...); err != nil {
			return nil, errors.WrapPrefix(err, fmt.Sprintf("sample %d (%s)", i, m.Fingerprint()), 0)
		}
		Logger.WithFields(logrus.Fields{"sample": i, "fingerprint": m.Fingerprint(), "t": verifyT}).Debug("sample verified")
		samples = append(samples, sample{modulus: m, solvers: solvers})
	}
	return samples, nil
}
