package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-errors/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/privacybydesign/timelock"
	"github.com/privacybydesign/timelock/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the cost of the solving strategies",
	Long: `Generate sample moduli, verify each of them, and time every strategy over a menu of
difficulties. Settings are taken from flags, TIMELOCK_* environment variables and the
config file, in that order of precedence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBenchConfig()
		if err != nil {
			return err
		}
		report, err := bench.Run(cfg, rand.Reader)
		if err != nil {
			return err
		}
		render(os.Stdout, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	def := bench.DefaultConfig()
	ts := make([]string, len(def.Ts))
	for i, t := range def.Ts {
		ts[i] = strconv.FormatUint(t, 10)
	}

	flags := benchCmd.Flags()
	flags.Int("prime-bits", def.PrimeBits, "size in bits of each prime factor")
	flags.StringSlice("ts", ts, "difficulties to measure")
	flags.Int("samples", def.Samples, "number of sample moduli")
	flags.Int("iterations", def.Iterations, "solves per strategy and difficulty")
	flags.Uint64("verify-t", def.VerifyT, "difficulty at which samples are verified (0: largest of --ts)")
	flags.Bool("precompute", def.Precompute, "also measure the precomputed trapdoor")

	for _, name := range []string{"prime-bits", "ts", "samples", "iterations", "verify-t", "precompute"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func loadBenchConfig() (*bench.Config, error) {
	cfg := &bench.Config{
		PrimeBits:  v.GetInt("prime-bits"),
		Samples:    v.GetInt("samples"),
		Iterations: v.GetInt("iterations"),
		Precompute: v.GetBool("precompute"),
	}

	verifyT, err := strconv.ParseUint(v.GetString("verify-t"), 10, 64)
	if err != nil {
		return nil, errors.WrapPrefix(err, "invalid verify-t", 0)
	}
	cfg.VerifyT = verifyT

	for _, s := range v.GetStringSlice("ts") {
		t, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, errors.WrapPrefix(err, "invalid difficulty in ts", 0)
		}
		cfg.Ts = append(cfg.Ts, t)
	}

	return cfg, cfg.Validate()
}

func render(w io.Writer, report *bench.Report) {
	fmt.Fprintf(w, "\n\nBENCHMARKS: %d-bit primes, %d samples\n", report.PrimeBits, len(report.Fingerprints))

	sequential := timelock.SequentialSquaring{}.Name()
	data := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		speedup := ""
		if row.Strategy != sequential {
			if seq, ok := report.Row(row.T, sequential); ok && row.Mean() > 0 {
				speedup = fmt.Sprintf("%.1fx", float64(seq.Mean())/float64(row.Mean()))
			}
		}
		data = append(data, []string{
			strconv.FormatUint(row.T, 10),
			row.Strategy,
			strconv.Itoa(row.Runs),
			row.Mean().Round(time.Microsecond).String(),
			row.Min.Round(time.Microsecond).String(),
			row.Max.Round(time.Microsecond).String(),
			speedup,
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"t", "strategy", "runs", "mean", "min", "max", "speedup"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
