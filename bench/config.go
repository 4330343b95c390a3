package bench

import (
	"github.com/go-errors/errors"

	"github.com/privacybydesign/timelock"
)

const (
	MinPrimeBits = 16
	MaxSamples   = 1 << 10
)

// DefaultTs is the menu of difficulties measured by default.
var DefaultTs = []uint64{
	1 * 1000,
	2 * 1000,
	5 * 1000,
	10 * 1000,
	20 * 1000,
	40 * 1000,
	60 * 1000,
	80 * 1000,
	100 * 1000,
	120 * 1000,
}

const (
	DefaultSamples    = 10
	DefaultIterations = 10
)

type Config struct {
	PrimeBits  int      `mapstructure:"prime-bits"`
	Ts         []uint64 `mapstructure:"ts"`
	Samples    int      `mapstructure:"samples"`
	Iterations int      `mapstructure:"iterations"`

	// VerifyT is the difficulty at which each sample modulus is checked before it is
	// measured. Zero means the largest of Ts.
	VerifyT uint64 `mapstructure:"verify-t"`

	// Precompute enables measuring PrecomputedTrapdoor next to the other strategies.
	Precompute bool `mapstructure:"precompute"`
}

func DefaultConfig() *Config {
	return &Config{
		PrimeBits:  timelock.DefaultPrimeBits,
		Ts:         append([]uint64(nil), DefaultTs...),
		Samples:    DefaultSamples,
		Iterations: DefaultIterations,
		Precompute: true,
	}
}

func (cfg *Config) Validate() error {
	if cfg.PrimeBits < MinPrimeBits {
		return errors.Errorf("invalid `PrimeBits`; expected: >= %d, given: %d", MinPrimeBits, cfg.PrimeBits)
	}
	if len(cfg.Ts) == 0 {
		return errors.Errorf("invalid `Ts`; expected: at least one difficulty")
	}
	if cfg.Samples < 1 {
		return errors.Errorf("invalid `Samples`; expected: >= 1, given: %d", cfg.Samples)
	}
	if cfg.Samples > MaxSamples {
		return errors.Errorf("invalid `Samples`; expected: <= %d, given: %d", MaxSamples, cfg.Samples)
	}
	if cfg.Iterations < 1 {
		return errors.Errorf("invalid `Iterations`; expected: >= 1, given: %d", cfg.Iterations)
	}
	if solves := cfg.solves(); solves < cfg.Samples {
		return errors.Errorf("invalid `Samples`; expected: <= %d timed solves, given: %d", solves, cfg.Samples)
	}
	return nil
}

// solves returns the number of timed solves in a run.
func (cfg *Config) solves() int {
	strategies := 2
	if cfg.Precompute {
		strategies++
	}
	return len(cfg.Ts) * strategies * cfg.Iterations
}

// verifyT returns the difficulty at which sample moduli are verified.
func (cfg *Config) verifyT() uint64 {
	if cfg.VerifyT != 0 {
		return cfg.VerifyT
	}
	max := cfg.Ts[0]
	for _, t := range cfg.Ts[1:] {
		if t > max {
			max = t
		}
	}
	return max
}
