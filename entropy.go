package timelock

import (
	"io"

	"github.com/privacybydesign/timelock/internal/common"
)

// DeterministicSource returns an entropy source that yields the same stream for the same seed,
// for reproducible moduli in tests and benchmarks. It is safe for concurrent use, but then the
// order in which readers consume the stream is not deterministic. Use crypto/rand.Reader for
// any modulus that protects a real puzzle.
func DeterministicSource(seed *[32]byte) (io.Reader, error) {
	rng, err := common.NewCPRNG(seed)
	if err != nil {
		return nil, err
	}
	return rng, nil
}
