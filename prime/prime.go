// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prime generates random probable primes of an exact bit length, by drawing a random
// odd starting point with its top bit set and searching upward for the next probable prime.
package prime

import (
	"io"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/privacybydesign/timelock/big"
)

// SmallPrimes is a list of small prime numbers that allows us to rapidly
// exclude some fraction of composite candidates when searching for a random
// prime. This list is truncated at the point where SmallPrimesProduct exceeds
// a uint64. It does not include two because we ensure that the candidates are
// odd by construction.
var SmallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// SmallPrimesProduct is the product of the values in SmallPrimes and allows us
// to reduce a candidate prime by this number and then determine whether it's
// coprime with all the elements of SmallPrimes without further big.Int
// operations.
var SmallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// MillerRabinRounds is the number of Miller-Rabin rounds performed on each candidate
// (in addition to the Baillie-PSW test that ProbablyPrime always does).
const MillerRabinRounds = 20

var (
	ErrTooSmall = errors.New("prime size must be at least 2-bit")

	two = big.NewInt(2)
)

// Generate returns a random probable prime of exactly bits bits. It reads ceil(bits/8) bytes
// from rand, forces the top and bottom bits to 1 and returns NextPrime of the result. The
// only possible errors are ErrTooSmall and a failure to read from rand.
func Generate(rand io.Reader, bits int) (*big.Int, error) {
	return generate(rand, bits, nil)
}

func generate(rand io.Reader, bits int, stop <-chan struct{}) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrTooSmall
	}

	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}

	bytes := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil, errors.WrapPrefix(err, "failed to read prime candidate", 0)
	}

	// Clear bits in the first byte to make sure the candidate has a size <= bits,
	// then set the highest remaining one so that it has exactly that size.
	bytes[0] &= uint8(int(1<<b) - 1)
	bytes[0] |= 1 << (b - 1)
	// Make the value odd since an even number this large certainly isn't prime.
	bytes[len(bytes)-1] |= 1

	p, candidates := nextPrime(new(big.Int).SetBytes(bytes), stop)
	if p == nil {
		return nil, nil
	}
	Logger.WithFields(logrus.Fields{"bits": bits, "candidates": candidates}).Trace("found prime")
	return p, nil
}

// NextPrime returns the smallest probable prime that is larger than or equal to x.
// x is not modified.
func NextPrime(x *big.Int) *big.Int {
	p, _ := nextPrime(x, nil)
	return p
}

// nextPrime searches upward from x. Every 1000 candidates it checks whether it has been
// asked to stop, in which case it returns nil.
func nextPrime(x *big.Int, stop <-chan struct{}) (*big.Int, int) {
	if x.Cmp(two) <= 0 {
		return big.NewInt(2), 0
	}

	p := new(big.Int).Set(x)
	if p.Bit(0) == 0 {
		p.SetBit(p, 0, 1)
	}
	bigMod := new(big.Int)

	i := 0
NextCandidate:
	for ; ; p.Add(p, two) {
		i++
		if stop != nil && i%1000 == 0 {
			select {
			case <-stop:
				return nil, i
			default: // just continue with the loop
			}
		}

		// Calculate the value mod the product of SmallPrimes. If it's a multiple of any of these
		// primes we discard this candidate. This check is much cheaper than ProbablyPrime() below.
		bigMod.Mod(p, SmallPrimesProduct)
		mod := bigMod.Uint64()
		for _, prime := range SmallPrimes {
			if mod%uint64(prime) == 0 && (p.BitLen() > 6 || mod != uint64(prime)) {
				continue NextCandidate
			}
		}

		if p.ProbablyPrime(MillerRabinRounds) {
			return p, i
		}
	}
}
