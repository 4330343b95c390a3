package timelock

import (
	"io"

	"github.com/multiformats/go-multihash"
	"github.com/sirupsen/logrus"

	"github.com/privacybydesign/timelock/big"
	"github.com/privacybydesign/timelock/prime"
)

// DefaultPrimeBits is the size of each of the two prime factors of a modulus in the reference
// configuration.
const DefaultPrimeBits = 3072

var (
	bigONE = big.NewInt(1)
	bigTWO = big.NewInt(2)
)

// Modulus is an RSA modulus N = P*Q together with its trapdoor Phi = (P-1)(Q-1).
// Phi, P and Q must be kept by the party that sets up puzzles; whoever learns any of them
// can skip the sequential work.
type Modulus struct {
	N   *big.Int `cbor:"1,keyasint" json:"n"`
	Phi *big.Int `cbor:"2,keyasint" json:"phi"`
	P   *big.Int `cbor:"3,keyasint" json:"p"`
	Q   *big.Int `cbor:"4,keyasint" json:"q"`
}

// GenerateModulus generates two independent random primes of the given size from rand and
// returns the resulting modulus. The primes are not checked for being distinct: at the sizes
// this is meant for, a collision has negligible probability. Verify the result before trusting
// it.
func GenerateModulus(rand io.Reader, bits int) (*Modulus, error) {
	if bits < 2 {
		return nil, invalidInput("prime size must be at least 2 bits, got %d", bits)
	}

	p, err := prime.Generate(rand, bits)
	if err != nil {
		return nil, fatalSetup(err, "failed to generate p")
	}
	q, err := prime.Generate(rand, bits)
	if err != nil {
		return nil, fatalSetup(err, "failed to generate q")
	}

	m := newModulus(p, q)
	Logger.WithFields(logrus.Fields{"bits": bits, "fingerprint": m.Fingerprint()}).Debug("generated modulus")
	return m, nil
}

// GenerateModuli generates count moduli with factors of the given size, generating primes on
// all CPU cores. rand must be safe for concurrent use.
func GenerateModuli(rand io.Reader, bits, count int) ([]*Modulus, error) {
	if bits < 2 {
		return nil, invalidInput("prime size must be at least 2 bits, got %d", bits)
	}
	if count < 0 {
		return nil, invalidInput("negative modulus count %d", count)
	}

	stop := make(chan struct{})
	defer close(stop)
	ints, errs := prime.GenerateConcurrent(rand, bits, stop)

	moduli := make([]*Modulus, 0, count)
	var p *big.Int
	for len(moduli) < count {
		select {
		case x := <-ints:
			if p == nil {
				p = x
				continue
			}
			m := newModulus(p, x)
			p = nil
			moduli = append(moduli, m)
			Logger.WithFields(logrus.Fields{
				"bits":        bits,
				"fingerprint": m.Fingerprint(),
				"sample":      len(moduli),
			}).Debug("generated modulus")
		case err := <-errs:
			return nil, fatalSetup(err, "concurrent prime generation failed")
		}
	}
	return moduli, nil
}

// NewModulus builds the modulus for the given odd, distinct primes. Primality itself is not
// checked.
func NewModulus(p, q *big.Int) (*Modulus, error) {
	if p == nil || q == nil || p.Cmp(bigTWO) <= 0 || q.Cmp(bigTWO) <= 0 {
		return nil, invalidInput("factors must be odd primes larger than 2")
	}
	if p.Bit(0) == 0 || q.Bit(0) == 0 {
		return nil, invalidInput("factors must be odd")
	}
	if p.Cmp(q) == 0 {
		return nil, invalidInput("factors must be distinct")
	}
	return newModulus(new(big.Int).Set(p), new(big.Int).Set(q)), nil
}

func newModulus(p, q *big.Int) *Modulus {
	pMinOne := new(big.Int).Sub(p, bigONE)
	qMinOne := new(big.Int).Sub(q, bigONE)
	return &Modulus{
		N:   new(big.Int).Mul(p, q),
		Phi: new(big.Int).Mul(pMinOne, qMinOne),
		P:   p,
		Q:   q,
	}
}

// Validate checks that N and Phi are consistent with the factors P and Q, as is required
// for a modulus read from an untrusted encoding.
func (m *Modulus) Validate() error {
	if m.N == nil || m.Phi == nil || m.P == nil || m.Q == nil {
		return invalidInput("incomplete modulus")
	}
	expected, err := NewModulus(m.P, m.Q)
	if err != nil {
		return err
	}
	if expected.N.Cmp(m.N) != 0 {
		return invalidInput("N is not the product of P and Q")
	}
	if expected.Phi.Cmp(m.Phi) != 0 {
		return invalidInput("Phi is not (P-1)(Q-1)")
	}
	return nil
}

// Fingerprint returns the base58-encoded SHA2-256 multihash of the bytes of N, identifying
// the modulus without revealing anything about its trapdoor.
func (m *Modulus) Fingerprint() string {
	if m.N == nil {
		return ""
	}
	mh, err := multihash.Sum(m.N.Bytes(), multihash.SHA2_256, -1)
	if err != nil {
		panic(err) // SHA2_256 is always available
	}
	return mh.B58String()
}

// Params returns the parameters of the puzzle of difficulty t over this modulus.
func (m *Modulus) Params(t uint64) *PuzzleParameters {
	return &PuzzleParameters{N: m.N, T: t}
}

// Verify checks that SequentialSquaring and TrapdoorShortcut agree on this modulus for t.
func (m *Modulus) Verify(t uint64) error {
	if err := Verify(t, m.N, m.Phi); err != nil {
		return err
	}
	Logger.WithFields(logrus.Fields{"fingerprint": m.Fingerprint(), "t": t}).Debug("modulus verified")
	return nil
}
