package timelock

import (
	"io"
	"os"

	"github.com/go-errors/errors"

	"github.com/privacybydesign/timelock/cbor"
	"github.com/privacybydesign/timelock/internal/common"
)

// Encode returns the deterministic CBOR encoding of the modulus, including its trapdoor.
func (m *Modulus) Encode() ([]byte, error) {
	return cbor.Marshal(m)
}

// DecodeModulus decodes and validates a modulus encoded by Encode.
func DecodeModulus(data []byte) (*Modulus, error) {
	var m Modulus
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapPrefix(err, "failed to decode modulus", 0)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteTo writes the CBOR-encoded modulus to the given writer.
func (m *Modulus) WriteTo(writer io.Writer) (int64, error) {
	bts, err := m.Encode()
	if err != nil {
		return 0, err
	}
	n, err := writer.Write(bts)
	return int64(n), err
}

// ReadModulus reads and validates a CBOR-encoded modulus from r.
func ReadModulus(r io.Reader) (*Modulus, error) {
	var m Modulus
	if err := cbor.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.WrapPrefix(err, "failed to decode modulus", 0)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteToFile writes the modulus to a file readable only by its owner, as it contains the
// trapdoor. If any existing file with the same filename should be overwritten, set
// forceOverwrite to true.
func (m *Modulus) WriteToFile(filename string, forceOverwrite bool) (int64, error) {
	flags := os.O_RDWR | os.O_CREATE | os.O_EXCL
	if forceOverwrite {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flags, 0600)
	if err != nil {
		return 0, err
	}
	defer common.Close(f)

	// The mode passed to OpenFile only applies to new files.
	if err = f.Chmod(0600); err != nil {
		return 0, err
	}
	return m.WriteTo(f)
}

// ReadModulusFromFile reads a modulus written by WriteToFile.
func ReadModulusFromFile(filename string) (*Modulus, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer common.Close(f)

	return ReadModulus(f)
}
