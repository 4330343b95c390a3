// Package cbor encodes and decodes moduli and other values as CBOR, by wrapping
// github.com/fxamacker/cbor.
//
// Encoding follows Core Deterministic Encoding (RFC 8949 section 4.2.1), so that equal values
// always encode to equal bytes. The decoder rejects duplicate map keys and indefinite lengths.
// Big integers travel as byte strings through their encoding.BinaryMarshaler implementation,
// so no tags are needed and none are accepted.
package cbor

import (
	"io"

	"github.com/fxamacker/cbor/v2" // imports as cbor
)

// Encoded moduli are small maps of byte strings; these bound what a decoder accepts.
const (
	MaxArrayElements = 1024
	MaxMapPairs      = 1024
	MaxNestedLevels  = 16
)

var (
	encOptions = cbor.EncOptions{
		IndefLength:   cbor.IndefLengthForbidden,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,
		TagsMd:        cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,
		MaxNestedLevels:  MaxNestedLevels,
		TagsMd:           cbor.TagsForbidden,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes CBOR in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}
