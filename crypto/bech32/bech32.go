// Package bech32 encodes and decodes raw byte payloads using the bech32
// format, taking care of the 8 to 5 bit regrouping that the underlying
// implementation expects.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/pkg/errors"
)

// Encode converts the payload into a bech32 string with the given human
// readable prefix.
func Encode(prefix string, payload []byte) (string, error) {
	grouped, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	return bech32.Encode(prefix, grouped)
}

// Decode parses a bech32 string and returns the prefix together with the
// raw payload bytes.
func Decode(enc string) (string, []byte, error) {
	prefix, grouped, err := bech32.Decode(enc)
	if err != nil {
		return "", nil, errors.Wrap(err, "decode")
	}
	payload, err := bech32.ConvertBits(grouped, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(err, "convert bits")
	}
	return prefix, payload, nil
}
