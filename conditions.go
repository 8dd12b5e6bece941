package lockswap

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/iov-one/lockswap/crypto/bech32"
	"github.com/iov-one/lockswap/errors"
)

var (
	// The data chunk is raw bytes, so the match must cross newlines.
	perm = regexp.MustCompile(`(?s)^([a-z_\d]{3,8})/([a-z_\d]{3,8})/(.+)$`)
)

// Condition is a specially formatted array, containing information on
// who can authorize an action. It is of the format:
//
//   sprintf("%s/%s/%s", extension, type, data)
type Condition []byte

// NewCondition creates a condition out of the building blocks. It panics
// on an invalid extension or type, as those are always known at compile
// time.
func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	cond := append([]byte(pre), data...)
	if err := Condition(cond).Validate(); err != nil {
		panic(err)
	}
	return cond
}

// Parse will extract the sections from the Condition bytes and verify
// they are properly formatted.
func (c Condition) Parse() (string, string, []byte, error) {
	chunks := perm.FindSubmatch(c)
	if chunks == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return string(chunks[1]), string(chunks[2]), chunks[3], nil
}

// Address will convert a Condition into an Address.
func (c Condition) Address() Address {
	return NewAddress(c)
}

// Equals checks if two conditions are the same.
func (c Condition) Equals(c2 Condition) bool {
	return bytes.Equal(c, c2)
}

// String returns a human readable string.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// Validate returns an error if the condition is not in the proper
// format.
func (c Condition) Validate() error {
	if len(c) == 0 {
		return errors.Wrap(errors.ErrEmpty, "condition")
	}
	if !perm.Match(c) {
		return errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return nil
}

// AddressLength is the length of all addresses.
const AddressLength = 20

// Address represents a collision-free, one-way digest of a Condition.
//
// It will be of size AddressLength.
type Address []byte

// Equals checks if two addresses are the same.
func (a Address) Equals(addr Address) bool {
	return bytes.Equal(a, addr)
}

// String returns a human readable string.
//
// Currently hex, may move to bech32.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return hex.EncodeToString(a)
}

// Bech32String returns a human readable address encoded with the given
// prefix.
func (a Address) Bech32String(prefix string) (string, error) {
	return bech32.Encode(prefix, a)
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "invalid address length: %v", []byte(a))
	}
	return nil
}

// MarshalJSON provides a hex representation for JSON.
func (a Address) MarshalJSON() ([]byte, error) {
	return marshalHex(a)
}

// UnmarshalJSON parses an address in one of the supported formats:
//
//   "hex:<hex encoded address>"
//   "bech32:<bech32 encoded address>"
//
// A string without a prefix is interpreted as hex.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := unmarshalQuoted(raw, &enc); err != nil {
		return err
	}
	if enc == "" {
		*a = nil
		return nil
	}

	var format string
	if n := bytes.IndexByte([]byte(enc), ':'); n > 0 {
		format, enc = enc[:n], enc[n+1:]
	} else {
		format = "hex"
	}

	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "hex decode")
		}
		*a = val
	case "bech32":
		_, payload, err := bech32.Decode(enc)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "bech32 decode")
		}
		*a = payload
	default:
		return errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	return (*a).Validate()
}

// NewAddress hashes and truncates into the proper size.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// Proof is the disambiguation byte found by Derive. A condition together
// with its proof re-derives to the same address, which is how stored
// records prove the right to act on the slots derived from them.
type Proof uint8

// Derive searches for a condition of the form ext/typ/data|proof whose
// digest is derivable, trying proof values from 255 down to 0. It
// returns the first valid condition along with the proof that produced
// it.
//
// The search is deterministic: the same inputs always yield the same
// condition, proof and address. If no proof value yields a derivable
// condition, ErrDerivation is returned.
func Derive(ext, typ string, data []byte) (Condition, Proof, error) {
	for i := 255; i >= 0; i-- {
		cond := NewCondition(ext, typ, withProof(data, Proof(i)))
		if derivable(cond) {
			return cond, Proof(i), nil
		}
	}
	return nil, 0, errors.Wrapf(errors.ErrDerivation, "%s/%s: no proof yields a valid condition", ext, typ)
}

// DeriveWithProof re-creates the condition for a known proof value. It
// fails with ErrDerivation if the proof does not produce a derivable
// condition, which means the proof does not belong to the given inputs.
func DeriveWithProof(ext, typ string, data []byte, proof Proof) (Condition, error) {
	cond := NewCondition(ext, typ, withProof(data, proof))
	if !derivable(cond) {
		return nil, errors.Wrapf(errors.ErrDerivation, "%s/%s: proof %d is not valid", ext, typ, proof)
	}
	return cond, nil
}

func withProof(data []byte, proof Proof) []byte {
	out := make([]byte, len(data)+1)
	copy(out, data)
	out[len(data)] = byte(proof)
	return out
}

// derivable reports whether the digest of the condition lies in the
// valid half of the address space. Only derivable conditions may own
// store slots.
func derivable(c Condition) bool {
	h := sha256.Sum256(c)
	return h[len(h)-1]&0x80 == 0
}
