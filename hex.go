package lockswap

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

// marshalHex serializes bytes as an upper case hex string inside JSON
// quotes.
func marshalHex(bz []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bz))
	return json.Marshal(s)
}

// unmarshalQuoted reads a JSON string into dst.
func unmarshalQuoted(raw []byte, dst *string) error {
	return json.Unmarshal(raw, dst)
}
