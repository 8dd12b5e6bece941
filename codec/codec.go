// Package codec provides the binary serialization used for all models
// persisted by this module.
//
// Serialization is centralized here so that the storage layer only deals
// with the Persistent interface and the encoding can be swapped in one
// place.
package codec

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Marshal serializes the given model into its binary representation.
func Marshal(obj interface{}) ([]byte, error) {
	return cdc.MarshalBinaryBare(obj)
}

// Unmarshal deserializes the binary representation into the given model.
// The destination must be a pointer.
func Unmarshal(raw []byte, obj interface{}) error {
	return cdc.UnmarshalBinaryBare(raw, obj)
}

// MarshalJSON serializes the given model into amino flavoured JSON.
func MarshalJSON(obj interface{}) ([]byte, error) {
	return cdc.MarshalJSON(obj)
}

// UnmarshalJSON deserializes amino flavoured JSON into the given model.
func UnmarshalJSON(raw []byte, obj interface{}) error {
	return cdc.UnmarshalJSON(raw, obj)
}
