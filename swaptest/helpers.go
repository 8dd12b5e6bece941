package swaptest

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/crypto"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a random signing condition, as if a new
// participant entered the system.
func NewCondition() lockswap.Condition {
	return NewKey().PublicKey().Condition()
}
