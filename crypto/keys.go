// Package crypto provides the signing keys used to authenticate
// participants, and their mapping to conditions and addresses.
package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// PrivateKey is an ed25519 signing key.
type PrivateKey struct {
	Data ed25519.PrivateKey
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Data: priv}
}

// Sign signs the given message and returns the signature.
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(k.Data) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "malformed private key")
	}
	return ed25519.Sign(k.Data, msg), nil
}

// PublicKey returns the verification key that belongs to this private
// key.
func (k *PrivateKey) PublicKey() *PublicKey {
	pub, ok := k.Data.Public().(ed25519.PublicKey)
	if !ok {
		panic("malformed private key")
	}
	return &PublicKey{Data: pub}
}

// PublicKey is an ed25519 verification key.
type PublicKey struct {
	Data ed25519.PublicKey
}

// Verify reports whether the signature was created for this message by
// the owner of this public key.
func (k *PublicKey) Verify(msg, sig []byte) bool {
	if len(k.Data) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(k.Data, msg, sig)
}

// Condition returns the condition this public key fulfills by signing.
func (k *PublicKey) Condition() lockswap.Condition {
	return lockswap.NewCondition("sigs", "ed25519", k.Data)
}

// Address returns the address of the condition of this public key.
func (k *PublicKey) Address() lockswap.Address {
	return k.Condition().Address()
}
