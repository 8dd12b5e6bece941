// Package x holds the shared building blocks of the extension packages,
// most importantly the authentication interface handlers rely on.
package x

import (
	"github.com/iov-one/lockswap"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather than
// hardcoding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled on the context,
	// some may be paths and not usable addresses.
	GetConditions(lockswap.Context) []lockswap.Condition

	// HasAddress checks if any condition matches this address.
	HasAddress(lockswap.Context, lockswap.Address) bool
}

// MultiAuth chains together many authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls: impls}
}

// GetConditions combines all conditions of all chained authenticators.
func (m MultiAuth) GetConditions(ctx lockswap.Context) []lockswap.Condition {
	var res []lockswap.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any chained authenticator approves.
func (m MultiAuth) HasAddress(ctx lockswap.Context, addr lockswap.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first permission if any, otherwise nil.
func MainSigner(ctx lockswap.Context, auth Authenticator) lockswap.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllConditions returns true if all elements in required are
// fulfilled on the context.
func HasAllConditions(ctx lockswap.Context, auth Authenticator, required []lockswap.Condition) bool {
	fulfilled := auth.GetConditions(ctx)
	for _, req := range required {
		found := false
		for _, cond := range fulfilled {
			if cond.Equals(req) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
