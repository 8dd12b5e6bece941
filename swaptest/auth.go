// Package swaptest provides mocks and helpers shared by the tests of
// the extension packages.
package swaptest

import (
	"context"
	"fmt"

	"github.com/iov-one/lockswap"
)

// Auth is a mock implementing the x.Authenticator interface.
//
// This structure authenticates any of the referenced conditions. Use
// either the Signer or Signers attribute (or both); all declared
// signers are always considered.
type Auth struct {
	// Signer is a convenience attribute when authenticating a single
	// signer.
	Signer lockswap.Condition

	// Signers represents an authentication of multiple signers.
	Signers []lockswap.Condition
}

func (a *Auth) GetConditions(lockswap.Context) []lockswap.Condition {
	if a.Signer != nil {
		return append([]lockswap.Condition{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx lockswap.Context, addr lockswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing the x.Authenticator interface, using
// the context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx lockswap.Context, permissions ...lockswap.Condition) lockswap.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), permissions)
}

func (a *CtxAuth) GetConditions(ctx lockswap.Context) []lockswap.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]lockswap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []lockswap.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx lockswap.Context, addr lockswap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
