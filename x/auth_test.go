package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/swaptest"
)

func TestChainAuth(t *testing.T) {
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()
	carl := swaptest.NewCondition()

	ctxAuth := &swaptest.CtxAuth{Key: "auth"}
	auth := ChainAuth(&swaptest.Auth{Signer: alice}, ctxAuth)
	ctx := ctxAuth.SetConditions(context.Background(), bob)

	assert.Equal(t, []lockswap.Condition{alice, bob}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, alice.Address()))
	assert.True(t, auth.HasAddress(ctx, bob.Address()))
	assert.False(t, auth.HasAddress(ctx, carl.Address()))

	assert.Equal(t, alice, MainSigner(ctx, auth))
	assert.Nil(t, MainSigner(context.Background(), ChainAuth()))
}

func TestHasAllConditions(t *testing.T) {
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()
	carl := swaptest.NewCondition()

	auth := &swaptest.Auth{Signers: []lockswap.Condition{alice, bob}}
	ctx := context.Background()

	assert.True(t, HasAllConditions(ctx, auth, nil))
	assert.True(t, HasAllConditions(ctx, auth, []lockswap.Condition{alice, bob}))
	assert.False(t, HasAllConditions(ctx, auth, []lockswap.Condition{alice, carl}))
}
