package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/swaptest"
)

func TestCreateEscrowMsgValidate(t *testing.T) {
	valid := CreateEscrowMsg{
		Seed:    1,
		Deposit: coin.NewCoin(10, 0, "AAA"),
		Receive: coin.NewCoin(10, 0, "BBB"),
	}
	assert.NoError(t, valid.Validate())

	withMaker := valid
	withMaker.Maker = swaptest.NewCondition().Address()
	assert.NoError(t, withMaker.Validate())

	sameTicker := valid
	sameTicker.Receive = coin.NewCoin(10, 0, "AAA")
	assert.True(t, errors.ErrCurrency.Is(sameTicker.Validate()))

	zeroDeposit := valid
	zeroDeposit.Deposit = coin.NewCoin(0, 0, "AAA")
	assert.True(t, errors.ErrAmount.Is(zeroDeposit.Validate()))

	negReceive := valid
	negReceive.Receive = coin.NewCoin(-1, 0, "BBB")
	assert.True(t, errors.ErrAmount.Is(negReceive.Validate()))
}

func TestSettleEscrowMsgValidate(t *testing.T) {
	valid := SettleEscrowMsg{Escrow: swaptest.NewCondition().Address()}
	assert.NoError(t, valid.Validate())
	assert.Error(t, (&SettleEscrowMsg{}).Validate())
}

func TestCancelEscrowMsgValidate(t *testing.T) {
	valid := CancelEscrowMsg{Escrow: swaptest.NewCondition().Address()}
	assert.NoError(t, valid.Validate())
	assert.Error(t, (&CancelEscrowMsg{}).Validate())
}
