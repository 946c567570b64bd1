package custody

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

func TestLedger_ValueCreditAndDebit(t *testing.T) {
	require := require.New(t)
	ledger := newLedger()

	require.NoError(ledger.creditValue(alice, amount.New(100)))
	require.NoError(ledger.debitValue(alice, amount.New(60)))

	balance, found := ledger.valueBalance(alice)
	require.True(found)
	require.Equal(amount.New(40), balance)

	require.ErrorIs(ledger.debitValue(alice, amount.New(41)), ErrInsufficientBalance)
	require.ErrorIs(ledger.debitValue(bob, amount.New(1)), ErrNothingDeposited)
	require.ErrorIs(ledger.creditValue(alice, amount.New()), ErrInvalidAmount)
	require.ErrorIs(ledger.debitValue(alice, amount.New()), ErrInvalidAmount)
}

func TestLedger_FullyDebitedEntriesPersistAtZero(t *testing.T) {
	require := require.New(t)
	ledger := newLedger()

	require.NoError(ledger.creditValue(alice, amount.New(10)))
	require.NoError(ledger.debitValue(alice, amount.New(10)))

	// Fully withdrawn reads back zero, never-credited reads not-found.
	balance, found := ledger.valueBalance(alice)
	require.True(found)
	require.True(balance.IsZero())
	_, found = ledger.valueBalance(bob)
	require.False(found)

	require.NoError(ledger.creditToken(alice, tokenA, amount.New(5)))
	require.NoError(ledger.debitToken(alice, tokenA, amount.New(5)))
	balance, found = ledger.tokenBalance(alice, tokenA)
	require.True(found)
	require.True(balance.IsZero())
	_, found = ledger.tokenBalance(alice, tokenB)
	require.False(found)
}

func TestLedger_TokenOperationsKeepAggregateInSync(t *testing.T) {
	require := require.New(t)
	ledger := newLedger()

	require.NoError(ledger.creditToken(alice, tokenA, amount.New(100)))
	require.NoError(ledger.creditToken(bob, tokenA, amount.New(50)))
	require.NoError(ledger.creditToken(alice, tokenB, amount.New(7)))
	require.Equal(amount.New(150), ledger.aggregate[tokenA])
	require.Equal(amount.New(7), ledger.aggregate[tokenB])

	require.NoError(ledger.debitToken(alice, tokenA, amount.New(30)))
	require.Equal(amount.New(120), ledger.aggregate[tokenA])

	require.ErrorIs(ledger.debitToken(bob, tokenB, amount.New(1)), ErrNothingDeposited)
	require.ErrorIs(ledger.debitToken(bob, tokenA, amount.New(51)), ErrInsufficientBalance)
	require.Equal(amount.New(120), ledger.aggregate[tokenA])
	require.Equal(amount.New(7), ledger.aggregate[tokenB])
}

func TestLedger_OverflowingCreditLeavesStateUnchanged(t *testing.T) {
	require := require.New(t)
	ledger := newLedger()
	max := amount.NewFromUint256(new(uint256.Int).Not(uint256.NewInt(0)))

	require.NoError(ledger.creditValue(alice, max))
	require.ErrorIs(ledger.creditValue(alice, amount.New(1)), amount.ErrOverflow)
	balance, _ := ledger.valueBalance(alice)
	require.Equal(max, balance)

	// An aggregate overflow must not leave a partial per-depositor
	// credit behind.
	require.NoError(ledger.creditToken(alice, tokenA, max))
	require.ErrorIs(ledger.creditToken(bob, tokenA, amount.New(1)), amount.ErrOverflow)
	_, found := ledger.tokenBalance(bob, tokenA)
	require.False(found)
	require.Equal(max, ledger.aggregate[tokenA])
}

func TestLedger_HoldingViewsReflectBalances(t *testing.T) {
	require := require.New(t)
	ledger := newLedger()

	require.Nil(ledger.tokensOf(alice))
	require.NoError(ledger.creditToken(alice, tokenA, amount.New(3)))
	require.NoError(ledger.creditToken(alice, tokenB, amount.New(4)))

	holdings := ledger.tokensOf(alice)
	require.Len(holdings, 2)
	require.Equal(amount.New(3), holdings[tokenA])
	require.Equal(amount.New(4), holdings[tokenB])

	require.Equal(map[common.Token]amount.Amount{
		tokenA: amount.New(3),
		tokenB: amount.New(4),
	}, ledger.aggregates())
}
