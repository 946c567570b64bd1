package custody

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jjquek/custodia/common/amount"
)

// rateScale in newTestCustody is 1_000_000, so a rate of 2_500_000
// means one value-asset unit is worth 2.5 reference-currency units.

func TestValueOfDeposit_AppliesTheFeedRate(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	fundValue(t, ctx, alice, amount.New(100))
	ctx.feed.EXPECT().LatestRate(gomock.Any()).Return(amount.New(2_500_000), time.Now(), nil)

	value, err := ctx.custody.ValueOfDeposit(context.Background(), alice)
	require.NoError(err)
	require.Equal(amount.New(250), value)

	_, err = ctx.custody.ValueOfDeposit(context.Background(), bob)
	require.ErrorIs(err, ErrNothingDeposited)
}

func TestValueOfDeposit_FeedFailureSurfaces(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	fundValue(t, ctx, alice, amount.New(100))
	ctx.feed.EXPECT().LatestRate(gomock.Any()).
		Return(amount.Amount{}, time.Time{}, fmt.Errorf("stale round"))

	_, err := ctx.custody.ValueOfDeposit(context.Background(), alice)
	require.ErrorIs(err, ErrExternalCall)
}

func TestValueOfTokenHoldings_SumsAcrossTokens(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)
	background := context.Background()

	fundToken(t, ctx, alice, tokenA, amount.New(100))
	ctx.tokens.EXPECT().TransferFrom(gomock.Any(), tokenB, alice, custodyAt, amount.New(50)).Return(nil)
	require.NoError(ctx.custody.DepositToken(background, operator, tokenB, alice, amount.New(50)))

	// tokenA trades at 2 value units each, tokenB at 4.
	ctx.exchange.EXPECT().GetPairReserves(background, tokenA, valueToken).
		Return(amount.New(1000), amount.New(2000), nil)
	ctx.exchange.EXPECT().GetPairReserves(background, tokenB, valueToken).
		Return(amount.New(500), amount.New(2000), nil)
	ctx.feed.EXPECT().LatestRate(background).Return(amount.New(1_000_000), time.Now(), nil)

	// 100*2 + 50*4 = 400 value units at a rate of 1.
	value, err := ctx.custody.ValueOfTokenHoldings(background, alice)
	require.NoError(err)
	require.Equal(amount.New(400), value)
}

func TestValueOfTokenHoldings_SkipsUnpairedTokens(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)
	background := context.Background()

	fundToken(t, ctx, alice, tokenA, amount.New(100))
	ctx.tokens.EXPECT().TransferFrom(gomock.Any(), tokenB, alice, custodyAt, amount.New(50)).Return(nil)
	require.NoError(ctx.custody.DepositToken(background, operator, tokenB, alice, amount.New(50)))

	// tokenA has no pool against the value asset; only tokenB counts.
	ctx.exchange.EXPECT().GetPairReserves(background, tokenA, valueToken).
		Return(amount.Amount{}, amount.Amount{}, fmt.Errorf("no such pair"))
	ctx.exchange.EXPECT().GetPairReserves(background, tokenB, valueToken).
		Return(amount.New(500), amount.New(2000), nil)
	ctx.feed.EXPECT().LatestRate(background).Return(amount.New(1_000_000), time.Now(), nil)

	value, err := ctx.custody.ValueOfTokenHoldings(background, alice)
	require.NoError(err)
	require.Equal(amount.New(200), value)
}

func TestValueOfTokenHoldings_RequiresAHistory(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	_, err := ctx.custody.ValueOfTokenHoldings(context.Background(), alice)
	require.ErrorIs(err, ErrNothingDeposited)
}

func TestAggregateTokenValue_CoversAllDepositors(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)
	background := context.Background()

	fundToken(t, ctx, alice, tokenA, amount.New(100))
	require.NoError(ctx.custody.GrantDepositor(operator, bob))
	ctx.tokens.EXPECT().TransferFrom(gomock.Any(), tokenA, bob, custodyAt, amount.New(150)).Return(nil)
	require.NoError(ctx.custody.DepositToken(background, operator, tokenA, bob, amount.New(150)))

	// One reserve query per token, not per depositor.
	ctx.exchange.EXPECT().GetPairReserves(background, tokenA, valueToken).
		Return(amount.New(1000), amount.New(3000), nil)
	ctx.feed.EXPECT().LatestRate(background).Return(amount.New(2_000_000), time.Now(), nil)

	// (100+150)*3 value units at a rate of 2.
	value, err := ctx.custody.AggregateTokenValue(background)
	require.NoError(err)
	require.Equal(amount.New(1500), value)
}

func TestAggregateTokenValue_IgnoresFullyWithdrawnTokens(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)
	background := context.Background()

	fundToken(t, ctx, alice, tokenA, amount.New(100))
	ctx.tokens.EXPECT().Transfer(gomock.Any(), tokenA, alice, amount.New(100)).Return(nil)
	require.NoError(ctx.custody.WithdrawToken(background, alice, tokenA, amount.New(100)))

	// The zero aggregate entry must not trigger a reserve query.
	ctx.feed.EXPECT().LatestRate(background).Return(amount.New(1_000_000), time.Now(), nil)

	value, err := ctx.custody.AggregateTokenValue(background)
	require.NoError(err)
	require.True(value.IsZero())
}
