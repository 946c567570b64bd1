package custody

import (
	"context"
	"time"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

//go:generate mockgen -source gateway.go -destination gateway_mock.go -package custody

// TokenTransferor moves token units between holders. Implementations
// follow the safe-wrapper convention: a failed transfer is reported as
// an error, never as a silent no-op.
type TokenTransferor interface {
	// Transfer sends tokens held by the custody account to a recipient.
	Transfer(ctx context.Context, token common.Token, to common.Address, value amount.Amount) error

	// TransferFrom pulls tokens from a holder into another account,
	// subject to the holder's external authorization.
	TransferFrom(ctx context.Context, token common.Token, from, to common.Address, value amount.Amount) error

	// Approve grants a spender authorization over tokens held by the
	// custody account.
	Approve(ctx context.Context, token common.Token, spender common.Address, value amount.Amount) error

	// IncreaseAllowance raises a previously granted authorization.
	IncreaseAllowance(ctx context.Context, token common.Token, spender common.Address, value amount.Amount) error
}

// ValueTransferor sends the native value asset out of custody.
type ValueTransferor interface {
	Send(ctx context.Context, to common.Address, value amount.Amount) error
}

// Exchange converts one token into another at a venue-determined rate.
type Exchange interface {
	// SwapExactInput trades along the given path and reports the
	// realized input and output amounts.
	SwapExactInput(ctx context.Context, value, minOut amount.Amount, path []common.Token, recipient common.Address, deadline time.Time) (consumed, received amount.Amount, err error)

	// GetPairReserves reports the venue's current reserves of the two
	// tokens of a trading pair, for rate discovery. Pairs unknown to
	// the venue yield an error.
	GetPairReserves(ctx context.Context, tokenA, tokenB common.Token) (reserveA, reserveB amount.Amount, err error)

	// Spender is the account that must be authorized to draw input
	// tokens from custody before a swap.
	Spender() common.Address
}

// StakingPool accepts value-asset deposits against a proportional
// claim on a pooled reward-bearing balance.
type StakingPool interface {
	// Submit stakes the given value and returns the number of shares
	// issued for it.
	Submit(ctx context.Context, value amount.Amount) (shares amount.Amount, err error)

	// TotalShares reports the pool's total issued shares.
	TotalShares(ctx context.Context) (amount.Amount, error)

	// TotalPooledValue reports the total value backing those shares.
	TotalPooledValue(ctx context.Context) (amount.Amount, error)

	// ClaimToken identifies the token representing claims on the pool.
	ClaimToken() common.Token

	// TransferClaim moves claim tokens from the pool to a recipient.
	TransferClaim(ctx context.Context, to common.Address, value amount.Amount) error
}

// PriceFeed reports the conversion rate between the value asset and
// the reference currency.
type PriceFeed interface {
	// LatestRate returns the most recent rate reading and its
	// timestamp. The rate is scaled by the feed's fixed scaling
	// factor, see Parameters.RateScale.
	LatestRate(ctx context.Context) (rate amount.Amount, ts time.Time, err error)
}
