package custody

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

// ValueOfDeposit reports the reference-currency value of the given
// depositor's value balance, using the most recent price-feed reading.
func (c *Custody) ValueOfDeposit(ctx context.Context, depositor common.Address) (amount.Amount, error) {
	balance, found := c.ledger.valueBalance(depositor)
	if !found {
		return amount.Amount{}, ErrNothingDeposited
	}
	return c.toReferenceCurrency(ctx, balance)
}

// ValueOfTokenHoldings reports the combined reference-currency value
// of all tokens held for the given depositor. Tokens without a
// discoverable pairing against the value asset are skipped; the
// result is a documented partial sum, not an error.
func (c *Custody) ValueOfTokenHoldings(ctx context.Context, depositor common.Address) (amount.Amount, error) {
	holdings := c.ledger.tokensOf(depositor)
	if holdings == nil {
		return amount.Amount{}, ErrNothingDeposited
	}
	inValue, err := c.sumInValueAsset(ctx, holdings)
	if err != nil {
		return amount.Amount{}, err
	}
	return c.toReferenceCurrency(ctx, inValue)
}

// AggregateTokenValue reports the reference-currency value of all
// tokens in custody across all depositors, with the same
// unpaired-token skipping as ValueOfTokenHoldings.
func (c *Custody) AggregateTokenValue(ctx context.Context) (amount.Amount, error) {
	inValue, err := c.sumInValueAsset(ctx, c.ledger.aggregates())
	if err != nil {
		return amount.Amount{}, err
	}
	return c.toReferenceCurrency(ctx, inValue)
}

// sumInValueAsset converts a set of token balances into value-asset
// units using the exchange's pair reserves and sums them. Iteration
// is in sorted token order to keep venue queries deterministic.
func (c *Custody) sumInValueAsset(ctx context.Context, balances map[common.Token]amount.Amount) (amount.Amount, error) {
	tokens := maps.Keys(balances)
	slices.SortFunc(tokens, func(a, b common.Token) int {
		return bytes.Compare(a[:], b[:])
	})

	sum := amount.New()
	for _, token := range tokens {
		balance := balances[token]
		if balance.IsZero() {
			continue
		}
		reserveToken, reserveValue, err := c.params.Exchange.GetPairReserves(ctx, token, c.params.ValueToken)
		if err != nil || reserveToken.IsZero() {
			// No discoverable pairing for this token; skip it. Both
			// asset denominations are implicit in the reserve ratio,
			// so no separate decimals handling is needed.
			continue
		}
		inValue, err := amount.MulDiv(balance, reserveValue, reserveToken)
		if err != nil {
			return amount.Amount{}, fmt.Errorf("%w: rate of %s: %w", ErrExternalCall, token, err)
		}
		sum, err = amount.Add(sum, inValue)
		if err != nil {
			return amount.Amount{}, err
		}
	}
	return sum, nil
}

// toReferenceCurrency converts a value-asset amount into the reference
// currency at the feed's latest rate.
func (c *Custody) toReferenceCurrency(ctx context.Context, value amount.Amount) (amount.Amount, error) {
	rate, _, err := c.params.PriceFeed.LatestRate(ctx)
	if err != nil {
		return amount.Amount{}, fmt.Errorf("%w: price feed: %w", ErrExternalCall, err)
	}
	return amount.MulDiv(value, rate, c.params.RateScale)
}
