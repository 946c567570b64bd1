package custody

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
	"github.com/jjquek/custodia/journal"
)

// defaultSwapDeadline is applied when the caller passes a zero
// deadline to SwapForDepositor.
const defaultSwapDeadline = 60 * time.Second

// SwapForDepositor converts part of a depositor's holdings of tokenIn
// into tokenOut through the external exchange, on the depositor's
// behalf. Only operators may swap. The ledger is adjusted by the
// realized amounts the venue reports, in one step with the aggregate
// totals; a venue-side failure (slippage below minOut, expired
// deadline) leaves all balances unchanged.
//
// A zero deadline defaults to now plus 60 seconds.
func (c *Custody) SwapForDepositor(
	ctx context.Context,
	caller common.Address,
	tokenIn, tokenOut common.Token,
	depositor common.Address,
	value, minOut amount.Amount,
	deadline time.Time,
) (consumed, received amount.Amount, err error) {
	if err := c.enter(); err != nil {
		return amount.Amount{}, amount.Amount{}, err
	}
	defer c.leave()
	if !c.initialized {
		return amount.Amount{}, amount.Amount{}, ErrNotInitialized
	}
	if !c.roles.isOperator(caller) {
		return amount.Amount{}, amount.Amount{}, fmt.Errorf("%w: only operators can swap", ErrUnauthorized)
	}
	if !c.roles.isDepositor(depositor) {
		return amount.Amount{}, amount.Amount{}, fmt.Errorf("%w: not a depositor", ErrUnauthorized)
	}
	if tokenIn == tokenOut {
		return amount.Amount{}, amount.Amount{}, fmt.Errorf("%w: cannot swap a token for itself", ErrInvalidAmount)
	}
	if value.IsZero() || minOut.IsZero() {
		return amount.Amount{}, amount.Amount{}, ErrInvalidAmount
	}
	balance, found := c.ledger.tokenBalance(depositor, tokenIn)
	if !found {
		return amount.Amount{}, amount.Amount{}, ErrNothingDeposited
	}
	if balance.Less(value) {
		return amount.Amount{}, amount.Amount{}, ErrInsufficientBalance
	}
	if deadline.IsZero() {
		deadline = time.Now().Add(defaultSwapDeadline)
	}

	if err := c.ensureAllowance(ctx, tokenIn, value); err != nil {
		return amount.Amount{}, amount.Amount{}, err
	}

	c.log.Debug("swap validated, calling exchange",
		zap.Stringer("tokenIn", tokenIn), zap.Stringer("tokenOut", tokenOut))
	consumed, received, err = c.params.Exchange.SwapExactInput(
		ctx, value, minOut,
		[]common.Token{tokenIn, tokenOut},
		c.params.Account, deadline,
	)
	if err != nil {
		return amount.Amount{}, amount.Amount{}, fmt.Errorf("%w: %w", ErrExternalCall, err)
	}
	if balance.Less(consumed) {
		// The venue consumed more than it was offered. The swap is
		// already committed externally, but the books cannot follow.
		return amount.Amount{}, amount.Amount{}, fmt.Errorf(
			"%w: venue consumed %s, offered %s", ErrExternalCall, consumed, value)
	}
	c.spendAllowance(tokenIn, consumed)

	if err := c.ledger.debitToken(depositor, tokenIn, consumed); err != nil {
		return amount.Amount{}, amount.Amount{}, err
	}
	if err := c.ledger.creditToken(depositor, tokenOut, received); err != nil {
		return amount.Amount{}, amount.Amount{}, err
	}

	c.emit(journal.Record{
		Kind:    journal.KindTokensSwapped,
		Account: depositor,
		TokenA:  tokenIn,
		TokenB:  tokenOut,
		AmountA: consumed,
		AmountB: received,
	})
	c.log.Info("tokens swapped",
		zap.Stringer("depositor", depositor),
		zap.Stringer("tokenIn", tokenIn), zap.Stringer("tokenOut", tokenOut),
		zap.Stringer("consumed", consumed), zap.Stringer("received", received))
	return consumed, received, nil
}

// ensureAllowance makes sure the exchange spender is authorized to
// draw at least the given token amount from custody, granting initial
// authorization or raising an insufficient one. The local cache
// tracks what remains of previous grants so that repeated swaps do
// not re-authorize unnecessarily.
func (c *Custody) ensureAllowance(ctx context.Context, token common.Token, value amount.Amount) error {
	remaining := c.allowances[token]
	if !remaining.Less(value) {
		return nil
	}
	spender := c.params.Exchange.Spender()
	if remaining.IsZero() {
		if err := c.params.Tokens.Approve(ctx, token, spender, value); err != nil {
			return fmt.Errorf("%w: approve: %w", ErrExternalCall, err)
		}
	} else {
		delta, err := amount.Sub(value, remaining)
		if err != nil {
			return err
		}
		if err := c.params.Tokens.IncreaseAllowance(ctx, token, spender, delta); err != nil {
			return fmt.Errorf("%w: increase allowance: %w", ErrExternalCall, err)
		}
	}
	c.allowances[token] = value
	return nil
}

// spendAllowance lowers the cached authorization by what the venue
// actually drew.
func (c *Custody) spendAllowance(token common.Token, consumed amount.Amount) {
	remaining, err := amount.Sub(c.allowances[token], consumed)
	if err != nil {
		remaining = amount.New()
	}
	c.allowances[token] = remaining
}

// StakeValueForDepositor submits part of a depositor's value balance
// to the external staking pool and credits the depositor with the
// corresponding claim tokens. Only operators may stake. The claim
// amount is shares * totalPooledValue / totalShares, computed with a
// 512-bit intermediate from pool readings taken atomically with the
// stake call. Any external failure leaves all balances unchanged.
func (c *Custody) StakeValueForDepositor(
	ctx context.Context,
	caller, depositor common.Address,
	value amount.Amount,
) (claim amount.Amount, err error) {
	if err := c.enter(); err != nil {
		return amount.Amount{}, err
	}
	defer c.leave()
	if !c.initialized {
		return amount.Amount{}, ErrNotInitialized
	}
	if !c.roles.isOperator(caller) {
		return amount.Amount{}, fmt.Errorf("%w: only operators can stake", ErrUnauthorized)
	}
	if !c.roles.isDepositor(depositor) {
		return amount.Amount{}, fmt.Errorf("%w: not a depositor", ErrUnauthorized)
	}
	if value.IsZero() {
		return amount.Amount{}, ErrInvalidAmount
	}
	balance, found := c.ledger.valueBalance(depositor)
	if !found {
		return amount.Amount{}, ErrNothingDeposited
	}
	if balance.Less(value) {
		return amount.Amount{}, ErrInsufficientBalance
	}

	c.log.Debug("stake validated, calling staking pool",
		zap.Stringer("depositor", depositor), zap.Stringer("value", value))
	pool := c.params.Staking
	shares, err := pool.Submit(ctx, value)
	if err != nil {
		return amount.Amount{}, fmt.Errorf("%w: submit: %w", ErrExternalCall, err)
	}
	totalPooled, err := pool.TotalPooledValue(ctx)
	if err != nil {
		return amount.Amount{}, fmt.Errorf("%w: total pooled value: %w", ErrExternalCall, err)
	}
	totalShares, err := pool.TotalShares(ctx)
	if err != nil {
		return amount.Amount{}, fmt.Errorf("%w: total shares: %w", ErrExternalCall, err)
	}
	claim, err = amount.MulDiv(shares, totalPooled, totalShares)
	if err != nil {
		return amount.Amount{}, fmt.Errorf("%w: claim computation: %w", ErrExternalCall, err)
	}
	if claim.IsZero() {
		return amount.Amount{}, fmt.Errorf("%w: pool issued no claim for %s", ErrExternalCall, value)
	}
	if err := pool.TransferClaim(ctx, c.params.Account, claim); err != nil {
		return amount.Amount{}, fmt.Errorf("%w: claim transfer: %w", ErrTransferFailed, err)
	}

	claimToken := pool.ClaimToken()
	if err := c.ledger.debitValue(depositor, value); err != nil {
		return amount.Amount{}, err
	}
	if err := c.ledger.creditToken(depositor, claimToken, claim); err != nil {
		return amount.Amount{}, err
	}

	c.emit(journal.Record{
		Kind:    journal.KindValueStaked,
		Account: depositor,
		TokenA:  claimToken,
		AmountA: value,
		AmountB: claim,
	})
	c.log.Info("value staked",
		zap.Stringer("depositor", depositor),
		zap.Stringer("value", value), zap.Stringer("claim", claim))
	return claim, nil
}
