package custody

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
	"github.com/jjquek/custodia/journal"
)

// DepositValue records a value-asset deposit for the given depositor.
// The value asset itself must have been attached to the invocation by
// the embedding layer; this operation performs no pull. Accounts not
// yet enrolled as depositors are enrolled automatically. Operators
// cannot deposit for themselves.
func (c *Custody) DepositValue(depositor common.Address, value amount.Amount) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if !c.initialized {
		return ErrNotInitialized
	}
	if value.IsZero() {
		return ErrInvalidAmount
	}
	if c.roles.isOperator(depositor) {
		return fmt.Errorf("%w: operators cannot act as depositors", ErrUnauthorized)
	}

	c.enroll(depositor)
	if err := c.ledger.creditValue(depositor, value); err != nil {
		return err
	}

	c.emit(journal.Record{
		Kind:    journal.KindValueDeposited,
		Account: depositor,
		AmountA: value,
	})
	c.log.Info("value deposited",
		zap.Stringer("depositor", depositor), zap.Stringer("value", value))
	return nil
}

// WithdrawValue pays out part of the depositor's value balance to the
// depositor's own address. The ledger is only debited after the
// external transfer has been confirmed; a failed transfer leaves all
// balances unchanged.
func (c *Custody) WithdrawValue(ctx context.Context, depositor common.Address, value amount.Amount) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if !c.initialized {
		return ErrNotInitialized
	}
	if !c.roles.isDepositor(depositor) {
		return fmt.Errorf("%w: not a depositor", ErrUnauthorized)
	}
	if value.IsZero() {
		return ErrInvalidAmount
	}
	balance, found := c.ledger.valueBalance(depositor)
	if !found {
		return ErrNothingDeposited
	}
	if balance.Less(value) {
		return ErrInsufficientBalance
	}

	if err := c.params.Value.Send(ctx, depositor, value); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}
	if err := c.ledger.debitValue(depositor, value); err != nil {
		return err
	}

	c.emit(journal.Record{
		Kind:    journal.KindValueWithdrawn,
		Account: depositor,
		AmountA: value,
	})
	c.log.Info("value withdrawn",
		zap.Stringer("depositor", depositor), zap.Stringer("value", value))
	return nil
}

// DepositToken pulls tokens from the depositor's external holdings
// into custody and credits them to the depositor's ledger entry. Token
// deposits are operator-initiated: the caller must be an operator and
// the depositor must already be enrolled -- a depositor cannot
// self-attest that an address is a genuine token.
func (c *Custody) DepositToken(ctx context.Context, caller common.Address, token common.Token, depositor common.Address, value amount.Amount) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if !c.initialized {
		return ErrNotInitialized
	}
	if !c.roles.isOperator(caller) {
		return fmt.Errorf("%w: token deposits are operator-initiated", ErrUnauthorized)
	}
	if !c.roles.isDepositor(depositor) {
		return fmt.Errorf("%w: not a depositor", ErrUnauthorized)
	}
	if c.roles.isOperator(depositor) {
		return fmt.Errorf("%w: operators cannot act as depositors", ErrUnauthorized)
	}
	if value.IsZero() {
		return ErrInvalidAmount
	}

	if err := c.params.Tokens.TransferFrom(ctx, token, depositor, c.params.Account, value); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}
	if err := c.ledger.creditToken(depositor, token, value); err != nil {
		return err
	}

	c.emit(journal.Record{
		Kind:    journal.KindTokenDeposited,
		Account: depositor,
		TokenA:  token,
		AmountA: value,
	})
	c.log.Info("token deposited",
		zap.Stringer("depositor", depositor),
		zap.Stringer("token", token), zap.Stringer("value", value))
	return nil
}

// WithdrawToken pushes part of the depositor's token balance from
// custody back to the depositor's own address. A failed transfer
// leaves all balances unchanged.
func (c *Custody) WithdrawToken(ctx context.Context, depositor common.Address, token common.Token, value amount.Amount) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if !c.initialized {
		return ErrNotInitialized
	}
	if !c.roles.isDepositor(depositor) {
		return fmt.Errorf("%w: not a depositor", ErrUnauthorized)
	}
	if value.IsZero() {
		return ErrInvalidAmount
	}
	balance, found := c.ledger.tokenBalance(depositor, token)
	if !found {
		return ErrNothingDeposited
	}
	if balance.Less(value) {
		return ErrInsufficientBalance
	}

	if err := c.params.Tokens.Transfer(ctx, token, depositor, value); err != nil {
		return fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}
	if err := c.ledger.debitToken(depositor, token, value); err != nil {
		return err
	}

	c.emit(journal.Record{
		Kind:    journal.KindTokenWithdrawn,
		Account: depositor,
		TokenA:  token,
		AmountA: value,
	})
	c.log.Info("token withdrawn",
		zap.Stringer("depositor", depositor),
		zap.Stringer("token", token), zap.Stringer("value", value))
	return nil
}

// ValueBalanceOf reports the value balance held for the given account.
// Accounts that never deposited value fail with ErrNothingDeposited;
// accounts that deposited and fully withdrew read back zero.
func (c *Custody) ValueBalanceOf(account common.Address) (amount.Amount, error) {
	balance, found := c.ledger.valueBalance(account)
	if !found {
		return amount.Amount{}, ErrNothingDeposited
	}
	return balance, nil
}

// TokenBalanceOf reports the balance of the given token held for the
// given account, with the same never-deposited semantics as
// ValueBalanceOf.
func (c *Custody) TokenBalanceOf(account common.Address, token common.Token) (amount.Amount, error) {
	balance, found := c.ledger.tokenBalance(account, token)
	if !found {
		return amount.Amount{}, ErrNothingDeposited
	}
	return balance, nil
}
