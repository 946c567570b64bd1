package custody

import (
	"fmt"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

// ledger is the single place where balances are mutated. It couples
// three maps: per-depositor value balances, per-depositor token
// balances, and contract-wide aggregates per token. The aggregate of a
// token always equals the sum of all depositors' balances of it, which
// is maintained by updating both maps in the same step and never
// exposing them for direct mutation.
//
// Entries persist once created: a balance drawn down to zero stays in
// the map reading zero, so the "nothing deposited" condition is only
// reachable for accounts (or account/token pairs) that never held the
// asset.
type ledger struct {
	value     map[common.Address]amount.Amount
	tokens    map[common.Address]map[common.Token]amount.Amount
	aggregate map[common.Token]amount.Amount
}

func newLedger() ledger {
	return ledger{
		value:     map[common.Address]amount.Amount{},
		tokens:    map[common.Address]map[common.Token]amount.Amount{},
		aggregate: map[common.Token]amount.Amount{},
	}
}

func (l *ledger) creditValue(account common.Address, value amount.Amount) error {
	if value.IsZero() {
		return ErrInvalidAmount
	}
	updated, err := amount.Add(l.value[account], value)
	if err != nil {
		return fmt.Errorf("value balance of %s: %w", account, err)
	}
	l.value[account] = updated
	return nil
}

func (l *ledger) debitValue(account common.Address, value amount.Amount) error {
	if value.IsZero() {
		return ErrInvalidAmount
	}
	balance, found := l.value[account]
	if !found {
		return ErrNothingDeposited
	}
	updated, err := amount.Sub(balance, value)
	if err != nil {
		return ErrInsufficientBalance
	}
	l.value[account] = updated
	return nil
}

func (l *ledger) creditToken(account common.Address, token common.Token, value amount.Amount) error {
	if value.IsZero() {
		return ErrInvalidAmount
	}
	// Both updates are computed before either map is touched, so a
	// failure leaves the ledger unchanged.
	balance, err := amount.Add(l.tokens[account][token], value)
	if err != nil {
		return fmt.Errorf("token balance of %s: %w", account, err)
	}
	total, err := amount.Add(l.aggregate[token], value)
	if err != nil {
		return fmt.Errorf("aggregate balance of %s: %w", token, err)
	}
	holdings := l.tokens[account]
	if holdings == nil {
		holdings = map[common.Token]amount.Amount{}
		l.tokens[account] = holdings
	}
	holdings[token] = balance
	l.aggregate[token] = total
	return nil
}

func (l *ledger) debitToken(account common.Address, token common.Token, value amount.Amount) error {
	if value.IsZero() {
		return ErrInvalidAmount
	}
	balance, found := l.tokens[account][token]
	if !found {
		return ErrNothingDeposited
	}
	updated, err := amount.Sub(balance, value)
	if err != nil {
		return ErrInsufficientBalance
	}
	total, err := amount.Sub(l.aggregate[token], value)
	if err != nil {
		// The aggregate is the sum of all per-depositor balances, so
		// it cannot fall short of a single depositor's debit.
		return fmt.Errorf("aggregate balance of %s out of sync: %w", token, err)
	}
	l.tokens[account][token] = updated
	l.aggregate[token] = total
	return nil
}

// valueBalance reports an account's value balance and whether the
// account was ever credited.
func (l *ledger) valueBalance(account common.Address) (amount.Amount, bool) {
	balance, found := l.value[account]
	return balance, found
}

// tokenBalance reports an account's balance of a token and whether the
// pair was ever credited.
func (l *ledger) tokenBalance(account common.Address, token common.Token) (amount.Amount, bool) {
	balance, found := l.tokens[account][token]
	return balance, found
}

// tokensOf lists an account's token holdings. The result must not be
// mutated.
func (l *ledger) tokensOf(account common.Address) map[common.Token]amount.Amount {
	return l.tokens[account]
}

// aggregates lists the contract-wide totals per token. The result must
// not be mutated.
func (l *ledger) aggregates() map[common.Token]amount.Amount {
	return l.aggregate
}
