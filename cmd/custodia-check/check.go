package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
	"github.com/jjquek/custodia/journal"
)

var (
	backendFlag = cli.StringFlag{
		Name:  "backend",
		Usage: "journal backend to open, leveldb or sqlite",
		Value: string(journal.LevelDB),
	}
)

var Check = cli.Command{
	Action:    check,
	Name:      "check",
	Usage:     "performs extensive journal invariant checks",
	ArgsUsage: "<journal>",
	Flags: []cli.Flag{
		&backendFlag,
	},
}

func check(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing journal location")
	}
	path := context.Args().Get(0)

	store, err := journal.Open(journal.Config{
		Backend: journal.Backend(context.String(backendFlag.Name)),
		Path:    path,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Checking journal in %s ...\n", path)
	err = errors.Join(
		journal.VerifyChain(store),
		replay(store),
	)
	if err == nil {
		fmt.Printf("All checks passed!\n")
	}
	return errors.Join(err, store.Close())
}

// books is the balance state rebuilt from a journal replay. It mirrors
// what a custody instance would hold in memory after processing the
// same operations.
type books struct {
	enrolled  map[common.Address]struct{}
	value     map[common.Address]amount.Amount
	tokens    map[common.Address]map[common.Token]amount.Amount
	aggregate map[common.Token]amount.Amount
}

// replay rebuilds balances from the journal and verifies that no
// record ever overdraws an account and that every credited account was
// enrolled first. Together with the hash-chain check this confirms the
// journal describes a history custody could actually have produced.
func replay(store journal.Store) error {
	b := &books{
		enrolled:  map[common.Address]struct{}{},
		value:     map[common.Address]amount.Amount{},
		tokens:    map[common.Address]map[common.Token]amount.Amount{},
		aggregate: map[common.Token]amount.Amount{},
	}
	count := 0
	err := store.Visit(0, func(r journal.Record) error {
		count++
		if err := b.apply(r); err != nil {
			return fmt.Errorf("record %d (%s): %w", r.Seq, r.Kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// The aggregates must match the per-depositor sums they shadow.
	for token, total := range b.aggregate {
		sum := amount.New()
		for _, holdings := range b.tokens {
			sum, err = amount.Add(sum, holdings[token])
			if err != nil {
				return err
			}
		}
		if sum != total {
			return fmt.Errorf("token %s: aggregate %s does not match depositor sum %s", token, total, sum)
		}
	}

	fmt.Printf("Replayed %d records over %d accounts and %d tokens.\n",
		count, len(b.enrolled), len(b.aggregate))
	return nil
}

func (b *books) apply(r journal.Record) error {
	switch r.Kind {
	case journal.KindDepositorEnrolled:
		if _, found := b.enrolled[r.Account]; found {
			return fmt.Errorf("account %s enrolled twice", r.Account)
		}
		b.enrolled[r.Account] = struct{}{}
		return nil
	case journal.KindValueDeposited:
		return b.creditValue(r.Account, r.AmountA)
	case journal.KindValueWithdrawn:
		return b.debitValue(r.Account, r.AmountA)
	case journal.KindTokenDeposited:
		return b.creditToken(r.Account, r.TokenA, r.AmountA)
	case journal.KindTokenWithdrawn:
		return b.debitToken(r.Account, r.TokenA, r.AmountA)
	case journal.KindTokensSwapped:
		return errors.Join(
			b.debitToken(r.Account, r.TokenA, r.AmountA),
			b.creditToken(r.Account, r.TokenB, r.AmountB),
		)
	case journal.KindValueStaked:
		return errors.Join(
			b.debitValue(r.Account, r.AmountA),
			b.creditToken(r.Account, r.TokenA, r.AmountB),
		)
	}
	return fmt.Errorf("unknown record kind %d", r.Kind)
}

func (b *books) creditValue(account common.Address, value amount.Amount) error {
	if _, found := b.enrolled[account]; !found {
		return fmt.Errorf("account %s credited before enrollment", account)
	}
	sum, err := amount.Add(b.value[account], value)
	if err != nil {
		return err
	}
	b.value[account] = sum
	return nil
}

func (b *books) debitValue(account common.Address, value amount.Amount) error {
	rest, err := amount.Sub(b.value[account], value)
	if err != nil {
		return fmt.Errorf("account %s overdrawn: %w", account, err)
	}
	b.value[account] = rest
	return nil
}

func (b *books) creditToken(account common.Address, token common.Token, value amount.Amount) error {
	if _, found := b.enrolled[account]; !found {
		return fmt.Errorf("account %s credited before enrollment", account)
	}
	holdings := b.tokens[account]
	if holdings == nil {
		holdings = map[common.Token]amount.Amount{}
		b.tokens[account] = holdings
	}
	sum, err := amount.Add(holdings[token], value)
	if err != nil {
		return err
	}
	total, err := amount.Add(b.aggregate[token], value)
	if err != nil {
		return err
	}
	holdings[token] = sum
	b.aggregate[token] = total
	return nil
}

func (b *books) debitToken(account common.Address, token common.Token, value amount.Amount) error {
	rest, err := amount.Sub(b.tokens[account][token], value)
	if err != nil {
		return fmt.Errorf("account %s overdrawn on %s: %w", account, token, err)
	}
	total, err := amount.Sub(b.aggregate[token], value)
	if err != nil {
		return fmt.Errorf("aggregate of %s overdrawn: %w", token, err)
	}
	b.tokens[account][token] = rest
	b.aggregate[token] = total
	return nil
}
