// Package journal persists the append-only notification log of the
// custody system. Every completed mutating operation produces one
// record; external observers and the offline check tool consume the
// log through the Store interface.
//
// Records are chained: each record carries the Keccak256 digest of its
// parent's digest concatenated with its own encoded payload, making
// the log tamper-evident. The digest of the latest record is the head
// of the journal.
package journal

import (
	"fmt"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
)

//go:generate mockgen -source journal.go -destination journal_mock.go -package journal

// Kind enumerates the notification types recorded in the journal.
type Kind uint8

const (
	KindDepositorEnrolled Kind = iota
	KindValueDeposited
	KindValueWithdrawn
	KindTokenDeposited
	KindTokenWithdrawn
	KindTokensSwapped
	KindValueStaked
)

func (k Kind) String() string {
	switch k {
	case KindDepositorEnrolled:
		return "DepositorEnrolled"
	case KindValueDeposited:
		return "ValueDeposited"
	case KindValueWithdrawn:
		return "ValueWithdrawn"
	case KindTokenDeposited:
		return "TokenDeposited"
	case KindTokenWithdrawn:
		return "TokenWithdrawn"
	case KindTokensSwapped:
		return "TokensSwapped"
	case KindValueStaked:
		return "ValueStaked"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Record is a single notification. Which of the optional fields are
// populated depends on the Kind:
//
//   - DepositorEnrolled: Account
//   - ValueDeposited/ValueWithdrawn: Account, AmountA
//   - TokenDeposited/TokenWithdrawn: Account, TokenA, AmountA
//   - TokensSwapped: Account, TokenA (in), TokenB (out),
//     AmountA (consumed), AmountB (received)
//   - ValueStaked: Account, TokenA (claim token), AmountA (staked),
//     AmountB (claim credited)
type Record struct {
	Seq     uint64
	Kind    Kind
	Account common.Address
	TokenA  common.Token
	TokenB  common.Token
	AmountA amount.Amount
	AmountB amount.Amount
	Unix    uint64

	// Digest is Keccak256(parent digest || encoded payload), filled in
	// on append.
	Digest common.Hash
}

// Store is an append-only persistence backend for journal records.
// Implementations are safe for a single appender with concurrent
// readers.
type Store interface {
	// Append persists the given record. Records must arrive with
	// strictly increasing, gap-free sequence numbers.
	Append(Record) error

	// Visit calls the given function for every stored record with
	// Seq >= from, in sequence order, stopping at the first error.
	Visit(from uint64, visit func(Record) error) error

	// Head returns the sequence number following the last stored
	// record and the digest of that record. An empty store reports
	// (0, zero hash).
	Head() (uint64, common.Hash, error)

	// Flush syncs all appended records to the backing medium.
	Flush() error

	// Close flushes and releases the store.
	Close() error
}
