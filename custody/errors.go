package custody

import "github.com/jjquek/custodia/common"

const (
	// ErrNotInitialized is returned by operations invoked before
	// Initialize has installed the first operator.
	ErrNotInitialized = common.ConstError("custody not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize call.
	ErrAlreadyInitialized = common.ConstError("custody already initialized")

	// ErrUnauthorized is returned when the caller lacks the required
	// role or targets an ineligible account.
	ErrUnauthorized = common.ConstError("unauthorized")

	// ErrInvalidAmount is returned for zero or otherwise invalid
	// quantities and parameter combinations.
	ErrInvalidAmount = common.ConstError("invalid amount")

	// ErrInsufficientBalance is returned when a debit exceeds the
	// recorded balance.
	ErrInsufficientBalance = common.ConstError("insufficient balance")

	// ErrNothingDeposited is returned by queries and debits against an
	// account or account/token pair that has never been credited.
	ErrNothingDeposited = common.ConstError("nothing deposited")

	// ErrTransferFailed is returned when the external transfer
	// mechanism reported a failure. No ledger mutation is applied.
	ErrTransferFailed = common.ConstError("transfer failed")

	// ErrExternalCall is returned when the exchange, staking, or
	// price-feed mechanism failed or produced an unusable response.
	ErrExternalCall = common.ConstError("external call failed")

	// ErrReentrantCall is returned when an operation is invoked while
	// another one is still in flight on the same custody instance.
	ErrReentrantCall = common.ConstError("reentrant call")
)
