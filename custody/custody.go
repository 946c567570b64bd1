// Package custody implements a custodial balance ledger: it tracks
// value-asset and token deposits on behalf of depositors, under the
// control of operators, and supports operator-initiated swaps and
// staking of deposited funds while preserving per-depositor
// accounting.
//
// All state lives on a single Custody instance. Operations execute one
// at a time to completion; a nested or overlapping invocation of a
// mutating operation fails with ErrReentrantCall rather than observing
// a half-applied state. Caller identity is passed explicitly -- the
// embedding application is responsible for authenticating that the
// given addresses actually speak for their callers.
package custody

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jjquek/custodia/common"
	"github.com/jjquek/custodia/common/amount"
	"github.com/jjquek/custodia/journal"
)

// Parameters groups everything needed to construct a Custody instance.
type Parameters struct {
	// Account is the address under which the custody system itself
	// holds assets; token pulls and swap outputs are directed here.
	Account common.Address

	// ValueToken is the exchange venue's handle for the (wrapped)
	// value asset, used for rate discovery during valuation.
	ValueToken common.Token

	// RateScale is the scaling factor of the price feed's rate;
	// reference-currency values are balance * rate / RateScale.
	RateScale amount.Amount

	// Tokens moves token units in and out of custody.
	Tokens TokenTransferor

	// Value pays the native value asset out of custody.
	Value ValueTransferor

	// Exchange executes token swaps.
	Exchange Exchange

	// Staking accepts value stakes against claim tokens.
	Staking StakingPool

	// PriceFeed converts value amounts into the reference currency.
	PriceFeed PriceFeed

	// Journal receives the notification log. A non-persistent
	// in-memory store is used if nil.
	Journal journal.Store

	// Logger receives operation logs; silent if nil.
	Logger *zap.Logger
}

// Custody is the context object owning all ledger and role state. Use
// NewCustody to create one and Initialize to install the first
// operator before invoking any other operation.
type Custody struct {
	params Parameters
	log    *zap.Logger

	inFlight atomic.Bool

	initialized bool
	roles       roles
	ledger      ledger

	// allowances caches how much authorization over each token the
	// exchange spender currently has left, to avoid redundant
	// authorization calls.
	allowances map[common.Token]amount.Amount

	journal *journal.Writer
}

// NewCustody creates a custody instance from the given parameters. All
// five gateways must be configured.
func NewCustody(params Parameters) (*Custody, error) {
	if params.Tokens == nil || params.Value == nil || params.Exchange == nil ||
		params.Staking == nil || params.PriceFeed == nil {
		return nil, fmt.Errorf("all gateways must be configured")
	}
	if params.RateScale.IsZero() {
		return nil, fmt.Errorf("rate scale must not be zero")
	}
	store := params.Journal
	if store == nil {
		store = journal.NewMemoryStore()
	}
	writer, err := journal.NewWriter(store)
	if err != nil {
		return nil, err
	}
	log := params.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Custody{
		params:     params,
		log:        log,
		roles:      newRoles(),
		ledger:     newLedger(),
		allowances: map[common.Token]amount.Amount{},
		journal:    writer,
	}, nil
}

// Initialize installs the given account as the sole initial operator.
// It must be called exactly once; further calls fail with
// ErrAlreadyInitialized.
func (c *Custody) Initialize(operator common.Address) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.initialized = true
	c.roles.operators[operator] = struct{}{}
	c.log.Info("custody initialized", zap.Stringer("operator", operator))
	return nil
}

// GrantDepositor adds an account to the depositor set. Only operators
// may grant; granting to an existing depositor is a no-op.
func (c *Custody) GrantDepositor(caller, account common.Address) error {
	if err := c.enter(); err != nil {
		return err
	}
	defer c.leave()
	if !c.initialized {
		return ErrNotInitialized
	}
	if !c.roles.isOperator(caller) {
		return fmt.Errorf("%w: only operators can grant depositor status", ErrUnauthorized)
	}
	c.enroll(account)
	return nil
}

// IsOperator reports whether the given account holds the operator
// capability.
func (c *Custody) IsOperator(account common.Address) bool {
	return c.roles.isOperator(account)
}

// IsDepositor reports whether the given account is enrolled as a
// depositor.
func (c *Custody) IsDepositor(account common.Address) bool {
	return c.roles.isDepositor(account)
}

// enroll adds the account to the depositor set if not yet present and
// emits the corresponding notification.
func (c *Custody) enroll(account common.Address) {
	if !c.roles.enrollDepositor(account) {
		return
	}
	c.emit(journal.Record{
		Kind:    journal.KindDepositorEnrolled,
		Account: account,
	})
	c.log.Info("depositor enrolled", zap.Stringer("account", account))
}

// enter acquires the non-reentrant critical section guarding all
// mutating operations for their full duration, external calls
// included.
func (c *Custody) enter() error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	return nil
}

func (c *Custody) leave() {
	c.inFlight.Store(false)
}

// emit schedules a notification for the journal. Persistence errors
// surface at Flush or Close.
func (c *Custody) emit(record journal.Record) {
	record.Unix = uint64(time.Now().Unix())
	if err := c.journal.Log(record); err != nil {
		// Sealing only fails on an unencodable record, which would be
		// a programming error in the emitting operation.
		c.log.Error("failed to journal notification",
			zap.Stringer("kind", record.Kind), zap.Error(err))
	}
}

// Flush blocks until all emitted notifications have been persisted and
// reports any journaling errors encountered so far.
func (c *Custody) Flush() error {
	return c.journal.Flush()
}

// Close flushes and releases the custody instance. The balance and
// role maps only live in memory; the journal is the only state that
// survives the process.
func (c *Custody) Close() error {
	return c.journal.Close()
}
