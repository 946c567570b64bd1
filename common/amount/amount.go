package amount

import (
	"github.com/holiman/uint256"
	"github.com/jjquek/custodia/common"
)

const (
	// ErrOverflow is returned when an arithmetic result exceeds 256 bits.
	// Balances are bounded by realistic asset supplies, so hitting this
	// indicates a violated precondition rather than a recoverable state.
	ErrOverflow = common.ConstError("amount overflow")

	// ErrUnderflow is returned when a subtraction would produce a
	// negative amount.
	ErrUnderflow = common.ConstError("amount underflow")

	// ErrDivisionByZero is returned by MulDiv for a zero divisor.
	ErrDivisionByZero = common.ConstError("division by zero")
)

// Amount is a non-negative 256-bit quantity of the value asset or of a
// token, in the asset's smallest denomination. The zero value is the
// zero amount.
type Amount struct {
	internal uint256.Int
}

// New creates an Amount from up to 4 uint64 arguments given in
// big-endian order. No arguments yields the zero amount.
func New(args ...uint64) Amount {
	if len(args) > 4 {
		panic("too many arguments")
	}
	res := Amount{}
	for i, arg := range args {
		res.internal[len(args)-1-i] = arg
	}
	return res
}

// NewFromUint256 creates an Amount from an uint256 value.
func NewFromUint256(value *uint256.Int) Amount {
	return Amount{internal: *value}
}

// NewFromBytes creates an Amount from up to 32 big-endian bytes.
func NewFromBytes(bytes ...byte) Amount {
	if len(bytes) > 32 {
		panic("too many bytes")
	}
	res := Amount{}
	res.internal.SetBytes(bytes)
	return res
}

// Uint256 returns the amount as an uint256 value.
func (a Amount) Uint256() uint256.Int {
	return a.internal
}

// Uint64 returns the amount truncated to 64 bits.
func (a Amount) Uint64() uint64 {
	return a.internal.Uint64()
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

// IsUint64 reports whether the amount fits into 64 bits.
func (a Amount) IsUint64() bool {
	return a.internal.IsUint64()
}

// Bytes32 returns the amount as 32 big-endian bytes.
func (a Amount) Bytes32() [32]byte {
	return a.internal.Bytes32()
}

// Cmp returns -1, 0, or +1 depending on whether a is smaller, equal
// to, or larger than b.
func (a Amount) Cmp(b Amount) int {
	return a.internal.Cmp(&b.internal)
}

// Less reports whether a is strictly smaller than b.
func (a Amount) Less(b Amount) bool {
	return a.internal.Lt(&b.internal)
}

func (a Amount) String() string {
	return a.internal.Dec()
}

// Add returns a+b, failing with ErrOverflow if the sum does not fit
// into 256 bits. Amounts never wrap silently.
func Add(a, b Amount) (Amount, error) {
	res := Amount{}
	if _, overflow := res.internal.AddOverflow(&a.internal, &b.internal); overflow {
		return Amount{}, ErrOverflow
	}
	return res, nil
}

// Sub returns a-b, failing with ErrUnderflow if b exceeds a.
func Sub(a, b Amount) (Amount, error) {
	if a.internal.Lt(&b.internal) {
		return Amount{}, ErrUnderflow
	}
	res := Amount{}
	res.internal.Sub(&a.internal, &b.internal)
	return res, nil
}

// MulDiv returns a*b/c using a 512-bit intermediate product, so the
// multiplication never truncates before the division. The result is
// rounded towards zero, bounding the error to one unit of the smallest
// denomination.
func MulDiv(a, b, c Amount) (Amount, error) {
	if c.internal.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	res := Amount{}
	if _, overflow := res.internal.MulDivOverflow(&a.internal, &b.internal, &c.internal); overflow {
		return Amount{}, ErrOverflow
	}
	return res, nil
}
