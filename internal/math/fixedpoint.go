package math

import (
	"errors"

	"github.com/holiman/uint256"
)

// DecimalConfig defines fixed-point precision
type DecimalConfig struct {
	DecimalPrecision int          // Number of decimal places
	Scale            *uint256.Int // 10^DecimalPrecision
}

var (
	// RewardPerUnitConfig scales reward-per-unit-liquidity counters (1e36).
	RewardPerUnitConfig = DecimalConfig{
		DecimalPrecision: 36,
		Scale:            uint256.MustFromDecimal("1000000000000000000000000000000000000"),
	}
)

// ErrOverflow is returned when an intermediate result does not fit in 256 bits.
var ErrOverflow = errors.New("fixed-point overflow")

// MulDiv computes a * b / d with a 512-bit intermediate, rounding down.
// d == 0 yields zero, matching uint256 division semantics.
func MulDiv(a, b, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return new(uint256.Int), nil
	}
	z, overflow := new(uint256.Int).MulDivOverflow(a, b, d)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Mul returns a * b or ErrOverflow.
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Add returns a + b or ErrOverflow.
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Min returns a copy of the smaller operand.
func Min(a, b *uint256.Int) *uint256.Int {
	if a.Lt(b) {
		return new(uint256.Int).Set(a)
	}
	return new(uint256.Int).Set(b)
}

// ToPerUnit converts an amount spread over liquidity into a per-unit counter delta:
// amount * 1e36 / liquidity.
func ToPerUnit(amount, liquidity *uint256.Int) (*uint256.Int, error) {
	return MulDiv(amount, RewardPerUnitConfig.Scale, liquidity)
}

// FromPerUnit converts a per-unit counter delta back into an amount owed to a
// given liquidity: delta * liquidity / 1e36.
func FromPerUnit(delta, liquidity *uint256.Int) (*uint256.Int, error) {
	return MulDiv(delta, liquidity, RewardPerUnitConfig.Scale)
}
