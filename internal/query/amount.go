package query

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a base-unit amount in whole tokens, e.g. 1.5e18 with
// 18 decimals as "1.5".
func FormatAmount(v *uint256.Int, decimals int32) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v.ToBig(), -decimals).String()
}

// ParseAmount converts a whole-token decimal string into base units. Amounts
// finer than one base unit are rejected.
func ParseAmount(s string, decimals int32) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, errors.New("amount must not be negative")
	}
	units := d.Shift(decimals)
	if !units.IsInteger() {
		return nil, fmt.Errorf("amount %s has more than %d decimals", s, decimals)
	}
	v, overflow := uint256.FromBig(units.BigInt())
	if overflow {
		return nil, fmt.Errorf("amount %s overflows 256 bits", s)
	}
	return v, nil
}
