package state

import (
	"github.com/holiman/uint256"
)

// FeeLedger batches harvested pool fees per asset side until they are large
// enough to forward.
type FeeLedger struct {
	fees0 *uint256.Int
	fees1 *uint256.Int
}

func NewFeeLedger() *FeeLedger {
	return &FeeLedger{
		fees0: new(uint256.Int),
		fees1: new(uint256.Int),
	}
}

// Totals returns copies of both running totals.
func (fl *FeeLedger) Totals() (fees0, fees1 *uint256.Int) {
	return new(uint256.Int).Set(fl.fees0), new(uint256.Int).Set(fl.fees1)
}

// SetTotals overwrites both running totals.
func (fl *FeeLedger) SetTotals(fees0, fees1 *uint256.Int) {
	fl.fees0 = cloneOrZero(fees0)
	fl.fees1 = cloneOrZero(fees1)
}

// Accrue adds harvested amounts. For each side whose total then exceeds
// threshold, the total is reset to zero and returned as due for forwarding;
// sides below the threshold return zero.
func (fl *FeeLedger) Accrue(amount0, amount1, threshold *uint256.Int) (due0, due1 *uint256.Int) {
	fl.fees0 = new(uint256.Int).Add(fl.fees0, amount0)
	fl.fees1 = new(uint256.Int).Add(fl.fees1, amount1)

	due0, due1 = new(uint256.Int), new(uint256.Int)
	if fl.fees0.Gt(threshold) {
		due0, fl.fees0 = fl.fees0, new(uint256.Int)
	}
	if fl.fees1.Gt(threshold) {
		due1, fl.fees1 = fl.fees1, new(uint256.Int)
	}
	return due0, due1
}
