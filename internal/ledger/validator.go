package ledger

import (
	"fmt"
)

// InvariantValidator checks ledger invariants
type InvariantValidator struct {
	tracker *BalanceTracker
}

func NewInvariantValidator(tracker *BalanceTracker) *InvariantValidator {
	return &InvariantValidator{
		tracker: tracker,
	}
}

// ValidateSupplyConservation verifies that, for every asset, the sum of all
// balances equals the minted supply. Transfers can only move units.
func (v *InvariantValidator) ValidateSupplyConservation() error {
	totals := v.tracker.ComputeAssetTotals()

	for asset, total := range totals {
		supply := v.tracker.Supply(asset)
		if !total.Eq(supply) {
			return fmt.Errorf("asset %s: balances sum to %s, supply is %s",
				asset.Hex(), total.Dec(), supply.Dec())
		}
	}

	for asset, supply := range v.tracker.supply {
		if _, ok := totals[asset]; !ok && !supply.IsZero() {
			return fmt.Errorf("asset %s: supply %s with no balances", asset.Hex(), supply.Dec())
		}
	}

	return nil
}
