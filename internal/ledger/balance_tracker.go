package ledger

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ErrInsufficientBalance is returned when a transfer would overdraw an account.
var ErrInsufficientBalance = errors.New("insufficient balance")

// BalanceTracker maintains in-memory account balances and per-asset supply.
type BalanceTracker struct {
	balances map[AccountKey]*uint256.Int
	supply   map[common.Address]*uint256.Int
}

func NewBalanceTracker() *BalanceTracker {
	return &BalanceTracker{
		balances: make(map[AccountKey]*uint256.Int),
		supply:   make(map[common.Address]*uint256.Int),
	}
}

// ApplyBatch validates every journal against current balances, then applies
// all of them. Either every journal is applied or none is.
func (bt *BalanceTracker) ApplyBatch(batch *Batch) error {
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}

	// Dry run on a scratch copy of the touched accounts.
	scratch := make(map[AccountKey]*uint256.Int)
	get := func(k AccountKey) *uint256.Int {
		if v, ok := scratch[k]; ok {
			return v
		}
		v := new(uint256.Int).Set(bt.GetBalance(k))
		scratch[k] = v
		return v
	}

	for _, j := range batch.Journals {
		if j.JournalType == JournalTypeTransfer {
			from := get(j.From)
			if from.Lt(j.Amount) {
				return fmt.Errorf("journal %s debit %s: have=%s need=%s: %w",
					j.JournalID, j.From.AccountPath(), from.Dec(), j.Amount.Dec(), ErrInsufficientBalance)
			}
			from.Sub(from, j.Amount)
		}
		to := get(j.To)
		to.Add(to, j.Amount)
	}

	for _, j := range batch.Journals {
		if j.JournalType == JournalTypeMint {
			s := bt.supplyOf(j.Asset)
			s.Add(s, j.Amount)
		}
	}
	for k, v := range scratch {
		bt.balances[k] = v
	}
	return nil
}

// GetBalance returns the current balance for an account
func (bt *BalanceTracker) GetBalance(key AccountKey) *uint256.Int {
	if b, ok := bt.balances[key]; ok {
		return new(uint256.Int).Set(b)
	}
	return new(uint256.Int)
}

// Supply returns total minted units of an asset.
func (bt *BalanceTracker) Supply(asset common.Address) *uint256.Int {
	return new(uint256.Int).Set(bt.supplyOf(asset))
}

func (bt *BalanceTracker) supplyOf(asset common.Address) *uint256.Int {
	s, ok := bt.supply[asset]
	if !ok {
		s = new(uint256.Int)
		bt.supply[asset] = s
	}
	return s
}

// ComputeAssetTotals sums all account balances per asset (should equal supply)
func (bt *BalanceTracker) ComputeAssetTotals() map[common.Address]*uint256.Int {
	totals := make(map[common.Address]*uint256.Int)
	for key, balance := range bt.balances {
		t, ok := totals[key.Asset]
		if !ok {
			t = new(uint256.Int)
			totals[key.Asset] = t
		}
		t.Add(t, balance)
	}
	return totals
}

// Snapshot returns a copy of all balances (for state hashing)
func (bt *BalanceTracker) Snapshot() map[AccountKey]*uint256.Int {
	snapshot := make(map[AccountKey]*uint256.Int, len(bt.balances))
	for k, v := range bt.balances {
		snapshot[k] = new(uint256.Int).Set(v)
	}
	return snapshot
}
