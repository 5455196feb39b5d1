package ledger

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// Bank is an in-memory fungible-token ledger. Every movement is recorded as a
// journal inside a single-entry batch and applied through the BalanceTracker.
// Not thread-safe; callers serialise access.
type Bank struct {
	tracker   *BalanceTracker
	validator *InvariantValidator
	sequence  int64
	journals  []Journal
	maxKeep   int
}

// NewBank creates a bank that retains at most maxKeep recent journals for
// inspection (0 keeps none).
func NewBank(maxKeep int) *Bank {
	tracker := NewBalanceTracker()
	return &Bank{
		tracker:   tracker,
		validator: NewInvariantValidator(tracker),
		maxKeep:   maxKeep,
	}
}

// BalanceOf returns holder's balance of asset.
func (b *Bank) BalanceOf(asset, holder common.Address) *uint256.Int {
	return b.tracker.GetBalance(NewAccountKey(holder, asset))
}

// Mint creates amount new units of asset for holder.
func (b *Bank) Mint(asset, to common.Address, amount *uint256.Int) error {
	return b.apply(JournalTypeMint, asset, common.Address{}, to, amount)
}

// Transfer moves amount of asset from one holder to another. A zero amount is
// a no-op.
func (b *Bank) Transfer(asset, from, to common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	if from == to {
		return nil
	}
	return b.apply(JournalTypeTransfer, asset, from, to, amount)
}

func (b *Bank) apply(jt JournalType, asset, from, to common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return fmt.Errorf("%s of %s: amount must be positive", jt, asset.Hex())
	}

	batchID := uuid.New()
	j := Journal{
		JournalID:   uuid.New(),
		BatchID:     batchID,
		Sequence:    b.sequence,
		From:        NewAccountKey(from, asset),
		To:          NewAccountKey(to, asset),
		Asset:       asset,
		Amount:      new(uint256.Int).Set(amount),
		JournalType: jt,
	}
	batch := &Batch{BatchID: batchID, Sequence: b.sequence, Journals: []Journal{j}}

	if err := b.tracker.ApplyBatch(batch); err != nil {
		return fmt.Errorf("%s %s: %w", jt, asset.Hex(), err)
	}
	b.sequence++

	if b.maxKeep > 0 {
		b.journals = append(b.journals, j)
		if len(b.journals) > b.maxKeep {
			b.journals = b.journals[len(b.journals)-b.maxKeep:]
		}
	}
	return nil
}

// Journals returns the retained journal tail, oldest first.
func (b *Bank) Journals() []Journal {
	out := make([]Journal, len(b.journals))
	copy(out, b.journals)
	return out
}

// Validate checks supply conservation across all assets.
func (b *Bank) Validate() error {
	return b.validator.ValidateSupplyConservation()
}

// HolderBalance is one non-zero balance in export form.
type HolderBalance struct {
	Holder string `json:"holder"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

// Balances exports every non-zero balance ordered by holder, then asset.
func (b *Bank) Balances() []HolderBalance {
	snap := b.tracker.Snapshot()
	out := make([]HolderBalance, 0, len(snap))
	for key, amount := range snap {
		if amount.IsZero() {
			continue
		}
		out = append(out, HolderBalance{Holder: key.Holder.Hex(), Asset: key.Asset.Hex(), Amount: amount.Dec()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Holder != out[j].Holder {
			return out[i].Holder < out[j].Holder
		}
		return out[i].Asset < out[j].Asset
	})
	return out
}
