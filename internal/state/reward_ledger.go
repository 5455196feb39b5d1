package state

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// RewardEntry is the accrual record of one staked position.
type RewardEntry struct {
	Owner     common.Address
	TickLower int32
	TickUpper int32
	Liquidity *uint256.Int // Constant for the lifetime of a stake

	// Accumulated only increases, except on the pay-and-zero transition.
	Accumulated *uint256.Int
	// Snapshot is the last observed range-scoped reward-per-unit value (1e36 scale).
	Snapshot *uint256.Int
	// LastSettled short-circuits a second settlement at the same timestamp.
	LastSettled uint64
}

// Clone returns a deep copy.
func (e RewardEntry) Clone() RewardEntry {
	return RewardEntry{
		Owner:       e.Owner,
		TickLower:   e.TickLower,
		TickUpper:   e.TickUpper,
		Liquidity:   cloneOrZero(e.Liquidity),
		Accumulated: cloneOrZero(e.Accumulated),
		Snapshot:    cloneOrZero(e.Snapshot),
		LastSettled: e.LastSettled,
	}
}

// RewardLedger maps staked positions to their accrual records.
// Not thread-safe. Only accessed from the single-threaded gauge core.
type RewardLedger struct {
	entries map[PositionID]*RewardEntry
}

func NewRewardLedger() *RewardLedger {
	return &RewardLedger{
		entries: make(map[PositionID]*RewardEntry),
	}
}

// Get returns a copy of the entry for id.
func (l *RewardLedger) Get(id PositionID) (RewardEntry, bool) {
	e, ok := l.entries[id]
	if !ok {
		return RewardEntry{}, false
	}
	return e.Clone(), true
}

// Put stores a copy of entry under id, replacing any existing record.
func (l *RewardLedger) Put(id PositionID, entry RewardEntry) {
	e := entry.Clone()
	l.entries[id] = &e
}

func (l *RewardLedger) Delete(id PositionID) {
	delete(l.entries, id)
}

func (l *RewardLedger) Len() int {
	return len(l.entries)
}

// IDs returns all tracked positions in ascending order.
func (l *RewardLedger) IDs() []PositionID {
	ids := make([]PositionID, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TotalAccumulated sums unpaid rewards across all positions.
func (l *RewardLedger) TotalAccumulated() *uint256.Int {
	total := new(uint256.Int)
	for _, e := range l.entries {
		total.Add(total, e.Accumulated)
	}
	return total
}

func cloneOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
