package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Export types are the JSON-serializable form of the gauge state, used for
// audit snapshots. Amounts are decimal strings.

type OwnerPositionsExport struct {
	Owner     string       `json:"owner"`
	Positions []PositionID `json:"positions"`
}

type RewardEntryExport struct {
	PositionID  PositionID `json:"position_id"`
	Owner       string     `json:"owner"`
	TickLower   int32      `json:"tick_lower"`
	TickUpper   int32      `json:"tick_upper"`
	Liquidity   string     `json:"liquidity"`
	Accumulated string     `json:"accumulated"`
	Snapshot    string     `json:"snapshot"`
	LastSettled uint64     `json:"last_settled"`
}

type EpochExport struct {
	PeriodEnd        uint64            `json:"period_end"`
	RatePerSecond    string            `json:"rate_per_second"`
	RateByEpochStart map[uint64]string `json:"rate_by_epoch_start"`
}

type FeeExport struct {
	Fees0 string `json:"fees0"`
	Fees1 string `json:"fees1"`
}

func (si *StakeIndex) Export() []OwnerPositionsExport {
	out := make([]OwnerPositionsExport, 0, len(si.sets))
	for _, owner := range si.Owners() {
		out = append(out, OwnerPositionsExport{
			Owner:     owner.Hex(),
			Positions: si.sets[owner].All(),
		})
	}
	return out
}

// RestoreStakeIndex rebuilds an index from its export, preserving slot order.
func RestoreStakeIndex(data []OwnerPositionsExport) (*StakeIndex, error) {
	si := NewStakeIndex()
	for _, op := range data {
		if !common.IsHexAddress(op.Owner) {
			return nil, fmt.Errorf("invalid owner address %q", op.Owner)
		}
		owner := common.HexToAddress(op.Owner)
		for _, id := range op.Positions {
			if err := si.Add(owner, id); err != nil {
				return nil, err
			}
		}
	}
	return si, nil
}

func (l *RewardLedger) Export() []RewardEntryExport {
	out := make([]RewardEntryExport, 0, len(l.entries))
	for _, id := range l.IDs() {
		e := l.entries[id]
		out = append(out, RewardEntryExport{
			PositionID:  id,
			Owner:       e.Owner.Hex(),
			TickLower:   e.TickLower,
			TickUpper:   e.TickUpper,
			Liquidity:   e.Liquidity.Dec(),
			Accumulated: e.Accumulated.Dec(),
			Snapshot:    e.Snapshot.Dec(),
			LastSettled: e.LastSettled,
		})
	}
	return out
}

func RestoreRewardLedger(data []RewardEntryExport) (*RewardLedger, error) {
	l := NewRewardLedger()
	for _, x := range data {
		liq, err := uint256.FromDecimal(x.Liquidity)
		if err != nil {
			return nil, fmt.Errorf("position %d liquidity: %w", x.PositionID, err)
		}
		acc, err := uint256.FromDecimal(x.Accumulated)
		if err != nil {
			return nil, fmt.Errorf("position %d accumulated: %w", x.PositionID, err)
		}
		snap, err := uint256.FromDecimal(x.Snapshot)
		if err != nil {
			return nil, fmt.Errorf("position %d snapshot: %w", x.PositionID, err)
		}
		l.Put(x.PositionID, RewardEntry{
			Owner:       common.HexToAddress(x.Owner),
			TickLower:   x.TickLower,
			TickUpper:   x.TickUpper,
			Liquidity:   liq,
			Accumulated: acc,
			Snapshot:    snap,
			LastSettled: x.LastSettled,
		})
	}
	return l, nil
}

func (es *EpochState) Export() EpochExport {
	rates := make(map[uint64]string, len(es.rateByEpochStart))
	for k, v := range es.rateByEpochStart {
		rates[k] = v.Dec()
	}
	return EpochExport{
		PeriodEnd:        es.periodEnd,
		RatePerSecond:    es.ratePerSecond.Dec(),
		RateByEpochStart: rates,
	}
}

func RestoreEpochState(data EpochExport) (*EpochState, error) {
	es := NewEpochState()
	rate, err := uint256.FromDecimal(data.RatePerSecond)
	if err != nil {
		return nil, fmt.Errorf("rate_per_second: %w", err)
	}
	es.SetSchedule(Schedule{PeriodEnd: data.PeriodEnd, RatePerSecond: rate})
	for k, v := range data.RateByEpochStart {
		r, err := uint256.FromDecimal(v)
		if err != nil {
			return nil, fmt.Errorf("rate for epoch %d: %w", k, err)
		}
		es.RecordRate(k, r)
	}
	return es, nil
}

func (fl *FeeLedger) Export() FeeExport {
	return FeeExport{Fees0: fl.fees0.Dec(), Fees1: fl.fees1.Dec()}
}

func RestoreFeeLedger(data FeeExport) (*FeeLedger, error) {
	f0, err := uint256.FromDecimal(data.Fees0)
	if err != nil {
		return nil, fmt.Errorf("fees0: %w", err)
	}
	f1, err := uint256.FromDecimal(data.Fees1)
	if err != nil {
		return nil, fmt.Errorf("fees1: %w", err)
	}
	fl := NewFeeLedger()
	fl.SetTotals(f0, f1)
	return fl, nil
}
