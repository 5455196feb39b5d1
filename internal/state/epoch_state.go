package state

import (
	"sort"

	"github.com/holiman/uint256"
)

// EpochState holds the process-wide emission schedule.
type EpochState struct {
	periodEnd        uint64
	ratePerSecond    *uint256.Int
	rateByEpochStart map[uint64]*uint256.Int // append-only audit trail
}

// Schedule is a copy of the active emission parameters.
type Schedule struct {
	PeriodEnd     uint64
	RatePerSecond *uint256.Int
}

func NewEpochState() *EpochState {
	return &EpochState{
		ratePerSecond:    new(uint256.Int),
		rateByEpochStart: make(map[uint64]*uint256.Int),
	}
}

// Schedule returns the active rate and period end.
func (es *EpochState) Schedule() Schedule {
	return Schedule{
		PeriodEnd:     es.periodEnd,
		RatePerSecond: new(uint256.Int).Set(es.ratePerSecond),
	}
}

// SetSchedule replaces the active rate and period end.
func (es *EpochState) SetSchedule(s Schedule) {
	es.periodEnd = s.PeriodEnd
	es.ratePerSecond = cloneOrZero(s.RatePerSecond)
}

// RecordRate stores the rate active at an epoch start and returns the value it
// replaced (nil if none) so that callers can undo the write.
func (es *EpochState) RecordRate(epochStart uint64, rate *uint256.Int) *uint256.Int {
	prev := es.rateByEpochStart[epochStart]
	es.rateByEpochStart[epochStart] = new(uint256.Int).Set(rate)
	return prev
}

// RestoreRate reverts a RecordRate. A nil prev removes the entry.
func (es *EpochState) RestoreRate(epochStart uint64, prev *uint256.Int) {
	if prev == nil {
		delete(es.rateByEpochStart, epochStart)
		return
	}
	es.rateByEpochStart[epochStart] = prev
}

// RateAt returns the rate recorded for an epoch start.
func (es *EpochState) RateAt(epochStart uint64) (*uint256.Int, bool) {
	r, ok := es.rateByEpochStart[epochStart]
	if !ok {
		return nil, false
	}
	return new(uint256.Int).Set(r), true
}

// EpochStarts returns every audited epoch start in ascending order.
func (es *EpochState) EpochStarts() []uint64 {
	keys := make([]uint64, 0, len(es.rateByEpochStart))
	for k := range es.rateByEpochStart {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
