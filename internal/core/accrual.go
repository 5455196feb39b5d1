package core

import (
	fpmath "GaugeLedger/internal/math"
	"GaugeLedger/internal/state"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var signBit = new(uint256.Int).Lsh(uint256.NewInt(1), 255)

// AccrualEngine owns the emission schedule and the per-position reward ledger.
// Settlement is lazy: a position's share is computed from the difference
// between the pool's range-scoped reward-per-unit counter and the value
// snapshotted at the position's last settlement.
type AccrualEngine struct {
	pool    Pool
	rewards *state.RewardLedger
	epochs  *state.EpochState
}

func NewAccrualEngine(pool Pool, rewards *state.RewardLedger, epochs *state.EpochState) *AccrualEngine {
	return &AccrualEngine{
		pool:    pool,
		rewards: rewards,
		epochs:  epochs,
	}
}

// Open creates the ledger entry of a newly staked position, snapshotting the
// current range-scoped counter.
func (e *AccrualEngine) Open(tx *opTx, now uint64, id state.PositionID, owner common.Address, info PositionInfo) error {
	if _, exists := e.rewards.Get(id); exists {
		return fmt.Errorf("open position %d: %w", id, ErrAlreadyStaked)
	}

	snapshot, err := e.pool.RangeScopedRewardPerUnit(info.TickLower, info.TickUpper, nil)
	if err != nil {
		return fmt.Errorf("open position %d: range reward: %w", id, err)
	}

	e.rewards.Put(id, state.RewardEntry{
		Owner:       owner,
		TickLower:   info.TickLower,
		TickUpper:   info.TickUpper,
		Liquidity:   info.Liquidity,
		Accumulated: new(uint256.Int),
		Snapshot:    snapshot,
		LastSettled: now,
	})
	tx.restore(func() { e.rewards.Delete(id) })
	return nil
}

// Close drops the ledger entry of an unstaked position. The entry must have
// been paid out first.
func (e *AccrualEngine) Close(tx *opTx, id state.PositionID) error {
	entry, ok := e.rewards.Get(id)
	if !ok {
		return fmt.Errorf("close position %d: %w", id, ErrNotStaked)
	}
	if !entry.Accumulated.IsZero() {
		return fmt.Errorf("close position %d with %s unpaid: %w", id, entry.Accumulated.Dec(), ErrInvariantViolation)
	}
	e.rewards.Delete(id)
	tx.restore(func() { e.rewards.Put(id, entry) })
	return nil
}

// Settle credits everything the position earned since its last settlement
// and re-snapshots it. A second call at the same timestamp is a no-op.
func (e *AccrualEngine) Settle(tx *opTx, now uint64, id state.PositionID) error {
	entry, ok := e.rewards.Get(id)
	if !ok {
		return fmt.Errorf("settle position %d: %w", id, ErrNotStaked)
	}
	if entry.LastSettled == now {
		return nil
	}

	if err := e.pool.AdvanceGlobalCounter(now); err != nil {
		return fmt.Errorf("settle position %d: advance pool: %w", id, err)
	}

	earned, err := e.CalculateEarned(now, entry)
	if err != nil {
		return fmt.Errorf("settle position %d: %w", id, err)
	}
	accumulated, err := fpmath.Add(entry.Accumulated, earned)
	if err != nil {
		return fmt.Errorf("settle position %d: %w", id, err)
	}

	// Mark to now: the pool counter was just advanced, so nil reads it as is.
	snapshot, err := e.pool.RangeScopedRewardPerUnit(entry.TickLower, entry.TickUpper, nil)
	if err != nil {
		return fmt.Errorf("settle position %d: range reward: %w", id, err)
	}

	prev := entry.Clone()
	entry.LastSettled = now
	entry.Accumulated = accumulated
	entry.Snapshot = snapshot
	e.rewards.Put(id, entry)
	tx.restore(func() { e.rewards.Put(id, prev) })
	return nil
}

// CalculateEarned returns the reward owed to entry between its snapshot and
// now, without mutating anything. The pool's global counter is projected
// forward by the emission since its last update, capped at the pool's reserve.
func (e *AccrualEngine) CalculateEarned(now uint64, entry state.RewardEntry) (*uint256.Int, error) {
	global := e.pool.GlobalRewardPerUnit()

	lastUpdate := e.pool.LastGlobalUpdateTime()
	if now > lastUpdate {
		staked := e.pool.TotalStakedLiquidity()
		reserve := e.pool.RewardAssetBalance()
		if !staked.IsZero() && !reserve.IsZero() {
			rate := e.epochs.Schedule().RatePerSecond
			emitted, err := fpmath.Mul(rate, uint256.NewInt(now-lastUpdate))
			if err != nil {
				return nil, fmt.Errorf("emission: %w", err)
			}
			available := fpmath.Min(emitted, reserve)

			perUnit, err := fpmath.ToPerUnit(available, staked)
			if err != nil {
				return nil, fmt.Errorf("per-unit delta: %w", err)
			}
			// Counters wrap like the pool's own fixed-point growth values.
			global = new(uint256.Int).Add(global, perUnit)
		}
	}

	value, err := e.pool.RangeScopedRewardPerUnit(entry.TickLower, entry.TickUpper, global)
	if err != nil {
		return nil, fmt.Errorf("range reward: %w", err)
	}

	// Range counters are modular; a difference with the top bit set means the
	// value moved backwards.
	delta := new(uint256.Int).Sub(value, entry.Snapshot)
	if delta.Cmp(signBit) >= 0 {
		return nil, fmt.Errorf("range reward %s behind snapshot %s: %w",
			value.Dec(), entry.Snapshot.Dec(), ErrInvariantViolation)
	}
	return fpmath.FromPerUnit(delta, entry.Liquidity)
}

// Pending returns accumulated plus not-yet-settled rewards of a position.
func (e *AccrualEngine) Pending(now uint64, id state.PositionID) (*uint256.Int, error) {
	entry, ok := e.rewards.Get(id)
	if !ok {
		return nil, fmt.Errorf("pending position %d: %w", id, ErrNotStaked)
	}
	earned, err := e.CalculateEarned(now, entry)
	if err != nil {
		return nil, fmt.Errorf("pending position %d: %w", id, err)
	}
	return fpmath.Add(entry.Accumulated, earned)
}

// Payout zeroes and returns the accumulated reward of a position. The caller
// performs the outbound transfer after this returns.
func (e *AccrualEngine) Payout(tx *opTx, id state.PositionID) (*uint256.Int, error) {
	entry, ok := e.rewards.Get(id)
	if !ok {
		return nil, fmt.Errorf("payout position %d: %w", id, ErrNotStaked)
	}
	if entry.Accumulated.IsZero() {
		return new(uint256.Int), nil
	}

	prev := entry.Clone()
	amount := entry.Accumulated
	entry.Accumulated = new(uint256.Int)
	e.rewards.Put(id, entry)
	tx.restore(func() { e.rewards.Put(id, prev) })
	return amount, nil
}

// RatePlan is a validated emission schedule not yet committed.
type RatePlan struct {
	Timestamp  uint64
	Deposit    *uint256.Int // as transferred by the caller
	CarryOver  *uint256.Int // pool emission that accrued with nothing staked
	Leftover   *uint256.Int // unspent emission of the open period, zero on a fresh period
	Total      *uint256.Int // Deposit + CarryOver + Leftover, handed to the pool
	Rate       *uint256.Int
	Duration   uint64
	EpochStart uint64
	PeriodEnd  uint64
}

// PlanRate computes the rate a deposit at now establishes, folding in the
// pool's carry-over and, mid-period, the unspent emission of the open period.
// heldBalance is the reward asset the gauge holds after the deposit arrived.
func (e *AccrualEngine) PlanRate(now uint64, deposit, carryOver, heldBalance *uint256.Int) (RatePlan, error) {
	duration := fpmath.TimeUntilEpochEnd(now)
	if duration == 0 {
		return RatePlan{}, ErrZeroDuration
	}
	durationU := uint256.NewInt(duration)

	amount, err := fpmath.Add(deposit, carryOver)
	if err != nil {
		return RatePlan{}, fmt.Errorf("plan rate: %w", err)
	}

	sched := e.epochs.Schedule()
	leftover := new(uint256.Int)
	if now < sched.PeriodEnd {
		leftover, err = fpmath.Mul(uint256.NewInt(sched.PeriodEnd-now), sched.RatePerSecond)
		if err != nil {
			return RatePlan{}, fmt.Errorf("plan rate: leftover: %w", err)
		}
	}

	total, err := fpmath.Add(amount, leftover)
	if err != nil {
		return RatePlan{}, fmt.Errorf("plan rate: %w", err)
	}

	rate := new(uint256.Int).Div(total, durationU)
	if rate.IsZero() {
		return RatePlan{}, ErrInvalidRate
	}

	maxRate := new(uint256.Int).Div(heldBalance, durationU)
	if rate.Gt(maxRate) {
		return RatePlan{}, fmt.Errorf("rate %s > held %s / %ds: %w",
			rate.Dec(), heldBalance.Dec(), duration, ErrInsufficientFunding)
	}

	return RatePlan{
		Timestamp:  now,
		Deposit:    new(uint256.Int).Set(deposit),
		CarryOver:  new(uint256.Int).Set(carryOver),
		Leftover:   leftover,
		Total:      total,
		Rate:       rate,
		Duration:   duration,
		EpochStart: fpmath.EpochStart(now),
		PeriodEnd:  fpmath.EpochEnd(now),
	}, nil
}

// CommitRate installs a plan locally and informs the pool. The pool call is
// last so that a failure there only has local writes to undo.
func (e *AccrualEngine) CommitRate(tx *opTx, plan RatePlan) error {
	prev := e.epochs.Schedule()
	e.epochs.SetSchedule(state.Schedule{PeriodEnd: plan.PeriodEnd, RatePerSecond: plan.Rate})
	tx.restore(func() { e.epochs.SetSchedule(prev) })

	prevRate := e.epochs.RecordRate(plan.EpochStart, plan.Rate)
	tx.restore(func() { e.epochs.RestoreRate(plan.EpochStart, prevRate) })

	if err := e.pool.SetRewardParameters(plan.Timestamp, plan.Rate, plan.Total, plan.PeriodEnd); err != nil {
		return fmt.Errorf("commit rate: pool: %w", err)
	}
	return nil
}

// RemainingEmission is the reward still to be streamed in the current period.
func (e *AccrualEngine) RemainingEmission(now uint64) *uint256.Int {
	sched := e.epochs.Schedule()
	if now >= sched.PeriodEnd {
		return new(uint256.Int)
	}
	return new(uint256.Int).Mul(uint256.NewInt(sched.PeriodEnd-now), sched.RatePerSecond)
}
