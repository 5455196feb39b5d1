package core

import (
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/state"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// GaugeConfig is the identity of one gauge and the pool it serves.
type GaugeConfig struct {
	Gauge       common.Address // custody holder of staked positions
	Admin       common.Address // may deposit rewards without a fee claim
	RewardToken common.Address
	Asset0      common.Address
	Asset1      common.Address
	TickSpacing int32
	FeeEligible bool // harvest pool fees on DepositRewards
}

// Gauge stakes range positions and streams rewards to them. Every
// state-mutating entry point is guarded against reentrancy and is atomic:
// on failure all local writes are undone, the pool is reverted to its
// checkpoint and other external effects are compensated.
// Not thread-safe; the Processor serialises access.
type Gauge struct {
	cfg         GaugeConfig
	c           Collaborators
	initialized bool
	guard       ReentrancyGuard

	stakes    *state.StakeIndex
	rewards   *state.RewardLedger
	epochs    *state.EpochState
	feeLedger *state.FeeLedger

	engine *AccrualEngine
	fees   *FeeAccumulator
}

// NewGauge returns an uninitialized gauge.
func NewGauge() *Gauge {
	return &Gauge{
		stakes:    state.NewStakeIndex(),
		rewards:   state.NewRewardLedger(),
		epochs:    state.NewEpochState(),
		feeLedger: state.NewFeeLedger(),
	}
}

// Initialize wires the gauge to its collaborators. It can be called once.
func (g *Gauge) Initialize(cfg GaugeConfig, c Collaborators) error {
	if g.initialized {
		return ErrAlreadyInitialized
	}
	if c.Registry == nil || c.Pool == nil || c.FeeHandler == nil || c.Controller == nil || c.Bank == nil {
		return errors.New("initialize: missing collaborator")
	}
	if cfg.TickSpacing <= 0 {
		return fmt.Errorf("initialize: tick spacing %d must be positive", cfg.TickSpacing)
	}

	g.cfg = cfg
	g.c = c
	g.engine = NewAccrualEngine(c.Pool, g.rewards, g.epochs)
	g.fees = NewFeeAccumulator(cfg, c, g.feeLedger)
	g.initialized = true
	return nil
}

func (g *Gauge) Config() GaugeConfig {
	return g.cfg
}

// mutate runs fn as one guarded, all-or-nothing operation and returns the
// events it emitted.
func (g *Gauge) mutate(fn func(tx *opTx) error) ([]event.Event, error) {
	release, err := g.guard.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	if !g.initialized {
		return nil, ErrNotInitialized
	}

	tx := &opTx{}
	tx.restore(g.c.Pool.Checkpoint())
	if err := fn(tx); err != nil {
		if rbErr := tx.rollback(); rbErr != nil {
			return nil, errors.Join(err, rbErr)
		}
		return nil, err
	}
	return tx.events, nil
}

// --- Entry points ---

// Stake moves a position into gauge custody and starts accruing rewards for it.
func (g *Gauge) Stake(call Call, id state.PositionID) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if !g.c.Controller.IsGaugeActive(g.cfg.Gauge) {
			return ErrGaugeInactive
		}
		if _, staked := g.rewards.Get(id); staked {
			return fmt.Errorf("stake position %d: %w", id, ErrAlreadyStaked)
		}

		owner, err := g.c.Registry.OwnerOf(id)
		if err != nil {
			return fmt.Errorf("stake position %d: %w", id, err)
		}
		if owner != call.Caller {
			return fmt.Errorf("stake position %d owned by %s: %w", id, owner.Hex(), ErrUnauthorized)
		}

		info, err := g.c.Registry.PositionInfo(id)
		if err != nil {
			return fmt.Errorf("stake position %d: %w", id, err)
		}
		if info.Asset0 != g.cfg.Asset0 || info.Asset1 != g.cfg.Asset1 || info.TickSpacing != g.cfg.TickSpacing {
			return fmt.Errorf("stake position %d: %w", id, ErrTokenMismatch)
		}

		if err := g.c.Registry.TransferCustody(call.Caller, g.cfg.Gauge, id); err != nil {
			return fmt.Errorf("stake position %d: custody: %w", id, err)
		}
		tx.onRollback(func() error { return g.c.Registry.TransferCustody(g.cfg.Gauge, call.Caller, id) })

		if err := g.stakes.Add(call.Caller, id); err != nil {
			return fmt.Errorf("stake position %d: %w", id, err)
		}
		tx.onRollback(func() error { return g.stakes.Remove(call.Caller, id) })

		if err := g.c.Pool.AddStakedLiquidity(call.Timestamp, info.Liquidity, info.TickLower, info.TickUpper, true); err != nil {
			return fmt.Errorf("stake position %d: pool: %w", id, err)
		}

		if err := g.engine.Open(tx, call.Timestamp, id, call.Caller, info); err != nil {
			return err
		}

		// Fee collection has no compensation and must stay the last step.
		if err := g.c.Registry.CollectAccruedFees(id, call.Caller); err != nil {
			return fmt.Errorf("stake position %d: collect fees: %w", id, err)
		}

		tx.emit(&event.Staked{
			Owner:      call.Caller,
			PositionID: uint64(id),
			Liquidity:  new(uint256.Int).Set(info.Liquidity),
		})
		return nil
	})
}

// Unstake settles and pays a position, removes its liquidity from the pool's
// staked total, returns custody to the owner and collects its fees, in that
// order.
func (g *Gauge) Unstake(call Call, id state.PositionID) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if !g.stakes.Contains(call.Caller, id) {
			return fmt.Errorf("unstake position %d: %w", id, ErrNotStaked)
		}
		entry, ok := g.rewards.Get(id)
		if !ok {
			return fmt.Errorf("unstake position %d: missing ledger entry: %w", id, ErrInvariantViolation)
		}

		if err := g.settleAndPay(tx, call, id, call.Caller); err != nil {
			return err
		}

		if err := g.c.Pool.RemoveStakedLiquidity(call.Timestamp, entry.Liquidity, entry.TickLower, entry.TickUpper, true); err != nil {
			return fmt.Errorf("unstake position %d: pool: %w", id, err)
		}

		slot, _ := g.stakes.IndexOf(call.Caller, id)
		if err := g.stakes.Remove(call.Caller, id); err != nil {
			return fmt.Errorf("unstake position %d: %w", id, err)
		}
		tx.onRollback(func() error { return g.stakes.Reinsert(call.Caller, id, slot) })

		if err := g.engine.Close(tx, id); err != nil {
			return err
		}

		if err := g.c.Registry.TransferCustody(g.cfg.Gauge, call.Caller, id); err != nil {
			return fmt.Errorf("unstake position %d: custody: %w", id, err)
		}
		tx.onRollback(func() error { return g.c.Registry.TransferCustody(call.Caller, g.cfg.Gauge, id) })

		// Fee collection has no compensation and must stay the last step.
		if err := g.c.Registry.CollectAccruedFees(id, call.Caller); err != nil {
			return fmt.Errorf("unstake position %d: collect fees: %w", id, err)
		}

		tx.emit(&event.Unstaked{
			Owner:      call.Caller,
			PositionID: uint64(id),
			Liquidity:  entry.Liquidity,
		})
		return nil
	})
}

// Claim pays the caller everything one of their staked positions earned.
func (g *Gauge) Claim(call Call, id state.PositionID) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if !g.stakes.Contains(call.Caller, id) {
			return fmt.Errorf("claim position %d: %w", id, ErrNotStaked)
		}
		return g.settleAndPay(tx, call, id, call.Caller)
	})
}

// ClaimAll pays account for every position it has staked. Only the reward
// controller may call it.
func (g *Gauge) ClaimAll(call Call, account common.Address) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if call.Caller != g.c.Controller.Address() {
			return fmt.Errorf("claim all: %w", ErrUnauthorized)
		}
		for _, id := range g.stakes.Positions(account) {
			if err := g.settleAndPay(tx, call, id, account); err != nil {
				return err
			}
		}
		return nil
	})
}

// DepositRewards transfers amount from the reward controller and starts a new
// emission schedule. Fee-eligible gauges harvest pool fees on the way.
func (g *Gauge) DepositRewards(call Call, amount *uint256.Int) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if call.Caller != g.c.Controller.Address() {
			return fmt.Errorf("deposit rewards: %w", ErrUnauthorized)
		}
		return g.deposit(tx, call, amount, g.cfg.FeeEligible)
	})
}

// DepositRewardsNoFeeClaim is the admin path that never touches pool fees.
func (g *Gauge) DepositRewardsNoFeeClaim(call Call, amount *uint256.Int) ([]event.Event, error) {
	return g.mutate(func(tx *opTx) error {
		if call.Caller != g.cfg.Admin {
			return fmt.Errorf("deposit rewards without fee claim: %w", ErrUnauthorized)
		}
		return g.deposit(tx, call, amount, false)
	})
}

func (g *Gauge) deposit(tx *opTx, call Call, amount *uint256.Int, harvest bool) error {
	if amount == nil || amount.IsZero() {
		return ErrZeroAmount
	}

	if err := g.c.Bank.Transfer(g.cfg.RewardToken, call.Caller, g.cfg.Gauge, amount); err != nil {
		return fmt.Errorf("deposit rewards: %w", err)
	}
	tx.onRollback(func() error {
		return g.c.Bank.Transfer(g.cfg.RewardToken, g.cfg.Gauge, call.Caller, amount)
	})

	if err := g.c.Pool.AdvanceGlobalCounter(call.Timestamp); err != nil {
		return fmt.Errorf("deposit rewards: advance pool: %w", err)
	}

	held := g.c.Bank.BalanceOf(g.cfg.RewardToken, g.cfg.Gauge)
	plan, err := g.engine.PlanRate(call.Timestamp, amount, g.c.Pool.CarryOverRewards(), held)
	if err != nil {
		return fmt.Errorf("deposit rewards: %w", err)
	}

	if harvest {
		if err := g.fees.Harvest(tx, call.Timestamp, call.Caller); err != nil {
			return err
		}
	}

	if err := g.engine.CommitRate(tx, plan); err != nil {
		return err
	}

	tx.emit(&event.RateUpdated{
		Caller:        call.Caller,
		Deposit:       plan.Deposit,
		CarryOver:     plan.CarryOver,
		Leftover:      plan.Leftover,
		RatePerSecond: plan.Rate,
		EpochStart:    plan.EpochStart,
		PeriodEnd:     plan.PeriodEnd,
	})
	return nil
}

// settleAndPay settles id and transfers its accumulated reward to recipient.
// The ledger entry is zeroed before the transfer is made.
func (g *Gauge) settleAndPay(tx *opTx, call Call, id state.PositionID, recipient common.Address) error {
	if err := g.engine.Settle(tx, call.Timestamp, id); err != nil {
		return err
	}

	amount, err := g.engine.Payout(tx, id)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}

	if err := g.c.Bank.Transfer(g.cfg.RewardToken, g.cfg.Gauge, recipient, amount); err != nil {
		return fmt.Errorf("pay position %d: %w", id, err)
	}
	tx.onRollback(func() error {
		return g.c.Bank.Transfer(g.cfg.RewardToken, recipient, g.cfg.Gauge, amount)
	})

	tx.emit(&event.RewardClaimed{
		Owner:      recipient,
		PositionID: uint64(id),
		Amount:     amount,
	})
	return nil
}
