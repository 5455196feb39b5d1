package core

import (
	"GaugeLedger/internal/state"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PositionInfo describes a range position as reported by the registry.
type PositionInfo struct {
	Asset0      common.Address
	Asset1      common.Address
	TickLower   int32
	TickUpper   int32
	Liquidity   *uint256.Int
	TickSpacing int32
}

// PositionRegistry owns position certificates and their custody.
type PositionRegistry interface {
	OwnerOf(id state.PositionID) (common.Address, error)
	PositionInfo(id state.PositionID) (PositionInfo, error)
	TransferCustody(from, to common.Address, id state.PositionID) error
	// CollectAccruedFees pays the position's unstaked swap fees to recipient.
	CollectAccruedFees(id state.PositionID, recipient common.Address) error
}

// Pool is the range-scoped liquidity pool the gauge streams rewards through.
// Reward-per-unit values use the 1e36 fixed-point scale. Methods that mutate
// take the caller's timestamp so the pool can catch up its global counter.
type Pool interface {
	AddStakedLiquidity(now uint64, delta *uint256.Int, tickLower, tickUpper int32, isStake bool) error
	RemoveStakedLiquidity(now uint64, delta *uint256.Int, tickLower, tickUpper int32, isStake bool) error
	AdvanceGlobalCounter(now uint64) error

	// RangeScopedRewardPerUnit evaluates the reward-per-unit inside
	// [tickLower, tickUpper) as if the global counter were atGlobal. A nil
	// atGlobal uses the current counter.
	RangeScopedRewardPerUnit(tickLower, tickUpper int32, atGlobal *uint256.Int) (*uint256.Int, error)

	TotalStakedLiquidity() *uint256.Int
	// RewardAssetBalance is the reward reserve still to be emitted.
	RewardAssetBalance() *uint256.Int
	GlobalRewardPerUnit() *uint256.Int
	LastGlobalUpdateTime() uint64
	// CarryOverRewards is emission that accrued while nothing was staked. It
	// is cleared by SetRewardParameters.
	CarryOverRewards() *uint256.Int
	SetRewardParameters(now uint64, rate, totalAmount *uint256.Int, periodEnd uint64) error
	// HarvestFees moves staked-liquidity fees to the gauge and reports them.
	HarvestFees(now uint64) (amount0, amount1 *uint256.Int, err error)
	// ReturnFees hands a harvest back to the pool.
	ReturnFees(amount0, amount1 *uint256.Int) error

	// Checkpoint captures liquidity and reward accounting. The returned
	// revert restores it exactly; fee counters are left to ReturnFees.
	Checkpoint() (revert func())
}

// FeeHandler receives forwarded pool fees.
type FeeHandler interface {
	Address() common.Address
	DistributeFees(asset common.Address, amount *uint256.Int) error
	// RecallFees reverses a DistributeFees made by an operation that failed.
	RecallFees(asset common.Address, amount *uint256.Int) error
}

// RewardController gates staking and is the only caller of ClaimAll and
// DepositRewards.
type RewardController interface {
	Address() common.Address
	IsGaugeActive(gauge common.Address) bool
}

// TokenBank moves fungible tokens between holders.
type TokenBank interface {
	BalanceOf(asset, holder common.Address) *uint256.Int
	Transfer(asset, from, to common.Address, amount *uint256.Int) error
}

// Collaborators bundles every external dependency of a gauge.
type Collaborators struct {
	Registry   PositionRegistry
	Pool       Pool
	FeeHandler FeeHandler
	Controller RewardController
	Bank       TokenBank
}

// Call identifies the caller of an entry point and the versioned input time.
// The gauge never reads the wall clock.
type Call struct {
	Caller    common.Address
	Timestamp uint64
}
