package event

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Staked is emitted when a position enters gauge custody.
type Staked struct {
	Owner      common.Address `json:"owner"`
	PositionID uint64         `json:"position_id"`
	Liquidity  *uint256.Int   `json:"liquidity"`
}

func (e *Staked) EventType() EventType { return EventTypeStaked }
func (e *Staked) Actor() string        { return e.Owner.Hex() }

// Unstaked is emitted when a position is returned to its owner.
type Unstaked struct {
	Owner      common.Address `json:"owner"`
	PositionID uint64         `json:"position_id"`
	Liquidity  *uint256.Int   `json:"liquidity"`
}

func (e *Unstaked) EventType() EventType { return EventTypeUnstaked }
func (e *Unstaked) Actor() string        { return e.Owner.Hex() }

// RewardClaimed is emitted for every non-zero payout.
type RewardClaimed struct {
	Owner      common.Address `json:"owner"`
	PositionID uint64         `json:"position_id"`
	Amount     *uint256.Int   `json:"amount"`
}

func (e *RewardClaimed) EventType() EventType { return EventTypeRewardClaimed }
func (e *RewardClaimed) Actor() string        { return e.Owner.Hex() }

// FeesCollected is emitted when pool fees are harvested into the gauge.
type FeesCollected struct {
	Caller  common.Address `json:"caller"`
	Amount0 *uint256.Int   `json:"amount0"`
	Amount1 *uint256.Int   `json:"amount1"`
	// Forwarded amounts are the totals handed to the fee handler in this harvest.
	Forwarded0 *uint256.Int `json:"forwarded0"`
	Forwarded1 *uint256.Int `json:"forwarded1"`
}

func (e *FeesCollected) EventType() EventType { return EventTypeFeesCollected }
func (e *FeesCollected) Actor() string        { return e.Caller.Hex() }

// RateUpdated is emitted when a reward deposit establishes a new schedule.
type RateUpdated struct {
	Caller        common.Address `json:"caller"`
	Deposit       *uint256.Int   `json:"deposit"`
	CarryOver     *uint256.Int   `json:"carry_over"`
	Leftover      *uint256.Int   `json:"leftover"`
	RatePerSecond *uint256.Int   `json:"rate_per_second"`
	EpochStart    uint64         `json:"epoch_start"`
	PeriodEnd     uint64         `json:"period_end"`
}

func (e *RateUpdated) EventType() EventType { return EventTypeRateUpdated }
func (e *RateUpdated) Actor() string        { return e.Caller.Hex() }
