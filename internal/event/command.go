package event

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// CommandType discriminator for inbound commands
type CommandType int32

const (
	CommandTypeUnknown CommandType = iota
	CommandTypeStake
	CommandTypeUnstake
	CommandTypeClaim
	CommandTypeClaimAll
	CommandTypeDepositRewards
	CommandTypeDepositRewardsNoFeeClaim

	// Sandbox commands drive the in-process collaborators.
	CommandTypeMintPosition
	CommandTypeMintTokens
	CommandTypeMoveTick
	CommandTypeAccrueFees
	CommandTypeSetGaugeActive
)

var commandTypeNames = map[CommandType]string{
	CommandTypeStake:                    "stake",
	CommandTypeUnstake:                  "unstake",
	CommandTypeClaim:                    "claim",
	CommandTypeClaimAll:                 "claim_all",
	CommandTypeDepositRewards:           "deposit_rewards",
	CommandTypeDepositRewardsNoFeeClaim: "deposit_rewards_no_fee_claim",
	CommandTypeMintPosition:             "mint_position",
	CommandTypeMintTokens:               "mint_tokens",
	CommandTypeMoveTick:                 "move_tick",
	CommandTypeAccrueFees:               "accrue_fees",
	CommandTypeSetGaugeActive:           "set_gauge_active",
}

func (ct CommandType) String() string {
	if s, ok := commandTypeNames[ct]; ok {
		return s
	}
	return "unknown"
}

// IsSandbox reports whether the command targets the collaborator world rather
// than the gauge.
func (ct CommandType) IsSandbox() bool {
	return ct >= CommandTypeMintPosition
}

// ParseCommandType maps a wire name back to its discriminator.
func ParseCommandType(s string) (CommandType, bool) {
	for ct, name := range commandTypeNames {
		if name == s {
			return ct, true
		}
	}
	return CommandTypeUnknown, false
}

// Command is the interface every inbound command implements
type Command interface {
	// CommandID returns the stable dedup key
	CommandID() uuid.UUID

	// CommandType returns the discriminator
	CommandType() CommandType

	// Sender returns the authenticated caller
	Sender() common.Address

	// Time returns the versioned input timestamp in unix seconds
	Time() uint64
}

// Header carries the fields shared by every command.
type Header struct {
	ID        uuid.UUID
	Caller    common.Address
	Timestamp uint64
}

func (h Header) CommandID() uuid.UUID   { return h.ID }
func (h Header) Sender() common.Address { return h.Caller }
func (h Header) Time() uint64           { return h.Timestamp }

// --- Gauge commands ---

type StakeCmd struct {
	Header
	PositionID uint64
}

func (c *StakeCmd) CommandType() CommandType { return CommandTypeStake }

type UnstakeCmd struct {
	Header
	PositionID uint64
}

func (c *UnstakeCmd) CommandType() CommandType { return CommandTypeUnstake }

type ClaimCmd struct {
	Header
	PositionID uint64
}

func (c *ClaimCmd) CommandType() CommandType { return CommandTypeClaim }

// ClaimAllCmd pays every position staked by Account. Only the reward
// controller may send it.
type ClaimAllCmd struct {
	Header
	Account common.Address
}

func (c *ClaimAllCmd) CommandType() CommandType { return CommandTypeClaimAll }

type DepositRewardsCmd struct {
	Header
	Amount *uint256.Int
}

func (c *DepositRewardsCmd) CommandType() CommandType { return CommandTypeDepositRewards }

type DepositRewardsNoFeeClaimCmd struct {
	Header
	Amount *uint256.Int
}

func (c *DepositRewardsNoFeeClaimCmd) CommandType() CommandType {
	return CommandTypeDepositRewardsNoFeeClaim
}

// --- Sandbox commands ---

// MintPositionCmd creates a position certificate owned by Owner.
type MintPositionCmd struct {
	Header
	PositionID uint64
	Owner      common.Address
	TickLower  int32
	TickUpper  int32
	Liquidity  *uint256.Int
}

func (c *MintPositionCmd) CommandType() CommandType { return CommandTypeMintPosition }

// MintTokensCmd credits Amount of Asset to To.
type MintTokensCmd struct {
	Header
	Asset  common.Address
	To     common.Address
	Amount *uint256.Int
}

func (c *MintTokensCmd) CommandType() CommandType { return CommandTypeMintTokens }

// MoveTickCmd moves the pool price to Tick, crossing initialized ticks.
type MoveTickCmd struct {
	Header
	Tick int32
}

func (c *MoveTickCmd) CommandType() CommandType { return CommandTypeMoveTick }

// AccrueFeesCmd credits swap fees. PositionID zero credits the staked-liquidity
// fees the gauge harvests; otherwise the fees are owed to that position.
type AccrueFeesCmd struct {
	Header
	PositionID uint64
	Amount0    *uint256.Int
	Amount1    *uint256.Int
}

func (c *AccrueFeesCmd) CommandType() CommandType { return CommandTypeAccrueFees }

type SetGaugeActiveCmd struct {
	Header
	Active bool
}

func (c *SetGaugeActiveCmd) CommandType() CommandType { return CommandTypeSetGaugeActive }
