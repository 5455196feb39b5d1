package event

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// commandJSON is the wire format shared by NATS producers and the persisted
// command log. Amounts are decimal strings, addresses are 0x-hex.
type commandJSON struct {
	Type       string `json:"type"`
	CommandID  string `json:"command_id"`
	Caller     string `json:"caller"`
	Timestamp  uint64 `json:"timestamp"`
	PositionID uint64 `json:"position_id,omitempty"`
	Account    string `json:"account,omitempty"`
	Amount     string `json:"amount,omitempty"`
	Amount0    string `json:"amount0,omitempty"`
	Amount1    string `json:"amount1,omitempty"`
	Asset      string `json:"asset,omitempty"`
	To         string `json:"to,omitempty"`
	Owner      string `json:"owner,omitempty"`
	TickLower  int32  `json:"tick_lower,omitempty"`
	TickUpper  int32  `json:"tick_upper,omitempty"`
	Tick       int32  `json:"tick,omitempty"`
	Liquidity  string `json:"liquidity,omitempty"`
	Active     bool   `json:"active,omitempty"`
}

// EncodeCommand serialises a command into its wire format.
func EncodeCommand(cmd Command) ([]byte, error) {
	j := commandJSON{
		Type:      cmd.CommandType().String(),
		CommandID: cmd.CommandID().String(),
		Caller:    cmd.Sender().Hex(),
		Timestamp: cmd.Time(),
	}

	switch c := cmd.(type) {
	case *StakeCmd:
		j.PositionID = c.PositionID
	case *UnstakeCmd:
		j.PositionID = c.PositionID
	case *ClaimCmd:
		j.PositionID = c.PositionID
	case *ClaimAllCmd:
		j.Account = c.Account.Hex()
	case *DepositRewardsCmd:
		j.Amount = decString(c.Amount)
	case *DepositRewardsNoFeeClaimCmd:
		j.Amount = decString(c.Amount)
	case *MintPositionCmd:
		j.PositionID = c.PositionID
		j.Owner = c.Owner.Hex()
		j.TickLower = c.TickLower
		j.TickUpper = c.TickUpper
		j.Liquidity = decString(c.Liquidity)
	case *MintTokensCmd:
		j.Asset = c.Asset.Hex()
		j.To = c.To.Hex()
		j.Amount = decString(c.Amount)
	case *MoveTickCmd:
		j.Tick = c.Tick
	case *AccrueFeesCmd:
		j.PositionID = c.PositionID
		j.Amount0 = decString(c.Amount0)
		j.Amount1 = decString(c.Amount1)
	case *SetGaugeActiveCmd:
		j.Active = c.Active
	default:
		return nil, &UnknownTypeError{Kind: "command", Type: fmt.Sprintf("%T", cmd)}
	}

	return json.Marshal(j)
}

// DecodeCommand parses the wire format into a typed command.
func DecodeCommand(data []byte) (Command, error) {
	var j commandJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}

	ct, ok := ParseCommandType(j.Type)
	if !ok {
		return nil, &UnknownTypeError{Kind: "command", Type: j.Type}
	}

	id, err := uuid.Parse(j.CommandID)
	if err != nil {
		return nil, fmt.Errorf("parse command_id: %w", err)
	}
	caller, err := parseAddress("caller", j.Caller)
	if err != nil {
		return nil, err
	}
	h := Header{ID: id, Caller: caller, Timestamp: j.Timestamp}

	switch ct {
	case CommandTypeStake:
		return &StakeCmd{Header: h, PositionID: j.PositionID}, nil
	case CommandTypeUnstake:
		return &UnstakeCmd{Header: h, PositionID: j.PositionID}, nil
	case CommandTypeClaim:
		return &ClaimCmd{Header: h, PositionID: j.PositionID}, nil
	case CommandTypeClaimAll:
		account, err := parseAddress("account", j.Account)
		if err != nil {
			return nil, err
		}
		return &ClaimAllCmd{Header: h, Account: account}, nil
	case CommandTypeDepositRewards:
		amount, err := parseAmount("amount", j.Amount)
		if err != nil {
			return nil, err
		}
		return &DepositRewardsCmd{Header: h, Amount: amount}, nil
	case CommandTypeDepositRewardsNoFeeClaim:
		amount, err := parseAmount("amount", j.Amount)
		if err != nil {
			return nil, err
		}
		return &DepositRewardsNoFeeClaimCmd{Header: h, Amount: amount}, nil
	case CommandTypeMintPosition:
		owner, err := parseAddress("owner", j.Owner)
		if err != nil {
			return nil, err
		}
		liquidity, err := parseAmount("liquidity", j.Liquidity)
		if err != nil {
			return nil, err
		}
		return &MintPositionCmd{
			Header:     h,
			PositionID: j.PositionID,
			Owner:      owner,
			TickLower:  j.TickLower,
			TickUpper:  j.TickUpper,
			Liquidity:  liquidity,
		}, nil
	case CommandTypeMintTokens:
		asset, err := parseAddress("asset", j.Asset)
		if err != nil {
			return nil, err
		}
		to, err := parseAddress("to", j.To)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("amount", j.Amount)
		if err != nil {
			return nil, err
		}
		return &MintTokensCmd{Header: h, Asset: asset, To: to, Amount: amount}, nil
	case CommandTypeMoveTick:
		return &MoveTickCmd{Header: h, Tick: j.Tick}, nil
	case CommandTypeAccrueFees:
		a0, err := parseAmount("amount0", j.Amount0)
		if err != nil {
			return nil, err
		}
		a1, err := parseAmount("amount1", j.Amount1)
		if err != nil {
			return nil, err
		}
		return &AccrueFeesCmd{Header: h, PositionID: j.PositionID, Amount0: a0, Amount1: a1}, nil
	case CommandTypeSetGaugeActive:
		return &SetGaugeActiveCmd{Header: h, Active: j.Active}, nil
	}

	return nil, &UnknownTypeError{Kind: "command", Type: j.Type}
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("parse %s: invalid address %q", field, s)
	}
	return common.HexToAddress(s), nil
}

// parseAmount accepts a base-10 string. An empty string decodes to zero.
func parseAmount(field, s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

func decString(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}
