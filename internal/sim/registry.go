package sim

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/ledger"
	"GaugeLedger/internal/state"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	ErrUnknownPosition = errors.New("unknown position")
	ErrPositionExists  = errors.New("position already minted")
	ErrNotHolder       = errors.New("sender does not hold position")
)

type position struct {
	holder common.Address
	info   core.PositionInfo
	owed0  *uint256.Int
	owed1  *uint256.Int
}

// Registry is an in-memory position certificate registry. Swap fees owed to
// unstaked positions are held at the registry address until collected.
// Not thread-safe; the Processor serialises access.
type Registry struct {
	address   common.Address
	bank      *ledger.Bank
	positions map[state.PositionID]*position
}

func NewRegistry(address common.Address, bank *ledger.Bank) *Registry {
	return &Registry{
		address:   address,
		bank:      bank,
		positions: make(map[state.PositionID]*position),
	}
}

func (r *Registry) Address() common.Address { return r.address }

// Mint creates a certificate held by owner.
func (r *Registry) Mint(id state.PositionID, owner common.Address, info core.PositionInfo) error {
	if id == 0 {
		return fmt.Errorf("mint: position id must be non-zero")
	}
	if _, ok := r.positions[id]; ok {
		return fmt.Errorf("mint %d: %w", id, ErrPositionExists)
	}
	if info.TickLower >= info.TickUpper {
		return fmt.Errorf("mint %d: %w: [%d, %d)", id, ErrInvalidRange, info.TickLower, info.TickUpper)
	}
	if info.TickSpacing <= 0 || info.TickLower%info.TickSpacing != 0 || info.TickUpper%info.TickSpacing != 0 {
		return fmt.Errorf("mint %d: %w: ticks not on spacing %d", id, ErrInvalidRange, info.TickSpacing)
	}
	if info.Liquidity == nil || info.Liquidity.IsZero() {
		return fmt.Errorf("mint %d: zero liquidity", id)
	}

	info.Liquidity = new(uint256.Int).Set(info.Liquidity)
	r.positions[id] = &position{
		holder: owner,
		info:   info,
		owed0:  new(uint256.Int),
		owed1:  new(uint256.Int),
	}
	return nil
}

func (r *Registry) get(id state.PositionID) (*position, error) {
	p, ok := r.positions[id]
	if !ok {
		return nil, fmt.Errorf("position %d: %w", id, ErrUnknownPosition)
	}
	return p, nil
}

func (r *Registry) OwnerOf(id state.PositionID) (common.Address, error) {
	p, err := r.get(id)
	if err != nil {
		return common.Address{}, err
	}
	return p.holder, nil
}

func (r *Registry) PositionInfo(id state.PositionID) (core.PositionInfo, error) {
	p, err := r.get(id)
	if err != nil {
		return core.PositionInfo{}, err
	}
	info := p.info
	info.Liquidity = new(uint256.Int).Set(p.info.Liquidity)
	return info, nil
}

func (r *Registry) TransferCustody(from, to common.Address, id state.PositionID) error {
	p, err := r.get(id)
	if err != nil {
		return err
	}
	if p.holder != from {
		return fmt.Errorf("transfer %d from %s: %w", id, from.Hex(), ErrNotHolder)
	}
	p.holder = to
	return nil
}

// CreditFees records swap fees owed to an unstaked position.
func (r *Registry) CreditFees(id state.PositionID, amount0, amount1 *uint256.Int) error {
	p, err := r.get(id)
	if err != nil {
		return err
	}
	if !amount0.IsZero() {
		if err := r.bank.Mint(p.info.Asset0, r.address, amount0); err != nil {
			return err
		}
	}
	if !amount1.IsZero() {
		if err := r.bank.Mint(p.info.Asset1, r.address, amount1); err != nil {
			return err
		}
	}
	p.owed0 = new(uint256.Int).Add(p.owed0, amount0)
	p.owed1 = new(uint256.Int).Add(p.owed1, amount1)
	return nil
}

// OwedFees returns fees not yet collected for a position.
func (r *Registry) OwedFees(id state.PositionID) (owed0, owed1 *uint256.Int, err error) {
	p, err := r.get(id)
	if err != nil {
		return nil, nil, err
	}
	return new(uint256.Int).Set(p.owed0), new(uint256.Int).Set(p.owed1), nil
}

func (r *Registry) CollectAccruedFees(id state.PositionID, recipient common.Address) error {
	p, err := r.get(id)
	if err != nil {
		return err
	}
	if err := r.bank.Transfer(p.info.Asset0, r.address, recipient, p.owed0); err != nil {
		return fmt.Errorf("collect %d: %w", id, err)
	}
	if err := r.bank.Transfer(p.info.Asset1, r.address, recipient, p.owed1); err != nil {
		if rbErr := r.bank.Transfer(p.info.Asset0, recipient, r.address, p.owed0); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return fmt.Errorf("collect %d: %w", id, err)
	}
	p.owed0, p.owed1 = new(uint256.Int), new(uint256.Int)
	return nil
}

// PositionExport is the audit form of one certificate.
type PositionExport struct {
	PositionID  state.PositionID `json:"position_id"`
	Holder      string           `json:"holder"`
	Asset0      string           `json:"asset0"`
	Asset1      string           `json:"asset1"`
	TickLower   int32            `json:"tick_lower"`
	TickUpper   int32            `json:"tick_upper"`
	TickSpacing int32            `json:"tick_spacing"`
	Liquidity   string           `json:"liquidity"`
	Owed0       string           `json:"owed0"`
	Owed1       string           `json:"owed1"`
}

func (r *Registry) Export() []PositionExport {
	ids := make([]state.PositionID, 0, len(r.positions))
	for id := range r.positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]PositionExport, 0, len(ids))
	for _, id := range ids {
		p := r.positions[id]
		out = append(out, PositionExport{
			PositionID:  id,
			Holder:      p.holder.Hex(),
			Asset0:      p.info.Asset0.Hex(),
			Asset1:      p.info.Asset1.Hex(),
			TickLower:   p.info.TickLower,
			TickUpper:   p.info.TickUpper,
			TickSpacing: p.info.TickSpacing,
			Liquidity:   p.info.Liquidity.Dec(),
			Owed0:       p.owed0.Dec(),
			Owed1:       p.owed1.Dec(),
		})
	}
	return out
}
