package sim

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Controller is the reward controller: it gates staking per gauge.
type Controller struct {
	address common.Address
	active  map[common.Address]bool
}

func NewController(address common.Address) *Controller {
	return &Controller{address: address, active: make(map[common.Address]bool)}
}

func (c *Controller) Address() common.Address { return c.address }

func (c *Controller) IsGaugeActive(gauge common.Address) bool {
	return c.active[gauge]
}

func (c *Controller) SetGaugeActive(gauge common.Address, active bool) {
	if active {
		c.active[gauge] = true
		return
	}
	delete(c.active, gauge)
}

func (c *Controller) activeGauges() []string {
	out := make([]string, 0, len(c.active))
	for g := range c.active {
		out = append(out, g.Hex())
	}
	sort.Strings(out)
	return out
}

// FeeHandler receives forwarded fees. Tokens are transferred to its address
// by the gauge before DistributeFees is called; it only tallies them.
type FeeHandler struct {
	address     common.Address
	distributed map[common.Address]*uint256.Int
}

func NewFeeHandler(address common.Address) *FeeHandler {
	return &FeeHandler{address: address, distributed: make(map[common.Address]*uint256.Int)}
}

func (f *FeeHandler) Address() common.Address { return f.address }

func (f *FeeHandler) DistributeFees(asset common.Address, amount *uint256.Int) error {
	total, ok := f.distributed[asset]
	if !ok {
		total = new(uint256.Int)
	}
	f.distributed[asset] = new(uint256.Int).Add(total, amount)
	return nil
}

// RecallFees reverses a DistributeFees whose operation failed.
func (f *FeeHandler) RecallFees(asset common.Address, amount *uint256.Int) error {
	total, ok := f.distributed[asset]
	if !ok || total.Lt(amount) {
		return fmt.Errorf("recall %s of %s: more than distributed", amount.Dec(), asset.Hex())
	}
	rest := new(uint256.Int).Sub(total, amount)
	if rest.IsZero() {
		delete(f.distributed, asset)
		return nil
	}
	f.distributed[asset] = rest
	return nil
}

// Distributed returns the running total forwarded for asset.
func (f *FeeHandler) Distributed(asset common.Address) *uint256.Int {
	if v, ok := f.distributed[asset]; ok {
		return new(uint256.Int).Set(v)
	}
	return new(uint256.Int)
}

func (f *FeeHandler) export() map[string]string {
	out := make(map[string]string, len(f.distributed))
	for asset, v := range f.distributed {
		out[asset.Hex()] = v.Dec()
	}
	return out
}
