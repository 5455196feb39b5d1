package core_test

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/sim"
	"GaugeLedger/internal/state"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	gaugeAddr = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	poolAddr  = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	regAddr   = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	ctrlAddr  = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	feeAddr   = common.HexToAddress("0x00000000000000000000000000000000000000a5")
	adminAddr = common.HexToAddress("0x00000000000000000000000000000000000000a6")
	rewardTok = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	token0    = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	token1    = common.HexToAddress("0x00000000000000000000000000000000000000b3")
	alice     = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	bob       = common.HexToAddress("0x00000000000000000000000000000000000000c2")

	e18 = uint256.NewInt(1_000_000_000_000_000_000)
)

const week = uint64(604800)

func tokens(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), e18)
}

func worldConfig(feeEligible bool) sim.WorldConfig {
	return sim.WorldConfig{
		Gauge: core.GaugeConfig{
			Gauge:       gaugeAddr,
			Admin:       adminAddr,
			RewardToken: rewardTok,
			Asset0:      token0,
			Asset1:      token1,
			TickSpacing: 60,
			FeeEligible: feeEligible,
		},
		Pool:       poolAddr,
		Registry:   regAddr,
		Controller: ctrlAddr,
		FeeHandler: feeAddr,
	}
}

type fixture struct {
	t *testing.T
	g *core.Gauge
	w *sim.World
}

func newFixture(t *testing.T, feeEligible bool) *fixture {
	t.Helper()
	g, w, err := sim.NewGaugeWorld(worldConfig(feeEligible))
	if err != nil {
		t.Fatalf("NewGaugeWorld: %v", err)
	}
	return &fixture{t: t, g: g, w: w}
}

// mint creates a position on the gauge's pool.
func (f *fixture) mint(id state.PositionID, owner common.Address, lower, upper int32, liquidity *uint256.Int) {
	f.t.Helper()
	err := f.w.Registry().Mint(id, owner, core.PositionInfo{
		Asset0:      token0,
		Asset1:      token1,
		TickLower:   lower,
		TickUpper:   upper,
		Liquidity:   liquidity,
		TickSpacing: 60,
	})
	if err != nil {
		f.t.Fatalf("mint %d: %v", id, err)
	}
}

func (f *fixture) stake(ts uint64, owner common.Address, id state.PositionID) {
	f.t.Helper()
	if _, err := f.g.Stake(core.Call{Caller: owner, Timestamp: ts}, id); err != nil {
		f.t.Fatalf("stake %d at %d: %v", id, ts, err)
	}
}

// deposit funds the controller and deposits amount at ts.
func (f *fixture) deposit(ts uint64, amount *uint256.Int) []event.Event {
	f.t.Helper()
	if err := f.w.Bank().Mint(rewardTok, ctrlAddr, amount); err != nil {
		f.t.Fatalf("fund controller: %v", err)
	}
	events, err := f.g.DepositRewards(core.Call{Caller: ctrlAddr, Timestamp: ts}, amount)
	if err != nil {
		f.t.Fatalf("deposit %s at %d: %v", amount.Dec(), ts, err)
	}
	return events
}

// claim returns the amount paid to owner.
func (f *fixture) claim(ts uint64, owner common.Address, id state.PositionID) *uint256.Int {
	f.t.Helper()
	before := f.rewardBalance(owner)
	if _, err := f.g.Claim(core.Call{Caller: owner, Timestamp: ts}, id); err != nil {
		f.t.Fatalf("claim %d at %d: %v", id, ts, err)
	}
	return new(uint256.Int).Sub(f.rewardBalance(owner), before)
}

func (f *fixture) rewardBalance(holder common.Address) *uint256.Int {
	return f.w.Bank().BalanceOf(rewardTok, holder)
}

func (f *fixture) digests() (gauge, world string) {
	return string(f.g.StateDigest()), string(f.w.StateDigest())
}

func rateUpdated(t *testing.T, events []event.Event) *event.RateUpdated {
	t.Helper()
	for _, evt := range events {
		if ru, ok := evt.(*event.RateUpdated); ok {
			return ru
		}
	}
	t.Fatalf("no RateUpdated in %d events", len(events))
	return nil
}
