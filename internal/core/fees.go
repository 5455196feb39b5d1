package core

import (
	"GaugeLedger/internal/event"
	fpmath "GaugeLedger/internal/math"
	"GaugeLedger/internal/state"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// FeeThreshold is the running total a fee side must exceed before it is
// forwarded. It shares the epoch length constant.
var FeeThreshold = uint256.NewInt(fpmath.EpochLength)

// FeeAccumulator batches pool fees per asset and forwards each side to the
// fee handler once it crosses FeeThreshold.
type FeeAccumulator struct {
	gauge   common.Address
	asset0  common.Address
	asset1  common.Address
	pool    Pool
	handler FeeHandler
	bank    TokenBank
	ledger  *state.FeeLedger
}

func NewFeeAccumulator(cfg GaugeConfig, c Collaborators, ledger *state.FeeLedger) *FeeAccumulator {
	return &FeeAccumulator{
		gauge:   cfg.Gauge,
		asset0:  cfg.Asset0,
		asset1:  cfg.Asset1,
		pool:    c.Pool,
		handler: c.FeeHandler,
		bank:    c.Bank,
		ledger:  ledger,
	}
}

// Harvest pulls fees from the pool into the gauge and forwards any side that
// is now over the threshold. Every step registers its reversal, so a later
// failure in the same operation hands the fees back to the pool.
func (f *FeeAccumulator) Harvest(tx *opTx, now uint64, caller common.Address) error {
	amount0, amount1, err := f.pool.HarvestFees(now)
	if err != nil {
		return fmt.Errorf("harvest fees: %w", err)
	}
	if amount0.IsZero() && amount1.IsZero() {
		return nil
	}
	tx.onRollback(func() error { return f.pool.ReturnFees(amount0, amount1) })

	prev0, prev1 := f.ledger.Totals()
	due0, due1 := f.ledger.Accrue(amount0, amount1, FeeThreshold)
	tx.restore(func() { f.ledger.SetTotals(prev0, prev1) })

	if err := f.forward(tx, f.asset0, due0); err != nil {
		return err
	}
	if err := f.forward(tx, f.asset1, due1); err != nil {
		return err
	}

	tx.emit(&event.FeesCollected{
		Caller:     caller,
		Amount0:    amount0,
		Amount1:    amount1,
		Forwarded0: due0,
		Forwarded1: due1,
	})
	return nil
}

func (f *FeeAccumulator) forward(tx *opTx, asset common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	handler := f.handler.Address()
	if err := f.bank.Transfer(asset, f.gauge, handler, amount); err != nil {
		return fmt.Errorf("forward %s fees: %w", asset.Hex(), err)
	}
	tx.onRollback(func() error { return f.bank.Transfer(asset, handler, f.gauge, amount) })

	if err := f.handler.DistributeFees(asset, amount); err != nil {
		return fmt.Errorf("distribute %s fees: %w", asset.Hex(), err)
	}
	tx.onRollback(func() error { return f.handler.RecallFees(asset, amount) })
	return nil
}
