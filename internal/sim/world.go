package sim

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/ledger"
	"GaugeLedger/internal/state"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ErrNotController is returned when a controller-only sandbox command comes
// from another caller.
var ErrNotController = errors.New("sender is not the reward controller")

// WorldConfig names every actor of a simulated deployment.
type WorldConfig struct {
	Gauge            core.GaugeConfig
	Pool             common.Address
	Registry         common.Address
	Controller       common.Address
	FeeHandler       common.Address
	InitialTick      int32
	JournalRetention int
}

// World is the in-memory collaborator set of one gauge: token bank, pool,
// position registry, reward controller and fee handler. It implements
// core.Sandbox so the processor can drive it with sandbox commands.
type World struct {
	cfg        WorldConfig
	bank       *ledger.Bank
	pool       *Pool
	registry   *Registry
	controller *Controller
	feeHandler *FeeHandler
}

func NewWorld(cfg WorldConfig) *World {
	bank := ledger.NewBank(cfg.JournalRetention)
	return &World{
		cfg:  cfg,
		bank: bank,
		pool: NewPool(cfg.Pool, cfg.Gauge.Gauge, cfg.Gauge.Asset0, cfg.Gauge.Asset1,
			cfg.Gauge.TickSpacing, cfg.InitialTick, bank),
		registry:   NewRegistry(cfg.Registry, bank),
		controller: NewController(cfg.Controller),
		feeHandler: NewFeeHandler(cfg.FeeHandler),
	}
}

// NewGaugeWorld builds a world and an initialized gauge wired to it. The
// gauge starts active.
func NewGaugeWorld(cfg WorldConfig) (*core.Gauge, *World, error) {
	w := NewWorld(cfg)
	g := core.NewGauge()
	if err := g.Initialize(cfg.Gauge, w.Collaborators()); err != nil {
		return nil, nil, err
	}
	w.controller.SetGaugeActive(cfg.Gauge.Gauge, true)
	return g, w, nil
}

func (w *World) Collaborators() core.Collaborators {
	return core.Collaborators{
		Registry:   w.registry,
		Pool:       w.pool,
		FeeHandler: w.feeHandler,
		Controller: w.controller,
		Bank:       w.bank,
	}
}

func (w *World) Bank() *ledger.Bank      { return w.bank }
func (w *World) Pool() *Pool             { return w.pool }
func (w *World) Registry() *Registry     { return w.registry }
func (w *World) Controller() *Controller { return w.controller }
func (w *World) FeeHandler() *FeeHandler { return w.feeHandler }
func (w *World) Config() WorldConfig     { return w.cfg }

// Apply executes one sandbox command. A failed command leaves the world as
// it was.
func (w *World) Apply(cmd event.Command) error {
	switch c := cmd.(type) {
	case *event.MintPositionCmd:
		return w.registry.Mint(state.PositionID(c.PositionID), c.Owner, core.PositionInfo{
			Asset0:      w.cfg.Gauge.Asset0,
			Asset1:      w.cfg.Gauge.Asset1,
			TickLower:   c.TickLower,
			TickUpper:   c.TickUpper,
			Liquidity:   c.Liquidity,
			TickSpacing: w.cfg.Gauge.TickSpacing,
		})

	case *event.MintTokensCmd:
		if c.Amount == nil || c.Amount.IsZero() {
			return fmt.Errorf("mint tokens: zero amount")
		}
		return w.bank.Mint(c.Asset, c.To, c.Amount)

	case *event.MoveTickCmd:
		return w.pool.MoveTick(c.Time(), c.Tick)

	case *event.AccrueFeesCmd:
		a0, a1 := orZero(c.Amount0), orZero(c.Amount1)
		if a0.IsZero() && a1.IsZero() {
			return fmt.Errorf("accrue fees: zero amounts")
		}
		if c.PositionID == 0 {
			return w.pool.AccrueGaugeFees(a0, a1)
		}
		return w.registry.CreditFees(state.PositionID(c.PositionID), a0, a1)

	case *event.SetGaugeActiveCmd:
		if c.Sender() != w.controller.Address() {
			return fmt.Errorf("set gauge active: %w", ErrNotController)
		}
		w.controller.SetGaugeActive(w.cfg.Gauge.Gauge, c.Active)
		return nil

	default:
		return &event.UnknownTypeError{Kind: "sandbox command", Type: cmd.CommandType().String()}
	}
}

func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

// WorldExport is the audit form of every collaborator.
type WorldExport struct {
	Balances     []ledger.HolderBalance `json:"balances"`
	Pool         PoolExport             `json:"pool"`
	Positions    []PositionExport       `json:"positions"`
	ActiveGauges []string               `json:"active_gauges"`
	Distributed  map[string]string      `json:"distributed"`
}

func (w *World) Export() WorldExport {
	return WorldExport{
		Balances:     w.bank.Balances(),
		Pool:         w.pool.Export(),
		Positions:    w.registry.Export(),
		ActiveGauges: w.controller.activeGauges(),
		Distributed:  w.feeHandler.export(),
	}
}

// StateDigest is the SHA-256 of the JSON export.
func (w *World) StateDigest() []byte {
	data, err := json.Marshal(w.Export())
	if err != nil {
		panic(fmt.Sprintf("FATAL: world export not serialisable: %v", err))
	}
	sum := sha256.Sum256(data)
	return sum[:]
}

func (w *World) CheckInvariants() error {
	if err := w.bank.Validate(); err != nil {
		return fmt.Errorf("bank: %w", err)
	}
	if err := w.pool.checkInvariants(); err != nil {
		return fmt.Errorf("pool: %w", err)
	}
	return nil
}
