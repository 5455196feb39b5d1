package core

import (
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/observability"
	"GaugeLedger/internal/state"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
)

// Sandbox applies commands that drive the collaborator world (minting,
// price moves, fee accrual) and contributes its state to the hash chain.
type Sandbox interface {
	Apply(cmd event.Command) error
	StateDigest() []byte
	CheckInvariants() error
}

// CoreOutput is the durable record of one applied command.
type CoreOutput struct {
	Sequence  int64
	Command   event.Command
	Payload   []byte // wire-encoded command
	Events    []event.EventEnvelope
	StateHash [32]byte
	PrevHash  [32]byte
}

// Result describes the outcome of a submitted command.
type Result struct {
	Sequence  int64
	Duplicate bool
	Events    []event.Event
	StateHash [32]byte
}

// Processor is the single serialisation point in front of a gauge. Commands
// are applied one at a time; queries read under the same lock.
type Processor struct {
	mu sync.Mutex

	sequence    int64
	hasher      *StateHasher
	gauge       *Gauge
	sandbox     Sandbox
	idempotency *IdempotencyChecker
	clock       *ClockValidator
	metrics     *observability.Metrics
	logger      zerolog.Logger

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput
}

// ProcessorConfig bundles the optional wiring of a Processor. Nil channels
// disable the corresponding output, which is how replay runs.
type ProcessorConfig struct {
	StartSequence  int64
	LRUCapacity    int
	DBChecker      DBIdempotencyChecker
	Metrics        *observability.Metrics
	Logger         *zerolog.Logger
	PersistChan    chan<- CoreOutput
	ProjectionChan chan<- CoreOutput
}

func NewProcessor(gauge *Gauge, sandbox Sandbox, cfg ProcessorConfig) *Processor {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	capacity := cfg.LRUCapacity
	if capacity <= 0 {
		capacity = 100_000
	}
	return &Processor{
		sequence:       cfg.StartSequence,
		hasher:         NewStateHasher(),
		gauge:          gauge,
		sandbox:        sandbox,
		idempotency:    NewIdempotencyChecker(capacity, cfg.DBChecker, cfg.Metrics),
		clock:          NewClockValidator(),
		metrics:        cfg.Metrics,
		logger:         logger,
		persistChan:    cfg.PersistChan,
		projectionChan: cfg.ProjectionChan,
	}
}

// Submit applies one command. A duplicate command ID is acknowledged without
// effect. A failed command leaves gauge and sandbox state untouched and does
// not consume a sequence number.
func (p *Processor) Submit(cmd event.Command) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	cmdType := cmd.CommandType().String()

	// Step 1: Idempotency check (two-tier)
	if p.idempotency.IsDuplicate(cmdType, cmd.CommandID()) {
		p.reject(cmdType, "duplicate")
		return Result{Sequence: p.sequence, Duplicate: true, StateHash: p.hasher.Tip()}, nil
	}

	// Step 2: Clock monotonicity
	if err := p.clock.Validate(cmd.Time()); err != nil {
		p.reject(cmdType, "clock")
		if p.metrics != nil {
			p.metrics.CoreClockRegressions.Inc()
		}
		return Result{}, err
	}

	// Step 3: Dispatch
	var events []event.Event
	var err error
	if cmd.CommandType().IsSandbox() {
		if p.sandbox == nil {
			err = fmt.Errorf("%s: no sandbox configured", cmdType)
		} else {
			err = p.sandbox.Apply(cmd)
		}
	} else {
		events, err = p.dispatch(cmd)
	}
	if err != nil {
		p.reject(cmdType, reasonOf(err))
		p.logger.Debug().Err(err).
			Str("command", cmdType).
			Str("command_id", cmd.CommandID().String()).
			Str("caller", cmd.Sender().Hex()).
			Msg("command rejected")
		return Result{}, err
	}

	// Step 4: Post-checks
	if err := p.gauge.CheckInvariants(); err != nil {
		panic(fmt.Sprintf("FATAL: gauge invariant violated after %s: %v", cmdType, err))
	}
	if p.sandbox != nil {
		if err := p.sandbox.CheckInvariants(); err != nil {
			panic(fmt.Sprintf("FATAL: sandbox invariant violated after %s: %v", cmdType, err))
		}
	}

	// Step 5: Hash chain
	hashStart := time.Now()
	prev := p.hasher.Tip()
	digests := [][]byte{p.gauge.StateDigest()}
	if p.sandbox != nil {
		digests = append(digests, p.sandbox.StateDigest())
	}
	stateHash := p.hasher.ComputeHash(p.sequence, digests...)
	if p.metrics != nil {
		p.metrics.CoreStateHashDur.Observe(time.Since(hashStart).Seconds())
	}

	seq := p.sequence
	p.sequence++
	p.clock.Advance(cmd.Time())
	p.idempotency.MarkProcessed(cmd.CommandID())

	// Step 6: Emit outputs. Persistence blocks (no command is lost);
	// projections drop on a full channel and catch up from the event log.
	if p.persistChan != nil || p.projectionChan != nil {
		out, err := p.buildOutput(seq, cmd, events, stateHash, prev)
		if err != nil {
			panic(fmt.Sprintf("FATAL: cannot encode applied command %s: %v", cmd.CommandID(), err))
		}
		if p.persistChan != nil {
			select {
			case p.persistChan <- out:
			default:
				if p.metrics != nil {
					p.metrics.PersistBackpressure.Inc()
				}
				p.persistChan <- out
			}
		}
		if p.projectionChan != nil {
			select {
			case p.projectionChan <- out:
			default:
				if p.metrics != nil {
					p.metrics.ProjectionDrops.WithLabelValues("stakes").Inc()
				}
			}
		}
	}

	p.record(cmdType, events, start)
	p.logger.Info().
		Str("command", cmdType).
		Str("command_id", cmd.CommandID().String()).
		Str("caller", cmd.Sender().Hex()).
		Int64("sequence", seq).
		Int("events", len(events)).
		Msg("command applied")

	return Result{Sequence: seq, Events: events, StateHash: stateHash}, nil
}

func (p *Processor) dispatch(cmd event.Command) ([]event.Event, error) {
	call := Call{Caller: cmd.Sender(), Timestamp: cmd.Time()}

	switch c := cmd.(type) {
	case *event.StakeCmd:
		return p.gauge.Stake(call, state.PositionID(c.PositionID))
	case *event.UnstakeCmd:
		return p.gauge.Unstake(call, state.PositionID(c.PositionID))
	case *event.ClaimCmd:
		return p.gauge.Claim(call, state.PositionID(c.PositionID))
	case *event.ClaimAllCmd:
		return p.gauge.ClaimAll(call, c.Account)
	case *event.DepositRewardsCmd:
		return p.gauge.DepositRewards(call, c.Amount)
	case *event.DepositRewardsNoFeeClaimCmd:
		return p.gauge.DepositRewardsNoFeeClaim(call, c.Amount)
	default:
		return nil, &event.UnknownTypeError{Kind: "command", Type: fmt.Sprintf("%T", cmd)}
	}
}

func (p *Processor) buildOutput(seq int64, cmd event.Command, events []event.Event, stateHash, prev [32]byte) (CoreOutput, error) {
	payload, err := event.EncodeCommand(cmd)
	if err != nil {
		return CoreOutput{}, err
	}
	envs, err := event.Wrap(seq, cmd.CommandID(), cmd.Time(), events)
	if err != nil {
		return CoreOutput{}, err
	}
	return CoreOutput{
		Sequence:  seq,
		Command:   cmd,
		Payload:   payload,
		Events:    envs,
		StateHash: stateHash,
		PrevHash:  prev,
	}, nil
}

// Read runs fn under the processor lock so it observes a committed state.
func (p *Processor) Read(fn func(g *Gauge) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.gauge)
}

// View is the processor position observed by a Capture callback.
type View struct {
	Applied       int64 // commands applied so far
	Tip           [32]byte
	LastTimestamp uint64
}

// Capture runs fn under the processor lock with gauge, sandbox and the
// position they reflect.
func (p *Processor) Capture(fn func(g *Gauge, sandbox Sandbox, v View) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.gauge, p.sandbox, View{
		Applied:       p.sequence,
		Tip:           p.hasher.Tip(),
		LastTimestamp: p.clock.Last(),
	})
}

// GoLive wires the live outputs and the durable dedup tier once recovery
// replay has finished.
func (p *Processor) GoLive(persist, projection chan<- CoreOutput, db DBIdempotencyChecker) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.persistChan = persist
	p.projectionChan = projection
	p.idempotency.SetDBChecker(db)
}

// WarmIdempotency preloads recently applied command IDs.
func (p *Processor) WarmIdempotency(ids []uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.idempotency.Warm(ids)
}

func (p *Processor) Sequence() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sequence
}

func (p *Processor) StateHash() [32]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasher.Tip()
}

// LastTimestamp is the newest applied command time.
func (p *Processor) LastTimestamp() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clock.Last()
}

func (p *Processor) reject(cmdType, reason string) {
	if p.metrics != nil {
		p.metrics.CoreCommandsRejected.WithLabelValues(cmdType, reason).Inc()
	}
}

func (p *Processor) record(cmdType string, events []event.Event, start time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.CoreCommandsApplied.WithLabelValues(cmdType).Inc()
	p.metrics.CoreCommandDuration.WithLabelValues(cmdType).Observe(time.Since(start).Seconds())
	p.metrics.CoreSequence.Set(float64(p.sequence))
	p.metrics.StakedPositions.Set(float64(p.gauge.TotalStaked()))

	now := p.clock.Last()
	p.metrics.RewardRate.Set(approx(p.gauge.Schedule().RatePerSecond))
	p.metrics.RemainingEmission.Set(approx(p.gauge.RemainingEmission(now)))

	for _, evt := range events {
		p.metrics.CoreEventsEmitted.WithLabelValues(evt.EventType().String()).Inc()
		switch e := evt.(type) {
		case *event.RewardClaimed:
			p.metrics.RewardsPaid.Add(approx(e.Amount))
		case *event.FeesCollected:
			p.metrics.FeesForwarded.WithLabelValues("asset0").Add(approx(e.Forwarded0))
			p.metrics.FeesForwarded.WithLabelValues("asset1").Add(approx(e.Forwarded1))
		}
	}
}

// approx converts a 256-bit amount for metric export.
func approx(v *uint256.Int) float64 {
	f, _ := new(big.Float).SetInt(v.ToBig()).Float64()
	return f
}

// reasonOf maps an error to a bounded metric label.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrAlreadyStaked), errors.Is(err, ErrNotStaked):
		return "membership"
	case errors.Is(err, ErrTokenMismatch):
		return "token_mismatch"
	case errors.Is(err, ErrInvalidRate), errors.Is(err, ErrZeroDuration), errors.Is(err, ErrInsufficientFunding):
		return "rate"
	case errors.Is(err, ErrGaugeInactive):
		return "inactive"
	case errors.Is(err, ErrZeroAmount):
		return "zero_amount"
	case errors.Is(err, ErrReentrantCall):
		return "reentrant"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant"
	default:
		return "validation"
	}
}
