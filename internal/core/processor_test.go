package core_test

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/sim"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

func hdr(caller common.Address, ts uint64) event.Header {
	return event.Header{ID: uuid.New(), Caller: caller, Timestamp: ts}
}

// scenario is a short life cycle mixing sandbox and gauge commands.
func scenario() []event.Command {
	return []event.Command{
		&event.MintTokensCmd{Header: hdr(ctrlAddr, 0), Asset: rewardTok, To: ctrlAddr, Amount: tokens(100)},
		&event.MintPositionCmd{Header: hdr(alice, 0), PositionID: 1, Owner: alice, TickLower: -60, TickUpper: 60, Liquidity: tokens(1)},
		&event.StakeCmd{Header: hdr(alice, 0), PositionID: 1},
		&event.DepositRewardsCmd{Header: hdr(ctrlAddr, 0), Amount: tokens(100)},
		&event.MoveTickCmd{Header: hdr(bob, 3600), Tick: 30},
		&event.ClaimCmd{Header: hdr(alice, 7200), PositionID: 1},
	}
}

func newProcessor(t *testing.T, persist chan core.CoreOutput) (*core.Processor, *sim.World) {
	t.Helper()
	g, w, err := sim.NewGaugeWorld(worldConfig(false))
	if err != nil {
		t.Fatalf("NewGaugeWorld: %v", err)
	}
	cfg := core.ProcessorConfig{LRUCapacity: 16}
	if persist != nil {
		cfg.PersistChan = persist
	}
	return core.NewProcessor(g, w, cfg), w
}

func TestProcessor_AppliesAndChainsHashes(t *testing.T) {
	persist := make(chan core.CoreOutput, 16)
	p, w := newProcessor(t, persist)

	cmds := scenario()
	for i, cmd := range cmds {
		res, err := p.Submit(cmd)
		if err != nil {
			t.Fatalf("command %d (%s): %v", i, cmd.CommandType(), err)
		}
		if res.Sequence != int64(i) {
			t.Errorf("command %d: sequence %d", i, res.Sequence)
		}
	}
	if p.Sequence() != int64(len(cmds)) {
		t.Fatalf("sequence: expected %d, got %d", len(cmds), p.Sequence())
	}
	if p.LastTimestamp() != 7200 {
		t.Errorf("last timestamp %d", p.LastTimestamp())
	}
	if w.Bank().BalanceOf(rewardTok, alice).IsZero() {
		t.Errorf("claim paid nothing")
	}

	close(persist)
	var prev core.CoreOutput
	n := 0
	for out := range persist {
		if n > 0 && out.PrevHash != prev.StateHash {
			t.Errorf("output %d does not chain to %d", out.Sequence, prev.Sequence)
		}
		decoded, err := event.DecodeCommand(out.Payload)
		if err != nil {
			t.Fatalf("decode payload %d: %v", out.Sequence, err)
		}
		if decoded.CommandID() != cmds[n].CommandID() {
			t.Errorf("output %d carries command %s", out.Sequence, decoded.CommandID())
		}
		prev = out
		n++
	}
	if n != len(cmds) {
		t.Fatalf("persisted %d outputs, expected %d", n, len(cmds))
	}
	if prev.StateHash != p.StateHash() {
		t.Errorf("last persisted hash differs from tip")
	}
}

func TestProcessor_DuplicateIsAcknowledgedWithoutEffect(t *testing.T) {
	p, w := newProcessor(t, nil)
	mint := &event.MintTokensCmd{Header: hdr(ctrlAddr, 0), Asset: rewardTok, To: alice, Amount: uint256.NewInt(5)}

	if _, err := p.Submit(mint); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	hash := p.StateHash()

	res, err := p.Submit(mint)
	if err != nil {
		t.Fatalf("duplicate submit: %v", err)
	}
	if !res.Duplicate {
		t.Errorf("expected duplicate flag")
	}
	if p.Sequence() != 1 || p.StateHash() != hash {
		t.Errorf("duplicate advanced the chain")
	}
	if got := w.Bank().BalanceOf(rewardTok, alice); got.Uint64() != 5 {
		t.Errorf("balance after duplicate: %s", got.Dec())
	}
}

func TestProcessor_RejectsClockRegression(t *testing.T) {
	p, _ := newProcessor(t, nil)
	if _, err := p.Submit(&event.MoveTickCmd{Header: hdr(bob, 100), Tick: 60}); err != nil {
		t.Fatalf("MoveTick: %v", err)
	}

	_, err := p.Submit(&event.MoveTickCmd{Header: hdr(bob, 99), Tick: 0})
	if !errors.Is(err, core.ErrClockRegression) {
		t.Fatalf("expected ErrClockRegression, got %v", err)
	}
	if p.Sequence() != 1 {
		t.Errorf("rejected command consumed a sequence")
	}

	// Same instant is fine.
	if _, err := p.Submit(&event.MoveTickCmd{Header: hdr(bob, 100), Tick: 0}); err != nil {
		t.Errorf("equal timestamp: %v", err)
	}
}

func TestProcessor_RejectedCommandKeepsHash(t *testing.T) {
	p, _ := newProcessor(t, nil)
	for _, cmd := range scenario()[:3] {
		if _, err := p.Submit(cmd); err != nil {
			t.Fatalf("%s: %v", cmd.CommandType(), err)
		}
	}
	seq, hash := p.Sequence(), p.StateHash()

	_, err := p.Submit(&event.ClaimCmd{Header: hdr(bob, 10), PositionID: 1})
	if !errors.Is(err, core.ErrNotStaked) {
		t.Fatalf("expected ErrNotStaked, got %v", err)
	}
	if p.Sequence() != seq || p.StateHash() != hash {
		t.Errorf("rejected command changed the chain")
	}
	// The failed command's clock does not count as applied.
	if p.LastTimestamp() != 0 {
		t.Errorf("clock advanced to %d", p.LastTimestamp())
	}
}

func TestProcessor_ReplayIsDeterministic(t *testing.T) {
	cmds := scenario()
	run := func() [32]byte {
		p, _ := newProcessor(t, nil)
		for _, cmd := range cmds {
			if _, err := p.Submit(cmd); err != nil {
				t.Fatalf("%s: %v", cmd.CommandType(), err)
			}
		}
		return p.StateHash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("replay hashes differ: %x vs %x", a, b)
	}
}

func TestProcessor_ReadSeesCommittedState(t *testing.T) {
	p, _ := newProcessor(t, nil)
	for _, cmd := range scenario()[:4] {
		if _, err := p.Submit(cmd); err != nil {
			t.Fatalf("%s: %v", cmd.CommandType(), err)
		}
	}
	err := p.Read(func(g *core.Gauge) error {
		if !g.HasStake(alice, 1) {
			return errors.New("stake missing")
		}
		pending, err := g.PendingRewards(60, 1)
		if err != nil {
			return err
		}
		if pending.IsZero() {
			return errors.New("nothing pending after a minute")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
}

func TestProcessor_WarmIdempotency(t *testing.T) {
	p, _ := newProcessor(t, nil)
	cmd := &event.MoveTickCmd{Header: hdr(bob, 1), Tick: 60}
	p.WarmIdempotency([]uuid.UUID{cmd.CommandID()})

	res, err := p.Submit(cmd)
	if err != nil || !res.Duplicate {
		t.Fatalf("warmed ID should be a duplicate: %+v %v", res, err)
	}
}
