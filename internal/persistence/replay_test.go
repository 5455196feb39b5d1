package persistence_test

import (
	"GaugeLedger/internal/core"
	"bytes"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/persistence"
	"GaugeLedger/internal/sim"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

var (
	ctrl   = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	lp     = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	trader = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	reward = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

func worldConfig() sim.WorldConfig {
	return sim.WorldConfig{
		Gauge: core.GaugeConfig{
			Gauge:       common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Admin:       common.HexToAddress("0x00000000000000000000000000000000000000a6"),
			RewardToken: reward,
			Asset0:      common.HexToAddress("0x00000000000000000000000000000000000000b2"),
			Asset1:      common.HexToAddress("0x00000000000000000000000000000000000000b3"),
			TickSpacing: 60,
		},
		Pool:       common.HexToAddress("0x00000000000000000000000000000000000000a2"),
		Registry:   common.HexToAddress("0x00000000000000000000000000000000000000a3"),
		Controller: ctrl,
		FeeHandler: common.HexToAddress("0x00000000000000000000000000000000000000a5"),
	}
}

func freshProcessor(t *testing.T, persist chan core.CoreOutput) *core.Processor {
	t.Helper()
	g, w, err := sim.NewGaugeWorld(worldConfig())
	if err != nil {
		t.Fatalf("NewGaugeWorld: %v", err)
	}
	return core.NewProcessor(g, w, core.ProcessorConfig{PersistChan: persist})
}

func h(caller common.Address, ts uint64) event.Header {
	return event.Header{ID: uuid.New(), Caller: caller, Timestamp: ts}
}

// recordOutputs runs a short history and returns its processor outputs.
func recordOutputs(t *testing.T) ([]core.CoreOutput, [32]byte) {
	t.Helper()
	amount := uint256.NewInt(6_048_000)
	cmds := []event.Command{
		&event.MintTokensCmd{Header: h(ctrl, 0), Asset: reward, To: ctrl, Amount: amount},
		&event.MintPositionCmd{Header: h(lp, 0), PositionID: 1, Owner: lp, TickLower: -60, TickUpper: 60, Liquidity: uint256.NewInt(1000)},
		&event.StakeCmd{Header: h(lp, 10), PositionID: 1},
		&event.DepositRewardsCmd{Header: h(ctrl, 20), Amount: amount},
		&event.MoveTickCmd{Header: h(trader, 500), Tick: 120},
		&event.ClaimCmd{Header: h(lp, 900), PositionID: 1},
		&event.UnstakeCmd{Header: h(lp, 1000), PositionID: 1},
	}

	persist := make(chan core.CoreOutput, len(cmds))
	p := freshProcessor(t, persist)
	for _, cmd := range cmds {
		if _, err := p.Submit(cmd); err != nil {
			t.Fatalf("%s: %v", cmd.CommandType(), err)
		}
	}
	close(persist)

	var outs []core.CoreOutput
	for out := range persist {
		outs = append(outs, out)
	}
	return outs, p.StateHash()
}

// recordLog returns the same history as persisted rows.
func recordLog(t *testing.T) ([]persistence.CommandRow, [32]byte) {
	t.Helper()
	outs, tip := recordOutputs(t)
	rows := make([]persistence.CommandRow, 0, len(outs))
	for _, out := range outs {
		row, _, err := persistence.RowsFrom(out)
		if err != nil {
			t.Fatalf("RowsFrom: %v", err)
		}
		rows = append(rows, row)
	}
	return rows, tip
}

type memorySource []persistence.CommandRow

func (m memorySource) LoadCommandsFrom(_ context.Context, from int64, limit int) ([]persistence.CommandRow, error) {
	var out []persistence.CommandRow
	for _, r := range m {
		if r.Sequence >= from && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestReplayer_ReproducesStateHash(t *testing.T) {
	rows, tip := recordLog(t)

	p := freshProcessor(t, nil)
	res, err := persistence.NewReplayer(memorySource(rows), 3, nil).Replay(context.Background(), p)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Commands != int64(len(rows)) || res.LastSequence != int64(len(rows)-1) {
		t.Errorf("replayed %d commands, last %d", res.Commands, res.LastSequence)
	}
	if res.StateHash != tip || p.StateHash() != tip {
		t.Errorf("replayed hash %x, recorded %x", p.StateHash(), tip)
	}
	if res.LastTimestamp != 1000 || p.LastTimestamp() != 1000 {
		t.Errorf("clock after replay: %d", p.LastTimestamp())
	}
}

func TestReplayer_EmptyLog(t *testing.T) {
	p := freshProcessor(t, nil)
	res, err := persistence.NewReplayer(memorySource(nil), 10, nil).Replay(context.Background(), p)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if res.Commands != 0 || res.LastSequence != -1 {
		t.Errorf("result: %+v", res)
	}
}

func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.HasPrefix(msg, "FATAL:") {
			t.Errorf("expected FATAL panic, got %v", r)
		}
	}()
	fn()
}

func TestReplayer_PanicsOnTamperedHash(t *testing.T) {
	rows, _ := recordLog(t)
	last := len(rows) - 1
	rows[last].StateHash = append([]byte(nil), rows[last].StateHash...)
	rows[last].StateHash[0] ^= 0xff

	expectFatal(t, func() {
		persistence.NewReplayer(memorySource(rows), 100, nil).Replay(context.Background(), freshProcessor(t, nil))
	})
}

func TestReplayer_PanicsOnGap(t *testing.T) {
	rows, _ := recordLog(t)
	gapped := append(append([]persistence.CommandRow(nil), rows[:2]...), rows[3:]...)

	expectFatal(t, func() {
		persistence.NewReplayer(memorySource(gapped), 100, nil).Replay(context.Background(), freshProcessor(t, nil))
	})
}

func TestTakeSnapshot_GaugeDigestMatchesLiveState(t *testing.T) {
	rows, _ := recordLog(t)

	// Stop before the unstake so a position is still in custody.
	p := freshProcessor(t, nil)
	if _, err := persistence.NewReplayer(memorySource(rows[:6]), 100, nil).Replay(context.Background(), p); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	snap, err := persistence.TakeSnapshot(p, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("TakeSnapshot: %v", err)
	}
	if snap.Applied != 6 || snap.World == nil || len(snap.Gauge.Rewards) != 1 {
		t.Fatalf("snapshot: applied=%d world=%v rewards=%d", snap.Applied, snap.World != nil, len(snap.Gauge.Rewards))
	}

	restored, err := snap.GaugeDigest()
	if err != nil {
		t.Fatalf("GaugeDigest: %v", err)
	}
	var live []byte
	p.Read(func(g *core.Gauge) error {
		live = g.StateDigest()
		return nil
	})
	if !bytes.Equal(restored, live) {
		t.Errorf("restored digest %x, live %x", restored, live)
	}
}
