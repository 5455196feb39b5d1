package persistence_test

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/persistence"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

type memoryWriter struct {
	mu      sync.Mutex
	batches [][]core.CoreOutput
	fails   int
}

func (m *memoryWriter) WriteBatch(_ context.Context, outputs []core.CoreOutput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fails > 0 {
		m.fails--
		return errors.New("connection reset")
	}
	m.batches = append(m.batches, append([]core.CoreOutput(nil), outputs...))
	return nil
}

func (m *memoryWriter) sizes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.batches))
	for i, b := range m.batches {
		out[i] = len(b)
	}
	return out
}

func output(seq int64) core.CoreOutput {
	cmd := &event.MoveTickCmd{
		Header: event.Header{ID: uuid.New(), Caller: common.HexToAddress("0x01"), Timestamp: uint64(seq)},
		Tick:   int32(seq),
	}
	return core.CoreOutput{Sequence: seq, Command: cmd}
}

func TestPersistenceWorker_FlushesFullBatchesAndRemainder(t *testing.T) {
	in := make(chan core.CoreOutput, 8)
	flushed := make(chan core.CoreOutput, 8)
	w := &memoryWriter{}
	pw := persistence.NewPersistenceWorker(w, in, flushed, 3, time.Hour, nil)

	for i := int64(0); i < 7; i++ {
		in <- output(i)
	}
	close(in)

	if err := pw.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	sizes := w.sizes()
	if len(sizes) != 3 || sizes[0] != 3 || sizes[1] != 3 || sizes[2] != 1 {
		t.Errorf("batch sizes: %v", sizes)
	}

	close(flushed)
	var next int64
	for out := range flushed {
		if out.Sequence != next {
			t.Errorf("flushed out of order: got %d, want %d", out.Sequence, next)
		}
		next++
	}
	if next != 7 {
		t.Errorf("forwarded %d outputs", next)
	}
}

func TestPersistenceWorker_FlushesOnTimeout(t *testing.T) {
	in := make(chan core.CoreOutput, 1)
	w := &memoryWriter{}
	pw := persistence.NewPersistenceWorker(w, in, nil, 100, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pw.Run(ctx) }()

	in <- output(0)
	deadline := time.Now().Add(2 * time.Second)
	for len(w.sizes()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if sizes := w.sizes(); len(sizes) != 1 || sizes[0] != 1 {
		t.Errorf("batch sizes: %v", sizes)
	}
}

func TestPersistenceWorker_RetriesUntilWritten(t *testing.T) {
	in := make(chan core.CoreOutput, 2)
	w := &memoryWriter{fails: 2}
	pw := persistence.NewPersistenceWorker(w, in, nil, 2, time.Hour, nil)

	in <- output(0)
	in <- output(1)
	close(in)

	if err := pw.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sizes := w.sizes(); len(sizes) != 1 || sizes[0] != 2 {
		t.Errorf("batch written %v after retries", sizes)
	}
}

func TestRowsFrom(t *testing.T) {
	owner := common.HexToAddress("0x00000000000000000000000000000000000000c1")
	cmd := &event.ClaimCmd{
		Header:     event.Header{ID: uuid.New(), Caller: owner, Timestamp: 99},
		PositionID: 4,
	}
	payload, err := event.EncodeCommand(cmd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	envs, err := event.Wrap(12, cmd.ID, 99, []event.Event{
		&event.RewardClaimed{Owner: owner, PositionID: 4, Amount: uint256.NewInt(10)},
	})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	row, events, err := persistence.RowsFrom(core.CoreOutput{
		Sequence:  12,
		Command:   cmd,
		Payload:   payload,
		Events:    envs,
		StateHash: [32]byte{1},
		PrevHash:  [32]byte{2},
	})
	if err != nil {
		t.Fatalf("RowsFrom: %v", err)
	}
	if row.Sequence != 12 || row.CommandID != cmd.ID || row.CommandType != "claim" {
		t.Errorf("command row: %+v", row)
	}
	if row.Caller != owner.Hex() || row.Timestamp != 99 {
		t.Errorf("caller %s timestamp %d", row.Caller, row.Timestamp)
	}
	if row.StateHash[0] != 1 || row.PrevHash[0] != 2 || len(row.StateHash) != 32 {
		t.Errorf("hashes not copied")
	}
	if len(events) != 1 || events[0].EventType != "RewardClaimed" || events[0].Actor != owner.Hex() {
		t.Errorf("event rows: %+v", events)
	}
}

func TestPersistenceWorker_DrainsQueuedOutputsOnCancel(t *testing.T) {
	in := make(chan core.CoreOutput, 4)
	w := &memoryWriter{}
	pw := persistence.NewPersistenceWorker(w, in, nil, 100, time.Hour, nil)

	for i := int64(0); i < 4; i++ {
		in <- output(i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pw.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: %v", err)
	}
	if sizes := w.sizes(); len(sizes) != 1 || sizes[0] != 4 {
		t.Errorf("queued outputs not flushed on cancel: %v", sizes)
	}
}
