package persistence

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/observability"
	"bytes"
	"context"
	"fmt"
	"log"
	"time"
)

// CommandSource yields persisted commands in sequence order.
type CommandSource interface {
	LoadCommandsFrom(ctx context.Context, from int64, limit int) ([]CommandRow, error)
}

// ReplayResult summarises a recovery replay.
type ReplayResult struct {
	Commands      int64
	LastSequence  int64 // -1 when the log was empty
	LastTimestamp uint64
	StateHash     [32]byte
	Duration      time.Duration
}

// Replayer rebuilds state by re-applying the command log to a fresh
// processor. Every command must re-apply at its recorded sequence with its
// recorded state hash; anything else means the log and the code disagree,
// and the process must not serve.
type Replayer struct {
	source    CommandSource
	batchSize int
	metrics   *observability.Metrics
}

func NewReplayer(source CommandSource, batchSize int, metrics *observability.Metrics) *Replayer {
	if batchSize < 1 {
		batchSize = 1000
	}
	return &Replayer{source: source, batchSize: batchSize, metrics: metrics}
}

// Replay applies the whole log to p, which must have no outputs attached.
func (r *Replayer) Replay(ctx context.Context, p *core.Processor) (ReplayResult, error) {
	start := time.Now()
	res := ReplayResult{LastSequence: -1, StateHash: p.StateHash()}

	from := p.Sequence()
	for {
		rows, err := r.source.LoadCommandsFrom(ctx, from, r.batchSize)
		if err != nil {
			return res, fmt.Errorf("load commands from %d: %w", from, err)
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			r.apply(p, row)
			res.Commands++
			res.LastSequence = row.Sequence
			res.LastTimestamp = uint64(row.Timestamp)
			copy(res.StateHash[:], row.StateHash)
		}

		from = rows[len(rows)-1].Sequence + 1
		if len(rows) < r.batchSize {
			break
		}
	}

	res.Duration = time.Since(start)
	if r.metrics != nil {
		r.metrics.ReplayCommands.Add(float64(res.Commands))
		r.metrics.ReplayDuration.Set(res.Duration.Seconds())
	}
	log.Printf("INFO: replayed %d commands in %v (last_sequence=%d)", res.Commands, res.Duration, res.LastSequence)
	return res, nil
}

func (r *Replayer) apply(p *core.Processor, row CommandRow) {
	if want := p.Sequence(); row.Sequence != want {
		panic(fmt.Sprintf("FATAL: command log gap: expected sequence %d, found %d", want, row.Sequence))
	}

	cmd, err := event.DecodeCommand(row.Payload)
	if err != nil {
		panic(fmt.Sprintf("FATAL: undecodable command at sequence %d: %v", row.Sequence, err))
	}
	if cmd.CommandID() != row.CommandID {
		panic(fmt.Sprintf("FATAL: command id mismatch at sequence %d", row.Sequence))
	}

	prev := p.StateHash()
	if !bytes.Equal(prev[:], row.PrevHash) {
		panic(fmt.Sprintf("FATAL: prev hash mismatch at sequence %d: have %x, log %x", row.Sequence, prev, row.PrevHash))
	}

	result, err := p.Submit(cmd)
	if err != nil {
		panic(fmt.Sprintf("FATAL: persisted command %s rejected on replay at sequence %d: %v", cmd.CommandID(), row.Sequence, err))
	}
	if result.Duplicate {
		panic(fmt.Sprintf("FATAL: persisted command %s replayed as duplicate at sequence %d", cmd.CommandID(), row.Sequence))
	}
	if !bytes.Equal(result.StateHash[:], row.StateHash) {
		panic(fmt.Sprintf("FATAL: state hash mismatch at sequence %d: computed %x, log %x", row.Sequence, result.StateHash, row.StateHash))
	}
}
