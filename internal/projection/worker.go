package projection

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/event"
	"GaugeLedger/internal/observability"
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Statement is one parameterised write derived from an event.
type Statement struct {
	Query string
	Args  []any
}

// Plan maps one applied command's events to projection writes. The
// watermark update is always last.
func Plan(out core.CoreOutput) ([]Statement, error) {
	stmts := make([]Statement, 0, len(out.Events)+1)
	for _, env := range out.Events {
		evt, err := env.Decode()
		if err != nil {
			return nil, fmt.Errorf("decode event %d/%d: %w", env.Sequence, env.Index, err)
		}

		ts := int64(env.Timestamp)
		switch e := evt.(type) {
		case *event.Staked:
			stmts = append(stmts, Statement{
				Query: `INSERT INTO projections.stakes (position_id, owner, liquidity, staked_at, last_sequence)
					VALUES ($1, $2, $3::numeric, $4, $5)
					ON CONFLICT (position_id) DO UPDATE
					SET owner = $2, liquidity = $3::numeric, staked_at = $4, last_sequence = $5`,
				Args: []any{int64(e.PositionID), e.Owner.Hex(), e.Liquidity.Dec(), ts, env.Sequence},
			})

		case *event.Unstaked:
			stmts = append(stmts, Statement{
				Query: `DELETE FROM projections.stakes WHERE position_id = $1`,
				Args:  []any{int64(e.PositionID)},
			})

		case *event.RewardClaimed:
			stmts = append(stmts, Statement{
				Query: `INSERT INTO projections.claims
						(owner, position_id, total_claimed, claim_count, last_claimed_at, last_sequence)
					VALUES ($1, $2, $3::numeric, 1, $4, $5)
					ON CONFLICT (owner, position_id) DO UPDATE
					SET total_claimed = projections.claims.total_claimed + $3::numeric,
					    claim_count = projections.claims.claim_count + 1,
					    last_claimed_at = $4, last_sequence = $5
					WHERE projections.claims.last_sequence < $5`,
				Args: []any{e.Owner.Hex(), int64(e.PositionID), e.Amount.Dec(), ts, env.Sequence},
			})

		case *event.RateUpdated:
			stmts = append(stmts, Statement{
				Query: `INSERT INTO projections.rate_history
						(sequence, caller, deposit, carry_over, leftover, rate_per_second, epoch_start, period_end, timestamp)
					VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7, $8, $9)
					ON CONFLICT (sequence) DO NOTHING`,
				Args: []any{
					env.Sequence, e.Caller.Hex(), e.Deposit.Dec(), e.CarryOver.Dec(), e.Leftover.Dec(),
					e.RatePerSecond.Dec(), int64(e.EpochStart), int64(e.PeriodEnd), ts,
				},
			})

		case *event.FeesCollected:
			stmts = append(stmts, Statement{
				Query: `INSERT INTO projections.fee_harvests
						(sequence, idx, caller, amount0, amount1, forwarded0, forwarded1, timestamp)
					VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8)
					ON CONFLICT (sequence, idx) DO NOTHING`,
				Args: []any{
					env.Sequence, env.Index, e.Caller.Hex(), e.Amount0.Dec(), e.Amount1.Dec(),
					e.Forwarded0.Dec(), e.Forwarded1.Dec(), ts,
				},
			})
		}
	}

	stmts = append(stmts, Statement{
		Query: `INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
			VALUES ('main', $1, NOW())
			ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()`,
		Args: []any{out.Sequence},
	})
	return stmts, nil
}

// ProjectionWorker maintains the query tables from emitted events. Its
// channel is fed with drop-on-full sends, so the tables are eventually
// consistent and can be rebuilt from the event log at any time.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan core.CoreOutput
	metrics   *observability.Metrics
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan core.CoreOutput, metrics *observability.Metrics) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
		metrics:   metrics,
		lastSeq:   -1,
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case out, ok := <-pw.inputChan:
			if !ok {
				return nil
			}
			if out.Sequence <= pw.lastSeq {
				continue
			}
			if out.Sequence != pw.lastSeq+1 && pw.lastSeq >= 0 {
				log.Printf("WARN: projection gap %d..%d, rebuild from the event log to fill it", pw.lastSeq+1, out.Sequence-1)
			}

			if err := pw.apply(ctx, out); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", out.Sequence, err)
				if pw.metrics != nil {
					pw.metrics.ProjectionDrops.WithLabelValues("stakes").Inc()
				}
			}
			pw.lastSeq = out.Sequence
		}
	}
}

func (pw *ProjectionWorker) apply(ctx context.Context, out core.CoreOutput) error {
	stmts, err := Plan(out)
	if err != nil {
		return err
	}

	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s.Query, s.Args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RebuildProjections recomputes every projection table from the event log.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`TRUNCATE projections.stakes, projections.claims, projections.rate_history, projections.fee_harvests`,

		// A position is staked when its newest stake event is Staked.
		`INSERT INTO projections.stakes (position_id, owner, liquidity, staked_at, last_sequence)
		SELECT (payload->>'position_id')::bigint, payload->>'owner',
		       (payload->>'liquidity')::numeric, timestamp, sequence
		FROM (
			SELECT DISTINCT ON ((payload->>'position_id')::bigint) *
			FROM gauge_log.events
			WHERE event_type IN ('Staked', 'Unstaked')
			ORDER BY (payload->>'position_id')::bigint, sequence DESC, idx DESC
		) latest
		WHERE event_type = 'Staked'`,

		`INSERT INTO projections.claims
			(owner, position_id, total_claimed, claim_count, last_claimed_at, last_sequence)
		SELECT payload->>'owner', (payload->>'position_id')::bigint,
		       SUM((payload->>'amount')::numeric), COUNT(*), MAX(timestamp), MAX(sequence)
		FROM gauge_log.events
		WHERE event_type = 'RewardClaimed'
		GROUP BY payload->>'owner', (payload->>'position_id')::bigint`,

		`INSERT INTO projections.rate_history
			(sequence, caller, deposit, carry_over, leftover, rate_per_second, epoch_start, period_end, timestamp)
		SELECT sequence, payload->>'caller', (payload->>'deposit')::numeric,
		       (payload->>'carry_over')::numeric, (payload->>'leftover')::numeric,
		       (payload->>'rate_per_second')::numeric, (payload->>'epoch_start')::bigint,
		       (payload->>'period_end')::bigint, timestamp
		FROM gauge_log.events
		WHERE event_type = 'RateUpdated'`,

		`INSERT INTO projections.fee_harvests
			(sequence, idx, caller, amount0, amount1, forwarded0, forwarded1, timestamp)
		SELECT sequence, idx, payload->>'caller',
		       (payload->>'amount0')::numeric, (payload->>'amount1')::numeric,
		       (payload->>'forwarded0')::numeric, (payload->>'forwarded1')::numeric, timestamp
		FROM gauge_log.events
		WHERE event_type = 'FeesCollected'`,

		`INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		SELECT 'main', COALESCE(MAX(sequence), -1), NOW() FROM gauge_log.commands
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = EXCLUDED.last_sequence, updated_at = NOW()`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("rebuild: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}
