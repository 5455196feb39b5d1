package query

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// QueryService reads the projection tables and the command log. Projected
// results trail the core; each call reports the watermark it reflects.
type QueryService struct {
	db *sql.DB
}

func NewQueryService(db *sql.DB) *QueryService {
	return &QueryService{db: db}
}

// StakesOf returns the positions owner has in custody.
func (qs *QueryService) StakesOf(ctx context.Context, owner common.Address) ([]StakeView, int64, error) {
	asOf, err := qs.Watermark(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("watermark: %w", err)
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT position_id, owner, liquidity::text, staked_at, last_sequence
		FROM projections.stakes
		WHERE owner = $1
		ORDER BY position_id
	`, owner.Hex())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var stakes []StakeView
	for rows.Next() {
		var s StakeView
		var id int64
		if err := rows.Scan(&id, &s.Owner, &s.Liquidity, &s.StakedAt, &s.LastSequence); err != nil {
			return nil, 0, err
		}
		s.PositionID = uint64(id)
		stakes = append(stakes, s)
	}
	return stakes, asOf, rows.Err()
}

// ClaimsOf returns lifetime payouts per position of owner.
func (qs *QueryService) ClaimsOf(ctx context.Context, owner common.Address) ([]ClaimView, int64, error) {
	asOf, err := qs.Watermark(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("watermark: %w", err)
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT owner, position_id, total_claimed::text, claim_count, last_claimed_at
		FROM projections.claims
		WHERE owner = $1
		ORDER BY position_id
	`, owner.Hex())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var claims []ClaimView
	for rows.Next() {
		var c ClaimView
		var id int64
		if err := rows.Scan(&c.Owner, &id, &c.TotalClaimed, &c.ClaimCount, &c.LastClaimedAt); err != nil {
			return nil, 0, err
		}
		c.PositionID = uint64(id)
		claims = append(claims, c)
	}
	return claims, asOf, rows.Err()
}

// RateHistory pages backwards through rate resets. beforeSeq of zero or
// less starts from the newest.
func (qs *QueryService) RateHistory(ctx context.Context, limit int, beforeSeq int64) ([]RateView, error) {
	query := `
		SELECT sequence, caller, deposit::text, carry_over::text, leftover::text,
		       rate_per_second::text, epoch_start, period_end, timestamp
		FROM projections.rate_history`
	args := []any{}
	if beforeSeq > 0 {
		query += ` WHERE sequence < $1`
		args = append(args, beforeSeq)
	}
	query += fmt.Sprintf(` ORDER BY sequence DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RateView
	for rows.Next() {
		var r RateView
		if err := rows.Scan(
			&r.Sequence, &r.Caller, &r.Deposit, &r.CarryOver, &r.Leftover,
			&r.RatePerSecond, &r.EpochStart, &r.PeriodEnd, &r.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FeeHarvests returns the newest fee collections first.
func (qs *QueryService) FeeHarvests(ctx context.Context, limit int) ([]FeeHarvestView, error) {
	rows, err := qs.db.QueryContext(ctx, `
		SELECT sequence, idx, caller, amount0::text, amount1::text,
		       forwarded0::text, forwarded1::text, timestamp
		FROM projections.fee_harvests
		ORDER BY sequence DESC, idx DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FeeHarvestView
	for rows.Next() {
		var f FeeHarvestView
		if err := rows.Scan(
			&f.Sequence, &f.Index, &f.Caller, &f.Amount0, &f.Amount1,
			&f.Forwarded0, &f.Forwarded1, &f.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks the command log hash chain and sequence density,
// and reports how far the projections trail the log.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{LastSequence: -1}

	if err := qs.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sequence), -1) FROM gauge_log.commands`,
	).Scan(&report.LastSequence); err != nil {
		return nil, err
	}

	breaks, err := qs.sequences(ctx, `
		SELECT c1.sequence
		FROM gauge_log.commands c1
		JOIN gauge_log.commands c2 ON c2.sequence = c1.sequence - 1
		WHERE c1.prev_hash <> c2.state_hash
		ORDER BY c1.sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("hash chain: %w", err)
	}
	report.HashChainBreaks = breaks

	gaps, err := qs.sequences(ctx, `
		SELECT c1.sequence
		FROM gauge_log.commands c1
		LEFT JOIN gauge_log.commands c2 ON c2.sequence = c1.sequence - 1
		WHERE c1.sequence > 0 AND c2.sequence IS NULL
		ORDER BY c1.sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("sequence gaps: %w", err)
	}
	report.SequenceGaps = gaps

	watermark, err := qs.Watermark(ctx)
	if err != nil {
		return nil, err
	}
	report.ProjectionLag = report.LastSequence - watermark

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.SequenceGaps) == 0
	return report, nil
}

// Watermark is the last sequence the projections reflect, -1 before any.
func (qs *QueryService) Watermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT last_sequence FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return -1, nil
	}
	return seq, err
}

func (qs *QueryService) sequences(ctx context.Context, query string) ([]int64, error) {
	rows, err := qs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, rows.Err()
}
