package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CommandLogReader reads the persisted command log for recovery and audit.
type CommandLogReader struct {
	db *sql.DB
}

func NewCommandLogReader(db *sql.DB) *CommandLogReader {
	return &CommandLogReader{db: db}
}

// LoadCommandsFrom returns up to limit commands with sequence >= from in
// sequence order.
func (r *CommandLogReader) LoadCommandsFrom(ctx context.Context, from int64, limit int) ([]CommandRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, command_id, command_type, caller, timestamp,
		       payload, state_hash, prev_hash
		FROM gauge_log.commands
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, from, limit)
	if err != nil {
		return nil, fmt.Errorf("load commands: %w", err)
	}
	defer rows.Close()

	var out []CommandRow
	for rows.Next() {
		var c CommandRow
		if err := rows.Scan(
			&c.Sequence, &c.CommandID, &c.CommandType, &c.Caller, &c.Timestamp,
			&c.Payload, &c.StateHash, &c.PrevHash,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// LatestCommand returns the newest persisted command, or nil for an empty log.
func (r *CommandLogReader) LatestCommand(ctx context.Context) (*CommandRow, error) {
	rows, err := r.LoadLatest(ctx, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// LoadLatest returns the newest n commands, newest first.
func (r *CommandLogReader) LoadLatest(ctx context.Context, n int) ([]CommandRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, command_id, command_type, caller, timestamp,
		       payload, state_hash, prev_hash
		FROM gauge_log.commands
		ORDER BY sequence DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("load latest commands: %w", err)
	}
	defer rows.Close()

	var out []CommandRow
	for rows.Next() {
		var c CommandRow
		if err := rows.Scan(
			&c.Sequence, &c.CommandID, &c.CommandType, &c.Caller, &c.Timestamp,
			&c.Payload, &c.StateHash, &c.PrevHash,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RecentCommandIDs returns the newest n command IDs, oldest first, for
// warming the dedup LRU.
func (r *CommandLogReader) RecentCommandIDs(ctx context.Context, n int) ([]uuid.UUID, error) {
	rows, err := r.LoadLatest(ctx, n)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[len(rows)-1-i] = row.CommandID
	}
	return ids, nil
}

// EventsFor returns the events emitted by the command at sequence.
func (r *CommandLogReader) EventsFor(ctx context.Context, sequence int64) ([]EventRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sequence, idx, command_id, event_type, actor, timestamp, payload
		FROM gauge_log.events
		WHERE sequence = $1
		ORDER BY idx ASC
	`, sequence)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var e EventRow
		if err := rows.Scan(
			&e.Sequence, &e.Index, &e.CommandID, &e.EventType,
			&e.Actor, &e.Timestamp, &e.Payload,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LatestSequence returns the highest persisted sequence, or -1 when empty.
func (r *CommandLogReader) LatestSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(sequence) FROM gauge_log.commands`).Scan(&seq)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if !seq.Valid {
		return -1, nil
	}
	return seq.Int64, nil
}
