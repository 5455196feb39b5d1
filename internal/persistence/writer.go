package persistence

import (
	"GaugeLedger/internal/core"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CommandRow is one row of gauge_log.commands.
type CommandRow struct {
	Sequence    int64
	CommandID   uuid.UUID
	CommandType string
	Caller      string
	Timestamp   int64
	Payload     []byte // wire-encoded command
	StateHash   []byte
	PrevHash    []byte
}

// EventRow is one row of gauge_log.events.
type EventRow struct {
	Sequence  int64
	Index     int
	CommandID uuid.UUID
	EventType string
	Actor     string
	Timestamp int64
	Payload   []byte
}

// RowsFrom converts one processor output into its log rows.
func RowsFrom(out core.CoreOutput) (CommandRow, []EventRow, error) {
	cmd := CommandRow{
		Sequence:    out.Sequence,
		CommandID:   out.Command.CommandID(),
		CommandType: out.Command.CommandType().String(),
		Caller:      out.Command.Sender().Hex(),
		Timestamp:   int64(out.Command.Time()),
		Payload:     out.Payload,
		StateHash:   out.StateHash[:],
		PrevHash:    out.PrevHash[:],
	}

	events := make([]EventRow, 0, len(out.Events))
	for _, env := range out.Events {
		evt, err := env.Decode()
		if err != nil {
			return CommandRow{}, nil, fmt.Errorf("decode event %d/%d: %w", env.Sequence, env.Index, err)
		}
		events = append(events, EventRow{
			Sequence:  env.Sequence,
			Index:     env.Index,
			CommandID: env.CommandID,
			EventType: env.EventType.String(),
			Actor:     evt.Actor(),
			Timestamp: int64(env.Timestamp),
			Payload:   env.Payload,
		})
	}
	return cmd, events, nil
}

// CommandLogWriter writes the command log and its events using multi-row
// INSERTs inside one transaction per batch.
type CommandLogWriter struct {
	db *sql.DB
}

func NewCommandLogWriter(db *sql.DB) *CommandLogWriter {
	return &CommandLogWriter{db: db}
}

// WriteBatch persists outputs atomically. Rows already present are skipped,
// so retrying a partially acknowledged batch is safe.
func (w *CommandLogWriter) WriteBatch(ctx context.Context, outputs []core.CoreOutput) error {
	commands := make([]CommandRow, 0, len(outputs))
	var events []EventRow
	for _, out := range outputs {
		cmd, evts, err := RowsFrom(out)
		if err != nil {
			return err
		}
		commands = append(commands, cmd)
		events = append(events, evts...)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := WriteCommandBatch(ctx, tx, commands); err != nil {
		return fmt.Errorf("write commands: %w", err)
	}
	if err := WriteEventBatch(ctx, tx, events); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// WriteCommandBatch inserts command rows.
func WriteCommandBatch(ctx context.Context, ex execer, rows []CommandRow) error {
	if len(rows) == 0 {
		return nil
	}

	const cols = 8
	query := `INSERT INTO gauge_log.commands
		(sequence, command_id, command_type, caller, timestamp, payload, state_hash, prev_hash)
		VALUES `

	values := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*cols)
	for i, r := range rows {
		values = append(values, placeholders(i*cols, cols))
		args = append(args,
			r.Sequence, r.CommandID, r.CommandType, r.Caller,
			r.Timestamp, r.Payload, r.StateHash, r.PrevHash,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING"

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// WriteEventBatch inserts event rows.
func WriteEventBatch(ctx context.Context, ex execer, rows []EventRow) error {
	if len(rows) == 0 {
		return nil
	}

	const cols = 7
	query := `INSERT INTO gauge_log.events
		(sequence, idx, command_id, event_type, actor, timestamp, payload)
		VALUES `

	values := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*cols)
	for i, r := range rows {
		values = append(values, placeholders(i*cols, cols))
		args = append(args,
			r.Sequence, r.Index, r.CommandID, r.EventType,
			r.Actor, r.Timestamp, r.Payload,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence, idx) DO NOTHING"

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// placeholders renders "($base+1, ..., $base+n)".
func placeholders(base, n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", base+i)
	}
	b.WriteByte(')')
	return b.String()
}
