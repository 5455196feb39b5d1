package persistence

import (
	"GaugeLedger/internal/core"
	"GaugeLedger/internal/observability"
	"GaugeLedger/internal/sim"
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotFormatVersion identifies the JSON layout of SnapshotData.
const SnapshotFormatVersion = 1

// SnapshotData is the audit image of all state after Applied commands.
// Recovery replays the command log; snapshots let operators inspect and
// diff state without replaying, and are verified against the log.
type SnapshotData struct {
	Applied   int64            `json:"applied"`
	StateHash string           `json:"state_hash"` // hex chain tip
	Gauge     core.StateExport `json:"gauge"`
	World     *sim.WorldExport `json:"world,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// TakeSnapshot captures a consistent image from the processor.
func TakeSnapshot(p *core.Processor, now time.Time) (*SnapshotData, error) {
	var snap *SnapshotData
	err := p.Capture(func(g *core.Gauge, sandbox core.Sandbox, v core.View) error {
		snap = &SnapshotData{
			Applied:   v.Applied,
			StateHash: hex.EncodeToString(v.Tip[:]),
			Gauge:     g.Export(),
			CreatedAt: now.UTC(),
		}
		if w, ok := sandbox.(*sim.World); ok {
			export := w.Export()
			snap.World = &export
		}
		return nil
	})
	return snap, err
}

// GaugeDigest restores the gauge section into a detached gauge and returns
// its state digest, which equals the digest of the gauge it was taken from.
func (s *SnapshotData) GaugeDigest() ([]byte, error) {
	g := core.NewGauge()
	if err := g.Restore(s.Gauge); err != nil {
		return nil, fmt.Errorf("restore snapshot gauge: %w", err)
	}
	return g.StateDigest(), nil
}

// SnapshotManager stores snapshots in gauge_log.snapshots.
type SnapshotManager struct {
	db      *sql.DB
	metrics *observability.Metrics
}

func NewSnapshotManager(db *sql.DB, metrics *observability.Metrics) *SnapshotManager {
	return &SnapshotManager{db: db, metrics: metrics}
}

// SaveSnapshot persists a snapshot. A second snapshot at the same point
// replaces the first.
func (sm *SnapshotManager) SaveSnapshot(ctx context.Context, snap *SnapshotData) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	hash, err := hex.DecodeString(snap.StateHash)
	if err != nil {
		return fmt.Errorf("decode state hash: %w", err)
	}

	_, err = sm.db.ExecContext(ctx, `
		INSERT INTO gauge_log.snapshots
			(snapshot_id, applied, data, state_hash, format_version, size_bytes, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (applied) DO UPDATE SET data = $3, state_hash = $4, size_bytes = $6, verified = FALSE
	`, uuid.New(), snap.Applied, data, hash, SnapshotFormatVersion, len(data), snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if sm.metrics != nil {
		sm.metrics.SnapshotTaken.Inc()
		sm.metrics.SnapshotSizeBytes.Set(float64(len(data)))
		sm.metrics.SnapshotLastSeq.Set(float64(snap.Applied))
	}
	return nil
}

// LoadLatestSnapshot returns the newest verified snapshot, or nil if none.
func (sm *SnapshotManager) LoadLatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	var data []byte
	err := sm.db.QueryRowContext(ctx, `
		SELECT data FROM gauge_log.snapshots
		WHERE verified = TRUE
		ORDER BY applied DESC
		LIMIT 1
	`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// VerifyAgainstLog marks every unverified snapshot whose hash equals the
// logged state hash of its last command. Returns how many were verified.
func (sm *SnapshotManager) VerifyAgainstLog(ctx context.Context) (int64, error) {
	res, err := sm.db.ExecContext(ctx, `
		UPDATE gauge_log.snapshots s
		SET verified = TRUE
		FROM gauge_log.commands c
		WHERE s.verified = FALSE
		  AND c.sequence = s.applied - 1
		  AND c.state_hash = s.state_hash
	`)
	if err != nil {
		return 0, fmt.Errorf("verify snapshots: %w", err)
	}
	return res.RowsAffected()
}
