package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotRepo implements SnapshotRepo over the snapshots table.
type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (sequence, timestamp, data) VALUES (?, ?, ?)`,
		snap.Sequence, ts.Unix(), string(data))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, timestamp, data FROM snapshots
		 ORDER BY timestamp DESC, id DESC LIMIT 1`)

	var (
		snap    Snapshot
		ts      int64
		rawData string
	)
	if err := row.Scan(&snap.ID, &snap.Sequence, &ts, &rawData); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap.Timestamp = time.Unix(ts, 0).UTC()
	if err := json.Unmarshal([]byte(rawData), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp of the Nth most recent snapshot; everything at
	// or before it goes.
	var threshold int64
	err := r.db.QueryRowContext(ctx,
		`SELECT timestamp FROM snapshots ORDER BY timestamp DESC, id DESC LIMIT 1 OFFSET ?`,
		keep).Scan(&threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil // fewer than keep snapshots exist
		}
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE timestamp <= ?`, threshold); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
