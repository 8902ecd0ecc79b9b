package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeepies/leagues/internal/ir"
)

// LoadCompletions returns the current completion snapshot.
// Returns an empty (non-nil) snapshot when nothing is stored.
func (s *Store) LoadCompletions(ctx context.Context) (ir.Completions, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, completed
		FROM completions
		ORDER BY item_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	snapshot := ir.Completions{}
	for rows.Next() {
		var (
			id        string
			completed bool
		)
		if err := rows.Scan(&id, &completed); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		snapshot[id] = completed
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}

	return snapshot, nil
}

// IsCompleted reads the stored flag for one item. Absent reads as false.
func (s *Store) IsCompleted(ctx context.Context, itemID string) (bool, error) {
	var completed bool
	err := s.db.QueryRowContext(ctx, `
		SELECT completed FROM completions WHERE item_id = ?
	`, itemID).Scan(&completed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read completion %s: %w", itemID, err)
	}
	return completed, nil
}

// SetCompleted stores an explicit state for an item and records it in the
// toggle history. Setting the current state again still appends an event.
func (s *Store) SetCompleted(ctx context.Context, itemID string, completed bool) (ToggleEvent, error) {
	var evt ToggleEvent
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		evt, err = s.writeState(ctx, tx, itemID, completed)
		return err
	})
	if err != nil {
		return ToggleEvent{}, fmt.Errorf("set completed %s: %w", itemID, err)
	}
	return evt, nil
}

// Toggle flips the stored state for an item, treating absent as false,
// and returns the event describing the new state.
func (s *Store) Toggle(ctx context.Context, itemID string) (ToggleEvent, error) {
	var evt ToggleEvent
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var current bool
		err := tx.QueryRowContext(ctx, `
			SELECT completed FROM completions WHERE item_id = ?
		`, itemID).Scan(&current)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read current state: %w", err)
		}

		evt, err = s.writeState(ctx, tx, itemID, !current)
		return err
	})
	if err != nil {
		return ToggleEvent{}, fmt.Errorf("toggle %s: %w", itemID, err)
	}
	return evt, nil
}

// writeState upserts the completion row and appends the matching event
// under the next seq.
func (s *Store) writeState(ctx context.Context, tx *sql.Tx, itemID string, completed bool) (ToggleEvent, error) {
	seq, err := nextSeq(ctx, tx)
	if err != nil {
		return ToggleEvent{}, err
	}

	evt := ToggleEvent{
		ID:        s.idGen.Generate(),
		ItemID:    itemID,
		Completed: completed,
		Seq:       seq,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO completions (item_id, completed, seq)
		VALUES (?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			completed = excluded.completed,
			seq = excluded.seq
	`, itemID, completed, seq)
	if err != nil {
		return ToggleEvent{}, fmt.Errorf("upsert completion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO toggle_events (id, item_id, completed, seq)
		VALUES (?, ?, ?, ?)
	`, evt.ID, evt.ItemID, evt.Completed, evt.Seq)
	if err != nil {
		return ToggleEvent{}, fmt.Errorf("append toggle event: %w", err)
	}

	return evt, nil
}

// inTx runs fn in a transaction, committing on success.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
