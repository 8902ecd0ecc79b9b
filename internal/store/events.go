package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ToggleEvent records one completion state change.
type ToggleEvent struct {
	ID        string `json:"id"`        // UUIDv7 unless a test generator is set
	ItemID    string `json:"item_id"`   // ir.ItemID of the affected item
	Completed bool   `json:"completed"` // State after the change
	Seq       int64  `json:"seq"`       // Logical clock, strictly increasing
}

// nextSeq returns the next logical clock value inside tx.
func nextSeq(ctx context.Context, tx *sql.Tx) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) + 1 FROM toggle_events
	`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}

// History returns toggle events for one item, or for every item when
// itemID is empty. Ordered by seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if no events exist.
func (s *Store) History(ctx context.Context, itemID string) ([]ToggleEvent, error) {
	query := `
		SELECT id, item_id, completed, seq
		FROM toggle_events
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	args := []any{}
	if itemID != "" {
		query = `
			SELECT id, item_id, completed, seq
			FROM toggle_events
			WHERE item_id = ?
			ORDER BY seq ASC, id COLLATE BINARY ASC
		`
		args = append(args, itemID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query toggle events: %w", err)
	}
	defer rows.Close()

	events := []ToggleEvent{}
	for rows.Next() {
		var evt ToggleEvent
		if err := rows.Scan(&evt.ID, &evt.ItemID, &evt.Completed, &evt.Seq); err != nil {
			return nil, fmt.Errorf("scan toggle event: %w", err)
		}
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate toggle events: %w", err)
	}

	return events, nil
}
