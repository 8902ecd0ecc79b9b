package cli

import (
	"context"
	"log/slog"

	"github.com/jeepies/leagues/internal/config"
	"github.com/jeepies/leagues/internal/dataset"
	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/store"
)

// session is the state one command works against: the loaded items, the
// open store and the completion snapshot read at startup.
type session struct {
	items       []ir.Item
	store       *store.Store
	completions ir.Completions
}

// openSession loads the dataset and opens the completion store.
//
// An unreadable dataset leaves the session with no items and an
// unreadable snapshot leaves it empty; both are logged, not returned.
// Failing to open the store is a command error.
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	cfg := opts.Config

	items, err := dataset.LoadItems(cfg.Dataset)
	if err != nil {
		slog.Warn("dataset unavailable, continuing with no tasks", "path", cfg.Dataset, "error", err)
		items = []ir.Item{}
	}

	if err := config.EnsureDir(cfg.DB); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
	}
	slog.Debug("opening database", "path", cfg.DB)
	st, err := store.Open(cfg.DB, opts.StoreOptions...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	completions, err := st.LoadCompletions(ctx)
	if err != nil {
		slog.Warn("completion state unavailable, treating every task as open", "error", err)
		completions = ir.Completions{}
	}

	return &session{items: items, store: st, completions: completions}, nil
}

// Close releases the store.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}

// labels maps item IDs to display labels. The first item wins when
// identical records share an ID.
func (s *session) labels() map[string]string {
	out := make(map[string]string, len(s.items))
	for _, item := range s.items {
		if _, ok := out[item.ID]; !ok {
			out[item.ID] = item.Label
		}
	}
	return out
}
