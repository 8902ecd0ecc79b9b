package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/jeepies/leagues/internal/dataset"
	"github.com/jeepies/leagues/internal/engine"
	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/query"
	"github.com/jeepies/leagues/internal/queryir"
	"github.com/jeepies/leagues/internal/store"
	"github.com/jeepies/leagues/internal/testutil"
)

// Harness runs one scenario against its own store.
type Harness struct {
	store  *store.Store
	items  []ir.Item
	logger *slog.Logger

	// expected mirrors the completion state the toggle steps should have
	// produced. Starts nil, like an empty store.
	expected ir.Completions
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Load the dataset and normalize it into items
// 2. Open an in-memory store with sequential event IDs
// 3. Run the steps, checking query expectations as they go
// 4. Evaluate assertions against the final store state
//
// Failed expectations are reported in the result; the returned error is
// for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	items, err := loadItems(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	st, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewSequentialIDs(scenario.EventPrefix)))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		items:  items,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	ctx := context.Background()
	result := NewResult()

	for i, step := range scenario.Steps {
		if err := h.runStep(ctx, i, step, result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	if err := h.evaluateAssertions(ctx, scenario.Assertions, result); err != nil {
		return nil, fmt.Errorf("failed to evaluate assertions: %w", err)
	}

	return result, nil
}

func loadItems(scenario *Scenario) ([]ir.Item, error) {
	if scenario.DatasetFile != "" {
		return dataset.LoadItems(scenario.DatasetFile)
	}

	doc, err := dataset.FromYAML(&scenario.Dataset)
	if err != nil {
		return nil, err
	}
	return dataset.Normalize(dataset.Rows(doc))
}

func (h *Harness) runStep(ctx context.Context, index int, step Step, result *Result) error {
	if step.Toggle != "" {
		return h.toggle(ctx, index, step, result)
	}
	return h.query(ctx, index, step, result)
}

func (h *Harness) toggle(ctx context.Context, index int, step Step, result *Result) error {
	item, ok := h.find(step.Toggle)
	if !ok {
		result.AddError(fmt.Sprintf("steps[%d]: no task named %q", index, step.Toggle))
		return nil
	}

	var (
		evt store.ToggleEvent
		err error
	)
	if step.Completed != nil {
		evt, err = h.store.SetCompleted(ctx, item.ID, *step.Completed)
	} else {
		evt, err = h.store.Toggle(ctx, item.ID)
	}
	if err != nil {
		return err
	}

	want := h.expect(item.ID, step.Completed)
	if evt.Completed != want {
		result.AddError(fmt.Sprintf("steps[%d]: store recorded %s as %t, expected %t",
			index, step.Toggle, evt.Completed, want))
	}

	result.Trace = append(result.Trace, TraceEvent{
		Step:      index,
		Type:      EventToggle,
		ItemID:    item.ID,
		Label:     item.Label,
		Completed: evt.Completed,
		EventID:   evt.ID,
		Seq:       evt.Seq,
	})

	h.logger.Info("toggle step completed",
		"step", index,
		"item", item.ID,
		"completed", evt.Completed,
		"seq", evt.Seq,
	)
	return nil
}

// expect applies a toggle step to the mirrored state and returns the state
// the store should now hold for id.
func (h *Harness) expect(id string, completed *bool) bool {
	if completed == nil {
		return h.expected.Toggle(id)
	}
	if h.expected.IsCompleted(id) != *completed {
		h.expected.Toggle(id)
	}
	return *completed
}

func (h *Harness) query(ctx context.Context, index int, step Step, result *Result) error {
	// Read state the way the CLI does: one snapshot per query.
	completions, err := h.store.LoadCompletions(ctx)
	if err != nil {
		return err
	}

	text := *step.Query
	conds := query.Parse(text)
	matched := engine.Filter(h.items, conds, completions)
	lint := queryir.Validate(conds)

	event := TraceEvent{
		Step:       index,
		Type:       EventQuery,
		Query:      text,
		Conditions: make([]string, 0, len(conds)),
		Matched:    make([]string, 0, len(matched)),
		Warnings:   lint.Warnings,
	}
	for _, c := range conds {
		event.Conditions = append(event.Conditions, c.String())
	}
	for _, item := range matched {
		event.Matched = append(event.Matched, item.Label)
	}
	result.Trace = append(result.Trace, event)

	if step.Expect != nil && !slices.Equal(step.Expect, event.Matched) {
		result.AddError(fmt.Sprintf("steps[%d]: query %q: expected %v, got %v",
			index, text, step.Expect, event.Matched))
	}
	if step.Warnings != nil && *step.Warnings != len(lint.Warnings) {
		result.AddError(fmt.Sprintf("steps[%d]: query %q: expected %d warnings, got %d %v",
			index, text, *step.Warnings, len(lint.Warnings), lint.Warnings))
	}

	h.logger.Info("query step completed",
		"step", index,
		"query", text,
		"matched", len(matched),
	)
	return nil
}

// find resolves a task reference: an item ID first, then the first item
// with that label.
func (h *Harness) find(ref string) (ir.Item, bool) {
	for _, item := range h.items {
		if item.ID == ref {
			return item, true
		}
	}
	for _, item := range h.items {
		if item.Label == ref {
			return item, true
		}
	}
	return ir.Item{}, false
}
