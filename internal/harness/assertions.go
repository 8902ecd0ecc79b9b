package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeepies/leagues/internal/ir"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for i, event := range e.Trace {
		switch event.Type {
		case EventToggle:
			fmt.Fprintf(&buf, "  [%d] toggle %s -> %t\n", i+1, event.Label, event.Completed)
		case EventQuery:
			fmt.Fprintf(&buf, "  [%d] query %q -> %v\n", i+1, event.Query, event.Matched)
		}
	}

	return buf.String()
}

// evaluateAssertions checks every assertion and records failures on the
// result. The returned error is for store failures only.
func (h *Harness) evaluateAssertions(ctx context.Context, assertions []Assertion, result *Result) error {
	if len(assertions) == 0 {
		return nil
	}

	completions, err := h.store.LoadCompletions(ctx)
	if err != nil {
		return err
	}

	for _, a := range assertions {
		var failure error
		switch a.Type {
		case AssertCompleted:
			failure = h.assertState(completions, a, true, result.Trace)
		case AssertNotCompleted:
			failure = h.assertState(completions, a, false, result.Trace)
		case AssertHistoryCount:
			events, err := h.store.History(ctx, "")
			if err != nil {
				return err
			}
			if len(events) != a.Count {
				failure = &AssertionError{
					Type:     AssertHistoryCount,
					Expected: fmt.Sprintf("%d toggle events", a.Count),
					Actual:   fmt.Sprintf("%d toggle events", len(events)),
					Trace:    result.Trace,
				}
			}
		default:
			failure = fmt.Errorf("unknown assertion type: %s", a.Type)
		}

		if failure != nil {
			result.AddError(failure.Error())
		}
	}
	return nil
}

// assertState checks that each named task has the wanted completion state.
func (h *Harness) assertState(completions ir.Completions, a Assertion, want bool, trace []TraceEvent) error {
	var wrong []string
	for _, ref := range a.Items {
		item, ok := h.find(ref)
		if !ok {
			wrong = append(wrong, fmt.Sprintf("%s (no such task)", ref))
			continue
		}
		if completions.IsCompleted(item.ID) != want {
			wrong = append(wrong, ref)
		}
	}

	if len(wrong) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%v to be %s", a.Items, stateWord(want)),
		Actual:   fmt.Sprintf("not %s: %s", stateWord(want), strings.Join(wrong, ", ")),
		Trace:    trace,
	}
}

func stateWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "open"
}
