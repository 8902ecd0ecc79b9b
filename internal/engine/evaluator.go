package engine

import (
	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/queryir"
)

// CompletionState answers whether an item is completed.
// ir.Completions implements it; absent IDs must read as false.
type CompletionState interface {
	IsCompleted(id string) bool
}

// Evaluator checks items against a conjunction of conditions.
//
// An Evaluator holds no mutable state of its own and is safe for
// concurrent use as long as the CompletionState is not written meanwhile.
type Evaluator struct {
	conds []queryir.Condition
	state CompletionState
}

// NewEvaluator creates an Evaluator. A nil state reads every item as not
// completed.
func NewEvaluator(conds []queryir.Condition, state CompletionState) *Evaluator {
	if state == nil {
		state = ir.Completions(nil)
	}
	return &Evaluator{conds: conds, state: state}
}

// Matches reports whether every condition holds for item.
func (e *Evaluator) Matches(item ir.Item) bool {
	for _, cond := range e.conds {
		if !e.holds(cond, item) {
			return false
		}
	}
	return true
}

// Filter returns the matching items in input order. The result is never
// nil and never aliases items.
func (e *Evaluator) Filter(items []ir.Item) []ir.Item {
	out := make([]ir.Item, 0, len(items))
	for _, item := range items {
		if e.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (e *Evaluator) holds(cond queryir.Condition, item ir.Item) bool {
	switch c := cond.(type) {
	case queryir.Flag:
		return e.state.IsCompleted(item.ID) == c.Expected
	case *queryir.Flag:
		return c != nil && e.state.IsCompleted(item.ID) == c.Expected
	case queryir.Binary:
		return e.holdsBinary(c, item)
	case *queryir.Binary:
		return c != nil && e.holdsBinary(*c, item)
	default:
		return false
	}
}

func (e *Evaluator) holdsBinary(b queryir.Binary, item ir.Item) bool {
	var actual ir.Value
	if queryir.IsCompletedField(b.Field) {
		actual = ir.Bool(e.state.IsCompleted(item.ID))
	} else {
		actual, _ = Resolve(item.Record, b.Field)
	}
	return Compare(actual, b.Op, b.Value)
}

// Filter is a convenience for NewEvaluator(conds, state).Filter(items).
func Filter(items []ir.Item, conds []queryir.Condition, state CompletionState) []ir.Item {
	return NewEvaluator(conds, state).Filter(items)
}
