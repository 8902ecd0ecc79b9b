package queryir

import (
	"fmt"
	"strings"

	"github.com/jeepies/leagues/internal/ir"
)

// ValidationResult contains the lint findings for a condition list.
//
// Lint never changes evaluation: a query with warnings still runs and
// yields whatever the evaluator computes (often nothing). Warnings exist so
// the explain command can tell a user why a query matches no rows.
type ValidationResult struct {
	// IsClean indicates that no suspicious condition was found.
	IsClean bool

	// Warnings lists the findings in condition order.
	Warnings []string
}

// Validate lints a parsed condition list.
//
// Findings:
//  1. Ordering operator against a non-numeric literal (always false)
//  2. Completion field compared to something other than true/false
//  3. Contradictory completion conditions (always false)
//  4. Duplicate conditions
//
// Validate is a pure function with no side effects.
func Validate(conds []Condition) ValidationResult {
	v := &validator{
		warnings: []string{},
		seen:     make(map[string]bool),
	}
	for i, c := range conds {
		v.validateCondition(i, c)
	}
	v.checkCompletion()

	return ValidationResult{
		IsClean:  len(v.warnings) == 0,
		Warnings: v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
	seen     map[string]bool

	// completion expectations observed so far, by condition index
	wantDone    []int
	wantNotDone []int
}

// addWarning appends a warning message.
func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validateCondition(i int, c Condition) {
	if c == nil {
		v.addWarning("condition %d: nil condition", i+1)
		return
	}

	key := c.String()
	if v.seen[key] {
		v.addWarning("condition %d: duplicate of an earlier condition (%s)", i+1, key)
	}
	v.seen[key] = true

	switch cond := c.(type) {
	case Flag:
		v.validateFlag(i, cond)
	case *Flag:
		v.validateFlag(i, *cond)
	case Binary:
		v.validateBinary(i, cond)
	case *Binary:
		v.validateBinary(i, *cond)
	default:
		v.addWarning("condition %d: unknown condition type %T", i+1, c)
	}
}

func (v *validator) validateFlag(i int, f Flag) {
	v.recordCompletion(i, f.Expected)
}

func (v *validator) validateBinary(i int, b Binary) {
	if b.Value == nil {
		v.addWarning("condition %d: field '%s' has no value", i+1, b.Field)
		return
	}

	if IsCompletedField(b.Field) {
		v.validateCompletionBinary(i, b)
		return
	}

	if b.Op.IsOrdering() {
		if s, ok := b.Value.(String); ok && !isNumericText(string(s)) {
			v.addWarning("condition %d: '%s %s %s' orders against a non-numeric value and never matches",
				i+1, b.Field, b.Op, FormatLiteral(b.Value))
		}
	}
}

// validateCompletionBinary handles "completed op value". The snapshot
// boolean stringifies to true/false, so only those literals can match.
func (v *validator) validateCompletionBinary(i int, b Binary) {
	if b.Op.IsOrdering() {
		v.addWarning("condition %d: '%s' is a flag and cannot be ordered with %s", i+1, b.Field, b.Op)
		return
	}

	s, ok := b.Value.(String)
	if !ok {
		v.addWarning("condition %d: '%s' compared to %s; use true or false", i+1, b.Field, FormatLiteral(b.Value))
		return
	}

	var want bool
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "true":
		want = true
	case "false":
		want = false
	default:
		v.addWarning("condition %d: '%s' compared to %s; use true or false", i+1, b.Field, FormatLiteral(b.Value))
		return
	}

	if b.Op == Neq {
		want = !want
	}
	v.recordCompletion(i, want)
}

func (v *validator) recordCompletion(i int, want bool) {
	if want {
		v.wantDone = append(v.wantDone, i)
	} else {
		v.wantNotDone = append(v.wantNotDone, i)
	}
}

// checkCompletion reports a query that requires an item to be both
// completed and not completed.
func (v *validator) checkCompletion() {
	if len(v.wantDone) == 0 || len(v.wantNotDone) == 0 {
		return
	}
	v.addWarning("conditions %d and %d: completion state is required to be both true and false",
		v.wantDone[0]+1, v.wantNotDone[0]+1)
}

func isNumericText(s string) bool {
	_, ok := ir.ParseNumber(s)
	return ok
}
