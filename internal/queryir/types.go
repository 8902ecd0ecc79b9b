package queryir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeepies/leagues/internal/ir"
)

// CompletedField is the canonical name of the virtual completion field.
const CompletedField = "completed"

// IsCompletedField reports whether a user-typed field name addresses the
// virtual completion field rather than record data.
func IsCompletedField(name string) bool {
	switch strings.ToLower(name) {
	case "completed", "done":
		return true
	}
	return false
}

// Literal is the typed right-hand side of a Binary condition.
//
// This is a sealed interface - only String and Number implement it.
type Literal interface {
	literalNode() // Marker method - seals interface to this package

	// Value returns the literal as a record value for comparison.
	Value() ir.Value
}

// String is a textual literal: a quoted value with its quotes removed, or
// a bare value that is not a number.
type String string

func (String) literalNode() {}

// Value implements Literal.
func (s String) Value() ir.Value { return ir.String(s) }

// Number is a finite numeric literal.
type Number float64

func (Number) literalNode() {}

// Value implements Literal.
func (n Number) Value() ir.Value { return ir.Number(n) }

// FormatLiteral renders a literal the way a user would type it back.
func FormatLiteral(l Literal) string {
	switch lit := l.(type) {
	case String:
		return strconv.Quote(string(lit))
	case Number:
		return ir.FormatNumber(float64(lit))
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", l)
	}
}

// Operator is a binary comparison operator.
type Operator int

const (
	Eq Operator = iota
	Neq
	Gt
	Lt
	Gte
	Lte
)

// String returns the operator's canonical spelling.
func (op Operator) String() string {
	switch op {
	case Eq:
		return "="
	case Neq:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Gte:
		return ">="
	case Lte:
		return "<="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// IsOrdering reports whether the operator requires numeric operands.
func (op Operator) IsOrdering() bool {
	switch op {
	case Gt, Lt, Gte, Lte:
		return true
	}
	return false
}

// ParseOperator maps an operator token to an Operator.
// Both "=" and "==" map to Eq.
func ParseOperator(tok string) (Operator, bool) {
	switch tok {
	case "=", "==":
		return Eq, true
	case "!=":
		return Neq, true
	case ">":
		return Gt, true
	case "<":
		return Lt, true
	case ">=":
		return Gte, true
	case "<=":
		return Lte, true
	}
	return 0, false
}

// Condition is one conjunct of a query.
//
// This is a sealed interface - only types in this package implement it.
//
// Condition types:
//   - Flag: bare completed / done keyword, optionally negated
//   - Binary: field op literal
type Condition interface {
	conditionNode() // Marker method - seals interface to this package
	fmt.Stringer
}

// Flag tests the completion snapshot directly.
//
// Produced from "completed", "done", "!completed" and "!done". Field is
// always CompletedField.
type Flag struct {
	Field    string
	Expected bool
}

func (Flag) conditionNode() {}

func (f Flag) String() string {
	if f.Expected {
		return f.Field
	}
	return "!" + f.Field
}

// NewFlag builds the Flag condition for the completion field.
func NewFlag(expected bool) Flag {
	return Flag{Field: CompletedField, Expected: expected}
}

// Binary compares a resolved field against a literal.
//
// Field is kept as typed by the user; resolution (synonyms, case folding,
// dotted paths) happens at evaluation time.
type Binary struct {
	Field string
	Op    Operator
	Value Literal
}

func (Binary) conditionNode() {}

func (b Binary) String() string {
	return b.Field + " " + b.Op.String() + " " + FormatLiteral(b.Value)
}

// Format renders a condition list as a query body joined by "and".
func Format(conds []Condition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if c == nil {
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " and ")
}
