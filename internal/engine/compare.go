package engine

import (
	"math"
	"strings"

	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/queryir"
)

// Compare applies op between a resolved value and a literal.
//
// Eq and Neq compare numerically when both sides coerce to numbers and
// fall back to case-insensitive text otherwise. Ordering operators compare
// numerically and are false when either side does not coerce.
//
// actual may be nil (absent). Compare never panics.
func Compare(actual ir.Value, op queryir.Operator, lit queryir.Literal) bool {
	var expected ir.Value
	if lit != nil {
		expected = lit.Value()
	}

	a, aNum := toNumber(actual)
	b, bNum := toNumber(expected)

	switch op {
	case queryir.Eq, queryir.Neq:
		var equal bool
		if aNum && bNum {
			equal = a == b
		} else {
			equal = strings.EqualFold(stringify(actual), stringify(expected))
		}
		return equal == (op == queryir.Eq)
	}

	if !aNum || !bNum {
		return false
	}

	switch op {
	case queryir.Gt:
		return a > b
	case queryir.Lt:
		return a < b
	case queryir.Gte:
		return a >= b
	case queryir.Lte:
		return a <= b
	default:
		return false
	}
}

// toNumber coerces numbers and numeric text to a finite float64.
// Booleans, null, absent and composite values never coerce.
func toNumber(v ir.Value) (float64, bool) {
	switch val := v.(type) {
	case ir.Number:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case ir.String:
		return ir.ParseNumber(string(val))
	}
	return 0, false
}

// stringify renders a value for text comparison. Absent and null are empty.
func stringify(v ir.Value) string {
	switch val := v.(type) {
	case nil, ir.Null:
		return ""
	case ir.String:
		return string(val)
	case ir.Number:
		return ir.FormatNumber(float64(val))
	case ir.Bool:
		if val {
			return "true"
		}
		return "false"
	case ir.Array:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = stringify(elem)
		}
		return strings.Join(parts, ",")
	case *ir.Object:
		data, err := ir.MarshalCanonical(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
	return ""
}
