package query

import (
	"regexp"
	"strings"

	"github.com/jeepies/leagues/internal/queryir"
)

// conditionPattern matches field, operator and the rest of a clause.
// Operators are listed longest first so that "!=", ">=" and "<=" are never
// split into a shorter operator plus a value.
var conditionPattern = regexp.MustCompile(`(?s)^([A-Za-z0-9_.]+)\s*(==|!=|>=|<=|=|>|<)\s*(.*)$`)

// ParseCondition parses one clause. It returns false when the clause is
// neither a completion flag nor a field comparison.
func ParseCondition(clause string) (queryir.Condition, bool) {
	trimmed := strings.TrimSpace(clause)

	switch strings.ToLower(trimmed) {
	case "completed", "done":
		return queryir.NewFlag(true), true
	case "!completed", "!done":
		return queryir.NewFlag(false), true
	}

	// A clause with nothing after the operator is malformed; an empty
	// string has to be written as '' or "".
	m := conditionPattern.FindStringSubmatch(trimmed)
	if m == nil || m[3] == "" {
		return nil, false
	}

	op, ok := queryir.ParseOperator(m[2])
	if !ok {
		return nil, false
	}

	return queryir.Binary{
		Field: m[1],
		Op:    op,
		Value: ParseValue(m[3]),
	}, true
}
