package query

import (
	"regexp"

	"github.com/jeepies/leagues/internal/queryir"
)

// prefixPattern matches an optional "select * where" or "where" lead-in.
// The keyword must be followed by whitespace or the end of the text, so a
// field named "whereabouts" is left alone.
var prefixPattern = regexp.MustCompile(`(?i)^\s*(?:select\s*\*\s*where|where)(?:\s+|$)`)

// StripPrefix removes the optional lead-in and returns the query body.
func StripPrefix(text string) string {
	if loc := prefixPattern.FindStringIndex(text); loc != nil {
		return text[loc[1]:]
	}
	return text
}

// Parse turns query text into an ordered condition list.
//
// Empty or blank text yields an empty list, which matches every item.
// Clauses that do not parse are dropped. The result is never nil.
func Parse(text string) []queryir.Condition {
	conds := []queryir.Condition{}
	for _, clause := range SplitClauses(StripPrefix(text)) {
		if cond, ok := ParseCondition(clause); ok {
			conds = append(conds, cond)
		}
	}
	return conds
}
