package query

import (
	"strings"

	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/queryir"
)

// ParseValue parses the right-hand side of a clause into a literal.
//
// Text wrapped in one matching pair of quotes becomes a String with the
// quotes removed and nothing else unescaped, so '400' stays text. Otherwise
// text that parses as a finite number becomes a Number, and anything else
// is a String of the trimmed text.
func ParseValue(raw string) queryir.Literal {
	s := strings.TrimSpace(raw)

	if inner, ok := unquote(s); ok {
		return queryir.String(inner)
	}
	if f, ok := ir.ParseNumber(s); ok {
		return queryir.Number(f)
	}
	return queryir.String(s)
}

// unquote strips one pair of matching outer quotes when the inner text
// holds no unescaped quote of the same kind.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}

	inner := s[1 : len(s)-1]
	for i := 0; i < len(inner); i++ {
		if inner[i] == q && !escapedAt(s, i+1) {
			return "", false
		}
	}
	return inner, true
}

// escapedAt reports whether s[i] is preceded by a backslash.
func escapedAt(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}
