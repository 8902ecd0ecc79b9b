package query

import "strings"

// conjunction is the keyword that separates clauses.
const conjunction = "and"

// SplitClauses splits a query body on top-level "and" keywords.
//
// Quoted text ('...' or "...") is never split. A quote preceded by a
// backslash does not open or close quoting, and a quote of the other kind
// inside active quoting is ordinary text. Unterminated quoting runs to the
// end of input.
//
// The keyword matches case-insensitively when the character before it is
// absent or a non-word character. The character after it is not checked,
// so "brand" never splits but a clause starting with "andy" does.
//
// Clauses are trimmed and empty ones dropped; the result is never nil.
func SplitClauses(body string) []string {
	clauses := []string{}
	var buf strings.Builder
	var quote byte // 0 when outside quotes

	flush := func() {
		if c := strings.TrimSpace(buf.String()); c != "" {
			clauses = append(clauses, c)
		}
		buf.Reset()
	}

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if (ch == '"' || ch == '\'') && (i == 0 || body[i-1] != '\\') {
			switch quote {
			case 0:
				quote = ch
			case ch:
				quote = 0
			}
			buf.WriteByte(ch)
			continue
		}

		if quote == 0 && hasConjunctionAt(body, i) {
			flush()
			i += len(conjunction) - 1
			continue
		}

		buf.WriteByte(ch)
	}
	flush()

	return clauses
}

// hasConjunctionAt reports whether the keyword starts at body[i] with a
// word boundary before it.
func hasConjunctionAt(body string, i int) bool {
	if len(body)-i < len(conjunction) {
		return false
	}
	if !strings.EqualFold(body[i:i+len(conjunction)], conjunction) {
		return false
	}
	return i == 0 || !isWordByte(body[i-1])
}

// isWordByte matches the ASCII word class [A-Za-z0-9_]. Bytes of
// multi-byte UTF-8 sequences are non-word.
func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
