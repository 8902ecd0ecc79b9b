package dataset

import (
	"strings"

	"github.com/jeepies/leagues/internal/ir"
)

// rowKeys are the wrapper members that may hold the record list, in
// preference order.
var rowKeys = []string{"rows", "tasks", "items", "records", "data"}

// Rows extracts the record list from a dataset document.
//
// An array is the list itself. An object yields its first array-valued
// member named like one of rowKeys, ignoring case. Anything else yields an
// empty list. The result is never nil.
func Rows(doc ir.Value) []ir.Value {
	switch v := doc.(type) {
	case ir.Array:
		return []ir.Value(v)
	case *ir.Object:
		for _, key := range rowKeys {
			for _, m := range v.Members() {
				if !strings.EqualFold(m.Key, key) {
					continue
				}
				if arr, ok := m.Value.(ir.Array); ok {
					return []ir.Value(arr)
				}
			}
		}
	}
	return []ir.Value{}
}
