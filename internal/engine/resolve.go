package engine

import (
	"strconv"
	"strings"

	"github.com/jeepies/leagues/internal/ir"
)

// synonymGroups lists accepted spellings per canonical field, canonical
// name first. Order within a group is the lookup order.
var synonymGroups = [][]string{
	{"points", "pts", "ponts", "point"},
	{"area", "region", "location"},
	{"level", "lvl", "tier"},
	{"completed", "done"},
}

// synonymIndex maps every spelling to its group.
var synonymIndex = func() map[string][]string {
	idx := make(map[string][]string)
	for _, group := range synonymGroups {
		for _, name := range group {
			idx[name] = group
		}
	}
	return idx
}()

// areaField is the member that carries an item's group.
const areaField = "area"

// Candidates returns the member names a user-typed field may refer to, in
// lookup order. A name outside the synonym table is its own sole candidate.
func Candidates(field string) []string {
	lower := strings.ToLower(field)
	if group, ok := synonymIndex[lower]; ok {
		out := make([]string, len(group))
		copy(out, group)
		return out
	}
	return []string{lower}
}

// Resolve looks up a user-typed field on a record.
//
// Lookup order:
//  1. For area spellings, the record's area string or area.name string
//  2. The first member matching any candidate case-insensitively,
//     candidates in synonym order, members in record order
//  3. For dotted names, a case-insensitive walk through nested values
//
// The second return value is false when nothing resolves. A present null
// resolves to ir.Null{} with true.
func Resolve(record ir.Value, field string) (ir.Value, bool) {
	obj, ok := record.(*ir.Object)
	if !ok {
		return nil, false
	}

	candidates := Candidates(field)

	if contains(candidates, areaField) {
		if name, ok := AreaName(obj); ok {
			return ir.String(name), true
		}
	}

	for _, cand := range candidates {
		if v, ok := obj.GetFold(cand); ok {
			return v, true
		}
	}

	lower := strings.ToLower(field)
	if strings.Contains(lower, ".") {
		return walkPath(obj, strings.Split(lower, "."))
	}

	return nil, false
}

// AreaName returns the record's area when it is a string, or the string
// name member of an area object.
func AreaName(record ir.Value) (string, bool) {
	obj, ok := record.(*ir.Object)
	if !ok {
		return "", false
	}

	area, ok := obj.Get(areaField)
	if !ok {
		return "", false
	}

	switch a := area.(type) {
	case ir.String:
		return string(a), true
	case *ir.Object:
		if name, ok := a.Get("name"); ok {
			if s, ok := name.(ir.String); ok {
				return string(s), true
			}
		}
	}
	return "", false
}

// walkPath follows dotted segments through objects and, for decimal
// segments, array indexes. Any miss makes the whole path absent.
func walkPath(root ir.Value, segments []string) (ir.Value, bool) {
	cur := root
	for _, seg := range segments {
		switch node := cur.(type) {
		case *ir.Object:
			next, ok := node.GetFold(seg)
			if !ok {
				return nil, false
			}
			cur = next
		case ir.Array:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
