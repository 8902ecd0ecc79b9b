package cli

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/collate"

	"github.com/jeepies/leagues/internal/ir"
)

// Group is one heading in query output.
type Group struct {
	Label string     `json:"label"`
	Items []ItemView `json:"items"`
}

// ItemView is an item as shown to the user.
type ItemView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// groupItems buckets items by group label. Headings are ordered for the
// locale; items keep their incoming order inside a heading.
func groupItems(items []ir.Item, state ir.Completions, locale string) ([]Group, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	groups := []Group{}
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Group]
		if !ok {
			i = len(groups)
			index[item.Group] = i
			groups = append(groups, Group{Label: item.Group, Items: []ItemView{}})
		}
		groups[i].Items = append(groups[i].Items, ItemView{
			ID:        item.ID,
			Label:     item.Label,
			Completed: state.IsCompleted(item.ID),
		})
	}

	col := collate.New(tag)
	sort.SliceStable(groups, func(i, j int) bool {
		return col.CompareString(groups[i].Label, groups[j].Label) < 0
	})
	return groups, nil
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// writeItemLine prints one checklist row.
func writeItemLine(w io.Writer, indent string, v ItemView) {
	fmt.Fprintf(w, "%s%s %s  %s\n", indent, checkbox(v.Completed), v.Label, v.ID)
}
