package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jeepies/leagues/internal/engine"
	"github.com/jeepies/leagues/internal/ir"
)

const (
	// DefaultGroup labels records without a usable area.
	DefaultGroup = "General"

	// UntitledLabel labels records without a usable name.
	UntitledLabel = "(untitled)"
)

// labelFields are tried in order for an item's display label.
var labelFields = []string{"task", "name", "title", "description"}

// Normalize derives one Item per record, in record order.
func Normalize(records []ir.Value) ([]ir.Item, error) {
	items := make([]ir.Item, 0, len(records))
	for i, record := range records {
		label := DisplayLabel(record)
		if label == UntitledLabel {
			obj, _ := record.(*ir.Object)
			slog.Debug("record has no label field", "index", i, "members", obj.Keys())
		}
		item, err := ir.NewItem(GroupLabel(record), label, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// GroupLabel returns the record's area name, or DefaultGroup.
func GroupLabel(record ir.Value) string {
	if name, ok := engine.AreaName(record); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return DefaultGroup
}

// DisplayLabel returns the first non-blank string among the label fields,
// matched case-insensitively, or UntitledLabel.
func DisplayLabel(record ir.Value) string {
	obj, ok := record.(*ir.Object)
	if !ok {
		return UntitledLabel
	}

	for _, field := range labelFields {
		for _, m := range obj.Members() {
			if !strings.EqualFold(m.Key, field) {
				continue
			}
			if s, ok := m.Value.(ir.String); ok && strings.TrimSpace(string(s)) != "" {
				return string(s)
			}
		}
	}
	return UntitledLabel
}
