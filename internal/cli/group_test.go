package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeepies/leagues/internal/ir"
)

func groupLabels(groups []Group) []string {
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	return labels
}

func TestGroupItemsOrdersHeadingsForLocale(t *testing.T) {
	items := []ir.Item{
		{ID: "1", Group: "Zeah", Label: "a"},
		{ID: "2", Group: "\u00c5land", Label: "b"},
		{ID: "3", Group: "Asgarnia", Label: "c"},
	}

	en, err := groupItems(items, nil, "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"\u00c5land", "Asgarnia", "Zeah"}, groupLabels(en))

	// Swedish sorts the ring-above letter after z.
	sv, err := groupItems(items, nil, "sv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Asgarnia", "Zeah", "\u00c5land"}, groupLabels(sv))
}

func TestGroupItemsKeepsItemOrderAndState(t *testing.T) {
	items := []ir.Item{
		{ID: "b", Group: "X", Label: "second"},
		{ID: "a", Group: "X", Label: "first"},
		{ID: "c", Group: "General", Label: "third"},
	}
	state := ir.Completions{"a": true}

	groups, err := groupItems(items, state, "en")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "General", groups[0].Label)
	assert.Equal(t, []ItemView{
		{ID: "b", Label: "second"},
		{ID: "a", Label: "first", Completed: true},
	}, groups[1].Items)
}

func TestGroupItemsEmpty(t *testing.T) {
	groups, err := groupItems(nil, nil, "en")
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupItemsBadLocale(t *testing.T) {
	_, err := groupItems(nil, nil, "???")
	assert.Error(t, err)
}
