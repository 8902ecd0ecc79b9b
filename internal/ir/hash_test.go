package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskRecord(task, area string, points float64) *Object {
	return NewObject(
		O("task", String(task)),
		O("area", String(area)),
		O("points", Number(points)),
	)
}

func TestItemHashSeed(t *testing.T) {
	assert.Equal(t, uint32(5381), itemHash(""))
}

func TestItemIDKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		group  string
		record Value
		want   string
	}{
		{"task A", "X", taskRecord("A", "X", 10), "516a0300"},
		{"task B", "X", taskRecord("B", "X", 50), "856d0a67"},
		{"empty object", "General", NewObject(), "7851b0a9"},
		{"empty group and string", "", String(""), "b878c19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ItemID(tt.group, tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestItemIDDeterminism(t *testing.T) {
	id1 := MustItemID("Al Kharid", taskRecord("Cut a log", "Al Kharid", 10))
	id2 := MustItemID("Al Kharid", taskRecord("Cut a log", "Al Kharid", 10))

	assert.Equal(t, id1, id2, "ItemID must be deterministic")
}

func TestItemIDChangesWithInput(t *testing.T) {
	base := MustItemID("X", taskRecord("A", "X", 10))

	assert.NotEqual(t, base, MustItemID("Y", taskRecord("A", "X", 10)), "group label is part of the identity")
	assert.NotEqual(t, base, MustItemID("X", taskRecord("A", "X", 11)), "content is part of the identity")

	reordered := NewObject(
		O("area", String("X")),
		O("task", String("A")),
		O("points", Number(10)),
	)
	assert.NotEqual(t, base, MustItemID("X", reordered), "member order is part of the identity")
}

func TestItemIDIdenticalRecordsCollide(t *testing.T) {
	// Intentional: identity is content-addressed, not a primary key.
	a := MustItemID("X", taskRecord("A", "X", 10))
	b := MustItemID("X", taskRecord("A", "X", 10))
	assert.Equal(t, a, b)
}

func TestItemIDHashesUTF16Units(t *testing.T) {
	// U+1F600 is a surrogate pair in UTF-16; hashing must see two units.
	h := hashSeed
	h = h*33 ^ 0xD83D
	h = h*33 ^ 0xDE00
	assert.Equal(t, h, itemHash("\U0001F600"))
}

func TestItemIDRejectsAbsent(t *testing.T) {
	_, err := ItemID("X", nil)
	assert.Error(t, err)

	assert.Panics(t, func() { MustItemID("X", nil) })
}
