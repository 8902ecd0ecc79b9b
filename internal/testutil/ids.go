package testutil

import "fmt"

// DefaultIDPrefix is used when NewSequentialIDs gets an empty prefix.
const DefaultIDPrefix = "evt"

// SequentialIDs hands out "<prefix>-001", "<prefix>-002", ... and never
// runs out. It satisfies store.IDGenerator, so a scenario that toggles
// many times still produces byte-identical histories.
//
// Thread-safety: safe for concurrent use; numbering comes from a
// DeterministicClock.
type SequentialIDs struct {
	prefix string
	clock  *DeterministicClock
}

// NewSequentialIDs creates a generator for prefix.
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &SequentialIDs{prefix: prefix, clock: NewDeterministicClock()}
}

// Generate returns the next ID.
func (g *SequentialIDs) Generate() string {
	return fmt.Sprintf("%s-%03d", g.prefix, g.clock.Next())
}

// Reset restarts numbering at 1.
func (g *SequentialIDs) Reset() {
	g.clock.Reset()
}
