package store

import (
	"fmt"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store with deterministic
// event IDs for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(NewFixedGenerator(eventIDs(32)...)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// eventIDs returns evt-01 .. evt-NN.
func eventIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("evt-%02d", i+1)
	}
	return ids
}
