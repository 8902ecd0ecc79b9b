package ir

// Item is the read-only view of one dataset record, built once at load time.
type Item struct {
	ID     string `json:"id"`     // Content-addressed (ItemID)
	Group  string `json:"group"`  // Group label, e.g. the task's area
	Label  string `json:"label"`  // Display label, e.g. the task name
	Record Value  `json:"record"` // Never mutated
}

// NewItem builds an Item and computes its ID.
func NewItem(group, label string, record Value) (Item, error) {
	id, err := ItemID(group, record)
	if err != nil {
		return Item{}, err
	}
	return Item{ID: id, Group: group, Label: label, Record: record}, nil
}

// Completions is a snapshot of completion state keyed by item ID.
// Absent IDs read as not completed.
type Completions map[string]bool

// IsCompleted reports the stored state for id. Safe on a nil snapshot.
func (c Completions) IsCompleted(id string) bool {
	return c[id]
}

// Toggle flips the state for id, treating an absent ID as false, and
// returns the new state. A nil snapshot is allocated on first use. The
// caller persists the change.
func (c *Completions) Toggle(id string) bool {
	if *c == nil {
		*c = Completions{}
	}
	next := !(*c)[id]
	(*c)[id] = next
	return next
}
