package harness

// Trace event types.
const (
	EventToggle = "toggle"
	EventQuery  = "query"
)

// TraceEvent records what one step did.
type TraceEvent struct {
	Step int    `json:"step"`
	Type string `json:"type"` // EventToggle or EventQuery

	// Toggle steps.
	ItemID    string `json:"item_id,omitempty"`
	Label     string `json:"label,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	EventID   string `json:"event_id,omitempty"`
	Seq       int64  `json:"seq,omitempty"`

	// Query steps.
	Query      string   `json:"query,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Matched    []string `json:"matched,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace has one event per step, in step order.
	Trace []TraceEvent `json:"trace"`

	// Errors lists failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
