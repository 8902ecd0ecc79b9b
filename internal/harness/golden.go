package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/jeepies/leagues/internal/ir"
)

// TraceSnapshot captures the complete trace for a scenario execution.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

// toValue converts the snapshot to an ordered record value so it can be
// written with ir.MarshalCanonical. Empty optional fields are left out.
func (s *TraceSnapshot) toValue() ir.Value {
	trace := make(ir.Array, 0, len(s.Trace))
	for _, event := range s.Trace {
		obj := ir.NewObject(
			ir.O("step", ir.Number(event.Step)),
			ir.O("type", ir.String(event.Type)),
		)
		switch event.Type {
		case EventToggle:
			obj.Set("item_id", ir.String(event.ItemID))
			obj.Set("label", ir.String(event.Label))
			obj.Set("completed", ir.Bool(event.Completed))
			obj.Set("event_id", ir.String(event.EventID))
			obj.Set("seq", ir.Number(event.Seq))
		case EventQuery:
			obj.Set("query", ir.String(event.Query))
			obj.Set("conditions", stringArray(event.Conditions))
			obj.Set("matched", stringArray(event.Matched))
			if len(event.Warnings) > 0 {
				obj.Set("warnings", stringArray(event.Warnings))
			}
		}
		trace = append(trace, obj)
	}

	return ir.NewObject(
		ir.O("scenario_name", ir.String(s.ScenarioName)),
		ir.O("trace", trace),
	)
}

func stringArray(items []string) ir.Array {
	out := make(ir.Array, 0, len(items))
	for _, s := range items {
		out = append(out, ir.String(s))
	}
	return out
}

// MarshalTrace renders a result's trace as canonical JSON.
func MarshalTrace(scenarioName string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		Trace:        result.Trace,
	}
	return ir.MarshalCanonical(snapshot.toValue())
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares the given result's trace against a golden file.
// This is useful when you've already run a scenario and want to compare
// the result against a golden file without re-running.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	traceJSON, err := MarshalTrace(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)

	return nil
}
