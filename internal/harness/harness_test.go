package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return scenario
}

func TestRun_ScenariosPass(t *testing.T) {
	for _, name := range []string{"toggle_then_filter", "synonyms_and_quotes", "cue_dataset"} {
		t.Run(name, func(t *testing.T) {
			result, err := Run(loadTestScenario(t, name))
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	scenario := loadTestScenario(t, "synonyms_and_quotes")

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	a, err := MarshalTrace(scenario.Name, first)
	require.NoError(t, err)
	b, err := MarshalTrace(scenario.Name, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_ToggleTrace(t *testing.T) {
	result, err := Run(loadTestScenario(t, "toggle_then_filter"))
	require.NoError(t, err)

	require.Len(t, result.Trace, 5)
	toggle := result.Trace[1]
	assert.Equal(t, EventToggle, toggle.Type)
	assert.Equal(t, "856d0a67", toggle.ItemID)
	assert.Equal(t, "B", toggle.Label)
	assert.True(t, toggle.Completed)
	assert.Equal(t, "evt-001", toggle.EventID)
	assert.Equal(t, int64(1), toggle.Seq)
}

func TestRun_EventPrefix(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: prefix
description: "Custom event prefix"
event_prefix: run
dataset:
  - {task: A, area: X, points: 10}
steps:
  - toggle: A
  - toggle: 516a0300
assertions:
  - type: not_completed
    items: [A]
  - type: history_count
    count: 2
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "run-001", result.Trace[0].EventID)
	assert.Equal(t, "run-002", result.Trace[1].EventID)
	assert.False(t, result.Trace[1].Completed)
}

func TestRun_ExpectationFailures(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: failing
description: "Every expectation here is wrong"
dataset:
  - {task: A, area: X, points: 10}
  - {task: B, area: X, points: 50}
steps:
  - query: "pts > 20"
    expect: [A]
  - query: "pts > abc"
    warnings: 0
  - toggle: Nope
assertions:
  - type: completed
    items: [A]
  - type: history_count
    count: 3
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], `steps[0]: query "pts > 20": expected [A], got [B]`)
	assert.Contains(t, result.Errors[1], "expected 0 warnings, got 1")
	assert.Contains(t, result.Errors[2], `steps[2]: no task named "Nope"`)
	assert.Contains(t, result.Errors[3], "Assertion failed: completed")
	assert.Contains(t, result.Errors[4], "Assertion failed: history_count")
}

func TestRun_BadInlineDataset(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: bad
description: "Complex mapping keys cannot become records"
dataset:
  ? [a, b]
  : 1
steps:
  - query: ""
`))
	require.NoError(t, err)

	_, err = Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestRun_NonArrayDatasetIsEmpty(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: scalar
description: "A scalar dataset has no tasks"
dataset: 42
steps:
  - query: ""
    expect: []
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestHarness_ExpectMirrorsSteps(t *testing.T) {
	h := &Harness{}
	done, undone := true, false

	assert.True(t, h.expect("a", nil), "first toggle on an empty mirror completes")
	assert.False(t, h.expect("a", nil))
	assert.True(t, h.expect("b", &done))
	assert.True(t, h.expect("b", &done), "setting the same state keeps it")
	assert.False(t, h.expect("b", &undone))

	assert.False(t, h.expected.IsCompleted("a"))
	assert.False(t, h.expected.IsCompleted("b"))
}
