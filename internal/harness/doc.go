// Package harness runs end-to-end checklist scenarios for leagues.
//
// A scenario loads a dataset, toggles tasks, runs queries and checks what
// each query returned and what the completion store holds at the end.
// Every scenario runs against a fresh in-memory store with sequential
// toggle event IDs, so its trace is byte-identical across runs and can be
// compared against a golden file.
//
// # Scenario Format
//
//	name: toggle_then_filter
//	description: "Toggling B makes it the only completed task"
//	dataset:
//	  - {task: A, area: X, points: 10}
//	  - {task: B, area: X, points: 50}
//	steps:
//	  - query: "pts > 20"
//	    expect: [B]
//	  - toggle: B
//	  - query: "completed"
//	    expect: [B]
//	    warnings: 0
//	assertions:
//	  - type: completed
//	    items: [B]
//	  - type: history_count
//	    count: 1
//
// The dataset is either inline (any shape the loader accepts, including a
// rows-style wrapper) or a dataset_file path relative to the scenario file.
// Steps and assertions name tasks by label or by item ID.
//
// # Assertion Types
//
//   - completed: every listed task is completed at the end
//   - not_completed: no listed task is completed at the end
//   - history_count: the store recorded exactly count toggle events
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/toggle.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
