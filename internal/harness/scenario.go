package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines an end-to-end checklist scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dataset is an inline dataset document. Kept as a node so mapping
	// order survives into record identity.
	Dataset yaml.Node `yaml:"dataset,omitempty"`

	// DatasetFile is a dataset path. Relative paths are resolved against
	// the scenario file by LoadScenario.
	DatasetFile string `yaml:"dataset_file,omitempty"`

	// EventPrefix prefixes the sequential toggle event IDs ("evt" if empty).
	EventPrefix string `yaml:"event_prefix,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`

	// Assertions check the final store state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is either a toggle or a query.
type Step struct {
	// Toggle names a task (label or ID) whose completion is flipped.
	Toggle string `yaml:"toggle,omitempty"`

	// Completed, with Toggle, sets the state instead of flipping it.
	Completed *bool `yaml:"completed,omitempty"`

	// Query is query text to run. A present empty string lists everything.
	Query *string `yaml:"query,omitempty"`

	// Expect lists the labels the query must return, in order. Absent
	// means unchecked; an empty list means no matches.
	Expect []string `yaml:"expect,omitempty"`

	// Warnings is the expected number of lint warnings for the query.
	Warnings *int `yaml:"warnings,omitempty"`
}

// Assertion checks the store after all steps ran.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Items names tasks by label or ID (completed, not_completed).
	Items []string `yaml:"items,omitempty"`

	// Count is the expected number of toggle events (history_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertCompleted    = "completed"
	AssertNotCompleted = "not_completed"
	AssertHistoryCount = "history_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.DatasetFile != "" && !filepath.IsAbs(scenario.DatasetFile) {
		scenario.DatasetFile = filepath.Join(filepath.Dir(path), scenario.DatasetFile)
	}
	if scenario.DatasetFile != "" {
		if _, err := os.Stat(scenario.DatasetFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid scenario: dataset file not found: %s", scenario.DatasetFile)
		}
	}

	return scenario, nil
}

// ParseScenario parses scenario YAML without touching the filesystem.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// hasInlineDataset reports whether the dataset key was given.
func (s *Scenario) hasInlineDataset() bool {
	return s.Dataset.Kind != 0
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.hasInlineDataset() && s.DatasetFile != "":
		return fmt.Errorf("dataset and dataset_file are mutually exclusive")
	case !s.hasInlineDataset() && s.DatasetFile == "":
		return fmt.Errorf("dataset or dataset_file is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, step Step) error {
	switch {
	case step.Toggle != "" && step.Query != nil:
		return fmt.Errorf("steps[%d]: toggle and query are mutually exclusive", index)
	case step.Toggle != "":
		if step.Expect != nil || step.Warnings != nil {
			return fmt.Errorf("steps[%d]: expect and warnings apply to query steps only", index)
		}
	case step.Query != nil:
		if step.Completed != nil {
			return fmt.Errorf("steps[%d]: completed applies to toggle steps only", index)
		}
	default:
		return fmt.Errorf("steps[%d]: toggle or query is required", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertCompleted, AssertNotCompleted:
		if len(a.Items) == 0 {
			return fmt.Errorf("assertions[%d]: items list is required for %s", index, a.Type)
		}
	case AssertHistoryCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for history_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
