package dataset

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for dataset loading.
const (
	ErrCodeNotFound    = "E_DATASET_NOT_FOUND"
	ErrCodeUnsupported = "E_DATASET_UNSUPPORTED"
	ErrCodeParse       = "E_DATASET_PARSE"
	ErrCodeNotConcrete = "E_DATASET_NOT_CONCRETE"
)

// LoadError represents an error that occurred while loading a dataset.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
