// Package ioformat loads and validates job documents and renders the
// result document emitted on stdout. The job document is a single
// JSON file path given as the program's one argument, the same "one
// file in, one line of JSON out" shape a batch profiles/import
// pipeline uses for its own JSON payloads.
package ioformat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/nestkit/internal/model"
)

// ValidationError reports an input-invalid job document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid job document: %s", e.Reason)
}

// LoadJob reads and validates a job document from path.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, &ValidationError{Reason: fmt.Sprintf("cannot read job file: %v", err)}
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, &ValidationError{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	if err := validateJob(job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func validateJob(job model.Job) error {
	if len(job.Parts) == 0 {
		return &ValidationError{Reason: "parts list is empty"}
	}
	if len(job.Sheets) == 0 {
		return &ValidationError{Reason: "sheets list is empty"}
	}

	seenPartIDs := map[string]bool{}
	for i, p := range job.Parts {
		if p.ID == "" {
			return &ValidationError{Reason: fmt.Sprintf("parts[%d]: missing id", i)}
		}
		if seenPartIDs[p.ID] {
			return &ValidationError{Reason: fmt.Sprintf("parts[%d]: duplicate id %q", i, p.ID)}
		}
		seenPartIDs[p.ID] = true
		if p.Quantity < 0 {
			return &ValidationError{Reason: fmt.Sprintf("parts[%d] (%s): negative quantity", i, p.ID)}
		}
		if p.Quantity > 0 && len(p.Profile2D.Outer) == 0 {
			return &ValidationError{Reason: fmt.Sprintf("parts[%d] (%s): empty outer profile", i, p.ID)}
		}
	}

	seenSheetIDs := map[string]bool{}
	for i, s := range job.Sheets {
		if s.ID == "" {
			return &ValidationError{Reason: fmt.Sprintf("sheets[%d]: missing id", i)}
		}
		if seenSheetIDs[s.ID] {
			return &ValidationError{Reason: fmt.Sprintf("sheets[%d]: duplicate id %q", i, s.ID)}
		}
		seenSheetIDs[s.ID] = true
		if s.Quantity < 0 {
			return &ValidationError{Reason: fmt.Sprintf("sheets[%d] (%s): negative quantity", i, s.ID)}
		}
		if s.Quantity > 0 && (s.Width <= 0 || s.Height <= 0) {
			return &ValidationError{Reason: fmt.Sprintf("sheets[%d] (%s): width and height must be positive", i, s.ID)}
		}
	}

	return nil
}
