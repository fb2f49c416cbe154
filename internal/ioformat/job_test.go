package ioformat

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempJob(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp job file: %v", err)
	}
	return path
}

const validJob = `{
  "parts": [
    {"id": "p1", "originalName": "Panel", "quantity": 1, "thickness": 18,
     "profile2d": {"outer": [[0,0],[10,0],[10,10],[0,10]]}}
  ],
  "sheets": [
    {"id": "s1", "quantity": 1, "thickness": 18, "width": 100, "height": 100}
  ],
  "parameters": {"partToPartDistance": 0, "partToSheetDistance": 0, "bestFitScore": "YX"}
}`

func TestLoadJobValid(t *testing.T) {
	path := writeTempJob(t, validJob)
	job, err := LoadJob(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(job.Parts) != 1 || len(job.Sheets) != 1 {
		t.Fatalf("unexpected job shape: %+v", job)
	}
	if job.Parameters.BestFitScore != "YX" {
		t.Fatalf("expected bestFitScore YX, got %q", job.Parameters.BestFitScore)
	}
}

func TestLoadJobMissingFile(t *testing.T) {
	_, err := LoadJob(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadJobMalformedJSON(t *testing.T) {
	path := writeTempJob(t, `{not json`)
	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadJobEmptyPartsRejected(t *testing.T) {
	path := writeTempJob(t, `{"parts": [], "sheets": [{"id":"s1","quantity":1,"thickness":18,"width":10,"height":10}]}`)
	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("expected error for empty parts list")
	}
}

func TestLoadJobEmptySheetsRejected(t *testing.T) {
	path := writeTempJob(t, `{"parts": [{"id":"p1","quantity":1,"thickness":18,"profile2d":{"outer":[[0,0],[1,0],[1,1]]}}], "sheets": []}`)
	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("expected error for empty sheets list")
	}
}

func TestLoadJobDuplicatePartIDRejected(t *testing.T) {
	path := writeTempJob(t, `{
		"parts": [
			{"id":"p1","quantity":1,"thickness":18,"profile2d":{"outer":[[0,0],[1,0],[1,1]]}},
			{"id":"p1","quantity":1,"thickness":18,"profile2d":{"outer":[[0,0],[1,0],[1,1]]}}
		],
		"sheets": [{"id":"s1","quantity":1,"thickness":18,"width":10,"height":10}]
	}`)
	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("expected error for duplicate part id")
	}
}

func TestLoadJobNonPositiveSheetDimensionRejected(t *testing.T) {
	path := writeTempJob(t, `{
		"parts": [{"id":"p1","quantity":1,"thickness":18,"profile2d":{"outer":[[0,0],[1,0],[1,1]]}}],
		"sheets": [{"id":"s1","quantity":1,"thickness":18,"width":0,"height":10}]
	}`)
	_, err := LoadJob(path)
	if err == nil {
		t.Fatal("expected error for non-positive sheet width")
	}
}

func TestLoadJobZeroQuantitySheetDimensionsAllowed(t *testing.T) {
	path := writeTempJob(t, `{
		"parts": [{"id":"p1","quantity":1,"thickness":18,"profile2d":{"outer":[[0,0],[1,0],[1,1]]}}],
		"sheets": [{"id":"s1","quantity":0,"thickness":18,"width":0,"height":0}]
	}`)
	if _, err := LoadJob(path); err != nil {
		t.Fatalf("expected zero-quantity sheet with zero dimensions to be accepted, got: %v", err)
	}
}
