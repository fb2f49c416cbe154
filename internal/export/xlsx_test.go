package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/nestkit/internal/model"
)

func TestWriteStatisticsReport_CreatesSheets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	result := buildTestResult()
	result.Unplaced = []model.UnplacedRecord{{ID: "u1", OriginalName: "Leftover", Quantity: 2}}

	if err := WriteStatisticsReport(path, result); err != nil {
		t.Fatalf("WriteStatisticsReport returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen report: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Statistics": true, "Placements": true, "Unplaced": true}
	for _, s := range sheets {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("missing expected sheets: %v (got %v)", want, sheets)
	}

	rows, err := f.GetRows("Placements")
	if err != nil {
		t.Fatalf("failed to read Placements rows: %v", err)
	}
	if len(rows) != len(result.Placements)+1 {
		t.Fatalf("expected %d placement rows incl. header, got %d", len(result.Placements)+1, len(rows))
	}
}

func TestWriteStatisticsReport_NoUnplacedSheetWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	if err := WriteStatisticsReport(path, buildTestResult()); err != nil {
		t.Fatalf("WriteStatisticsReport returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen report: %v", err)
	}
	defer f.Close()

	for _, s := range f.GetSheetList() {
		if s == "Unplaced" {
			t.Fatal("did not expect an Unplaced sheet when result.Unplaced is empty")
		}
	}
}

func TestWriteStatisticsReport_FileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	if err := WriteStatisticsReport(path, buildTestResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("report file was not created correctly: %v", err)
	}
}
