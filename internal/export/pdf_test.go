package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/nestkit/internal/model"
)

func rectProfile(minX, minY, w, h float64) model.Profile2D {
	return model.Profile2D{Outer: [][2]float64{
		{minX, minY}, {minX + w, minY}, {minX + w, minY + h}, {minX, minY + h},
	}}
}

func buildTestJob() model.Job {
	return model.Job{
		Sheets: []model.Sheet{
			{ID: "s1", Quantity: 1, Width: 2440, Height: 1220},
			{ID: "s2", Quantity: 1, Width: 1200, Height: 600},
		},
	}
}

func buildTestResult() model.Result {
	return model.Result{
		Success: true,
		Placements: []model.PlacementRecord{
			{PartInstanceID: "p1#0", PartID: "p1", SheetID: "s1#0", XBLBBox: 10, YBLBBox: 10, WidthBBox: 600, HeightBBox: 400, Profile2D: rectProfile(10, 10, 600, 400)},
			{PartInstanceID: "p2#0", PartID: "p2", SheetID: "s1#0", XBLBBox: 620, YBLBBox: 10, WidthBBox: 500, HeightBBox: 300, Profile2D: rectProfile(620, 10, 500, 300)},
			{PartInstanceID: "p3#0", PartID: "p3", SheetID: "s1#0", XBLBBox: 10, YBLBBox: 420, WidthBBox: 300, HeightBBox: 400, Rotation: 90, Profile2D: rectProfile(10, 420, 300, 400)},
			{PartInstanceID: "p4#0", PartID: "p4", SheetID: "s2#0", XBLBBox: 10, YBLBBox: 10, WidthBBox: 800, HeightBBox: 500, Profile2D: rectProfile(10, 10, 800, 500)},
		},
		Statistics: model.Statistics{TotalPartsRequested: 4, TotalPartsPlaced: 4},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	err := ExportPDF(path, buildTestJob(), buildTestResult())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, buildTestJob(), model.Result{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_WithUnplacedParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unplaced.pdf")

	result := buildTestResult()
	result.Unplaced = []model.UnplacedRecord{
		{ID: "u1", OriginalName: "Too Big", Quantity: 1},
		{ID: "u2", OriginalName: "Another", Quantity: 2},
	}

	if err := ExportPDF(path, buildTestJob(), result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file was not created correctly: %v", err)
	}
}

func TestExportPDF_SingleSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.pdf")

	job := model.Job{Sheets: []model.Sheet{{ID: "s1", Quantity: 1, Width: 1000, Height: 500}}}
	result := model.Result{
		Placements: []model.PlacementRecord{
			{PartInstanceID: "p1#0", PartID: "p1", SheetID: "s1#0", WidthBBox: 200, HeightBBox: 200, Profile2D: rectProfile(0, 0, 200, 200)},
		},
	}

	if err := ExportPDF(path, job, result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file was not created correctly: %v", err)
	}
}

func TestExportPDF_UnknownSheetFallsBackToBBoxExtent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unknown_sheet.pdf")

	job := model.Job{Sheets: []model.Sheet{{ID: "other", Quantity: 1, Width: 1000, Height: 500}}}
	result := model.Result{
		Placements: []model.PlacementRecord{
			{PartInstanceID: "p1#0", PartID: "p1", SheetID: "missing#0", WidthBBox: 100, HeightBBox: 100, Profile2D: rectProfile(0, 0, 100, 100)},
		},
	}

	if err := ExportPDF(path, job, result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestExportPDF_ManyParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_parts.pdf")

	var placements []model.PlacementRecord
	for i := 0; i < 20; i++ {
		x := float64((i % 5) * 110)
		y := float64((i / 5) * 90)
		placements = append(placements, model.PlacementRecord{
			PartInstanceID: "p" + string(rune('a'+i)),
			PartID:         "p" + string(rune('a'+i)),
			SheetID:        "s1#0",
			XBLBBox:        x, YBLBBox: y,
			WidthBBox: 100, HeightBBox: 80,
			Profile2D: rectProfile(x, y, 100, 80),
		})
	}

	job := model.Job{Sheets: []model.Sheet{{ID: "s1", Quantity: 1, Width: 600, Height: 400}}}
	result := model.Result{Placements: placements}

	if err := ExportPDF(path, job, result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file was not created correctly: %v", err)
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestSheetDimsStripsInstanceSuffix(t *testing.T) {
	job := buildTestJob()
	w, h, label, ok := sheetDims(job, "s2#3")
	if !ok || w != 1200 || h != 600 || label != "s2" {
		t.Fatalf("unexpected sheet dims: w=%v h=%v label=%v ok=%v", w, h, label, ok)
	}
}

func TestGroupBySheetOrdersDeterministically(t *testing.T) {
	order, groups := groupBySheet(buildTestResult().Placements)
	if len(order) != 2 || order[0] != "s1#0" || order[1] != "s2#0" {
		t.Fatalf("unexpected sheet order: %v", order)
	}
	if len(groups["s1#0"]) != 3 || len(groups["s2#0"]) != 1 {
		t.Fatalf("unexpected group sizes: %+v", groups)
	}
}
