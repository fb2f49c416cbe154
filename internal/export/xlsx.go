package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/nestkit/internal/model"
)

// WriteStatisticsReport writes an XLSX workbook summarizing a nesting
// result: a "Statistics" sheet with overall counts/timings and a
// "Placements" sheet listing every placed instance, adapted from the
// teacher's excelize-based spreadsheet reader used here as a writer.
func WriteStatisticsReport(path string, result model.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	statsSheet := "Statistics"
	f.SetSheetName(f.GetSheetName(0), statsSheet)
	writeStatisticsSheet(f, statsSheet, result)

	placementsSheet := "Placements"
	if _, err := f.NewSheet(placementsSheet); err != nil {
		return fmt.Errorf("failed to create placements sheet: %w", err)
	}
	writePlacementsSheet(f, placementsSheet, result)

	if len(result.Unplaced) > 0 {
		unplacedSheet := "Unplaced"
		if _, err := f.NewSheet(unplacedSheet); err != nil {
			return fmt.Errorf("failed to create unplaced sheet: %w", err)
		}
		writeUnplacedSheet(f, unplacedSheet, result)
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

func writeStatisticsSheet(f *excelize.File, sheet string, result model.Result) {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Success", result.Success},
		{"Message", result.Message},
		{"Total Parts Requested", result.Statistics.TotalPartsRequested},
		{"Total Parts Placed", result.Statistics.TotalPartsPlaced},
		{"Total Parts Unplaced", result.Statistics.TotalPartsUnplaced},
		{"Initially Skipped", result.Statistics.InitiallySkipped},
		{"Unplaced During Nesting", result.Statistics.UnplacedDuringNesting},
		{"Loading Time (s)", result.Statistics.LoadingTimeSeconds},
		{"Preparation Time (s)", result.Statistics.PreparationTimeSeconds},
		{"Nesting Time (s)", result.Statistics.NestingTimeSeconds},
	}
	for i, row := range rows {
		r := i + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.value)
	}
}

func writePlacementsSheet(f *excelize.File, sheet string, result model.Result) {
	headers := []string{"Instance ID", "Part ID", "Sheet ID", "X", "Y", "Width", "Height", "Rotation"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s1", col), h)
	}
	for i, p := range result.Placements {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), p.PartInstanceID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), p.PartID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), p.SheetID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), p.XBLBBox)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), p.YBLBBox)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", r), p.WidthBBox)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", r), p.HeightBBox)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", r), p.Rotation)
	}
}

func writeUnplacedSheet(f *excelize.File, sheet string, result model.Result) {
	headers := []string{"Part ID", "Original Name", "Quantity"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s1", col), h)
	}
	for i, u := range result.Unplaced {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), u.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), u.OriginalName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), u.Quantity)
	}
}
