// Package export renders a nesting result document to PDF: one page
// per sheet instance with the placed polygons drawn to scale, a QR
// code per instance (labels.go), and a summary page with overall
// statistics.
package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/nestkit/internal/model"
)

// partColor represents an RGB color for a placed part.
type partColor struct {
	R, G, B int
}

// partColors cycles through a fixed palette so adjacent parts on a
// page are visually distinguishable.
var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// sheetDims looks up width/height for a sheet instance ID ("s1#0") by
// stripping the "#N" suffix and matching the job's sheet definitions.
func sheetDims(job model.Job, sheetID string) (width, height float64, label string, ok bool) {
	baseID := sheetID
	if i := strings.LastIndex(sheetID, "#"); i >= 0 {
		baseID = sheetID[:i]
	}
	for _, s := range job.Sheets {
		if s.ID == baseID {
			return s.Width, s.Height, s.ID, true
		}
	}
	return 0, 0, "", false
}

// groupBySheet buckets placement records by their sheet instance ID,
// returning the sheet instance IDs sorted ascending.
func groupBySheet(placements []model.PlacementRecord) ([]string, map[string][]model.PlacementRecord) {
	var order []string
	seen := map[string]bool{}
	groups := map[string][]model.PlacementRecord{}
	for _, p := range placements {
		if !seen[p.SheetID] {
			seen[p.SheetID] = true
			order = append(order, p.SheetID)
		}
		groups[p.SheetID] = append(groups[p.SheetID], p)
	}
	sort.Strings(order)
	return order, groups
}

// ExportPDF generates a PDF layout document for a nesting result: one
// page per sheet instance that received at least one placement,
// followed by a summary page with overall statistics.
func ExportPDF(path string, job model.Job, result model.Result) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	order, groups := groupBySheet(result.Placements)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, sheetID := range order {
		pdf.AddPage()
		renderSheetPage(pdf, job, sheetID, groups[sheetID], i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderSheetPage draws every placement on one sheet instance, scaled
// to fit the page.
func renderSheetPage(pdf *fpdf.Fpdf, job model.Job, sheetID string, placements []model.PlacementRecord, pageNum int) {
	width, height, label, ok := sheetDims(job, sheetID)
	if !ok {
		width, height, label = maxExtent(placements), maxExtent(placements), sheetID
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d: %s (%.0f x %.0f mm)", pageNum, label, width, height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Instance: %s | Parts placed: %d", sheetID, len(placements))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/width, drawHeight/height)
	canvasW := width * scale
	canvasH := height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, p := range placements {
		col := partColors[i%len(partColors)]
		drawPlacementPolygon(pdf, p, col, scale, offsetX, offsetY)
	}
}

// maxExtent returns a fallback square extent for a sheet instance whose
// base definition could not be found in the job document.
func maxExtent(placements []model.PlacementRecord) float64 {
	max := 0.0
	for _, p := range placements {
		if v := p.XBLBBox + p.WidthBBox; v > max {
			max = v
		}
		if v := p.YBLBBox + p.HeightBBox; v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

// drawPlacementPolygon draws one placed instance's outer profile and a
// compact label near its bounding box.
func drawPlacementPolygon(pdf *fpdf.Fpdf, p model.PlacementRecord, col partColor, scale, offsetX, offsetY float64) {
	outer := p.Profile2D.Outer
	if len(outer) < 3 {
		return
	}

	points := make([]fpdf.PointType, len(outer))
	for i, pt := range outer {
		points[i] = fpdf.PointType{X: offsetX + pt[0]*scale, Y: offsetY + pt[1]*scale}
	}

	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.Polygon(points, "FD")

	pw := p.WidthBBox * scale
	ph := p.HeightBBox * scale
	px := offsetX + p.XBLBBox*scale
	py := offsetY + p.YBLBBox*scale
	if pw > 15 && ph > 8 {
		pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
		pdf.SetTextColor(0, 0, 0)
		label := p.PartID
		labelW := pdf.GetStringWidth(label)
		if labelW < pw-2 {
			pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Nesting Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	items := []struct{ label, value string }{
		{"Total Parts Requested", fmt.Sprintf("%d", result.Statistics.TotalPartsRequested)},
		{"Total Parts Placed", fmt.Sprintf("%d", result.Statistics.TotalPartsPlaced)},
		{"Total Parts Unplaced", fmt.Sprintf("%d", result.Statistics.TotalPartsUnplaced)},
		{"Nesting Time", fmt.Sprintf("%.2f s", result.Statistics.NestingTimeSeconds)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Parts", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, u := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s (%s): qty %d", u.OriginalName, u.ID, u.Quantity)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by nestkit", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
