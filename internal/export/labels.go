package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/nestkit/internal/model"
)

// LabelInfo holds the data encoded into each placed instance's QR code.
type LabelInfo struct {
	PartInstanceID string  `json:"partInstanceId"`
	PartID         string  `json:"partId"`
	SheetID        string  `json:"sheetId"`
	Rotation       float64 `json:"rotation"`
	X              float64 `json:"x_mm"`
	Y              float64 `json:"y_mm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // mm
	labelPadding    = 2.0  // mm
)

// CollectLabelInfos extracts one LabelInfo per placed instance from a
// nesting result, in placement order.
func CollectLabelInfos(result model.Result) []LabelInfo {
	labels := make([]LabelInfo, 0, len(result.Placements))
	for _, p := range result.Placements {
		labels = append(labels, LabelInfo{
			PartInstanceID: p.PartInstanceID,
			PartID:         p.PartID,
			SheetID:        p.SheetID,
			Rotation:       p.Rotation,
			X:              p.XBLBBox,
			Y:              p.YBLBBox,
		})
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels for every placed
// instance in a nesting result. Each label's QR code encodes the
// instance's partInstanceId plus its sheet and position, letting a
// shop floor scanner resolve a cut piece back to its placement.
func ExportLabels(path string, result model.Result) error {
	labels := CollectLabelInfos(result)
	if len(labels) == 0 {
		return fmt.Errorf("no placed instances to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PartInstanceID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.PartInstanceID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	instanceLabel := info.PartInstanceID
	if pdf.GetStringWidth(instanceLabel) > textW {
		for len(instanceLabel) > 0 && pdf.GetStringWidth(instanceLabel+"...") > textW {
			instanceLabel = instanceLabel[:len(instanceLabel)-1]
		}
		instanceLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, instanceLabel, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	sheetInfo := fmt.Sprintf("%s @ (%.0f, %.0f)", info.SheetID, info.X, info.Y)
	pdf.CellFormat(textW, 3.5, sheetInfo, "", 1, "L", false, 0, "")

	if info.Rotation != 0 {
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.SetXY(textX, y+labelPadding+9)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Rotated %.0f\xb0", info.Rotation), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
