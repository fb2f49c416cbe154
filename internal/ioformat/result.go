package ioformat

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/geom"
	"github.com/piwi3910/nestkit/internal/model"
)

// BuildResult assembles the wire-format result document from committed
// placements, unplaced summaries, and run statistics.
func BuildResult(placements []model.Placement, unplaced []model.Unplaced, stats model.Statistics) model.Result {
	records := make([]model.PlacementRecord, 0, len(placements))
	for _, p := range placements {
		records = append(records, toPlacementRecord(p))
	}

	unplacedRecords := make([]model.UnplacedRecord, 0, len(unplaced))
	for _, u := range unplaced {
		unplacedRecords = append(unplacedRecords, model.UnplacedRecord{
			ID:           u.ID,
			OriginalName: u.OriginalName,
			Quantity:     u.Quantity,
		})
	}

	return model.Result{
		Success:    true,
		Message:    "nesting complete",
		Placements: records,
		Unplaced:   unplacedRecords,
		Statistics: stats,
	}
}

func toPlacementRecord(p model.Placement) model.PlacementRecord {
	return model.PlacementRecord{
		PartInstanceID: p.PartInstanceID,
		PartID:         p.PartID,
		OriginalName:   p.OriginalName,
		SheetID:        p.SheetID,
		XBLBBox:        p.XBL,
		YBLBBox:        p.YBL,
		WidthBBox:      p.WidthBBox,
		HeightBBox:     p.HeightBBox,
		Rotation:       p.Rotation,
		Profile2D:      polygonToProfile(p.Polygon),
		BBox: model.BBox{
			X:      p.XBL,
			Y:      p.YBL,
			Width:  p.WidthBBox,
			Height: p.HeightBBox,
		},
		SVG: p.SVG,
	}
}

func polygonToProfile(poly geom.Polygon) model.Profile2D {
	return model.Profile2D{
		Outer: ringToPoints(poly.Outer),
		Holes: ringsToPoints(poly.Holes),
	}
}

// ringToPoints drops a ring's duplicated closing point, matching the
// open-ring shape job documents use on input.
func ringToPoints(r orb.Ring) [][2]float64 {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	out := make([][2]float64, n)
	for i := 0; i < n; i++ {
		out[i] = [2]float64{r[i][0], r[i][1]}
	}
	return out
}

func ringsToPoints(rs []orb.Ring) [][][2]float64 {
	if len(rs) == 0 {
		return nil
	}
	out := make([][][2]float64, len(rs))
	for i, r := range rs {
		out[i] = ringToPoints(r)
	}
	return out
}

// FatalResult builds the result document for an input-invalid,
// thickness-mismatch, or other unrecoverable error.
func FatalResult(message string, details error) model.Result {
	r := model.Result{Success: false, Message: message}
	if details != nil {
		r.ErrorDetails = details.Error()
	}
	return r
}

// WriteResult writes the result document to w as a single line of JSON.
func WriteResult(w io.Writer, result model.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(data); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
