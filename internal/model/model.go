// Package model holds the data types the nesting job flows through:
// part/sheet definitions as loaded from a job document, the instances
// the placement loop consumes, and the placement/unplaced records the
// result document is built from.
package model

import "github.com/piwi3910/nestkit/internal/geom"

// Profile2D is the raw outer/hole ring data for a part, exactly as it
// appears in a job document.
type Profile2D struct {
	Outer [][2]float64   `json:"outer"`
	Holes [][][2]float64 `json:"holes,omitempty"`
}

// Part is a part definition as loaded from a job document.
type Part struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	Quantity     int       `json:"quantity"`
	Thickness    float64   `json:"thickness"`
	Profile2D    Profile2D `json:"profile2d"`
}

// Sheet is a sheet definition as loaded from a job document.
type Sheet struct {
	ID        string  `json:"id"`
	Quantity  int     `json:"quantity"`
	Thickness float64 `json:"thickness"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// ScoreStrategy selects the across-sheet/rotation tie-break rule.
type ScoreStrategy string

const (
	ScoreYX         ScoreStrategy = "YX"
	ScoreOriginDist ScoreStrategy = "ORIGINDIST"
	ScoreSheetYX    ScoreStrategy = "SHEETYX"
)

// Parameters holds the job-wide nesting parameters.
type Parameters struct {
	PartToPartDistance  float64       `json:"partToPartDistance"`
	PartToSheetDistance float64       `json:"partToSheetDistance"`
	AllowRotation       string        `json:"allowRotation,omitempty"`
	BestFitScore        ScoreStrategy `json:"bestFitScore"`
}

// DefaultParameters returns the parameters to use when a job omits the
// "parameters" object, or individual fields within it, layered under
// an AppConfig the same way a project-level config layers optimizer
// defaults.
func DefaultParameters() Parameters {
	return Parameters{
		PartToPartDistance:  0,
		PartToSheetDistance: 0,
		BestFitScore:        ScoreYX,
	}
}

// Job is a full nesting job document.
type Job struct {
	Parts      []Part     `json:"parts"`
	Sheets     []Sheet    `json:"sheets"`
	Parameters Parameters `json:"parameters"`
}

// PartInstance is one quantity-unit of a part definition, created by
// the outer placement loop and consumed at most once.
type PartInstance struct {
	InstanceID   string
	PartID       string
	OriginalName string
	Thickness    float64
	Polygon      geom.Polygon // simplified, at rotation 0
	Angles       []float64    // candidate rotation angles, degrees
}

// Placement is a committed placement of one part instance on one sheet.
type Placement struct {
	PartInstanceID string
	PartID         string
	OriginalName   string
	SheetID        string
	XBL            float64
	YBL            float64
	WidthBBox      float64
	HeightBBox     float64
	Rotation       float64
	Polygon        geom.Polygon
	SVG            string
}

// Unplaced summarizes the instances of one part definition that never
// received a placement.
type Unplaced struct {
	ID           string
	OriginalName string
	Quantity     int
}

// Statistics reports counts and timings for the result document.
type Statistics struct {
	TotalPartsRequested    int     `json:"totalPartsRequested"`
	TotalPartsPlaced       int     `json:"totalPartsPlaced"`
	TotalPartsUnplaced     int     `json:"totalPartsUnplaced"`
	InitiallySkipped       int     `json:"initiallySkipped"`
	UnplacedDuringNesting  int     `json:"unplacedDuringNesting"`
	NestingTimeSeconds     float64 `json:"nestingTimeSeconds"`
	PreparationTimeSeconds float64 `json:"preparationTimeSeconds"`
	LoadingTimeSeconds     float64 `json:"loadingTimeSeconds"`
}

// Result is the full result document emitted on stdout.
type Result struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Placements   []PlacementRecord `json:"placements"`
	Unplaced     []UnplacedRecord  `json:"unplaced"`
	Statistics   Statistics        `json:"statistics"`
	ErrorDetails string            `json:"error_details,omitempty"`
}

// PlacementRecord is the JSON wire shape of a Placement.
type PlacementRecord struct {
	PartInstanceID string    `json:"partInstanceId"`
	PartID         string    `json:"partId"`
	OriginalName   string    `json:"originalName"`
	SheetID        string    `json:"sheetId"`
	XBLBBox        float64   `json:"x_bl_bbox"`
	YBLBBox        float64   `json:"y_bl_bbox"`
	WidthBBox      float64   `json:"width_bbox"`
	HeightBBox     float64   `json:"height_bbox"`
	Rotation       float64   `json:"rotation"`
	Profile2D      Profile2D `json:"profile2d"`
	BBox           BBox      `json:"bbox"`
	SVG            string    `json:"svg,omitempty"`
}

// BBox is an axis-aligned bounding box in the result document.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnplacedRecord is the JSON wire shape of an Unplaced summary.
type UnplacedRecord struct {
	ID           string `json:"id"`
	OriginalName string `json:"originalName"`
	Quantity     int    `json:"quantity"`
}
