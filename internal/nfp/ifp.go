// Package nfp builds the Inner-Fit Polygon for a candidate part
// rotation on a sheet and evaluates candidate anchor points against it,
// on top of the clip package's
// integer-scaled offset/clip primitives and the sheet package's
// per-sheet placement state.
package nfp

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/clip"
	"github.com/piwi3910/nestkit/internal/sheet"
)

// MinOffset is the floor on the inward IFP offset.
const MinOffset = 0.01

// Epsilon is the small positive margin added to half the part spacing
// before computing the IFP offset.
const Epsilon = 1e-6

// IFP is the Inner-Fit Polygon for one (part rotation, sheet) pair: the
// locus of positions where a part's reference corner may be anchored
// without violating the sheet margin or overlapping a placed part.
type IFP struct {
	Outer clip.Path64
	Holes clip.Paths64
}

// Empty reports whether the IFP contains no usable locus.
func (f IFP) Empty() bool {
	return len(f.Outer) < 3
}

// Compute builds the IFP for a sheet given the part-to-part spacing.
// Sheets stay rectangular even after margin erosion, so free space is
// modeled as that rectangle with one hole per placed part's buffered
// envelope (clip.BuildFreeSpace), and the half-spacing inward offset is
// applied by shrinking the outer rectangle and growing each hole by the
// same delta — equivalent to eroding the free space directly, without
// needing a general polygon union of the obstacles first.
func Compute(s *sheet.Instance, partSpacing float64) IFP {
	delta := math.Max(partSpacing/2+Epsilon, MinOffset)
	deltaScaled := delta * clip.Scale

	minX := clip.ScalePoint(s.Eroded.Min).X
	minY := clip.ScalePoint(s.Eroded.Min).Y
	maxX := clip.ScalePoint(s.Eroded.Max).X
	maxY := clip.ScalePoint(s.Eroded.Max).Y

	var obstacles clip.Paths64
	for _, b := range s.Buffered {
		obstacles = append(obstacles, clip.ScaleRing(b.Outer))
	}
	fs := clip.BuildFreeSpace(minX, minY, maxX, maxY, obstacles)

	outer := clip.InflateRound(fs.Outer, -deltaScaled)
	if len(outer) < 3 || clip.Area64(outer) <= 0 {
		return IFP{}
	}

	var holes clip.Paths64
	for _, h := range fs.Holes {
		grown := clip.InflateRound(h, deltaScaled)
		grown = clip.RectClip(grown, minX, minY, maxX, maxY)
		if len(grown) >= 3 {
			holes = append(holes, grown)
		}
	}

	return IFP{Outer: outer, Holes: holes}
}

// PointInside reports whether a scaled point lies in the IFP's locus:
// inside the outer ring and outside every hole.
func (f IFP) PointInside(pt clip.Point64) bool {
	if !clip.PointInPath64(pt, f.Outer) {
		return false
	}
	for _, h := range f.Holes {
		if clip.PointInPath64(pt, h) {
			return false
		}
	}
	return true
}

// ExteriorVertices returns every vertex of the IFP's outer ring in
// problem space, used as the candidate-anchor fallback when no point of
// the per-sheet candidate cache passes candidatePoints' filter.
func (f IFP) ExteriorVertices() []orb.Point {
	ring := clip.UnscaleRing(f.Outer)
	out := make([]orb.Point, 0, len(ring))
	for _, p := range ring {
		out = append(out, p)
	}
	return out
}

// PolygonOuter returns the outer ring in problem space, for containment
// checks that don't need the integer-scaled representation.
func (f IFP) PolygonOuter() orb.Ring {
	return clip.UnscaleRing(f.Outer)
}
