package nfp

import (
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/clip"
	"github.com/piwi3910/nestkit/internal/geom"
	"github.com/piwi3910/nestkit/internal/sheet"
)

// OverlapTolerance is the maximum intersection area tolerated between a
// candidate's outward-buffered footprint and an already-placed buffered
// polygon.
const OverlapTolerance = 1e-2

// DirectCheckThreshold is the placed-polygon count below which every
// placed polygon is tested directly instead of via the spatial index.
const DirectCheckThreshold = 10

// Candidate is one legal anchor evaluation result.
type Candidate struct {
	XBL, YBL     float64
	Translated   geom.Polygon
	BufferedFoot geom.Polygon
}

// Evaluate tries every candidate anchor point against a rotated part
// polygon (whose own origin already sits at its bounding-box bottom-left
// corner) on one sheet, returning the lexicographically-least legal
// candidate by (y, then x).
func Evaluate(s *sheet.Instance, ifpVal IFP, rotated geom.Polygon, partSpacing float64) (Candidate, bool) {
	if ifpVal.Empty() {
		return Candidate{}, false
	}

	bound := geom.PolygonBound(rotated)
	refX, refY := bound.Min[0], bound.Min[1]

	points := candidatePoints(s, ifpVal)

	half := partSpacing/2 + Epsilon

	var best Candidate
	found := false
	for _, p := range points {
		dx := p[0] - refX
		dy := p[1] - refY
		translated := rotated.Translate(dx, dy)

		tb := geom.PolygonBound(translated)
		if !boundWithin(tb, s.Eroded) {
			continue
		}

		buffered := bufferPolygon(translated, half)
		if len(buffered.Outer) < 4 {
			continue
		}

		if overlapsAny(s, buffered) {
			continue
		}

		cand := Candidate{XBL: tb.Min[0], YBL: tb.Min[1], Translated: translated, BufferedFoot: buffered}
		if !found || less(cand, best) {
			best = cand
			found = true
		}
	}
	return best, found
}

func less(a, b Candidate) bool {
	if a.YBL != b.YBL {
		return a.YBL < b.YBL
	}
	return a.XBL < b.XBL
}

func boundWithin(inner, outer orb.Bound) bool {
	const tol = 1e-6
	return inner.Min[0] >= outer.Min[0]-tol && inner.Min[1] >= outer.Min[1]-tol &&
		inner.Max[0] <= outer.Max[0]+tol && inner.Max[1] <= outer.Max[1]+tol
}

// bufferPolygon outward-buffers a polygon's outer ring by delta problem
// space units with round joins.
func bufferPolygon(p geom.Polygon, delta float64) geom.Polygon {
	path := clip.ScaleRing(p.Outer)
	out := clip.InflateRound(path, delta*clip.Scale)
	if len(out) < 3 {
		return geom.Polygon{}
	}
	return geom.Polygon{Outer: clip.UnscaleRing(out)}
}

func overlapsAny(s *sheet.Instance, buffered geom.Polygon) bool {
	bufScaled := clip.ScaleRing(buffered.Outer)
	candBound := geom.PolygonBound(buffered)

	var against []geom.Polygon
	if len(s.Buffered) < DirectCheckThreshold {
		against = s.Buffered
	} else {
		against = s.CandidatesNear(candBound)
	}

	for _, placed := range against {
		placedScaled := clip.ScaleRing(placed.Outer)
		area := clip.IntersectionArea(bufScaled, placedScaled)
		if area > OverlapTolerance {
			return true
		}
	}
	return false
}

// candidatePoints returns the sheet's candidate-point cache filtered to
// points inside the margin-eroded sheet and outside every buffered
// placed polygon; if that set is empty, falls back to every vertex of
// the IFP's exterior ring. The fallback is not used when some cached
// points pass the filter but none of them yields a legal placement.
func candidatePoints(s *sheet.Instance, ifpVal IFP) []orb.Point {
	cached := s.CandidatePoints()
	var filtered []orb.Point
	for _, p := range cached {
		if !boundWithin(orb.Bound{Min: p, Max: p}, s.Eroded) {
			continue
		}
		scaled := clip.ScalePoint(p)
		blocked := false
		for _, b := range s.Buffered {
			if clip.PointInPath64(scaled, clip.ScaleRing(b.Outer)) {
				blocked = true
				break
			}
		}
		if !blocked {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > 0 {
		return sortLex(filtered)
	}
	return sortLex(dedupe1e4(ifpVal.ExteriorVertices()))
}

func sortLex(pts []orb.Point) []orb.Point {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})
	return pts
}

func dedupe1e4(pts []orb.Point) []orb.Point {
	const tol = 1e-4
	var out []orb.Point
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if math.Abs(p[0]-q[0]) < tol && math.Abs(p[1]-q[1]) < tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
