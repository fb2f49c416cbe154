// Package geom provides the 2D polygon-with-holes representation the
// nesting engine operates on, plus construction, repair, and bounding-box
// primitives. Coordinates are float64 in problem space (mm); the clip
// package handles the integer-scaled robustness layer used for boolean
// and offset operations.
package geom

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

// CloseTolerance is the distance under which a ring's first and last
// points are treated as coincident.
const CloseTolerance = 1e-5

// MinArea is the minimum absolute polygon area accepted as non-degenerate.
const MinArea = 1e-9

// ErrDegenerateRing is returned when a ring has fewer than 3 unique points.
var ErrDegenerateRing = errors.New("geom: ring has fewer than 3 unique points")

// ErrZeroArea is returned when a constructed polygon's area is below MinArea,
// or when a self-intersecting outer ring fails RepairRing.
var ErrZeroArea = errors.New("geom: polygon area below tolerance")

// Polygon is a single outer ring plus zero or more hole rings. Rings are
// closed (first point == last point) orb.Rings in problem-space coordinates.
type Polygon struct {
	Outer orb.Ring
	Holes []orb.Ring
}

// NewRing deduplicates consecutive points, closes the ring if needed, and
// rejects rings with fewer than 3 unique points.
func NewRing(points []orb.Point) (orb.Ring, error) {
	if len(points) == 0 {
		return nil, ErrDegenerateRing
	}
	deduped := make(orb.Ring, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && pointsEqual(deduped[len(deduped)-1], p) {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) > 1 && pointsEqual(deduped[0], deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return nil, ErrDegenerateRing
	}
	deduped = append(deduped, deduped[0])
	return deduped, nil
}

func pointsEqual(a, b orb.Point) bool {
	return math.Hypot(a[0]-b[0], a[1]-b[1]) < CloseTolerance
}

// Area returns the signed shoelace area of a closed ring (positive if CCW).
func Area(r orb.Ring) float64 {
	n := len(r)
	if n < 4 {
		return 0
	}
	var sum float64
	for i := 0; i < n-1; i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	return sum / 2
}

// EnsureOrientation returns r reversed if its signed area doesn't match
// the requested orientation (ccw=true for outer rings, false for holes).
func EnsureOrientation(r orb.Ring, ccw bool) orb.Ring {
	area := Area(r)
	if (area > 0) == ccw {
		return r
	}
	return Reverse(r)
}

// Reverse returns a new ring with point order reversed.
func Reverse(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Bound returns the axis-aligned bounding box of a ring.
func Bound(r orb.Ring) orb.Bound {
	b := orb.Bound{Min: r[0], Max: r[0]}
	for _, p := range r[1:] {
		b = b.Extend(p)
	}
	return b
}

// PolygonBound returns the bounding box of a polygon's outer ring (holes
// lie inside the outer ring and never widen the bound).
func PolygonBound(p Polygon) orb.Bound {
	return Bound(p.Outer)
}

// NewPolygon builds a polygon from raw outer/hole point slices, applying
// repair rules: dedup+close, reject <3 unique points,
// discard holes whose interior sample point escapes the outer ring
// (shrunk by tolerance), and reject zero-area results.
func NewPolygon(outer []orb.Point, holes [][]orb.Point) (Polygon, error) {
	outerRing, err := NewRing(outer)
	if err != nil {
		return Polygon{}, err
	}
	outerRing = EnsureOrientation(outerRing, true)

	if SelfIntersects(outerRing) {
		repaired, ok := RepairRing(outerRing)
		if !ok {
			return Polygon{}, ErrZeroArea
		}
		outerRing = EnsureOrientation(repaired, true)
	}

	var keptHoles []orb.Ring
	for _, h := range holes {
		ring, err := NewRing(h)
		if err != nil {
			continue // spec: discard invalid holes, don't fail the part
		}
		ring = EnsureOrientation(ring, false)
		sample := InteriorPoint(ring)
		if !strictlyInside(sample, outerRing) {
			continue
		}
		keptHoles = append(keptHoles, ring)
	}

	poly := Polygon{Outer: outerRing, Holes: keptHoles}
	area := math.Abs(Area(outerRing))
	if area < MinArea {
		return Polygon{}, ErrZeroArea
	}
	return poly, nil
}

// strictlyInside reports whether pt lies strictly within ring, shrunk
// conceptually by CloseTolerance: points within CloseTolerance of the
// boundary are rejected as "escaping".
func strictlyInside(pt orb.Point, ring orb.Ring) bool {
	if !PointInRing(pt, ring) {
		return false
	}
	return DistanceToRing(pt, ring) > CloseTolerance
}

// PointInRing performs a standard even-odd ray-casting point-in-polygon test.
func PointInRing(pt orb.Point, ring orb.Ring) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi[1] > pt[1]) != (pj[1] > pt[1]) {
			xIntersect := (pj[0]-pi[0])*(pt[1]-pi[1])/(pj[1]-pi[1]) + pi[0]
			if pt[0] < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// DistanceToRing returns the minimum distance from pt to any edge of ring.
func DistanceToRing(pt orb.Point, ring orb.Ring) float64 {
	best := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		d := distanceToSegment(pt, ring[i], ring[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

func distanceToSegment(p, a, b orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-20 {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projX, projY := a[0]+t*dx, a[1]+t*dy
	return math.Hypot(p[0]-projX, p[1]-projY)
}

// Translate returns a copy of p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	return Polygon{
		Outer: translateRing(p.Outer, dx, dy),
		Holes: translateRings(p.Holes, dx, dy),
	}
}

func translateRing(r orb.Ring, dx, dy float64) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[i] = orb.Point{p[0] + dx, p[1] + dy}
	}
	return out
}

func translateRings(rs []orb.Ring, dx, dy float64) []orb.Ring {
	if rs == nil {
		return nil
	}
	out := make([]orb.Ring, len(rs))
	for i, r := range rs {
		out[i] = translateRing(r, dx, dy)
	}
	return out
}

// Rotate returns a copy of p rotated by angleDeg degrees (CCW, positive Y
// up) about the origin.
func (p Polygon) Rotate(angleDeg float64) Polygon {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Polygon{
		Outer: rotateRing(p.Outer, sin, cos),
		Holes: rotateRingsFn(p.Holes, sin, cos),
	}
}

func rotateRing(r orb.Ring, sin, cos float64) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[i] = orb.Point{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos}
	}
	return out
}

func rotateRingsFn(rs []orb.Ring, sin, cos float64) []orb.Ring {
	if rs == nil {
		return nil
	}
	out := make([]orb.Ring, len(rs))
	for i, r := range rs {
		out[i] = rotateRing(r, sin, cos)
	}
	return out
}

// RotatePoint rotates a single point by angleDeg about the origin.
func RotatePoint(p orb.Point, angleDeg float64) orb.Point {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return orb.Point{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos}
}
