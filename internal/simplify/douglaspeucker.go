// Package simplify reduces polygon vertex counts and derives the set of
// candidate rotation angles a part is tried at, grounded on the
// polyline-simplification technique shown in the retrieved corpus (a
// cone-based simplifier over a running angular window) generalized here
// to the classic Douglas-Peucker recursive-split form, which is the
// right fit for a closed planar ring rather than a streaming polyline.
package simplify

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/geom"
)

// MinTolerance and MaxTolerance bound the perimeter-scaled Douglas-Peucker
// tolerance.
const (
	MinTolerance       = 0.5
	MaxTolerance       = 5.0
	TolerancePerimeter = 0.02
	CollinearThreshold = 0.1
)

// Ring simplifies a closed ring with Douglas-Peucker using a tolerance
// derived from the ring's perimeter, then applies a collinearity pass
// when the result has 4 or 5 unique vertices.
func Ring(r orb.Ring) orb.Ring {
	open := r
	if len(open) > 1 && open[0] == open[len(open)-1] {
		open = open[:len(open)-1]
	}
	if len(open) < 4 {
		return closeRing(open)
	}

	tol := perimeterTolerance(open)
	reduced := douglasPeuckerClosed(open, tol)
	if len(reduced) == 4 || len(reduced) == 5 {
		reduced = collinearityPass(reduced)
	}
	return closeRing(reduced)
}

func closeRing(pts []orb.Point) orb.Ring {
	if len(pts) == 0 {
		return nil
	}
	out := make(orb.Ring, len(pts)+1)
	copy(out, pts)
	out[len(pts)] = pts[0]
	return out
}

func perimeter(pts []orb.Point) float64 {
	n := len(pts)
	var p float64
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		p += math.Hypot(b[0]-a[0], b[1]-a[1])
	}
	return p
}

func perimeterTolerance(pts []orb.Point) float64 {
	tol := TolerancePerimeter * perimeter(pts)
	if tol < MinTolerance {
		tol = MinTolerance
	}
	if tol > MaxTolerance {
		tol = MaxTolerance
	}
	return tol
}

// douglasPeuckerClosed runs Douglas-Peucker on a closed ring by splitting
// it at its two most-distant vertices (a stable, orientation-independent
// anchor pair) and simplifying each open half independently, then
// stitching the surviving vertices back into ring order.
func douglasPeuckerClosed(pts []orb.Point, tol float64) []orb.Point {
	n := len(pts)
	i0, i1 := farthestPair(pts)
	if i0 > i1 {
		i0, i1 = i1, i0
	}

	half1 := ringSlice(pts, i0, i1)
	half2 := ringSlice(pts, i1, i0+n)

	kept1 := douglasPeuckerOpen(half1, tol)
	kept2 := douglasPeuckerOpen(half2, tol)

	out := make([]orb.Point, 0, len(kept1)+len(kept2))
	out = append(out, kept1...)
	out = append(out, kept2[1:len(kept2)-1]...)
	if len(out) < 3 {
		return pts
	}
	return out
}

func ringSlice(pts []orb.Point, from, to int) []orb.Point {
	n := len(pts)
	out := make([]orb.Point, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, pts[i%n])
	}
	return out
}

func farthestPair(pts []orb.Point) (int, int) {
	n := len(pts)
	best := -1.0
	bi, bj := 0, n/2
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			if d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// douglasPeuckerOpen simplifies an open polyline, always keeping both
// endpoints.
func douglasPeuckerOpen(pts []orb.Point, tol float64) []orb.Point {
	if len(pts) < 3 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	maxDist := -1.0
	idx := -1
	for i := 1; i < len(pts)-1; i++ {
		d := geom.DistanceToRing(pts[i], orb.Ring{first, last})
		if d > maxDist {
			maxDist = d
			idx = i
		}
	}
	if maxDist <= tol || idx < 0 {
		return []orb.Point{first, last}
	}
	left := douglasPeuckerOpen(pts[:idx+1], tol)
	right := douglasPeuckerOpen(pts[idx:], tol)
	out := make([]orb.Point, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}

// collinearityPass removes a vertex whose perpendicular distance to the
// chord between its two neighbours is below CollinearThreshold, never
// reducing the ring below 3 vertices. Only applied to 4-5 vertex rings.
func collinearityPass(pts []orb.Point) []orb.Point {
	out := append([]orb.Point{}, pts...)
	for len(out) > 3 {
		removed := false
		n := len(out)
		for i := 0; i < n; i++ {
			prev := out[(i-1+n)%n]
			curr := out[i]
			next := out[(i+1)%n]
			d := geom.DistanceToRing(curr, orb.Ring{prev, next})
			if d < CollinearThreshold {
				out = append(append([]orb.Point{}, out[:i]...), out[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return out
}
