package geom

import "github.com/paulmach/orb"

// InteriorPoint returns a point guaranteed to lie strictly inside ring,
// used to sample hole rings for the outer-ring containment check in
// NewPolygon. A plain centroid can fall outside a concave ring, so this
// clips one ear off the ring (the standard first step of ear-clipping
// triangulation) and returns that ear's centroid, which is always
// interior for a simple polygon.
func InteriorPoint(ring orb.Ring) orb.Point {
	pts := ring
	if len(pts) > 1 && pointsEqual(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 3 {
		if n == 0 {
			return orb.Point{}
		}
		return pts[0]
	}

	ccw := Area(append(append(orb.Ring{}, pts...), pts[0])) > 0

	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		curr := pts[i]
		next := pts[(i+1)%n]
		if !isConvexVertex(prev, curr, next, ccw) {
			continue
		}
		if earContainsNoOther(prev, curr, next, pts, i) {
			return orb.Point{(prev[0] + curr[0] + next[0]) / 3, (prev[1] + curr[1] + next[1]) / 3}
		}
	}
	// Degenerate fallback: average of all vertices.
	var sx, sy float64
	for _, p := range pts {
		sx += p[0]
		sy += p[1]
	}
	return orb.Point{sx / float64(n), sy / float64(n)}
}

func isConvexVertex(prev, curr, next orb.Point, ccw bool) bool {
	cross := (curr[0]-prev[0])*(next[1]-curr[1]) - (curr[1]-prev[1])*(next[0]-curr[0])
	if ccw {
		return cross > 0
	}
	return cross < 0
}

func earContainsNoOther(a, b, c orb.Point, pts []orb.Point, skipIdx int) bool {
	tri := orb.Ring{a, b, c, a}
	for i, p := range pts {
		if i == skipIdx {
			continue
		}
		if p == a || p == b || p == c {
			continue
		}
		if PointInRing(p, tri) {
			return false
		}
	}
	return true
}
