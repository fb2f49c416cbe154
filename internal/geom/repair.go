package geom

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/clip"
)

// SelfIntersects reports whether any two non-adjacent edges of a closed
// ring cross.
func SelfIntersects(r orb.Ring) bool {
	n := len(r) - 1 // last point duplicates first
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := r[i], r[i+1]
		for j := i + 1; j < n; j++ {
			if j == i || j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b0, b1 := r[j], r[j+1]
			if segmentsCross(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a0, a1, b0, b1 orb.Point) bool {
	d1 := cross(b1, b0, a0)
	d2 := cross(b1, b0, a1)
	d3 := cross(a1, a0, b0)
	d4 := cross(a1, a0, b1)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// RepairRing runs a self-intersecting ring through a zero-net offset
// (out by CloseTolerance, then back in) and re-checks the result. At
// the 1e4 integer scale that offset is 0.1 units, which rounds to zero
// at every vertex, so the ring comes back unchanged: a self-intersecting
// ring is not repaired and RepairRing reports false for it. A result
// with area below MinArea is also reported false.
func RepairRing(r orb.Ring) (orb.Ring, bool) {
	path := clip.ScaleRing(r)
	const eps = CloseTolerance * clip.Scale
	out := clip.InflateRound(path, eps)
	out = clip.InflateRound(out, -eps)
	repaired := clip.UnscaleRing(out)
	if len(repaired) < 4 {
		return nil, false
	}
	if SelfIntersects(repaired) {
		return nil, false
	}
	if math.Abs(Area(repaired)) < MinArea {
		return nil, false
	}
	return repaired, true
}
