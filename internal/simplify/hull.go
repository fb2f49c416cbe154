package simplify

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// ConvexHull returns the convex hull of a point set using the monotone
// chain algorithm, as a CCW ring (closed, first == last).
func ConvexHull(pts []orb.Point) orb.Ring {
	uniq := dedupeSorted(pts)
	n := len(uniq)
	if n < 3 {
		return closeRing(uniq)
	}

	lower := make([]orb.Point, 0, n)
	for _, p := range uniq {
		for len(lower) >= 2 && crossProd(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]orb.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && crossProd(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return closeRing(hull)
}

func dedupeSorted(pts []orb.Point) []orb.Point {
	out := append([]orb.Point{}, pts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	uniq := out[:0]
	for i, p := range out {
		if i == 0 || p != out[i-1] {
			uniq = append(uniq, p)
		}
	}
	return uniq
}

func crossProd(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// MinRotatedRectAngle returns the rotation angle (degrees) that would
// align the longer side of the minimum-area bounding rectangle of ring
// with the X axis, using rotating calipers over the convex hull: the
// minimum-area rectangle always shares an edge direction with the hull.
func MinRotatedRectAngle(ring orb.Ring) float64 {
	pts := ring
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	hull := ConvexHull(pts)
	hull = hull[:len(hull)-1]
	n := len(hull)
	if n < 2 {
		return 0
	}

	bestArea := math.Inf(1)
	bestAngle := 0.0
	bestLongSide := "x"

	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		edgeAngle := math.Atan2(b[1]-a[1], b[0]-a[0])
		cos, sin := math.Cos(-edgeAngle), math.Sin(-edgeAngle)

		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range hull {
			rx := p[0]*cos - p[1]*sin
			ry := p[0]*sin + p[1]*cos
			minX, maxX = math.Min(minX, rx), math.Max(maxX, rx)
			minY, maxY = math.Min(minY, ry), math.Max(maxY, ry)
		}
		w, h := maxX-minX, maxY-minY
		area := w * h
		if area < bestArea {
			bestArea = area
			bestAngle = edgeAngle * 180 / math.Pi
			if h > w {
				bestLongSide = "y"
			} else {
				bestLongSide = "x"
			}
		}
	}
	if bestLongSide == "y" {
		bestAngle += 90
	}
	return normalizeAngle(-bestAngle)
}

func normalizeAngle(a float64) float64 {
	for a <= -180 {
		a += 360
	}
	for a > 180 {
		a -= 360
	}
	return a
}
