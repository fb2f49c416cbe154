// Package clip implements the integer-coordinate polygon boolean and
// offset operations the nesting core depends on for robust IFP
// construction and overlap testing. The API shape (Point64/Path64/
// Paths64 types, Inflate-style naming) mirrors the Clipper2 Go
// port retrieved for this project; the algorithms here are a
// from-scratch, narrower implementation sized to this engine's actual
// need — rectangular sheets and simple (non-self-intersecting) part
// and forbidden-zone rings — rather than the full general-purpose
// Vatti scanline clipper.
package clip

import (
	"math"

	"github.com/paulmach/orb"
)

// Scale is the fixed factor problem-space coordinates are multiplied by
// before boolean/offset operations run in integer space.
const Scale = 1e4

// Point64 is an integer-scaled 2D point.
type Point64 struct {
	X, Y int64
}

// Path64 is a closed ring of scaled points (first point implicitly
// connects back to the last; no repeated closing point).
type Path64 []Point64

// Paths64 is a set of independent closed rings.
type Paths64 []Path64

// ScalePoint converts a problem-space point to integer space.
func ScalePoint(p orb.Point) Point64 {
	return Point64{
		X: int64(math.Round(p[0] * Scale)),
		Y: int64(math.Round(p[1] * Scale)),
	}
}

// UnscalePoint converts an integer-space point back to problem space.
func UnscalePoint(p Point64) orb.Point {
	return orb.Point{float64(p.X) / Scale, float64(p.Y) / Scale}
}

// ScaleRing converts a closed orb.Ring (first==last) to an open Path64.
func ScaleRing(r orb.Ring) Path64 {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	path := make(Path64, n)
	for i := 0; i < n; i++ {
		path[i] = ScalePoint(r[i])
	}
	return path
}

// UnscaleRing converts a Path64 back to a closed orb.Ring.
func UnscaleRing(p Path64) orb.Ring {
	if len(p) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(p)+1)
	for _, pt := range p {
		r = append(r, UnscalePoint(pt))
	}
	r = append(r, r[0])
	return r
}

// Area64 returns the signed shoelace area of a path (in scaled units²).
func Area64(p Path64) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return float64(sum) / 2
}

// Bounds64 returns the axis-aligned bounding box of a path.
func Bounds64(p Path64) (minX, minY, maxX, maxY int64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = p[0].X, p[0].Y
	for _, pt := range p[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return
}

// Reverse64 returns a path with point order reversed.
func Reverse64(p Path64) Path64 {
	out := make(Path64, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// PointInPath64 performs an even-odd ray-casting containment test.
func PointInPath64(pt Point64, path Path64) bool {
	inside := false
	n := len(path)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := path[i], path[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xIntersect := float64(pj.X-pi.X)*float64(pt.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(pt.X) < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// boundsOverlap reports whether two paths' bounding boxes intersect,
// used to cheaply skip full intersection-area computation.
func boundsOverlap(a, b Path64) bool {
	aMinX, aMinY, aMaxX, aMaxY := Bounds64(a)
	bMinX, bMinY, bMaxX, bMaxY := Bounds64(b)
	return aMinX <= bMaxX && aMaxX >= bMinX && aMinY <= bMaxY && aMaxY >= bMinY
}
