// Package sheet holds per-sheet-instance placement state: the placed
// polygon lists, the buffered-forbidden-zone list used for overlap
// pruning, the lazily-rebuilt spatial index over buffered envelopes,
// and the candidate anchor point cache. It generalizes a guillotine
// packer's free-rectangle bookkeeping (containment/overlap pruning
// over axis-aligned rects) to arbitrary buffered polygon envelopes.
package sheet

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/clip"
	"github.com/piwi3910/nestkit/internal/geom"
)

// IndexThreshold is the number of placements after which the spatial
// index is rebuilt.
const IndexThreshold = 10

// PointTolerance is the deduplication tolerance for candidate anchor
// points.
const PointTolerance = 1e-4

// Instance is one sheet instance's mutable placement state.
type Instance struct {
	ID        string
	Thickness float64
	Width     float64
	Height    float64
	Margin    float64

	// Interior is the sheet's own rectangle at the origin; Eroded is
	// Interior shrunk by Margin on every side.
	Interior orb.Bound
	Eroded   orb.Bound

	Placed         []geom.Polygon // unbuffered; overlap tests use Buffered only
	Buffered       []geom.Polygon // buffered by half part-spacing
	candidatePts   []orb.Point
	index          *envelopeIndex
	indexBuiltSize int
}

// New creates a sheet instance with its margin-eroded interior and an
// initial candidate point seeded at the sheet-margin bottom-left
// corner.
func New(id string, thickness, width, height, margin float64) *Instance {
	interior := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{width, height}}
	eroded := orb.Bound{
		Min: orb.Point{margin, margin},
		Max: orb.Point{width - margin, height - margin},
	}
	return &Instance{
		ID:           id,
		Thickness:    thickness,
		Width:        width,
		Height:       height,
		Margin:       margin,
		Interior:     interior,
		Eroded:       eroded,
		candidatePts: []orb.Point{{margin, margin}},
	}
}

// ErodedValid reports whether the margin-eroded interior is a
// non-empty rectangle.
func (s *Instance) ErodedValid() bool {
	return s.Eroded.Max[0] > s.Eroded.Min[0] && s.Eroded.Max[1] > s.Eroded.Min[1]
}

// CandidatePoints returns the current candidate anchor cache,
// deduplicated and sorted lexicographically by (x, y).
func (s *Instance) CandidatePoints() []orb.Point {
	out := make([]orb.Point, len(s.candidatePts))
	copy(out, s.candidatePts)
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return dedupePoints(out, PointTolerance)
}

func dedupePoints(pts []orb.Point, tol float64) []orb.Point {
	var out []orb.Point
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if abs(p[0]-q[0]) < tol && abs(p[1]-q[1]) < tol {
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

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Commit absorbs a successful placement into the sheet's state: the
// unbuffered polygon, the buffered polygon for
// overlap testing, and two derived candidate points, each filtered
// against the margin and the buffered-polygon list before being added
// to the cache.
func (s *Instance) Commit(placed, buffered geom.Polygon, xBL, yBL, width, height, spacing float64) {
	s.Placed = append(s.Placed, placed)
	s.Buffered = append(s.Buffered, buffered)

	s.addCandidate(orb.Point{xBL + width + spacing, yBL})
	s.addCandidate(orb.Point{xBL, yBL + height + spacing})

	s.addCutoutAnchors(placed, spacing)

	if len(s.Buffered)-s.indexBuiltSize >= IndexThreshold {
		s.rebuildIndex()
	}
}

// addCutoutAnchors registers one extra candidate anchor per interior
// hole of a just-placed part: the bottom-left corner of the hole's
// bounding box, eroded inward by half the part-to-part spacing on
// every side. The anchor goes through addCandidate, so it is kept only
// when it lies in a hole of the buffered polygon committed with the
// part. The buffered footprints the nfp package builds carry no holes,
// so in engine runs the anchor falls inside the part's own footprint
// and is dropped, and the nfp overlap test likewise treats the hole
// area as occupied: no part is placed inside another part's hole.
func (s *Instance) addCutoutAnchors(placed geom.Polygon, spacing float64) {
	half := spacing / 2
	for _, hole := range placed.Holes {
		b := geom.Bound(hole)
		w := (b.Max[0] - b.Min[0]) - 2*half
		h := (b.Max[1] - b.Min[1]) - 2*half
		if w <= 0 || h <= 0 {
			continue
		}
		s.addCandidate(orb.Point{b.Min[0] + half, b.Min[1] + half})
	}
}

// addCandidate filters a candidate anchor point against the sheet's
// margin and the buffered-placement list before adding it to the cache.
func (s *Instance) addCandidate(p orb.Point) {
	if !s.pointInEroded(p) {
		return
	}
	if s.pointInAnyBuffered(p) {
		return
	}
	s.candidatePts = append(s.candidatePts, p)
}

func (s *Instance) pointInEroded(p orb.Point) bool {
	return p[0] >= s.Eroded.Min[0] && p[0] <= s.Eroded.Max[0] &&
		p[1] >= s.Eroded.Min[1] && p[1] <= s.Eroded.Max[1]
}

func (s *Instance) pointInAnyBuffered(p orb.Point) bool {
	path := clip.ScalePoint(p)
	for _, b := range s.Buffered {
		if !clip.PointInPath64(path, clip.ScaleRing(b.Outer)) {
			continue
		}
		inHole := false
		for _, h := range b.Holes {
			if clip.PointInPath64(path, clip.ScaleRing(h)) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// rebuildIndex rebuilds the envelope-keyed spatial index over the
// current buffered polygon list. The index is rebuilt wholesale rather
// than incrementally mutated.
func (s *Instance) rebuildIndex() {
	s.index = newEnvelopeIndex(s.Buffered)
	s.indexBuiltSize = len(s.Buffered)
}

// CandidatesNear returns the buffered polygons whose envelope may
// overlap the given bound. Below IndexThreshold placed polygons, every
// placement is tested directly instead, so this is only called once
// that many are on the sheet. If the index is stale (the buffered
// list grew since the last rebuild), it rebuilds on demand.
func (s *Instance) CandidatesNear(b orb.Bound) []geom.Polygon {
	if s.index == nil || s.indexBuiltSize != len(s.Buffered) {
		s.rebuildIndex()
	}
	return s.index.query(b, s.Buffered)
}
