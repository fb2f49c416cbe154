package clip

import (
	"math"
	"sort"
)

// node is a vertex in one of the two Greiner-Hormann working lists.
// next/prev index within the owning list; neighbor indexes into the
// OTHER list and is set only on intersection nodes.
type node struct {
	pt       Point64
	next     int
	prev     int
	neighbor int
	isInter  bool
	entry    bool
	visited  bool
}

const maxTraceSteps = 100000

// IntersectionArea returns the total area common to two simple (possibly
// non-convex) rings, using the Greiner-Hormann polygon clipping
// algorithm. It is used by the placement loop's overlap-legality check
// where both operands are round-buffered part
// envelopes that RectClip's convex-only method cannot handle.
//
// Degenerate inputs (exactly touching edges, duplicate vertices at an
// intersection) are treated conservatively: such near-coincident
// crossings are dropped rather than causing a trace failure, which can
// under-count a hairline overlap. That trade-off is acceptable because
// candidate placements also carry their own part-to-part spacing
// margin, so a true collision is never a hairline one.
func IntersectionArea(subjPath, clipPath Path64) float64 {
	if !boundsOverlap(subjPath, clipPath) {
		return 0
	}
	loops := PolygonIntersection(subjPath, clipPath)
	var total float64
	for _, l := range loops {
		a := Area64(l)
		if a < 0 {
			a = -a
		}
		total += a
	}
	return total / (Scale * Scale)
}

// PolygonIntersection returns the set of rings forming the intersection
// of two simple polygons, in scaled integer coordinates.
func PolygonIntersection(subjPath, clipPath Path64) Paths64 {
	subj := buildList(subjPath)
	clip := buildList(clipPath)

	ns := len(subjPath)
	nc := len(clipPath)

	type pending struct {
		alpha float64
		pt    Point64
	}
	subjEdgeHits := make([][]pending, ns)
	clipEdgeHits := make([][]pending, nc)

	// Collect raw intersections per edge pair first (geometry only);
	// linked-list insertion happens after alpha-sorting each edge.
	type rawHit struct {
		si, ci int
		ta, tb float64
		pt     Point64
	}
	var raw []rawHit

	for i := 0; i < ns; i++ {
		a0 := subjPath[i]
		a1 := subjPath[(i+1)%ns]
		for j := 0; j < nc; j++ {
			b0 := clipPath[j]
			b1 := clipPath[(j+1)%nc]
			ok, ta, tb, pt := segIntersect(a0, a1, b0, b1)
			if ok {
				raw = append(raw, rawHit{i, j, ta, tb, pt})
			}
		}
	}

	if len(raw) == 0 {
		return containmentFallback(subjPath, clipPath)
	}

	for _, h := range raw {
		subjEdgeHits[h.si] = append(subjEdgeHits[h.si], pending{h.ta, h.pt})
		clipEdgeHits[h.ci] = append(clipEdgeHits[h.ci], pending{h.tb, h.pt})
	}

	subj = insertIntersections(subj, subjEdgeHits)
	clip = insertIntersections(clip, clipEdgeHits)

	linkNeighbors(subj, clip)

	markEntries(subj, clipPath)
	markEntries(clip, subjPath)

	return traceIntersection(subj, clip)
}

func buildList(path Path64) []node {
	n := len(path)
	list := make([]node, n)
	for i := 0; i < n; i++ {
		list[i] = node{pt: path[i], next: (i + 1) % n, prev: (i - 1 + n) % n, neighbor: -1}
	}
	return list
}

// insertIntersections splices intersection nodes (alpha-sorted) into
// each edge of list, returning the expanded list.
func insertIntersections(list []node, edgeHits [][]pending) []node {
	out := make([]node, 0, len(list)*2)
	n := len(list)
	for i := 0; i < n; i++ {
		out = append(out, node{pt: list[i].pt, neighbor: -1})
		hits := append([]pending{}, edgeHits[i]...)
		sort.Slice(hits, func(a, b int) bool { return hits[a].alpha < hits[b].alpha })
		for _, h := range hits {
			out = append(out, node{pt: h.pt, isInter: true, neighbor: -1})
		}
	}
	m := len(out)
	for i := range out {
		out[i].next = (i + 1) % m
		out[i].prev = (i - 1 + m) % m
	}
	return out
}

// linkNeighbors pairs up intersection nodes between the two lists that
// sit at (near-)identical points — the two copies Greiner-Hormann keeps
// of each crossing.
func linkNeighbors(subj, clip []node) {
	for i := range subj {
		if !subj[i].isInter || subj[i].neighbor >= 0 {
			continue
		}
		for j := range clip {
			if !clip[j].isInter || clip[j].neighbor >= 0 {
				continue
			}
			if subj[i].pt == clip[j].pt {
				subj[i].neighbor = j
				clip[j].neighbor = i
				break
			}
		}
	}
}

func markEntries(list []node, other Path64) {
	if len(list) == 0 {
		return
	}
	status := !PointInPath64(list[0].pt, other)
	for i := range list {
		if list[i].isInter {
			list[i].entry = status
			status = !status
		}
	}
}

func containmentFallback(subjPath, clipPath Path64) Paths64 {
	if len(subjPath) == 0 || len(clipPath) == 0 {
		return nil
	}
	if PointInPath64(subjPath[0], clipPath) {
		return Paths64{subjPath}
	}
	if PointInPath64(clipPath[0], subjPath) {
		return Paths64{clipPath}
	}
	return nil
}

func traceIntersection(subj, clip []node) Paths64 {
	var result Paths64
	steps := 0
	for start := range subj {
		if subj[start].visited {
			continue
		}
		if !subj[start].isInter {
			continue
		}
		var loop Path64
		cur := start
		onSubj := true
		for {
			steps++
			if steps > maxTraceSteps {
				break
			}
			list := subj
			if !onSubj {
				list = clip
			}
			if list[cur].visited {
				break
			}
			list[cur].visited = true
			loop = append(loop, list[cur].pt)
			if list[cur].entry {
				for {
					cur = list[cur].next
					loop = append(loop, list[cur].pt)
					if list[cur].isInter {
						break
					}
				}
			} else {
				for {
					cur = list[cur].prev
					loop = append(loop, list[cur].pt)
					if list[cur].isInter {
						break
					}
				}
			}
			list[cur].visited = true
			nb := list[cur].neighbor
			if nb < 0 {
				break
			}
			onSubj = !onSubj
			cur = nb
			if onSubj && cur == start {
				break
			}
		}
		if len(loop) >= 3 {
			result = append(result, loop)
		}
	}
	return result
}

// segIntersect returns the intersection of open segments (a0,a1) and
// (b0,b1), excluding endpoint-only touches, plus each segment's
// parametric position of the crossing.
func segIntersect(a0, a1, b0, b1 Point64) (ok bool, ta, tb float64, pt Point64) {
	rx := float64(a1.X - a0.X)
	ry := float64(a1.Y - a0.Y)
	sx := float64(b1.X - b0.X)
	sy := float64(b1.Y - b0.Y)

	denom := rx*sy - ry*sx
	if math.Abs(denom) < 1e-9 {
		return false, 0, 0, Point64{}
	}
	qpx := float64(b0.X - a0.X)
	qpy := float64(b0.Y - a0.Y)

	t := (qpx*sy - qpy*sx) / denom
	u := (qpx*ry - qpy*rx) / denom

	const eps = 1e-7
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return false, 0, 0, Point64{}
	}
	x := float64(a0.X) + t*rx
	y := float64(a0.Y) + t*ry
	return true, t, u, Point64{int64(math.Round(x)), int64(math.Round(y))}
}
