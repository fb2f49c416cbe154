package simplify

import (
	"math"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
)

// LowSegmentThreshold is the exterior edge count at or below which the
// discrete equi-angular override applies instead of the OBB/edge-
// direction set.
const LowSegmentThreshold = 10

// CandidateAngles returns the rotation angles (degrees) a simplified
// part polygon should be tried at.
func CandidateAngles(ring orb.Ring) []float64 {
	pts := ring
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)

	if n <= LowSegmentThreshold {
		return lowSegmentOverride(n)
	}

	var angles []float64
	obb := MinRotatedRectAngle(ring)
	angles = append(angles, normalizeAngle(obb), normalizeAngle(obb+90))

	for _, dir := range uniqueSegmentDirections(pts) {
		angles = append(angles, normalizeAngle(-dir), normalizeAngle(-dir+90))
	}

	return dedupeAngles(angles)
}

// uniqueSegmentDirections returns each exterior edge's direction in
// degrees, modulo 180 (a segment and its reverse share a direction),
// deduplicated to 2 decimals. Used only to seed the edge-direction
// candidate set above LowSegmentThreshold; the override below this
// threshold is keyed on the raw edge count, not this dedup.
func uniqueSegmentDirections(pts []orb.Point) []float64 {
	n := len(pts)
	seen := map[string]bool{}
	var dirs []float64
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dx, dy := b[0]-a[0], b[1]-a[1]
		if dx == 0 && dy == 0 {
			continue
		}
		angle := math.Atan2(dy, dx) * 180 / math.Pi
		mod := math.Mod(angle, 180)
		if mod < 0 {
			mod += 180
		}
		key := roundKey(mod)
		if seen[key] {
			continue
		}
		seen[key] = true
		dirs = append(dirs, mod)
	}
	return dirs
}

func roundKey(v float64) string {
	r := math.Round(v*100) / 100
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// lowSegmentOverride implements the discrete equi-angular sweep for
// polygons with a small unique-segment count.
func lowSegmentOverride(n int) []float64 {
	if n == 0 {
		return []float64{0}
	}
	var angles []float64
	if n%2 == 0 {
		step := 180.0 / float64(n/2)
		for i := 0; i < n/2; i++ {
			angles = append(angles, normalizeAngle(float64(i)*step))
		}
	} else {
		step := 360.0 / float64(n)
		for i := 0; i < n; i++ {
			angles = append(angles, normalizeAngle(float64(i)*step))
		}
	}
	return dedupeAngles(angles)
}

func dedupeAngles(angles []float64) []float64 {
	sort.Float64s(angles)
	var out []float64
	for _, a := range angles {
		r := math.Round(a*100) / 100
		if len(out) == 0 || math.Abs(out[len(out)-1]-r) > 1e-9 {
			out = append(out, r)
		}
	}
	return out
}
