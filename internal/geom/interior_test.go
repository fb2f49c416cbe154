package geom

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestInteriorPointConvexRectangle(t *testing.T) {
	ring, _ := NewRing(rectPoints(0, 0, 10, 10))
	p := InteriorPoint(ring)
	if !PointInRing(p, ring) {
		t.Fatalf("interior point %v not inside ring", p)
	}
}

func TestInteriorPointConcaveLShape(t *testing.T) {
	// An L-shape whose centroid would fall outside the ring.
	pts := []orb.Point{
		{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10},
	}
	ring, err := NewRing(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := InteriorPoint(ring)
	if !PointInRing(p, ring) {
		t.Fatalf("interior point %v not inside concave ring", p)
	}
}
