package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func rectPoints(minX, minY, maxX, maxY float64) []orb.Point {
	return []orb.Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

func TestNewPolygonSimpleRectangle(t *testing.T) {
	p, err := NewPolygon(rectPoints(0, 0, 10, 5), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(Area(p.Outer)-50) > 1e-9 {
		t.Fatalf("area = %v, want 50", Area(p.Outer))
	}
}

func TestNewPolygonRejectsDegenerateRing(t *testing.T) {
	_, err := NewPolygon([]orb.Point{{0, 0}, {1, 0}}, nil)
	if err == nil {
		t.Fatal("expected error for degenerate ring")
	}
}

func TestNewPolygonDropsHoleOutsideOuter(t *testing.T) {
	outer := rectPoints(0, 0, 10, 10)
	hole := rectPoints(20, 20, 22, 22)
	p, err := NewPolygon(outer, [][]orb.Point{hole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Holes) != 0 {
		t.Fatalf("expected hole outside outer ring to be dropped, got %d holes", len(p.Holes))
	}
}

func TestNewPolygonKeepsHoleInsideOuter(t *testing.T) {
	outer := rectPoints(0, 0, 10, 10)
	hole := rectPoints(2, 2, 4, 4)
	p, err := NewPolygon(outer, [][]orb.Point{hole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(p.Holes))
	}
}

func TestEnsureOrientation(t *testing.T) {
	ccwRing, _ := NewRing(rectPoints(0, 0, 10, 10))
	if Area(ccwRing) <= 0 {
		t.Fatal("expected rectPoints to already be CCW")
	}
	cw := Reverse(ccwRing)
	fixed := EnsureOrientation(cw, true)
	if Area(fixed) <= 0 {
		t.Fatal("expected EnsureOrientation to restore CCW")
	}
}

func TestPolygonTranslateAndRotate(t *testing.T) {
	p, err := NewPolygon(rectPoints(0, 0, 10, 5), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moved := p.Translate(3, 4)
	b := PolygonBound(moved)
	if math.Abs(b.Min[0]-3) > 1e-9 || math.Abs(b.Min[1]-4) > 1e-9 {
		t.Fatalf("unexpected translated bound: %v", b)
	}

	rotated := p.Rotate(90)
	rb := PolygonBound(rotated)
	if math.Abs((rb.Max[0]-rb.Min[0])-5) > 1e-6 || math.Abs((rb.Max[1]-rb.Min[1])-10) > 1e-6 {
		t.Fatalf("expected width/height to swap after 90deg rotation, got %v", rb)
	}
}

func TestPointInRing(t *testing.T) {
	ring, _ := NewRing(rectPoints(0, 0, 10, 10))
	if !PointInRing(orb.Point{5, 5}, ring) {
		t.Fatal("expected point inside ring")
	}
	if PointInRing(orb.Point{15, 5}, ring) {
		t.Fatal("expected point outside ring")
	}
}

func TestDistanceToRing(t *testing.T) {
	ring, _ := NewRing(rectPoints(0, 0, 10, 10))
	d := DistanceToRing(orb.Point{5, 0}, ring)
	if math.Abs(d) > 1e-9 {
		t.Fatalf("expected point on edge to have distance 0, got %v", d)
	}
	d2 := DistanceToRing(orb.Point{-3, 5}, ring)
	if math.Abs(d2-3) > 1e-9 {
		t.Fatalf("expected distance 3, got %v", d2)
	}
}
