package clip

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func square(minX, minY, maxX, maxY float64) orb.Ring {
	return orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}
}

func TestScaleRoundTrip(t *testing.T) {
	r := square(0, 0, 10, 5)
	path := ScaleRing(r)
	back := UnscaleRing(path)
	if len(back) != len(r) {
		t.Fatalf("round trip length mismatch: got %d want %d", len(back), len(r))
	}
	for i := range r {
		if math.Abs(back[i][0]-r[i][0]) > 1e-9 || math.Abs(back[i][1]-r[i][1]) > 1e-9 {
			t.Fatalf("point %d mismatch: got %v want %v", i, back[i], r[i])
		}
	}
}

func TestArea64Rectangle(t *testing.T) {
	path := ScaleRing(square(0, 0, 10, 5))
	area := Area64(path) / (Scale * Scale)
	if math.Abs(area-50) > 1e-6 {
		t.Fatalf("area = %v, want 50", area)
	}
}

func TestPointInPath64(t *testing.T) {
	path := ScaleRing(square(0, 0, 10, 10))
	inside := ScalePoint(orb.Point{5, 5})
	outside := ScalePoint(orb.Point{15, 5})
	if !PointInPath64(inside, path) {
		t.Fatal("expected point to be inside")
	}
	if PointInPath64(outside, path) {
		t.Fatal("expected point to be outside")
	}
}

func TestRectClipFullyInside(t *testing.T) {
	path := ScaleRing(square(2, 2, 4, 4))
	clipped := RectClip(path, 0, 0, int64(10*Scale), int64(10*Scale))
	area := Area64(clipped) / (Scale * Scale)
	if math.Abs(math.Abs(area)-4) > 1e-6 {
		t.Fatalf("area = %v, want 4", area)
	}
}

func TestRectClipPartialOverlap(t *testing.T) {
	path := ScaleRing(square(-5, -5, 5, 5))
	clipped := RectClip(path, 0, 0, int64(10*Scale), int64(10*Scale))
	area := Area64(clipped) / (Scale * Scale)
	if math.Abs(math.Abs(area)-25) > 1e-6 {
		t.Fatalf("area = %v, want 25", area)
	}
}

func TestRectClipNoOverlap(t *testing.T) {
	path := ScaleRing(square(100, 100, 110, 110))
	clipped := RectClip(path, 0, 0, int64(10*Scale), int64(10*Scale))
	if len(clipped) != 0 {
		t.Fatalf("expected empty clip, got %d points", len(clipped))
	}
}

func TestInflateRoundGrowsArea(t *testing.T) {
	path := ScaleRing(square(0, 0, 10, 10))
	inflated := InflateRound(path, 1*Scale)
	area := math.Abs(Area64(inflated)) / (Scale * Scale)
	if area <= 100 {
		t.Fatalf("expected inflated area > 100, got %v", area)
	}
}

func TestInflateRoundShrinksArea(t *testing.T) {
	path := ScaleRing(square(0, 0, 10, 10))
	shrunk := InflateRound(path, -1*Scale)
	area := math.Abs(Area64(shrunk)) / (Scale * Scale)
	if area >= 100 {
		t.Fatalf("expected shrunk area < 100, got %v", area)
	}
}

func TestIntersectionAreaOverlapping(t *testing.T) {
	a := ScaleRing(square(0, 0, 10, 10))
	b := ScaleRing(square(5, 5, 15, 15))
	area := IntersectionArea(a, b)
	if math.Abs(area-25) > 1e-3 {
		t.Fatalf("intersection area = %v, want 25", area)
	}
}

func TestIntersectionAreaDisjoint(t *testing.T) {
	a := ScaleRing(square(0, 0, 10, 10))
	b := ScaleRing(square(100, 100, 110, 110))
	area := IntersectionArea(a, b)
	if area != 0 {
		t.Fatalf("intersection area = %v, want 0", area)
	}
}

func TestIntersectionAreaContainment(t *testing.T) {
	outer := ScaleRing(square(0, 0, 10, 10))
	inner := ScaleRing(square(2, 2, 8, 8))
	area := IntersectionArea(outer, inner)
	if math.Abs(area-36) > 1e-3 {
		t.Fatalf("intersection area = %v, want 36", area)
	}
}
