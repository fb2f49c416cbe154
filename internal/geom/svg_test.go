package geom

import "testing"

func TestSVGPathFormat(t *testing.T) {
	ring, _ := NewRing(rectPoints(0, 0, 10, 5))
	path := SVGPath(ring)
	want := "M 0.00,0.00 L 10.00,0.00 L 10.00,5.00 L 0.00,5.00 L 0.00,0.00 Z"
	if path != want {
		t.Fatalf("SVGPath = %q, want %q", path, want)
	}
}

func TestSVGPathEmpty(t *testing.T) {
	if SVGPath(nil) != "" {
		t.Fatal("expected empty ring to produce empty path string")
	}
}
