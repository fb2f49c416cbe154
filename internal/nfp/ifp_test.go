package nfp

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/clip"
	"github.com/piwi3910/nestkit/internal/geom"
	"github.com/piwi3910/nestkit/internal/sheet"
)

func rectPts(minX, minY, maxX, maxY float64) []orb.Point {
	return []orb.Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

func TestComputeEmptySheetGivesShrunkRectangle(t *testing.T) {
	s := sheet.New("s1", 18, 1000, 500, 10)
	f := Compute(s, 4)
	if f.Empty() {
		t.Fatal("expected non-empty IFP on an empty sheet")
	}
	if len(f.Holes) != 0 {
		t.Fatalf("expected no holes on an empty sheet, got %d", len(f.Holes))
	}

	minX, _, _, _ := clip.Bounds64(f.Outer)
	delta := math.Max(4.0/2+Epsilon, MinOffset)
	wantMinX := (10 + delta) * clip.Scale
	if math.Abs(float64(minX)-wantMinX) > clip.Scale*1e-3 {
		t.Fatalf("outer minX = %v, want ~%v", minX, wantMinX)
	}
}

func TestComputeWithObstacleProducesHole(t *testing.T) {
	s := sheet.New("s1", 18, 1000, 500, 10)
	placed, err := geom.NewPolygon(rectPts(50, 50, 100, 100), nil)
	if err != nil {
		t.Fatalf("unexpected error building obstacle: %v", err)
	}
	s.Commit(placed, placed, 50, 50, 50, 50, 4)

	f := Compute(s, 4)
	if len(f.Holes) != 1 {
		t.Fatalf("expected 1 hole for the placed obstacle, got %d", len(f.Holes))
	}
}

func TestPointInsideRespectsHoles(t *testing.T) {
	s := sheet.New("s1", 18, 1000, 500, 10)
	placed, err := geom.NewPolygon(rectPts(50, 50, 100, 100), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Commit(placed, placed, 50, 50, 50, 50, 4)

	f := Compute(s, 4)
	insideHole := clip.ScalePoint(orb.Point{75, 75})
	if f.PointInside(insideHole) {
		t.Fatal("point inside placed obstacle should not be a valid IFP locus")
	}

	farAway := clip.ScalePoint(orb.Point{500, 300})
	if !f.PointInside(farAway) {
		t.Fatal("point far from any obstacle should be inside the IFP locus")
	}
}
