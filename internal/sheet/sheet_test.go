package sheet

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/piwi3910/nestkit/internal/geom"
)

func rectPts(minX, minY, maxX, maxY float64) []orb.Point {
	return []orb.Point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
}

func TestNewSeedsMarginCandidate(t *testing.T) {
	s := New("s1", 18, 1000, 500, 10)
	pts := s.CandidatePoints()
	if len(pts) != 1 {
		t.Fatalf("expected 1 seeded candidate, got %d", len(pts))
	}
	if pts[0][0] != 10 || pts[0][1] != 10 {
		t.Fatalf("expected seed at (10,10), got %v", pts[0])
	}
}

func TestErodedValid(t *testing.T) {
	s := New("s1", 18, 1000, 500, 10)
	if !s.ErodedValid() {
		t.Fatal("expected eroded interior to be valid")
	}
	tooSmall := New("s2", 18, 5, 5, 10)
	if tooSmall.ErodedValid() {
		t.Fatal("expected eroded interior smaller than margin to be invalid")
	}
}

func TestCommitAddsPlacedAndBuffered(t *testing.T) {
	s := New("s1", 18, 1000, 500, 10)
	outer, err := geom.NewPolygon(rectPts(10, 10, 60, 40), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Commit(outer, outer, 10, 10, 50, 30, 4)
	if len(s.Placed) != 1 || len(s.Buffered) != 1 {
		t.Fatalf("expected 1 placed and 1 buffered polygon, got %d/%d", len(s.Placed), len(s.Buffered))
	}
}

func TestCommitRegistersCutoutAnchor(t *testing.T) {
	s := New("s1", 18, 1000, 500, 10)
	hole := []orb.Point{{30, 30}, {70, 30}, {70, 70}, {30, 70}}
	withHole, err := geom.NewPolygon(rectPts(10, 10, 90, 90), [][]orb.Point{hole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Commit(withHole, withHole, 10, 10, 80, 80, 4)

	pts := s.CandidatePoints()
	found := false
	for _, p := range pts {
		if p[0] == 32 && p[1] == 32 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a cutout anchor at (32,32) eroded by half spacing, got %v", pts)
	}
}

func TestCommitSkipsCutoutAnchorWhenHoleTooSmall(t *testing.T) {
	s := New("s1", 18, 1000, 500, 10)
	hole := []orb.Point{{30, 30}, {32, 30}, {32, 32}, {30, 32}}
	withHole, err := geom.NewPolygon(rectPts(10, 10, 90, 90), [][]orb.Point{hole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(s.CandidatePoints())
	s.Commit(withHole, withHole, 10, 10, 80, 80, 4)
	after := s.CandidatePoints()
	if len(after) != before+2 {
		t.Fatalf("expected only the 2 edge-derived candidates (hole too small to erode), got %d new points", len(after)-before)
	}
}

func TestCommitTriggersIndexRebuildAtThreshold(t *testing.T) {
	s := New("s1", 18, 10000, 10000, 10)
	for i := 0; i < IndexThreshold; i++ {
		x := 10 + float64(i)*20
		outer, err := geom.NewPolygon(rectPts(x, 10, x+15, 25), nil)
		if err != nil {
			t.Fatalf("unexpected error at i=%d: %v", i, err)
		}
		s.Commit(outer, outer, x, 10, 15, 15, 4)
	}
	if s.index == nil {
		t.Fatal("expected index to be built after reaching IndexThreshold commits")
	}
}
