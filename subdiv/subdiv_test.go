package subdiv

import (
	"math"
	"testing"

	"github.com/go-dcel/subdivision/geom"
)

func seg(x1, y1, x2, y2 float64) geom.SegmentD {
	return geom.SegmentD{Start: geom.PointD{X: x1, Y: y1}, End: geom.PointD{X: x2, Y: y2}}
}

// assertUniversalProperties checks the structural invariants every
// successfully constructed subdivision must hold.
func assertUniversalProperties(t *testing.T, s *Subdivision) {
	t.Helper()
	edges := s.Edges()
	for e, he := range edges {
		if he.Twin == e {
			t.Errorf("half-edge %d is its own twin", e)
		}
		if edges[he.Twin].Twin != e {
			t.Errorf("twin(twin(%d)) != %d", e, e)
		}
		dest := edges[he.Twin].Origin
		if edges[he.Next].Origin != dest {
			t.Errorf("origin(next(%d)) != destination(%d)", e, e)
		}
		if edges[he.Next].Face != he.Face {
			t.Errorf("face(next(%d)) != face(%d)", e, e)
		}
	}
	for e := range edges {
		cur := e
		closed := false
		for i := 0; i <= len(edges); i++ {
			cur = edges[cur].Next
			if cur == e {
				closed = true
				break
			}
		}
		if !closed {
			t.Errorf("next-cycle from %d did not close", e)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() on fresh construction: %v", err)
	}
}

func TestParallelSegments(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(-1, -2, 1, -2),
		seg(-1, 2, 1, 2),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
	if got := len(s.Edges()); got != 4 {
		t.Errorf("half-edge count = %d, want 4", got)
	}
	if got := len(s.Faces()); got != 1 {
		t.Errorf("face count = %d, want 1", got)
	}
	if got := len(s.ZeroAreaCycles()); got != 2 {
		t.Errorf("zero-area cycle count = %d, want 2", got)
	}
}

func TestSquare(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(-1, -2, -1, 2),
		seg(-1, 2, 1, 2),
		seg(1, 2, 1, -2),
		seg(1, -2, -1, -2),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
	if got := len(s.Edges()); got != 8 {
		t.Errorf("half-edge count = %d, want 8", got)
	}
	if got := len(s.Faces()); got != 2 {
		t.Fatalf("face count = %d, want 2", got)
	}
	if got := len(s.ZeroAreaCycles()); got != 0 {
		t.Errorf("zero-area cycle count = %d, want 0", got)
	}

	face := s.Faces()[1]
	area, err := s.CycleArea(face.OuterEdge)
	if err != nil {
		t.Fatalf("CycleArea: %v", err)
	}
	if math.Abs(math.Abs(area)-8) > 1e-9 {
		t.Errorf("bounded face area = %v, want |8|", area)
	}
}

func TestSquareEpsilonPerturbed(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(-1.05, -2.02, -0.98, 1.97),
		seg(-0.98, 1.97, 1.03, 2.04),
		seg(1.03, 2.04, 0.96, -1.96),
		seg(0.96, -1.96, -1.05, -2.02),
	}, 0.2)
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
	if got := len(s.Edges()); got != 8 {
		t.Errorf("half-edge count = %d, want 8", got)
	}
	if got := len(s.Faces()); got != 2 {
		t.Errorf("face count = %d, want 2", got)
	}
	if got := len(s.ZeroAreaCycles()); got != 0 {
		t.Errorf("zero-area cycle count = %d, want 0", got)
	}
}

func TestStar(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(0, 0, -1, -2),
		seg(0, 0, -1, 2),
		seg(0, 0, 1, 2),
		seg(0, 0, 1, -2),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 5 {
		t.Errorf("vertex count = %d, want 5", got)
	}
	if got := len(s.Edges()); got != 8 {
		t.Errorf("half-edge count = %d, want 8", got)
	}
	if got := len(s.Faces()); got != 1 {
		t.Errorf("face count = %d, want 1", got)
	}
	zero := s.ZeroAreaCycles()
	if len(zero) != 1 {
		t.Fatalf("zero-area cycle count = %d, want 1", len(zero))
	}
	poly, err := s.CyclePolygon(zero[0])
	if err != nil {
		t.Fatalf("CyclePolygon: %v", err)
	}
	if len(poly) != 8 {
		t.Errorf("zero-area cycle length = %d, want 8", len(poly))
	}
}

func TestTriforce(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(-5, -4, 0, 6),
		seg(0, 6, 5, -4),
		seg(5, -4, -5, -4),
		seg(-1, 2, 1, 2),
		seg(1, 2, 0, 0),
		seg(0, 0, -1, 2),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 6 {
		t.Errorf("vertex count = %d, want 6", got)
	}
	if got := len(s.Edges()); got != 12 {
		t.Errorf("half-edge count = %d, want 12", got)
	}
	if got := len(s.Faces()); got != 3 {
		t.Fatalf("face count = %d, want 3", got)
	}

	var outerArea, innerArea float64
	var outerCentroid, innerCentroid geom.PointD
	for _, f := range s.Faces()[1:] {
		area, err := s.CycleArea(f.OuterEdge)
		if err != nil {
			t.Fatalf("CycleArea: %v", err)
		}
		centroid, ok, err := s.CycleCentroid(f.OuterEdge)
		if err != nil || !ok {
			t.Fatalf("CycleCentroid: ok=%v err=%v", ok, err)
		}
		if math.Abs(area) > 10 {
			outerArea, outerCentroid = area, centroid
		} else {
			innerArea, innerCentroid = area, centroid
		}
	}

	if math.Abs(math.Abs(outerArea)-50) > 1e-9 {
		t.Errorf("outer area = %v, want |50|", outerArea)
	}
	if !pointsClose(outerCentroid, geom.PointD{X: 0, Y: -2.0 / 3.0}, 1e-9) {
		t.Errorf("outer centroid = %v, want (0, -2/3)", outerCentroid)
	}
	if math.Abs(math.Abs(innerArea)-2) > 1e-9 {
		t.Errorf("inner area = %v, want |2|", innerArea)
	}
	if !pointsClose(innerCentroid, geom.PointD{X: 0, Y: 4.0 / 3.0}, 1e-9) {
		t.Errorf("inner centroid = %v, want (0, 4/3)", innerCentroid)
	}
}

func TestDiamond(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(0, -4, -6, 0),
		seg(0, -4, -3, 0),
		seg(0, -4, 3, 0),
		seg(0, -4, 6, 0),
		seg(0, 4, -6, 0),
		seg(0, 4, -3, 0),
		seg(0, 4, 3, 0),
		seg(0, 4, 6, 0),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}
	assertUniversalProperties(t, s)

	if got := len(s.Vertices()); got != 6 {
		t.Errorf("vertex count = %d, want 6", got)
	}
	if got := len(s.Edges()); got != 16 {
		t.Errorf("half-edge count = %d, want 16", got)
	}
	if got := len(s.Faces()); got != 4 {
		t.Fatalf("face count = %d, want 4", got)
	}

	var bounded []float64
	for _, f := range s.Faces()[1:] {
		area, err := s.CycleArea(f.OuterEdge)
		if err != nil {
			t.Fatalf("CycleArea: %v", err)
		}
		bounded = append(bounded, math.Abs(area))
	}
	want := map[float64]int{12: 2, 24: 1}
	got := map[float64]int{}
	for _, a := range bounded {
		got[a]++
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("bounded face areas = %v, want counts %v", bounded, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := FromLines([]geom.SegmentD{
		seg(-5, -4, 0, 6),
		seg(0, 6, 5, -4),
		seg(5, -4, -5, -4),
		seg(-1, 2, 1, 2),
		seg(1, 2, 0, 0),
		seg(0, 0, -1, 2),
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}

	rebuilt, err := FromLines(s.ToSegments())
	if err != nil {
		t.Fatalf("FromLines(round-trip): %v", err)
	}

	if len(rebuilt.Vertices()) != len(s.Vertices()) {
		t.Errorf("round-trip vertex count = %d, want %d", len(rebuilt.Vertices()), len(s.Vertices()))
	}
	if len(rebuilt.Faces()) != len(s.Faces()) {
		t.Errorf("round-trip face count = %d, want %d", len(rebuilt.Faces()), len(s.Faces()))
	}
	if len(rebuilt.Edges()) != len(s.Edges()) {
		t.Errorf("round-trip half-edge count = %d, want %d", len(rebuilt.Edges()), len(s.Edges()))
	}
}

func TestFromLinesRejectsInvalidArgument(t *testing.T) {
	if _, err := FromLines(nil, -1); err == nil {
		t.Fatal("expected error for negative eps")
	}
	if _, err := FromLines([]geom.SegmentD{seg(0, 0, math.Inf(1), 0)}); err == nil {
		t.Fatal("expected error for non-finite coordinate")
	}
}

func pointsClose(a, b geom.PointD, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
