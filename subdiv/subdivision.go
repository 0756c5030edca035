package subdiv

import (
	"fmt"
	"math"

	"github.com/google/btree"

	"github.com/go-dcel/subdivision/geom"
)

// Subdivision is the frozen, read-only planar subdivision: built once by
// FromLines, then only ever queried.
type Subdivision struct {
	eps       float64
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	lookup     map[geom.PointD]int
	vertexTree *btree.BTree
}

// vertexItem orders vertices by point lex (y, x), per §4.6.
type vertexItem struct {
	point geom.PointD
	id    int
}

func (v vertexItem) Less(than btree.Item) bool {
	return v.point.Less(than.(vertexItem).point)
}

// FromLines constructs a Subdivision from an unordered collection of
// segments under tolerance eps. eps defaults to 0 when omitted.
func FromLines(segments []geom.SegmentD, eps ...float64) (*Subdivision, error) {
	e := 0.0
	if len(eps) > 0 {
		e = eps[0]
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: epsilon must be >= 0, got %g", ErrInvalidArgument, e)
	}
	if segments == nil {
		return nil, fmt.Errorf("%w: segment slice is nil", ErrInvalidArgument)
	}
	for i, seg := range segments {
		if !finite(seg.Start) || !finite(seg.End) {
			return nil, fmt.Errorf("%w: segment %d has a non-finite coordinate", ErrInvalidArgument, i)
		}
	}

	s := build(segments, e)

	s.lookup = make(map[geom.PointD]int, len(s.vertices))
	s.vertexTree = btree.New(32)
	for id, v := range s.vertices {
		s.lookup[v.Point] = id
		s.vertexTree.ReplaceOrInsert(vertexItem{point: v.Point, id: id})
	}
	return s, nil
}

func finite(p geom.PointD) bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// VertexEntry is one row of the ordered vertex view: a canonical point and
// the id of its chosen outgoing half-edge.
type VertexEntry struct {
	Point    geom.PointD
	Outgoing int
}

// Vertices returns the vertex table ordered by point lex (y, x) ascending.
func (s *Subdivision) Vertices() []VertexEntry {
	out := make([]VertexEntry, 0, s.vertexTree.Len())
	s.vertexTree.Ascend(func(item btree.Item) bool {
		vi := item.(vertexItem)
		out = append(out, VertexEntry{Point: vi.point, Outgoing: s.vertices[vi.id].Outgoing})
		return true
	})
	return out
}

// VertexByPoint looks up the outgoing half-edge id stored for the vertex at
// p, if any.
func (s *Subdivision) VertexByPoint(p geom.PointD) (int, error) {
	id, ok := s.lookup[p]
	if !ok {
		return 0, fmt.Errorf("%w: no vertex at %v", ErrNotFound, p)
	}
	return s.vertices[id].Outgoing, nil
}

// Edges returns the half-edge table, naturally ordered by id.
func (s *Subdivision) Edges() []HalfEdge {
	out := make([]HalfEdge, len(s.halfEdges))
	copy(out, s.halfEdges)
	return out
}

// EdgeAt returns the half-edge with the given id.
func (s *Subdivision) EdgeAt(id int) (HalfEdge, error) {
	if id < 0 || id >= len(s.halfEdges) {
		return HalfEdge{}, fmt.Errorf("%w: half-edge id %d", ErrOutOfRange, id)
	}
	return s.halfEdges[id], nil
}

// Faces returns the face table, naturally ordered by id (0 = unbounded).
func (s *Subdivision) Faces() []Face {
	out := make([]Face, len(s.faces))
	copy(out, s.faces)
	return out
}

// FaceAt returns the face with the given id.
func (s *Subdivision) FaceAt(id int) (Face, error) {
	if id < 0 || id >= len(s.faces) {
		return Face{}, fmt.Errorf("%w: face id %d", ErrOutOfRange, id)
	}
	return s.faces[id], nil
}

// Eps returns the tolerance the subdivision was built with.
func (s *Subdivision) Eps() float64 { return s.eps }

// CyclePolygon returns the sequence of origins walking Next from e until it
// returns to e.
func (s *Subdivision) CyclePolygon(e int) ([]geom.PointD, error) {
	if e < 0 || e >= len(s.halfEdges) {
		return nil, fmt.Errorf("%w: half-edge id %d", ErrOutOfRange, e)
	}
	return originsOf(s, walkCycle(s, e)), nil
}

// CycleArea returns the signed shoelace area of e's cycle.
func (s *Subdivision) CycleArea(e int) (float64, error) {
	pts, err := s.CyclePolygon(e)
	if err != nil {
		return 0, err
	}
	return geom.Area(pts), nil
}

// CycleCentroid returns e's cycle centroid; ok is false when the cycle has
// zero area (the centroid is undefined).
func (s *Subdivision) CycleCentroid(e int) (point geom.PointD, ok bool, err error) {
	pts, err := s.CyclePolygon(e)
	if err != nil {
		return geom.PointD{}, false, err
	}
	c, ok := geom.Centroid(pts)
	return c, ok, nil
}

// IsCycleAreaZero reports whether e's cycle has exactly zero shoelace area.
func (s *Subdivision) IsCycleAreaZero(e int) (bool, error) {
	area, err := s.CycleArea(e)
	if err != nil {
		return false, err
	}
	return area == 0, nil
}

// ZeroAreaCycles returns the representative half-edge of each zero-area
// (filament) cycle, ordered by the smallest half-edge id in the cycle.
func (s *Subdivision) ZeroAreaCycles() []int {
	visited := make([]bool, len(s.halfEdges))
	var reps []int
	for e := range s.halfEdges {
		if visited[e] {
			continue
		}
		edges := walkCycle(s, e)
		for _, c := range edges {
			visited[c] = true
		}
		if geom.Area(originsOf(s, edges)) == 0 {
			reps = append(reps, minID(edges))
		}
	}
	return reps
}
