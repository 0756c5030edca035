package subdiv

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/go-dcel/subdivision/geom"
)

// segKey is the (start, end) lex key toSegments orders its output by.
type segKey struct {
	start, end geom.PointD
}

func compareSegKeys(a, b interface{}) int {
	ka, kb := a.(segKey), b.(segKey)
	switch {
	case ka.start.Less(kb.start):
		return -1
	case kb.start.Less(ka.start):
		return 1
	case ka.end.Less(kb.end):
		return -1
	case kb.end.Less(ka.end):
		return 1
	default:
		return 0
	}
}

// ToSegments: for each pair of twin half-edges, emit
// one segment (origin(e), origin(twin(e))) with e chosen as the lex-smaller
// origin, ordered ascending by (start, end) lex. Half-edges are always
// appended in twin pairs by the builder, so i, i+1 walks every pair exactly
// once; emirpasic/gods' red-black tree does the sort-and-dedup in one pass.
func (s *Subdivision) ToSegments() []geom.SegmentD {
	tree := redblacktree.NewWith(compareSegKeys)
	for i := 0; i+1 < len(s.halfEdges); i += 2 {
		a := s.vertices[s.halfEdges[i].Origin].Point
		b := s.vertices[s.halfEdges[i+1].Origin].Point
		if b.Less(a) {
			a, b = b, a
		}
		tree.Put(segKey{start: a, end: b}, geom.SegmentD{Start: a, End: b})
	}

	out := make([]geom.SegmentD, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().(geom.SegmentD))
	}
	return out
}
