package subdiv

import "github.com/go-dcel/subdivision/geom"

// HalfEdge is one directed side of a sub-segment. Ids are dense, zero-based,
// assigned in construction order (§4.6): indices into Subdivision.halfEdges.
type HalfEdge struct {
	Origin int // vertex id
	Twin   int // half-edge id of the opposite direction
	Face   int // face id incident to the left of this half-edge's direction
	Next   int // half-edge id, ccw around Face starting at destination
	Prev   int // half-edge id, inverse of Next
}

// destination returns the vertex id this half-edge points to.
func (s *Subdivision) destination(e int) int {
	return s.halfEdges[s.halfEdges[e].Twin].Origin
}

// Vertex is a canonical point plus the id of one outgoing half-edge.
type Vertex struct {
	Point    geom.PointD
	Outgoing int // half-edge id, -1 until Step 6 assigns one
}

// Face is a connected region of the plane. OuterEdge is -1 for the unbounded
// face (id 0); InnerEdges holds one half-edge per hole or filament it owns.
type Face struct {
	OuterEdge  int
	InnerEdges []int
}
