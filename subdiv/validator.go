package subdiv

import (
	"fmt"
	"math"
)

// Validate checks the structural invariants of the data model (twins,
// next/face consistency, closed cycles, face ids, vertex outgoing edges,
// segment ordering, vertex separation) and returns the first one it finds
// violated, wrapped in ErrInvariantViolation. It does not check the signed
// area of each face's cycles, nor that distinct edges overlap in at most a
// point. A clean construction never fails this; it exists for tests and for
// callers who want self-checking construction.
func (s *Subdivision) Validate() error {
	if err := s.validateTwins(); err != nil {
		return err
	}
	if err := s.validateNextFace(); err != nil {
		return err
	}
	if err := s.validateCyclesFinite(); err != nil {
		return err
	}
	if err := s.validateFaceAssignment(); err != nil {
		return err
	}
	if err := s.validateVertexOutgoing(); err != nil {
		return err
	}
	if err := s.validateEdgeOrder(); err != nil {
		return err
	}
	if err := s.validateVertexSeparation(); err != nil {
		return err
	}
	return nil
}

// validateTwins checks invariant 1: even half-edge count, twin is a
// fixed-point-free involution.
func (s *Subdivision) validateTwins() error {
	if len(s.halfEdges)%2 != 0 {
		return fmt.Errorf("%w: half-edge count %d is odd", ErrInvariantViolation, len(s.halfEdges))
	}
	for e, he := range s.halfEdges {
		if he.Twin == e {
			return fmt.Errorf("%w: half-edge %d is its own twin", ErrInvariantViolation, e)
		}
		if he.Twin < 0 || he.Twin >= len(s.halfEdges) {
			return fmt.Errorf("%w: half-edge %d has out-of-range twin %d", ErrInvariantViolation, e, he.Twin)
		}
		if s.halfEdges[he.Twin].Twin != e {
			return fmt.Errorf("%w: twin(twin(%d)) != %d", ErrInvariantViolation, e, e)
		}
	}
	return nil
}

// validateNextFace checks invariant 2: origin(next(e)) = destination(e) and
// face(next(e)) = face(e).
func (s *Subdivision) validateNextFace() error {
	for e, he := range s.halfEdges {
		if he.Next < 0 || he.Next >= len(s.halfEdges) {
			return fmt.Errorf("%w: half-edge %d has out-of-range next %d", ErrInvariantViolation, e, he.Next)
		}
		if he.Prev < 0 || he.Prev >= len(s.halfEdges) {
			return fmt.Errorf("%w: half-edge %d has out-of-range prev %d", ErrInvariantViolation, e, he.Prev)
		}
		if s.halfEdges[he.Next].Origin != s.destination(e) {
			return fmt.Errorf("%w: origin(next(%d)) != destination(%d)", ErrInvariantViolation, e, e)
		}
		if s.halfEdges[he.Next].Face != he.Face {
			return fmt.Errorf("%w: face(next(%d)) != face(%d)", ErrInvariantViolation, e, e)
		}
		if s.halfEdges[he.Prev].Next != e {
			return fmt.Errorf("%w: next(prev(%d)) != %d", ErrInvariantViolation, e, e)
		}
	}
	return nil
}

// validateCyclesFinite checks invariant 3: walking next from any half-edge
// returns to it within len(halfEdges) steps.
func (s *Subdivision) validateCyclesFinite() error {
	n := len(s.halfEdges)
	for e := range s.halfEdges {
		cur := e
		closed := false
		for i := 0; i <= n; i++ {
			cur = s.halfEdges[cur].Next
			if cur == e {
				closed = true
				break
			}
		}
		if !closed {
			return fmt.Errorf("%w: next-cycle from half-edge %d did not close within %d steps", ErrInvariantViolation, e, n+1)
		}
	}
	return nil
}

// validateFaceAssignment checks invariant 5 and the face-id part of
// invariant 4: every half-edge has a valid face, face 0 is unbounded with no
// outerEdge, every other face has one.
func (s *Subdivision) validateFaceAssignment() error {
	if len(s.faces) == 0 || s.faces[0].OuterEdge != -1 {
		return fmt.Errorf("%w: face 0 must be unbounded with no outerEdge", ErrInvariantViolation)
	}
	for id, f := range s.faces[1:] {
		if f.OuterEdge < 0 || f.OuterEdge >= len(s.halfEdges) {
			return fmt.Errorf("%w: face %d has no valid outerEdge", ErrInvariantViolation, id+1)
		}
	}
	for e, he := range s.halfEdges {
		if he.Face < 0 || he.Face >= len(s.faces) {
			return fmt.Errorf("%w: half-edge %d has no valid face", ErrInvariantViolation, e)
		}
	}
	return nil
}

// validateVertexOutgoing checks invariant 6: every vertex's stored outgoing
// half-edge originates there.
func (s *Subdivision) validateVertexOutgoing() error {
	for id, v := range s.vertices {
		if v.Outgoing < 0 || v.Outgoing >= len(s.halfEdges) {
			return fmt.Errorf("%w: vertex %d has no valid outgoing half-edge", ErrInvariantViolation, id)
		}
		if s.halfEdges[v.Outgoing].Origin != id {
			return fmt.Errorf("%w: outgoing(%d) does not originate at vertex %d", ErrInvariantViolation, id, id)
		}
	}
	return nil
}

// validateEdgeOrder checks invariant 7: ToSegments() is strictly ascending
// by (start, end) lex.
func (s *Subdivision) validateEdgeOrder() error {
	segs := s.ToSegments()
	for i := 1; i < len(segs); i++ {
		prev, cur := segs[i-1], segs[i]
		if !(prev.Start.Less(cur.Start) || (prev.Start == cur.Start && prev.End.Less(cur.End))) {
			return fmt.Errorf("%w: toSegments() output not strictly ascending at index %d", ErrInvariantViolation, i)
		}
	}
	return nil
}

// validateVertexSeparation checks the vertex half of invariant 8: no two
// distinct vertices lie within eps of each other. Quadratic, but the subdivision is expected to
// hold at most a few thousand vertices at most (§9 design notes call out
// input-size bounding as the caller's responsibility).
func (s *Subdivision) validateVertexSeparation() error {
	for i := 0; i < len(s.vertices); i++ {
		for j := i + 1; j < len(s.vertices); j++ {
			a, b := s.vertices[i].Point, s.vertices[j].Point
			if math.Abs(a.X-b.X) <= s.eps && math.Abs(a.Y-b.Y) <= s.eps {
				return fmt.Errorf("%w: vertices %d and %d lie within eps of each other", ErrInvariantViolation, i, j)
			}
		}
	}
	return nil
}
