package subdiv

import (
	"math"
	"sort"

	"github.com/go-dcel/subdivision/geom"
)

// build runs the six-step DCEL construction over segments,
// returning a fully wired, face-assigned Subdivision.
func build(segments []geom.SegmentD, eps float64) *Subdivision {
	debugLogPhase("sub-segments")
	events := computeEvents(segments, eps)
	canon := newCanonicalizer(eps)

	s := &Subdivision{eps: eps}
	vertexID := make(map[geom.PointD]int)
	outgoing := make(map[int][]int)

	getVertex := func(p geom.PointD) int {
		if id, ok := vertexID[p]; ok {
			return id
		}
		id := len(s.vertices)
		s.vertices = append(s.vertices, Vertex{Point: p, Outgoing: -1})
		vertexID[p] = id
		return id
	}

	// Steps 1-2: sub-segments and half-edge emission, in input-segment
	// order, then along each segment from t=0 to t=1 (§4.6).
	for i, pts := range events {
		for k := 0; k+1 < len(pts); k++ {
			a := canon.canonicalize(pts[k])
			b := canon.canonicalize(pts[k+1])
			if a == b {
				debugLog("segment %d: dropped degenerate sub-segment at %v", i, a)
				continue
			}

			lo, hi := a, b
			if hi.Less(lo) {
				lo, hi = hi, lo
			}
			loID, hiID := getVertex(lo), getVertex(hi)

			eID := len(s.halfEdges)
			tID := eID + 1
			s.halfEdges = append(s.halfEdges,
				HalfEdge{Origin: loID, Twin: tID, Face: -1, Next: -1, Prev: -1},
				HalfEdge{Origin: hiID, Twin: eID, Face: -1, Next: -1, Prev: -1},
			)
			outgoing[loID] = append(outgoing[loID], eID)
			outgoing[hiID] = append(outgoing[hiID], tID)
			debugLog("segment %d: sub-segment %v -> %v as half-edges %d/%d", i, lo, hi, eID, tID)
		}
	}

	debugLogPhase("local star ordering")
	stitchStars(s, outgoing)

	debugLogPhase("cycle extraction")
	cycles := extractCycles(s)

	debugLogPhase("face assembly")
	assembleFaces(s, cycles)

	debugLogPhase("vertex outgoing assignment")
	for v, outs := range outgoing {
		best := outs[0]
		for _, e := range outs[1:] {
			if e < best {
				best = e
			}
		}
		s.vertices[v].Outgoing = best
	}

	return s
}

// stitchStars implements Step 3: for each vertex, sort outgoing half-edges
// by the counterclockwise polar angle of their direction vector and stitch
// next/previous around the vertex: the incoming twin of each outgoing
// half-edge continues with that half-edge's clockwise neighbour, so Next
// walks the boundary of the face on the left.
func stitchStars(s *Subdivision, outgoing map[int][]int) {
	for _, outs := range outgoing {
		sorted := append([]int(nil), outs...)
		sort.Slice(sorted, func(i, j int) bool {
			return directionAngle(s, sorted[i]) < directionAngle(s, sorted[j])
		})
		for idx, e := range sorted {
			twinE := s.halfEdges[e].Twin
			succ := sorted[(idx+len(sorted)-1)%len(sorted)]
			s.halfEdges[twinE].Next = succ
			s.halfEdges[succ].Prev = twinE
		}
	}
}

// directionAngle returns the angle, in [0, 2pi), of half-edge e's direction
// vector from its origin, used for the counterclockwise star ordering.
func directionAngle(s *Subdivision, e int) float64 {
	origin := s.vertices[s.halfEdges[e].Origin].Point
	dest := s.vertices[s.destination(e)].Point
	angle := dest.Sub(origin).Angle()
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

type cycleInfo struct {
	edges []int
	area  float64
}

// extractCycles implements Step 4: walk next from every unvisited half-edge
// to recover its boundary cycle, then classify by signed area.
func extractCycles(s *Subdivision) []cycleInfo {
	visited := make([]bool, len(s.halfEdges))
	var cycles []cycleInfo
	for e := range s.halfEdges {
		if visited[e] {
			continue
		}
		edges := walkCycle(s, e)
		for _, c := range edges {
			visited[c] = true
		}
		cycles = append(cycles, cycleInfo{edges: edges, area: geom.Area(originsOf(s, edges))})
	}
	return cycles
}

// walkCycle follows Next from e until it returns to e, returning the
// half-edge ids visited in order. Bounded by len(halfEdges)+1 steps so a
// builder bug (a next-cycle that never closes) fails loudly instead of
// looping forever.
func walkCycle(s *Subdivision, e int) []int {
	edges := make([]int, 0, 4)
	cur := e
	for i := 0; i <= len(s.halfEdges); i++ {
		edges = append(edges, cur)
		cur = s.halfEdges[cur].Next
		if cur == e {
			return edges
		}
	}
	panic("subdiv: next-cycle failed to close; builder invariant violated")
}

func originsOf(s *Subdivision, edges []int) []geom.PointD {
	pts := make([]geom.PointD, len(edges))
	for i, e := range edges {
		pts[i] = s.vertices[s.halfEdges[e].Origin].Point
	}
	return pts
}

// assembleFaces implements Step 5: creates face 0 (unbounded), one face per
// outer (area > 0) cycle, and attaches inner (area < 0) and zero-area cycles
// to whichever bounded face geometrically contains them, else face 0.
func assembleFaces(s *Subdivision, cycles []cycleInfo) {
	s.faces = []Face{{OuterEdge: -1}}

	type boundedCycle struct {
		info  cycleInfo
		minID int
	}
	var outer, inner, zero []boundedCycle
	for _, c := range cycles {
		bc := boundedCycle{info: c, minID: minID(c.edges)}
		switch {
		case c.area > 0:
			outer = append(outer, bc)
		case c.area < 0:
			inner = append(inner, bc)
		default:
			zero = append(zero, bc)
		}
	}

	sort.Slice(outer, func(i, j int) bool { return outer[i].minID < outer[j].minID })

	facePolys := map[int][]geom.PointD{}
	faceAreas := map[int]float64{}
	for _, bc := range outer {
		faceID := len(s.faces)
		outerEdge := pickOuterEdge(s, bc.info.edges)
		s.faces = append(s.faces, Face{OuterEdge: outerEdge})
		for _, e := range bc.info.edges {
			s.halfEdges[e].Face = faceID
		}
		facePolys[faceID] = originsOf(s, bc.info.edges)
		faceAreas[faceID] = math.Abs(bc.info.area)
	}

	assign := func(bc boundedCycle) {
		testPoint := leftmostVertex(originsOf(s, bc.info.edges))
		owner := containingFace(testPoint, facePolys, faceAreas)
		rep := minID(bc.info.edges)
		for _, e := range bc.info.edges {
			s.halfEdges[e].Face = owner
		}
		s.faces[owner].InnerEdges = append(s.faces[owner].InnerEdges, rep)
	}
	sort.Slice(inner, func(i, j int) bool { return inner[i].minID < inner[j].minID })
	sort.Slice(zero, func(i, j int) bool { return zero[i].minID < zero[j].minID })
	for _, bc := range inner {
		assign(bc)
	}
	for _, bc := range zero {
		assign(bc)
	}
}

func minID(edges []int) int {
	m := edges[0]
	for _, e := range edges[1:] {
		if e < m {
			m = e
		}
	}
	return m
}

// pickOuterEdge implements the outerEdge tie-break of §4.5 step 5: the
// half-edge whose origin is lexicographically smallest (y, x), tie-broken by
// smallest direction angle.
func pickOuterEdge(s *Subdivision, edges []int) int {
	best := edges[0]
	bestPoint := s.vertices[s.halfEdges[best].Origin].Point
	for _, e := range edges[1:] {
		p := s.vertices[s.halfEdges[e].Origin].Point
		switch {
		case p.Less(bestPoint):
			best, bestPoint = e, p
		case p == bestPoint && directionAngle(s, e) < directionAngle(s, best):
			best = e
		}
	}
	return best
}

// leftmostVertex returns the point with smallest x (tie-break smallest y)
// among pts, used as the representative test point for face containment.
func leftmostVertex(pts []geom.PointD) geom.PointD {
	best := pts[0]
	for _, p := range pts[1:] {
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}
	return best
}

// containingFace returns the smallest-area bounded face whose outer polygon
// contains p, or 0 (the unbounded face) if none does. A face that has p as a
// vertex of its outer polygon is never chosen: p then lies on that face's
// boundary, in the same connected component, not inside it.
func containingFace(p geom.PointD, facePolys map[int][]geom.PointD, faceAreas map[int]float64) int {
	owner := 0
	bestArea := math.Inf(1)
	for faceID, poly := range facePolys {
		onBoundary := false
		for _, q := range poly {
			if q == p {
				onBoundary = true
				break
			}
		}
		if onBoundary || !geom.PointInPolygon(p, poly) {
			continue
		}
		if a := faceAreas[faceID]; a < bestArea {
			owner = faceID
			bestArea = a
		}
	}
	return owner
}
