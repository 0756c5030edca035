package geom

import "math"

// SegmentD is an ordered pair of points (Start, End) forming a directed line
// segment.
type SegmentD struct {
	Start, End PointD
}

// Vector returns End - Start.
func (s SegmentD) Vector() PointD { return s.End.Sub(s.Start) }

// Classification is the outcome of classifying one segment against another,
// modeled on a standard segment/segment intersection classifier, refined to
// a five-way split.
type Classification uint8

const (
	Disjoint Classification = iota
	Parallel
	Collinear
	IntersectWithin
	EndpointTouch
)

// ClassifyResult carries the classification plus whatever geometry
// disambiguates it: the intersection point for IntersectWithin/EndpointTouch,
// or the overlap interval's two endpoints for Collinear.
type ClassifyResult struct {
	Kind         Classification
	Point        PointD  // valid for IntersectWithin, EndpointTouch
	T, U         float64 // parameters on s1, s2 for IntersectWithin and non-collinear EndpointTouch; for Collinear, the overlap's start and end parameters on s1
	OverlapStart PointD  // valid for Collinear
	OverlapEnd   PointD  // valid for Collinear
}

// Classify classifies s2 against s1: given s1 = (p, p+r) and
// s2 = (q, q+u), using cross(r,u) to distinguish parallel/collinear from a
// proper intersection, then solving the 2x2 system for t (position on s1)
// and u (position on s2). eps bounds every boundary comparison (ties at eps
// count as touching).
func Classify(s1, s2 SegmentD, eps float64) ClassifyResult {
	p, r := s1.Start, s1.Vector()
	q, u := s2.Start, s2.Vector()

	rxu := r.Cross(u)
	qp := q.Sub(p)
	qpxr := qp.Cross(r)

	if math.Abs(rxu) <= eps {
		if math.Abs(qpxr) <= eps {
			return classifyCollinear(p, r, q, u, eps)
		}
		return ClassifyResult{Kind: Parallel}
	}

	t := qp.Cross(u) / rxu
	uu := qpxr / rxu

	touchesT := withinEps(t, 0, eps) || withinEps(t, 1, eps)
	touchesU := withinEps(uu, 0, eps) || withinEps(uu, 1, eps)

	inRangeT := t >= -eps && t <= 1+eps
	inRangeU := uu >= -eps && uu <= 1+eps
	if !inRangeT || !inRangeU {
		return ClassifyResult{Kind: Disjoint}
	}

	point := p.Add(r.Scale(t))
	if touchesT || touchesU {
		return ClassifyResult{Kind: EndpointTouch, Point: point, T: t, U: uu}
	}
	return ClassifyResult{Kind: IntersectWithin, Point: point, T: t, U: uu}
}

func withinEps(v, target, eps float64) bool { return math.Abs(v-target) <= eps }

// classifyCollinear handles the case cross(r,u) == 0 && cross(q-p,r) == 0:
// s1 and s2 lie on the same line. Project both onto whichever axis has
// greater extent for numerical stability (mirrors a common
// handleCollinearSegments in geometry.go), then intersect the two
// parameter intervals along s1.
func classifyCollinear(p, r, q, u PointD, eps float64) ClassifyResult {
	if r.LengthSquared() == 0 {
		return ClassifyResult{Kind: Disjoint}
	}

	// Parameter of a point x along s1 (assumes x is on the line through p,r).
	paramOf := func(x PointD) float64 {
		if math.Abs(r.X) >= math.Abs(r.Y) {
			return (x.X - p.X) / r.X
		}
		return (x.Y - p.Y) / r.Y
	}

	t0 := paramOf(q)
	t1 := paramOf(q.Add(u))
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}

	overlapLo := math.Max(0, lo)
	overlapHi := math.Min(1, hi)

	if overlapLo > overlapHi+eps {
		return ClassifyResult{Kind: Disjoint}
	}

	start := p.Add(r.Scale(overlapLo))
	end := p.Add(r.Scale(overlapHi))

	if math.Abs(overlapHi-overlapLo) <= eps {
		return ClassifyResult{Kind: EndpointTouch, Point: start, T: overlapLo}
	}
	return ClassifyResult{Kind: Collinear, OverlapStart: start, OverlapEnd: end, T: overlapLo, U: overlapHi}
}
