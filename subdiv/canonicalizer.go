package subdiv

import (
	"github.com/dhconnelly/rtreego"

	"github.com/go-dcel/subdivision/geom"
)

// canonicalizer maintains the tolerance-aware point -> representative-point
// mapping. It's backed by an rtreego.Rtree rather than a
// hand-rolled bucket grid: each representative is inserted as a degenerate
// rectangle, and lookups use SearchIntersect over the [p-eps, p+eps] box to
// find a prior representative before minting a new one.
type canonicalizer struct {
	eps  float64
	tree *rtreego.Rtree
	reps []geom.PointD // representatives, in insertion order (by id)
}

func newCanonicalizer(eps float64) *canonicalizer {
	return &canonicalizer{
		eps:  eps,
		tree: rtreego.NewTree(2, 4, 16),
	}
}

// canonPoint adapts a representative point to rtreego.Spatial.
type canonPoint struct {
	id int
	pt geom.PointD
}

func (c *canonPoint) Bounds() *rtreego.Rect {
	const halfExtent = 1e-9
	rect, err := rtreego.NewRect(
		rtreego.Point{c.pt.X - halfExtent, c.pt.Y - halfExtent},
		[]float64{2 * halfExtent, 2 * halfExtent},
	)
	if err != nil {
		// halfExtent is a fixed positive constant; NewRect only errors on
		// non-positive lengths.
		panic(err)
	}
	return rect
}

// canonicalize: if some stored representative q
// satisfies |p-q|_inf <= eps, return q; otherwise insert p and return p.
// Ties among multiple candidate representatives resolve to the
// smallest-id one, keeping the result deterministic regardless of the
// tree's internal search order.
func (c *canonicalizer) canonicalize(p geom.PointD) geom.PointD {
	bb, err := rtreego.NewRect(
		rtreego.Point{p.X - c.eps, p.Y - c.eps},
		[]float64{maxFloat(2*c.eps, 1e-9), maxFloat(2*c.eps, 1e-9)},
	)
	if err != nil {
		panic(err)
	}

	best := -1
	for _, result := range c.tree.SearchIntersect(bb) {
		cp := result.(*canonPoint)
		if !p.Equals(cp.pt, c.eps) {
			continue
		}
		if best == -1 || cp.id < best {
			best = cp.id
		}
	}
	if best != -1 {
		return c.reps[best]
	}

	id := len(c.reps)
	c.reps = append(c.reps, p)
	c.tree.Insert(&canonPoint{id: id, pt: p})
	return p
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
