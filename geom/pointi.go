package geom

import "math"

// PointI is a point with integer coordinates.
type PointI struct {
	X, Y int
}

// Add returns p + q.
func (p PointI) Add(q PointI) PointI { return PointI{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p PointI) Sub(q PointI) PointI { return PointI{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by the integer factor s.
func (p PointI) Scale(s int) PointI { return PointI{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p PointI) Dot(q PointI) int { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar magnitude of the 2D cross product p x q.
func (p PointI) Cross(q PointI) int { return p.X*q.Y - p.Y*q.X }

// LengthSquared returns the squared Euclidean length of p.
func (p PointI) LengthSquared() int { return p.X*p.X + p.Y*p.Y }

// Length returns the Euclidean length of p.
func (p PointI) Length() float64 { return math.Sqrt(float64(p.LengthSquared())) }

// Angle returns the polar angle of p via atan2(y, x).
func (p PointI) Angle() float64 { return math.Atan2(float64(p.Y), float64(p.X)) }

// ToPointD widens p to double precision.
func (p PointI) ToPointD() PointD { return PointD{X: float64(p.X), Y: float64(p.Y)} }

// Restrict clamps p componentwise to the bounds of r.
func (p PointI) Restrict(r RectI) PointI {
	return PointI{
		X: clampInt(p.X, r.Left(), r.Right()),
		Y: clampInt(p.Y, r.Top(), r.Bottom()),
	}
}

// Equals reports whether p and q are equal, exactly or within eps.
func (p PointI) Equals(q PointI, eps ...int) bool {
	if len(eps) == 0 {
		return p.X == q.X && p.Y == q.Y
	}
	e := eps[0]
	return absInt(p.X-q.X) <= e && absInt(p.Y-q.Y) <= e
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
