package geom

import "math"

// PointD is a point with double-precision coordinates.
type PointD struct {
	X, Y float64
}

// Add returns p + q.
func (p PointD) Add(q PointD) PointD { return PointD{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p PointD) Sub(q PointD) PointD { return PointD{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p PointD) Scale(s float64) PointD { return PointD{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p PointD) Dot(q PointD) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar magnitude of the 2D cross product p x q.
func (p PointD) Cross(q PointD) float64 { return p.X*q.Y - p.Y*q.X }

// LengthSquared returns the squared Euclidean length of p (as a vector from the origin).
func (p PointD) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Length returns the Euclidean length of p (as a vector from the origin).
func (p PointD) Length() float64 { return math.Sqrt(p.LengthSquared()) }

// Angle returns the polar angle of p via atan2(y, x).
func (p PointD) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Normalize returns p scaled to unit length. The zero vector is returned unchanged.
func (p PointD) Normalize() PointD {
	length := p.Length()
	if length == 0 {
		return p
	}
	return p.Scale(1 / length)
}

// FromPolarD constructs a point from polar coordinates (length, angle in radians).
func FromPolarD(length, angle float64) PointD {
	return PointD{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Round returns the point rounded to the nearest integer point, using
// banker's rounding (half-to-even) on each coordinate to match reference
// fixtures.
func (p PointD) Round() PointI {
	return PointI{X: int(roundHalfToEven(p.X)), Y: int(roundHalfToEven(p.Y))}
}

// Restrict clamps p componentwise to the bounds of r.
func (p PointD) Restrict(r RectD) PointD {
	return PointD{
		X: clampFloat64(p.X, r.Left(), r.Right()),
		Y: clampFloat64(p.Y, r.Top(), r.Bottom()),
	}
}

// Move advances p by distance units toward target, returning the new point.
// If target coincides with p, p is returned unchanged.
func (p PointD) Move(target PointD, distance float64) PointD {
	dir := target.Sub(p)
	length := dir.Length()
	if length == 0 {
		return p
	}
	return p.Add(dir.Scale(distance / length))
}

// Equals reports whether p and q are equal. With no tolerance given,
// equality is exact; otherwise |p.X-q.X| <= eps && |p.Y-q.Y| <= eps.
func (p PointD) Equals(q PointD, eps ...float64) bool {
	if len(eps) == 0 {
		return p.X == q.X && p.Y == q.Y
	}
	e := eps[0]
	return math.Abs(p.X-q.X) <= e && math.Abs(p.Y-q.Y) <= e
}

// Less orders points lexicographically by (Y, X) ascending, per the vertex
// table ordering convention.
func (p PointD) Less(q PointD) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// IsCollinear reports whether a, b, c are collinear. With no eps given, the
// signed triangle area must be exactly zero; otherwise it must be within
// eps * max(1, scale) of zero, where scale is the largest side length of the
// triangle.
func IsCollinear(a, b, c PointD, eps ...float64) bool {
	area := b.Sub(a).Cross(c.Sub(a))
	if len(eps) == 0 {
		return area == 0
	}
	e := eps[0]
	scale := math.Max(1, math.Max(b.Sub(a).Length(), math.Max(c.Sub(a).Length(), c.Sub(b).Length())))
	return math.Abs(area) <= e*scale
}

func roundHalfToEven(v float64) float64 {
	floor := math.Floor(v)
	diff := v - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

func clampFloat64(v, lo, hi float64) float64 {
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
