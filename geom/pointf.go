package geom

import "math"

// PointF is a point with single-precision coordinates.
type PointF struct {
	X, Y float32
}

// Add returns p + q.
func (p PointF) Add(q PointF) PointF { return PointF{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p PointF) Sub(q PointF) PointF { return PointF{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p PointF) Scale(s float32) PointF { return PointF{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p PointF) Dot(q PointF) float32 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar magnitude of the 2D cross product p x q.
func (p PointF) Cross(q PointF) float32 { return p.X*q.Y - p.Y*q.X }

// LengthSquared returns the squared Euclidean length of p.
func (p PointF) LengthSquared() float32 { return p.X*p.X + p.Y*p.Y }

// Length returns the Euclidean length of p.
func (p PointF) Length() float32 { return float32(math.Sqrt(float64(p.LengthSquared()))) }

// Angle returns the polar angle of p via atan2(y, x).
func (p PointF) Angle() float64 { return math.Atan2(float64(p.Y), float64(p.X)) }

// Normalize returns p scaled to unit length. The zero vector is returned unchanged.
func (p PointF) Normalize() PointF {
	length := p.Length()
	if length == 0 {
		return p
	}
	return p.Scale(1 / length)
}

// FromPolarF constructs a point from polar coordinates (length, angle in radians).
func FromPolarF(length, angle float64) PointF {
	return PointF{X: float32(length * math.Cos(angle)), Y: float32(length * math.Sin(angle))}
}

// Round returns the point rounded to the nearest integer point (banker's rounding).
func (p PointF) Round() PointI {
	return PointI{X: int(roundHalfToEven(float64(p.X))), Y: int(roundHalfToEven(float64(p.Y)))}
}

// Restrict clamps p componentwise to the bounds of r.
func (p PointF) Restrict(r RectF) PointF {
	return PointF{
		X: clampFloat32(p.X, r.Left(), r.Right()),
		Y: clampFloat32(p.Y, r.Top(), r.Bottom()),
	}
}

// Move advances p by distance units toward target, returning the new point.
func (p PointF) Move(target PointF, distance float32) PointF {
	dir := target.Sub(p)
	length := dir.Length()
	if length == 0 {
		return p
	}
	return p.Add(dir.Scale(distance / length))
}

// Equals reports whether p and q are equal, exactly or within eps.
func (p PointF) Equals(q PointF, eps ...float32) bool {
	if len(eps) == 0 {
		return p.X == q.X && p.Y == q.Y
	}
	e := eps[0]
	return absFloat32(p.X-q.X) <= e && absFloat32(p.Y-q.Y) <= e
}

func absFloat32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampFloat32(v, lo, hi float32) float32 {
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
