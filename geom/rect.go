package geom

// RectD is an axis-aligned rectangle with double-precision bounds, shaped
// after a min/max-corner rectangle convention (Left/Top/Right/Bottom
// accessors) rather than an origin+size pair.
type RectD struct {
	MinX, MinY, MaxX, MaxY float64
}

// Left, Top, Right, Bottom return the rectangle's bounds.
func (r RectD) Left() float64   { return r.MinX }
func (r RectD) Top() float64    { return r.MinY }
func (r RectD) Right() float64  { return r.MaxX }
func (r RectD) Bottom() float64 { return r.MaxY }

// Size returns the rectangle's width and height.
func (r RectD) Size() SizeD { return SizeD{Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY} }

// Center returns the rectangle's midpoint.
func (r RectD) Center() PointD {
	return PointD{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r RectD) Contains(p PointD) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// BoundingRectD returns the tightest RectD enclosing all of pts. It panics if
// pts is empty.
func BoundingRectD(pts []PointD) RectD {
	r := RectD{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// RectF is an axis-aligned rectangle with single-precision bounds.
type RectF struct {
	MinX, MinY, MaxX, MaxY float32
}

func (r RectF) Left() float32   { return r.MinX }
func (r RectF) Top() float32    { return r.MinY }
func (r RectF) Right() float32  { return r.MaxX }
func (r RectF) Bottom() float32 { return r.MaxY }

func (r RectF) Size() SizeF { return SizeF{Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY} }

func (r RectF) Center() PointF {
	return PointF{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// RectI is an axis-aligned rectangle with integer bounds.
type RectI struct {
	MinX, MinY, MaxX, MaxY int
}

func (r RectI) Left() int   { return r.MinX }
func (r RectI) Top() int    { return r.MinY }
func (r RectI) Right() int  { return r.MaxX }
func (r RectI) Bottom() int { return r.MaxY }

func (r RectI) Size() SizeI { return SizeI{Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY} }

func (r RectI) Center() PointI {
	return PointI{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}
