package geom

// Area returns the signed area of the polygon described by pts (shoelace
// formula): ½ Σ (x_i·y_{i+1} − x_{i+1}·y_i). Positive for counterclockwise
// polygons. float64 throughout, since subdiv's vertices are already
// epsilon-canonicalized before this is ever called.
func Area(pts []PointD) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Orientation returns +1 for a counterclockwise polygon, -1 for clockwise,
// 0 for a zero-area (degenerate/filament) polygon.
func Orientation(pts []PointD) int {
	a := Area(pts)
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Centroid returns the area-weighted centroid of the polygon described by
// pts. The second return value is false when the polygon has zero area, in
// which case the centroid is undefined.
func Centroid(pts []PointD) (PointD, bool) {
	area := Area(pts)
	if area == 0 {
		return PointD{}, false
	}
	var cx, cy float64
	for i := range pts {
		j := (i + 1) % len(pts)
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	factor := 1 / (6 * area)
	return PointD{X: cx * factor, Y: cy * factor}, true
}

// PointInPolygon reports whether p lies strictly inside the polygon
// described by pts, using the standard even-odd ray-casting test. Points on
// the boundary are not guaranteed either way.
func PointInPolygon(p PointD, pts []PointD) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
