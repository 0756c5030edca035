// Package render draws a subdivision's faces and filaments to SVG, as a
// peripheral drawing collaborator external to the core subdivision package.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/go-dcel/subdivision/geom"
	"github.com/go-dcel/subdivision/subdiv"
)

// Options controls WriteSVG's canvas sizing and margins.
type Options struct {
	Width, Height int
	Margin        int
}

// DefaultOptions is an 800x600 canvas with a 20-unit margin; the CLI passes
// it to WriteSVG.
var DefaultOptions = Options{Width: 800, Height: 600, Margin: 20}

// WriteSVG renders s to w: one filled <polygon> per bounded face, one open
// <polyline> per zero-area (filament) cycle, all fit to opts' canvas with a
// uniform scale derived from s's bounding box.
func WriteSVG(w io.Writer, s *subdiv.Subdivision, opts Options) error {
	bounds, ok := boundingBox(s)
	if !ok {
		bounds = geom.RectD{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}
	project := projector(bounds, opts)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	defer canvas.End()

	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")

	for _, face := range s.Faces()[1:] {
		poly, err := s.CyclePolygon(face.OuterEdge)
		if err != nil {
			return fmt.Errorf("render: face outer cycle: %w", err)
		}
		xs, ys := projectAll(poly, project)
		canvas.Polygon(xs, ys, "fill:#cfe8ff;stroke:#1d4e89;stroke-width:1.5")
	}

	for _, rep := range s.ZeroAreaCycles() {
		poly, err := s.CyclePolygon(rep)
		if err != nil {
			return fmt.Errorf("render: filament cycle: %w", err)
		}
		xs, ys := projectAll(poly, project)
		canvas.Polyline(xs, ys, "fill:none;stroke:#b33;stroke-width:1.5")
	}

	return nil
}

func boundingBox(s *subdiv.Subdivision) (geom.RectD, bool) {
	vertices := s.Vertices()
	if len(vertices) == 0 {
		return geom.RectD{}, false
	}
	pts := make([]geom.PointD, len(vertices))
	for i, v := range vertices {
		pts[i] = v.Point
	}
	return geom.BoundingRectD(pts), true
}

func projector(bounds geom.RectD, opts Options) func(geom.PointD) (int, int) {
	width, height := bounds.Size().Width, bounds.Size().Height
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	innerW := float64(opts.Width - 2*opts.Margin)
	innerH := float64(opts.Height - 2*opts.Margin)
	scale := innerW / width
	if alt := innerH / height; alt < scale {
		scale = alt
	}
	return func(p geom.PointD) (int, int) {
		x := opts.Margin + int((p.X-bounds.MinX)*scale)
		// SVG y grows downward; flip so the subdivision's +y points up.
		y := opts.Margin + int((bounds.MaxY-p.Y)*scale)
		return x, y
	}
}

func projectAll(pts []geom.PointD, project func(geom.PointD) (int, int)) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = project(p)
	}
	return xs, ys
}
