package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-dcel/subdivision/geom"
	"github.com/go-dcel/subdivision/subdiv"
)

func TestWriteSVGSquare(t *testing.T) {
	s, err := subdiv.FromLines([]geom.SegmentD{
		{Start: geom.PointD{X: -1, Y: -2}, End: geom.PointD{X: -1, Y: 2}},
		{Start: geom.PointD{X: -1, Y: 2}, End: geom.PointD{X: 1, Y: 2}},
		{Start: geom.PointD{X: 1, Y: 2}, End: geom.PointD{X: 1, Y: -2}},
		{Start: geom.PointD{X: 1, Y: -2}, End: geom.PointD{X: -1, Y: -2}},
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, s, DefaultOptions); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("output missing <svg> root: %q", out)
	}
	if !strings.Contains(out, "<polygon") {
		t.Errorf("output missing bounded face <polygon>: %q", out)
	}
}

func TestWriteSVGFilamentOnly(t *testing.T) {
	s, err := subdiv.FromLines([]geom.SegmentD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: -1, Y: -2}},
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: -1, Y: 2}},
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 1, Y: 2}},
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 1, Y: -2}},
	})
	if err != nil {
		t.Fatalf("FromLines: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, s, DefaultOptions); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "<polyline") {
		t.Errorf("output missing filament <polyline>")
	}
}
