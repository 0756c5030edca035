package geom

import (
	"math"
	"testing"
)

func TestPointDArithmetic(t *testing.T) {
	a := PointD{1, 2}
	b := PointD{3, -1}

	if got := a.Add(b); got != (PointD{4, 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (PointD{-2, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross: got %v, want -7", got)
	}
}

func TestPointDFromPolarRoundTrip(t *testing.T) {
	const eps = 1e-4
	cases := []struct {
		length, angle float64
	}{
		{1, 0},
		{2.5, math.Pi / 4},
		{10, math.Pi},
		{0.001, -math.Pi / 3},
	}
	for _, c := range cases {
		p := FromPolarD(c.length, c.angle)
		if gotLen := p.Length(); math.Abs(gotLen-c.length) > eps {
			t.Errorf("FromPolar(%v,%v): length = %v, want %v", c.length, c.angle, gotLen, c.length)
		}
		if c.length == 0 {
			continue
		}
		gotAngle := p.Angle()
		diff := math.Abs(gotAngle - c.angle)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > eps {
			t.Errorf("FromPolar(%v,%v): angle = %v, want %v", c.length, c.angle, gotAngle, c.angle)
		}
	}
}

func TestPointDRoundBankersRounding(t *testing.T) {
	cases := []struct {
		in   PointD
		want PointI
	}{
		{PointD{0.5, 1.5}, PointI{0, 2}},
		{PointD{2.5, 3.5}, PointI{2, 4}},
		{PointD{-0.5, -1.5}, PointI{0, -2}},
		{PointD{1.2, 1.8}, PointI{1, 2}},
	}
	for _, c := range cases {
		if got := c.in.Round(); got != c.want {
			t.Errorf("%v.Round() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPointDMove(t *testing.T) {
	p := PointD{0, 0}
	target := PointD{10, 0}
	if got := p.Move(target, 4); got != (PointD{4, 0}) {
		t.Errorf("Move = %v", got)
	}
	if got := p.Move(p, 4); got != p {
		t.Errorf("Move to self should be unchanged, got %v", got)
	}
}

func TestPointDEquals(t *testing.T) {
	a := PointD{1, 1}
	b := PointD{1.05, 0.97}
	if a.Equals(b) {
		t.Errorf("expected exact equality to fail")
	}
	if !a.Equals(b, 0.1) {
		t.Errorf("expected eps-equality to hold within 0.1")
	}
	if a.Equals(b, 0.01) {
		t.Errorf("expected eps-equality to fail within 0.01")
	}
}

func TestIsCollinear(t *testing.T) {
	a, b, c := PointD{0, 0}, PointD{2, 0}, PointD{1, 0}
	if !IsCollinear(a, b, c) {
		t.Errorf("expected exact collinearity")
	}
	if IsCollinear(a, b, PointD{1, 1}) {
		t.Errorf("expected non-collinearity")
	}
	if !IsCollinear(a, b, PointD{1, 0.01}, 0.1) {
		t.Errorf("expected eps-collinearity to hold")
	}
}

func TestPointDLess(t *testing.T) {
	if !(PointD{1, 0}).Less(PointD{0, 1}) {
		t.Errorf("expected (1,0) < (0,1) under (y,x) lex order")
	}
	if (PointD{0, 1}).Less(PointD{1, 0}) {
		t.Errorf("expected (0,1) !< (1,0) under (y,x) lex order")
	}
}
