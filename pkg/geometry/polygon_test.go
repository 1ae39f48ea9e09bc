package geometry

import (
	"math"
	"testing"
)

func TestRegularPolygonVertexCount(t *testing.T) {
	for _, n := range []int{3, 4, 6, 8} {
		verts := RegularPolygon(Point2D{}, n, 1, 0)
		if len(verts) != n {
			t.Errorf("n=%d: got %d vertices", n, len(verts))
		}
	}
	if verts := RegularPolygon(Point2D{}, 2, 1, 0); verts != nil {
		t.Errorf("n=2: expected nil, got %v", verts)
	}
}

func TestRegularPolygonFirstVertexUp(t *testing.T) {
	c := Point2D{X: 3, Y: -1}
	verts := RegularPolygon(c, 6, 2, 0)
	want := Point2D{X: 3, Y: 1}
	if math.Abs(verts[0].X-want.X) > 1e-12 || math.Abs(verts[0].Y-want.Y) > 1e-12 {
		t.Errorf("first vertex = %+v, want %+v", verts[0], want)
	}
	// All vertices on the circle of radius 2.
	for i, v := range verts {
		if d := v.Distance(c); math.Abs(d-2) > 1e-12 {
			t.Errorf("vertex %d at distance %g, want 2", i, d)
		}
	}
}

func TestPointInPolygon(t *testing.T) {
	hex := RegularPolygon(Point2D{}, 6, 1, 0)
	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{0, 0}, true},
		{"inside off-center", Point2D{0.3, 0.2}, true},
		{"outside right", Point2D{1.1, 0}, false},
		{"outside above vertex", Point2D{0, 1.5}, false},
		{"between radius and apothem", Point2D{0.95, 0}, false},
	}
	for _, tt := range tests {
		if got := PointInPolygon(tt.p, hex); got != tt.want {
			t.Errorf("%s: PointInPolygon(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	pts := []Point2D{{1, 2}, {-3, 4}, {0, -5}}
	b := Bounds(pts)
	want := Rect{X: -3, Y: -5, Width: 4, Height: 9}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
	if z := Bounds(nil); z != (Rect{}) {
		t.Errorf("Bounds(nil) = %+v, want zero", z)
	}
}

func TestRectUnionAndInflate(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(1, 1, 3, 1)
	u := a.Union(b)
	if u != (Rect{X: 0, Y: 0, Width: 4, Height: 2}) {
		t.Errorf("Union = %+v", u)
	}
	in := a.Inflate(0.5)
	if in != (Rect{X: -0.5, Y: -0.5, Width: 3, Height: 3}) {
		t.Errorf("Inflate = %+v", in)
	}
}
