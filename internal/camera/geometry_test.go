package camera

import (
	"math"
	"testing"

	"camview/pkg/geometry"
)

const tol = 1e-9

func TestHexRadiusLaw(t *testing.T) {
	// Area recovered from the radius must match the regular-hexagon
	// area formula A = 3*sqrt(3)/2 * r^2.
	areas := []float64{0.1, 1.0, 2.5, 17.3}
	for _, a := range areas {
		g := &Geometry{
			PixX: []float64{0}, PixY: []float64{0},
			PixArea: []float64{a}, PixType: PixTypeHexagonal,
		}
		r := g.PixRadius(0)
		back := 3 * math.Sqrt(3) / 2 * r * r
		if math.Abs(back-a) > tol {
			t.Errorf("area %g: r=%g gives back %g", a, r, back)
		}
	}
}

func TestSquareSideLaw(t *testing.T) {
	areas := []float64{0.25, 1.0, 4.0}
	for _, a := range areas {
		g := &Geometry{
			PixX: []float64{0}, PixY: []float64{0},
			PixArea: []float64{a}, PixType: PixTypeRectangular,
		}
		side := 2 * g.PixRadius(0)
		if math.Abs(side-2*math.Sqrt(a)) > tol {
			t.Errorf("area %g: side=%g, want %g", a, side, 2*math.Sqrt(a))
		}
	}
}

func TestHexPrefixMatching(t *testing.T) {
	tests := []struct {
		pixType string
		hex     bool
	}{
		{"hexagonal", true},
		{"hex", true},
		{"hexagon", true},
		{"rectangular", false},
		{"square", false},
		{"", false},
	}
	for _, tt := range tests {
		g := &Geometry{PixType: tt.pixType}
		if got := g.IsHexagonal(); got != tt.hex {
			t.Errorf("PixType %q: IsHexagonal = %v, want %v", tt.pixType, got, tt.hex)
		}
	}
}

func TestVerticesShape(t *testing.T) {
	hex := NewHexGrid("test", 1, 0.1, "m")
	if got := len(hex.Vertices(0)); got != 6 {
		t.Errorf("hex pixel has %d vertices, want 6", got)
	}
	rect := NewRectGrid("test", 2, 2, 0.1, "m")
	if got := len(rect.Vertices(0)); got != 4 {
		t.Errorf("square pixel has %d vertices, want 4", got)
	}
}

func TestContains(t *testing.T) {
	g := NewHexGrid("test", 2, 0.1, "m")
	for i := 0; i < g.Len(); i++ {
		if !g.Contains(i, g.Center(i)) {
			t.Errorf("pixel %d does not contain its own center", i)
		}
	}
	// A point far outside the camera is in no pixel.
	far := geometry.Point2D{X: 10, Y: 10}
	for i := 0; i < g.Len(); i++ {
		if g.Contains(i, far) {
			t.Errorf("pixel %d claims to contain %+v", i, far)
		}
	}
}

func TestHexGridPixelCount(t *testing.T) {
	tests := []struct {
		rings int
		want  int
	}{
		{0, 1},
		{1, 7},
		{2, 19},
		{5, 91},
	}
	for _, tt := range tests {
		g := NewHexGrid("test", tt.rings, 0.1, "m")
		if g.Len() != tt.want {
			t.Errorf("rings=%d: %d pixels, want %d", tt.rings, g.Len(), tt.want)
		}
		if len(g.PixY) != g.Len() || len(g.PixArea) != g.Len() {
			t.Errorf("rings=%d: slices not index-aligned", tt.rings)
		}
	}
}

func TestRectGridLayout(t *testing.T) {
	g := NewRectGrid("test", 3, 2, 1.0, "m")
	if g.Len() != 6 {
		t.Fatalf("got %d pixels, want 6", g.Len())
	}
	// Centered on the origin.
	var sx, sy float64
	for i := 0; i < g.Len(); i++ {
		sx += g.PixX[i]
		sy += g.PixY[i]
	}
	if math.Abs(sx) > tol || math.Abs(sy) > tol {
		t.Errorf("grid not centered: sum=(%g, %g)", sx, sy)
	}
	// Rendered side equals the spacing, so neighbors touch.
	if side := 2 * g.PixRadius(0); math.Abs(side-1.0) > tol {
		t.Errorf("rendered side %g, want 1.0", side)
	}
}

func TestMockShowerImagePeaksAtCentroid(t *testing.T) {
	g := NewHexGrid("test", 4, 0.1, "m")
	par := MomentParameters{CenX: 0.1, CenY: 0.05, Length: 0.3, Width: 0.1, Psi: math.Pi / 4, Size: 100}
	img := MockShowerImage(g, par, 0)
	if len(img) != g.Len() {
		t.Fatalf("image length %d, want %d", len(img), g.Len())
	}
	best := 0
	for i, v := range img {
		if v > img[best] {
			best = i
		}
	}
	d := g.Center(best).Distance(geometry.Point2D{X: par.CenX, Y: par.CenY})
	if d > 0.1 {
		t.Errorf("peak pixel %d is %g from the centroid", best, d)
	}
	var total float64
	for _, v := range img {
		total += v
	}
	if math.Abs(total-par.Size) > 1e-6 {
		t.Errorf("summed amplitude %g, want %g", total, par.Size)
	}
}
