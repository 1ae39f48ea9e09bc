package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"camview/internal/camera"
	"camview/internal/colormap"
	"camview/pkg/geometry"
)

func renderToImage(t *testing.T, s *Scene, w, h int) (*gg.Context, Viewport) {
	t.Helper()
	dc := gg.NewContext(w, h)
	s.Render(dc)
	return dc, s.Viewport(w, h)
}

func sample(dc *gg.Context, x, y float64) color.NRGBA {
	r, g, b, a := dc.Image().At(int(x), int(y)).RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderColorsHotPixel(t *testing.T) {
	geom := camera.NewHexGrid("testcam", 2, 0.1, "m")
	s := NewScene(geom, WithColormap(colormap.Gray))

	img := make([]float64, geom.Len())
	hot := 7
	img[hot] = 100
	if err := s.SetImage(img); err != nil {
		t.Fatal(err)
	}

	dc, vp := renderToImage(t, s, 400, 300)

	// The hot pixel renders at the top of the gray scale, the rest at
	// the bottom.
	x, y := vp.ToScreen(geom.Center(hot))
	c := sample(dc, x, y)
	if c.R < 240 || c.G < 240 || c.B < 240 {
		t.Errorf("hot pixel rendered %v, want near white", c)
	}
	var cold int
	if hot == 0 {
		cold = 1
	}
	x, y = vp.ToScreen(geom.Center(cold))
	c = sample(dc, x, y)
	if c.R > 15 || c.G > 15 || c.B > 15 {
		t.Errorf("cold pixel rendered %v, want near black", c)
	}
}

func TestRenderWithoutImageUsesLowEndOfMap(t *testing.T) {
	geom := camera.NewRectGrid("testcam", 3, 3, 1.0, "m")
	s := NewScene(geom, WithColormap(colormap.Jet))

	dc, vp := renderToImage(t, s, 300, 300)
	x, y := vp.ToScreen(geom.Center(4))
	c := sample(dc, x, y)
	// Jet's low end is dark blue.
	if c.B < 100 || c.R > 40 || c.G > 40 {
		t.Errorf("empty display pixel rendered %v, want dark blue", c)
	}
}

func TestRenderEllipseStrokesOutline(t *testing.T) {
	geom := camera.NewHexGrid("testcam", 3, 0.1, "m")
	s := NewScene(geom, WithColormap(colormap.Gray))
	if err := s.SetImage(make([]float64, geom.Len())); err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}
	s.AddEllipse(geometry.Point2D{X: 0, Y: 0}, 0.4, 0.2, 0, &EllipseStyle{Color: red, LineWidth: 3})

	dc, vp := renderToImage(t, s, 400, 400)

	// With angle 0 the major axis points up: the outline crosses
	// (0, length/2) but not (length/2, 0).
	x, y := vp.ToScreen(geometry.Point2D{X: 0, Y: 0.2})
	c := sample(dc, x, y)
	if c.R < 200 || c.G > 80 {
		t.Errorf("major-axis endpoint rendered %v, want red", c)
	}
	// The centroid itself stays unfilled.
	x, y = vp.ToScreen(geometry.Point2D{X: 0, Y: 0})
	c = sample(dc, x, y)
	if c.R > 200 && c.G < 80 {
		t.Errorf("centroid rendered %v; unfilled ellipse should not cover it", c)
	}
}

func TestViewportFitsInsideMargins(t *testing.T) {
	geom := camera.NewHexGrid("testcam", 4, 0.1, "m")
	s := NewScene(geom)
	vp := s.Viewport(640, 480)
	for i := 0; i < geom.Len(); i++ {
		x, y := vp.ToScreen(geom.Center(i))
		if x < marginLeft || x > 640-marginRight || y < marginTop || y > 480-marginBottom {
			t.Fatalf("pixel %d at (%g, %g) lands outside the plot area", i, x, y)
		}
	}
}
