// Package render turns a camera geometry and an image into drawing
// calls against a gg context. The Scene is headless: the interactive
// widget and the snapshot tool share it.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"camview/internal/camera"
	"camview/internal/colormap"
	"camview/pkg/geometry"
)

// ShapeMismatchError reports an image whose length does not match the
// pixel count fixed when the scene was built.
type ShapeMismatchError struct {
	Got  int
	Want int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("image has shape (%d,) but the camera geometry has shape (%d,)", e.Got, e.Want)
}

// Patch is one pixel's renderable shape, built once at construction.
type Patch struct {
	Center geometry.Point2D
	Radius float64
	Verts  []geometry.Point2D
}

// EllipseStyle controls how an overlay ellipse is drawn. The zero value
// selects the defaults (unfilled, white, 2px line). Extra carries
// backend-specific hints; keys the renderer does not recognize are
// ignored rather than rejected.
type EllipseStyle struct {
	Color     color.Color
	LineWidth float64
	Filled    bool
	Dash      []float64
	Label     string
	Extra     map[string]string
}

// Ellipse is an overlay patch added on top of the camera. The handle
// returned by AddEllipse can be used to remove or restyle it.
type Ellipse struct {
	Centroid geometry.Point2D
	Length   float64 // full major-axis extent
	Width    float64 // full minor-axis extent
	Angle    float64 // radians, clockwise from "up"
	Style    EllipseStyle
}

// Scene is the renderable model of one camera display: the pixel patch
// collection, the current image values, the colormap, and any overlay
// ellipses. A Scene is not safe for concurrent use.
type Scene struct {
	geom     *camera.Geometry
	title    string
	patches  []Patch
	values   []float64
	hasImage bool
	vmin     float64
	vmax     float64
	cmap     colormap.Map
	ellipses []*Ellipse
	bg       color.Color
}

// Option configures a Scene at construction.
type Option func(*Scene)

// WithTitle overrides the default "Camera" title.
func WithTitle(title string) Option {
	return func(s *Scene) { s.title = title }
}

// WithColormap selects the initial colormap.
func WithColormap(m colormap.Map) Option {
	return func(s *Scene) { s.cmap = m }
}

// WithBackground overrides the default background color.
func WithBackground(c color.Color) Option {
	return func(s *Scene) { s.bg = c }
}

// NewScene builds one patch per pixel from the geometry. Hexagonal
// pixels become regular hexagons with the radius of a hexagon of the
// pixel's area; anything else becomes an axis-aligned square. Patches
// are never rebuilt; only colors change afterwards.
func NewScene(geom *camera.Geometry, opts ...Option) *Scene {
	s := &Scene{
		geom:  geom,
		title: "Camera",
		cmap:  colormap.Default,
		bg:    color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.patches = make([]Patch, geom.Len())
	for i := range s.patches {
		s.patches[i] = Patch{
			Center: geom.Center(i),
			Radius: geom.PixRadius(i),
			Verts:  geom.Vertices(i),
		}
	}
	return s
}

// Geometry returns the camera geometry the scene was built from.
func (s *Scene) Geometry() *camera.Geometry { return s.geom }

// Title returns the display title.
func (s *Scene) Title() string { return s.title }

// Patches returns the patch collection in pixel order.
func (s *Scene) Patches() []Patch { return s.patches }

// Colormap returns the current colormap.
func (s *Scene) Colormap() colormap.Map { return s.cmap }

// SetColormap replaces the scalar-to-color mapping. Patch shapes,
// positions and stored values are untouched.
func (s *Scene) SetColormap(m colormap.Map) { s.cmap = m }

// SetColormapByName looks the map up in the colormap registry.
func (s *Scene) SetColormapByName(name string) error {
	m, err := colormap.Get(name)
	if err != nil {
		return err
	}
	s.cmap = m
	return nil
}

// SetImage replaces the per-pixel values. The slice is copied. Fails
// with *ShapeMismatchError when the length differs from the pixel
// count; the previous values stay in place on failure.
func (s *Scene) SetImage(image []float64) error {
	if len(image) != len(s.patches) {
		return &ShapeMismatchError{Got: len(image), Want: len(s.patches)}
	}
	if s.values == nil {
		s.values = make([]float64, len(image))
	}
	copy(s.values, image)
	s.hasImage = true
	s.vmin, s.vmax = valueRange(s.values)
	return nil
}

// Values returns the currently displayed values, or nil before the
// first SetImage.
func (s *Scene) Values() []float64 {
	if !s.hasImage {
		return nil
	}
	return s.values
}

// HasImage reports whether SetImage has succeeded at least once.
func (s *Scene) HasImage() bool { return s.hasImage }

// ValueRange returns the normalization range of the current image.
func (s *Scene) ValueRange() (vmin, vmax float64) { return s.vmin, s.vmax }

// AddEllipse overlays an unfilled ellipse: full major-axis extent
// length, full minor-axis extent width, rotated by angle radians
// clockwise from "up" about the centroid. A nil style selects the
// defaults. The returned handle can later be passed to RemoveEllipse.
func (s *Scene) AddEllipse(centroid geometry.Point2D, length, width, angle float64, style *EllipseStyle) *Ellipse {
	e := &Ellipse{
		Centroid: centroid,
		Length:   length,
		Width:    width,
		Angle:    angle,
	}
	if style != nil {
		e.Style = *style
	}
	s.ellipses = append(s.ellipses, e)
	return e
}

// RemoveEllipse detaches a previously added overlay. Returns false if
// the handle is not attached to this scene.
func (s *Scene) RemoveEllipse(e *Ellipse) bool {
	for i, cur := range s.ellipses {
		if cur == e {
			s.ellipses = append(s.ellipses[:i], s.ellipses[i+1:]...)
			return true
		}
	}
	return false
}

// Ellipses returns the overlay list in insertion order.
func (s *Scene) Ellipses() []*Ellipse { return s.ellipses }

// ClearEllipses removes all overlays.
func (s *Scene) ClearEllipses() { s.ellipses = nil }

// OverlayMoments overlays the ellipse described by fitted shower
// moment parameters: centroid (CenX, CenY), axes Length and Width,
// rotation Psi. The asymmetry is accepted but plays no geometric role.
func (s *Scene) OverlayMoments(p camera.MomentParameters, style *EllipseStyle) *Ellipse {
	return s.AddEllipse(geometry.Point2D{X: p.CenX, Y: p.CenY}, p.Length, p.Width, p.Psi, style)
}

// PixelsAt returns the ordered indices of the pixels containing the
// camera-frame point p.
func (s *Scene) PixelsAt(p geometry.Point2D) []int {
	var hits []int
	for i := range s.patches {
		if s.geom.Contains(i, p) {
			hits = append(hits, i)
		}
	}
	return hits
}

// normValue maps a pixel value into [0, 1] for the colormap. NaN and
// infinities pass through so the colormap can flag them.
func (s *Scene) normValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if s.vmax == s.vmin {
		return 0.5
	}
	return (v - s.vmin) / (s.vmax - s.vmin)
}

// valueRange returns the min and max over the finite entries, widening
// a degenerate range so normalization stays defined.
func valueRange(values []float64) (vmin, vmax float64) {
	finite := values[:0:0]
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 1
	}
	return floats.Min(finite), floats.Max(finite)
}
