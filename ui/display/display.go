// Package display provides the interactive camera display widget: the
// pixel patch collection rendered through a colormap, ellipse overlays
// from fitted shower parameters, and tap-to-pick on pixels.
package display

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"camview/internal/camera"
	"camview/internal/render"
	"camview/pkg/geometry"
)

// PickEvent describes a selection on the pixel collection.
type PickEvent struct {
	Position geometry.Point2D // camera-frame coordinates of the tap
	Indices  []int            // ordered indices of the pixels hit
}

// PickHandler receives selection events. The default handler only logs
// the event; replace it with SetPickHandler or WithPickHandler.
type PickHandler func(ev PickEvent)

// CameraDisplay shows one camera. It owns exactly one scene and one
// raster surface; shapes are built once from the geometry and only
// their colors change afterwards.
type CameraDisplay struct {
	widget.BaseWidget

	scene  *render.Scene
	raster *fynecanvas.Raster
	pick   PickHandler

	// Pixel dimensions of the most recent raster draw, used to map
	// tap positions (logical units) onto the rendered viewport.
	lastW, lastH int
}

var _ fyne.Tappable = (*CameraDisplay)(nil)

type config struct {
	title    string
	colormap string
	pick     PickHandler
	scene    *render.Scene
}

// Option configures a CameraDisplay at construction.
type Option func(*config)

// WithTitle sets the plot title (default "Camera").
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithColormap selects the initial colormap by registry name.
func WithColormap(name string) Option {
	return func(c *config) { c.colormap = name }
}

// WithPickHandler replaces the default logging pick handler.
func WithPickHandler(h PickHandler) Option {
	return func(c *config) { c.pick = h }
}

// WithScene renders into an existing scene instead of building a new
// one; the geometry argument to New is ignored in that case.
func WithScene(s *render.Scene) Option {
	return func(c *config) { c.scene = s }
}

// New builds a display for the geometry: one shape per pixel, a
// default sequential colormap, and a logging pick handler.
func New(geom *camera.Geometry, opts ...Option) *CameraDisplay {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	scene := cfg.scene
	if scene == nil {
		var sceneOpts []render.Option
		if cfg.title != "" {
			sceneOpts = append(sceneOpts, render.WithTitle(cfg.title))
		}
		scene = render.NewScene(geom, sceneOpts...)
	}
	if cfg.colormap != "" {
		if err := scene.SetColormapByName(cfg.colormap); err != nil {
			log.Printf("display: %v, keeping %s", err, scene.Colormap().Name())
		}
	}

	d := &CameraDisplay{scene: scene}
	d.pick = d.logPick
	if cfg.pick != nil {
		d.pick = cfg.pick
	}

	d.raster = fynecanvas.NewRaster(d.draw)
	d.raster.SetMinSize(fyne.NewSize(240, 200))
	d.ExtendBaseWidget(d)
	return d
}

// Scene returns the underlying renderable scene.
func (d *CameraDisplay) Scene() *render.Scene { return d.scene }

// SetColormap replaces the colormap by registry name. Shape count,
// positions and stored image values are unaffected.
func (d *CameraDisplay) SetColormap(name string) error {
	if err := d.scene.SetColormapByName(name); err != nil {
		return err
	}
	d.Refresh()
	return nil
}

// SetImage replaces the per-pixel values and redraws. Fails with
// *render.ShapeMismatchError when the length differs from the pixel
// count; the display is untouched on failure.
func (d *CameraDisplay) SetImage(values []float64) error {
	if err := d.scene.SetImage(values); err != nil {
		return err
	}
	d.Refresh()
	return nil
}

// AddEllipse overlays an unfilled ellipse on the camera and redraws.
// The returned handle can be passed to RemoveEllipse later.
func (d *CameraDisplay) AddEllipse(centroid geometry.Point2D, length, width, angle float64, style *render.EllipseStyle) *render.Ellipse {
	e := d.scene.AddEllipse(centroid, length, width, angle, style)
	d.Refresh()
	return e
}

// RemoveEllipse detaches a previously added overlay and redraws.
func (d *CameraDisplay) RemoveEllipse(e *render.Ellipse) bool {
	if !d.scene.RemoveEllipse(e) {
		return false
	}
	d.Refresh()
	return true
}

// OverlayMoments overlays the ellipse described by fitted shower
// moment parameters and redraws.
func (d *CameraDisplay) OverlayMoments(p camera.MomentParameters, style *render.EllipseStyle) *render.Ellipse {
	e := d.scene.OverlayMoments(p, style)
	d.Refresh()
	return e
}

// ClearEllipses removes every overlay and redraws.
func (d *CameraDisplay) ClearEllipses() {
	d.scene.ClearEllipses()
	d.Refresh()
}

// SetPickHandler replaces the selection hook. A nil handler restores
// the default logging stub.
func (d *CameraDisplay) SetPickHandler(h PickHandler) {
	if h == nil {
		h = d.logPick
	}
	d.pick = h
}

// Tapped implements fyne.Tappable: the tap position is converted to
// camera-frame coordinates and the pick handler is invoked with the
// indices of the pixels hit.
func (d *CameraDisplay) Tapped(ev *fyne.PointEvent) {
	world, ok := d.toWorld(ev.Position)
	if !ok {
		return
	}
	d.pick(PickEvent{Position: world, Indices: d.scene.PixelsAt(world)})
}

// toWorld maps a logical widget position onto the camera frame using
// the viewport of the most recent draw.
func (d *CameraDisplay) toWorld(pos fyne.Position) (geometry.Point2D, bool) {
	size := d.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return geometry.Point2D{}, false
	}
	w, h := d.lastW, d.lastH
	if w == 0 || h == 0 {
		w, h = int(size.Width), int(size.Height)
	}
	px := float64(pos.X) * float64(w) / float64(size.Width)
	py := float64(pos.Y) * float64(h) / float64(size.Height)
	return d.scene.Viewport(w, h).ToWorld(px, py), true
}

// logPick is the default selection hook: report and do nothing else.
func (d *CameraDisplay) logPick(ev PickEvent) {
	log.Printf("pick event at (%.4f, %.4f): pixels %v", ev.Position.X, ev.Position.Y, ev.Indices)
}

// draw renders the scene for the raster at the requested pixel size.
func (d *CameraDisplay) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	d.lastW, d.lastH = w, h
	dc := gg.NewContext(w, h)
	d.scene.Render(dc)
	return dc.Image()
}

// Refresh redraws the raster surface.
func (d *CameraDisplay) Refresh() {
	d.raster.Refresh()
	d.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (d *CameraDisplay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.raster)
}
