package render

import "camview/pkg/geometry"

// Viewport maps camera-frame coordinates onto a screen rectangle with a
// single scale factor, so the aspect ratio is always preserved. The
// camera Y axis points up; screen Y points down.
type Viewport struct {
	world geometry.Rect
	scale float64
	// Screen position of the world rectangle's top-left corner
	// (world minX, maxY), after centering inside the screen rect.
	originX float64
	originY float64
}

// NewViewport fits the world rectangle into the screen rectangle
// (x0, y0, w, h), centered, preserving aspect.
func NewViewport(world geometry.Rect, x0, y0, w, h float64) Viewport {
	vp := Viewport{world: world}
	if world.Width <= 0 || world.Height <= 0 || w <= 0 || h <= 0 {
		vp.scale = 1
		vp.originX = x0
		vp.originY = y0
		return vp
	}
	sx := w / world.Width
	sy := h / world.Height
	vp.scale = sx
	if sy < sx {
		vp.scale = sy
	}
	vp.originX = x0 + (w-world.Width*vp.scale)/2
	vp.originY = y0 + (h-world.Height*vp.scale)/2
	return vp
}

// ToScreen converts a camera-frame point to screen coordinates.
func (vp Viewport) ToScreen(p geometry.Point2D) (x, y float64) {
	x = vp.originX + (p.X-vp.world.X)*vp.scale
	y = vp.originY + (vp.world.Y+vp.world.Height-p.Y)*vp.scale
	return x, y
}

// ToWorld converts screen coordinates back to the camera frame.
func (vp Viewport) ToWorld(x, y float64) geometry.Point2D {
	return geometry.Point2D{
		X: vp.world.X + (x-vp.originX)/vp.scale,
		Y: vp.world.Y + vp.world.Height - (y-vp.originY)/vp.scale,
	}
}

// ScaleLen converts a camera-frame distance to screen pixels.
func (vp Viewport) ScaleLen(d float64) float64 { return d * vp.scale }

// World returns the camera-frame rectangle the viewport covers.
func (vp Viewport) World() geometry.Rect { return vp.world }
