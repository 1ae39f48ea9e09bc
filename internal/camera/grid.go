package camera

import "math"

// NewHexGrid builds a hexagonal camera of concentric rings around a
// center pixel. spacing is the distance between adjacent pixel centers;
// each pixel's area is that of the regular hexagon tiling at that
// spacing, so neighbors touch without overlap.
func NewHexGrid(camID string, rings int, spacing float64, unit string) *Geometry {
	if rings < 0 {
		rings = 0
	}
	n := 3*rings*(rings+1) + 1
	g := &Geometry{
		CamID:   camID,
		PixX:    make([]float64, 0, n),
		PixY:    make([]float64, 0, n),
		PixArea: make([]float64, 0, n),
		PixType: PixTypeHexagonal,
		Unit:    unit,
	}
	area := math.Sqrt(3) / 2 * spacing * spacing
	for q := -rings; q <= rings; q++ {
		for r := -rings; r <= rings; r++ {
			if s := -q - r; s < -rings || s > rings {
				continue
			}
			x := spacing * (float64(q) + float64(r)/2)
			y := spacing * math.Sqrt(3) / 2 * float64(r)
			g.PixX = append(g.PixX, x)
			g.PixY = append(g.PixY, y)
			g.PixArea = append(g.PixArea, area)
		}
	}
	return g
}

// NewRectGrid builds an nx by ny rectangular camera centered on the
// origin. The per-pixel area is chosen so that the rendered square side
// equals the grid spacing.
func NewRectGrid(camID string, nx, ny int, spacing float64, unit string) *Geometry {
	n := nx * ny
	g := &Geometry{
		CamID:   camID,
		PixX:    make([]float64, 0, n),
		PixY:    make([]float64, 0, n),
		PixArea: make([]float64, 0, n),
		PixType: PixTypeRectangular,
		Unit:    unit,
	}
	area := (spacing / 2) * (spacing / 2)
	x0 := -spacing * float64(nx-1) / 2
	y0 := -spacing * float64(ny-1) / 2
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			g.PixX = append(g.PixX, x0+spacing*float64(ix))
			g.PixY = append(g.PixY, y0+spacing*float64(iy))
			g.PixArea = append(g.PixArea, area)
		}
	}
	return g
}
