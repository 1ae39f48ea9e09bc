package camera

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MockShowerImage generates per-pixel amplitudes for a synthetic shower
// described by the moment parameters: an anisotropic 2D Gaussian with
// standard deviations Length/2 along the major axis and Width/2 across
// it, rotated by Psi, scaled so the summed amplitude approximates Size.
// A positive noiseLambda adds a Poisson pedestal to every pixel.
func MockShowerImage(g *Geometry, par MomentParameters, noiseLambda float64) []float64 {
	img := make([]float64, g.Len())
	sinPsi, cosPsi := math.Sincos(par.Psi)
	sigL := par.Length / 2
	sigW := par.Width / 2

	total := 0.0
	for i := range img {
		dx := g.PixX[i] - par.CenX
		dy := g.PixY[i] - par.CenY
		// Project onto the shower axes: u along the major axis
		// (Psi clockwise from "up"), v across it.
		u := dx*sinPsi + dy*cosPsi
		v := dx*cosPsi - dy*sinPsi
		img[i] = math.Exp(-0.5 * (u*u/(sigL*sigL) + v*v/(sigW*sigW)))
		total += img[i]
	}

	if total > 0 && par.Size > 0 {
		scale := par.Size / total
		for i := range img {
			img[i] *= scale
		}
	}

	if noiseLambda > 0 {
		ped := distuv.Poisson{Lambda: noiseLambda}
		for i := range img {
			img[i] += ped.Rand()
		}
	}
	return img
}
