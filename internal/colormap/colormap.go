// Package colormap maps scalar values in [0, 1] to colors. Maps are
// defined by a handful of control colors and interpolated in Lab space,
// which keeps perceived brightness smooth between the stops.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Map is an immutable scalar-to-color lookup.
type Map struct {
	name  string
	stops []colorful.Color
}

// BadColor is returned for NaN or infinite values.
var BadColor = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}

var registry = map[string]Map{}

func register(name string, hexStops ...string) Map {
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormap %s: bad stop %q: %v", name, h, err))
		}
		stops[i] = c
	}
	m := Map{name: name, stops: stops}
	registry[name] = m
	return m
}

// Jet is the classic blue-to-red scale.
var (
	Jet     = register("jet", "#00007F", "#0000FF", "#00FFFF", "#FFFF00", "#FF0000", "#7F0000")
	Viridis = register("viridis", "#440154", "#414487", "#2A788E", "#22A884", "#7AD151", "#FDE725")
	Inferno = register("inferno", "#000004", "#420A68", "#932667", "#DD513A", "#FCA50A", "#FCFFA4")
	Gray    = register("gray", "#000000", "#FFFFFF")
)

// Default is the map a new display starts with.
var Default = Jet

// Get returns the named map or an error listing nothing more than the
// offending name; Names lists what is available.
func Get(name string) (Map, error) {
	m, ok := registry[name]
	if !ok {
		return Map{}, fmt.Errorf("unknown colormap %q", name)
	}
	return m, nil
}

// Names returns the registered map names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the registry name of the map.
func (m Map) Name() string { return m.name }

// At maps t in [0, 1] to a color. Values outside the range clamp to the
// end stops; NaN and infinities map to BadColor.
func (m Map) At(t float64) color.Color {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return BadColor
	}
	if len(m.stops) == 0 {
		return BadColor
	}
	if t <= 0 {
		return toNRGBA(m.stops[0])
	}
	if t >= 1 {
		return toNRGBA(m.stops[len(m.stops)-1])
	}
	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	blended := m.stops[i].BlendLab(m.stops[i+1], frac).Clamped()
	return toNRGBA(blended)
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
