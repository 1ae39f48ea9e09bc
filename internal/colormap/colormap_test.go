package colormap

import (
	"image/color"
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	tests := []struct {
		m     Map
		t     float64
		want  color.NRGBA
		label string
	}{
		{Gray, 0, color.NRGBA{0, 0, 0, 255}, "gray low"},
		{Gray, 1, color.NRGBA{255, 255, 255, 255}, "gray high"},
		{Jet, 0, color.NRGBA{0x00, 0x00, 0x7F, 255}, "jet low"},
		{Jet, 1, color.NRGBA{0x7F, 0x00, 0x00, 255}, "jet high"},
	}
	for _, tt := range tests {
		if got := tt.m.At(tt.t); got != tt.want {
			t.Errorf("%s: At(%g) = %v, want %v", tt.label, tt.t, got, tt.want)
		}
	}
}

func TestClamping(t *testing.T) {
	if Gray.At(-3) != Gray.At(0) {
		t.Error("At(-3) should clamp to At(0)")
	}
	if Gray.At(7) != Gray.At(1) {
		t.Error("At(7) should clamp to At(1)")
	}
}

func TestBadValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Jet.At(v); got != color.Color(BadColor) {
			t.Errorf("At(%v) = %v, want BadColor", v, got)
		}
	}
}

func TestGetKnownAndUnknown(t *testing.T) {
	for _, name := range []string{"jet", "viridis", "inferno", "gray"} {
		m, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("Get(%q).Name() = %q", name, m.Name())
		}
	}
	if _, err := Get("sepia"); err == nil {
		t.Error("Get(sepia): expected error")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("Names() = %v, want at least 4 entries", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}

func TestMidpointIsBetweenStops(t *testing.T) {
	// Gray at 0.5 should be mid-gray within Lab rounding slack.
	c := Gray.At(0.5).(color.NRGBA)
	if c.R != c.G || c.G != c.B {
		t.Errorf("gray midpoint not neutral: %v", c)
	}
	if c.R < 90 || c.R > 160 {
		t.Errorf("gray midpoint %d outside plausible range", c.R)
	}
}
