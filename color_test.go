package layout

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RGB short", "#f00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RGB short no hash", "0f0", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"RGBA short", "#f00f", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBB", "#ff0000", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBB gray", "#808080", RGBA{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255, A: 1}},
		{"RRGGBBAA", "#ff000080", RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"invalid length", "#12345", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"empty", "", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	want := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if c != want {
		t.Errorf("RGB(0.2, 0.4, 0.6) = %v, want %v", c, want)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b RGBA
		t    float64
		want RGBA
	}{
		{"at start", Black, White, 0, Black},
		{"at end", Black, White, 1, White},
		{"midpoint", Black, White, 0.5, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"alpha blend", Transparent, RGBA2(0, 0, 0, 1), 0.25, RGBA2(0, 0, 0, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Lerp(tt.b, tt.t)
			if !colorsClose(got, tt.want) {
				t.Errorf("Lerp(%v, %v) = %v, want %v", tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestIsTransparent(t *testing.T) {
	if Black.IsTransparent() {
		t.Error("Black.IsTransparent() = true, want false")
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false, want true")
	}
	if RGBA2(1, 1, 1, 0).IsTransparent() != true {
		t.Error("zero-alpha white should be transparent")
	}
}

func colorsClose(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}
