package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Expected {100 50 25 255}, got %v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		want uint8
	}{
		{"Opaque", 1, 255},
		{"Half", 0.5, 127},
		{"Negative clamps", -1, 0},
		{"Over one clamps", 2, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithAlpha(color.RGBA{10, 20, 30, 255}, tt.a); got.A != tt.want || got.R != 10 {
				t.Errorf("Expected alpha %d, got %v", tt.want, got)
			}
		})
	}
}

func TestMixColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	if got := MixColor(a, b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := MixColor(a, b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}
	if got := MixColor(a, b, 0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Errorf("Expected midpoint, got %v", got)
	}
}
