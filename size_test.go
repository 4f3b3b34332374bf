package freehand

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func floatsEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestSize_NormalizeDenormalizeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		size Size
		x, y float64
	}{
		{"origin", Size{800, 600}, 0, 0},
		{"interior", Size{800, 600}, 123.5, 456.25},
		{"corner", Size{800, 600}, 800, 600},
		{"off surface", Size{800, 600}, -40, 700},
		{"non integer size", Size{333.5, 217.25}, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.size.Normalize(tt.x, tt.y)
			x, y := tt.size.Denormalize(p)
			if !floatsEqual(x, tt.x, 1e-9) || !floatsEqual(y, tt.y, 1e-9) {
				t.Errorf("round trip = (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestSize_Normalize(t *testing.T) {
	size := Size{Width: 200, Height: 100}
	p := size.Normalize(50, 50)
	if !floatsEqual(p.X, 0.25, epsilon) {
		t.Errorf("X = %v, want 0.25", p.X)
	}
	if !floatsEqual(p.Y, 0.5, epsilon) {
		t.Errorf("Y = %v, want 0.5", p.Y)
	}
}

func TestSize_WidthNormalizesAgainstWidthOnly(t *testing.T) {
	// Width is divided by the surface width even on a surface where the
	// height differs wildly; stored documents depend on this.
	size := Size{Width: 200, Height: 50}
	if w := size.NormalizeWidth(10); !floatsEqual(w, 0.05, epsilon) {
		t.Errorf("NormalizeWidth(10) = %v, want 0.05", w)
	}
	if px := size.DenormalizeWidth(0.05); !floatsEqual(px, 10, epsilon) {
		t.Errorf("DenormalizeWidth(0.05) = %v, want 10", px)
	}
}

func TestSize_AspectRatio(t *testing.T) {
	size := Size{Width: 800, Height: 600}
	if ar := size.AspectRatio(); !floatsEqual(ar, 800.0/600.0, epsilon) {
		t.Errorf("AspectRatio() = %v, want %v", ar, 800.0/600.0)
	}
}
