package rast

import "testing"

// checker2x2 builds a 2x2 texture with distinct corner colors:
// top-left red, top-right green, bottom-left blue, bottom-right white.
func checker2x2() *Texture {
	return NewTexture([]uint32{
		RGB(255, 0, 0).Pack(), RGB(0, 255, 0).Pack(),
		RGB(0, 0, 255).Pack(), RGB(255, 255, 255).Pack(),
	}, 2, 2)
}

func TestTexture_SampleNearestCorners(t *testing.T) {
	tex := checker2x2()

	tests := []struct {
		name string
		u, v float32
		want Color
	}{
		{"top-left", 0, 0, RGB(255, 0, 0)},
		{"top-right", 1, 0, RGB(0, 255, 0)},
		{"bottom-left", 0, 1, RGB(0, 0, 255)},
		{"bottom-right", 1, 1, RGB(255, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.SampleNearest(tt.u, tt.v); got != tt.want {
				t.Errorf("SampleNearest(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestTexture_SampleNearestClamps(t *testing.T) {
	tex := checker2x2()

	tests := []struct {
		name string
		u, v float32
		want Color
	}{
		{"both negative", -1, -1, RGB(255, 0, 0)},
		{"both beyond one", 2.5, 3, RGB(255, 255, 255)},
		{"u negative only", -0.5, 1, RGB(0, 0, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.SampleNearest(tt.u, tt.v); got != tt.want {
				t.Errorf("SampleNearest(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestTexture_SampleNearestSinglePixel(t *testing.T) {
	// A 1x1 texture must return its only texel for any coordinate.
	c := RGB(7, 8, 9)
	tex := NewTexture([]uint32{c.Pack()}, 1, 1)
	for _, uv := range [][2]float32{{0, 0}, {1, 1}, {0.5, 0.5}, {-3, 7}} {
		if got := tex.SampleNearest(uv[0], uv[1]); got != c {
			t.Errorf("SampleNearest(%v, %v) = %v, want %v", uv[0], uv[1], got, c)
		}
	}
}

func TestNewTexture_PanicsOnBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		pix  []uint32
		w, h int
	}{
		{"zero width", nil, 0, 1},
		{"zero height", nil, 1, 0},
		{"negative width", nil, -1, 1},
		{"length mismatch", make([]uint32, 3), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			NewTexture(tt.pix, tt.w, tt.h)
		})
	}
}
