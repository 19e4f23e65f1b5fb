package rast

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEq(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func() Vec2
		want Vec2
	}{
		{"add", func() Vec2 { return V2(1, 2).Add(V2(3, 4)) }, V2(4, 6)},
		{"sub", func() Vec2 { return V2(5, 7).Sub(V2(2, 3)) }, V2(3, 4)},
		{"mul", func() Vec2 { return V2(1.5, -2).Mul(2) }, V2(3, -4)},
		{"lerp mid", func() Vec2 { return V2(0, 0).Lerp(V2(10, 20), 0.5) }, V2(5, 10)},
		{"lerp start", func() Vec2 { return V2(3, 4).Lerp(V2(9, 9), 0) }, V2(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op()
			if !approxEq(got.X, tt.want.X, 1e-6) || !approxEq(got.Y, tt.want.Y, 1e-6) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w Vec2
		want float32
	}{
		{"perpendicular", V2(1, 0), V2(0, 1), 1},
		{"reversed", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(4, 4), 0},
		{"scaled", V2(3, 0), V2(0, 2), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); !approxEq(got, tt.want, 1e-6) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
		})
	}
}

func TestVec2_DotLength(t *testing.T) {
	if got := V2(3, 4).Length(); !approxEq(got, 5, 1e-6) {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := V2(1, 2).Dot(V2(3, 4)); !approxEq(got, 11, 1e-6) {
		t.Errorf("Dot() = %v, want 11", got)
	}
}

func TestVec3_XY(t *testing.T) {
	v := V3(1.5, -2.5, 99)
	got := v.XY()
	if got != V2(1.5, -2.5) {
		t.Errorf("XY() = %v, want %v", got, V2(1.5, -2.5))
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	if got := V3(1, 2, 3).Add(V3(4, 5, 6)); got != V3(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := V3(4, 5, 6).Sub(V3(1, 2, 3)); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := V3(1, -2, 3).Mul(2); got != V3(2, -4, 6) {
		t.Errorf("Mul = %v", got)
	}
}
