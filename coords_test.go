package canopy

import (
	"errors"
	"math"
	"testing"
)

const coordEpsilon = 1e-9

func TestAbsToScaled1D_Boundaries(t *testing.T) {
	for _, length := range []int{1, 2, 640, 1080, 4096} {
		l := float64(length)
		tests := []struct {
			a, want float64
		}{
			{0, -1},
			{l, 1},
			{l / 2, 0},
		}
		for _, tt := range tests {
			if got := AbsToScaled1D(tt.a, length); got != tt.want {
				t.Errorf("AbsToScaled1D(%v, %d) = %v, want %v", tt.a, length, got, tt.want)
			}
		}
	}
}

func TestScaledToAbs1D_Boundaries(t *testing.T) {
	tests := []struct {
		a      float64
		length int
		want   float64
	}{
		{-1, 640, 0},
		{1, 640, 640},
		{0, 640, 320},
		{0.5, 100, 75},
	}
	for _, tt := range tests {
		if got := ScaledToAbs1D(tt.a, tt.length); got != tt.want {
			t.Errorf("ScaledToAbs1D(%v, %d) = %v, want %v", tt.a, tt.length, got, tt.want)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	sizes := [][2]int{{1, 1}, {640, 480}, {1920, 1080}, {3, 7}}
	points := []AbsPoint{{0, 0}, {1, 1}, {0.5, 0.25}, {123.4, 56.7}, {-10, 2000}, {640, 480}}
	for _, sz := range sizes {
		vp := Viewport{Width: sz[0], Height: sz[1]}
		for _, p := range points {
			got := vp.ToAbs(vp.ToScaled(p))
			if math.Abs(got.X-p.X) > coordEpsilon*math.Max(1, math.Abs(p.X)) ||
				math.Abs(got.Y-p.Y) > coordEpsilon*math.Max(1, math.Abs(p.Y)) {
				t.Errorf("%v: ToAbs(ToScaled(%v)) = %v", vp, p, got)
			}
		}
		for _, sp := range []ScaledPoint{{-1, -1}, {1, 1}, {0, 0}, {0.3, -0.7}} {
			got := vp.ToScaled(vp.ToAbs(sp))
			if math.Abs(got.X-sp.X) > coordEpsilon || math.Abs(got.Y-sp.Y) > coordEpsilon {
				t.Errorf("%v: ToScaled(ToAbs(%v)) = %v", vp, sp, got)
			}
		}
	}
}

func TestViewportFlipsY(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	tests := []struct {
		abs    AbsPoint
		scaled ScaledPoint
	}{
		{AbsPoint{0, 0}, ScaledPoint{-1, 1}},
		{AbsPoint{200, 100}, ScaledPoint{1, -1}},
		{AbsPoint{100, 50}, ScaledPoint{0, 0}},
		{AbsPoint{0, 100}, ScaledPoint{-1, -1}},
	}
	for _, tt := range tests {
		if got := vp.ToScaled(tt.abs); got != tt.scaled {
			t.Errorf("ToScaled(%v) = %v, want %v", tt.abs, got, tt.scaled)
		}
		if got := vp.ToAbs(tt.scaled); got != tt.abs {
			t.Errorf("ToAbs(%v) = %v, want %v", tt.scaled, got, tt.abs)
		}
	}
}

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid", 640, 480, false},
		{"one pixel", 1, 1, false},
		{"zero width", 0, 480, true},
		{"zero height", 640, 0, true},
		{"negative", -1, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, err := NewViewport(tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidViewport) {
					t.Errorf("err = %v, want ErrInvalidViewport", err)
				}
				if vp.Valid() {
					t.Errorf("viewport %v should be invalid", vp)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if vp.Width != tt.w || vp.Height != tt.h || !vp.Valid() {
				t.Errorf("NewViewport(%d, %d) = %v", tt.w, tt.h, vp)
			}
		})
	}
}
