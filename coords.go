package canopy

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport is returned when a viewport dimension is not positive.
var ErrInvalidViewport = errors.New("viewport dimensions must be positive")

// AbsToScaled1D maps an absolute coordinate in [0, length] to [-1, 1].
// length must be positive; the result is undefined for zero.
func AbsToScaled1D(a float64, length int) float64 {
	return (a/float64(length))*2 - 1
}

// ScaledToAbs1D maps a scaled coordinate in [-1, 1] back to [0, length].
// length must be positive; the result is undefined for zero.
func ScaledToAbs1D(a float64, length int) float64 {
	return ((a + 1) / 2) * float64(length)
}

// Viewport is the current drawable size in pixels. It parameterizes every
// conversion between pixel space and device space.
type Viewport struct {
	Width, Height int
}

// NewViewport returns a viewport of the given size, or ErrInvalidViewport if
// either dimension is zero or negative.
func NewViewport(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("canopy: %dx%d: %w", width, height, ErrInvalidViewport)
	}
	return Viewport{Width: width, Height: height}, nil
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToScaled converts a pixel-space point to device space. The y axis flips
// because pixel space grows downward and device space grows upward.
func (v Viewport) ToScaled(p AbsPoint) ScaledPoint {
	return ScaledPoint{
		X: AbsToScaled1D(p.X, v.Width),
		Y: -AbsToScaled1D(p.Y, v.Height),
	}
}

// ToAbs converts a device-space point back to pixel space.
func (v Viewport) ToAbs(p ScaledPoint) AbsPoint {
	return AbsPoint{
		X: ScaledToAbs1D(p.X, v.Width),
		Y: ScaledToAbs1D(-p.Y, v.Height),
	}
}
