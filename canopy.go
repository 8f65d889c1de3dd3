package canopy

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// toRGBA converts the color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for offsets, sizes, and polygon points.
type Vec2 struct {
	X, Y float64
}

// AbsPoint is a position in absolute (pixel) space: origin at the top-left,
// y increasing downward.
type AbsPoint struct {
	X, Y float64
}

// ScaledPoint is a position in normalized device space: both axes span
// [-1, 1] and y increases upward.
type ScaledPoint struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixel space. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() AbsPoint {
	return AbsPoint{r.X, r.Y}
}

// BottomRight returns the rectangle's bottom-right corner.
func (r Rect) BottomRight() AbsPoint {
	return AbsPoint{r.X + r.Width, r.Y + r.Height}
}

// StoreMode selects the storage strategy of a Store.
type StoreMode uint8

const (
	StoreOrdered   StoreMode = iota // single slice sorted by layer, stable within a layer
	StoreUnordered                  // id map plus dense slice; O(1) removal, order not kept
)

// String returns the mode name.
func (m StoreMode) String() string {
	switch m {
	case StoreOrdered:
		return "ordered"
	case StoreUnordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// HitPolicy selects which hit objects receive a button event.
type HitPolicy uint8

const (
	HitAll     HitPolicy = iota // every object whose box contains the cursor
	HitTopmost                  // only the last hit in draw order
)

// EventType identifies a kind of input or interaction event.
type EventType uint8

const (
	EventCursorMoved EventType = iota // the pointer moved to a new absolute position
	EventButtonInput                  // a pointer button changed state
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventCursorMoved:
		return "cursor_moved"
	case EventButtonInput:
		return "button_input"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ButtonState is the state a button transitioned to.
type ButtonState uint8

const (
	ButtonPressed  ButtonState = iota // button went down
	ButtonReleased                    // button went up
)

// String returns the state name.
func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "released"
}
