package canopy

import (
	"math"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Identity ---

// ID is a process-unique object identifier with 128-bit random identifier
// semantics. IDs are generated on insertion and never reused.
type ID uuid.UUID

// NilID is the zero ID. It is never assigned to an object.
var NilID ID

func newID() ID {
	return ID(uuid.New())
}

// String returns the canonical textual form of the ID.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// ParseID parses the canonical textual form produced by String.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilID, err
	}
	return ID(u), nil
}

// --- Objects ---

// ObjectKind distinguishes the paintable object variants.
type ObjectKind uint8

const (
	ObjectShape ObjectKind = iota // vector geometry with a solid brush
	ObjectText                    // styled text in a layout box
)

// Object is a paintable entity owned by a Store. The set of implementations
// is closed: *Shape and *Text. Both are pointer types, so the value returned
// by Store.Get can be mutated in place.
type Object interface {
	// Kind reports the object variant.
	Kind() ObjectKind
	// Bounds returns the axis-aligned pixel-space box used as the default
	// hit-test proxy for the object.
	Bounds() Rect
}

// Brush describes how a shape's interior is painted. Only solid fills exist.
type Brush struct {
	Color Color
}

// SolidBrush returns a brush that fills with a single color.
func SolidBrush(c Color) Brush {
	return Brush{Color: c}
}

// Shape is a closed vector path filled with a brush.
type Shape struct {
	Path  *vector.Path
	Brush Brush
}

// NewShape creates a shape from a path and a brush.
func NewShape(path *vector.Path, brush Brush) *Shape {
	return &Shape{Path: path, Brush: brush}
}

// Kind returns ObjectShape.
func (s *Shape) Kind() ObjectKind { return ObjectShape }

// Bounds returns the pixel box covering the path's control geometry,
// rounded outward to whole pixels. A nil or empty path has zero bounds.
func (s *Shape) Bounds() Rect {
	if s.Path == nil {
		return Rect{}
	}
	b := s.Path.Bounds()
	return Rect{
		X:      float64(b.Min.X),
		Y:      float64(b.Min.Y),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// --- Path helpers ---

// RectPath returns a closed rectangular path.
func RectPath(r Rect) *vector.Path {
	p := &vector.Path{}
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// CirclePath returns a closed circular path centered at (cx, cy).
func CirclePath(cx, cy, radius float64) *vector.Path {
	p := &vector.Path{}
	p.Arc(float32(cx), float32(cy), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	return p
}

// PolygonPath returns a closed path through the given points.
// Fewer than three points yield an empty path.
func PolygonPath(points []Vec2) *vector.Path {
	p := &vector.Path{}
	if len(points) < 3 {
		return p
	}
	p.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, pt := range points[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
	return p
}

// --- Callback contexts ---

// ClickContext carries the data passed to a per-object OnClick callback.
// The callback fires for every button transition over the object; inspect
// State to tell presses from releases.
type ClickContext struct {
	ID       ID
	Object   Object
	Position AbsPoint
	Scaled   ScaledPoint
	Button   MouseButton
	State    ButtonState
}

// ButtonContext carries the data passed to scene-level button handlers.
// Hits lists the objects that were notified, in draw order.
type ButtonContext struct {
	Position AbsPoint
	Scaled   ScaledPoint
	Button   MouseButton
	State    ButtonState
	Hits     []ID
}

// PointerContext carries the data passed to scene-level cursor handlers.
type PointerContext struct {
	Position AbsPoint
	Scaled   ScaledPoint
}
