package canopy

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultFontSize = 16

// Text is a run of styled text laid out inside a box.
//
// When Box has zero size, Bounds measures the laid-out text at the box
// origin. LineHeight of zero uses the face's natural line height.
type Text struct {
	Content    string
	FontSize   float64
	LineHeight float64
	Color      Color
	Box        Rect

	// Source is the font to shape with. Nil uses the bundled Go Regular face.
	Source *text.GoTextFaceSource
}

// NewText creates a text object with the given content, size, and color,
// positioned at (x, y).
func NewText(content string, size float64, c Color, x, y float64) *Text {
	return &Text{
		Content:  content,
		FontSize: size,
		Color:    c,
		Box:      Rect{X: x, Y: y},
	}
}

// Kind returns ObjectText.
func (t *Text) Kind() ObjectKind { return ObjectText }

// Bounds returns the layout box, or the measured extent of the content when
// the box has no size.
func (t *Text) Bounds() Rect {
	if t.Box.Width > 0 || t.Box.Height > 0 {
		return t.Box
	}
	face, err := t.face()
	if err != nil {
		Logger().Warn("canopy: text bounds", "err", err)
		return Rect{X: t.Box.X, Y: t.Box.Y}
	}
	w, h := text.Measure(t.Content, face, t.lineSpacing(face))
	return Rect{X: t.Box.X, Y: t.Box.Y, Width: w, Height: h}
}

// face builds the GoTextFace used to shape and draw the text.
func (t *Text) face() (*text.GoTextFace, error) {
	src := t.Source
	if src == nil {
		var err error
		src, err = defaultFaceSource()
		if err != nil {
			return nil, err
		}
	}
	size := t.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// lineSpacing returns the distance between baselines for face.
func (t *Text) lineSpacing(face *text.GoTextFace) float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// --- Font sources ---

// defaultFaceSource parses the bundled Go Regular face once and shares it.
var defaultFaceSource = sync.OnceValues(func() (*text.GoTextFaceSource, error) {
	return LoadFontSource(goregular.TTF)
})

// LoadFontSource parses TrueType or OpenType data into a face source that
// Text objects can share.
func LoadFontSource(ttfData []byte) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to parse font data: %w", err)
	}
	return src, nil
}
