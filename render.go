package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints every object onto screen in draw order: ascending layer, then
// insertion order within a layer (or store order in unordered mode).
// Queued screenshots are taken from the finished frame.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.frame++
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, e := range s.store.entries {
		switch obj := e.object.(type) {
		case *Shape:
			drawShape(screen, obj)
		case *Text:
			drawText(screen, obj)
		}
	}
	s.captureFrame(screen)
}

// drawShape fills the shape's path with its brush color using the non-zero
// winding rule.
func drawShape(target *ebiten.Image, sh *Shape) {
	if sh.Path == nil || sh.Brush.Color.A <= 0 {
		return
	}
	fill := &vector.FillOptions{FillRule: vector.FillRuleNonZero}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(sh.Brush.Color.toRGBA())
	vector.FillPath(target, sh.Path, fill, op)
}

// drawText shapes and draws t at the top-left of its box.
func drawText(target *ebiten.Image, t *Text) {
	if t.Content == "" || t.Color.A <= 0 {
		return
	}
	face, err := t.face()
	if err != nil {
		Logger().Warn("canopy: text draw skipped", "err", err)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.Box.X, t.Box.Y)
	op.ColorScale.ScaleWithColor(t.Color.toRGBA())
	op.LineSpacing = t.lineSpacing(face)
	text.Draw(target, t.Content, face, op)
}
