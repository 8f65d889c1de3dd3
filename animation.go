package canopy

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 paint fields of one scene object.
// Create one via TweenColor or TweenAlpha and call Update(dt) each tick.
// If the object is removed from its scene, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	scene  *Scene
	target ID
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. If the target has been removed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.scene.store.lookup(g.target) == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// paintColor returns the color field that paints obj.
func paintColor(obj Object) *Color {
	switch o := obj.(type) {
	case *Shape:
		return &o.Brush.Color
	case *Text:
		return &o.Color
	}
	return nil
}

func tweenTarget(s *Scene, id ID) (*Color, error) {
	obj, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("canopy: tween %s: %w", id, ErrUnknownID)
	}
	c := paintColor(obj)
	if c == nil {
		return nil, fmt.Errorf("canopy: tween %s: object has no paint color", id)
	}
	return c, nil
}

// TweenColor creates a TweenGroup that animates all four components of the
// object's paint color (a shape's brush or a text's color) to the target
// color over the specified duration.
func TweenColor(s *Scene, id ID, to Color, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	c, err := tweenTarget(s, id)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 4, scene: s, target: id}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g, nil
}

// TweenAlpha creates a TweenGroup that animates the alpha of the object's
// paint color to the target value over the specified duration.
func TweenAlpha(s *Scene, id ID, to float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	c, err := tweenTarget(s, id)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 1, scene: s, target: id}
	g.tweens[0] = gween.New(float32(c.A), float32(to), duration, fn)
	g.fields[0] = &c.A
	return g, nil
}
