package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run. Zero Width or Height uses
// the scene's viewport size.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	ClearColor Color
}

// trackedButtons are polled for edges every tick.
var trackedButtons = [...]struct {
	raw    ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// gameShell adapts a Scene to ebiten.Game. Each tick it turns window input
// into InputEvents on the scene's queue and runs Scene.Update.
type gameShell struct {
	scene     *Scene
	lastX     int
	lastY     int
	hasCursor bool
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		vp := scene.Viewport()
		w, h = vp.Width, vp.Height
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ClearColor.A > 0 {
		scene.ClearColor = cfg.ClearColor
	}
	scene.Resize(w, h)

	if err := ebiten.RunGame(&gameShell{scene: scene}); err != nil {
		return fmt.Errorf("canopy: run: %w", err)
	}
	return nil
}

func (g *gameShell) Update() error {
	g.pollInput()
	g.scene.Update()
	if g.scene.updateFunc != nil {
		return g.scene.updateFunc()
	}
	return nil
}

// SetUpdateFunc sets a callback run by Run once per tick after
// Scene.Update. A non-nil error stops the loop and is returned by Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// pollInput registers a cursor event when the pointer moves and a button
// event for each press or release edge this tick.
func (g *gameShell) pollInput() {
	x, y := ebiten.CursorPosition()
	if !g.hasCursor || x != g.lastX || y != g.lastY {
		g.lastX, g.lastY, g.hasCursor = x, y, true
		g.scene.Register(CursorMoved(AbsPoint{X: float64(x), Y: float64(y)}))
	}
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b.raw) {
			g.scene.Register(ButtonInput(ButtonPressed, b.button))
		}
		if inpututil.IsMouseButtonJustReleased(b.raw) {
			g.scene.Register(ButtonInput(ButtonReleased, b.button))
		}
	}
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen equal to the window size and forwards
// changes to the scene viewport.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.scene.Viewport()
	if outsideWidth == vp.Width && outsideHeight == vp.Height {
		return vp.Width, vp.Height
	}
	if !g.scene.Resize(outsideWidth, outsideHeight) {
		// Minimized windows report zero sizes; keep the last layout.
		return vp.Width, vp.Height
	}
	return outsideWidth, outsideHeight
}
