// Package canopy is the scene core of an experimental 2D UI engine built on
// [Ebitengine].
//
// Canopy owns the objects of a scene, orders them into draw layers, keeps a
// spatial index over their bounding boxes, and resolves pointer input to the
// objects under the cursor. Drawing and text shaping are
// delegated to Ebitengine.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := canopy.NewScene(canopy.SceneConfig{})
//	// ... add objects ...
//	canopy.Run(scene, canopy.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself, register input events
// with [Scene.Register], and call [Scene.Update] and [Scene.Draw] directly.
//
// # Objects and layers
//
// An [Object] is a [*Shape] (a closed vector path with a solid [Brush]) or a
// [*Text]. Objects are identified by an [ID] assigned on insertion.
//
// Every object carries a layer. Lower layers draw first; inside a layer,
// objects draw in insertion order. [Scene.PushLayer] and [Scene.PopLayer]
// move a flat layer cursor that [Scene.Add] uses:
//
//	bg := scene.Add(canopy.NewShape(canopy.RectPath(screen), canopy.SolidBrush(gray)))
//	scene.PushLayer()
//	btn, _ := scene.AddInteractive(button, func(ctx canopy.ClickContext) {
//		if ctx.State == canopy.ButtonReleased {
//			// ...
//		}
//	})
//	scene.PopLayer()
//
// A [SceneConfig] selects [StoreOrdered] (the default) or [StoreUnordered],
// which trades stable draw order for O(1) removal.
//
// # Hit testing
//
// Objects added with [Scene.AddInteractive], or given a box with
// [Scene.SetBounds], are indexed in a [HitIndex]. On each button transition
// the cursor is tested against every box (edges inclusive) and OnClick fires
// for each hit in draw order. [HitTopmost] restricts dispatch to the last
// object drawn under the cursor.
//
// # Coordinates
//
// Pixel coordinates ([AbsPoint]) have their origin at the top-left with y
// down. Normalized coordinates ([ScaledPoint]) span [-1, 1] with y up.
// [Viewport.ToScaled] and [Viewport.ToAbs] convert between them.
//
// # Input
//
// Input events go through a bounded [InputQueue]. When the queue is full the
// oldest event is dropped. [Scene.Register] is safe to call from any
// goroutine; everything else belongs to the loop goroutine.
//
// # Logging
//
// Canopy is silent by default. Install a [log/slog] logger with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package canopy
