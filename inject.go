package canopy

// Synthetic input goes through the same InputQueue as window input, so it is
// dispatched by the next HandleInput and is subject to the same drop-oldest
// backpressure. Coordinates are absolute pixels, matching what a screenshot
// of the window shows.

// InjectMove queues a cursor movement to (x, y).
func (s *Scene) InjectMove(x, y float64) {
	s.queue.Register(CursorMoved(AbsPoint{X: x, Y: y}))
}

// InjectButton queues a button transition at the current cursor position.
func (s *Scene) InjectButton(state ButtonState, button MouseButton) {
	s.queue.Register(ButtonInput(state, button))
}

// InjectPress queues a cursor movement to (x, y) followed by a left button
// press.
func (s *Scene) InjectPress(x, y float64) {
	s.InjectMove(x, y)
	s.InjectButton(ButtonPressed, MouseButtonLeft)
}

// InjectRelease queues a cursor movement to (x, y) followed by a left button
// release.
func (s *Scene) InjectRelease(x, y float64) {
	s.InjectMove(x, y)
	s.InjectButton(ButtonReleased, MouseButtonLeft)
}

// InjectClick queues a left press and release at (x, y). The three events
// are handled by a single HandleInput.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectMove(x, y)
	s.InjectButton(ButtonPressed, MouseButtonLeft)
	s.InjectButton(ButtonReleased, MouseButtonLeft)
}
