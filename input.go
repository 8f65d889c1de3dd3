package canopy

import "slices"

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type buttonHandler struct {
	id uint32
	fn func(ButtonContext)
}

type handlerRegistry struct {
	cursorMove []pointerHandler
	button     []buttonHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventCursorMoved:
		h.reg.cursorMove = removePointerHandler(h.reg.cursorMove, h.id)
	case EventButtonInput:
		h.reg.button = removeButtonHandler(h.reg.button, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeButtonHandler(s []buttonHandler, id uint32) []buttonHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = buttonHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level event registration ---

// OnCursorMove registers a scene-level callback fired for every cursor
// movement, hit or not.
func (s *Scene) OnCursorMove(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.cursorMove = append(s.handlers.cursorMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventCursorMoved}
}

// OnButton registers a scene-level callback fired for every button
// transition that occurs with a known cursor position. It runs after the
// per-object OnClick callbacks of the hit objects.
func (s *Scene) OnButton(fn func(ButtonContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.button = append(s.handlers.button, buttonHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventButtonInput}
}

// --- Dispatch ---

// HandleInput drains the events queued so far and dispatches them in
// arrival order. Events registered by callbacks during dispatch are left
// for the next call. Returns the number of events handled.
//
// Call once per tick before drawing; Update does this automatically.
func (s *Scene) HandleInput() int {
	n := s.queue.Drain(s.dispatch)
	s.stats.events += n
	return n
}

// dispatch routes one event.
func (s *Scene) dispatch(ev InputEvent) {
	switch ev.Type {
	case EventCursorMoved:
		s.moveCursor(ev.Position)
	case EventButtonInput:
		if !s.hasCursor {
			// No position to test against yet.
			s.stats.unpositioned++
			return
		}
		s.dispatchButton(ev.Button, ev.State)
	}
}

// moveCursor records p as the cursor position. Last write wins.
func (s *Scene) moveCursor(p AbsPoint) {
	s.cursor = p
	s.hasCursor = true
	if len(s.handlers.cursorMove) == 0 {
		return
	}
	ctx := PointerContext{Position: p, Scaled: s.viewport.ToScaled(p)}
	for _, h := range s.handlers.cursorMove {
		h.fn(ctx)
	}
}

// dispatchButton resolves the cursor against the hit index and notifies the
// hit objects in draw order, then the scene-level handlers, then the ECS
// bridge.
func (s *Scene) dispatchButton(button MouseButton, state ButtonState) {
	p := s.cursor
	hits := s.resolveHits(p)
	s.stats.hits += len(hits)

	scaled := s.viewport.ToScaled(p)
	ids := make([]ID, 0, len(hits))
	for _, e := range hits {
		// An earlier callback may have removed this object.
		if s.store.lookup(e.id) != e {
			continue
		}
		ids = append(ids, e.id)
		if e.onClick != nil {
			e.onClick(ClickContext{
				ID:       e.id,
				Object:   e.object,
				Position: p,
				Scaled:   scaled,
				Button:   button,
				State:    state,
			})
		}
	}

	if len(s.handlers.button) > 0 {
		ctx := ButtonContext{Position: p, Scaled: scaled, Button: button, State: state, Hits: ids}
		for _, h := range s.handlers.button {
			h.fn(ctx)
		}
	}

	s.emitInteractionEvents(hits, p, scaled, button, state)
}

// resolveHits returns the live entries whose boxes contain p, sorted by draw
// order and filtered by the scene's hit policy. Index ids with no live store
// entry are skipped.
func (s *Scene) resolveHits(p AbsPoint) []*entry {
	s.hitBuf = s.index.AppendSearch(s.hitBuf[:0], p)
	if len(s.hitBuf) == 0 {
		return nil
	}
	hits := make([]*entry, 0, len(s.hitBuf))
	for _, id := range s.hitBuf {
		if e := s.store.lookup(id); e != nil {
			hits = append(hits, e)
		}
	}
	slices.SortFunc(hits, s.store.drawOrder)
	if s.hitPolicy == HitTopmost && len(hits) > 1 {
		hits = hits[len(hits)-1:]
	}
	return hits
}

// HitTest returns the ids of the objects under p in draw order, filtered by
// the scene's hit policy. It does not fire callbacks.
func (s *Scene) HitTest(p AbsPoint) []ID {
	hits := s.resolveHits(p)
	ids := make([]ID, len(hits))
	for i, e := range hits {
		ids[i] = e.id
	}
	return ids
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvents(hits []*entry, p AbsPoint, scaled ScaledPoint,
	button MouseButton, state ButtonState) {
	if s.entities == nil {
		return
	}
	for _, e := range hits {
		if e.entityID == 0 || s.store.lookup(e.id) != e {
			continue
		}
		s.entities.EmitEvent(InteractionEvent{
			Type:     EventButtonInput,
			ObjectID: e.id,
			EntityID: e.entityID,
			Position: p,
			Scaled:   scaled,
			Button:   button,
			State:    state,
		})
	}
}
