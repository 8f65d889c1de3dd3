package canopy

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

// ErrUnknownID is returned when an operation names an object that is not in
// the scene, either because it was never added or because it was removed.
var ErrUnknownID = errors.New("unknown object id")

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, button hits on objects linked with SetEntityID are
// forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	ObjectID ID
	EntityID uint32
	Position AbsPoint
	Scaled   ScaledPoint
	Button   MouseButton
	State    ButtonState
}

// Default SceneConfig values.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// SceneConfig configures NewScene. The zero value is usable: it selects the
// ordered store, HitAll, an input queue of DefaultQueueCapacity events, and a
// DefaultWidth x DefaultHeight viewport.
type SceneConfig struct {
	Mode          StoreMode
	HitPolicy     HitPolicy
	QueueCapacity int
	Width, Height int
}

func (c SceneConfig) withDefaults() SceneConfig {
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = DefaultQueueCapacity
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = DefaultWidth, DefaultHeight
	}
	return c
}

// Scene is the top-level object that owns the object store, the hit index,
// the input queue, and the viewport.
//
// A Scene belongs to the goroutine running the loop. Register is the one
// method that may be called from other goroutines.
type Scene struct {
	store     *Store
	index     *HitIndex
	queue     *InputQueue
	viewport  Viewport
	hitPolicy HitPolicy

	// ClearColor fills the target at the start of Draw when its alpha is
	// non-zero.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files. Empty means
	// "screenshots" in the working directory.
	ScreenshotDir string

	// Input state
	cursor    AbsPoint
	hasCursor bool
	handlers  handlerRegistry
	hitBuf    []ID

	entities   EntityStore
	testRunner *TestRunner
	updateFunc func() error
	debug      bool
	stats      tickStats

	// Frame capture
	frame       uint64
	screenshots []string
	capture     *image.RGBA
}

// NewScene creates an empty scene.
func NewScene(cfg SceneConfig) *Scene {
	cfg = cfg.withDefaults()
	return &Scene{
		store:     NewStore(cfg.Mode),
		index:     NewHitIndex(),
		queue:     NewInputQueue(cfg.QueueCapacity),
		viewport:  Viewport{Width: cfg.Width, Height: cfg.Height},
		hitPolicy: cfg.HitPolicy,
	}
}

// --- Objects ---

// Add inserts obj at the current layer without a hit box and returns its ID.
func (s *Scene) Add(obj Object) ID {
	return s.store.Add(obj)
}

// AddAt inserts obj at the given layer without a hit box and returns its ID.
func (s *Scene) AddAt(obj Object, layer int) ID {
	return s.store.AddAt(obj, layer)
}

// AddInteractive inserts obj at the current layer, indexes obj.Bounds() as
// its hit box, and attaches onClick, which may be nil. If the bounds are
// invalid nothing is inserted.
func (s *Scene) AddInteractive(obj Object, onClick func(ClickContext)) (ID, error) {
	e := s.store.insert(obj, s.store.CurrentLayer())
	if err := s.index.Insert(BoxFromRect(e.id, obj.Bounds())); err != nil {
		s.store.unlink(e)
		return NilID, err
	}
	e.indexed = true
	e.onClick = onClick
	return e.id, nil
}

// SetBounds sets or replaces the hit box of id.
func (s *Scene) SetBounds(id ID, r Rect) error {
	e := s.store.lookup(id)
	if e == nil {
		return fmt.Errorf("canopy: set bounds %s: %w", id, ErrUnknownID)
	}
	if err := s.index.Insert(BoxFromRect(id, r)); err != nil {
		return err
	}
	e.indexed = true
	return nil
}

// ClearBounds removes the hit box of id, making the object non-interactive.
// Returns false if id is unknown or had no box.
func (s *Scene) ClearBounds(id ID) bool {
	e := s.store.lookup(id)
	if e == nil || !e.indexed {
		return false
	}
	s.index.Remove(id)
	e.indexed = false
	return true
}

// Bounds returns the hit box of id.
func (s *Scene) Bounds(id ID) (BoundingBox, bool) {
	return s.index.Bounds(id)
}

// SetOnClick attaches fn to id, replacing any previous callback. A nil fn
// detaches it. Returns false if id is unknown.
func (s *Scene) SetOnClick(id ID, fn func(ClickContext)) bool {
	e := s.store.lookup(id)
	if e == nil {
		return false
	}
	e.onClick = fn
	return true
}

// SetEntityID links id to an ECS entity for the EntityStore bridge. Zero
// unlinks it. Returns false if id is unknown.
func (s *Scene) SetEntityID(id ID, entity uint32) bool {
	e := s.store.lookup(id)
	if e == nil {
		return false
	}
	e.entityID = entity
	return true
}

// Remove deletes id from the store and the hit index and returns the object.
func (s *Scene) Remove(id ID) (Object, bool) {
	e := s.store.lookup(id)
	if e == nil {
		return nil, false
	}
	if e.indexed {
		s.index.Remove(id)
	}
	s.store.unlink(e)
	return e.object, true
}

// RemoveLayer deletes every object on layer, together with their hit boxes,
// and returns them in draw order. Returns nil if the layer is empty.
func (s *Scene) RemoveLayer(layer int) []Object {
	removed := s.store.removeLayer(layer)
	if len(removed) == 0 {
		return nil
	}
	objs := make([]Object, len(removed))
	for i, e := range removed {
		if e.indexed {
			s.index.Remove(e.id)
		}
		objs[i] = e.object
	}
	return objs
}

// Get returns the object with the given ID. Objects are pointers, so the
// caller may edit paint fields in place. Edits to geometry do not move the
// hit box; call SetBounds for that.
func (s *Scene) Get(id ID) (Object, bool) {
	return s.store.Get(id)
}

// Layer returns the layer id was inserted at.
func (s *Scene) Layer(id ID) (int, bool) {
	return s.store.Layer(id)
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return s.store.Len()
}

// Objects iterates the scene's objects in draw order.
func (s *Scene) Objects() iter.Seq2[ID, Object] {
	return s.store.All()
}

// Clear removes every object and hit box. Handlers, the cursor, and the
// layer cursor are kept.
func (s *Scene) Clear() {
	s.store.Clear()
	s.index.Clear()
}

// PushLayer raises the layer used by subsequent Add calls.
func (s *Scene) PushLayer() { s.store.PushLayer() }

// PopLayer lowers the layer used by subsequent Add calls, saturating at 0.
func (s *Scene) PopLayer() { s.store.PopLayer() }

// CurrentLayer returns the layer Add assigns.
func (s *Scene) CurrentLayer() int { return s.store.CurrentLayer() }

// StoreMode returns the storage strategy chosen at construction.
func (s *Scene) StoreMode() StoreMode { return s.store.Mode() }

// --- Input ---

// Register queues ev for the next HandleInput. Safe for concurrent use.
func (s *Scene) Register(ev InputEvent) {
	s.queue.Register(ev)
}

// Queue returns the scene's input queue, for producers that should not hold
// the Scene itself.
func (s *Scene) Queue() *InputQueue {
	return s.queue
}

// Cursor returns the last cursor position seen by HandleInput. The second
// result is false until a cursor event has been handled.
func (s *Scene) Cursor() (AbsPoint, bool) {
	return s.cursor, s.hasCursor
}

// HitPolicy returns the policy applied to button hits.
func (s *Scene) HitPolicy() HitPolicy {
	return s.hitPolicy
}

// SetHitPolicy changes the policy applied to button hits.
func (s *Scene) SetHitPolicy(p HitPolicy) {
	s.hitPolicy = p
}

// --- Viewport ---

// Viewport returns the current viewport.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// Resize updates the viewport. Non-positive sizes are ignored and reported
// with false.
func (s *Scene) Resize(width, height int) bool {
	vp, err := NewViewport(width, height)
	if err != nil {
		Logger().Warn("canopy: resize ignored", "err", err)
		return false
	}
	s.viewport = vp
	return true
}

// --- Loop ---

// Update advances the test runner, if any, then handles queued input.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.HandleInput()
	s.debugLog()
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.entities = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick input
// statistics are logged at debug level through Logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
