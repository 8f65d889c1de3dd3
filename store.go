package canopy

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"sort"
)

// entry is a Store cell: the object plus the bookkeeping that orders it and
// routes input to it.
type entry struct {
	id      ID
	object  Object
	layer   int
	seq     uint64
	pos     int // index into Store.entries; unordered mode only
	onClick func(ClickContext)
	indexed bool // has a box in the scene's HitIndex

	// entityID links the object to an ECS entity; 0 means none.
	entityID uint32
}

// before reports whether e draws before other.
func (e *entry) before(other *entry) bool {
	if e.layer != other.layer {
		return e.layer < other.layer
	}
	return e.seq < other.seq
}

// Store owns the live objects of a scene, keyed by ID.
//
// A Store keeps a flat layer cursor: PushLayer increments it, PopLayer
// decrements it (never below zero), and Add tags new objects with its
// current value. Lower layers draw first.
//
// In StoreOrdered mode objects are kept sorted by layer with insertion order
// preserved inside a layer. In StoreUnordered mode insertion and removal are
// O(1) and draw order is insertion order until a removal moves the last
// object into the freed position.
type Store struct {
	mode    StoreMode
	entries []*entry
	byID    map[ID]*entry
	layer   int
	nextSeq uint64
}

// NewStore creates an empty store using the given storage strategy.
func NewStore(mode StoreMode) *Store {
	return &Store{mode: mode, byID: make(map[ID]*entry)}
}

// Mode returns the storage strategy.
func (s *Store) Mode() StoreMode {
	return s.mode
}

// Len returns the number of live objects.
func (s *Store) Len() int {
	return len(s.entries)
}

// --- Layer cursor ---

// PushLayer raises the layer used by subsequent Add calls.
// Panics if the counter would overflow.
func (s *Store) PushLayer() {
	if s.layer == math.MaxInt {
		panic("canopy: too many layers pushed")
	}
	s.layer++
}

// PopLayer lowers the layer used by subsequent Add calls, saturating at 0.
func (s *Store) PopLayer() {
	if s.layer > 0 {
		s.layer--
	}
}

// CurrentLayer returns the layer that Add assigns.
func (s *Store) CurrentLayer() int {
	return s.layer
}

// --- Insertion and removal ---

// Add inserts obj at the current layer and returns its new ID.
// Panics if obj is nil.
func (s *Store) Add(obj Object) ID {
	return s.AddAt(obj, s.layer)
}

// AddAt inserts obj at the given layer and returns its new ID.
// Panics if obj is nil or layer is negative.
func (s *Store) AddAt(obj Object, layer int) ID {
	return s.insert(obj, layer).id
}

func (s *Store) insert(obj Object, layer int) *entry {
	if obj == nil {
		panic("canopy: cannot add nil object")
	}
	if layer < 0 {
		panic("canopy: layer must not be negative")
	}
	if s.byID == nil {
		s.byID = make(map[ID]*entry)
	}
	e := &entry{id: newID(), object: obj, layer: layer, seq: s.nextSeq}
	s.nextSeq++

	switch s.mode {
	case StoreOrdered:
		// After the last entry with an equal layer: append semantics.
		i := sort.Search(len(s.entries), func(i int) bool {
			return s.entries[i].layer > layer
		})
		s.entries = append(s.entries, nil)
		copy(s.entries[i+1:], s.entries[i:])
		s.entries[i] = e
	default:
		e.pos = len(s.entries)
		s.entries = append(s.entries, e)
	}
	s.byID[e.id] = e
	return e
}

// Remove deletes the object with the given ID and returns it.
// A stale or unknown ID returns (nil, false).
func (s *Store) Remove(id ID) (Object, bool) {
	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	s.unlink(e)
	return e.object, true
}

// RemoveLayer deletes every object on layer and returns them in draw order.
// Returns nil if the layer is empty. The layer cursor is left unchanged.
func (s *Store) RemoveLayer(layer int) []Object {
	removed := s.removeLayer(layer)
	if len(removed) == 0 {
		return nil
	}
	objs := make([]Object, len(removed))
	for i, e := range removed {
		objs[i] = e.object
	}
	return objs
}

func (s *Store) removeLayer(layer int) []*entry {
	var removed []*entry
	switch s.mode {
	case StoreOrdered:
		// Entries of one layer form a single contiguous run.
		lo := sort.Search(len(s.entries), func(i int) bool {
			return s.entries[i].layer >= layer
		})
		hi := lo
		for hi < len(s.entries) && s.entries[hi].layer == layer {
			hi++
		}
		if lo == hi {
			return nil
		}
		removed = slices.Clone(s.entries[lo:hi])
		s.entries = slices.Delete(s.entries, lo, hi)
	default:
		kept := s.entries[:0]
		for _, e := range s.entries {
			if e.layer == layer {
				removed = append(removed, e)
				continue
			}
			e.pos = len(kept)
			kept = append(kept, e)
		}
		clear(s.entries[len(kept):])
		s.entries = kept
	}
	for _, e := range removed {
		delete(s.byID, e.id)
	}
	return removed
}

// drawOrder compares a and b by draw position: negative if a draws first.
// Unordered mode draws in slice order, which swap-remove decouples from
// insertion order.
func (s *Store) drawOrder(a, b *entry) int {
	if s.mode == StoreOrdered {
		switch {
		case a.before(b):
			return -1
		case b.before(a):
			return 1
		}
		return 0
	}
	return cmp.Compare(a.pos, b.pos)
}

// unlink detaches e from the entry slice and the id map.
func (s *Store) unlink(e *entry) {
	i := s.position(e)
	last := len(s.entries) - 1
	switch s.mode {
	case StoreOrdered:
		copy(s.entries[i:], s.entries[i+1:])
		s.entries[last] = nil
		s.entries = s.entries[:last]
	default:
		if i != last {
			s.entries[i] = s.entries[last]
			s.entries[i].pos = i
		}
		s.entries[last] = nil
		s.entries = s.entries[:last]
	}
	delete(s.byID, e.id)
}

// position returns the index of e in the entry slice. In ordered mode the
// slice is sorted by (layer, seq), both unique per entry, so a binary search
// finds it exactly.
func (s *Store) position(e *entry) int {
	if s.mode == StoreOrdered {
		return sort.Search(len(s.entries), func(i int) bool {
			return !s.entries[i].before(e)
		})
	}
	return e.pos
}

// Clear removes every object. The layer cursor is left unchanged.
func (s *Store) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	clear(s.byID)
}

// --- Lookup ---

// Get returns the object with the given ID. The returned value is the stored
// pointer, so edits to its fields are visible on the next draw.
func (s *Store) Get(id ID) (Object, bool) {
	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return e.object, true
}

// Layer returns the layer the object was inserted at.
func (s *Store) Layer(id ID) (int, bool) {
	e, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return e.layer, true
}

// lookup returns the cell for id, or nil.
func (s *Store) lookup(id ID) *entry {
	return s.byID[id]
}

// All iterates objects in draw order. The store must not be modified during
// iteration.
func (s *Store) All() iter.Seq2[ID, Object] {
	return func(yield func(ID, Object) bool) {
		for _, e := range s.entries {
			if !yield(e.id, e.object) {
				return
			}
		}
	}
}

// IDs returns the object IDs in draw order.
func (s *Store) IDs() []ID {
	ids := make([]ID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}
