package canopy

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidBounds is returned when a bounding box has NaN coordinates or a
// top-left corner that lies below or right of its bottom-right corner.
var ErrInvalidBounds = errors.New("invalid bounding box")

// BoundingBox is the axis-aligned hit-test proxy for one object.
// TopLeft must not exceed BottomRight on either axis; zero area is allowed.
type BoundingBox struct {
	ID          ID
	TopLeft     AbsPoint
	BottomRight AbsPoint
}

// BoxFromRect builds a bounding box for id covering r.
func BoxFromRect(id ID, r Rect) BoundingBox {
	return BoundingBox{ID: id, TopLeft: r.TopLeft(), BottomRight: r.BottomRight()}
}

// Validate reports ErrInvalidBounds for NaN coordinates or inverted corners.
func (b BoundingBox) Validate() error {
	if math.IsNaN(b.TopLeft.X) || math.IsNaN(b.TopLeft.Y) ||
		math.IsNaN(b.BottomRight.X) || math.IsNaN(b.BottomRight.Y) {
		return ErrInvalidBounds
	}
	if b.TopLeft.X > b.BottomRight.X || b.TopLeft.Y > b.BottomRight.Y {
		return ErrInvalidBounds
	}
	return nil
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (b BoundingBox) Contains(p AbsPoint) bool {
	return p.X >= b.TopLeft.X && p.X <= b.BottomRight.X &&
		p.Y >= b.TopLeft.Y && p.Y <= b.BottomRight.Y
}

// --- Index internals ---

// hitAxis names one of the four sorted projections.
type hitAxis uint8

const (
	axisXStart hitAxis = iota
	axisXEnd
	axisYStart
	axisYEnd
	numAxes
)

// hitSlot is one arena cell. Slots are recycled through the free list; the
// per-slot mark/count pair is scratch space for Search.
type hitSlot struct {
	box   BoundingBox
	mark  uint32
	count uint8
}

// HitIndex answers point-in-box queries over a set of bounding boxes.
//
// Boxes live in an arena of slots. Four permutation arrays hold slot indices
// sorted ascending by left x, right x, top y, and bottom y. A query is four
// interval membership tests, each a binary search plus a contiguous run,
// followed by an intersection over the runs.
//
// HitIndex is not safe for concurrent use; Search writes per-slot scratch
// state.
type HitIndex struct {
	slots []hitSlot
	free  []int32
	byID  map[ID]int32
	axes  [numAxes][]int32
	stamp uint32
}

// NewHitIndex creates an empty index.
func NewHitIndex() *HitIndex {
	return &HitIndex{byID: make(map[ID]int32)}
}

// key returns the scalar that orders slot on axis a.
func (h *HitIndex) key(a hitAxis, slot int32) float64 {
	b := &h.slots[slot].box
	switch a {
	case axisXStart:
		return b.TopLeft.X
	case axisXEnd:
		return b.BottomRight.X
	case axisYStart:
		return b.TopLeft.Y
	default:
		return b.BottomRight.Y
	}
}

// lowerBound returns the first position on axis a whose key is >= v.
func (h *HitIndex) lowerBound(a hitAxis, v float64) int {
	list := h.axes[a]
	return sort.Search(len(list), func(i int) bool {
		return h.key(a, list[i]) >= v
	})
}

// upperBound returns the first position on axis a whose key is > v.
func (h *HitIndex) upperBound(a hitAxis, v float64) int {
	list := h.axes[a]
	return sort.Search(len(list), func(i int) bool {
		return h.key(a, list[i]) > v
	})
}

// Len returns the number of indexed boxes.
func (h *HitIndex) Len() int {
	return len(h.byID)
}

// Contains reports whether id has a box in the index.
func (h *HitIndex) Contains(id ID) bool {
	_, ok := h.byID[id]
	return ok
}

// Bounds returns the indexed box for id.
func (h *HitIndex) Bounds(id ID) (BoundingBox, bool) {
	slot, ok := h.byID[id]
	if !ok {
		return BoundingBox{}, false
	}
	return h.slots[slot].box, true
}

// Insert adds box to the index. If box.ID is already indexed, its previous
// box is replaced. Returns ErrInvalidBounds for NaN or inverted boxes.
func (h *HitIndex) Insert(box BoundingBox) error {
	if err := box.Validate(); err != nil {
		return fmt.Errorf("canopy: insert %s: %w", box.ID, err)
	}
	if h.byID == nil {
		h.byID = make(map[ID]int32)
	}
	if _, ok := h.byID[box.ID]; ok {
		h.Remove(box.ID)
	}

	slot := h.allocSlot()
	h.slots[slot] = hitSlot{box: box}
	h.byID[box.ID] = slot

	for a := hitAxis(0); a < numAxes; a++ {
		// Insert after equal keys so equal scalars keep insertion order.
		pos := h.upperBound(a, h.key(a, slot))
		list := append(h.axes[a], 0)
		copy(list[pos+1:], list[pos:])
		list[pos] = slot
		h.axes[a] = list
	}
	return nil
}

// allocSlot returns a free slot index, growing the arena when needed.
func (h *HitIndex) allocSlot() int32 {
	if n := len(h.free); n > 0 {
		slot := h.free[n-1]
		h.free = h.free[:n-1]
		return slot
	}
	h.slots = append(h.slots, hitSlot{})
	return int32(len(h.slots) - 1)
}

// Remove deletes the box for id. Scalars are not unique, so each projection
// is located by scalar first and then by slot among the equal keys.
// Returns false if id was not indexed.
func (h *HitIndex) Remove(id ID) bool {
	slot, ok := h.byID[id]
	if !ok {
		return false
	}
	for a := hitAxis(0); a < numAxes; a++ {
		k := h.key(a, slot)
		list := h.axes[a]
		for i := h.lowerBound(a, k); i < len(list) && h.key(a, list[i]) == k; i++ {
			if list[i] == slot {
				copy(list[i:], list[i+1:])
				h.axes[a] = list[:len(list)-1]
				break
			}
		}
	}
	h.slots[slot] = hitSlot{}
	h.free = append(h.free, slot)
	delete(h.byID, id)
	return true
}

// Clear removes every box. The backing arrays are kept for reuse.
func (h *HitIndex) Clear() {
	for a := range h.axes {
		h.axes[a] = h.axes[a][:0]
	}
	h.slots = h.slots[:0]
	h.free = h.free[:0]
	clear(h.byID)
	h.stamp = 0
}

// Search returns the ids of every box containing p, boundaries inclusive.
// Each id appears once; order is unspecified.
func (h *HitIndex) Search(p AbsPoint) []ID {
	return h.AppendSearch(nil, p)
}

// AppendSearch appends the ids of every box containing p to dst and returns
// the extended slice.
func (h *HitIndex) AppendSearch(dst []ID, p AbsPoint) []ID {
	if len(h.byID) == 0 || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return dst
	}

	// front: starts at or before the point. behind: ends at or after it.
	runs := [numAxes][]int32{
		axisXStart: h.axes[axisXStart][:h.upperBound(axisXStart, p.X)],
		axisXEnd:   h.axes[axisXEnd][h.lowerBound(axisXEnd, p.X):],
		axisYStart: h.axes[axisYStart][:h.upperBound(axisYStart, p.Y)],
		axisYEnd:   h.axes[axisYEnd][h.lowerBound(axisYEnd, p.Y):],
	}
	for _, run := range runs {
		if len(run) == 0 {
			return dst
		}
	}

	h.nextStamp()
	stamp := h.stamp
	for a := hitAxis(0); a < numAxes-1; a++ {
		for _, slot := range runs[a] {
			s := &h.slots[slot]
			if s.mark != stamp {
				s.mark = stamp
				s.count = 0
			}
			s.count++
		}
	}
	// A slot appears at most once per run, so three marks mean it was in
	// every earlier run.
	for _, slot := range runs[numAxes-1] {
		s := &h.slots[slot]
		if s.mark == stamp && s.count == uint8(numAxes-1) {
			dst = append(dst, s.box.ID)
		}
	}
	return dst
}

// nextStamp advances the query stamp, resetting all marks on wraparound.
func (h *HitIndex) nextStamp() {
	h.stamp++
	if h.stamp == 0 {
		for i := range h.slots {
			h.slots[i].mark = 0
		}
		h.stamp = 1
	}
}
