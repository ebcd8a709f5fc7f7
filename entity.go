package roster

import (
	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque (index, generation) handle. It is copyable and
// comparable, carries no payload, and is only meaningful to the manager that
// issued it.
type Entity struct {
	idx        uint32
	generation uint32
}

// Index returns the entity's slot index. Indices are recycled after destroy;
// compare whole handles, not indices, to identify a logical entity.
func (e Entity) Index() uint32 {
	return e.idx
}

// Generation returns the recycle counter for the entity's index.
func (e Entity) Generation() uint32 {
	return e.generation
}

// slot tracks one allocated index. The mask records which declared kinds
// currently hold a value for the index.
type slot struct {
	generation uint32
	alive      bool
	mask       mask.Mask
}

// allocator owns entity identity and lifecycle. An index is alive in at most
// one generation at a time; every delete strictly increments the slot
// generation so prior handles can never address live data again.
type allocator struct {
	slots []slot
	free  []uint32
}

func newAllocator() *allocator {
	return &allocator{
		slots: make([]slot, 0, Config.initialEntityCapacity),
	}
}

// create reuses the most recently freed index if one exists, else appends a
// new slot. Fresh indices start at generation 0.
func (a *allocator) create() Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.alive = true
		return Entity{idx: idx, generation: s.generation}
	}
	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{alive: true})
	return Entity{idx: idx}
}

// alive reports whether the handle still addresses its slot: the index is
// known, the generations match, and the slot has not been freed.
func (a *allocator) alive(e Entity) bool {
	if int(e.idx) >= len(a.slots) {
		return false
	}
	s := a.slots[e.idx]
	return s.alive && s.generation == e.generation
}

// delete frees the handle's slot, bumps its generation, and recycles the
// index. The handle and every prior copy of it become permanently stale.
func (a *allocator) delete(e Entity) error {
	if int(e.idx) >= len(a.slots) {
		return InvalidEntityError{Entity: e}
	}
	s := &a.slots[e.idx]
	if !s.alive || s.generation != e.generation {
		return DoubleDeleteError{Entity: e}
	}
	s.alive = false
	s.generation++
	s.mask = mask.Mask{}
	a.free = append(a.free, e.idx)
	return nil
}

// slotOf returns the live slot for a handle, or nil if the handle is stale
// or unknown.
func (a *allocator) slotOf(e Entity) *slot {
	if !a.alive(e) {
		return nil
	}
	return &a.slots[e.idx]
}

// each walks alive entities in ascending index order. This walk is the
// source of the deterministic iteration order queries guarantee.
func (a *allocator) each(yield func(Entity) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		if !yield(Entity{idx: uint32(i), generation: s.generation}) {
			return
		}
	}
}

// count returns the number of alive entities.
func (a *allocator) count() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].alive {
			n++
		}
	}
	return n
}
