package roster

import (
	"iter"
)

var _ iCursor = &Cursor{}

// Cursor walks the entities matching a query. The match pass runs eagerly on
// first use, so the walk is a snapshot of the state at that moment: entities
// destroyed or mutated mid-walk stay in the sequence, and entities created
// mid-walk never join it. A new cursor over the same query always sees the
// newer state.
//
// The manager is locked for the duration of a walk; structural mutations
// must go through the Enqueue variants, which apply when the walk ends.
type Cursor struct {
	query QueryNode
	mgr   *EntityManager

	matched     []Entity
	pos         int
	initialized bool
}

func newCursor(query QueryNode, mgr *EntityManager) *Cursor {
	return &Cursor{
		query: query,
		mgr:   mgr,
	}
}

// Next advances to the next matching entity, releasing the walk when the
// snapshot is exhausted.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.pos < len(c.matched) {
		c.pos++
		return true
	}
	c.Reset()
	return false
}

// Entity returns the entity at the current position. Only valid after a
// Next call that returned true.
func (c *Cursor) Entity() Entity {
	return c.matched[c.pos-1]
}

// Entities walks the snapshot as a sequence. Breaking out early releases the
// walk just like exhausting it.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.initialize()
		for c.pos < len(c.matched) {
			c.pos++
			if !yield(c.matched[c.pos-1]) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

// TotalMatched returns the size of the snapshot.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched)
}

// Reset rewinds and discards the snapshot, unlocking the manager and
// applying any operations enqueued during the walk. The next use recomputes
// from current state.
func (c *Cursor) Reset() {
	c.matched = nil
	c.pos = 0
	c.initialized = false
	c.mgr.unlock()
}

// initialize materializes the matching entities in ascending index order.
func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.mgr.lock()
	c.mgr.alloc.each(func(entity Entity) bool {
		if c.query.Evaluate(c.mgr, entity) {
			c.matched = append(c.matched, entity)
		}
		return true
	})
	c.pos = 0
	c.initialized = true
}
