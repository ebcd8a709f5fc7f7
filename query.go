package roster

import (
	"github.com/TheBitDrifter/mask"
)

var _ QueryNode = &Query{}

// Query is an ordered list of conjunctive checks over component presence and
// value. It owns no entity data and is reusable across many iterations; all
// checks combine with logical AND.
type Query struct {
	kinds   []Component
	filters []Filter
	funcs   []func(*EntityManager, Entity) bool
}

func newQuery() *Query {
	return &Query{}
}

// Check requires a present value for each given kind.
func (q *Query) Check(components ...Component) *Query {
	q.kinds = append(q.kinds, components...)
	return q
}

// CheckBy requires each filter's kind to be present AND its predicate to
// hold for the current stored value.
func (q *Query) CheckBy(filters ...Filter) *Query {
	q.filters = append(q.filters, filters...)
	return q
}

// CheckFunc adds global checks evaluated against the manager and entity,
// for conditions spanning multiple kinds.
func (q *Query) CheckFunc(fns ...func(*EntityManager, Entity) bool) *Query {
	q.funcs = append(q.funcs, fns...)
	return q
}

// Evaluate reports whether the entity passes every check, short-circuiting
// on the first failure. Presence is tested in one mask comparison before any
// predicate runs.
func (q *Query) Evaluate(mgr *EntityManager, entity Entity) bool {
	s := mgr.alloc.slotOf(entity)
	if s == nil {
		return false
	}

	// Build the requirement mask at evaluation time
	var required mask.Mask
	for _, kind := range q.kinds {
		bit, ok := mgr.bitFor(kind)
		if !ok {
			return false
		}
		required.Mark(bit)
	}
	for _, filter := range q.filters {
		bit, ok := mgr.bitFor(filter.Kind())
		if !ok {
			return false
		}
		required.Mark(bit)
	}
	if !s.mask.ContainsAll(required) {
		return false
	}

	for _, filter := range q.filters {
		if !filter.Match(mgr, entity) {
			return false
		}
	}
	for _, fn := range q.funcs {
		if !fn(mgr, entity) {
			return false
		}
	}
	return true
}
