package roster

import "fmt"

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAdd
	opRemove
)

type operation struct {
	typ    operationType
	amount int
	entity Entity
	apply  func(*EntityManager) error
}

// opQueue holds structural mutations requested while the manager was locked.
// Creates apply first, then component ops, then destroys; component ops
// against an entity with a pending destroy are dropped.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
	}
}

func (q *opQueue) enqueueCreate(amount int) {
	q.createOps = append(q.createOps, operation{typ: opCreate, amount: amount})
}

func (q *opQueue) enqueueDestroy(entity Entity) {
	if _, exists := q.pendingDestroy[entity]; exists {
		return
	}
	q.pendingDestroy[entity] = struct{}{}

	// Drop pending component operations for the doomed entity
	for i := range q.componentOps {
		if q.componentOps[i].entity == entity {
			q.componentOps[i].typ = -1
		}
	}
	q.destroyOps = append(q.destroyOps, operation{typ: opDestroy, entity: entity})
}

func (q *opQueue) enqueueComponentOp(typ operationType, entity Entity, apply func(*EntityManager) error) {
	if _, doomed := q.pendingDestroy[entity]; doomed {
		return
	}
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: entity,
		apply:  apply,
	})
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 && len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (mgr *EntityManager) processOperationQueue() error {
	if mgr.ops.empty() {
		return nil
	}

	for _, op := range mgr.ops.createOps {
		for range op.amount {
			mgr.alloc.create()
		}
	}

	for _, op := range mgr.ops.componentOps {
		if op.typ != opAdd && op.typ != opRemove {
			continue
		}
		// The entity may have died between enqueue and drain
		if !mgr.Alive(op.entity) {
			continue
		}
		if err := op.apply(mgr); err != nil {
			return fmt.Errorf("failed to apply queued component op: %w", err)
		}
	}

	for _, op := range mgr.ops.destroyOps {
		if !mgr.Alive(op.entity) {
			continue
		}
		if err := mgr.DestroyEntity(op.entity); err != nil {
			return fmt.Errorf("failed to apply queued destroy: %w", err)
		}
	}

	mgr.ops.createOps = mgr.ops.createOps[:0]
	mgr.ops.componentOps = mgr.ops.componentOps[:0]
	mgr.ops.destroyOps = mgr.ops.destroyOps[:0]
	clear(mgr.ops.pendingDestroy)
	return nil
}
