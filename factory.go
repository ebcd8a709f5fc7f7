package roster

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

// NewManager builds a manager whose schema is exactly the given kinds. The
// schema cannot be extended afterwards.
func (f factory) NewManager(components ...Component) (*EntityManager, error) {
	return newEntityManager(components...)
}

func (f factory) NewQuery() *Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, mgr *EntityManager) *Cursor {
	return newCursor(query, mgr)
}

func (f factory) NewEventBus() *EventBus {
	return newEventBus()
}

func (f factory) NewSystemManager() *SystemManager {
	return newSystemManager()
}

// FactoryNewComponent declares a component kind backed by the dense
// VecStorage baseline.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: table.FactoryNewElementType[T](),
	}
}

// FactoryNewSparseComponent declares a component kind backed by MapStorage,
// for kinds present on few entities.
func FactoryNewSparseComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: table.FactoryNewElementType[T](),
		sparse:    true,
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
