package roster

// AccessibleComponent pairs a component kind's identity with typed access to
// its values. The zero sparse flag selects the dense VecStorage baseline.
type AccessibleComponent[T any] struct {
	Component
	sparse bool
}

// kind exposes the underlying element-type identity so boxed accessor values
// and their inner kinds resolve to the same schema entry.
func (c AccessibleComponent[T]) kind() Component {
	return c.Component
}

func (c AccessibleComponent[T]) newStorage() AnyStorage {
	if c.sparse {
		return NewMapStorage[T]()
	}
	return NewVecStorage[T]()
}

// Where builds a conjunctive filter requiring the kind to be present with a
// value satisfying pred. Predicates read the current stored value and are
// re-evaluated fresh on every iteration, never cached from build time.
func (c AccessibleComponent[T]) Where(pred func(T) bool) Filter {
	return predicateFilter{
		kind: c.Component,
		fn: func(mgr *EntityManager, entity Entity) bool {
			value, err := componentRef(c, mgr, entity)
			if err != nil {
				return false
			}
			return pred(*value)
		},
	}
}

type predicateFilter struct {
	kind Component
	fn   func(*EntityManager, Entity) bool
}

func (f predicateFilter) Kind() Component {
	return f.kind
}

func (f predicateFilter) Match(mgr *EntityManager, entity Entity) bool {
	return f.fn(mgr, entity)
}

// componentRef resolves the typed value pointer for an alive entity, going
// through the manager for schema and liveness validation.
func componentRef[T any](c AccessibleComponent[T], mgr *EntityManager, entity Entity) (*T, error) {
	if err := mgr.validate(entity); err != nil {
		return nil, err
	}
	sto, err := storageOf(c, mgr)
	if err != nil {
		return nil, err
	}
	value, ok := sto.Get(entity.idx)
	if !ok {
		return nil, MissingComponentError{Component: c.Component}
	}
	return value, nil
}

func storageOf[T any](c AccessibleComponent[T], mgr *EntityManager) (Storage[T], error) {
	pos, ok := mgr.rows[c.Component]
	if !ok {
		return nil, UnknownComponentError{Component: c.Component}
	}
	sto, ok := mgr.storages[pos].(Storage[T])
	if !ok {
		return nil, UnknownComponentError{Component: c.Component}
	}
	return sto, nil
}
