package roster

// Add attaches the kind's zero value to the entity, overwriting any prior
// value. It fails with a StaleEntityError when the handle is dead.
func (c AccessibleComponent[T]) Add(mgr *EntityManager, entity Entity) error {
	var value T
	return c.AddWithValue(mgr, entity, value)
}

// AddWith attaches the zero value and then applies init to it in place
// before insertion.
func (c AccessibleComponent[T]) AddWith(mgr *EntityManager, entity Entity, init func(*T)) error {
	var value T
	if init != nil {
		init(&value)
	}
	return c.AddWithValue(mgr, entity, value)
}

// AddWithValue attaches an explicit value, overwriting any prior value.
func (c AccessibleComponent[T]) AddWithValue(mgr *EntityManager, entity Entity, value T) error {
	if mgr.locked {
		return LockedManagerError{}
	}
	if err := mgr.validate(entity); err != nil {
		return err
	}
	sto, err := storageOf(c, mgr)
	if err != nil {
		return err
	}
	sto.Insert(entity.idx, value)
	mgr.markPresent(entity, c.Component)
	return nil
}

// GetFrom returns a pointer to the entity's current value for this kind.
func (c AccessibleComponent[T]) GetFrom(mgr *EntityManager, entity Entity) (*T, error) {
	return componentRef(c, mgr, entity)
}

// Update applies f to the entity's current value in place. It fails with a
// MissingComponentError when the kind is absent.
func (c AccessibleComponent[T]) Update(mgr *EntityManager, entity Entity, f func(*T)) error {
	value, err := componentRef(c, mgr, entity)
	if err != nil {
		return err
	}
	f(value)
	return nil
}

// RemoveFrom detaches the kind's value if present. Removing an absent kind is
// a no-op; only a dead handle is an error.
func (c AccessibleComponent[T]) RemoveFrom(mgr *EntityManager, entity Entity) error {
	if mgr.locked {
		return LockedManagerError{}
	}
	if err := mgr.validate(entity); err != nil {
		return err
	}
	sto, err := storageOf(c, mgr)
	if err != nil {
		return err
	}
	if _, removed := sto.Remove(entity.idx); removed {
		mgr.markAbsent(entity, c.Component)
	}
	return nil
}

// Has reports presence without failing on dead handles.
func (c AccessibleComponent[T]) Has(mgr *EntityManager, entity Entity) bool {
	if !mgr.Alive(entity) {
		return false
	}
	sto, err := storageOf(c, mgr)
	if err != nil {
		return false
	}
	return sto.Contains(entity.idx)
}

// GetFromCursor retrieves the value for the entity at the cursor position.
// The cursor only yields alive, matching entities, so lookup cannot miss
// unless the caller removed the component mid-walk.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	value, err := componentRef(c, cursor.mgr, cursor.Entity())
	if err != nil {
		return nil
	}
	return value
}

// GetFromCursorSafe reports presence alongside the value for kinds the
// current query does not guarantee.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	value, err := componentRef(c, cursor.mgr, cursor.Entity())
	if err != nil {
		return false, nil
	}
	return true, value
}

// EnqueueAdd behaves like Add when the manager is unlocked; while locked the
// attach is deferred until the lock releases.
func (c AccessibleComponent[T]) EnqueueAdd(mgr *EntityManager, entity Entity) error {
	var value T
	return c.EnqueueAddWithValue(mgr, entity, value)
}

// EnqueueAddWithValue behaves like AddWithValue with the same deferral rule.
func (c AccessibleComponent[T]) EnqueueAddWithValue(mgr *EntityManager, entity Entity, value T) error {
	if !mgr.locked {
		return c.AddWithValue(mgr, entity, value)
	}
	mgr.ops.enqueueComponentOp(opAdd, entity, func(m *EntityManager) error {
		return c.AddWithValue(m, entity, value)
	})
	return nil
}

// EnqueueRemove behaves like RemoveFrom when the manager is unlocked; while
// locked the detach is deferred until the lock releases.
func (c AccessibleComponent[T]) EnqueueRemove(mgr *EntityManager, entity Entity) error {
	if !mgr.locked {
		return c.RemoveFrom(mgr, entity)
	}
	mgr.ops.enqueueComponentOp(opRemove, entity, func(m *EntityManager) error {
		return c.RemoveFrom(m, entity)
	})
	return nil
}
