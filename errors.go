package roster

import "fmt"

// InvalidEntityError reports a handle whose index was never allocated.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity index %d was never allocated", e.Entity.Index())
}

// StaleEntityError reports a handle whose generation no longer matches its
// slot: the entity was destroyed, possibly recycled since.
type StaleEntityError struct {
	Entity Entity
}

func (e StaleEntityError) Error() string {
	return fmt.Sprintf("stale entity handle (index %d, generation %d)", e.Entity.Index(), e.Entity.Generation())
}

// DoubleDeleteError reports a destroy against an already-dead handle. It
// unwraps to a StaleEntityError since the underlying condition is the same.
type DoubleDeleteError struct {
	Entity Entity
}

func (e DoubleDeleteError) Error() string {
	return fmt.Sprintf("entity (index %d, generation %d) already destroyed", e.Entity.Index(), e.Entity.Generation())
}

func (e DoubleDeleteError) Unwrap() error {
	return StaleEntityError{Entity: e.Entity}
}

// MissingComponentError reports an access to a component kind the entity does
// not currently hold.
type MissingComponentError struct {
	Component Component
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("component not present on entity: %v", e.Component)
}

// UnknownComponentError reports a component kind outside the manager's
// declared schema.
type UnknownComponentError struct {
	Component Component
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("component not in manager schema: %v", e.Component)
}

// DuplicateComponentError reports the same kind declared twice at manager
// construction.
type DuplicateComponentError struct {
	Component Component
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component declared more than once: %v", e.Component)
}

// NoStorageStrategyError reports a declared component that cannot supply a
// backing storage (it was not built via the roster factories).
type NoStorageStrategyError struct {
	Component Component
}

func (e NoStorageStrategyError) Error() string {
	return fmt.Sprintf("component provides no storage strategy: %v", e.Component)
}

type LockedManagerError struct{}

func (e LockedManagerError) Error() string {
	return "manager is currently locked"
}
