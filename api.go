package roster

import (
	"iter"
	"time"

	"github.com/TheBitDrifter/table"
)

// Component identifies one declared component kind. Kinds are table element
// types so they interoperate with the rest of the Bappa storage stack.
type Component interface {
	table.ElementType
}

// Storage is the typed capability every backing structure provides. Lookups
// are keyed by entity index only; generation validation belongs to the
// EntityManager.
type Storage[T any] interface {
	Insert(idx uint32, value T)
	Get(idx uint32) (*T, bool)
	Remove(idx uint32) (T, bool)
	Contains(idx uint32) bool
}

// AnyStorage is the type-erased surface the manager uses to purge dead
// entities uniformly across kinds.
type AnyStorage interface {
	Discard(idx uint32) bool
	Contains(idx uint32) bool
	Clear()
	Len() int
}

// storageBacked is how a declared component supplies its storage strategy.
type storageBacked interface {
	newStorage() AnyStorage
}

// QueryNode evaluates an entity against a filter tree.
type QueryNode interface {
	Evaluate(mgr *EntityManager, entity Entity) bool
}

// Filter is a single conjunctive check contributed to a query: the component
// kind it requires plus a predicate over the current stored value.
type Filter interface {
	Kind() Component
	Match(mgr *EntityManager, entity Entity) bool
}

// System is a unit of host logic executed by a SystemManager.
type System interface {
	Name() string
	Run(now time.Time) RefreshPeriod
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	Register(string, T) (int, error)
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
	Entity() Entity
}
