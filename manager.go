package roster

import (
	"fmt"

	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// EntityManager composes one allocator with one storage per declared kind.
// The schema is enumerated once at construction and immutable thereafter;
// callers never address a storage directly.
type EntityManager struct {
	schema   table.Schema
	alloc    *allocator
	kinds    []Component
	storages []AnyStorage
	rows     map[Component]int
	bits     []uint32
	queries  Cache[*Query]
	locked   bool
	ops      opQueue
}

func newEntityManager(components ...Component) (*EntityManager, error) {
	mgr := &EntityManager{
		schema:  table.Factory.NewSchema(),
		alloc:   newAllocator(),
		rows:    make(map[Component]int, len(components)),
		queries: FactoryNewCache[*Query](Config.queryCacheLimit),
		ops:     newOpQueue(),
	}
	for _, component := range components {
		kind := kindOf(component)
		if _, declared := mgr.rows[kind]; declared {
			return nil, DuplicateComponentError{Component: kind}
		}
		backed, ok := component.(storageBacked)
		if !ok {
			return nil, NoStorageStrategyError{Component: component}
		}
		mgr.schema.Register(kind)
		mgr.rows[kind] = len(mgr.kinds)
		mgr.kinds = append(mgr.kinds, kind)
		mgr.storages = append(mgr.storages, backed.newStorage())
		mgr.bits = append(mgr.bits, mgr.schema.RowIndexFor(kind))
	}
	return mgr, nil
}

// kindOf strips accessor wrapping so declared kinds, boxed accessor values,
// and filter kinds all share one schema identity.
func kindOf(c Component) Component {
	if k, ok := c.(interface{ kind() Component }); ok {
		return k.kind()
	}
	return c
}

// CreateEntity allocates a fresh or recycled entity with no components
// attached. It always succeeds, even while the manager is locked: a new
// entity cannot disturb any snapshot already produced.
func (mgr *EntityManager) CreateEntity() Entity {
	return mgr.alloc.create()
}

// DestroyEntity removes the entity's value from every storage that holds
// one, then frees the handle permanently. A dead or stale handle fails with
// a DoubleDeleteError.
func (mgr *EntityManager) DestroyEntity(entity Entity) error {
	if mgr.locked {
		return LockedManagerError{}
	}
	if int(entity.idx) >= len(mgr.alloc.slots) {
		return InvalidEntityError{Entity: entity}
	}
	if !mgr.alloc.alive(entity) {
		return DoubleDeleteError{Entity: entity}
	}
	for _, sto := range mgr.storages {
		sto.Discard(entity.idx)
	}
	return mgr.alloc.delete(entity)
}

// EnqueueDestroyEntity behaves like DestroyEntity when unlocked; while
// locked the destroy is deferred until the lock releases.
func (mgr *EntityManager) EnqueueDestroyEntity(entity Entity) error {
	if !mgr.locked {
		return mgr.DestroyEntity(entity)
	}
	mgr.ops.enqueueDestroy(entity)
	return nil
}

// EnqueueCreateEntities defers the creation of n empty entities until the
// lock releases. When unlocked they are created immediately.
func (mgr *EntityManager) EnqueueCreateEntities(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot create %d entities", n)
	}
	if !mgr.locked {
		for range n {
			mgr.alloc.create()
		}
		return nil
	}
	mgr.ops.enqueueCreate(n)
	return nil
}

// Alive reports whether the handle still addresses a live entity.
func (mgr *EntityManager) Alive(entity Entity) bool {
	return mgr.alloc.alive(entity)
}

// Entity returns the current-generation handle for an index, failing with an
// InvalidEntityError for unknown indices and a StaleEntityError for indices
// with no live entity.
func (mgr *EntityManager) Entity(idx uint32) (Entity, error) {
	if int(idx) >= len(mgr.alloc.slots) {
		return Entity{}, InvalidEntityError{Entity: Entity{idx: idx}}
	}
	s := mgr.alloc.slots[idx]
	if !s.alive {
		return Entity{}, StaleEntityError{Entity: Entity{idx: idx, generation: s.generation}}
	}
	return Entity{idx: idx, generation: s.generation}, nil
}

// EntityCount returns the number of alive entities.
func (mgr *EntityManager) EntityCount() int {
	return mgr.alloc.count()
}

// Collect evaluates the query against current state and returns the matching
// entities as an owned snapshot in ascending index order. The slice stays
// valid while the caller mutates or destroys the entities it references; it
// never retroactively reflects later changes.
func (mgr *EntityManager) Collect(query QueryNode) []Entity {
	cursor := newCursor(query, mgr)
	return iter_util.Collect(cursor.Entities())
}

// RegisterQuery stores a prebuilt query under a name so host systems can
// share it without rebuilding.
func (mgr *EntityManager) RegisterQuery(name string, query *Query) error {
	_, err := mgr.queries.Register(name, query)
	return err
}

// QueryNamed looks up a query registered under name.
func (mgr *EntityManager) QueryNamed(name string) (*Query, bool) {
	idx, ok := mgr.queries.GetIndex(name)
	if !ok {
		return nil, false
	}
	return *mgr.queries.GetItem(idx), true
}

// Locked reports whether structural mutation is currently deferred.
func (mgr *EntityManager) Locked() bool {
	return mgr.locked
}

func (mgr *EntityManager) lock() {
	mgr.locked = true
}

func (mgr *EntityManager) unlock() {
	mgr.locked = false
	if err := mgr.processOperationQueue(); err != nil {
		panic(err)
	}
}

// validate maps a handle to its failure kind: InvalidEntityError for
// never-allocated indices, StaleEntityError for dead or recycled generations.
func (mgr *EntityManager) validate(entity Entity) error {
	if int(entity.idx) >= len(mgr.alloc.slots) {
		return InvalidEntityError{Entity: entity}
	}
	if !mgr.alloc.alive(entity) {
		return StaleEntityError{Entity: entity}
	}
	return nil
}

func (mgr *EntityManager) markPresent(entity Entity, component Component) {
	bit, ok := mgr.bitFor(component)
	if !ok {
		return
	}
	if s := mgr.alloc.slotOf(entity); s != nil {
		s.mask.Mark(bit)
	}
}

func (mgr *EntityManager) markAbsent(entity Entity, component Component) {
	bit, ok := mgr.bitFor(component)
	if !ok {
		return
	}
	if s := mgr.alloc.slotOf(entity); s != nil {
		s.mask.Unmark(bit)
	}
}

// bitFor resolves the mask bit backing a declared kind.
func (mgr *EntityManager) bitFor(component Component) (uint32, bool) {
	pos, ok := mgr.rows[kindOf(component)]
	if !ok {
		return 0, false
	}
	return mgr.bits[pos], true
}
