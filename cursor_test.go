package roster

import (
	"errors"
	"testing"
)

func TestCursorWalk(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	mgr, err := Factory.NewManager(posComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	want := make([]Entity, 0, 5)
	for i := range 5 {
		entity := mgr.CreateEntity()
		posComp.AddWithValue(mgr, entity, Position{X: float64(i)})
		want = append(want, entity)
	}

	query := Factory.NewQuery().Check(posComp)
	cursor := Factory.NewCursor(query, mgr)

	if got := cursor.TotalMatched(); got != 5 {
		t.Fatalf("TotalMatched() = %d, want 5", got)
	}

	var walked []Entity
	for cursor.Next() {
		walked = append(walked, cursor.Entity())
		pos := posComp.GetFromCursor(cursor)
		if pos == nil {
			t.Fatal("GetFromCursor() = nil for matched entity")
		}
	}
	if len(walked) != len(want) {
		t.Fatalf("walked %d entities, want %d", len(walked), len(want))
	}
	for i := range want {
		if walked[i] != want[i] {
			t.Errorf("walk order differs at %d: %v vs %v", i, walked[i], want[i])
		}
	}

	if mgr.Locked() {
		t.Error("manager still locked after exhausted walk")
	}

	// The cursor is restartable and recomputes from current state
	mgr.DestroyEntity(want[0])
	count := 0
	for cursor.Next() {
		count++
	}
	if count != 4 {
		t.Errorf("restarted walk matched %d, want 4", count)
	}
}

func TestCursorLocksStructuralMutation(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	mgr, err := Factory.NewManager(posComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	for range 3 {
		entity := mgr.CreateEntity()
		posComp.Add(mgr, entity)
	}

	query := Factory.NewQuery().Check(posComp)
	cursor := Factory.NewCursor(query, mgr)

	var locked LockedManagerError
	sawLockErrors := false
	for cursor.Next() {
		entity := cursor.Entity()
		if !mgr.Locked() {
			t.Fatal("manager not locked mid-walk")
		}
		if err := mgr.DestroyEntity(entity); !errors.As(err, &locked) {
			t.Errorf("DestroyEntity() mid-walk error = %v, want LockedManagerError", err)
		}
		if err := posComp.Add(mgr, entity); !errors.As(err, &locked) {
			t.Errorf("Add() mid-walk error = %v, want LockedManagerError", err)
		}
		// Value mutation stays legal mid-walk
		if err := posComp.Update(mgr, entity, func(p *Position) { p.X++ }); err != nil {
			t.Errorf("Update() mid-walk error = %v", err)
		}
		sawLockErrors = true
	}
	if !sawLockErrors {
		t.Fatal("walk yielded no entities")
	}
	if mgr.Locked() {
		t.Error("manager still locked after walk")
	}
}

func TestCursorEnqueuedDestroyAppliesAfterWalk(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	mgr, err := Factory.NewManager(posComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	entities := make([]Entity, 4)
	for i := range entities {
		entities[i] = mgr.CreateEntity()
		posComp.AddWithValue(mgr, entities[i], Position{X: float64(i)})
	}

	query := Factory.NewQuery().Check(posComp)
	cursor := Factory.NewCursor(query, mgr)

	walked := 0
	for cursor.Next() {
		entity := cursor.Entity()
		if err := mgr.EnqueueDestroyEntity(entity); err != nil {
			t.Fatalf("EnqueueDestroyEntity() error = %v", err)
		}
		// Destroy is deferred: the snapshot keeps yielding and the entity
		// stays alive until the walk ends
		if !mgr.Alive(entity) {
			t.Error("entity destroyed during locked walk")
		}
		walked++
	}

	if walked != len(entities) {
		t.Errorf("walked %d entities, want %d", walked, len(entities))
	}
	for _, entity := range entities {
		if mgr.Alive(entity) {
			t.Errorf("entity %v still alive after walk drained queue", entity)
		}
	}
	if got := mgr.EntityCount(); got != 0 {
		t.Errorf("EntityCount() = %d, want 0", got)
	}
}

func TestCursorEnqueuedComponentOps(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	mgr, err := Factory.NewManager(posComp, velComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	entity := mgr.CreateEntity()
	posComp.Add(mgr, entity)
	doomed := mgr.CreateEntity()
	posComp.Add(mgr, doomed)

	query := Factory.NewQuery().Check(posComp)
	cursor := Factory.NewCursor(query, mgr)

	for cursor.Next() {
		current := cursor.Entity()
		if err := velComp.EnqueueAddWithValue(mgr, current, Velocity{X: 7}); err != nil {
			t.Fatalf("EnqueueAddWithValue() error = %v", err)
		}
		if current == doomed {
			mgr.EnqueueDestroyEntity(current)
		}
	}

	// The surviving entity got its deferred component; ops against the
	// destroyed entity were dropped
	vel, err := velComp.GetFrom(mgr, entity)
	if err != nil {
		t.Fatalf("GetFrom() after drain error = %v", err)
	}
	if vel.X != 7 {
		t.Errorf("deferred add value = %v, want {7 0}", *vel)
	}
	if mgr.Alive(doomed) {
		t.Error("doomed entity survived drain")
	}
}

func TestCollectThenDestroy(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	mgr, err := Factory.NewManager(posComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	for range 6 {
		entity := mgr.CreateEntity()
		posComp.Add(mgr, entity)
	}

	query := Factory.NewQuery().Check(posComp)
	snapshot := mgr.Collect(query)
	if len(snapshot) != 6 {
		t.Fatalf("Collect() = %d entities, want 6", len(snapshot))
	}

	// Structural deletion while consuming the materialized snapshot is the
	// documented pattern; the snapshot itself never shrinks
	for _, entity := range snapshot {
		if err := mgr.DestroyEntity(entity); err != nil {
			t.Fatalf("DestroyEntity() error = %v", err)
		}
	}
	if len(snapshot) != 6 {
		t.Errorf("snapshot mutated by destroys: %d", len(snapshot))
	}
	if got := mgr.EntityCount(); got != 0 {
		t.Errorf("EntityCount() = %d, want 0", got)
	}
	if matched := mgr.Collect(query); len(matched) != 0 {
		t.Errorf("new Collect() = %v, want empty", matched)
	}
}

func TestCursorEntitiesSeq(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	mgr, err := Factory.NewManager(posComp)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	for range 5 {
		entity := mgr.CreateEntity()
		posComp.Add(mgr, entity)
	}

	query := Factory.NewQuery().Check(posComp)
	cursor := Factory.NewCursor(query, mgr)

	// Breaking out early releases the walk like exhausting it
	count := 0
	for range cursor.Entities() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("early break walked %d, want 2", count)
	}
	if mgr.Locked() {
		t.Error("manager locked after early break")
	}

	count = 0
	for range cursor.Entities() {
		count++
	}
	if count != 5 {
		t.Errorf("full walk yielded %d, want 5", count)
	}
}
