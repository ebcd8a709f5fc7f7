/*
Package roster provides a sparse-storage Entity-Component-System (ECS) core for games and simulations.

Roster manages lightweight generational entity handles and one storage per declared
component kind. The component schema is fixed when a manager is created, handles are
safe under index recycling, and queries produce deterministic snapshots that remain
valid while the caller mutates or destroys the entities they reference.

Core Concepts:

  - Entity: An (index, generation) handle identifying one logical record.
  - Component: A typed value attachable to an entity; one storage exists per declared kind.
  - EntityManager: The sole mutation/read surface, owning the allocator and every storage.
  - Query: A conjunctive filter over component presence and value predicates.

Basic Usage:

	// Define components
	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()

	// Create a manager with a fixed schema
	mgr, _ := roster.Factory.NewManager(position, velocity)

	// Create entities and attach data
	e := mgr.CreateEntity()
	position.AddWithValue(mgr, e, Position{X: 10, Y: 20})
	velocity.AddWithValue(mgr, e, Velocity{X: 1, Y: 2})

	// Query entities and process them
	query := roster.Factory.NewQuery().Check(position, velocity)
	cursor := roster.Factory.NewCursor(query, mgr)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Roster pairs with the Bappa component libraries but also works as a standalone ECS core.
*/
package roster
