package object

// Category is a bitmask of the registry groups an entity belongs to.
type Category uint8

const (
	CategoryAll Category = 1 << iota
	CategoryMeteors
	CategoryLasers
)

// Has reports whether c includes every bit of other.
func (c Category) Has(other Category) bool {
	return c&other == other
}

// Registry owns every entity in the game. Entities are kept in insertion
// order; additions are staged until Commit so they never join an iteration
// that is already running.
type Registry struct {
	entities []*Entity
	pending  []*Entity
	nextID   uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stages an entity in the given categories. Every entity is also in
// CategoryAll. The entity becomes visible after the next Commit.
func (r *Registry) Add(e *Entity, categories Category) *Entity {
	r.nextID++
	e.ID = r.nextID
	e.categories = categories | CategoryAll
	r.pending = append(r.pending, e)
	return e
}

// Spawn implements Spawner.
func (r *Registry) Spawn(e *Entity, categories Category) {
	r.Add(e, categories)
}

// Commit moves staged entities into the registry.
func (r *Registry) Commit() {
	if len(r.pending) == 0 {
		return
	}
	r.entities = append(r.entities, r.pending...)
	clear(r.pending)
	r.pending = r.pending[:0]
}

// Remove kills the entity. It is dropped at the next RemoveDead; removing an
// already dead entity does nothing.
func (r *Registry) Remove(e *Entity) {
	e.Kill()
}

// RemoveDead drops every dead entity and returns how many were removed.
func (r *Registry) RemoveDead() int {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.alive {
			kept = append(kept, e)
		}
	}
	removed := len(r.entities) - len(kept)

	// Release references held by the truncated tail.
	clear(r.entities[len(kept):])
	r.entities = kept
	return removed
}

// ForEach calls fn for every live committed entity in category, in
// insertion order. If fn returns true, iteration stops early.
func (r *Registry) ForEach(category Category, fn func(e *Entity) bool) {
	for _, e := range r.entities {
		if !e.alive || !e.categories.Has(category) {
			continue
		}
		if fn(e) {
			return
		}
	}
}

// UpdateAll updates every live entity once. Entities spawned during the pass
// are committed afterwards and first update on the next call.
func (r *Registry) UpdateAll(ctx UpdateContext) {
	r.Commit()
	ctx.Spawner = r

	for _, e := range r.entities {
		if e.alive {
			e.Update(ctx)
		}
	}

	r.Commit()
}

// DrawAll draws every live entity in insertion order.
func (r *Registry) DrawAll(d Drawer) {
	for _, e := range r.entities {
		e.Draw(d)
	}
}

// Len returns the number of live committed entities in category.
func (r *Registry) Len(category Category) int {
	n := 0
	r.ForEach(category, func(*Entity) bool {
		n++
		return false
	})
	return n
}
