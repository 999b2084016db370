package ecs

import "github.com/milk9111/scrollin/ecs/component"

// World owns entities, their component stores and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities lists every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

// RemoveComponent deletes the component of the given kind from e.
func (w *World) RemoveComponent(e Entity, kind component.AnyKind) bool {
	if w == nil || kind == nil {
		return false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return false
	}
	return s.remove(e)
}

// Query returns the live entities that have every listed kind, in the
// storage order of the smallest store.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if len(s.entities()) < len(smallest.entities()) {
			smallest = s
		}
	}

	out := make([]Entity, 0, len(smallest.entities()))
outer:
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range sets {
			if !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first entity matching Query(kinds...).
func (w *World) First(kinds ...component.AnyKind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
