package ecs

import (
	"strconv"

	"github.com/milk9111/magnetfisher/ecs/component"
)

// Entity is a handle: the low 32 bits index the world's slots (1-based, so
// the zero Entity is never valid) and the high 32 bits carry the slot's
// generation when the handle was issued.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID { return entityID(e) }

func (e Entity) generation() generation { return generation(e >> 32) }

// Valid reports whether e has a slot at all. Liveness is IsAlive's job.
func (e Entity) Valid() bool { return e.id() != 0 }

// String prints the slot and generation, e.g. "7@2".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "@" + strconv.FormatUint(uint64(e.generation()), 10)
}

// World owns entities and their component storages.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	stores      map[component.ComponentID]*SparseSet
	events      EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped
// generation so stale handles stay dead.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id-1] = true
		return makeEntity(id, w.generations[id-1])
	}
	w.generations = append(w.generations, 0)
	w.alive = append(w.alive, true)
	return makeEntity(entityID(len(w.generations)), 0)
}

// DestroyEntity removes every component of e and frees its id. It returns
// false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.Remove(id)
	}
	w.alive[id-1] = false
	w.generations[id-1]++
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether an entity handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	idx := int(e.id()) - 1
	if idx >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.generation()
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.generations)-len(w.free))
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.generations[i]))
		}
	}
	return out
}

// IsAlive is the method form of IsAlive.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the live entities that have every listed component kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	var out []Entity
	for _, e := range sets[smallest].Entities() {
		if !IsAlive(w, e) {
			continue
		}
		matched := true
		for i, s := range sets {
			if i != smallest && !s.Has(e.id()) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity with every listed kind.
func (w *World) First(kinds ...Kind) (Entity, bool) {
	entities := w.Query(kinds...)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}
