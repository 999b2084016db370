package ecs

// store is the type-erased view of a sparseSet used by World for entity
// teardown and multi-kind queries.
type store interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
}

// sparseSet keeps components densely packed. sparse maps a slot id to an
// index into dense, or -1.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{}
}

func (s *sparseSet[T]) index(e Entity) int {
	id := int(e.id())
	if id == 0 || id > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

func (s *sparseSet[T]) has(e Entity) bool {
	return s.index(e) >= 0
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx := s.index(e)
	if idx < 0 {
		return nil, false
	}
	return s.values[idx], true
}

// set inserts or replaces the component for e.
func (s *sparseSet[T]) set(e Entity, v *T) {
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 && idx < len(s.dense) && s.dense[idx].id() == e.id() {
		// the slot may still hold a stale generation
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// remove swaps the last element into the hole.
func (s *sparseSet[T]) remove(e Entity) bool {
	idx := s.index(e)
	if idx < 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx

	s.dense[last] = 0
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	return true
}

func (s *sparseSet[T]) entities() []Entity {
	return s.dense
}
