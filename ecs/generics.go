package ecs

import (
	"fmt"

	"github.com/milk9111/scrollin/ecs/component"
)

func storeOf[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

// Add sets the component for e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	s := storeOf(w, kind, true)
	if s == nil {
		return component.ErrInvalidComponentKind
	}
	s.set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := storeOf(w, handle.Kind(), false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s := storeOf(w, handle.Kind(), false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// ForEach visits every entity holding an A. Adding or removing components
// from fn is safe; entities removed mid-iteration are skipped.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeOf(w, ka, false)
	if sa == nil {
		return
	}
	for _, e := range append([]Entity(nil), sa.entities()...) {
		a, ok := sa.get(e)
		if !ok || !w.IsAlive(e) {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeOf(w, ka, false), storeOf(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeOf(w, ka, false), storeOf(w, kb, false), storeOf(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		c, okC := sc.get(e)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa, sb, sc, sd := storeOf(w, ka, false), storeOf(w, kb, false), storeOf(w, kc, false), storeOf(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		c, okC := sc.get(e)
		d, okD := sd.get(e)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
