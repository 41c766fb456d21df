package component

import (
	"reflect"
	"sync/atomic"
)

// ComponentID indexes a component store in the world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key for one component type. The type parameter
// lets ecs.Get hand back *T without assertions at the call site.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

// NewComponentKind issues a fresh id. Two kinds of the same T are distinct
// stores.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeOf((*T)(nil)).Elem().String(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the component type, e.g. "component.Transform".
func (k ComponentKind[T]) String() string {
	if k.name == "" {
		return "<invalid kind>"
	}
	return k.name
}

// ComponentHandle is what each component file exports, so call sites read
// component.TransformComponent.Kind().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
