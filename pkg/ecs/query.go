package ecs

import (
	"reflect"
	"sort"
)

// typeOf resolves the reflect.Type of a component type parameter
// without needing an instance.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent returns the entity's component of type T.
//
// T is the stored type, typically a pointer to a component struct:
//
//	bush, ok := ecs.GetComponent[*components.BushComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentOfType(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponentOf reports whether the entity has a component of type T.
func HasComponentOf[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 returns every entity owning a component of type T,
// sorted by ID so iteration order is stable across ticks.
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return sorted(em.GetEntitiesWithTypes(typeOf[T]()))
}

// GetEntitiesWith2 returns every entity owning components of both
// types, sorted by ID.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return sorted(em.GetEntitiesWithTypes(typeOf[T1](), typeOf[T2]()))
}

func sorted(ids []EntityID) []EntityID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
