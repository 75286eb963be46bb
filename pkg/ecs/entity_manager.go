// Package ecs implements a minimal entity-component store.
// Components are plain structs registered per entity; systems query
// them by type each tick.
package ecs

import "reflect"

// EntityID uniquely identifies an entity. 0 is never assigned and can
// be used as an invalid marker.
type EntityID uint64

// EntityManager owns all entities and their components.
type EntityManager struct {
	nextID uint64
	// components maps EntityID -> component type -> component instance.
	components map[EntityID]map[reflect.Type]interface{}
	// entitiesToDestroy collects IDs removed at the end of the tick.
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity allocates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal. The entity stays queryable
// until RemoveMarkedEntities runs, so systems iterating this tick keep
// a consistent view.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent attaches a component to an entity. Adding a second
// component of the same type replaces the first.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponentOfType returns the entity's component of the given type.
func (em *EntityManager) GetComponentOfType(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity has a component of the given
// type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponentOfType(id, componentType)
	return found
}

// RemoveMarkedEntities drops every entity marked by DestroyEntity.
// Called once per tick after all systems ran.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWithTypes returns every entity owning all of the given
// component types. Order is unspecified; callers needing determinism
// sort the result.
func (em *EntityManager) GetEntitiesWithTypes(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
