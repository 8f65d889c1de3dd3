// Package ecs provides ECS adapters for canopy's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges button hits on
// entity-linked canopy objects into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	scene.SetEntityID(objectID, entityID)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
