// Package ecs provides ECS adapters for kinetype's collision events.
//
// The primary adapter is [NewDonburiStore], which forwards every applied
// contact into a [Donburi] world as a typed event. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
