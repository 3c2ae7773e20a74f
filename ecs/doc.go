// Package ecs provides ECS adapters for autocanvas's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges autocanvas
// element events (hover, press, click, release, resize) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	surface.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
