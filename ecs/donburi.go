package ecs

import (
	"github.com/phanxgames/autocanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for autocanvas interaction
// events. Subscribe to this in your ECS systems to receive element events.
var InteractionEventType = events.NewEventType[autocanvas.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) autocanvas.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event autocanvas.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
