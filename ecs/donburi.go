package ecs

import (
	"github.com/phanxgames/kinetype"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for kinetype collisions.
// Node.EntityID is carried through as EntityA and EntityB.
var CollisionEventType = events.NewEventType[kinetype.CollisionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Collision events are published to CollisionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) kinetype.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event kinetype.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
