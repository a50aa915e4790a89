package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePebbleArena preallocates the fixed pool of pebble entities
// and the arena singleton that hands them out. Pebbles are recycled
// through the pool instead of created per throw.
func CreatePebbleArena(ecs *ecs.ECS) *donburi.Entry {
	arena := ecs.World.Entry(ecs.World.Create(components.PebbleArena))

	slots := make([]*donburi.Entry, cfg.Pebble.ArenaSize)
	for i := range slots {
		p := archetypes.Pebble.Spawn(ecs)
		components.Pebble.SetValue(p, components.PebbleData{Slot: i})
		slots[i] = p
	}
	components.PebbleArena.Get(arena).InitArena(slots)

	return arena
}
