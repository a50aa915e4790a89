package archetypes

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Frog = newArchetype(
		tags.Frog,
		components.Frog,
		components.Position,
		components.Object,
		components.Tween,
		components.Flash,
	)
	Pad = newArchetype(
		tags.Pad,
		components.Pad,
		components.Position,
		components.LOD,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Position,
		components.LOD,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Position,
	)
	Pebble = newArchetype(
		tags.Pebble,
		components.Pebble,
		components.Position,
	)
	Ripple = newArchetype(
		tags.Ripple,
		components.Ripple,
		components.Position,
		components.AutoDestroy,
	)
	ChopBurst = newArchetype(
		components.ChopBurst,
		components.Position,
		components.AutoDestroy,
	)
	Bank = newArchetype(
		tags.Bank,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Grid = newArchetype(
		components.Grid,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
