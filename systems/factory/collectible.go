package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCollectible spawns a pickup. onPad may be nil for pickups
// floating on open water.
func CreateCollectible(ecs *ecs.ECS, x, y float64, kind components.CollectibleKind, onPad *donburi.Entry) *donburi.Entry {
	c := archetypes.Collectible.Spawn(ecs)
	components.Position.SetValue(c, dmath.Vec2{X: x, Y: y})
	components.Collectible.SetValue(c, components.CollectibleData{
		Kind:  kind,
		OnPad: onPad,
	})
	return c
}
