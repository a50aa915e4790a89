package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const chopBurstLife = 22

// SpawnRipple spawns an expanding water ring centered at (x, y).
func SpawnRipple(ecs *ecs.ECS, x, y, maxRadius, freq float64) {
	ripple := archetypes.Ripple.Spawn(ecs)
	components.Position.SetValue(ripple, dmath.Vec2{X: x, Y: y})
	components.Ripple.SetValue(ripple, components.RippleData{
		Life:      cfg.Ripple.Lifetime,
		MaxRadius: maxRadius,
		Freq:      freq,
	})
	components.AutoDestroy.SetValue(ripple, components.AutoDestroyData{
		FramesRemaining: cfg.Ripple.Lifetime,
	})
}

// SpawnChopBurst spawns the short debris scatter shown when a hazard
// is chopped or smashed, thrown along dir.
func SpawnChopBurst(ecs *ecs.ECS, x, y, dirX, dirY float64) {
	burst := archetypes.ChopBurst.Spawn(ecs)
	components.Position.SetValue(burst, dmath.Vec2{X: x, Y: y})
	components.ChopBurst.SetValue(burst, components.ChopBurstData{
		Life: chopBurstLife,
		Dir:  dmath.Vec2{X: dirX, Y: dirY},
	})
	components.AutoDestroy.SetValue(burst, components.AutoDestroyData{
		FramesRemaining: chopBurstLife,
	})
}
