package systems

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/shared/gamemath"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePads advances pad motion: patrol sway, carrier drift, the
// pulse sinusoid and the decay of pushed velocity. Each pad runs on
// its ring's cadence and advances by the ticks it actually owes, so a
// medium-ring drifter covers the same ground as a near one, just in
// coarser steps.
func UpdatePads(ecs *ecs.ECS) {
	frame := currentFrame(ecs)
	weather := getOrCreateWeather(ecs)

	// Per-tick velocity loss, scaled by weather. Frost keeps pushed
	// pads gliding longer.
	retain := 1 - (1-cfg.Pad.Friction)*weather.FrictionScale

	tags.Pad.Each(ecs.World, func(entry *donburi.Entry) {
		lod := components.LOD.Get(entry)
		if !ringActive(lod.Ring, frame) {
			return
		}
		dt := stepTicks(lod, frame)

		pad := components.Pad.Get(entry)
		pos := components.Position.Get(entry)

		if pad.PatrolSpeed > 0 {
			pos.X, pad.PatrolDir = gamemath.PatrolAdvance(
				pos.X, pad.PatrolDir, pad.PatrolMinX, pad.PatrolMaxX, pad.PatrolSpeed*dt)
		}

		pos.Y += pad.DriftSpeed * dt

		if pad.Kind == cfg.PadPulsing {
			pad.PulsePhase += cfg.Pad.PulseRate * dt
			pad.Scale = gamemath.PulseScale(pad.PulsePhase, cfg.Pad.PulseDepth)
		}

		if pad.Vel.X != 0 || pad.Vel.Y != 0 {
			pos.X += pad.Vel.X * dt
			pos.Y += pad.Vel.Y * dt

			decay := retain
			if dt > 1 {
				decay = math.Pow(retain, dt)
			}
			pad.Vel.X *= decay
			pad.Vel.Y *= decay
			if math.Abs(pad.Vel.X) < cfg.Pad.RestEpsilon && math.Abs(pad.Vel.Y) < cfg.Pad.RestEpsilon {
				pad.Vel.X = 0
				pad.Vel.Y = 0
			}
			clampToRiver(pos, pad.EffectiveRadius())
		}
	})
}

// clampToRiver keeps a pushed pad between the banks. Patrol bounds
// already respect them; only contact pushes can shove a pad out.
func clampToRiver(pos *dmath.Vec2, radius float64) {
	min := cfg.Course.BankWidth + radius
	max := float64(cfg.C.Width) - cfg.Course.BankWidth - radius
	if max < min {
		return
	}
	if pos.X < min {
		pos.X = min
	} else if pos.X > max {
		pos.X = max
	}
}
