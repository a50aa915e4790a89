package systems

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ResolveLanding settles a finished jump: catch the frog on the best
// pad under the touchdown point, or put it in the water. Pad kinds
// hook in here - ice slides, springpads arm the next jump, warp pads
// throw the frog downstream and resolve again where it comes down.
func ResolveLanding(e *ecs.ECS, frogEntry *donburi.Entry) {
	resolveTouchdown(e, frogEntry, true)
}

// resolveTouchdown is ResolveLanding behind a warp guard: the landing
// after a warp treats a second warp pad as a plain one, so two warp
// pads can never bounce the frog between them forever.
func resolveTouchdown(e *ecs.ECS, frogEntry *donburi.Entry, allowWarp bool) {
	frog := components.Frog.Get(frogEntry)
	pos := components.Position.Get(frogEntry)
	services := getServices(e)

	clampFrogToRiver(pos)

	padEntry, ok := padUnder(e, *pos)
	if !ok {
		enterWater(e, frogEntry, frog, pos, services)
		return
	}

	pad := components.Pad.Get(padEntry)
	weather := getOrCreateWeather(e)

	// Slick surfaces carry the travel through into a slide.
	if pad.Slippery() || weather.Phase == cfg.WeatherFrost {
		if startSlide(frogEntry, frog, services) {
			return
		}
	}

	if pad.Kind == cfg.PadWarp && allowWarp {
		warpFrom(e, frogEntry, frog, pos, padEntry, services)
		return
	}

	anchorToPad(e, frogEntry, frog, pos, padEntry, services)
	services.RippleAt(pos.X, pos.Y, 22, 1)

	switch pad.Kind {
	case cfg.PadLaunch:
		frog.Boosted = true
		startPadTween(padEntry, "launch", float32(pad.Scale))
		services.Play(cfg.SoundLaunch)
	case cfg.PadShrinking:
		if !pad.Shrinking {
			pad.Shrinking = true
			startPadTween(padEntry, "shrink", float32(pad.Scale))
		}
		services.Play(cfg.SoundLand)
	default:
		services.Play(cfg.SoundLand)
	}
}

// startSlide converts the jump's travel direction into slide
// velocity. A jump with no travel has no direction to slide in, so
// the caller falls back to a plain anchor.
func startSlide(frogEntry *donburi.Entry, frog *components.FrogData, services *components.ServicesData) bool {
	dx := frog.JumpTarget.X - frog.JumpFrom.X
	dy := frog.JumpTarget.Y - frog.JumpFrom.Y
	length := math.Hypot(dx, dy)
	if length <= 0 {
		return false
	}

	speed := cfg.Frog.JumpSpeed * cfg.Frog.SlideVelocityScale
	if speed > cfg.Frog.SlideMaxSpeed {
		speed = cfg.Frog.SlideMaxSpeed
	}
	frog.SlideVel = dmath.Vec2{X: dx / length * speed, Y: dy / length * speed}
	frog.OnPad = nil
	setFrogState(frogEntry, frog, cfg.StateSliding)
	services.Play(cfg.SoundSlide)
	return true
}

// warpFrom credits the warp pad, throws the frog WarpDistance
// downstream and resolves the arrival as a fresh touchdown.
func warpFrom(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, padEntry *donburi.Entry, services *components.ServicesData) {
	pad := components.Pad.Get(padEntry)
	padPos := components.Position.Get(padEntry)

	if !pad.Visited {
		pad.Visited = true
		if runEntry, ok := components.Run.First(e.World); ok {
			components.Run.Get(runEntry).AddPadLanding(cfg.Score.PerPad)
		}
	}

	services.Play(cfg.SoundWarp)
	services.RippleAt(padPos.X, padPos.Y, 26, 1.4)

	pos.X = padPos.X
	pos.Y = padPos.Y + cfg.Pad.WarpDistance
	clampFrogToRiver(pos)
	services.RippleAt(pos.X, pos.Y, 26, 1.4)

	resolveTouchdown(e, frogEntry, false)
}
