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

// throwSeekRadius is how far the throw auto-aims for a hazard before
// defaulting to straight downstream.
const throwSeekRadius = 220.0

var pebbleBuf []donburi.Entity

// ThrowPebble launches a pooled pebble from the frog at the nearest
// hazard in seek range, or straight downstream when nothing is close.
// Reports whether a pebble was available; the pool running dry means
// no throw this tick.
func ThrowPebble(e *ecs.ECS, frogEntry *donburi.Entry) bool {
	arenaEntry, ok := components.PebbleArena.First(e.World)
	if !ok {
		return false
	}
	arena := components.PebbleArena.Get(arenaEntry)
	pebbleEntry, ok := arena.Acquire()
	if !ok {
		return false
	}

	frogPos := components.Position.Get(frogEntry)
	pos := components.Position.Get(pebbleEntry)
	pos.X, pos.Y = frogPos.X, frogPos.Y

	targetX, targetY := frogPos.X, frogPos.Y+throwSeekRadius
	if hx, hy, found := nearestSmashable(e, *frogPos); found {
		targetX, targetY = hx, hy
	}

	pb := components.Pebble.Get(pebbleEntry)
	pb.Vel.X, pb.Vel.Y = gamemath.SeekVelocity(pos.X, pos.Y, targetX, targetY, cfg.Pebble.Speed)
	return true
}

// nearestSmashable finds the closest live hazard a pebble can break.
func nearestSmashable(e *ecs.ECS, from dmath.Vec2) (x, y float64, found bool) {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return 0, 0, false
	}
	grid := components.Grid.Get(gridEntry)

	best := math.Inf(1)
	pebbleBuf = grid.QueryNearInto(pebbleBuf[:0], from.X, from.Y, throwSeekRadius)
	for _, ent := range pebbleBuf {
		entry := e.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Hazard) {
			continue
		}
		hazard := components.Hazard.Get(entry)
		if hazard.BeingDestroyed || !pebbleSmashes(hazard) {
			continue
		}
		hp := components.Position.Get(entry)
		d := math.Hypot(hp.X-from.X, hp.Y-from.Y)
		if d < best {
			best = d
			x, y = hp.X, hp.Y
			found = true
		}
	}
	return x, y, found
}

// pebbleSmashes reports whether a pebble can break the hazard. The
// creatures go down to a pebble; the woody kinds take a chop charge.
func pebbleSmashes(h *components.HazardData) bool {
	return !h.Type().Choppable
}

// UpdatePebbles flies the active pebbles, smashes the first hazard
// each one reaches and returns spent pebbles to the pool.
func UpdatePebbles(ecs *ecs.ECS) {
	arenaEntry, ok := components.PebbleArena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.PebbleArena.Get(arenaEntry)
	services := getServices(ecs)

	var gridOK bool
	var grid *components.SpatialGrid
	if gridEntry, ok := components.Grid.First(ecs.World); ok {
		grid = components.Grid.Get(gridEntry)
		gridOK = true
	}

	tags.Pebble.Each(ecs.World, func(entry *donburi.Entry) {
		pb := components.Pebble.Get(entry)
		if !pb.Active {
			return
		}
		pos := components.Position.Get(entry)
		pb.Age++
		pos.X += pb.Vel.X
		pos.Y += pb.Vel.Y

		if pb.Age > cfg.Pebble.Lifetime || offRiver(pos.X) {
			services.RippleAt(pos.X, pos.Y, 10, 1.6)
			arena.Release(entry)
			return
		}
		if !gridOK {
			return
		}

		pebbleBuf = grid.QueryNearInto(pebbleBuf[:0], pos.X, pos.Y, cfg.Pebble.Radius+maxHazardReach)
		for _, ent := range pebbleBuf {
			hEntry := ecs.World.Entry(ent)
			if !hEntry.Valid() || !hEntry.HasComponent(components.Hazard) {
				continue
			}
			hazard := components.Hazard.Get(hEntry)
			if hazard.BeingDestroyed {
				continue
			}
			t := hazard.Type()
			hp := components.Position.Get(hEntry)
			if !hazardHit(pos.X, pos.Y, cfg.Pebble.Radius, hazard.Kind, t, hp.X, hp.Y) {
				continue
			}

			if pebbleSmashes(hazard) {
				destroyHazard(ecs, hEntry, hazard, services, pb.Vel.X, pb.Vel.Y)
			} else {
				// Plinks off the woody kinds.
				services.Play(cfg.SoundThud)
			}
			arena.Release(entry)
			return
		}
	})
}

// offRiver reports whether an x coordinate is outside the water,
// banks included.
func offRiver(x float64) bool {
	return x < cfg.Course.BankWidth || x > float64(cfg.C.Width)-cfg.Course.BankWidth
}
