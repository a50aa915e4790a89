package systems

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/shared/gamemath"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Query reach that covers the largest configured hazard hit shape.
var maxHazardReach = func() float64 {
	r := 0.0
	for _, t := range cfg.Hazard.Types {
		if t.Diameter/2 > r {
			r = t.Diameter / 2
		}
		if t.HitboxW/2 > r {
			r = t.HitboxW / 2
		}
		if t.HitboxH/2 > r {
			r = t.HitboxH / 2
		}
	}
	return r
}()

var outcomeBuf []donburi.Entity

// UpdateOutcomes runs the frog-hazard contact rules. For each hazard
// overlapping the frog: a chop charge destroys a choppable hazard, a
// struck log hurts once and is removed, everything else costs a
// health. While the frog is invulnerable every hazard is skipped
// whole except the bramble: its block lands regardless, only the
// damage respects the window. The window started by the first hit in
// a pass swallows the rest of it, so one tick can never double-charge
// the frog.
func UpdateOutcomes(ecs *ecs.ECS) {
	frogEntry, ok := tags.Frog.First(ecs.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	if frog.State == cfg.StateDrowning {
		return
	}
	pos := components.Position.Get(frogEntry)
	services := getServices(ecs)

	gridEntry, ok := components.Grid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)

	outcomeBuf = grid.QueryNearInto(outcomeBuf[:0], pos.X, pos.Y, cfg.Frog.Radius+maxHazardReach)
	for _, ent := range outcomeBuf {
		entry := ecs.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Hazard) {
			continue
		}
		hazard := components.Hazard.Get(entry)
		if hazard.BeingDestroyed {
			continue
		}
		t := hazard.Type()

		// An airborne frog clears the low hazards outright.
		if frog.State.Airborne() && t.Jumpable {
			continue
		}

		hazardPos := components.Position.Get(entry)
		if !hazardHit(pos.X, pos.Y, cfg.Frog.Radius, hazard.Kind, t, hazardPos.X, hazardPos.Y) {
			continue
		}

		// The bramble is a wall before it is a hazard: its block
		// applies under invulnerability, only the damage is gated.
		if hazard.Kind == cfg.HazardBramble {
			if outcome := services.Resolve(frogEntry, entry); outcome.Destroyed {
				destroyHazard(ecs, entry, hazard, services, hazardPos.X-pos.X, hazardPos.Y-pos.Y)
				continue
			}
			shoveFrog(frogEntry, frog, hazardPos.X, hazardPos.Y, services)
			if !frog.Invulnerable() {
				hurtFrog(frogEntry, frog, services)
			}
			continue
		}

		if frog.Invulnerable() {
			continue
		}

		if outcome := services.Resolve(frogEntry, entry); outcome.Destroyed {
			destroyHazard(ecs, entry, hazard, services, hazardPos.X-pos.X, hazardPos.Y-pos.Y)
			continue
		}

		if hazard.Kind == cfg.HazardLog {
			// A struck log is spent. Removing it here keeps the same
			// log from re-colliding the moment the window closes.
			hurtFrog(frogEntry, frog, services)
			hazard.BeingDestroyed = true
			services.RippleAt(hazardPos.X, hazardPos.Y, 30, 0.8)
			services.Play(cfg.SoundSplash)
			continue
		}

		hurtFrog(frogEntry, frog, services)
	}
}

// hazardHit runs the exact overlap test for the hazard's shape:
// snakes and logs are boxes grown by the attacker's half-size,
// everything else a circle.
func hazardHit(fx, fy, fr float64, kind cfg.HazardKind, t cfg.HazardTypeConfig, hx, hy float64) bool {
	switch kind {
	case cfg.HazardSnake, cfg.HazardLog:
		return gamemath.PointInExpandedRect(fx, fy, hx, hy, t.HitboxW/2, t.HitboxH/2, fr)
	default:
		return gamemath.CirclesOverlap(fx, fy, fr, hx, hy, t.Diameter/2)
	}
}

// destroyHazard flags the hazard for removal at end of tick and plays
// the kill feedback thrown along the blow direction. The flag keeps
// every later rule this pass off the carcass.
func destroyHazard(e *ecs.ECS, hazardEntry *donburi.Entry, hazard *components.HazardData, services *components.ServicesData, dirX, dirY float64) {
	hazard.BeingDestroyed = true
	if anchor, ok := hazard.AnchorEntry(); ok {
		components.Pad.Get(anchor).ReleaseOccupancy(hazard.Kind)
	}
	if d := math.Hypot(dirX, dirY); d > 1e-6 {
		dirX /= d
		dirY /= d
	} else {
		dirX, dirY = 0, 0
	}
	pos := components.Position.Get(hazardEntry)
	services.ChopAt(pos.X, pos.Y, dirX, dirY)
	services.Play(cfg.SoundChop)
	services.Impact(0.4)
	if runEntry, ok := components.Run.First(e.World); ok {
		components.Run.Get(runEntry).AddHazardKill(cfg.Score.PerHazard)
	}
}

// shoveFrog is the bramble block: kill the frog's motion and, when
// close enough for the thorns to bite, push it back along the away
// vector. No health is charged here; the caller decides whether the
// hit also hurts.
func shoveFrog(frogEntry *donburi.Entry, frog *components.FrogData, brambleX, brambleY float64, services *components.ServicesData) {
	pos := components.Position.Get(frogEntry)
	t := cfg.Hazard.Types[cfg.HazardBramble]

	frog.SlideVel.X = 0
	frog.SlideVel.Y = 0

	// Away from the bramble center; straight upstream when the
	// centers coincide.
	dx := pos.X - brambleX
	dy := pos.Y - brambleY
	d := math.Hypot(dx, dy)
	if d <= t.PushbackNear {
		if d > 0 {
			pos.X += dx / d * t.Pushback
			pos.Y += dy / d * t.Pushback
		} else {
			pos.Y -= t.Pushback
		}
		clampFrogToRiver(pos)
	}

	frog.ScaredTimer = cfg.Frog.ScaredFrames
	services.Play(cfg.SoundThud)
	services.Impact(0.3)

	if frog.State.Airborne() {
		// Cut the jump short at the shoved point.
		frog.JumpTarget = *pos
		frog.JumpFrames = frog.JumpTotal
	}
}

// hurtFrog charges a health, opens the invulnerability window and
// shows the damage feedback. The fatal hit drops the frog into the
// water on the spot.
func hurtFrog(frogEntry *donburi.Entry, frog *components.FrogData, services *components.ServicesData) {
	frog.Health--
	frog.InvulnTimer = cfg.Frog.InvulnFrames
	frog.ScaredTimer = cfg.Frog.ScaredFrames
	flashFrog(frogEntry)
	services.Play(cfg.SoundHurt)
	services.Impact(0.8)

	if frog.Health <= 0 {
		frog.OnPad = nil
		setFrogState(frogEntry, frog, cfg.StateDrowning)
	}
}
