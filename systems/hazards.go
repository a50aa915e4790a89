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

var wedgeBuf []donburi.Entity

// UpdateHazards advances hazard motion on the ring cadence. Far-ring
// hazards keep moving but skip the wedge response; frozen ones stand
// still until the frog comes back into range.
func UpdateHazards(ecs *ecs.ECS) {
	frame := currentFrame(ecs)

	var frog *components.FrogData
	var frogPos dmath.Vec2
	if frogEntry, ok := tags.Frog.First(ecs.World); ok {
		frog = components.Frog.Get(frogEntry)
		frogPos = *components.Position.Get(frogEntry)
	}

	tags.Hazard.Each(ecs.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		if hazard.BeingDestroyed {
			return
		}
		lod := components.LOD.Get(entry)
		if !ringActive(lod.Ring, frame) {
			return
		}
		dt := stepTicks(lod, frame)
		pos := components.Position.Get(entry)
		t := hazard.Type()

		switch hazard.Kind {
		case cfg.HazardDragonfly:
			hazard.Phase += t.OrbitRate * dt
			cx, cy := hazard.OrbitCenter.X, hazard.OrbitCenter.Y
			if anchor, ok := hazard.AnchorEntry(); ok {
				ap := components.Position.Get(anchor)
				cx, cy = ap.X, ap.Y
			}
			pos.X, pos.Y = gamemath.OrbitPosition(cx, cy, t.OrbitRadius, hazard.Phase)

		case cfg.HazardSnake:
			updateSnake(hazard, pos, t, dt)

		case cfg.HazardLog:
			updateLog(ecs, hazard, pos, t, dt, lod.Ring)

		case cfg.HazardPike:
			updatePike(hazard, pos, t, dt, frog, frogPos)

		case cfg.HazardThornbush:
			if anchor, ok := hazard.AnchorEntry(); ok {
				ap := components.Position.Get(anchor)
				pos.X, pos.Y = ap.X, ap.Y
			}

		case cfg.HazardBramble:
			// Fixed in place.
		}
	})
}

// updateSnake patrols an anchored snake across its pad, riding the
// pad's own motion, or carries a free one straight across the river.
// A snake finding itself outside the pad's band, after a hard pad
// shove or the pad shrinking under it, lets go and swims on.
func updateSnake(hazard *components.HazardData, pos *dmath.Vec2, t cfg.HazardTypeConfig, dt float64) {
	anchor, ok := hazard.AnchorEntry()
	if !ok {
		pos.X += t.Speed * hazard.Dir * dt
		return
	}
	pad := components.Pad.Get(anchor)
	ap := components.Position.Get(anchor)
	band := pad.EffectiveRadius() + t.AnchorMargin
	if math.Abs(pos.X-ap.X) > band {
		hazard.Anchor = nil
		pad.ReleaseOccupancy(hazard.Kind)
		pos.X += t.Speed * hazard.Dir * dt
		return
	}
	pos.X, hazard.Dir = gamemath.PatrolAdvance(
		pos.X, hazard.Dir, ap.X-band, ap.X+band, t.Speed*dt)
	pos.Y = ap.Y
}

// updateLog drifts the log and runs the wedge response against the
// pads it presses on. The exact closest-point test runs once per
// CheckFrames; the ticks between replay the cached pushes, dropping
// any whose pad has gone. Contacted pads also drag the log down
// toward a floor speed so a jam never stops it dead.
func updateLog(e *ecs.ECS, hazard *components.HazardData, pos *dmath.Vec2, t cfg.HazardTypeConfig, dt float64, ring components.RingID) {
	pos.X += hazard.Vel.X * dt

	if ring > components.RingMedium {
		return
	}

	hazard.WedgeFrame++
	if hazard.WedgeFrame >= cfg.Wedge.CheckFrames || hazard.WedgeContacts == nil {
		hazard.WedgeFrame = 0
		rebuildWedgeContacts(e, hazard, pos, t)
	}

	contacted := 0
	for _, c := range hazard.WedgeContacts {
		if c.Pad == nil || !c.Pad.Valid() {
			continue
		}
		pad := components.Pad.Get(c.Pad)
		if pad.BeingDestroyed {
			continue
		}
		pad.Vel.X += c.Push.X * dt
		contacted++
	}

	if contacted > 0 {
		floor := t.Speed * 0.25
		slow := 1 - cfg.Wedge.DragPerPad*float64(contacted)*dt
		if slow < 0 {
			slow = 0
		}
		hazard.Vel.X *= slow
		if math.Abs(hazard.Vel.X) < floor {
			if hazard.Vel.X < 0 {
				hazard.Vel.X = -floor
			} else {
				hazard.Vel.X = floor
			}
		}
	}
}

func rebuildWedgeContacts(e *ecs.ECS, hazard *components.HazardData, pos *dmath.Vec2, t cfg.HazardTypeConfig) {
	hazard.WedgeContacts = hazard.WedgeContacts[:0]
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)

	hw, hh := t.SpriteW/2, t.SpriteH/2
	reach := math.Hypot(hw, hh) + maxPadRadius + cfg.Wedge.Margin
	wedgeBuf = grid.QueryNearInto(wedgeBuf[:0], pos.X, pos.Y, reach)
	for _, ent := range wedgeBuf {
		pEntry := e.World.Entry(ent)
		if !pEntry.Valid() || !pEntry.HasComponent(components.Pad) {
			continue
		}
		pad := components.Pad.Get(pEntry)
		if pad.BeingDestroyed {
			continue
		}
		pp := components.Position.Get(pEntry)
		push, hit := gamemath.WedgePush(
			pos.X, pos.Y, hw, hh,
			pp.X, pp.Y, pad.EffectiveRadius(),
			cfg.Wedge.Margin, cfg.Wedge.MaxForce, cfg.Wedge.SpeedCap, hazard.Vel.X)
		if !hit {
			continue
		}
		hazard.WedgeContacts = append(hazard.WedgeContacts, components.WedgeContact{
			Pad:  pEntry,
			Push: dmath.Vec2{X: push},
		})
	}
}

// updatePike locks onto a frog swimming inside its hunt radius and
// closes in; otherwise it weaves lazily where it is.
func updatePike(hazard *components.HazardData, pos *dmath.Vec2, t cfg.HazardTypeConfig, dt float64, frog *components.FrogData, frogPos dmath.Vec2) {
	inWater := frog != nil &&
		(frog.State == cfg.StateFloating || frog.State == cfg.StateDrowning)

	if inWater {
		dx := frogPos.X - pos.X
		dy := frogPos.Y - pos.Y
		if dx*dx+dy*dy <= t.HuntRadius*t.HuntRadius {
			hazard.Hunting = true
			hazard.Vel.X, hazard.Vel.Y = gamemath.SeekVelocity(
				pos.X, pos.Y, frogPos.X, frogPos.Y, t.Speed)
		} else {
			hazard.Hunting = false
		}
	} else {
		hazard.Hunting = false
	}

	if !hazard.Hunting {
		hazard.Phase += 0.02 * dt
		hazard.Vel.X = math.Cos(hazard.Phase) * t.Speed * 0.3
		hazard.Vel.Y = 0
	}

	pos.X += hazard.Vel.X * dt
	pos.Y += hazard.Vel.Y * dt
	clampToRiver(pos, t.Diameter/2)
}
