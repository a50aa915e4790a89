package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/shared/gamemath"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// coincidentEps guards the contact normal: pairs closer than this
// have no usable direction and are left for the next tick.
const coincidentEps = 1e-6

// Query reach that covers the largest configured pad kind.
var maxPadRadius = func() float64 {
	r := 0.0
	for _, t := range cfg.Pad.Types {
		if t.Radius > r {
			r = t.Radius
		}
	}
	return r
}()

// Reused between ticks; the tick is single-threaded.
var contactBuf []donburi.Entity

// UpdatePadContacts separates overlapping pads and trades a lossy
// bounce impulse between them, rippling the water where approaching
// pads meet. Positions correct immediately, split by mass share so the
// lighter pad yields. Each pair resolves at most once per tick: when
// both pads are scheduled this tick the lower entity id owns the pair,
// otherwise the scheduled one does. Frozen and far pads get no contact
// response at all.
func UpdatePadContacts(ecs *ecs.ECS) {
	gridEntry, ok := components.Grid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)
	frame := currentFrame(ecs)
	services := getServices(ecs)

	tags.Pad.Each(ecs.World, func(aEntry *donburi.Entry) {
		aLOD := components.LOD.Get(aEntry)
		if aLOD.Ring > components.RingMedium || !ringActive(aLOD.Ring, frame) {
			return
		}
		aPad := components.Pad.Get(aEntry)
		if aPad.BeingDestroyed {
			return
		}
		aPos := components.Position.Get(aEntry)
		ar := aPad.EffectiveRadius()

		contactBuf = grid.QueryNearInto(contactBuf[:0], aPos.X, aPos.Y, ar+maxPadRadius+cfg.Pad.ContactMargin)
		for _, ent := range contactBuf {
			if ent == aEntry.Entity() {
				continue
			}
			bEntry := ecs.World.Entry(ent)
			if !bEntry.Valid() || !bEntry.HasComponent(components.Pad) {
				continue
			}
			bPad := components.Pad.Get(bEntry)
			if bPad.BeingDestroyed {
				continue
			}
			bLOD := components.LOD.Get(bEntry)
			if bLOD.Ring > components.RingMedium {
				continue
			}
			if ringActive(bLOD.Ring, frame) && ent <= aEntry.Entity() {
				continue
			}

			bPos := components.Position.Get(bEntry)
			nx, ny, depth, hit := gamemath.SeparationNormal(
				aPos.X, aPos.Y, ar+cfg.Pad.ContactMargin,
				bPos.X, bPos.Y, bPad.EffectiveRadius(),
				coincidentEps)
			if !hit {
				continue
			}

			shareA, shareB := gamemath.MassSplit(aPad.Mass, bPad.Mass)
			aPos.X -= nx * depth * shareA
			aPos.Y -= ny * depth * shareA
			bPos.X += nx * depth * shareB
			bPos.Y += ny * depth * shareB

			vrel := (bPad.Vel.X-aPad.Vel.X)*nx + (bPad.Vel.Y-aPad.Vel.Y)*ny
			dvax, dvay, dvbx, dvby := gamemath.ImpulseExchange(
				aPad.Vel.X, aPad.Vel.Y, bPad.Vel.X, bPad.Vel.Y,
				nx, ny, aPad.Mass, bPad.Mass, cfg.Pad.Restitution)
			aPad.Vel.X += dvax
			aPad.Vel.Y += dvay
			bPad.Vel.X += dvbx
			bPad.Vel.Y += dvby

			if vrel < 0 {
				services.RippleAt((aPos.X+bPos.X)/2, (aPos.Y+bPos.Y)/2, 16, 1)
			}

			clampToRiver(aPos, ar)
			clampToRiver(bPos, bPad.EffectiveRadius())
		}
	})
}
