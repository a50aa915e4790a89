package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateScheduler advances the tick counter and reassigns every LOD
// entity to a distance ring around the frog. Reassignment only runs
// when the frog has moved RecomputeDist from the last anchor or
// RecomputeMax ticks have passed, so entities near a ring edge do not
// flap between bands while the frog shuffles on a pad.
func UpdateScheduler(ecs *ecs.ECS) {
	sched := getOrCreateScheduler(ecs)
	sched.Frame++

	frogEntry, ok := tags.Frog.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Position.Get(frogEntry)

	dx := pos.X - sched.Anchor.X
	dy := pos.Y - sched.Anchor.Y
	moved := dx*dx+dy*dy >= cfg.Rings.RecomputeDist*cfg.Rings.RecomputeDist
	due := sched.Frame-sched.LastRecompute >= cfg.Rings.RecomputeMax

	if moved || due || sched.Recomputes == 0 {
		recomputeRings(ecs, *pos, sched)
	}
}

func recomputeRings(e *ecs.ECS, anchor dmath.Vec2, sched *components.SchedulerData) {
	sched.Anchor = anchor
	sched.LastRecompute = sched.Frame
	sched.Recomputes++

	near := cfg.Rings.NearRadius * cfg.Rings.NearRadius
	medium := cfg.Rings.MediumRadius * cfg.Rings.MediumRadius
	far := cfg.Rings.FarRadius * cfg.Rings.FarRadius

	components.LOD.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		dx := pos.X - anchor.X
		dy := pos.Y - anchor.Y
		d2 := dx*dx + dy*dy

		lod := components.LOD.Get(entry)
		switch {
		case d2 <= near:
			lod.Ring = components.RingNear
		case d2 <= medium:
			lod.Ring = components.RingMedium
		case d2 <= far:
			lod.Ring = components.RingFar
		default:
			lod.Ring = components.RingFrozen
		}
	})
}

// ringActive reports whether entities in a ring run on this tick.
// Near runs every tick, medium and far on their configured cadence,
// frozen never.
func ringActive(ring components.RingID, frame int) bool {
	switch ring {
	case components.RingNear:
		return true
	case components.RingMedium:
		return frame%cfg.Rings.MediumEvery == 0
	case components.RingFar:
		return frame%cfg.Rings.FarEvery == 0
	}
	return false
}

// stepTicks returns how many ticks of motion the entity owes and
// stamps it processed. Skipped ticks accrue so a medium-ring pad
// advances two ticks of travel on its turn, but the debt is capped at
// the far cadence: an entity thawing out of the frozen ring resumes
// where it stopped instead of replaying its whole frozen span.
func stepTicks(lod *components.LODData, frame int) float64 {
	dt := frame - lod.LastProcessed
	if dt < 1 || lod.LastProcessed == 0 {
		dt = 1
	}
	if dt > cfg.Rings.FarEvery {
		dt = cfg.Rings.FarEvery
	}
	lod.LastProcessed = frame
	return float64(dt)
}

func getOrCreateScheduler(ecs *ecs.ECS) *components.SchedulerData {
	if entry, ok := components.Scheduler.First(ecs.World); ok {
		return components.Scheduler.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Scheduler))
	components.Scheduler.Set(entry, &components.SchedulerData{})
	return components.Scheduler.Get(entry)
}

// currentFrame reads the scheduler tick without creating the
// singleton. Systems that run before the scheduler on the first tick
// see frame zero and treat it as "not yet started".
func currentFrame(e *ecs.ECS) int {
	if entry, ok := components.Scheduler.First(e.World); ok {
		return components.Scheduler.Get(entry).Frame
	}
	return 0
}
