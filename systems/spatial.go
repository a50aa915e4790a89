package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpatialIndex rebuilds the pad and hazard grid from scratch.
// It runs after the pads have moved and before anything queries, so
// every query this tick sees current positions. A rebuild is one
// Insert per entity; there is no incremental bookkeeping to drift out
// of sync.
func UpdateSpatialIndex(ecs *ecs.ECS) {
	gridEntry, ok := components.Grid.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Grid.Get(gridEntry)
	grid.Clear()

	tags.Pad.Each(ecs.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		pad := components.Pad.Get(entry)
		grid.Insert(entry.Entity(), pos.X, pos.Y, pad.EffectiveRadius())
	})

	tags.Hazard.Each(ecs.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		hazard := components.Hazard.Get(entry)
		grid.Insert(entry.Entity(), pos.X, pos.Y, hazardIndexRadius(hazard))
	})
}

// hazardIndexRadius is the covering radius used to index a hazard:
// half its largest hit extent, whichever of the circle and rect
// shapes the kind uses.
func hazardIndexRadius(h *components.HazardData) float64 {
	t := h.Type()
	r := t.Diameter / 2
	if t.HitboxW/2 > r {
		r = t.HitboxW / 2
	}
	if t.HitboxH/2 > r {
		r = t.HitboxH / 2
	}
	return r
}
