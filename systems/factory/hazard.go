package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateHazard spawns a free hazard. dir is the horizontal travel
// sign for the crossing kinds and is ignored by the rest.
func CreateHazard(ecs *ecs.ECS, x, y float64, kind cfg.HazardKind, dir float64) *donburi.Entry {
	t := cfg.Hazard.Types[kind]
	if dir == 0 {
		dir = 1
	}

	hazard := archetypes.Hazard.Spawn(ecs)
	components.Position.SetValue(hazard, dmath.Vec2{X: x, Y: y})

	data := components.HazardData{
		Kind: kind,
		Dir:  dir,
	}
	switch kind {
	case cfg.HazardLog, cfg.HazardSnake:
		data.Vel = dmath.Vec2{X: t.Speed * dir}
	case cfg.HazardDragonfly:
		data.OrbitCenter = dmath.Vec2{X: x, Y: y}
	}
	components.Hazard.SetValue(hazard, data)

	return hazard
}

// CreatePadHazard spawns a hazard anchored to a pad: a snake coiled
// across it, a thornbush rooted on it, or a dragonfly circling it.
// Each kind anchors to a pad at most once; a pad already carrying the
// kind refuses the anchor and nothing is spawned.
func CreatePadHazard(ecs *ecs.ECS, pad *donburi.Entry, kind cfg.HazardKind) *donburi.Entry {
	p := components.Pad.Get(pad)
	if p.OccupiedBy(kind) {
		return nil
	}
	p.Occupy(kind)
	pos := components.Position.Get(pad)

	hazard := CreateHazard(ecs, pos.X, pos.Y, kind, 1)
	data := components.Hazard.Get(hazard)
	data.Anchor = pad
	if kind == cfg.HazardDragonfly {
		data.OrbitCenter = *pos
	}

	return hazard
}
