package factory

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateFrog(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	frog := archetypes.Frog.Spawn(ecs)

	r := cfg.Frog.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvFrog)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = frog
	components.Object.SetValue(frog, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Position.SetValue(frog, dmath.Vec2{X: x, Y: y})
	components.Frog.SetValue(frog, components.FrogData{
		State:     cfg.StateGrounded,
		Health:    cfg.Frog.Health,
		LastSafe:  dmath.Vec2{X: x, Y: y},
		Scale:     1.0,
		FurthestY: y,
	})

	// Permanently attached so damage flashes never thrash the archetype
	components.Flash.SetValue(frog, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return frog
}

// AttachToStartPad grounds a freshly spawned frog on the nearest pad
// so the run opens standing instead of mid-air over water.
func AttachToStartPad(ecs *ecs.ECS, frog *donburi.Entry) {
	pos := components.Position.Get(frog)

	var best *donburi.Entry
	bestD := math.Inf(1)
	tags.Pad.Each(ecs.World, func(pad *donburi.Entry) {
		p := components.Position.Get(pad)
		dx, dy := p.X-pos.X, p.Y-pos.Y
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = pad
		}
	})
	if best == nil {
		return
	}

	padPos := components.Position.Get(best)
	pos.X, pos.Y = padPos.X, padPos.Y

	f := components.Frog.Get(frog)
	f.OnPad = best
	f.LastSafe = *padPos
}
