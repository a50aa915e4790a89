package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBank spawns a solid riverbank strip.
func CreateBank(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	bank := archetypes.Bank.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBank)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = bank

	components.Object.SetValue(bank, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return bank
}

// CreateGoalLine spawns the trigger band marking the end of the
// authored prologue. Entering it hands spawning over to the
// procedural generator. The band is a full spawn window deep so no
// single jump, slide or warp can leap it between ticks.
func CreateGoalLine(ecs *ecs.ECS, y float64) *donburi.Entry {
	goal := archetypes.Bank.Spawn(ecs)

	w := float64(cfg.C.Width)
	h := cfg.Course.SpawnAhead
	obj := resolv.NewObject(0, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return goal
}
