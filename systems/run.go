package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRun advances the run clock and folds downstream progress into
// the score. The Over flag is raised by the frog system when the last
// heart is gone; counting stops there.
func UpdateRun(e *ecs.ECS) {
	run := getOrCreateRun(e)
	if run.Over {
		return
	}
	run.Frame++

	frogEntry, ok := components.Frog.First(e.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)

	if courseEntry, ok := components.Course.First(e.World); ok {
		course := components.Course.Get(courseEntry)
		run.UpdateDistance(frog.FurthestY-course.SpawnY, cfg.Score.DistanceDiv)
	}
}

// getOrCreateRun returns the singleton Run component, creating if needed
func getOrCreateRun(e *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Run))
	}
	return components.Run.Get(entry)
}
