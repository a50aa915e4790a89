package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects pushes entity positions into the resolv space. Only the
// frog moves among space-tracked objects; banks and the goal line are
// static but still need their cells refreshed after creation.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Frog) {
			pos := components.Position.Get(e)
			r := cfg.Frog.Radius
			obj.X = pos.X - r
			obj.Y = pos.Y - r
		}
		obj.Update()
	})
}
