package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera singleton snapped to the frog's
// start position so the view does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position:  dmath.Vec2{X: x, Y: y},
		LookAhead: 0,
		FloorY:    y - cfg.Camera.MaxBackscroll,
	})
}
