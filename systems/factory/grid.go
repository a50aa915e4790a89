package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGrid spawns the spatial index singleton used for pad and
// hazard neighborhood queries.
func CreateGrid(ecs *ecs.ECS) *donburi.Entry {
	grid := archetypes.Grid.Spawn(ecs)
	components.Grid.Set(grid, components.NewSpatialGrid(cfg.Grid.CellSize))
	return grid
}
