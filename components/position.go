package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Position is the world-space center of an entity. The river flows
// down the screen, so downstream is +Y.
var Position = donburi.NewComponentType[dmath.Vec2]()
