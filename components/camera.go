package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  dmath.Vec2
	LookAhead float64 // current smoothed downstream offset
	FloorY    float64 // camera never scrolls back above this
}

var Camera = donburi.NewComponentType[CameraData]()
