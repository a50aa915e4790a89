package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SchedulerData is the singleton driving the distance-banded update
// schedule. Ring assignments are recomputed only when the frog has
// moved far enough from the last anchor or enough ticks have passed,
// so entities do not flap between bands on small movements.
type SchedulerData struct {
	Frame         int
	LastRecompute int
	Anchor        dmath.Vec2 // frog position at the last recompute
	Recomputes    int        // total recomputes, for the debug overlay
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
