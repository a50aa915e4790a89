package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // flash color, 0-1 per channel (1,1,1 = white, 1,0.4,0.4 = red)
}

var Flash = donburi.NewComponentType[FlashData]()

// RippleData is one expanding water ring. Freq sets how tightly the
// trailing rings follow the leading one; below 1 they spread out.
type RippleData struct {
	Age       int
	Life      int
	MaxRadius float64
	Freq      float64
}

var Ripple = donburi.NewComponentType[RippleData]()

// ChopBurstData is the short leaf-scatter shown when something is
// chopped or smashed. Dir is the unit direction of the blow; zero
// scatters evenly.
type ChopBurstData struct {
	Age  int
	Life int
	Dir  dmath.Vec2
}

var ChopBurst = donburi.NewComponentType[ChopBurstData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
