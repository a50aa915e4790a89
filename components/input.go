package components

import (
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for
// all actions plus the pointer drag used for jump aiming.
// JustPressed/JustReleased are computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Drag aiming. Start and Pos are screen-space; Aim is the
	// world-space jump vector captured the frame the drag ends.
	Dragging  bool
	DragStart dmath.Vec2
	DragPos   dmath.Vec2
	AimValid  bool // a completed drag is waiting to be consumed
	Aim       dmath.Vec2
}

var Input = donburi.NewComponentType[InputData]()

// GetAction returns the full temporal state of an action.
func (i *InputData) GetAction(action cfg.ActionID) ActionState {
	cur := i.Current[action]
	prev := i.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// TakeAim consumes the pending jump vector, if any.
func (i *InputData) TakeAim() (dmath.Vec2, bool) {
	if !i.AimValid {
		return dmath.Vec2{}, false
	}
	i.AimValid = false
	return i.Aim, true
}
