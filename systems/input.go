package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slices for device IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID
var touchIDs []ebiten.TouchID

// UpdateInput polls the keyboard, gamepad and pointer into the input
// singleton. Must run before UpdateFrog in the system order. The
// pointer drag is the jump control: press, pull, release; the drag
// length sets the jump range.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	AdvanceInputFrame(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	updateDrag(input)
}

// AdvanceInputFrame rotates the pressed buffers without polling any
// device. Headless runs use it in place of UpdateInput so autopilot
// pulses still edge-trigger.
func AdvanceInputFrame(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

// updateDrag tracks the pointer through a drag and converts the
// completed gesture into a jump vector. Drags shorter than DragMin
// cancel, so a stray tap never launches the frog.
func updateDrag(input *components.InputData) {
	px, py, down := pointerState()

	switch {
	case down && !input.Dragging:
		input.Dragging = true
		input.DragStart = dmath.Vec2{X: px, Y: py}
		input.DragPos = input.DragStart
	case down:
		input.DragPos = dmath.Vec2{X: px, Y: py}
	case input.Dragging:
		input.Dragging = false
		finishDrag(input)
	}
}

func finishDrag(input *components.InputData) {
	dx := input.DragPos.X - input.DragStart.X
	dy := input.DragPos.Y - input.DragStart.Y
	length := math.Hypot(dx, dy)
	if length < cfg.Input.DragMin {
		return
	}

	ratio := (length - cfg.Input.DragMin) / (cfg.Input.DragMax - cfg.Input.DragMin)
	if ratio > 1 {
		ratio = 1
	}
	jump := cfg.Frog.MinJumpRange + ratio*(cfg.Frog.MaxJumpRange-cfg.Frog.MinJumpRange)

	input.Aim = dmath.Vec2{X: dx / length * jump, Y: dy / length * jump}
	input.AimValid = true
}

// pointerState reads the primary pointer: the first active touch on a
// touch screen, the mouse otherwise. Screen directions match world
// directions, so the drag needs no camera transform.
func pointerState() (x, y float64, down bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
