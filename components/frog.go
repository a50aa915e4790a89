package components

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// FrogData is the full state of the player frog.
type FrogData struct {
	State      config.StateID
	StateTimer int // frames spent in the current state

	// Jump in progress. The arc is closed-form: the ground track is
	// lerped from JumpFrom toward JumpTarget while HopZ follows a
	// parabola, so a jump can never diverge no matter how it was
	// entered.
	JumpFrom   dmath.Vec2
	JumpTarget dmath.Vec2
	JumpFrames int
	JumpTotal  int
	HopZ       float64
	Boosted    bool // springpad boost applies to the next jump

	// Anchor to the pad being stood on or ridden. Validated with
	// Valid() on every use; cleared by the pad cleanup pass.
	OnPad *donburi.Entry

	// Sliding (ice, frost)
	SlideVel dmath.Vec2

	// Treading water
	FloatTimer int

	// Health and buffs
	Health        int
	InvulnTimer   int
	ScaredTimer   int
	FloatCharges  int
	ChopCharges   int
	HasVest       bool
	ThrowCooldown int

	// Respawn point, updated on every safe landing.
	LastSafe dmath.Vec2

	// Render scale driven by the state tween.
	Scale float64

	FurthestY float64 // deepest downstream point reached
}

var Frog = donburi.NewComponentType[FrogData]()

// Invulnerable reports whether damage is currently ignored.
func (f *FrogData) Invulnerable() bool {
	return f.InvulnTimer > 0
}

// PadEntry returns the anchored pad if it is still alive.
func (f *FrogData) PadEntry() (*donburi.Entry, bool) {
	if f.OnPad == nil || !f.OnPad.Valid() {
		return nil, false
	}
	return f.OnPad, true
}
