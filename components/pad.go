package components

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PadData is the state of one lily pad. Position lives in the shared
// Position component so pads, hazards and pickups move uniformly.
type PadData struct {
	Kind   config.PadKind
	Radius float64 // base radius, unscaled
	Mass   float64
	Scale  float64 // current scale from pulsing or shrinking

	// Velocity from contact responses: pad-pad impulses and log
	// wedge pushes. Decays under friction each tick.
	Vel dmath.Vec2

	// Patrol motion for the moving kinds. Direction flips at the
	// patrol bounds.
	PatrolDir   float64
	PatrolSpeed float64
	PatrolMinX  float64
	PatrolMaxX  float64
	DriftSpeed  float64 // downstream drift, carriers only

	PulsePhase float64 // pulsing kinds, radians

	Shrinking bool // wilter kinds, true during the shrink leg

	Visited bool // landing points are scored once per pad

	// Occupied is a bitmask of anchored hazard kinds, one bit per
	// kind. Each kind anchors to a pad at most once.
	Occupied uint8

	// Set the moment removal is decided so later rules in the same
	// pass skip the pad.
	BeingDestroyed bool
}

var Pad = donburi.NewComponentType[PadData]()

// EffectiveRadius is the collision and landing radius after scaling.
func (p *PadData) EffectiveRadius() float64 {
	return p.Radius * p.Scale
}

// Landable reports whether the pad can catch a frog right now. A
// pulsing pad submerged past its safe scale cannot.
func (p *PadData) Landable() bool {
	if p.BeingDestroyed {
		return false
	}
	if p.Kind == config.PadPulsing && p.Scale < config.Pad.PulseSafeScale {
		return false
	}
	return true
}

// Slippery reports whether landings slide instead of sticking.
func (p *PadData) Slippery() bool {
	return p.Kind == config.PadIce
}

// Occupy marks a hazard kind as anchored to this pad.
func (p *PadData) Occupy(k config.HazardKind) {
	p.Occupied |= 1 << uint(k)
}

// ReleaseOccupancy frees a hazard kind's anchor slot.
func (p *PadData) ReleaseOccupancy(k config.HazardKind) {
	p.Occupied &^= 1 << uint(k)
}

// OccupiedBy reports whether a hazard of the kind is anchored here.
func (p *PadData) OccupiedBy(k config.HazardKind) bool {
	return p.Occupied&(1<<uint(k)) != 0
}
