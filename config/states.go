package config

// StateID identifies a frog movement state. The state gates which
// systems act on the frog each frame and which animation plays.
type StateID int

const (
	StateNone StateID = iota
	StateGrounded
	StateJumping
	StateSliding
	StateFloating
	StateDrowning
	StateRiding
	StateCount
)

var stateNames = [StateCount]string{
	"none",
	"grounded",
	"jumping",
	"sliding",
	"floating",
	"drowning",
	"riding",
}

// String returns the state name used by logs and the debug overlay.
func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}

// Airborne reports whether the frog ignores water and surface hazards.
func (s StateID) Airborne() bool {
	return s == StateJumping
}

// OnSurface reports whether the frog is standing on a pad.
func (s StateID) OnSurface() bool {
	return s == StateGrounded || s == StateSliding || s == StateRiding
}
