package components

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// WedgeContact caches one log-pad push between exact tests. The pad
// reference is validated before reuse.
type WedgeContact struct {
	Pad  *donburi.Entry
	Push dmath.Vec2
}

// HazardData is the state of one hazard.
type HazardData struct {
	Kind config.HazardKind

	Vel dmath.Vec2
	Dir float64 // horizontal travel sign for snakes and logs

	// Anchor pad for snakes, thornbushes and anchored dragonflies.
	// Validated with Valid() on every use; cleared by the pad
	// cleanup pass.
	Anchor *donburi.Entry

	// Dragonfly orbit
	OrbitCenter dmath.Vec2
	Phase       float64

	// Pike
	Hunting bool

	// Log wedge cache. The exact closest-point test runs once per
	// CheckFrames; intermediate ticks replay these pushes.
	WedgeFrame    int
	WedgeContacts []WedgeContact

	// Set the moment removal is decided so later rules in the same
	// pass skip the hazard.
	BeingDestroyed bool
}

var Hazard = donburi.NewComponentType[HazardData]()

// Type returns the tuning entry for the hazard's kind.
func (h *HazardData) Type() config.HazardTypeConfig {
	return config.Hazard.Types[h.Kind]
}

// AnchorEntry returns the anchor pad if it is still alive.
func (h *HazardData) AnchorEntry() (*donburi.Entry, bool) {
	if h.Anchor == nil || !h.Anchor.Valid() {
		return nil, false
	}
	return h.Anchor, true
}
