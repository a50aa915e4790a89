package components

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
)

// OutcomeCause records what destroyed a hazard.
type OutcomeCause int

const (
	CauseNone OutcomeCause = iota
	CauseChop
	CausePebble
)

// Outcome describes what a resolved hit did to the hazard.
type Outcome struct {
	Destroyed bool
	Cause     OutcomeCause
}

// Effects receives fire-and-forget presentation requests from the
// gameplay systems. Implementations must not mutate gameplay state.
// Amplitude is the ripple's full radius in world units, freq packs the
// rings tighter as it rises. The chop direction is a unit vector along
// the blow; a zero vector scatters the debris evenly.
type Effects interface {
	RippleAt(x, y, amplitude, freq float64)
	ChopAt(x, y, dirX, dirY float64)
	Impact(strength float64)
	Play(id config.SoundID)
}

// HitResolver decides whether a frog-hazard contact destroys the
// hazard, consuming whatever tool charge that takes.
type HitResolver interface {
	ResolveHit(frog, hazard *donburi.Entry) Outcome
}

// ServicesData is the singleton holding injected collaborators. Both
// may be nil; every call funnels through the nil-guarded helpers
// below, so a missing collaborator degrades to a no-op instead of a
// crash.
type ServicesData struct {
	Effects  Effects
	Resolver HitResolver
}

var Services = donburi.NewComponentType[ServicesData]()

func (s *ServicesData) RippleAt(x, y, amplitude, freq float64) {
	if s.Effects != nil {
		s.Effects.RippleAt(x, y, amplitude, freq)
	}
}

func (s *ServicesData) ChopAt(x, y, dirX, dirY float64) {
	if s.Effects != nil {
		s.Effects.ChopAt(x, y, dirX, dirY)
	}
}

func (s *ServicesData) Impact(strength float64) {
	if s.Effects != nil {
		s.Effects.Impact(strength)
	}
}

func (s *ServicesData) Play(id config.SoundID) {
	if s.Effects != nil {
		s.Effects.Play(id)
	}
}

// Resolve runs the hit resolver. Without one, nothing is destroyed
// and the contact falls through to the hit-only rules.
func (s *ServicesData) Resolve(frog, hazard *donburi.Entry) Outcome {
	if s.Resolver == nil {
		return Outcome{}
	}
	return s.Resolver.ResolveHit(frog, hazard)
}
