package systems

import (
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a bare world wired like a headless run: the stock
// hit resolver and no presentation effects.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	WireServices(e, nil, ToolResolver{})
	return e
}

// effectsSpy records effect requests so tests can assert on feedback
// without a renderer or speaker in the loop.
type effectsSpy struct {
	ripples int
	chops   int
	impacts int
	sounds  []cfg.SoundID
}

func (s *effectsSpy) RippleAt(x, y, amplitude, freq float64) { s.ripples++ }
func (s *effectsSpy) ChopAt(x, y, dirX, dirY float64)        { s.chops++ }
func (s *effectsSpy) Impact(strength float64)                { s.impacts++ }
func (s *effectsSpy) Play(id cfg.SoundID)                    { s.sounds = append(s.sounds, id) }

func (s *effectsSpy) played(id cfg.SoundID) bool {
	for _, got := range s.sounds {
		if got == id {
			return true
		}
	}
	return false
}
