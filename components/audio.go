package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-world effect queue (singleton component).
// Volume and mute are process-wide state owned by the audio system.
type AudioData struct {
	Context    *audio.Context
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
