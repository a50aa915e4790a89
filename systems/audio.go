package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/assets"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes.
// Volume and mute live here rather than on the per-world singleton so
// they survive scene changes.
var (
	globalAudioContext *audio.Context
	globalSynth        *assets.SFXSynth
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSynth = assets.NewSFXSynth(globalAudioContext)
	})
}

// PreloadAllSFX renders all cues at startup to avoid synthesis lag on
// first play. This is especially important for WASM where the first
// Update must stay cheap.
func PreloadAllSFX() {
	initGlobalAudio()
	globalSynth.PreloadAll()
}

// UpdateAudio plays the effects queued since the previous frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, ok := globalSynth.Player(soundID)
	if !ok {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume(e *ecs.ECS) float64 {
	return globalSFXVolume
}

// SetMuted toggles all sound on or off
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound is off
func IsMuted(e *ecs.ECS) bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
