package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
)

// CycleVolume steps the SFX volume index without wrapping.
func CycleVolume(s *components.SettingsData, direction int) {
	idx := s.SFXVolumeIndex + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(cfg.SettingsMenu.VolumeSteps) {
		idx = len(cfg.SettingsMenu.VolumeSteps) - 1
	}
	s.SFXVolumeIndex = idx
}

// CycleResolution cycles through the available window sizes.
func CycleResolution(s *components.SettingsData, direction int) {
	n := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + n) % n
}

// ToggleMute toggles the mute state.
func ToggleMute(s *components.SettingsData) {
	s.Muted = !s.Muted
}

// ApplySettings pushes the chosen values into the mixer and window.
func ApplySettings(e *ecs.ECS, s *components.SettingsData) {
	steps := cfg.SettingsMenu.VolumeSteps
	if s.SFXVolumeIndex >= 0 && s.SFXVolumeIndex < len(steps) {
		SetSFXVolume(e, steps[s.SFXVolumeIndex])
	}
	SetMuted(e, s.Muted)

	if s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// GetVolumeLabel returns the display text for the current SFX volume
func GetVolumeLabel(s *components.SettingsData) string {
	steps := cfg.SettingsMenu.VolumeSteps
	if s.SFXVolumeIndex < 0 || s.SFXVolumeIndex >= len(steps) {
		return "?"
	}
	return fmt.Sprintf("%d%%", int(steps[s.SFXVolumeIndex]*100))
}

// GetResolutionLabel returns the display text for the current window size
func GetResolutionLabel(s *components.SettingsData) string {
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		return "?"
	}
	return cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
}

// GetMuteLabel returns the display text for the mute toggle
func GetMuteLabel(s *components.SettingsData) string {
	if s.Muted {
		return "Muted"
	}
	return "Sound On"
}

// ResetRecords clears the lifetime best score and distance.
func ResetRecords() {
	_ = SaveBest(&SavedBest{})
}

// defaultVolumeIndex finds the step closest to the default SFX volume
func defaultVolumeIndex() int {
	steps := cfg.SettingsMenu.VolumeSteps
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := cfg.Audio.DefaultSFXVol - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// GetOrCreateSettings returns the singleton Settings component, seeding
// it from disk on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		data := components.SettingsData{
			SFXVolumeIndex:  defaultVolumeIndex(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		}

		if saved, _ := LoadSettings(); saved != nil {
			if saved.SFXVolumeIndex >= 0 && saved.SFXVolumeIndex < len(cfg.SettingsMenu.VolumeSteps) {
				data.SFXVolumeIndex = saved.SFXVolumeIndex
			}
			if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
				data.ResolutionIndex = saved.ResolutionIndex
			}
			data.Muted = saved.Muted
		}

		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, data)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
