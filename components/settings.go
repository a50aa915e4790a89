package components

import "github.com/yohamta/donburi"

// SettingsData stores the player-adjustable options shown on the main
// menu and persisted between launches (singleton component).
type SettingsData struct {
	SFXVolumeIndex  int // index into config.SettingsMenu.VolumeSteps
	ResolutionIndex int
	Muted           bool
}

var Settings = donburi.NewComponentType[SettingsData]()
