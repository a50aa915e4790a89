package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains the options offered by the main menu
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		// Portrait window, phone proportions.
		Resolutions: []Resolution{
			{Width: 480, Height: 800, Label: "480 x 800"},
			{Width: 600, Height: 1000, Label: "600 x 1000"},
			{Width: 720, Height: 1200, Label: "720 x 1200"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
