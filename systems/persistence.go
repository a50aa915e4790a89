package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolumeIndex  int  `json:"sfxVolumeIndex"`
	ResolutionIndex int  `json:"resolutionIndex"`
	Muted           bool `json:"muted"`
}

// SavedBest represents the lifetime records stored on disk
type SavedBest struct {
	BestScore    int     `json:"bestScore"`
	BestDistance float64 `json:"bestDistance"`
	Runs         int     `json:"runs"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stuntfrogs",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		SFXVolumeIndex:  s.SFXVolumeIndex,
		ResolutionIndex: s.ResolutionIndex,
		Muted:           s.Muted,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
// Volume and mute go straight to the audio globals; the settings menu
// seeds its own component from disk when it is first opened.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	steps := cfg.SettingsMenu.VolumeSteps
	if saved.SFXVolumeIndex >= 0 && saved.SFXVolumeIndex < len(steps) {
		globalSFXVolume = steps[saved.SFXVolumeIndex]
	}
	globalMuted = saved.Muted

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadBest loads the lifetime records from disk
func LoadBest() (*SavedBest, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("records")
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var best SavedBest
	if err := json.Unmarshal(data, &best); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return nil, err
	}

	return &best, nil
}

// SaveBest saves the lifetime records to disk
func SaveBest(b *SavedBest) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(b)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("records", data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// RecordRun folds a finished run into the lifetime records, writes
// them back, and marks the run when it set a new best score.
func RecordRun(run *components.RunData) {
	best, _ := LoadBest()
	if best == nil {
		best = &SavedBest{}
	}

	best.Runs++
	if run.Score > best.BestScore {
		best.BestScore = run.Score
		run.NewBest = true
	}
	if run.Distance > best.BestDistance {
		best.BestDistance = run.Distance
	}
	run.BestScore = best.BestScore

	_ = SaveBest(best)
}
