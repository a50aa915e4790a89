package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the pause system. Restart and Main Menu need
// scene transitions, so the scene hands in its changer and factories.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(sceneChanger SceneChanger, createRiverScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if input.GetAction(cfg.ActionPause).JustPressed {
			pause.IsPaused = !pause.IsPaused
			if pause.IsPaused {
				pause.SelectedOption = components.MenuResume
			}
		}

		// Only process menu input while paused
		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuExit) + 1
		if input.GetAction(cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if input.GetAction(cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if input.GetAction(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
			case components.MenuRestart:
				sceneChanger.ChangeScene(createRiverScene())
			case components.MenuExit:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.MenuItem.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Center text horizontally (approximate width calculation)
		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Drag to jump   Space: pebble   Esc: resume"
	hintFont := fonts.HUDSmall.Get()
	hintX := int((width - float64(len(hint)*7)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
