package systems

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createRiverScene func() interface{}, createSettingsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if input.GetAction(cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.GetAction(cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.GetAction(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createRiverScene())
			case components.MainMenuSettings:
				sceneChanger.ChangeScene(createSettingsScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if input.GetAction(cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "STUNT FROGS"
	titleWidth := len(title) * 23 // Approximate width for 38pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	// Lifetime records under the title, once a run has finished
	if menu.BestScore > 0 || menu.BestDistance > 0 {
		recordFont := fonts.HUD.Get()
		record := fmt.Sprintf("Best %d   Farthest %dm", menu.BestScore, int(menu.BestDistance/cfg.Score.DistanceDiv))
		recordWidth := len(record) * 9
		recordX := int((width - float64(recordWidth)) / 2)
		text.Draw(screen, record, recordFont, recordX, int(cfg.Menu.TitleY)+40, cfg.Pause.TextColorNormal)
	}

	menuFont := fonts.MenuItem.Get()
	menuStartY := height/2 + 40

	for i, option := range menu.Options {
		y := menuStartY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Pause.TextColorSelected
		}

		label := getOptionLabel(option)
		textWidth := len(label) * 13
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select"
	hintFont := fonts.HUDSmall.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		options := []components.MainMenuOption{
			components.MainMenuStart,
			components.MainMenuSettings,
			components.MainMenuExit,
		}

		best, _ := LoadBest()
		if best == nil {
			best = &SavedBest{}
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       options,
			BestScore:     best.BestScore,
			BestDistance:  best.BestDistance,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
