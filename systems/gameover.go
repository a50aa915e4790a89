package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/fonts"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createRiverScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if input.GetAction(cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if input.GetAction(cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if input.GetAction(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createRiverScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over screen with the run's results
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "SWEPT AWAY"
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	// Run results
	statFont := fonts.MenuItem.Get()
	stats := []string{
		fmt.Sprintf("Score  %d", gameOver.FinalScore),
		fmt.Sprintf("Distance  %dm", int(gameOver.Distance/cfg.Score.DistanceDiv)),
		fmt.Sprintf("Best  %d", gameOver.BestScore),
	}
	if gameOver.NewBest {
		stats = append(stats, "New best!")
	}
	for i, line := range stats {
		lineWidth := len(line) * 11
		x := int((width - float64(lineWidth)) / 2)
		y := int(cfg.GameOver.TitleY) + 60 + i*34
		clr := cfg.GameOver.TextColorNormal
		if line == "New best!" {
			clr = cfg.GameOver.TextColorSelected
		}
		text.Draw(screen, line, statFont, x, y, clr)
	}

	// Menu options
	menuFont := fonts.MenuItem.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*cfg.GameOver.MenuItemHeight

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
