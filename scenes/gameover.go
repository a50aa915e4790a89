package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems"
)

// GameOverScene shows the run results and offers a retry
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	run          components.RunData
	once         sync.Once
}

// NewGameOverScene creates a results scene from a finished run snapshot
func NewGameOverScene(sc SceneChanger, run components.RunData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, run: run}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createRiverScene := func() interface{} {
		return NewRiverScene(gs.sceneChanger, cfg.Debug.Seed)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createRiverScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.FinalScore = gs.run.Score
	gameOver.BestScore = gs.run.BestScore
	gameOver.NewBest = gs.run.NewBest
	gameOver.Distance = gs.run.Distance
}
