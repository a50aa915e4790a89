package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories capture the scene changer so the menu system
	// stays decoupled from concrete scene types.
	createRiverScene := func() interface{} {
		return NewRiverScene(ms.sceneChanger, cfg.Debug.Seed)
	}
	createSettingsScene := func() interface{} {
		return NewSettingsScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createRiverScene, createSettingsScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.GetOrCreateMenu(ms.ecs)
}
