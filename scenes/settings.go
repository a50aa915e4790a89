package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/ui"
)

// SettingsScene hosts the mouse-driven settings panel
type SettingsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	shouldGoBack bool
	once         sync.Once
}

// NewSettingsScene creates a new settings scene
func NewSettingsScene(sc SceneChanger) *SettingsScene {
	return &SettingsScene{sceneChanger: sc}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if ss.settingsUI != nil {
		ss.settingsUI.Update()
	}

	if ss.shouldGoBack {
		ss.shouldGoBack = false
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger))
	}
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ss.settingsUI == nil {
		return
	}
	ss.settingsUI.UI.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio keeps running so volume changes are audible immediately.
	ss.ecs.AddSystem(systems.UpdateAudio)

	settings := systems.GetOrCreateSettings(ss.ecs)

	ss.settingsUI = ui.NewSettingsUI(settings,
		func() {
			systems.ApplySettings(ss.ecs, settings)
			systems.SaveCurrentSettings(settings)
			systems.PlaySFX(ss.ecs, cfg.SoundMenuNavigate)
		},
		func() {
			systems.ResetRecords()
			systems.PlaySFX(ss.ecs, cfg.SoundMenuSelect)
		},
		func() {
			ss.shouldGoBack = true
		})
}
