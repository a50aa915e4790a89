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
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
)

// gameOverDelay lets the final splash play out before the results screen.
const gameOverDelay = 45

// RiverScene runs a descent: the authored opening stretch, then the
// seeded generator until the frog goes under.
type RiverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	seed         int64
	ended        bool
	endDelay     int
	once         sync.Once
}

// NewRiverScene creates a gameplay scene. Seed 0 rolls a fresh course
// every run; any other value replays the same generated river.
func NewRiverScene(sc SceneChanger, seed int64) *RiverScene {
	return &RiverScene{sceneChanger: sc, seed: seed}
}

func (rs *RiverScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
	rs.checkRunOver()
}

func (rs *RiverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RiverScene) configure() {
	systems.PreloadAllSFX()

	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createRiverScene := func() interface{} {
		return NewRiverScene(rs.sceneChanger, rs.seed)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(rs.sceneChanger)
	}

	rs.ecs.AddSystem(systems.UpdateAudio)
	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.UpdateBots)
	rs.ecs.AddSystem(systems.NewUpdatePause(rs.sceneChanger, createRiverScene, createMenuScene))
	rs.ecs.AddSystem(systems.UpdateDebug)

	// Gameplay halts while paused or once the run is over; menus and
	// audio above keep ticking.
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateScheduler))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWeather))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePads))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpatialIndex))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePadContacts))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFrog))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateOutcomes))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePebbles))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCourse))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	rs.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRun))

	rs.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	rs.ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	rs.ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)
	rs.ecs.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	courseEntry := factory.CreateCourseAtIndex(rs.ecs, 0, rs.seed)
	course := components.Course.Get(courseEntry)

	factory.CreateGrid(rs.ecs)

	frog := factory.CreateFrog(rs.ecs, course.SpawnX, course.SpawnY)
	factory.AttachToStartPad(rs.ecs, frog)

	factory.CreateCamera(rs.ecs, course.SpawnX, course.SpawnY)
	factory.CreatePebbleArena(rs.ecs)

	systems.WireServices(rs.ecs, systems.NewSceneEffects(rs.ecs), systems.ToolResolver{})
}

// checkRunOver hands off to the results screen a beat after the run ends.
func (rs *RiverScene) checkRunOver() {
	runEntry, ok := components.Run.First(rs.ecs.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	if !run.Over {
		return
	}

	if !rs.ended {
		rs.ended = true
		systems.RecordRun(run)
		systems.PlaySFX(rs.ecs, cfg.SoundGameOver)
	}

	rs.endDelay++
	if rs.endDelay >= gameOverDelay {
		rs.sceneChanger.ChangeScene(NewGameOverScene(rs.sceneChanger, *run))
	}
}
