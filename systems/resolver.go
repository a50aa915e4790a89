package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ToolResolver is the stock HitResolver: one chop charge destroys a
// choppable hazard on contact. Contacts no tool applies to fall
// through to the plain hit rules.
type ToolResolver struct{}

func (ToolResolver) ResolveHit(frog, hazard *donburi.Entry) components.Outcome {
	f := components.Frog.Get(frog)
	h := components.Hazard.Get(hazard)
	if !h.Type().Choppable || f.ChopCharges <= 0 {
		return components.Outcome{}
	}
	f.ChopCharges--
	return components.Outcome{Destroyed: true, Cause: components.CauseChop}
}

// SceneEffects routes gameplay effect requests to the presentation
// side: ripple and burst entities, camera shake and the sound queue.
// It never touches gameplay state.
type SceneEffects struct {
	ecs *ecs.ECS
}

func NewSceneEffects(e *ecs.ECS) *SceneEffects {
	return &SceneEffects{ecs: e}
}

func (s *SceneEffects) RippleAt(x, y, amplitude, freq float64) {
	factory.SpawnRipple(s.ecs, x, y, amplitude, freq)
}

func (s *SceneEffects) ChopAt(x, y, dirX, dirY float64) {
	factory.SpawnChopBurst(s.ecs, x, y, dirX, dirY)
}

func (s *SceneEffects) Impact(strength float64) {
	TriggerScreenShake(s.ecs, strength*8, 10+int(strength*20))
}

func (s *SceneEffects) Play(id cfg.SoundID) {
	PlaySFX(s.ecs, id)
}

// getServices returns the services singleton, creating an empty one
// when the scene never wired collaborators in. Every call on the
// empty value is a no-op, which is exactly what headless simulation
// wants.
func getServices(ecs *ecs.ECS) *components.ServicesData {
	if entry, ok := components.Services.First(ecs.World); ok {
		return components.Services.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Services))
	components.Services.Set(entry, &components.ServicesData{})
	return components.Services.Get(entry)
}

// WireServices installs the scene's collaborators on the services
// singleton.
func WireServices(ecs *ecs.ECS, effects components.Effects, resolver components.HitResolver) {
	s := getServices(ecs)
	s.Effects = effects
	s.Resolver = resolver
}
