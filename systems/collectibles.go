package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/shared/gamemath"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const collectRadius = 12.0

// UpdateCollectibles keeps pad-borne pickups riding their pad, bobs
// the free-floating ones and hands the frog whatever it touches. A
// drowning frog collects nothing on the way down.
func UpdateCollectibles(ecs *ecs.ECS) {
	frogEntry, frogOK := tags.Frog.First(ecs.World)
	if !frogOK {
		return
	}
	frog := components.Frog.Get(frogEntry)
	frogPos := components.Position.Get(frogEntry)
	services := getServices(ecs)

	tags.Collectible.Each(ecs.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		pos := components.Position.Get(entry)
		c.Phase += 0.05

		if c.OnPad != nil {
			if c.OnPad.Valid() {
				padPos := components.Position.Get(c.OnPad)
				pos.X, pos.Y = padPos.X, padPos.Y
			} else {
				c.OnPad = nil
			}
		}

		if frog.State == cfg.StateDrowning {
			return
		}
		if !gamemath.CirclesOverlap(frogPos.X, frogPos.Y, cfg.Frog.Radius, pos.X, pos.Y, collectRadius) {
			return
		}

		collect(ecs, frog, c, services)
		ecs.World.Remove(entry.Entity())
	})
}

func collect(e *ecs.ECS, frog *components.FrogData, c *components.CollectibleData, services *components.ServicesData) {
	runEntry, hasRun := components.Run.First(e.World)

	switch c.Kind {
	case components.CollectTadpole:
		if frog.FloatCharges < cfg.Frog.MaxFloatCharges {
			frog.FloatCharges++
		}
		if hasRun {
			components.Run.Get(runEntry).AddTadpole(cfg.Score.PerTadpole)
		}
		services.Play(cfg.SoundPickup)

	case components.CollectPot:
		frog.InvulnTimer = maxInt(frog.InvulnTimer, cfg.Frog.PotInvulnFrames)
		if frog.ChopCharges < cfg.Frog.MaxChopCharges {
			frog.ChopCharges++
		}
		if hasRun {
			components.Run.Get(runEntry).Score += cfg.Score.PerPot
		}
		services.Play(cfg.SoundPot)

	case components.CollectVest:
		frog.HasVest = true
		services.Play(cfg.SoundVest)
	}
}
