package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, ripples, scale tweens, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateRipples(ecs)
	updateChopBursts(ecs)
	updateScaleTweens(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers; the renderer tints while Duration > 0
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateRipples(ecs *ecs.ECS) {
	components.Ripple.Each(ecs.World, func(e *donburi.Entry) {
		components.Ripple.Get(e).Age++
	})
}

func updateChopBursts(ecs *ecs.ECS) {
	components.ChopBurst.Each(ecs.World, func(e *donburi.Entry) {
		components.ChopBurst.Get(e).Age++
	})
}

// updateScaleTweens advances every active scale sequence and writes the
// value back to whatever the entity scales with. A finished sequence is
// swapped for an empty one so the final scale sticks.
func updateScaleTweens(ecs *ecs.ECS) {
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		if !seq.HasTweens() {
			return
		}

		v, _, seqDone := seq.Update(1.0 / 60.0)
		switch {
		case e.HasComponent(components.Pad):
			components.Pad.Get(e).Scale = float64(v)
		case e.HasComponent(components.Frog):
			components.Frog.Get(e).Scale = float64(v)
		}
		if seqDone {
			components.Tween.Set(e, gween.NewSequence())
		}
	})
}

// updateAutoDestroy handles entities that should be destroyed after a frame countdown
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		// Remove from physics space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// startPadTween starts the named pad scale curve, entering it from the
// pad's current scale so mid-flight reversals (a frog hopping off a
// half-shrunk pad) never snap.
func startPadTween(entry *donburi.Entry, name string, from float32) {
	defs := cfg.PadTweens[name]
	if len(defs) == 0 {
		return
	}

	seq := gween.NewSequence()
	for i, d := range defs {
		begin := d.From
		if i == 0 {
			begin = from
		}
		seq.Add(gween.New(begin, d.To, d.Duration, ease.OutQuad))
	}

	if !entry.HasComponent(components.Tween) {
		entry.AddComponent(components.Tween)
	}
	components.Tween.Set(entry, seq)
}
