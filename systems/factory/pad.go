package factory

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/archetypes"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePad(ecs *ecs.ECS, x, y float64, kind cfg.PadKind) *donburi.Entry {
	t, exists := cfg.Pad.Types[kind]
	if !exists {
		kind = cfg.PadNormal
		t = cfg.Pad.Types[kind]
	}

	pad := archetypes.Pad.Spawn(ecs)
	components.Position.SetValue(pad, dmath.Vec2{X: x, Y: y})

	minX, maxX := patrolBounds(x, t.Radius, kind)
	components.Pad.SetValue(pad, components.PadData{
		Kind:        kind,
		Radius:      t.Radius,
		Mass:        t.Mass,
		Scale:       1.0,
		PatrolDir:   1,
		PatrolSpeed: t.PatrolSpeed,
		PatrolMinX:  minX,
		PatrolMaxX:  maxX,
		DriftSpeed:  t.DriftSpeed,
	})

	return pad
}

// patrolBounds returns the horizontal band a moving pad sweeps.
// Carriers ferry bank to bank; drifters and lilies stay near their
// spawn column. Bounds are clamped so the pad never enters a bank.
func patrolBounds(x, radius float64, kind cfg.PadKind) (float64, float64) {
	riverMin := cfg.Course.BankWidth + radius
	riverMax := float64(cfg.C.Width) - cfg.Course.BankWidth - radius

	minX, maxX := riverMin, riverMax
	if kind != cfg.PadCarrier {
		minX = x - cfg.Pad.PatrolHalfSpan
		maxX = x + cfg.Pad.PatrolHalfSpan
		if minX < riverMin {
			minX = riverMin
		}
		if maxX > riverMax {
			maxX = riverMax
		}
	}
	return minX, maxX
}
