package systems

import (
	"math"
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
)

// TestPatrolFlipAtBound walks a drifter into its patrol bound and
// checks the reflection: the overshoot folds back inside the band and
// the direction flips.
func TestPatrolFlipAtBound(t *testing.T) {
	e := newTestECS()
	entry := factory.CreatePad(e, 240, 600, cfg.PadMoving)
	pad := components.Pad.Get(entry)
	pad.PatrolMinX = 200
	pad.PatrolMaxX = 250
	pad.PatrolSpeed = 6

	pos := components.Position.Get(entry)

	UpdatePads(e)
	if math.Abs(pos.X-246) > 1e-9 || pad.PatrolDir != 1 {
		t.Fatalf("after one step x=%.4f dir=%v, want 246 heading right", pos.X, pad.PatrolDir)
	}

	// 246+6 overshoots the bound at 250 by 2; the walk reflects to 248.
	UpdatePads(e)
	if math.Abs(pos.X-248) > 1e-9 {
		t.Fatalf("reflected to x=%.4f, want 248", pos.X)
	}
	if pad.PatrolDir != -1 {
		t.Fatalf("direction %v after the bound, want flipped to -1", pad.PatrolDir)
	}

	UpdatePads(e)
	if math.Abs(pos.X-242) > 1e-9 || pad.PatrolDir != -1 {
		t.Fatalf("after the flip x=%.4f dir=%v, want 242 heading left", pos.X, pad.PatrolDir)
	}

	for i := 0; i < 200; i++ {
		UpdatePads(e)
		if pos.X < pad.PatrolMinX-1e-9 || pos.X > pad.PatrolMaxX+1e-9 {
			t.Fatalf("pad left its band at x=%.4f on step %d", pos.X, i)
		}
	}
}

// TestCarrierDriftsDownstream checks a raft advances by its patrol
// step sideways and its drift step downstream each tick.
func TestCarrierDriftsDownstream(t *testing.T) {
	e := newTestECS()
	entry := factory.CreatePad(e, 240, 600, cfg.PadCarrier)
	pos := components.Position.Get(entry)

	UpdatePads(e)

	want := cfg.Pad.Types[cfg.PadCarrier]
	if math.Abs(pos.X-(240+want.PatrolSpeed)) > 1e-9 {
		t.Fatalf("raft x=%.4f, want %.4f", pos.X, 240+want.PatrolSpeed)
	}
	if math.Abs(pos.Y-(600+want.DriftSpeed)) > 1e-9 {
		t.Fatalf("raft y=%.4f, want %.4f", pos.Y, 600+want.DriftSpeed)
	}
}

// TestPulsingPadSubmerges parks a pulser just short of the trough of
// its cycle and checks the next tick bottoms it out: scale down to
// 1-depth, below the safe threshold, so it cannot catch a frog. Half
// a cycle later it is back to full size and landable.
func TestPulsingPadSubmerges(t *testing.T) {
	e := newTestECS()
	entry := factory.CreatePad(e, 240, 600, cfg.PadPulsing)
	pad := components.Pad.Get(entry)

	pad.PulsePhase = math.Pi/2 - cfg.Pad.PulseRate
	UpdatePads(e)

	if math.Abs(pad.Scale-(1-cfg.Pad.PulseDepth)) > 1e-9 {
		t.Fatalf("trough scale %.4f, want %.4f", pad.Scale, 1-cfg.Pad.PulseDepth)
	}
	if pad.Landable() {
		t.Fatal("submerged pulser still landable")
	}

	pad.PulsePhase = 3*math.Pi/2 - cfg.Pad.PulseRate
	UpdatePads(e)

	if math.Abs(pad.Scale-1) > 1e-9 {
		t.Fatalf("crest scale %.4f, want 1", pad.Scale)
	}
	if !pad.Landable() {
		t.Fatal("surfaced pulser not landable")
	}
}

// TestPushedPadComesToRest gives a pad contact velocity and checks
// friction bleeds it off: slower every tick, snapped to zero once it
// falls under the rest epsilon.
func TestPushedPadComesToRest(t *testing.T) {
	e := newTestECS()
	entry := factory.CreatePad(e, 240, 600, cfg.PadNormal)
	pad := components.Pad.Get(entry)
	pos := components.Position.Get(entry)
	pad.Vel.X = 2

	UpdatePads(e)

	if math.Abs(pos.X-242) > 1e-9 {
		t.Fatalf("pushed pad at x=%.4f, want 242", pos.X)
	}
	if math.Abs(pad.Vel.X-2*cfg.Pad.Friction) > 1e-9 {
		t.Fatalf("velocity %.4f after one tick, want %.4f", pad.Vel.X, 2*cfg.Pad.Friction)
	}

	for i := 0; i < 120; i++ {
		UpdatePads(e)
	}
	if pad.Vel.X != 0 {
		t.Fatalf("velocity %.6f never snapped to rest", pad.Vel.X)
	}
}

// TestFrozenPadHoldsStill spawns a drifter far outside the far ring
// and checks the scheduler leaves it alone entirely.
func TestFrozenPadHoldsStill(t *testing.T) {
	e := newTestECS()
	factory.CreateFrog(e, 240, 600)
	entry := factory.CreatePad(e, 240, 600+cfg.Rings.FarRadius+100, cfg.PadMoving)
	pos := components.Position.Get(entry)

	UpdateScheduler(e)
	for i := 0; i < 8; i++ {
		UpdateScheduler(e)
		UpdatePads(e)
	}

	if pos.X != 240 {
		t.Fatalf("frozen drifter moved to x=%.4f", pos.X)
	}
}
