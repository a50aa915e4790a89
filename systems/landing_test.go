package systems

import (
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

// TestLandingCatchZone verifies the catch boundary end to end: a
// touchdown just inside the widened radius anchors the frog, one just
// past it dunks it.
func TestLandingCatchZone(t *testing.T) {
	catch := cfg.Pad.Types[cfg.PadNormal].Radius * cfg.Frog.LandingRadiusScale

	tests := []struct {
		name       string
		offset     float64
		wantState  cfg.StateID
		wantHealth int
	}{
		{"inside the catch zone", catch + 3, cfg.StateGrounded, cfg.Frog.Health},
		{"past the catch zone", catch + 10, cfg.StateDrowning, cfg.Frog.Health - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			factory.CreateGrid(e)
			pad := factory.CreatePad(e, 240, 600, cfg.PadNormal)
			frogEntry := factory.CreateFrog(e, 240, 600+tt.offset)
			UpdateSpatialIndex(e)

			ResolveLanding(e, frogEntry)

			frog := components.Frog.Get(frogEntry)
			if frog.State != tt.wantState {
				t.Fatalf("touchdown %.1f from the pad left state %v, want %v", tt.offset, frog.State, tt.wantState)
			}
			if frog.Health != tt.wantHealth {
				t.Fatalf("health %d, want %d", frog.Health, tt.wantHealth)
			}
			if tt.wantState == cfg.StateGrounded {
				if got, ok := frog.PadEntry(); !ok || got != pad {
					t.Fatal("caught frog not anchored to the pad")
				}
				pos := components.Position.Get(frogEntry)
				if pos.X != 240 || pos.Y != 600 {
					t.Fatalf("caught frog at %.1f,%.1f, want the pad center", pos.X, pos.Y)
				}
			}
		})
	}
}

// TestSplashdownBuoyancy runs the water-entry ladder: the vest spends
// first, then a float charge, then the frog goes under.
func TestSplashdownBuoyancy(t *testing.T) {
	tests := []struct {
		name        string
		vest        bool
		charges     int
		wantState   cfg.StateID
		wantVest    bool
		wantCharges int
		wantHealth  int
	}{
		{"vest keeps the frog up", true, 0, cfg.StateFloating, false, 0, 3},
		{"vest spends before charges", true, 2, cfg.StateFloating, false, 2, 3},
		{"float charge burns", false, 2, cfg.StateFloating, false, 1, 3},
		{"nothing left sinks", false, 0, cfg.StateDrowning, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			factory.CreateGrid(e)
			frogEntry := factory.CreateFrog(e, 240, 600) // open water
			UpdateSpatialIndex(e)

			frog := components.Frog.Get(frogEntry)
			frog.HasVest = tt.vest
			frog.FloatCharges = tt.charges

			ResolveLanding(e, frogEntry)

			if frog.State != tt.wantState {
				t.Fatalf("splashdown left state %v, want %v", frog.State, tt.wantState)
			}
			if frog.HasVest != tt.wantVest {
				t.Fatalf("HasVest = %v, want %v", frog.HasVest, tt.wantVest)
			}
			if frog.FloatCharges != tt.wantCharges {
				t.Fatalf("FloatCharges = %d, want %d", frog.FloatCharges, tt.wantCharges)
			}
			if frog.Health != tt.wantHealth {
				t.Fatalf("health %d, want %d", frog.Health, tt.wantHealth)
			}
			if frog.OnPad != nil {
				t.Fatal("frog in the water still anchored to a pad")
			}
			if tt.wantState == cfg.StateFloating && frog.FloatTimer != cfg.Frog.FloatFrames {
				t.Fatalf("FloatTimer = %d, want %d", frog.FloatTimer, cfg.Frog.FloatFrames)
			}
		})
	}
}

// TestWarpPadThrowsDownstream lands the frog on a warp pad and checks
// it comes down a fixed distance later on the pad waiting there. The
// arrival pad is itself a warp pad: the second touchdown must anchor,
// not chain another warp.
func TestWarpPadThrowsDownstream(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	factory.CreatePad(e, 240, 500, cfg.PadWarp)
	dest := factory.CreatePad(e, 240, 500+cfg.Pad.WarpDistance, cfg.PadWarp)
	frogEntry := factory.CreateFrog(e, 240, 505)
	UpdateSpatialIndex(e)

	ResolveLanding(e, frogEntry)

	frog := components.Frog.Get(frogEntry)
	pos := components.Position.Get(frogEntry)
	if frog.State != cfg.StateGrounded {
		t.Fatalf("after the warp frog is %v, want grounded", frog.State)
	}
	if want := 500 + cfg.Pad.WarpDistance; pos.Y != want {
		t.Fatalf("warp dropped the frog at y=%.0f, want %.0f", pos.Y, want)
	}
	if got, ok := frog.PadEntry(); !ok || got != dest {
		t.Fatal("frog not anchored to the arrival pad")
	}
}

// TestIceLandingSlides lands a travelling frog on a floe and checks
// the jump carries through into a slide instead of an anchor.
func TestIceLandingSlides(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	factory.CreatePad(e, 240, 600, cfg.PadIce)
	frogEntry := factory.CreateFrog(e, 240, 595)
	UpdateSpatialIndex(e)

	frog := components.Frog.Get(frogEntry)
	frog.JumpFrom = dmath.Vec2{X: 240, Y: 500}
	frog.JumpTarget = dmath.Vec2{X: 240, Y: 595}

	ResolveLanding(e, frogEntry)

	if frog.State != cfg.StateSliding {
		t.Fatalf("frog landed on ice in state %v, want sliding", frog.State)
	}
	if frog.SlideVel.Y <= 0 {
		t.Fatalf("slide velocity %v, want downstream carry", frog.SlideVel)
	}
	if frog.OnPad != nil {
		t.Fatal("sliding frog still anchored to a pad")
	}
}

// TestLaunchPadArmsBoost lands on a springpad and checks the next
// jump is armed while the frog still anchors normally.
func TestLaunchPadArmsBoost(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	factory.CreatePad(e, 240, 600, cfg.PadLaunch)
	frogEntry := factory.CreateFrog(e, 240, 605)
	UpdateSpatialIndex(e)

	ResolveLanding(e, frogEntry)

	frog := components.Frog.Get(frogEntry)
	if !frog.Boosted {
		t.Fatal("springpad landing did not arm the boost")
	}
	if frog.State != cfg.StateGrounded {
		t.Fatalf("frog on the springpad in state %v, want grounded", frog.State)
	}
}

// TestCarrierLandingRides lands on a raft and checks the frog enters
// the riding state with its boarding grace.
func TestCarrierLandingRides(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	factory.CreatePad(e, 240, 600, cfg.PadCarrier)
	frogEntry := factory.CreateFrog(e, 240, 605)
	UpdateSpatialIndex(e)

	ResolveLanding(e, frogEntry)

	frog := components.Frog.Get(frogEntry)
	if frog.State != cfg.StateRiding {
		t.Fatalf("frog on the raft in state %v, want riding", frog.State)
	}
	if frog.InvulnTimer < cfg.Frog.RideInvulnFrames {
		t.Fatalf("boarding grace %d frames, want at least %d", frog.InvulnTimer, cfg.Frog.RideInvulnFrames)
	}
}

// TestShrinkingPadStartsWilting checks a landing starts the pad's
// shrink.
func TestShrinkingPadStartsWilting(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	padEntry := factory.CreatePad(e, 240, 600, cfg.PadShrinking)
	frogEntry := factory.CreateFrog(e, 240, 605)
	UpdateSpatialIndex(e)

	ResolveLanding(e, frogEntry)

	pad := components.Pad.Get(padEntry)
	if !pad.Shrinking {
		t.Fatal("landing did not start the shrink")
	}
}
