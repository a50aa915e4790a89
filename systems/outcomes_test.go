package systems

import (
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

// TestJumpInvulnerability checks which hazard kinds an airborne frog
// clears: dragonflies and snakes never touch it, everything else
// registers regardless of air state.
func TestJumpInvulnerability(t *testing.T) {
	tests := []struct {
		name     string
		kind     cfg.HazardKind
		wantHurt bool
	}{
		{"dragonfly cleared", cfg.HazardDragonfly, false},
		{"snake cleared", cfg.HazardSnake, false},
		{"pike still bites", cfg.HazardPike, true},
		{"thornbush still bites", cfg.HazardThornbush, true},
		{"log still bites", cfg.HazardLog, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			factory.CreateGrid(e)
			frogEntry := factory.CreateFrog(e, 240, 600)
			factory.CreateHazard(e, 240, 600, tt.kind, 1)
			frog := components.Frog.Get(frogEntry)
			frog.State = cfg.StateJumping
			UpdateSpatialIndex(e)

			UpdateOutcomes(e)

			gotHurt := frog.Health < cfg.Frog.Health
			if gotHurt != tt.wantHurt {
				t.Fatalf("airborne contact hurt = %v, want %v", gotHurt, tt.wantHurt)
			}
		})
	}
}

// TestChopCharges runs the tool resolution: one charge fells a
// choppable hazard, anything else falls through to the plain hit.
func TestChopCharges(t *testing.T) {
	tests := []struct {
		name          string
		kind          cfg.HazardKind
		charges       int
		wantDestroyed bool
		wantCharges   int
		wantHealth    int
	}{
		{"log chopped", cfg.HazardLog, 1, true, 0, 3},
		{"thornbush chopped", cfg.HazardThornbush, 2, true, 1, 3},
		{"bramble chopped clears passage", cfg.HazardBramble, 1, true, 0, 3},
		{"pike shrugs it off", cfg.HazardPike, 1, false, 1, 2},
		{"no charge no chop", cfg.HazardThornbush, 0, false, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			spy := &effectsSpy{}
			WireServices(e, spy, ToolResolver{})
			run := getOrCreateRun(e)
			factory.CreateGrid(e)
			frogEntry := factory.CreateFrog(e, 240, 600)
			hazardEntry := factory.CreateHazard(e, 240, 600, tt.kind, 1)
			frog := components.Frog.Get(frogEntry)
			frog.ChopCharges = tt.charges
			UpdateSpatialIndex(e)

			UpdateOutcomes(e)

			hazard := components.Hazard.Get(hazardEntry)
			if hazard.BeingDestroyed != tt.wantDestroyed {
				t.Fatalf("BeingDestroyed = %v, want %v", hazard.BeingDestroyed, tt.wantDestroyed)
			}
			if frog.ChopCharges != tt.wantCharges {
				t.Fatalf("charges left %d, want %d", frog.ChopCharges, tt.wantCharges)
			}
			if frog.Health != tt.wantHealth {
				t.Fatalf("health %d, want %d", frog.Health, tt.wantHealth)
			}
			if tt.wantDestroyed {
				if spy.chops != 1 {
					t.Fatalf("chop bursts %d, want 1", spy.chops)
				}
				if run.Hazards != 1 || run.Score != cfg.Score.PerHazard {
					t.Fatalf("kill scored %d hazards %d points, want 1 and %d", run.Hazards, run.Score, cfg.Score.PerHazard)
				}
			}
		})
	}
}

// TestBrambleBlock checks the wall asymmetry: the shove lands whether
// or not the frog is invulnerable, the damage only when it is not.
func TestBrambleBlock(t *testing.T) {
	tests := []struct {
		name       string
		invuln     int
		wantHealth int
	}{
		{"vulnerable frog pays", 0, 2},
		{"invulnerable frog only bounces", 30, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			spy := &effectsSpy{}
			WireServices(e, spy, ToolResolver{})
			factory.CreateGrid(e)
			frogEntry := factory.CreateFrog(e, 240, 605)
			brambleEntry := factory.CreateHazard(e, 240, 600, cfg.HazardBramble, 0)
			frog := components.Frog.Get(frogEntry)
			frog.InvulnTimer = tt.invuln
			UpdateSpatialIndex(e)

			UpdateOutcomes(e)

			pos := components.Position.Get(frogEntry)
			if pos.Y != 605+cfg.Hazard.Types[cfg.HazardBramble].Pushback {
				t.Fatalf("frog at y=%.1f, want shoved downstream off the thorns", pos.Y)
			}
			if frog.Health != tt.wantHealth {
				t.Fatalf("health %d, want %d", frog.Health, tt.wantHealth)
			}
			if frog.ScaredTimer == 0 {
				t.Fatal("block did not rattle the frog")
			}
			if components.Hazard.Get(brambleEntry).BeingDestroyed {
				t.Fatal("hit-only bramble removed")
			}
			if !spy.played(cfg.SoundThud) {
				t.Fatal("block played no thud")
			}
			if gotHurt := spy.played(cfg.SoundHurt); gotHurt != (tt.wantHealth < 3) {
				t.Fatalf("hurt cue played = %v, want %v", gotHurt, tt.wantHealth < 3)
			}
		})
	}
}

// TestBrambleCutsJumpShort flies the frog into a bramble and checks
// its motion dies on the thorns: the jump comes down at the shoved
// point and any slide carry is zeroed.
func TestBrambleCutsJumpShort(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 240, 605)
	factory.CreateHazard(e, 240, 600, cfg.HazardBramble, 0)
	frog := components.Frog.Get(frogEntry)
	frog.State = cfg.StateJumping
	frog.JumpTarget = dmath.Vec2{X: 240, Y: 700}
	frog.JumpFrames = 10
	frog.JumpTotal = 40
	frog.SlideVel = dmath.Vec2{X: 1, Y: 2}
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	pos := components.Position.Get(frogEntry)
	if frog.JumpFrames != frog.JumpTotal {
		t.Fatalf("jump still in flight: %d of %d frames", frog.JumpFrames, frog.JumpTotal)
	}
	if frog.JumpTarget != *pos {
		t.Fatalf("jump target %v, want the shoved point %v", frog.JumpTarget, *pos)
	}
	if frog.SlideVel.X != 0 || frog.SlideVel.Y != 0 {
		t.Fatalf("slide velocity %v, want zeroed", frog.SlideVel)
	}
}

// TestLogRemovedOnHit checks the transient-obstacle rule: a log whose
// resolution comes back hit-only still leaves the river on the same
// pass, and the bounce is not a kill.
func TestLogRemovedOnHit(t *testing.T) {
	e := newTestECS()
	spy := &effectsSpy{}
	WireServices(e, spy, ToolResolver{})
	run := getOrCreateRun(e)
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 240, 600)
	logEntry := factory.CreateHazard(e, 240, 600, cfg.HazardLog, 1)
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	frog := components.Frog.Get(frogEntry)
	if frog.Health != 2 {
		t.Fatalf("health %d, want 2 after the bounce", frog.Health)
	}
	if !components.Hazard.Get(logEntry).BeingDestroyed {
		t.Fatal("struck log not flagged for removal")
	}
	if !spy.played(cfg.SoundSplash) {
		t.Fatal("spent log made no splash")
	}
	if run.Hazards != 0 {
		t.Fatalf("bounce scored %d hazard kills, want 0", run.Hazards)
	}
}

// TestInvulnerableFrogPassesLog checks the window gate sits before
// the log rule: an invulnerable frog neither spends the log nor pays
// for it.
func TestInvulnerableFrogPassesLog(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 240, 600)
	logEntry := factory.CreateHazard(e, 240, 600, cfg.HazardLog, 1)
	frog := components.Frog.Get(frogEntry)
	frog.InvulnTimer = 30
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	if frog.Health != cfg.Frog.Health {
		t.Fatalf("health %d, want untouched", frog.Health)
	}
	if components.Hazard.Get(logEntry).BeingDestroyed {
		t.Fatal("log removed under the invulnerability window")
	}
}

// TestOneHitPerPass overlaps two pikes and checks the window started
// by the first hit swallows the second in the same pass.
func TestOneHitPerPass(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 245, 600)
	factory.CreateHazard(e, 240, 600, cfg.HazardPike, 1)
	factory.CreateHazard(e, 252, 600, cfg.HazardPike, 1)
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	frog := components.Frog.Get(frogEntry)
	if frog.Health != cfg.Frog.Health-1 {
		t.Fatalf("health %d, want exactly one hit charged", frog.Health)
	}
	if frog.InvulnTimer != cfg.Frog.InvulnFrames {
		t.Fatalf("InvulnTimer = %d, want %d", frog.InvulnTimer, cfg.Frog.InvulnFrames)
	}
}

// TestSnakeFairnessBox checks the bite box is the reduced one, not
// the sprite: a frog inside the sprite's reach but outside the box
// is safe.
func TestSnakeFairnessBox(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		wantHurt bool
	}{
		{"inside the bite box", 30, true},
		{"inside the sprite only", 36, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			factory.CreateGrid(e)
			frogEntry := factory.CreateFrog(e, 240+tt.offset, 600)
			factory.CreateHazard(e, 240, 600, cfg.HazardSnake, 1)
			UpdateSpatialIndex(e)

			UpdateOutcomes(e)

			frog := components.Frog.Get(frogEntry)
			gotHurt := frog.Health < cfg.Frog.Health
			if gotHurt != tt.wantHurt {
				t.Fatalf("offset %.0f hurt = %v, want %v", tt.offset, gotHurt, tt.wantHurt)
			}
		})
	}
}

// TestDestroyedHazardSkipped checks the guard flag: a hazard already
// flagged this tick cannot land a second outcome.
func TestDestroyedHazardSkipped(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 240, 600)
	pikeEntry := factory.CreateHazard(e, 240, 600, cfg.HazardPike, 1)
	components.Hazard.Get(pikeEntry).BeingDestroyed = true
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	if got := components.Frog.Get(frogEntry).Health; got != cfg.Frog.Health {
		t.Fatalf("health %d, want untouched by a destroyed hazard", got)
	}
}

// TestDrowningFrogSkipsOutcomes checks a sinking frog is already out
// of play.
func TestDrowningFrogSkipsOutcomes(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	frogEntry := factory.CreateFrog(e, 240, 600)
	factory.CreateHazard(e, 240, 600, cfg.HazardPike, 1)
	frog := components.Frog.Get(frogEntry)
	frog.State = cfg.StateDrowning
	UpdateSpatialIndex(e)

	UpdateOutcomes(e)

	if frog.Health != cfg.Frog.Health {
		t.Fatalf("health %d, want untouched while drowning", frog.Health)
	}
}
