package systems

import (
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
)

// TestRingAssignment drops pads at increasing distances from the frog
// and checks the band each lands in after one scheduling pass.
func TestRingAssignment(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want components.RingID
	}{
		{"well inside near", 100, components.RingNear},
		{"medium band", 300, components.RingMedium},
		{"far band", 500, components.RingFar},
		{"beyond far", 700, components.RingFrozen},
		{"near boundary is inclusive", cfg.Rings.NearRadius, components.RingNear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			factory.CreateFrog(e, 240, 1000)
			pad := factory.CreatePad(e, 240, 1000+tt.dist, cfg.PadNormal)

			UpdateScheduler(e)

			if got := components.LOD.Get(pad).Ring; got != tt.want {
				t.Fatalf("pad %.0f away assigned ring %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

// TestRingRecomputeHysteresis moves the frog less than the recompute
// threshold and checks the rings hold still, then crosses the
// threshold and checks they snap to the new anchor.
func TestRingRecomputeHysteresis(t *testing.T) {
	e := newTestECS()
	frogEntry := factory.CreateFrog(e, 240, 1000)
	pad := factory.CreatePad(e, 240, 1190, cfg.PadNormal)

	UpdateScheduler(e) // first pass always recomputes

	lod := components.LOD.Get(pad)
	if lod.Ring != components.RingNear {
		t.Fatalf("pad 190 away assigned ring %v, want near", lod.Ring)
	}

	// 40 upstream: the pad is now 230 out, but the anchor has not
	// moved far enough to trigger a recompute.
	pos := components.Position.Get(frogEntry)
	pos.Y -= 40
	UpdateScheduler(e)
	if lod.Ring != components.RingNear {
		t.Fatalf("ring flapped to %v without a recompute", lod.Ring)
	}

	// Another 20 crosses the threshold.
	pos.Y -= 20
	UpdateScheduler(e)
	if lod.Ring != components.RingMedium {
		t.Fatalf("pad 250 from the anchor assigned ring %v, want medium", lod.Ring)
	}
}

// TestRingRecomputeAfterMaxFrames parks the frog just short of the
// distance trigger and checks the frame cap forces a recompute
// anyway.
func TestRingRecomputeAfterMaxFrames(t *testing.T) {
	e := newTestECS()
	frogEntry := factory.CreateFrog(e, 240, 1000)
	pad := factory.CreatePad(e, 240, 1190, cfg.PadNormal)

	UpdateScheduler(e)
	components.Position.Get(frogEntry).Y -= 40

	for i := 0; i < cfg.Rings.RecomputeMax; i++ {
		UpdateScheduler(e)
	}

	if got := components.LOD.Get(pad).Ring; got != components.RingMedium {
		t.Fatalf("pad 230 from the frog assigned ring %v after the forced recompute, want medium", got)
	}
}

// TestRingCadence checks which frames each ring runs on.
func TestRingCadence(t *testing.T) {
	tests := []struct {
		name  string
		ring  components.RingID
		frame int
		want  bool
	}{
		{"near runs every frame", components.RingNear, 3, true},
		{"medium skips odd frames", components.RingMedium, 3, false},
		{"medium runs even frames", components.RingMedium, 4, true},
		{"far skips off-beat frames", components.RingFar, 6, false},
		{"far runs every fourth", components.RingFar, 8, true},
		{"frozen never runs", components.RingFrozen, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringActive(tt.ring, tt.frame); got != tt.want {
				t.Fatalf("ringActive(%v, %d) = %v, want %v", tt.ring, tt.frame, got, tt.want)
			}
		})
	}
}

// TestStepTicksCatchUp verifies skipped frames accrue as owed ticks,
// the debt is capped at the far cadence, and a never-processed entity
// starts with a single tick.
func TestStepTicksCatchUp(t *testing.T) {
	lod := &components.LODData{Ring: components.RingMedium, LastProcessed: 10}
	if got := stepTicks(lod, 12); got != 2 {
		t.Fatalf("two skipped frames owed %v ticks, want 2", got)
	}
	if lod.LastProcessed != 12 {
		t.Fatalf("LastProcessed = %d, want 12", lod.LastProcessed)
	}

	lod.LastProcessed = 10
	if got := stepTicks(lod, 40); got != float64(cfg.Rings.FarEvery) {
		t.Fatalf("a long frozen span owed %v ticks, want the cap %d", got, cfg.Rings.FarEvery)
	}

	fresh := &components.LODData{}
	if got := stepTicks(fresh, 57); got != 1 {
		t.Fatalf("a never-processed entity owed %v ticks, want 1", got)
	}
}

// TestFarRingMotionCadence runs the motion pass behind the scheduler
// and checks a far-ring raft drifts only on its beat while a frozen
// one never moves.
func TestFarRingMotionCadence(t *testing.T) {
	e := newTestECS()
	factory.CreateFrog(e, 240, 1000)
	far := factory.CreatePad(e, 240, 1500, cfg.PadCarrier)
	frozen := factory.CreatePad(e, 240, 1700, cfg.PadCarrier)

	UpdateScheduler(e) // frame 1 assigns the rings
	farY := components.Position.Get(far).Y
	frozenY := components.Position.Get(frozen).Y

	// Frames 2 and 3 miss the far beat; frame 4 is on it.
	for frame := 2; frame <= 4; frame++ {
		UpdateScheduler(e)
		UpdatePads(e)
		if frame < 4 && components.Position.Get(far).Y != farY {
			t.Fatalf("far raft moved on frame %d, off its beat", frame)
		}
	}

	if components.Position.Get(far).Y == farY {
		t.Fatal("far raft never moved on its beat")
	}
	if components.Position.Get(frozen).Y != frozenY {
		t.Fatal("frozen raft moved")
	}
}
