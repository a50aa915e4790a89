package gamemath

import (
	"math"
	"testing"
)

// TestPatrolAdvance verifies bound reflection and that one large step
// equals the same distance taken in small steps, which is what lets
// far-ring entities catch up in a single call.
func TestPatrolAdvance(t *testing.T) {
	// Plain advance, no bound hit.
	x, dir := PatrolAdvance(40, 1, 0, 100, 7)
	if x != 47 || dir != 1 {
		t.Errorf("advance = (%v, %v), want (47, 1)", x, dir)
	}

	// Reflect off the right bound.
	x, dir = PatrolAdvance(95, 1, 0, 100, 30)
	if x != 75 || dir != -1 {
		t.Errorf("reflect = (%v, %v), want (75, -1)", x, dir)
	}

	// Reflect off the left bound.
	x, dir = PatrolAdvance(5, -1, 0, 100, 30)
	if x != 25 || dir != 1 {
		t.Errorf("left reflect = (%v, %v), want (25, 1)", x, dir)
	}

	// A step spanning several periods still lands in range.
	x, dir = PatrolAdvance(40, 1, 0, 100, 1000)
	if x < 0 || x > 100 {
		t.Errorf("long step left the range: %v", x)
	}

	// Catch-up equivalence: ten steps of 7 == one step of 70.
	xs, ds := 40.0, 1.0
	for i := 0; i < 10; i++ {
		xs, ds = PatrolAdvance(xs, ds, 0, 100, 7)
	}
	xo, do := PatrolAdvance(40, 1, 0, 100, 70)
	if math.Abs(xs-xo) > 1e-9 || ds != do {
		t.Errorf("stepwise (%v, %v) != one-shot (%v, %v)", xs, ds, xo, do)
	}

	// A position shoved past the bounds is pulled back in.
	x, _ = PatrolAdvance(130, 1, 0, 100, 5)
	if x < 0 || x > 100 {
		t.Errorf("out-of-range start not recovered: %v", x)
	}
}

// TestOrbitPosition verifies the circle parameterization.
func TestOrbitPosition(t *testing.T) {
	x, y := OrbitPosition(10, 20, 38, 0)
	if math.Abs(x-48) > 1e-9 || math.Abs(y-20) > 1e-9 {
		t.Errorf("phase 0 = (%v, %v), want (48, 20)", x, y)
	}
	x, y = OrbitPosition(10, 20, 38, math.Pi/2)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-58) > 1e-9 {
		t.Errorf("phase pi/2 = (%v, %v), want (10, 58)", x, y)
	}
}

// TestPulseScale verifies the crest and trough of the pulse.
func TestPulseScale(t *testing.T) {
	const depth = 0.3
	if s := PulseScale(-math.Pi/2, depth); math.Abs(s-1) > 1e-9 {
		t.Errorf("crest scale = %v, want 1", s)
	}
	if s := PulseScale(math.Pi/2, depth); math.Abs(s-(1-depth)) > 1e-9 {
		t.Errorf("trough scale = %v, want %v", s, 1-depth)
	}
}

// TestSeekVelocity verifies normalization and the at-target case.
func TestSeekVelocity(t *testing.T) {
	vx, vy := SeekVelocity(0, 0, 30, 40, 2.2)
	speed := math.Sqrt(vx*vx + vy*vy)
	if math.Abs(speed-2.2) > 1e-9 {
		t.Errorf("speed = %v, want 2.2", speed)
	}
	if vx <= 0 || vy <= 0 {
		t.Errorf("direction = (%v, %v), want toward (+, +)", vx, vy)
	}

	vx, vy = SeekVelocity(30, 40, 30, 40, 2.2)
	if vx != 0 || vy != 0 {
		t.Errorf("at target = (%v, %v), want rest", vx, vy)
	}
}
