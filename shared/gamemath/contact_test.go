package gamemath

import (
	"math"
	"testing"
)

// TestMassSplit verifies the lighter pad takes the larger share of a
// separation: a 1:3 pair splits 0.75/0.25.
func TestMassSplit(t *testing.T) {
	tests := []struct {
		name  string
		ma    float64
		mb    float64
		wantA float64
		wantB float64
	}{
		{
			name:  "one to three",
			ma:    1,
			mb:    3,
			wantA: 0.75,
			wantB: 0.25,
		},
		{
			name:  "equal masses",
			ma:    1.5,
			mb:    1.5,
			wantA: 0.5,
			wantB: 0.5,
		},
		{
			name:  "degenerate zero mass",
			ma:    0,
			mb:    0,
			wantA: 0.5,
			wantB: 0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := MassSplit(tc.ma, tc.mb)
			if math.Abs(a-tc.wantA) > 1e-9 || math.Abs(b-tc.wantB) > 1e-9 {
				t.Errorf("MassSplit(%v, %v) = %v, %v, want %v, %v",
					tc.ma, tc.mb, a, b, tc.wantA, tc.wantB)
			}
			if math.Abs(a+b-1) > 1e-9 {
				t.Errorf("shares sum to %v, want 1", a+b)
			}
		})
	}
}

// TestSeparationNormal verifies depth and the epsilon guard for
// coincident centers.
func TestSeparationNormal(t *testing.T) {
	// Overlapping pair 40 apart with radii 26+26.
	nx, ny, depth, ok := SeparationNormal(0, 0, 26, 40, 0, 26, 1e-6)
	if !ok {
		t.Fatal("overlapping pair reported no contact")
	}
	if nx != 1 || ny != 0 {
		t.Errorf("normal = (%v, %v), want (1, 0)", nx, ny)
	}
	if math.Abs(depth-12) > 1e-9 {
		t.Errorf("depth = %v, want 12", depth)
	}

	// Exactly touching is not a contact.
	if _, _, _, ok := SeparationNormal(0, 0, 26, 52, 0, 26, 1e-6); ok {
		t.Error("touching pair reported a contact")
	}

	// Coincident centers have no normal; the pair is skipped.
	if _, _, _, ok := SeparationNormal(5, 5, 26, 5, 5, 26, 1e-6); ok {
		t.Error("coincident pair produced a contact normal")
	}
}

// TestImpulseExchange verifies the bounce damps, reverses and
// conserves momentum, and that separating pairs are left alone.
func TestImpulseExchange(t *testing.T) {
	// Head-on, equal masses, restitution 0.4.
	dvax, dvay, dvbx, dvby := ImpulseExchange(1, 0, -1, 0, 1, 0, 1, 1, 0.4)
	if dvay != 0 || dvby != 0 {
		t.Errorf("normal is horizontal but dvay=%v dvby=%v", dvay, dvby)
	}
	vaAfter := 1 + dvax
	vbAfter := -1 + dvbx
	if math.Abs(vaAfter+0.4) > 1e-9 || math.Abs(vbAfter-0.4) > 1e-9 {
		t.Errorf("after = %v, %v, want -0.4, 0.4", vaAfter, vbAfter)
	}

	// Momentum conserved for unequal masses.
	ma, mb := 1.0, 3.0
	dvax, _, dvbx, _ = ImpulseExchange(2, 0, 0, 0, 1, 0, ma, mb, 0.4)
	if p := ma*dvax + mb*dvbx; math.Abs(p) > 1e-9 {
		t.Errorf("momentum changed by %v", p)
	}

	// Already separating: no impulse.
	dvax, dvay, dvbx, dvby = ImpulseExchange(-1, 0, 1, 0, 1, 0, 1, 1, 0.4)
	if dvax != 0 || dvay != 0 || dvbx != 0 || dvby != 0 {
		t.Error("separating pair received an impulse")
	}
}

// TestWedgePush verifies the log push is horizontal, capped by log
// speed, stronger for deeper overlap and absent outside the margin.
func TestWedgePush(t *testing.T) {
	const (
		hw       = 28.0
		hh       = 7.0
		padR     = 26.0
		margin   = 4.0
		maxForce = 2.5
		speedCap = 3.0
	)

	// Pad to the right of the log, just inside the margin band.
	push, ok := WedgePush(100, 100, hw, hh, 100+hw+padR+margin-1, 100, padR, margin, maxForce, speedCap, 2)
	if !ok {
		t.Fatal("pad inside the margin band got no push")
	}
	if push <= 0 {
		t.Errorf("push = %v, want positive (away from the log)", push)
	}

	// Outside the band: no push.
	if _, ok := WedgePush(100, 100, hw, hh, 100+hw+padR+margin+1, 100, padR, margin, maxForce, speedCap, 2); ok {
		t.Error("pad outside the margin band got a push")
	}

	// Deeper overlap pushes harder.
	deep, _ := WedgePush(100, 100, hw, hh, 100+hw+10, 100, padR, margin, maxForce, speedCap, 2)
	shallow, _ := WedgePush(100, 100, hw, hh, 100+hw+20, 100, padR, margin, maxForce, speedCap, 2)
	if deep <= shallow {
		t.Errorf("deep push %v not greater than shallow push %v", deep, shallow)
	}

	// Log speed beyond the cap adds nothing.
	capped, _ := WedgePush(100, 100, hw, hh, 100+hw+10, 100, padR, margin, maxForce, speedCap, speedCap)
	fast, _ := WedgePush(100, 100, hw, hh, 100+hw+10, 100, padR, margin, maxForce, speedCap, 10*speedCap)
	if capped != fast {
		t.Errorf("push %v at cap speed but %v beyond it", capped, fast)
	}

	// Pad on the left is pushed left.
	left, ok := WedgePush(100, 100, hw, hh, 100-hw-10, 100, padR, margin, maxForce, speedCap, 2)
	if !ok || left >= 0 {
		t.Errorf("left-side push = %v, want negative", left)
	}

	// The push can never exceed maxForce, even dead center.
	full, _ := WedgePush(100, 100, hw, hh, 100, 100, padR, margin, maxForce, speedCap, speedCap)
	if full > maxForce+1e-9 {
		t.Errorf("push %v exceeds the ceiling %v", full, maxForce)
	}
}
