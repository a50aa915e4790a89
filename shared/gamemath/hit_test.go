package gamemath

import "testing"

// TestLandingCatch verifies the catch zone boundary: a touchdown just
// inside the widened radius lands, one past it misses.
func TestLandingCatch(t *testing.T) {
	const (
		r       = 26.0
		scale   = 1.15
		epsilon = 6.0
	)

	if !LandingCatch(r*scale+3, r, scale, epsilon) {
		t.Error("touchdown at r*scale+3 missed, want caught")
	}
	if LandingCatch(r*scale+10, r, scale, epsilon) {
		t.Error("touchdown at r*scale+10 caught, want missed")
	}
	if !LandingCatch(r*scale+epsilon, r, scale, epsilon) {
		t.Error("touchdown exactly on the boundary missed, want caught")
	}
	if !LandingCatch(0, r, scale, epsilon) {
		t.Error("dead-center touchdown missed")
	}
}

// TestCirclesOverlap verifies strict overlap, not touching.
func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 14, 20, 0, 14) {
		t.Error("overlapping circles reported apart")
	}
	if CirclesOverlap(0, 0, 14, 28, 0, 14) {
		t.Error("touching circles reported overlapping")
	}
	if CirclesOverlap(0, 0, 14, 40, 0, 14) {
		t.Error("separated circles reported overlapping")
	}
}

// TestPointInExpandedRect verifies edge and corner behavior of the
// box-hazard test against a 56x14 box centered at the origin.
func TestPointInExpandedRect(t *testing.T) {
	if !PointInExpandedRect(-41, 0, 0, 0, 28, 7, 14) {
		t.Error("point just inside the grown edge reported outside")
	}
	if PointInExpandedRect(-42, 0, 0, 0, 28, 7, 14) {
		t.Error("point exactly on the grown edge reported inside")
	}

	// The expansion is square: a point diagonal of the corner still
	// hits as long as both axes are within reach.
	if !PointInExpandedRect(28+13, 7+13, 0, 0, 28, 7, 14) {
		t.Error("corner at 13,13 inside the grown box reported outside")
	}
	if PointInExpandedRect(28+15, 7+13, 0, 0, 28, 7, 14) {
		t.Error("corner past the grown box on x reported inside")
	}
}
