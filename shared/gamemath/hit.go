package gamemath

import "math"

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	r := ar + br
	return dx*dx+dy*dy < r*r
}

// PointInExpandedRect reports whether p lies inside the rect centered
// at (rx, ry) with half extents hw, hh after growing it by pad on all
// sides. Box hazards test this against the frog center: the box meets
// the frog's square rather than its circle, so clipping a corner
// still counts.
func PointInExpandedRect(px, py, rx, ry, hw, hh, pad float64) bool {
	return math.Abs(px-rx) < hw+pad && math.Abs(py-ry) < hh+pad
}

// LandingCatch reports whether a touchdown dist away from the pad
// center is caught. The catch zone is the scaled pad radius widened
// by the catch scale plus a fixed slack.
func LandingCatch(dist, padRadius, catchScale, epsilon float64) bool {
	return dist <= padRadius*catchScale+epsilon
}
