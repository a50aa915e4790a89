package gamemath

import "math"

// JumpDuration returns the flight time in ticks for a jump of the
// given length at the given horizontal speed.
func JumpDuration(dist, speed float64) int {
	if speed <= 0 {
		return 1
	}
	n := int(math.Ceil(dist / speed))
	if n < 1 {
		n = 1
	}
	return n
}

// ArcPoint returns the ground-plane position frame ticks into a jump.
// The ground track is a straight lerp; the hop lives in HopHeight.
func ArcPoint(fromX, fromY, toX, toY float64, frame, total int) (float64, float64) {
	if total <= 0 {
		return toX, toY
	}
	u := float64(frame) / float64(total)
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	return fromX + (toX-fromX)*u, fromY + (toY-fromY)*u
}

// HopApex returns the peak hop height for a jump of the given length.
// Short hops stay low; long jumps approach the ballistic ceiling
// impulse^2/2g.
func HopApex(dist, impulse, gravity float64) float64 {
	if gravity <= 0 {
		return 0
	}
	ceil := impulse * impulse / (2 * gravity)
	apex := dist * 0.25
	if apex > ceil {
		apex = ceil
	}
	return apex
}

// HopHeight returns the hop height frame ticks into a jump, a
// parabola through zero at takeoff and touchdown.
func HopHeight(frame, total int, apex float64) float64 {
	if total <= 0 {
		return 0
	}
	u := float64(frame) / float64(total)
	if u < 0 || u > 1 {
		return 0
	}
	return 4 * apex * u * (1 - u)
}
