package gamemath

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/mathutil"
)

// SeparationNormal returns the unit normal from circle a to circle b
// and their penetration depth. ok is false when the circles do not
// overlap, or when their centers sit within eps of each other; a
// coincident pair has no usable normal, so the caller skips it for
// this tick instead of dividing by zero.
func SeparationNormal(ax, ay, ar, bx, by, br, eps float64) (nx, ny, depth float64, ok bool) {
	dx := bx - ax
	dy := by - ay
	d2 := dx*dx + dy*dy
	rsum := ar + br
	if d2 >= rsum*rsum {
		return 0, 0, 0, false
	}
	d := math.Sqrt(d2)
	if d <= eps {
		return 0, 0, 0, false
	}
	return dx / d, dy / d, rsum - d, true
}

// MassSplit returns each body's share of a positional separation.
// The lighter body moves farther: a 1:3 mass ratio splits 0.75/0.25.
func MassSplit(ma, mb float64) (shareA, shareB float64) {
	total := ma + mb
	if total <= 0 {
		return 0.5, 0.5
	}
	return mb / total, ma / total
}

// ImpulseExchange returns the velocity deltas of a lossy bounce along
// the contact normal, which points from a to b. A pair already moving
// apart produces no impulse.
func ImpulseExchange(vax, vay, vbx, vby, nx, ny, ma, mb, restitution float64) (dvax, dvay, dvbx, dvby float64) {
	if ma <= 0 || mb <= 0 {
		return
	}
	vrel := (vbx-vax)*nx + (vby-vay)*ny
	if vrel > 0 {
		return
	}
	j := -(1 + restitution) * vrel / (1/ma + 1/mb)
	dvax = -(j / ma) * nx
	dvay = -(j / ma) * ny
	dvbx = (j / mb) * nx
	dvby = (j / mb) * ny
	return
}

// ClosestPointOnRect returns the point of the axis-aligned rect
// (center rx, ry, half extents hw, hh) closest to p.
func ClosestPointOnRect(px, py, rx, ry, hw, hh float64) (float64, float64) {
	cx := mathutil.ClampFloat(px, rx-hw, rx+hw)
	cy := mathutil.ClampFloat(py, ry-hh, ry+hh)
	return cx, cy
}

// WedgePush returns the horizontal push a drifting log applies to a
// pad whose closest-point distance is within margin of the pad edge.
// The push points away from the log center, never vertically, grows
// as the pad sinks deeper into the margin band, and is capped so fast
// logs cannot launch pads off the river.
func WedgePush(logX, logY, hw, hh, padX, padY, padR, margin, maxForce, speedCap, logSpeed float64) (float64, bool) {
	cx, cy := ClosestPointOnRect(padX, padY, logX, logY, hw, hh)
	dx := padX - cx
	dy := padY - cy
	d2 := dx*dx + dy*dy
	reach := padR + margin
	if reach <= 0 || d2 >= reach*reach {
		return 0, false
	}

	speedScale := 1.0
	if speedCap > 0 {
		speed := math.Abs(logSpeed)
		if speed > speedCap {
			speed = speedCap
		}
		speedScale = speed / speedCap
	}

	f := 1 - math.Sqrt(d2)/reach
	push := maxForce * f * speedScale
	if padX < logX {
		push = -push
	}
	return push, true
}
