package gamemath

import "math"

// PatrolAdvance moves a patrolling body step units along the line
// [min, max], reflecting at the bounds, and returns the new position
// and direction. The mapping is closed-form over the patrol period,
// so a body skipped for many ticks advances in one call exactly as if
// it had been stepped every tick. Positions pushed out of the range
// by contacts are pulled back in first.
func PatrolAdvance(x, dir, min, max, step float64) (float64, float64) {
	span := max - min
	if span <= 0 {
		return x, dir
	}
	if dir == 0 {
		dir = 1
	}
	u := x - min
	if u < 0 {
		u = 0
	}
	if u > span {
		u = span
	}
	// Unfold onto a line with period 2*span, advance, fold back.
	if dir < 0 {
		u = 2*span - u
	}
	u = math.Mod(u+step, 2*span)
	if u < 0 {
		u += 2 * span
	}
	if u <= span {
		return min + u, 1
	}
	return min + (2*span - u), -1
}

// OrbitPosition returns the position on a circle around the center.
func OrbitPosition(cx, cy, radius, phase float64) (float64, float64) {
	return cx + math.Cos(phase)*radius, cy + math.Sin(phase)*radius
}

// PulseScale returns the surface scale of a pulsing pad: 1 at the
// crest, 1-depth fully submerged.
func PulseScale(phase, depth float64) float64 {
	return 1 - depth*(0.5+0.5*math.Sin(phase))
}

// SeekVelocity returns velocity components homing toward a target.
func SeekVelocity(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}
