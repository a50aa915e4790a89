package systems

import (
	"log"
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/shared/gamemath"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// drownFrames matches the drowning shrink tween so the frog slips
// under just as the respawn fires.
const drownFrames = 48

// UpdateFrog runs the frog state machine: aiming and jumping from a
// surface, the closed-form jump arc, slides across ice, treading
// water and drowning. Touchdowns go through ResolveLanding.
func UpdateFrog(ecs *ecs.ECS) {
	frogEntry, ok := tags.Frog.First(ecs.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	pos := components.Position.Get(frogEntry)
	input := getOrCreateInput(ecs)
	services := getServices(ecs)
	weather := getOrCreateWeather(ecs)

	if frog.InvulnTimer > 0 {
		frog.InvulnTimer--
	}
	if frog.ScaredTimer > 0 {
		frog.ScaredTimer--
	}
	if frog.ThrowCooldown > 0 {
		frog.ThrowCooldown--
	}
	frog.StateTimer++

	switch frog.State {
	case cfg.StateGrounded, cfg.StateRiding:
		updateFrogSurface(ecs, frogEntry, frog, pos, input, services)
	case cfg.StateJumping:
		updateFrogJump(ecs, frogEntry, frog, pos, services, weather)
	case cfg.StateSliding:
		updateFrogSlide(ecs, frogEntry, frog, pos, services, weather)
	case cfg.StateFloating:
		updateFrogFloat(ecs, frogEntry, frog, pos, input, services)
	case cfg.StateDrowning:
		updateFrogDrown(ecs, frogEntry, frog, pos, services)
	}

	// Pebbles can be thrown from any surface or while treading water.
	if input.GetAction(cfg.ActionThrow).JustPressed &&
		frog.ThrowCooldown == 0 &&
		(frog.State.OnSurface() || frog.State == cfg.StateFloating) {
		if ThrowPebble(ecs, frogEntry) {
			frog.ThrowCooldown = cfg.Pebble.Cooldown
			services.Play(cfg.SoundThrow)
		}
	}

	if pos.Y > frog.FurthestY {
		frog.FurthestY = pos.Y
	}
}

// updateFrogSurface keeps the frog glued to its pad and starts a jump
// when a completed drag is waiting. Losing the pad under its feet
// drops the frog straight into the water.
func updateFrogSurface(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, input *components.InputData, services *components.ServicesData) {
	padEntry, onPad := frog.PadEntry()
	if !onPad {
		frog.OnPad = nil
		enterWater(e, frogEntry, frog, pos, services)
		return
	}

	padPos := components.Position.Get(padEntry)
	pos.X = padPos.X
	pos.Y = padPos.Y
	frog.LastSafe = *padPos

	// A scared frog needs a moment before it can jump again.
	if frog.ScaredTimer > 0 {
		input.TakeAim()
		return
	}

	if aim, ok := input.TakeAim(); ok {
		startJump(e, frogEntry, frog, pos, aim, services)
	}
}

// startJump fixes the arc endpoints and flight time. The target is
// range-clamped, boosted by a pending springpad launch and snapped
// toward a pad center the aim nearly lines up with.
func startJump(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, aim dmath.Vec2, services *components.ServicesData) {
	rawLen := math.Hypot(aim.X, aim.Y)
	if rawLen <= 0 {
		return
	}

	length := rawLen
	maxRange := cfg.Frog.MaxJumpRange
	if frog.Boosted {
		length *= cfg.Frog.LaunchBoost
		maxRange *= cfg.Frog.LaunchBoost
		frog.Boosted = false
	}
	if length < cfg.Frog.MinJumpRange {
		length = cfg.Frog.MinJumpRange
	}
	if length > maxRange {
		length = maxRange
	}

	dirX := aim.X / rawLen
	dirY := aim.Y / rawLen
	target := dmath.Vec2{X: pos.X + dirX*length, Y: pos.Y + dirY*length}
	target = assistAim(e, *pos, target)

	leavePad(frog)

	frog.JumpFrom = *pos
	frog.JumpTarget = target
	frog.JumpFrames = 0
	frog.JumpTotal = gamemath.JumpDuration(
		math.Hypot(target.X-pos.X, target.Y-pos.Y), cfg.Frog.JumpSpeed)
	frog.HopZ = 0

	setFrogState(frogEntry, frog, cfg.StateJumping)
	services.Play(cfg.SoundHop)
	services.RippleAt(pos.X, pos.Y, 14, 1.2)
}

// assistAim nudges the landing point onto a pad center the jump is
// already nearly aimed at. The snap never changes the jump length, so
// assisted jumps stay inside the allowed range.
func assistAim(e *ecs.ECS, from, target dmath.Vec2) dmath.Vec2 {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return target
	}
	grid := components.Grid.Get(gridEntry)

	jumpX := target.X - from.X
	jumpY := target.Y - from.Y
	jumpLen := math.Hypot(jumpX, jumpY)
	if jumpLen <= 0 {
		return target
	}

	best := target
	bestOff := cfg.Frog.AimAssistAngle
	aimBuf = grid.QueryNearInto(aimBuf[:0], target.X, target.Y, maxPadRadius+cfg.Frog.MaxJumpRange*0.25)
	for _, ent := range aimBuf {
		entry := e.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Pad) {
			continue
		}
		pad := components.Pad.Get(entry)
		if !pad.Landable() {
			continue
		}
		pp := components.Position.Get(entry)
		candX := pp.X - from.X
		candY := pp.Y - from.Y
		candLen := math.Hypot(candX, candY)
		if candLen <= 0 {
			continue
		}
		cos := (jumpX*candX + jumpY*candY) / (jumpLen * candLen)
		if cos > 1 {
			cos = 1
		} else if cos < -1 {
			cos = -1
		}
		off := math.Acos(cos)
		if off < bestOff {
			bestOff = off
			// Keep the jump length, take the pad's direction.
			best = dmath.Vec2{
				X: from.X + candX/candLen*jumpLen,
				Y: from.Y + candY/candLen*jumpLen,
			}
		}
	}
	return best
}

var aimBuf []donburi.Entity

// updateFrogJump advances the arc one tick and resolves the landing
// when the ground track completes. A jump that somehow never
// completes is forced down at MaxJumpFrames so the frog cannot hang
// in the air for the rest of the run.
func updateFrogJump(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, services *components.ServicesData, weather *components.WeatherData) {
	frog.JumpFrames++

	pos.X, pos.Y = gamemath.ArcPoint(
		frog.JumpFrom.X, frog.JumpFrom.Y,
		frog.JumpTarget.X, frog.JumpTarget.Y,
		frog.JumpFrames, frog.JumpTotal)

	dist := math.Hypot(frog.JumpTarget.X-frog.JumpFrom.X, frog.JumpTarget.Y-frog.JumpFrom.Y)
	apex := gamemath.HopApex(dist, cfg.Frog.HopImpulse, cfg.Frog.HopGravity*weather.GravityScale)
	frog.HopZ = gamemath.HopHeight(frog.JumpFrames, frog.JumpTotal, apex)

	if frog.JumpFrames >= cfg.Frog.MaxJumpFrames && frog.JumpFrames < frog.JumpTotal {
		log.Printf("frog: jump force-completed after %d frames (total %d)", frog.JumpFrames, frog.JumpTotal)
		frog.JumpFrames = frog.JumpTotal
		pos.X = frog.JumpTarget.X
		pos.Y = frog.JumpTarget.Y
	}

	if frog.JumpFrames >= frog.JumpTotal {
		frog.HopZ = 0
		ResolveLanding(e, frogEntry)
	}
}

// updateFrogSlide carries the frog across the ice until it runs out
// of speed, then settles it on whatever is underneath.
func updateFrogSlide(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, services *components.ServicesData, weather *components.WeatherData) {
	dx, dy := frog.SlideVel.X, frog.SlideVel.Y

	// Step the collider through the space. The banks stop a slide
	// dead at their face.
	obj := components.Object.Get(frogEntry)
	if obj.Space != nil {
		obj.X = pos.X - cfg.Frog.Radius
		obj.Y = pos.Y - cfg.Frog.Radius
		if check := obj.Check(dx, dy, tags.ResolvBank); check != nil {
			if banks := check.ObjectsByTags(tags.ResolvBank); len(banks) > 0 {
				contact := check.ContactWithObject(banks[0])
				dx, dy = contact.X(), contact.Y()
				frog.SlideVel = dmath.Vec2{}
				services.Play(cfg.SoundThud)
			}
		}
	}
	pos.X += dx
	pos.Y += dy
	clampFrogToRiver(pos)

	decay := 1 - (1-cfg.Frog.SlideDecay)*weather.FrictionScale
	frog.SlideVel.X *= decay
	frog.SlideVel.Y *= decay

	if math.Hypot(frog.SlideVel.X, frog.SlideVel.Y) < cfg.Frog.SlideStopSpeed {
		frog.SlideVel = dmath.Vec2{}
		if padEntry, ok := padUnder(e, *pos); ok {
			anchorToPad(e, frogEntry, frog, pos, padEntry, services)
			return
		}
		enterWater(e, frogEntry, frog, pos, services)
	}
}

// updateFrogFloat treads water. The frog can still aim a jump out,
// but the clock is running: when it expires the frog goes under.
func updateFrogFloat(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, input *components.InputData, services *components.ServicesData) {
	frog.FloatTimer--
	if frog.FloatTimer <= 0 {
		startDrowning(e, frogEntry, frog, pos, services)
		return
	}

	if frog.ScaredTimer > 0 {
		input.TakeAim()
		return
	}
	if aim, ok := input.TakeAim(); ok {
		startJump(e, frogEntry, frog, pos, aim, services)
	}
}

// updateFrogDrown waits out the sink animation, then either ends the
// run or puts the frog back on the last safe pad.
func updateFrogDrown(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, services *components.ServicesData) {
	if frog.StateTimer < drownFrames {
		return
	}

	if frog.Health <= 0 {
		if runEntry, ok := components.Run.First(e.World); ok {
			components.Run.Get(runEntry).Over = true
		}
		return
	}

	pos.X = frog.LastSafe.X
	pos.Y = frog.LastSafe.Y
	frog.InvulnTimer = cfg.Frog.InvulnFrames
	if padEntry, ok := padUnder(e, *pos); ok {
		anchorToPad(e, frogEntry, frog, pos, padEntry, services)
	} else {
		// The safe pad has drifted off; stand wherever it was and
		// let the next touchdown sort it out.
		frog.OnPad = nil
		setFrogState(frogEntry, frog, cfg.StateGrounded)
	}
}

// enterWater is the common splashdown: a float charge or the vest
// keeps the frog up, otherwise it starts drowning.
func enterWater(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, services *components.ServicesData) {
	services.RippleAt(pos.X, pos.Y, 32, 0.9)
	services.Play(cfg.SoundSplash)

	switch {
	case frog.HasVest:
		frog.HasVest = false
		frog.FloatTimer = cfg.Frog.FloatFrames
		setFrogState(frogEntry, frog, cfg.StateFloating)
	case frog.FloatCharges > 0:
		frog.FloatCharges--
		frog.FloatTimer = cfg.Frog.FloatFrames
		setFrogState(frogEntry, frog, cfg.StateFloating)
	default:
		startDrowning(e, frogEntry, frog, pos, services)
	}
}

// startDrowning charges a health for the dunk and starts the sink.
func startDrowning(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, services *components.ServicesData) {
	frog.Health--
	frog.OnPad = nil
	setFrogState(frogEntry, frog, cfg.StateDrowning)
	services.Play(cfg.SoundHurt)
	services.Impact(0.6)
	flashFrog(frogEntry)
}

// anchorToPad settles the frog onto a pad and credits the landing
// once per distinct pad.
func anchorToPad(e *ecs.ECS, frogEntry *donburi.Entry, frog *components.FrogData, pos *dmath.Vec2, padEntry *donburi.Entry, services *components.ServicesData) {
	pad := components.Pad.Get(padEntry)
	padPos := components.Position.Get(padEntry)

	pos.X = padPos.X
	pos.Y = padPos.Y
	frog.OnPad = padEntry
	frog.LastSafe = *padPos

	if pad.Kind == cfg.PadCarrier {
		frog.InvulnTimer = maxInt(frog.InvulnTimer, cfg.Frog.RideInvulnFrames)
		setFrogState(frogEntry, frog, cfg.StateRiding)
	} else {
		setFrogState(frogEntry, frog, cfg.StateGrounded)
	}

	if !pad.Visited {
		pad.Visited = true
		if runEntry, ok := components.Run.First(e.World); ok {
			components.Run.Get(runEntry).AddPadLanding(cfg.Score.PerPad)
		}
	}
}

// leavePad releases the current pad. A wilting pad starts its regrow
// leg the moment the frog's weight comes off it.
func leavePad(frog *components.FrogData) {
	padEntry, ok := frog.PadEntry()
	frog.OnPad = nil
	if !ok {
		return
	}
	pad := components.Pad.Get(padEntry)
	if pad.Kind == cfg.PadShrinking && pad.Shrinking {
		pad.Shrinking = false
		startPadTween(padEntry, "regrow", float32(pad.Scale))
	}
}

// padUnder returns the landable pad whose catch zone covers the
// point, preferring the closest center.
func padUnder(e *ecs.ECS, pos dmath.Vec2) (*donburi.Entry, bool) {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return nil, false
	}
	grid := components.Grid.Get(gridEntry)

	var best *donburi.Entry
	bestDist := math.Inf(1)
	underBuf = grid.QueryNearInto(underBuf[:0], pos.X, pos.Y, maxPadRadius*cfg.Frog.LandingRadiusScale+cfg.Frog.LandingEpsilon)
	for _, ent := range underBuf {
		entry := e.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Pad) {
			continue
		}
		pad := components.Pad.Get(entry)
		if !pad.Landable() {
			continue
		}
		pp := components.Position.Get(entry)
		d := math.Hypot(pp.X-pos.X, pp.Y-pos.Y)
		if !gamemath.LandingCatch(d, pad.EffectiveRadius(), cfg.Frog.LandingRadiusScale, cfg.Frog.LandingEpsilon) {
			continue
		}
		if d < bestDist {
			bestDist = d
			best = entry
		}
	}
	return best, best != nil
}

var underBuf []donburi.Entity

// setFrogState switches states, resets the state clock and starts the
// state's squash-and-stretch curve.
func setFrogState(frogEntry *donburi.Entry, frog *components.FrogData, state cfg.StateID) {
	if frog.State == state {
		return
	}
	frog.State = state
	frog.StateTimer = 0

	defs, ok := cfg.FrogTweens[state]
	if !ok {
		return
	}
	seq := gween.NewSequence()
	for _, d := range defs {
		seq.Add(gween.New(d.From, d.To, d.Duration, ease.OutQuad))
	}
	components.Tween.Set(frogEntry, seq)
}

// flashFrog restarts the damage flash.
func flashFrog(frogEntry *donburi.Entry) {
	flash := components.Flash.Get(frogEntry)
	flash.Duration = 12
	flash.R, flash.G, flash.B = 1, 0.4, 0.4
}

// clampFrogToRiver keeps the frog between the banks and reports
// whether it had to.
func clampFrogToRiver(pos *dmath.Vec2) bool {
	min := cfg.Course.BankWidth + cfg.Frog.Radius
	max := float64(cfg.C.Width) - cfg.Course.BankWidth - cfg.Frog.Radius
	if pos.X < min {
		pos.X = min
		return true
	}
	if pos.X > max {
		pos.X = max
		return true
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
