package systems

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reused across ticks; the loop is single threaded.
var botBuf []donburi.Entity

// UpdateBots drives the frog when the autopilot singleton is present.
// It runs after UpdateInput and before UpdateFrog and writes the same
// drag-aim fields the pointer would, so downstream systems cannot tell
// a bot from a player.
func UpdateBots(e *ecs.ECS) {
	botEntry, ok := components.Bot.First(e.World)
	if !ok {
		return
	}
	bot := components.Bot.Get(botEntry)

	frogEntry, ok := tags.Frog.First(e.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	pos := components.Position.Get(frogEntry)

	if bot.Cooldown > 0 {
		bot.Cooldown--
		return
	}

	canAct := frog.State == cfg.StateGrounded ||
		frog.State == cfg.StateRiding ||
		frog.State == cfg.StateFloating
	if !canAct || frog.ScaredTimer > 0 {
		return
	}

	diff := cfg.Bot.Difficulties[bot.Difficulty]
	input := getOrCreateInput(e)

	// Clear the lane before committing to a jump.
	if botWantsThrow(e, frog, pos, diff) {
		input.Current[cfg.ActionThrow] = true
		bot.Throws++
		bot.Cooldown = diff.ReactionDelay / 2
		return
	}

	target, found := botPickPad(e, frog, pos, diff)
	if !found {
		// Nowhere to go this tick; look again shortly.
		bot.Cooldown = diff.ReactionDelay / 4
		return
	}

	jx := (bot.Rand.Float64()*2 - 1) * diff.AimJitter
	jy := (bot.Rand.Float64()*2 - 1) * diff.AimJitter
	input.Aim = dmath.Vec2{X: target.X - pos.X + jx, Y: target.Y - pos.Y + jy}
	input.AimValid = true
	bot.Decisions++
	bot.Cooldown = diff.ReactionDelay
}

// botWantsThrow reports whether a smashable hazard sits close enough
// to be worth a pebble first.
func botWantsThrow(e *ecs.ECS, frog *components.FrogData, pos *dmath.Vec2, diff cfg.BotDifficultyConfig) bool {
	if diff.ThrowRange <= 0 || frog.ThrowCooldown > 0 {
		return false
	}
	hx, hy, found := nearestSmashable(e, *pos)
	if !found {
		return false
	}
	return math.Hypot(hx-pos.X, hy-pos.Y) <= diff.ThrowRange
}

// botPickPad chooses the landing pad: the furthest downstream landable
// pad in jump range with no live hazard within the veto radius. While
// floating, any reachable pad beats drowning, hazards or not.
func botPickPad(e *ecs.ECS, frog *components.FrogData, pos *dmath.Vec2, diff cfg.BotDifficultyConfig) (dmath.Vec2, bool) {
	gridEntry, ok := components.Grid.First(e.World)
	if !ok {
		return dmath.Vec2{}, false
	}
	grid := components.Grid.Get(gridEntry)

	currentPad, _ := frog.PadEntry()
	desperate := frog.State == cfg.StateFloating

	var best dmath.Vec2
	bestGain := math.Inf(-1)
	found := false

	botBuf = grid.QueryNearInto(botBuf[:0], pos.X, pos.Y, cfg.Frog.MaxJumpRange)
	for _, ent := range botBuf {
		entry := e.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Pad) {
			continue
		}
		if currentPad != nil && entry.Entity() == currentPad.Entity() {
			continue
		}
		pad := components.Pad.Get(entry)
		if !pad.Landable() {
			continue
		}

		padPos := components.Position.Get(entry)
		dist := math.Hypot(padPos.X-pos.X, padPos.Y-pos.Y)
		if dist > cfg.Frog.MaxJumpRange {
			continue
		}
		if !desperate && hazardNear(e, grid, *padPos, diff.HazardRange) {
			continue
		}

		// Downstream gain, with closeness breaking ties while afloat.
		gain := padPos.Y - pos.Y
		if desperate {
			gain = -dist
		}
		if gain > bestGain {
			bestGain = gain
			best = *padPos
			found = true
		}
	}

	// On a pad, never hop upstream of where we stand.
	if found && !desperate && bestGain <= 0 {
		return dmath.Vec2{}, false
	}
	return best, found
}

// hazardNear reports a live hazard within r of p.
func hazardNear(e *ecs.ECS, grid *components.SpatialGrid, p dmath.Vec2, r float64) bool {
	near := false
	buf := grid.QueryNear(p.X, p.Y, r)
	for _, ent := range buf {
		entry := e.World.Entry(ent)
		if !entry.Valid() || !entry.HasComponent(components.Hazard) {
			continue
		}
		hazard := components.Hazard.Get(entry)
		if hazard.BeingDestroyed {
			continue
		}
		hp := components.Position.Get(entry)
		if math.Hypot(hp.X-p.X, hp.Y-p.Y) <= r {
			near = true
			break
		}
	}
	return near
}
