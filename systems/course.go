package systems

import (
	"log"
	"math"
	"math/rand"
	"sort"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Weighted tables iterate in kind order so a seeded run spawns the
// same course every time; map order would reshuffle it per process.
var padKindOrder = func() []cfg.PadKind {
	kinds := make([]cfg.PadKind, 0, len(cfg.Course.KindWeights))
	for k := range cfg.Course.KindWeights {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}()

var hazardKindOrder = func() []cfg.HazardKind {
	kinds := make([]cfg.HazardKind, 0, len(cfg.Course.HazardWeights))
	for k := range cfg.Course.HazardWeights {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}()

// UpdateCourse runs the course life cycle. The authored prologue ends
// at its goal line; from there the generator keeps rows of pads,
// hazards and pickups laid out ahead of the frog. The same pass
// sweeps out what the run has left far behind - and it is the only
// place entities are removed, so anchors into removed pads can all be
// cleared right here, in the same tick.
func UpdateCourse(ecs *ecs.ECS) {
	courseEntry, ok := components.Course.First(ecs.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry)

	frogEntry, ok := tags.Frog.First(ecs.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	frogPos := components.Position.Get(frogEntry)

	if course.Authored && frogInGoalBand(frogEntry, frogPos) {
		course.Authored = false
		log.Printf("course: prologue %q cleared, generator taking over at y=%.0f", course.Name, frogPos.Y)
	}

	if !course.Authored {
		for course.NextRowY < frog.FurthestY+cfg.Course.SpawnAhead {
			spawnRow(ecs, course)
		}
	}

	sweepBehind(ecs, frog, frogPos.Y)
}

// frogInGoalBand reports whether the frog's collider has entered the
// handover band at the prologue's end.
func frogInGoalBand(frogEntry *donburi.Entry, pos *dmath.Vec2) bool {
	obj := components.Object.Get(frogEntry)
	if obj.Space == nil {
		return false
	}
	obj.X = pos.X - cfg.Frog.Radius
	obj.Y = pos.Y - cfg.Frog.Radius
	return obj.Check(0, 0, tags.ResolvGoal) != nil
}

// spawnRow lays out one procedural row: one to three pads spread
// across the river, each with a chance of a pickup, and sometimes a
// hazard for the row.
func spawnRow(e *ecs.ECS, course *components.CourseData) {
	r := course.Rand
	y := course.NextRowY
	course.NextRowY += cfg.Course.RowSpacing + (r.Float64()*2-1)*cfg.Course.RowJitter
	course.Rows++

	minPads, maxPads := cfg.Course.PadsPerRow[0], cfg.Course.PadsPerRow[1]
	n := minPads + r.Intn(maxPads-minPads+1)

	usable := float64(cfg.C.Width) - 2*cfg.Course.BankWidth
	slot := usable / float64(n)

	var rowPads []*donburi.Entry
	for i := 0; i < n; i++ {
		kind := weightedPadKind(r)
		x := cfg.Course.BankWidth + slot*float64(i) + slot*(0.25+r.Float64()*0.5)
		py := y + (r.Float64()*2-1)*cfg.Course.RowJitter*0.5

		padEntry := factory.CreatePad(e, x, py, kind)
		rowPads = append(rowPads, padEntry)

		pad := components.Pad.Get(padEntry)
		if pad.PatrolSpeed > 0 && r.Intn(2) == 0 {
			pad.PatrolDir = -1
		}
		if kind == cfg.PadPulsing {
			pad.PulsePhase = r.Float64() * 2 * math.Pi
		}

		roll := r.Float64()
		switch {
		case roll < cfg.Course.TadpoleChance:
			factory.CreateCollectible(e, x, py, components.CollectTadpole, padEntry)
		case roll < cfg.Course.TadpoleChance+cfg.Course.PotChance:
			factory.CreateCollectible(e, x, py, components.CollectPot, padEntry)
		case roll < cfg.Course.TadpoleChance+cfg.Course.PotChance+cfg.Course.VestChance:
			factory.CreateCollectible(e, x, py, components.CollectVest, padEntry)
		}
	}

	if r.Float64() < cfg.Course.HazardChance {
		spawnRowHazard(e, r, y, rowPads)
	}
}

func spawnRowHazard(e *ecs.ECS, r *rand.Rand, y float64, rowPads []*donburi.Entry) {
	kind := weightedHazardKind(r)
	riverMin := cfg.Course.BankWidth + 20
	riverMax := float64(cfg.C.Width) - cfg.Course.BankWidth - 20

	switch kind {
	case cfg.HazardSnake, cfg.HazardLog:
		// Crossers start at a bank and swim or drift to the other.
		dir := 1.0
		x := riverMin
		if r.Intn(2) == 0 {
			dir = -1.0
			x = riverMax
		}
		factory.CreateHazard(e, x, y, kind, dir)

	case cfg.HazardThornbush:
		// Needs a pad to stand on.
		if len(rowPads) == 0 {
			return
		}
		factory.CreatePadHazard(e, rowPads[r.Intn(len(rowPads))], kind)

	case cfg.HazardDragonfly:
		if len(rowPads) > 0 && r.Intn(2) == 0 {
			factory.CreatePadHazard(e, rowPads[r.Intn(len(rowPads))], kind)
			return
		}
		factory.CreateHazard(e, riverMin+r.Float64()*(riverMax-riverMin), y, kind, 1)

	case cfg.HazardBramble:
		// Sits in the open water between rows.
		factory.CreateHazard(e, riverMin+r.Float64()*(riverMax-riverMin), y-cfg.Course.RowSpacing/2, kind, 1)

	default:
		factory.CreateHazard(e, riverMin+r.Float64()*(riverMax-riverMin), y, kind, 1)
	}
}

func weightedPadKind(r *rand.Rand) cfg.PadKind {
	total := 0
	for _, k := range padKindOrder {
		total += cfg.Course.KindWeights[k]
	}
	if total <= 0 {
		return cfg.PadNormal
	}
	roll := r.Intn(total)
	for _, k := range padKindOrder {
		roll -= cfg.Course.KindWeights[k]
		if roll < 0 {
			return k
		}
	}
	return cfg.PadNormal
}

func weightedHazardKind(r *rand.Rand) cfg.HazardKind {
	total := 0
	for _, k := range hazardKindOrder {
		total += cfg.Course.HazardWeights[k]
	}
	if total <= 0 {
		return cfg.HazardDragonfly
	}
	roll := r.Intn(total)
	for _, k := range hazardKindOrder {
		roll -= cfg.Course.HazardWeights[k]
		if roll < 0 {
			return k
		}
	}
	return cfg.HazardDragonfly
}

// sweepBehind removes what the run has left behind: pads far
// upstream, hazards flagged destroyed or out of bounds, and pickups
// on removed pads. The cut line never passes the frog's respawn pad,
// so drowning can always put the frog back on something solid.
func sweepBehind(e *ecs.ECS, frog *components.FrogData, frogY float64) {
	anchorY := frogY
	if frog.LastSafe.Y < anchorY {
		anchorY = frog.LastSafe.Y
	}
	cut := anchorY - cfg.Hazard.DespawnBehind
	sideMin := -cfg.Hazard.DespawnSide
	sideMax := float64(cfg.C.Width) + cfg.Hazard.DespawnSide

	removedPads := make(map[donburi.Entity]struct{})
	var removals []*donburi.Entry

	tags.Pad.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		pad := components.Pad.Get(entry)
		if pos.Y < cut-pad.EffectiveRadius() {
			pad.BeingDestroyed = true
			removedPads[entry.Entity()] = struct{}{}
			removals = append(removals, entry)
		}
	})

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		pos := components.Position.Get(entry)

		anchorGone := false
		if hazard.Anchor != nil {
			if !hazard.Anchor.Valid() {
				anchorGone = true
			} else if _, gone := removedPads[hazard.Anchor.Entity()]; gone {
				anchorGone = true
			}
		}

		if hazard.BeingDestroyed || anchorGone ||
			pos.Y < cut || pos.X < sideMin || pos.X > sideMax {
			hazard.BeingDestroyed = true
			if anchor, ok := hazard.AnchorEntry(); ok {
				components.Pad.Get(anchor).ReleaseOccupancy(hazard.Kind)
			}
			removals = append(removals, entry)
		}
	})

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		pos := components.Position.Get(entry)

		padGone := false
		if c.OnPad != nil && c.OnPad.Valid() {
			if _, gone := removedPads[c.OnPad.Entity()]; gone {
				padGone = true
			}
		}

		if padGone || pos.Y < cut {
			removals = append(removals, entry)
		}
	})

	if len(removals) == 0 {
		return
	}

	// Clear every anchor into a removed pad before the removal so
	// nothing carries a dead entry across the tick edge.
	if frog.OnPad != nil {
		if _, gone := removedPads[frog.OnPad.Entity()]; gone || !frog.OnPad.Valid() {
			frog.OnPad = nil
		}
	}

	var grid *components.SpatialGrid
	if gridEntry, ok := components.Grid.First(e.World); ok {
		grid = components.Grid.Get(gridEntry)
	}

	for _, entry := range removals {
		if entry.Valid() {
			if grid != nil {
				grid.Remove(entry.Entity())
			}
			e.World.Remove(entry.Entity())
		}
	}
}
