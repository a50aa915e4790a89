package factory

import (
	"math"
	"math/rand"
	"time"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/assets"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCourse(ecs *ecs.ECS) *donburi.Entry {
	return CreateCourseAtIndex(ecs, 0, 0)
}

// CreateCourseAtIndex loads the authored prologue, spawns its
// contents and returns the course singleton. A zero seed picks a
// random one; simulation runs pass a fixed seed for replayable
// courses.
func CreateCourseAtIndex(ecs *ecs.ECS, courseIndex int, seed int64) *donburi.Entry {
	loader := assets.NewCourseLoader()
	courses := loader.MustLoadCourses()

	if courseIndex < 0 || courseIndex >= len(courses) {
		courseIndex = 0
	}
	c := courses[courseIndex]

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	course := ecs.World.Entry(ecs.World.Create(components.Course))
	components.Course.SetValue(course, components.CourseData{
		Rand:     rng,
		Name:     c.Name,
		Authored: true,
		GoalY:    c.GoalY,
		SpawnX:   c.FrogSpawn.X,
		SpawnY:   c.FrogSpawn.Y,
		NextRowY: c.GoalY + cfg.Course.RowSpacing,
	})

	// The collision space and its banks cover the prologue plus a
	// spawn window. Deeper positions clamp into the space's bottom
	// cell row, which keeps column overlap exact, so bank contact
	// stays correct however far the run goes.
	bankH := float64(c.Height) + cfg.Course.SpawnAhead*2
	CreateSpace(ecs, c.Width, int(bankH), 16, 16)
	CreateBank(ecs, 0, 0, cfg.Course.BankWidth, bankH)
	CreateBank(ecs, float64(c.Width)-cfg.Course.BankWidth, 0, cfg.Course.BankWidth, bankH)
	CreateGoalLine(ecs, c.GoalY)

	pads := make([]*donburi.Entry, 0, len(c.Pads))
	for _, p := range c.Pads {
		pad := CreatePad(ecs, p.X, p.Y, p.Kind)
		data := components.Pad.Get(pad)
		switch p.Kind {
		case cfg.PadPulsing:
			data.PulsePhase = rng.Float64() * 2 * math.Pi
		case cfg.PadMoving, cfg.PadWaterLily:
			if rng.Intn(2) == 0 {
				data.PatrolDir = -1
			}
		}
		pads = append(pads, pad)
	}

	for _, h := range c.Hazards {
		if h.Anchored {
			if pad, ok := nearestPad(pads, h.X, h.Y, 48); ok {
				// Refused when the pad already carries the kind; the
				// hazard then spawns free at its authored spot.
				if hz := CreatePadHazard(ecs, pad, h.Kind); hz != nil {
					components.Hazard.Get(hz).Dir = h.Dir
					continue
				}
			}
		}
		CreateHazard(ecs, h.X, h.Y, h.Kind, h.Dir)
	}

	for _, cs := range c.Collectibles {
		kind, ok := collectibleKind(cs.Kind)
		if !ok {
			continue
		}
		pad, _ := nearestPad(pads, cs.X, cs.Y, 40)
		CreateCollectible(ecs, cs.X, cs.Y, kind, pad)
	}

	return course
}

func collectibleKind(name string) (components.CollectibleKind, bool) {
	switch name {
	case "tadpole":
		return components.CollectTadpole, true
	case "pot":
		return components.CollectPot, true
	case "vest":
		return components.CollectVest, true
	}
	return 0, false
}

func nearestPad(pads []*donburi.Entry, x, y, maxDist float64) (*donburi.Entry, bool) {
	var best *donburi.Entry
	bestD := maxDist * maxDist
	for _, pad := range pads {
		pos := components.Position.Get(pad)
		dx, dy := pos.X-x, pos.Y-y
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = pad
		}
	}
	return best, best != nil
}
