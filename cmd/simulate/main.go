// Command simulate plays headless autopilot runs and reports how far
// they got. One process, no window, no audio; the same gameplay
// systems the interactive scene runs, stepped as fast as they will
// go. Used to compare course balance across config changes.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/telemetry"
)

func main() {
	runs := flag.Int("runs", 10, "number of runs")
	seed := flag.Int64("seed", 1, "base course seed; run i uses seed+i")
	maxFrames := flag.Int("max-frames", 36000, "frame cap per run")
	difficulty := flag.Int("difficulty", int(cfg.BotDifficultyNormal), "autopilot difficulty 0-2")
	out := flag.String("telemetry", "", "CSV output path, empty for none")
	flag.Parse()

	diff := cfg.BotDifficulty(*difficulty)
	if _, ok := cfg.Bot.Difficulties[diff]; !ok {
		log.Fatalf("unknown difficulty %d", *difficulty)
	}

	recorder, err := telemetry.NewRecorder(*out)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer recorder.Close()

	records := make([]telemetry.RunRecord, 0, *runs)
	for i := 0; i < *runs; i++ {
		runSeed := *seed + int64(i)
		rec := simulate(runSeed, *maxFrames, diff)
		rec.Run = i
		if err := recorder.Write(rec); err != nil {
			log.Fatalf("telemetry: %v", err)
		}
		records = append(records, rec)
		log.Printf("run %d seed %d: %.1fm score %d in %d frames",
			i, runSeed, rec.DistanceM, rec.Score, rec.Frames)
	}

	log.Println(telemetry.Summarize(records))
}

// simulate plays one run to the end of the frog or the frame cap.
func simulate(seed int64, maxFrames int, difficulty cfg.BotDifficulty) telemetry.RunRecord {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.AdvanceInputFrame)
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdateScheduler)
	e.AddSystem(systems.UpdateWeather)
	e.AddSystem(systems.UpdatePads)
	e.AddSystem(systems.UpdateSpatialIndex)
	e.AddSystem(systems.UpdatePadContacts)
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateFrog)
	e.AddSystem(systems.UpdateOutcomes)
	e.AddSystem(systems.UpdatePebbles)
	e.AddSystem(systems.UpdateCollectibles)
	e.AddSystem(systems.UpdateCourse)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateRun)

	courseEntry := factory.CreateCourseAtIndex(e, 0, seed)
	course := components.Course.Get(courseEntry)

	factory.CreateGrid(e)
	frog := factory.CreateFrog(e, course.SpawnX, course.SpawnY)
	factory.AttachToStartPad(e, frog)
	factory.CreatePebbleArena(e)

	systems.WireServices(e, nil, systems.ToolResolver{})

	botEntry := e.World.Entry(e.World.Create(components.Bot))
	components.Bot.SetValue(botEntry, components.BotData{
		Difficulty: difficulty,
		Rand:       rand.New(rand.NewSource(seed)),
	})

	frames := 0
	var run *components.RunData
	for frames < maxFrames {
		e.Update()
		frames++
		if runEntry, ok := components.Run.First(e.World); ok {
			run = components.Run.Get(runEntry)
			if run.Over {
				break
			}
		}
	}

	bot := components.Bot.Get(botEntry)
	rec := telemetry.RunRecord{
		Seed:   seed,
		Frames: frames,
		Jumps:  bot.Decisions,
		Throws: bot.Throws,
	}
	if run != nil {
		rec.DistanceM = run.Distance / cfg.Score.DistanceDiv
		rec.Score = run.Score
		rec.Pads = run.Pads
		rec.Tadpoles = run.Tadpoles
		rec.Hazards = run.Hazards
	}
	return rec
}
