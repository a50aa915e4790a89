package components

import (
	"math/rand"

	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
)

// BotData puts the frog on autopilot. Only headless simulation runs
// create it; interactive scenes never do, so the system is inert there.
type BotData struct {
	Difficulty cfg.BotDifficulty
	Cooldown   int // frames until the next decision
	Rand       *rand.Rand

	Decisions int // jumps aimed, for run reports
	Throws    int
}

var Bot = donburi.NewComponentType[BotData]()
