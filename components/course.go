package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// CourseData is the singleton tracking course generation. A run opens
// on an authored prologue loaded from a map file; once the frog
// crosses the prologue goal the procedural generator takes over.
type CourseData struct {
	Rand *rand.Rand

	Name     string  // prologue map name
	Authored bool    // still inside the authored section
	GoalY    float64 // downstream edge of the authored section
	SpawnX   float64 // frog start, from the map
	SpawnY   float64

	NextRowY float64 // downstream position of the next generated row
	Rows     int     // rows generated so far
}

var Course = donburi.NewComponentType[CourseData]()
