package components

import "github.com/yohamta/donburi"

// RunData stores the state of the current run.
// This is a singleton component - only one run exists at a time.
type RunData struct {
	Score     int
	Pads      int     // distinct pads landed on
	Tadpoles  int
	Hazards   int     // hazards destroyed
	Distance  float64 // deepest downstream travel in world units
	Frame     int     // run length in ticks
	Over      bool
	NewBest   bool
	BestScore int // best score loaded from disk, updated on game over
}

var Run = donburi.NewComponentType[RunData]()

// AddPadLanding scores a landing on a pad not visited before.
func (r *RunData) AddPadLanding(points int) {
	r.Pads++
	r.Score += points
}

// AddTadpole scores a tadpole pickup.
func (r *RunData) AddTadpole(points int) {
	r.Tadpoles++
	r.Score += points
}

// AddHazardKill scores a destroyed hazard.
func (r *RunData) AddHazardKill(points int) {
	r.Hazards++
	r.Score += points
}

// UpdateDistance folds new downstream progress into the score.
// perPoint is the world distance worth one point.
func (r *RunData) UpdateDistance(furthest, perPoint float64) {
	if furthest <= r.Distance {
		return
	}
	if perPoint > 0 {
		r.Score += int(furthest/perPoint) - int(r.Distance/perPoint)
	}
	r.Distance = furthest
}
