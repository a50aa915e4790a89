package components

import "github.com/yohamta/donburi"

// RingID is the distance band an entity was last assigned to.
type RingID int

const (
	RingNear RingID = iota
	RingMedium
	RingFar
	RingFrozen
)

func (r RingID) String() string {
	switch r {
	case RingNear:
		return "near"
	case RingMedium:
		return "medium"
	case RingFar:
		return "far"
	case RingFrozen:
		return "frozen"
	}
	return "unknown"
}

// LODData holds the scheduling state of one entity. LastProcessed is
// the tick of its last update, so an entity skipped for several ticks
// advances by the real elapsed tick count when its turn comes.
type LODData struct {
	Ring          RingID
	LastProcessed int
}

var LOD = donburi.NewComponentType[LODData]()
