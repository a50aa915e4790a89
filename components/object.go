package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object of entities that live in the
// collision space: the frog, the banks and the prologue goal line.
// Pads and hazards are indexed by the spatial grid instead.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
