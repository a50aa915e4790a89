package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton resolv space holding the solid geometry.
var Space = donburi.NewComponentType[resolv.Space]()
