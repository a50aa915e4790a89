package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds an active scale tween sequence for the entity.
var Tween = donburi.NewComponentType[gween.Sequence]()
