package tags

import "github.com/yohamta/donburi"

var (
	Frog        = donburi.NewTag().SetName("Frog")
	Pad         = donburi.NewTag().SetName("Pad")
	Hazard      = donburi.NewTag().SetName("Hazard")
	Pebble      = donburi.NewTag().SetName("Pebble")
	Collectible = donburi.NewTag().SetName("Collectible")
	Ripple      = donburi.NewTag().SetName("Ripple")
	Bank        = donburi.NewTag().SetName("Bank")
)

// Resolv tags for physics collision
const (
	ResolvBank = "bank"
	ResolvFrog = "Frog"
	ResolvGoal = "goal"
)
