package components

import "github.com/yohamta/donburi"

// CollectibleKind identifies a pickup variant.
type CollectibleKind int

const (
	CollectTadpole CollectibleKind = iota
	CollectPot
	CollectVest
)

// CollectibleData is the state of one pickup.
type CollectibleData struct {
	Kind  CollectibleKind
	Phase float64 // bob animation phase

	// Pad the pickup sits on, if any. Validated with Valid() on
	// use; cleared by the pad cleanup pass.
	OnPad *donburi.Entry
}

var Collectible = donburi.NewComponentType[CollectibleData]()
