package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PebbleData is one thrown pebble. Pebble entities are created once
// at scene start and cycled through the arena rather than created and
// destroyed per throw.
type PebbleData struct {
	Active bool
	Slot   int
	Vel    dmath.Vec2
	Age    int
}

var Pebble = donburi.NewComponentType[PebbleData]()

// PebbleArenaData owns the fixed pool of pebble entities and the free
// list of slots available for the next throw.
type PebbleArenaData struct {
	slots []*donburi.Entry
	free  []int
}

var PebbleArena = donburi.NewComponentType[PebbleArenaData]()

// InitArena registers the preallocated pebble entries. Lower slots
// are handed out first.
func (a *PebbleArenaData) InitArena(slots []*donburi.Entry) {
	a.slots = slots
	a.free = make([]int, 0, len(slots))
	for i := len(slots) - 1; i >= 0; i-- {
		a.free = append(a.free, i)
	}
}

// Acquire pops a free pebble and marks it active. ok is false when
// the pool is exhausted; callers treat that as no throw this frame.
func (a *PebbleArenaData) Acquire() (e *donburi.Entry, ok bool) {
	for len(a.free) > 0 {
		i := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		if !a.slots[i].Valid() {
			continue
		}
		pb := Pebble.Get(a.slots[i])
		pb.Active = true
		pb.Age = 0
		return a.slots[i], true
	}
	return nil, false
}

// Release returns a pebble to the pool. Releasing an inactive pebble
// is a no-op so a double release cannot duplicate a slot.
func (a *PebbleArenaData) Release(e *donburi.Entry) {
	pb := Pebble.Get(e)
	if !pb.Active {
		return
	}
	pb.Active = false
	pb.Age = 0
	a.free = append(a.free, pb.Slot)
}

// FreeCount reports how many pebbles are available right now.
func (a *PebbleArenaData) FreeCount() int {
	return len(a.free)
}
