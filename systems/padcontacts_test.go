package systems

import (
	"math"
	"testing"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/systems/factory"
)

// TestPadSeparationMassSplit overlaps a light pad with a heavy one
// and checks one resolution pass separates them fully, split by mass
// share: at 1:3 the light pad takes three quarters of the correction.
func TestPadSeparationMassSplit(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	a := factory.CreatePad(e, 240, 600, cfg.PadNormal)
	b := factory.CreatePad(e, 240, 640, cfg.PadNormal)
	components.Pad.Get(a).Mass = 1
	components.Pad.Get(b).Mass = 3
	UpdateSpatialIndex(e)

	UpdatePadContacts(e)

	ay := components.Position.Get(a).Y
	by := components.Position.Get(b).Y

	// Radii 26+26 plus the contact margin; the pads started 40
	// apart, so the pass owes the difference in correction.
	depth := 52 + cfg.Pad.ContactMargin - 40
	if math.Abs(ay-(600-depth*0.75)) > 1e-9 {
		t.Fatalf("light pad at y=%.4f, want %.4f", ay, 600-depth*0.75)
	}
	if math.Abs(by-(640+depth*0.25)) > 1e-9 {
		t.Fatalf("heavy pad at y=%.4f, want %.4f", by, 640+depth*0.25)
	}
	if got := by - ay; got < 52-1e-9 {
		t.Fatalf("pads %.4f apart after the pass, want at least touching", got)
	}
}

// TestPadContactImpulse drives a pad into a resting one and checks
// the lossy bounce slows the striker and sends the struck pad off.
func TestPadContactImpulse(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	a := factory.CreatePad(e, 240, 600, cfg.PadNormal)
	b := factory.CreatePad(e, 240, 640, cfg.PadNormal)
	padA := components.Pad.Get(a)
	padB := components.Pad.Get(b)
	padA.Vel.Y = 2 // closing on b
	UpdateSpatialIndex(e)

	UpdatePadContacts(e)

	if padA.Vel.Y >= 2 {
		t.Fatalf("striker kept velocity %.2f, want slowed", padA.Vel.Y)
	}
	if padB.Vel.Y <= 0 {
		t.Fatalf("struck pad velocity %.2f, want pushed downstream", padB.Vel.Y)
	}
	if rel := padB.Vel.Y - padA.Vel.Y; rel < 0 {
		t.Fatalf("pads still approaching at %.2f after the bounce", rel)
	}
}

// TestSeparatedPadsUntouched leaves a clear pair alone.
func TestSeparatedPadsUntouched(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	a := factory.CreatePad(e, 240, 600, cfg.PadNormal)
	b := factory.CreatePad(e, 240, 660, cfg.PadNormal)
	UpdateSpatialIndex(e)

	UpdatePadContacts(e)

	if components.Position.Get(a).Y != 600 || components.Position.Get(b).Y != 660 {
		t.Fatal("separated pads moved")
	}
}

// TestFrozenPadsSkipContacts overlaps two pads beyond the far ring
// and checks the contact pass leaves them alone.
func TestFrozenPadsSkipContacts(t *testing.T) {
	e := newTestECS()
	factory.CreateGrid(e)
	factory.CreateFrog(e, 240, 600)
	a := factory.CreatePad(e, 240, 1400, cfg.PadNormal)
	b := factory.CreatePad(e, 240, 1440, cfg.PadNormal)
	UpdateScheduler(e) // both pads land beyond the far ring
	UpdateSpatialIndex(e)

	UpdatePadContacts(e)

	if components.Position.Get(a).Y != 1400 || components.Position.Get(b).Y != 1440 {
		t.Fatal("frozen pads resolved a contact")
	}
}
