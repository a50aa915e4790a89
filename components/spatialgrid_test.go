package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func gridEntities(n int) []donburi.Entity {
	w := donburi.NewWorld()
	out := make([]donburi.Entity, n)
	for i := range out {
		out[i] = w.Create(Position)
	}
	return out
}

func containsEntity(s []donburi.Entity, e donburi.Entity) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

// TestGridQueryFindsNeighbors verifies that no in-range pair is ever
// missed, including circles sitting exactly on cell boundaries.
func TestGridQueryFindsNeighbors(t *testing.T) {
	tests := []struct {
		name string
		ax   float64
		ay   float64
		ar   float64
		qx   float64
		qy   float64
		qr   float64
		want bool
	}{
		{
			name: "same cell",
			ax:   10,
			ay:   10,
			ar:   12,
			qx:   30,
			qy:   30,
			qr:   12,
			want: true,
		},
		{
			name: "across cell boundary",
			ax:   60, // bbox spills into the x=64 column
			ay:   32,
			ar:   12,
			qx:   70,
			qy:   32,
			qr:   12,
			want: true,
		},
		{
			name: "exactly on cell boundary",
			ax:   64,
			ay:   64,
			ar:   10,
			qx:   50,
			qy:   50,
			qr:   10,
			want: true,
		},
		{
			name: "far apart",
			ax:   10,
			ay:   10,
			ar:   12,
			qx:   400,
			qy:   400,
			qr:   12,
			want: false,
		},
		{
			name: "negative coordinates",
			ax:   -30,
			ay:   -30,
			ar:   12,
			qx:   -44,
			qy:   -20,
			qr:   12,
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			es := gridEntities(1)
			g := NewSpatialGrid(64)
			g.Insert(es[0], tc.ax, tc.ay, tc.ar)

			got := g.QueryNear(tc.qx, tc.qy, tc.qr)
			if containsEntity(got, es[0]) != tc.want {
				t.Errorf("candidate = %v, want %v (got %d results)",
					!tc.want, tc.want, len(got))
			}
		})
	}
}

// TestGridQueryDeduplicates verifies an entity spanning several cells
// comes back exactly once.
func TestGridQueryDeduplicates(t *testing.T) {
	es := gridEntities(1)
	g := NewSpatialGrid(64)

	// Radius 100 at the origin covers a 4x4 block of cells.
	g.Insert(es[0], 0, 0, 100)

	got := g.QueryNear(0, 0, 200)
	count := 0
	for _, e := range got {
		if e == es[0] {
			count++
		}
	}
	if count != 1 {
		t.Errorf("entity returned %d times, want 1", count)
	}
}

// TestGridQueryInto verifies the caller-owned buffer is appended to
// and reusable across queries.
func TestGridQueryInto(t *testing.T) {
	es := gridEntities(3)
	g := NewSpatialGrid(64)
	g.Insert(es[0], 10, 10, 10)
	g.Insert(es[1], 30, 10, 10)
	g.Insert(es[2], 500, 500, 10)

	buf := make([]donburi.Entity, 0, 8)
	buf = g.QueryNearInto(buf, 20, 10, 20)
	if len(buf) != 2 {
		t.Fatalf("len = %d, want 2", len(buf))
	}

	buf = g.QueryNearInto(buf[:0], 500, 500, 20)
	if len(buf) != 1 || buf[0] != es[2] {
		t.Errorf("reused buffer query = %v, want just the far entity", buf)
	}
}

// TestGridClear verifies a cleared index returns nothing and accepts
// new inserts, across the periodic compaction boundary.
func TestGridClear(t *testing.T) {
	es := gridEntities(1)
	g := NewSpatialGrid(64)

	for i := 0; i < gridCompactEvery+5; i++ {
		g.Insert(es[0], 40, 40, 12)
		if got := g.QueryNear(40, 40, 12); !containsEntity(got, es[0]) {
			t.Fatalf("clear %d: entity missing after insert", i)
		}
		g.Clear()
		if got := g.QueryNear(40, 40, 12); len(got) != 0 {
			t.Fatalf("clear %d: %d stale results after Clear", i, len(got))
		}
	}
	if g.Len() != 0 {
		t.Errorf("Len = %d after final Clear, want 0", g.Len())
	}
}

// TestGridRemove verifies a removed entity disappears from every cell
// it spanned while its neighbors stay indexed, and that removing an
// unknown entity is a no-op.
func TestGridRemove(t *testing.T) {
	es := gridEntities(3)
	g := NewSpatialGrid(64)
	g.Insert(es[0], 0, 0, 100) // spans a block of cells
	g.Insert(es[1], 30, 30, 10)

	g.Remove(es[0])
	got := g.QueryNear(0, 0, 200)
	if containsEntity(got, es[0]) {
		t.Fatal("removed entity still returned")
	}
	if !containsEntity(got, es[1]) {
		t.Fatal("neighbor lost by removal")
	}

	// Never inserted; must not panic or disturb the index.
	g.Remove(es[2])
	if got := g.QueryNear(30, 30, 10); !containsEntity(got, es[1]) {
		t.Error("no-op removal disturbed the index")
	}

	g.Remove(es[1])
	if g.Len() != 0 {
		t.Errorf("Len = %d after removing everything, want 0", g.Len())
	}
}

// TestGridPairSweep slides one circle past another and checks the
// candidate set is always a superset of the exact in-range set.
func TestGridPairSweep(t *testing.T) {
	const r = 26.0
	es := gridEntities(2)

	for d := 0.0; d < 300; d += 7 {
		g := NewSpatialGrid(64)
		g.Insert(es[0], 100, 100, r)
		g.Insert(es[1], 100+d, 100, r)

		inRange := d <= 2*r
		got := g.QueryNear(100, 100, r)
		if inRange && !containsEntity(got, es[1]) {
			t.Fatalf("d=%v: in-range pair missing from candidates", d)
		}
	}
}
