package components

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
)

type gridCell struct {
	cx, cy int32
}

type cellSpan struct {
	minX, maxX, minY, maxY int32
}

// SpatialGrid is a uniform-cell index over pad positions. It is
// rebuilt from scratch every tick: Clear, then one Insert per indexed
// pad. Entities destroyed between rebuilds are taken out with Remove
// so queries never serve a dead handle. Queries return candidates
// only; callers run the exact test.
//
// A circle straddling a cell boundary is inserted into every cell its
// bounding box touches and queries deduplicate, so any pair actually
// within range of each other always comes back as a candidate pair.
type SpatialGrid struct {
	cellSize float64
	cells    map[gridCell][]donburi.Entity
	spans    map[donburi.Entity]cellSpan

	seen  map[donburi.Entity]uint64 // query dedup stamps
	stamp uint64

	clears int
}

// gridCompactEvery controls how often Clear drops empty cells left
// behind as the active window moves downstream.
const gridCompactEvery = 600

var Grid = donburi.NewComponentType[SpatialGrid]()

// NewSpatialGrid builds an empty index. A non-positive cell size
// falls back to the configured default.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = config.Grid.CellSize
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[gridCell][]donburi.Entity, 256),
		spans:    make(map[donburi.Entity]cellSpan, 256),
		seen:     make(map[donburi.Entity]uint64, 256),
	}
}

func (g *SpatialGrid) cellAt(v float64) int32 {
	return int32(math.Floor(v / g.cellSize))
}

// Insert indexes a circle centered at (x, y) with radius r.
func (g *SpatialGrid) Insert(e donburi.Entity, x, y, r float64) {
	minX := g.cellAt(x - r)
	maxX := g.cellAt(x + r)
	minY := g.cellAt(y - r)
	maxY := g.cellAt(y + r)
	g.spans[e] = cellSpan{minX, maxX, minY, maxY}
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			k := gridCell{cx, cy}
			g.cells[k] = append(g.cells[k], e)
		}
	}
}

// Remove takes an entity out of every cell it was inserted into.
// Removing an entity that was never inserted is a no-op.
func (g *SpatialGrid) Remove(e donburi.Entity) {
	span, ok := g.spans[e]
	if !ok {
		return
	}
	delete(g.spans, e)
	for cy := span.minY; cy <= span.maxY; cy++ {
		for cx := span.minX; cx <= span.maxX; cx++ {
			k := gridCell{cx, cy}
			s := g.cells[k]
			for i, got := range s {
				if got == e {
					s[i] = s[len(s)-1]
					g.cells[k] = s[:len(s)-1]
					break
				}
			}
		}
	}
}

// QueryNearInto appends every entity indexed in the cells covered by
// the circle at (x, y) with radius r. Each entity appears once even
// when it spans several cells. The result is a superset of the exact
// in-range set.
func (g *SpatialGrid) QueryNearInto(buf []donburi.Entity, x, y, r float64) []donburi.Entity {
	g.stamp++
	minX := g.cellAt(x - r)
	maxX := g.cellAt(x + r)
	minY := g.cellAt(y - r)
	maxY := g.cellAt(y + r)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, e := range g.cells[gridCell{cx, cy}] {
				if g.seen[e] == g.stamp {
					continue
				}
				g.seen[e] = g.stamp
				buf = append(buf, e)
			}
		}
	}
	return buf
}

// QueryNear is QueryNearInto with a fresh buffer.
func (g *SpatialGrid) QueryNear(x, y, r float64) []donburi.Entity {
	return g.QueryNearInto(make([]donburi.Entity, 0, config.Grid.MaxResults), x, y, r)
}

// Clear empties the index while keeping cell capacity. Every
// gridCompactEvery clears it drops the cells outright instead, so the
// map does not grow with the length of the run.
func (g *SpatialGrid) Clear() {
	g.clears++
	clear(g.spans)
	if g.clears%gridCompactEvery == 0 {
		clear(g.cells)
		clear(g.seen)
		return
	}
	for k, s := range g.cells {
		g.cells[k] = s[:0]
	}
}

// Len reports how many entries are indexed, counting an entity once
// per cell it spans.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, s := range g.cells {
		n += len(s)
	}
	return n
}
