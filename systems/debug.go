package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/fonts"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Overlay visibility lives at package level so it survives scene
// changes; a restart mid-investigation keeps the overlay up.
var (
	overlayOn     bool
	overlaySeeded bool
)

// Ring marker colors, near to frozen.
var ringColors = [4]color.RGBA{
	{240, 240, 240, 255},
	{250, 210, 80, 255},
	{250, 140, 60, 255},
	{200, 60, 60, 255},
}

// UpdateDebug toggles the diagnostic overlay. It runs outside the
// gameplay gate so the overlay can be flipped while paused.
func UpdateDebug(e *ecs.ECS) {
	if !overlaySeeded {
		overlaySeeded = true
		overlayOn = cfg.Debug.ShowOverlay
	}

	input := getOrCreateInput(e)
	if input.GetAction(cfg.ActionOverlay).JustPressed {
		overlayOn = !overlayOn
	}
}

// DrawDebug renders collision outlines, ring assignments and scheduler
// counters when the overlay is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !overlayOn {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox := float64(w)/2 - camera.Position.X
	oy := float64(h)/2 - camera.Position.Y

	drawSpaceOutlines(e, screen, ox, oy, float64(w), float64(h), camera)
	drawRingMarkers(e, screen, ox, oy, float64(h), camera)
	drawDebugStats(e, screen)
}

// drawSpaceOutlines traces every resolv object near the view. Banks
// grey, the goal band gold, the frog green.
func drawSpaceOutlines(e *ecs.ECS, screen *ebiten.Image, ox, oy, w, h float64, camera *components.CameraData) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewX := camera.Position.X - w/2
	viewY := camera.Position.Y - h/2

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+w || obj.Y+obj.H < viewY || obj.Y > viewY+h {
			continue
		}

		x := obj.X + ox
		y := obj.Y + oy

		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvBank):
			c = color.RGBA{130, 130, 130, 255}
		case obj.HasTags(tags.ResolvGoal):
			c = color.RGBA{235, 195, 90, 255}
		case obj.HasTags(tags.ResolvFrog):
			c = color.RGBA{90, 220, 90, 255}
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.DrawFilledRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}

// drawRingMarkers puts a small square above each scheduled entity,
// colored by its current ring.
func drawRingMarkers(e *ecs.ECS, screen *ebiten.Image, ox, oy, h float64, camera *components.CameraData) {
	minY := camera.Position.Y - h/2 - cullPadding
	maxY := camera.Position.Y + h/2 + cullPadding

	components.LOD.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		lod := components.LOD.Get(entry)
		c := ringColors[int(lod.Ring)%len(ringColors)]
		vector.DrawFilledRect(screen, float32(pos.X+ox-3), float32(pos.Y+oy-3), 6, 6, c, false)
	})
}

func drawDebugStats(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUDSmall.Get()
	h := screen.Bounds().Dy()

	lines := make([]string, 0, 8)

	if schedEntry, ok := components.Scheduler.First(e.World); ok {
		sched := components.Scheduler.Get(schedEntry)
		var rings [4]int
		total := 0
		components.LOD.Each(e.World, func(entry *donburi.Entry) {
			rings[int(components.LOD.Get(entry).Ring)%4]++
			total++
		})
		lines = append(lines,
			fmt.Sprintf("frame %d  recomputes %d", sched.Frame, sched.Recomputes),
			fmt.Sprintf("rings n/m/f/z %d/%d/%d/%d of %d", rings[0], rings[1], rings[2], rings[3], total))
	}

	if gridEntry, ok := components.Grid.First(e.World); ok {
		grid := components.Grid.Get(gridEntry)
		lines = append(lines, fmt.Sprintf("grid entries %d", grid.Len()))
	}

	if weatherEntry, ok := components.Weather.First(e.World); ok {
		weather := components.Weather.Get(weatherEntry)
		lines = append(lines, fmt.Sprintf("weather %s  timer %d", weather.Phase, weather.Timer))
	}

	if arenaEntry, ok := components.PebbleArena.First(e.World); ok {
		arena := components.PebbleArena.Get(arenaEntry)
		lines = append(lines, fmt.Sprintf("pebbles free %d", arena.FreeCount()))
	}

	if frogEntry, ok := tags.Frog.First(e.World); ok {
		frog := components.Frog.Get(frogEntry)
		pos := components.Position.Get(frogEntry)
		lines = append(lines,
			fmt.Sprintf("frog %s  %.0f,%.0f", frog.State, pos.X, pos.Y))
	}

	// Bottom-left block, above the screen edge.
	y := h - 14*len(lines) - 8
	bg := color.RGBA{0, 0, 0, 150}
	vector.DrawFilledRect(screen, 0, float32(y-12), 230, float32(14*len(lines)+16), bg, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 6, y+i*14, color.White)
	}
}
