package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/fonts"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10.0

// DrawHUD renders the run state along the top edge: hearts and buff
// charges on the left, score and distance on the right, and the drag
// indicator while the player is pulling a jump.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	frogEntry, ok := components.Frog.First(e.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	w := float64(screen.Bounds().Dx())

	// Backing bar so the HUD reads over any water color
	vector.DrawFilledRect(screen, 0, 0, float32(w), 44, cfg.UI.HUDBarColor, false)

	drawHearts(screen, frog)
	drawCharges(screen, frog)
	drawScore(e, screen, w)
	drawDragIndicator(e, screen)
}

func drawHearts(screen *ebiten.Image, frog *components.FrogData) {
	size := cfg.UI.HeartSize
	for i := 0; i < cfg.Frog.Health; i++ {
		x := hudMargin + float64(i)*(size+cfg.UI.HeartMargin)
		clr := cfg.HeartRed
		if i >= frog.Health {
			clr = fade(cfg.HeartRed, 0.25)
		}
		// Two lobes and a point
		r := float32(size * 0.3)
		cx := float32(x + size/2)
		cy := float32(hudMargin + size*0.35)
		vector.DrawFilledCircle(screen, cx-r*0.8, cy, r, clr, true)
		vector.DrawFilledCircle(screen, cx+r*0.8, cy, r, clr, true)
		vector.DrawFilledRect(screen, cx-r*1.4, cy, r*2.8, r*1.6, clr, false)
	}
}

func drawCharges(screen *ebiten.Image, frog *components.FrogData) {
	size := float32(cfg.UI.ChargeSize)
	y := float32(hudMargin + cfg.UI.HeartSize + 10)

	// Float charges (tadpoles banked)
	for i := 0; i < frog.FloatCharges; i++ {
		x := float32(hudMargin) + float32(i)*(size+4)
		vector.DrawFilledCircle(screen, x+size/2, y, size/2, cfg.DragonBlue, true)
	}
	// Chop charges
	for i := 0; i < frog.ChopCharges; i++ {
		x := float32(hudMargin) + float32(frog.FloatCharges)*(size+4) + 8 + float32(i)*(size+4)
		vector.DrawFilledRect(screen, x, y-size/2, size, size, cfg.LaunchGold, false)
	}
	if frog.HasVest {
		x := float32(hudMargin) + float32(frog.FloatCharges+frog.ChopCharges)*(size+4) + 16
		vector.StrokeCircle(screen, x+size/2, y, size/2+1, 2, cfg.ShieldCyan, true)
	}
}

func drawScore(e *ecs.ECS, screen *ebiten.Image, w float64) {
	runEntry, ok := components.Run.First(e.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)

	face := fonts.HUD.Get()
	score := fmt.Sprintf("%d", run.Score)
	text.Draw(screen, score, face, int(w)-10-len(score)*9, 24, cfg.UI.HUDTextColor)

	small := fonts.HUDSmall.Get()
	dist := fmt.Sprintf("%dm", int(run.Distance/cfg.Score.DistanceDiv))
	text.Draw(screen, dist, small, int(w)-10-len(dist)*7, 38, cfg.UI.HUDTextColor)
}

// drawDragIndicator shows the live jump vector while a drag is held:
// a line from the frog along the aim with a ring at the clamped range.
func drawDragIndicator(e *ecs.ECS, screen *ebiten.Image) {
	input := getOrCreateInput(e)
	if !input.Dragging {
		return
	}

	dx := input.DragPos.X - input.DragStart.X
	dy := input.DragPos.Y - input.DragStart.Y
	length := math.Hypot(dx, dy)
	if length < cfg.Input.DragMin {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	frogEntry, ok := components.Frog.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(frogEntry)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	fx := float32(pos.X + float64(w)/2 - camera.Position.X)
	fy := float32(pos.Y + float64(h)/2 - camera.Position.Y)

	ratio := (length - cfg.Input.DragMin) / (cfg.Input.DragMax - cfg.Input.DragMin)
	if ratio > 1 {
		ratio = 1
	}
	jump := cfg.Frog.MinJumpRange + ratio*(cfg.Frog.MaxJumpRange-cfg.Frog.MinJumpRange)

	ex := fx + float32(dx/length*jump)
	ey := fy + float32(dy/length*jump)
	clr := fade(cfg.White, 0.6)
	vector.StrokeLine(screen, fx, fy, ex, ey, 2, clr, true)
	vector.StrokeCircle(screen, ex, ey, 8, 2, clr, true)
}
