package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/mathutil"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Vertical culling only: the river fills the screen width, so nothing
// ever leaves the view sideways.
const cullPadding = 64.0

// DrawWorld renders the river and everything on it, back to front:
// water, banks, ripples, pads, hazards, pickups, pebbles, frog,
// debris, weather. All art is procedural vector shapes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	ox := float64(w)/2 - camera.Position.X
	oy := float64(h)/2 - camera.Position.Y
	minY := camera.Position.Y - float64(h)/2 - cullPadding
	maxY := camera.Position.Y + float64(h)/2 + cullPadding

	screen.Fill(cfg.RiverBlue)
	drawBanks(screen, ox, float64(h))
	drawRipples(e, screen, ox, oy, minY, maxY)
	drawPads(e, screen, ox, oy, minY, maxY)
	drawHazards(e, screen, ox, oy, minY, maxY)
	drawCollectibles(e, screen, ox, oy, minY, maxY)
	drawPebbles(e, screen, ox, oy)
	drawFrog(e, screen, ox, oy)
	drawChopBursts(e, screen, ox, oy, minY, maxY)
	drawWeather(e, screen, w, h)
}

func drawBanks(screen *ebiten.Image, ox, screenH float64) {
	bw := float32(cfg.Course.BankWidth)
	vector.DrawFilledRect(screen, float32(ox), 0, bw, float32(screenH), cfg.BankGreen, false)
	rightX := ox + float64(cfg.C.Width) - cfg.Course.BankWidth
	vector.DrawFilledRect(screen, float32(rightX), 0, bw, float32(screenH), cfg.BankGreen, false)
}

func drawRipples(e *ecs.ECS, screen *ebiten.Image, ox, oy, minY, maxY float64) {
	components.Ripple.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		r := components.Ripple.Get(entry)
		t := float64(r.Age) / float64(r.Life)
		if t > 1 {
			t = 1
		}

		// Trailing rings expand behind the leading one, packed
		// tighter the higher the ripple frequency.
		freq := r.Freq
		if freq <= 0 {
			freq = 1
		}
		grow := cfg.RippleTween[0]
		for i := 0; i < cfg.Ripple.MaxRings; i++ {
			rt := t - float64(i)*0.15/freq
			if rt <= 0 {
				continue
			}
			alpha := cfg.Ripple.BaseAlpha * (1 - rt)
			if alpha <= 0 {
				continue
			}
			clr := fade(cfg.White, alpha)
			radius := r.MaxRadius * mathutil.Lerp(float64(grow.From), float64(grow.To), rt)
			vector.StrokeCircle(screen,
				float32(pos.X+ox), float32(pos.Y+oy),
				float32(radius), 1.5, clr, true)
		}
	})
}

func drawPads(e *ecs.ECS, screen *ebiten.Image, ox, oy, minY, maxY float64) {
	tags.Pad.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		pad := components.Pad.Get(entry)
		if pad.BeingDestroyed {
			return
		}

		t := cfg.Pad.Types[pad.Kind]
		body := t.Color
		if pad.Kind == cfg.PadPulsing && pad.Scale < cfg.Pad.PulseSafeScale {
			// Submerged past the safe scale: shown sinking
			body = fade(body, 0.55)
		}

		cx := float32(pos.X + ox)
		cy := float32(pos.Y + oy)
		radius := float32(pad.EffectiveRadius())

		vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
		vector.StrokeCircle(screen, cx, cy, radius, 2, darken(t.Color, 0.65), true)

		switch pad.Kind {
		case cfg.PadCarrier:
			// Raft planks
			plank := darken(t.Color, 0.75)
			vector.StrokeLine(screen, cx-radius*0.7, cy-radius*0.3, cx+radius*0.7, cy-radius*0.3, 2, plank, true)
			vector.StrokeLine(screen, cx-radius*0.7, cy+radius*0.3, cx+radius*0.7, cy+radius*0.3, 2, plank, true)
		case cfg.PadLaunch:
			vector.DrawFilledCircle(screen, cx, cy, radius*0.3, cfg.White, true)
		case cfg.PadWarp:
			vector.StrokeCircle(screen, cx, cy, radius*0.55, 2, cfg.White, true)
			vector.StrokeCircle(screen, cx, cy, radius*0.25, 1, cfg.White, true)
		case cfg.PadIce:
			vector.DrawFilledCircle(screen, cx-radius*0.2, cy-radius*0.2, radius*0.35, cfg.White, true)
		}
	})
}

func drawHazards(e *ecs.ECS, screen *ebiten.Image, ox, oy, minY, maxY float64) {
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		h := components.Hazard.Get(entry)
		if h.BeingDestroyed {
			return
		}
		t := h.Type()

		cx := float32(pos.X + ox)
		cy := float32(pos.Y + oy)

		switch h.Kind {
		case cfg.HazardSnake, cfg.HazardLog:
			hw := float32(t.SpriteW / 2)
			hh := float32(t.SpriteH / 2)
			vector.DrawFilledRect(screen, cx-hw, cy-hh, hw*2, hh*2, t.Color, false)
			vector.StrokeRect(screen, cx-hw, cy-hh, hw*2, hh*2, 1.5, darken(t.Color, 0.6), false)
			if h.Kind == cfg.HazardSnake {
				// Head at the leading edge
				headX := cx + float32(h.Dir)*hw
				vector.DrawFilledCircle(screen, headX, cy, hh*1.1, darken(t.Color, 0.8), true)
			}

		case cfg.HazardDragonfly:
			r := float32(t.Diameter / 2)
			wing := fade(t.Color, 0.45)
			vector.DrawFilledCircle(screen, cx-r*0.9, cy, r*0.6, wing, true)
			vector.DrawFilledCircle(screen, cx+r*0.9, cy, r*0.6, wing, true)
			vector.DrawFilledCircle(screen, cx, cy, r*0.55, t.Color, true)

		case cfg.HazardPike:
			// Swims just under the surface
			hw := float32(t.SpriteW / 2)
			hh := float32(t.SpriteH / 2)
			body := fade(t.Color, 0.8)
			vector.DrawFilledRect(screen, cx-hw, cy-hh, hw*2, hh*2, body, false)
			eyeX := cx + float32(sign(h.Vel.X))*hw*0.7
			vector.DrawFilledCircle(screen, eyeX, cy, 2, cfg.Black, true)

		case cfg.HazardThornbush, cfg.HazardBramble:
			r := float32(t.Diameter / 2)
			vector.DrawFilledCircle(screen, cx, cy, r*0.8, t.Color, true)
			for i := 0; i < 6; i++ {
				ang := float64(i)*math.Pi/3 + 0.3
				sx := cx + float32(math.Cos(ang))*r*0.5
				sy := cy + float32(math.Sin(ang))*r*0.5
				ex := cx + float32(math.Cos(ang))*r*1.25
				ey := cy + float32(math.Sin(ang))*r*1.25
				vector.StrokeLine(screen, sx, sy, ex, ey, 1.5, darken(t.Color, 0.7), true)
			}
		}
	})
}

func drawCollectibles(e *ecs.ECS, screen *ebiten.Image, ox, oy, minY, maxY float64) {
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		c := components.Collectible.Get(entry)
		bob := math.Sin(c.Phase) * 3

		cx := float32(pos.X + ox)
		cy := float32(pos.Y + oy + bob)

		switch c.Kind {
		case components.CollectTadpole:
			vector.DrawFilledCircle(screen, cx, cy, 4.5, cfg.Black, true)
			vector.StrokeLine(screen, cx, cy+3, cx-4, cy+9, 2, cfg.Black, true)
		case components.CollectPot:
			vector.DrawFilledRect(screen, cx-5, cy-5, 10, 10, cfg.LaunchGold, false)
			vector.StrokeRect(screen, cx-5, cy-5, 10, 10, 1, darken(cfg.LaunchGold, 0.6), false)
		case components.CollectVest:
			vector.DrawFilledCircle(screen, cx, cy, 5.5, cfg.ShieldCyan, true)
			vector.StrokeCircle(screen, cx, cy, 5.5, 1.5, cfg.White, true)
		}
	})
}

func drawPebbles(e *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	tags.Pebble.Each(e.World, func(entry *donburi.Entry) {
		pb := components.Pebble.Get(entry)
		if !pb.Active {
			return
		}
		pos := components.Position.Get(entry)
		vector.DrawFilledCircle(screen,
			float32(pos.X+ox), float32(pos.Y+oy),
			float32(cfg.Pebble.Radius), cfg.White, true)
	})
}

func drawFrog(e *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	frogEntry, ok := tags.Frog.First(e.World)
	if !ok {
		return
	}
	frog := components.Frog.Get(frogEntry)
	pos := components.Position.Get(frogEntry)

	// Shadow on the water under an airborne frog
	if frog.State == cfg.StateJumping && frog.HopZ > 0 {
		shade := 1 - frog.HopZ/80
		if shade < 0.3 {
			shade = 0.3
		}
		shadow := color.RGBA{A: uint8(90 * shade)}
		vector.DrawFilledCircle(screen,
			float32(pos.X+ox), float32(pos.Y+oy),
			float32(cfg.Frog.Radius*0.8*shade), shadow, true)
	}

	cx := float32(pos.X + ox)
	cy := float32(pos.Y - frog.HopZ + oy)
	radius := float32(cfg.Frog.Radius * frog.Scale)

	body := cfg.FrogGreen
	flash := components.Flash.Get(frogEntry)
	if flash.Duration > 0 {
		body = color.RGBA{
			R: uint8(flash.R * 255),
			G: uint8(flash.G * 255),
			B: uint8(flash.B * 255),
			A: 255,
		}
	}
	// Blink through the invulnerability window
	if frog.InvulnTimer > 0 && frog.InvulnTimer%6 < 3 {
		body = fade(body, 0.55)
	}

	vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
	vector.StrokeCircle(screen, cx, cy, radius, 2, darken(cfg.FrogGreen, 0.6), true)
	if frog.HasVest {
		vector.StrokeCircle(screen, cx, cy, radius+3, 2, cfg.ShieldCyan, true)
	}

	// Eyes look downstream
	eyeY := cy + radius*0.45
	for _, dx := range [2]float32{-0.4, 0.4} {
		ex := cx + dx*radius
		vector.DrawFilledCircle(screen, ex, eyeY, radius*0.28, cfg.White, true)
		vector.DrawFilledCircle(screen, ex, eyeY+radius*0.08, radius*0.12, cfg.Black, true)
	}
}

func drawChopBursts(e *ecs.ECS, screen *ebiten.Image, ox, oy, minY, maxY float64) {
	components.ChopBurst.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		if pos.Y < minY || pos.Y > maxY {
			return
		}
		b := components.ChopBurst.Get(entry)
		t := float64(b.Age) / float64(b.Life)
		if t > 1 {
			t = 1
		}

		clr := fade(cfg.LogBrown, 1-t)
		size := float32(4 * (1 - t*0.6))
		// The cluster rides the blow direction while it scatters.
		driftX := b.Dir.X * 20 * t
		driftY := b.Dir.Y * 20 * t
		for i := 0; i < 6; i++ {
			ang := float64(i)*math.Pi/3 + 0.5
			dist := 6 + 26*t
			dx := float32(pos.X + ox + driftX + math.Cos(ang)*dist)
			dy := float32(pos.Y + oy + driftY + math.Sin(ang)*dist)
			vector.DrawFilledRect(screen, dx-size/2, dy-size/2, size, size, clr, false)
		}
	})
}

func drawWeather(e *ecs.ECS, screen *ebiten.Image, w, h int) {
	weather := getOrCreateWeather(e)
	switch weather.Phase {
	case cfg.WeatherRain:
		frame := currentFrame(e)
		clr := fade(color.RGBA{R: 200, G: 220, B: 255, A: 255}, 0.35)
		for i := 0; i < 28; i++ {
			x := float32((i*97+frame*5)%(w+80) - 40)
			y := float32((i*71 + frame*11) % (h + 40))
			vector.StrokeLine(screen, x, y, x-4, y+12, 1, clr, false)
		}
	case cfg.WeatherFrost:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), fade(cfg.IceBlue, 0.14), false)
	}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// fade premultiplies the color down to the given opacity.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
