package systems

import (
	"math"

	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera chases the frog downstream. The view leads the frog by
// a smoothed look-ahead so the river ahead is visible, and it never
// scrolls back above the furthest point reached minus the backscroll
// allowance - upstream is spent water.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	frogEntry, ok := tags.Frog.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(frogEntry)
	frog := components.Frog.Get(frogEntry)

	camera.LookAhead += (cfg.Camera.LookAhead - camera.LookAhead) * cfg.Camera.FollowSmoothing

	floor := frog.FurthestY - cfg.Camera.MaxBackscroll
	if floor > camera.FloorY {
		camera.FloorY = floor
	}

	targetX := float64(cfg.C.Width) / 2
	targetY := pos.Y + camera.LookAhead
	if targetY < camera.FloorY {
		targetY = camera.FloorY
	}

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
	if camera.Position.Y < camera.FloorY {
		camera.Position.Y = camera.FloorY
	}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	camera.Position.X += offsetX
	camera.Position.Y += offsetY

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
