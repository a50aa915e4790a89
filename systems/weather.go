package systems

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/components"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeather rotates the ambient weather phase and folds its
// physics scales into the singleton the rest of the tick reads. Rain
// weighs down the hop arc; frost turns every landing into a slide and
// lets pushed pads glide further.
func UpdateWeather(ecs *ecs.ECS) {
	weather := getOrCreateWeather(ecs)

	weather.Timer++
	if weather.Timer >= cfg.Weather.CycleFrames {
		weather.Timer = 0
		switch weather.Phase {
		case cfg.WeatherClear:
			weather.Phase = cfg.WeatherRain
		case cfg.WeatherRain:
			weather.Phase = cfg.WeatherFrost
		default:
			weather.Phase = cfg.WeatherClear
		}
	}

	switch weather.Phase {
	case cfg.WeatherRain:
		weather.GravityScale = cfg.Weather.RainGravity
		weather.FrictionScale = cfg.Weather.RainFriction
	case cfg.WeatherFrost:
		weather.GravityScale = 1.0
		weather.FrictionScale = cfg.Weather.FrostFriction
	default:
		weather.GravityScale = 1.0
		weather.FrictionScale = 1.0
	}
}

func getOrCreateWeather(ecs *ecs.ECS) *components.WeatherData {
	if entry, ok := components.Weather.First(ecs.World); ok {
		return components.Weather.Get(entry)
	}
	entry := ecs.World.Entry(ecs.World.Create(components.Weather))
	components.Weather.Set(entry, &components.WeatherData{
		Phase:         cfg.WeatherClear,
		GravityScale:  1.0,
		FrictionScale: 1.0,
	})
	return components.Weather.Get(entry)
}
