package components

import (
	"github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
	"github.com/yohamta/donburi"
)

// WeatherData is the singleton ambient weather state. The physics
// scales are folded into pad friction and the hop arc each tick.
type WeatherData struct {
	Phase config.WeatherID
	Timer int

	GravityScale  float64
	FrictionScale float64
}

var Weather = donburi.NewComponentType[WeatherData]()
