package config

// BotDifficulty affects how carefully the autopilot picks its jumps
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds autopilot tuning at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Frames between decisions
	AimJitter     float64 // Random error added to the chosen landing point
	HazardRange   float64 // A hazard this close vetoes a candidate pad
	ThrowRange    float64 // Distance at which the bot throws pebbles
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration. The autopilot drives the frog in
// headless simulation runs.
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 45, // 0.75 second think time
				AimJitter:     14.0,
				HazardRange:   30.0,
				ThrowRange:    0.0, // never throws
			},
			BotDifficultyNormal: {
				ReactionDelay: 24,
				AimJitter:     8.0,
				HazardRange:   60.0,
				ThrowRange:    120.0,
			},
			BotDifficultyHard: {
				ReactionDelay: 10, // near-instant
				AimJitter:     3.0,
				HazardRange:   90.0,
				ThrowRange:    180.0,
			},
		},
	}
}
