package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundHop
	SoundLand
	SoundSplash
	SoundSlide
	// Impact sounds
	SoundThud
	SoundChop
	SoundHurt
	SoundThrow
	// Pickup sounds
	SoundPickup
	SoundVest
	SoundPot
	// Pad sounds
	SoundLaunch
	SoundWarp
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundGameOver
)

// WaveID selects the oscillator shape for a synthesized cue.
type WaveID int

const (
	WaveSine WaveID = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// CueConfig describes one synthesized sound effect. Every cue is a
// single oscillator swept from Freq to EndFreq under a linear fade.
type CueConfig struct {
	Wave     WaveID
	Freq     float64 // start frequency, Hz
	EndFreq  float64 // end frequency, Hz (0 holds Freq)
	Duration float64 // seconds
	Volume   float64
}

var Audio AudioConfig
var Cues map[SoundID]CueConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Cues = map[SoundID]CueConfig{
		SoundHop:          {Wave: WaveSquare, Freq: 320, EndFreq: 620, Duration: 0.10, Volume: 0.5},
		SoundLand:         {Wave: WaveTriangle, Freq: 260, EndFreq: 140, Duration: 0.08, Volume: 0.6},
		SoundSplash:       {Wave: WaveNoise, Freq: 900, EndFreq: 200, Duration: 0.35, Volume: 0.7},
		SoundSlide:        {Wave: WaveNoise, Freq: 500, EndFreq: 400, Duration: 0.20, Volume: 0.3},
		SoundThud:         {Wave: WaveSine, Freq: 150, EndFreq: 70, Duration: 0.12, Volume: 0.8},
		SoundChop:         {Wave: WaveSquare, Freq: 210, EndFreq: 90, Duration: 0.15, Volume: 0.7},
		SoundHurt:         {Wave: WaveSquare, Freq: 440, EndFreq: 110, Duration: 0.25, Volume: 0.8},
		SoundThrow:        {Wave: WaveTriangle, Freq: 700, EndFreq: 1200, Duration: 0.07, Volume: 0.4},
		SoundPickup:       {Wave: WaveSine, Freq: 660, EndFreq: 990, Duration: 0.12, Volume: 0.5},
		SoundVest:         {Wave: WaveSine, Freq: 520, EndFreq: 780, Duration: 0.20, Volume: 0.6},
		SoundPot:          {Wave: WaveSine, Freq: 523, EndFreq: 1046, Duration: 0.30, Volume: 0.6},
		SoundLaunch:       {Wave: WaveSquare, Freq: 180, EndFreq: 900, Duration: 0.22, Volume: 0.6},
		SoundWarp:         {Wave: WaveSine, Freq: 1200, EndFreq: 300, Duration: 0.30, Volume: 0.5},
		SoundMenuNavigate: {Wave: WaveSquare, Freq: 540, Duration: 0.05, Volume: 0.35},
		SoundMenuSelect:   {Wave: WaveSquare, Freq: 760, Duration: 0.09, Volume: 0.4},
		SoundGameOver:     {Wave: WaveTriangle, Freq: 330, EndFreq: 82, Duration: 0.90, Volume: 0.7},
	}
}
