package config

import "image/color"

// FrogConfig contains all frog-related configuration values
type FrogConfig struct {
	// Jump
	JumpSpeed      float64 // Horizontal travel speed toward the jump target
	HopImpulse     float64 // Initial vertical hop velocity (arc height)
	HopGravity     float64 // Per-frame decay of the hop velocity
	MaxJumpFrames  int     // Safety cap - jump force-completes after this many frames
	MinJumpRange   float64 // Shortest allowed jump
	MaxJumpRange   float64 // Longest allowed jump at full drag
	LaunchBoost    float64 // Jump range multiplier after a launch pad
	AimAssistAngle float64 // Radians of snap toward a nearby pad center

	// Landing
	LandingRadiusScale float64 // Pad radius multiplier for the landing catch zone
	LandingEpsilon     float64 // Extra slack added to the catch zone

	// Sliding (ice / slippery weather)
	SlideVelocityScale float64 // Fraction of approach velocity carried into the slide
	SlideMaxSpeed      float64 // Cap on slide speed
	SlideDecay         float64 // Multiplicative slowdown per frame
	SlideStopSpeed     float64 // Below this the slide ends

	// Health and buffs
	Health           int
	InvulnFrames     int // Invincibility window after taking damage
	MaxFloatCharges  int
	MaxChopCharges   int
	ScaredFrames     int // Duration of the scared reaction
	FloatFrames      int // How long the frog can float before it must jump
	PotInvulnFrames  int // Invincibility granted by a bonus pot
	RideInvulnFrames int // Grace invulnerability when hopping onto a carrier

	// Dimensions
	Radius float64 // Collision radius (circle tests)
}

// PadKind identifies a lily pad variant.
type PadKind int

const (
	PadNormal PadKind = iota
	PadMoving
	PadIce
	PadCarrier // drifting log raft the frog can ride
	PadShrinking
	PadPulsing // grave pad that sinks and surfaces
	PadWaterLily
	PadLaunch
	PadWarp
)

// PadTypeConfig contains per-kind pad tuning.
type PadTypeConfig struct {
	Name        string
	Radius      float64
	Mass        float64
	PatrolSpeed float64    // 0 = stationary kind
	DriftSpeed  float64    // Downstream drift (carriers)
	Color       color.RGBA
}

// PadConfig contains pad system configuration.
type PadConfig struct {
	Types map[PadKind]PadTypeConfig

	// Contact response
	Restitution   float64 // Elasticity of pad-pad bounces
	Friction      float64 // Multiplicative decay of pushed velocity per frame
	RestEpsilon   float64 // Speed below which pushed motion stops
	ContactMargin float64 // Extra reach on the pad-pad overlap test

	// Patrol bounds. Carriers cross the whole river; other moving
	// kinds sway around their spawn point.
	PatrolHalfSpan float64

	// Pulsing (grave) pads
	PulseRate      float64 // Radians per frame of the scale sinusoid
	PulseDepth     float64 // Scale swing amplitude
	PulseSafeScale float64 // Below this scale a landing is unsafe

	// Shrinking pads
	ShrinkScale    float32 // Final scale of the shrink tween
	ShrinkDuration float32 // Seconds per shrink/regrow leg

	// Warp and launch
	WarpDistance float64 // Downstream teleport distance
	LaunchScaleX float32 // Spring squash on launch
	LaunchScaleY float32
}

// PadKindByName resolves a pad kind from its tuning name. The course
// loader uses it to translate map object types. Unknown names fall
// back to the plain pad.
func PadKindByName(name string) PadKind {
	for kind, t := range Pad.Types {
		if t.Name == name {
			return kind
		}
	}
	return PadNormal
}

// HazardKind identifies a hazard variant.
type HazardKind int

const (
	HazardDragonfly HazardKind = iota // orbits a fixed point or its pad
	HazardSnake                       // crawls horizontally, rides pads
	HazardLog                         // drifts across the river, wedges pads
	HazardPike                        // hunts the frog through the water
	HazardThornbush                   // stands on a pad
	HazardBramble                     // fixed wall of thorns
)

// HazardTypeConfig contains per-kind hazard tuning.
type HazardTypeConfig struct {
	Name      string
	Speed     float64 // Horizontal speed (snake, log) or seek speed (pike)
	Diameter  float64 // Circle hit tests
	HitboxW   float64 // Rect hit tests (snake, log) - reduced from the sprite
	HitboxH   float64
	SpriteW   float64 // Visual size, used by rendering and the log wedge AABB
	SpriteH   float64
	Jumpable  bool    // True when an airborne frog passes over it
	Choppable bool    // True when a chop tool can destroy it

	// Kind-specific
	OrbitRadius  float64 // Dragonfly
	OrbitRate    float64 // Dragonfly, radians per frame
	AnchorMargin float64 // Snake - horizontal band beyond the pad radius
	HuntRadius   float64 // Pike - range at which it locks onto a swimming frog
	Pushback     float64 // Bramble - shove distance on a blocked hit
	PushbackNear float64 // Bramble - proximity required for the shove

	Color color.RGBA
}

// HazardConfig contains hazard system configuration.
type HazardConfig struct {
	Types map[HazardKind]HazardTypeConfig

	DespawnBehind float64 // Removed once this far upstream of the frog
	DespawnSide   float64 // Removed once this far past the banks
}

// HazardKindByName resolves a hazard kind from its tuning name. ok is
// false for unknown names so the course loader can skip bad objects.
func HazardKindByName(name string) (HazardKind, bool) {
	for kind, t := range Hazard.Types {
		if t.Name == name {
			return kind, true
		}
	}
	return 0, false
}

// WedgeConfig tunes the log-versus-pad squeeze response.
type WedgeConfig struct {
	Margin      float64 // Closest-point distance beyond the pad radius that still counts
	MaxForce    float64 // Ceiling on the horizontal push per contact
	SpeedCap    float64 // Log speed above this adds no extra push
	DragPerPad  float64 // Fraction of log speed lost per contacted pad per tick
	CheckFrames int     // Exact test runs at most once per this many frames per log
}

// RingConfig tunes the distance-banded update scheduler.
type RingConfig struct {
	NearRadius    float64
	MediumRadius  float64
	FarRadius     float64
	MediumEvery   int     // Medium ring processes every Nth frame
	FarEvery      int     // Far ring processes every Nth frame, movement only
	RecomputeDist float64 // Frog travel that forces a ring recompute
	RecomputeMax  int     // Frames between forced recomputes
}

// GridConfig tunes the pad spatial index.
type GridConfig struct {
	CellSize   float64
	MaxResults int     // Query buffer preallocation
}

// PebbleConfig contains thrown-pebble tuning.
type PebbleConfig struct {
	ArenaSize int     // Fixed number of pebble slots
	Speed     float64
	Radius    float64
	Lifetime  int     // Frames before a miss expires
	Cooldown  int     // Frames between throws
}

// CourseConfig controls course layout and procedural spawning.
type CourseConfig struct {
	BankWidth  float64 // Solid margin on each side of the river
	RowSpacing float64 // Mean downstream gap between pad rows
	RowJitter  float64 // Random +- applied to the gap
	PadsPerRow [2]int  // Min and max pads spawned per row
	SpawnAhead float64 // Rows are generated this far downstream of the frog

	// Weighted spawn tables. A zero weight removes the kind from the
	// generator without touching its tuning entry.
	KindWeights   map[PadKind]int
	HazardChance  float64
	HazardWeights map[HazardKind]int

	TadpoleChance float64
	PotChance     float64
	VestChance    float64
}

// WeatherID identifies the ambient weather state.
type WeatherID int

const (
	WeatherClear WeatherID = iota
	WeatherRain
	WeatherFrost
)

// String returns the phase name used by logs and the debug overlay.
func (w WeatherID) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherFrost:
		return "frost"
	}
	return "unknown"
}

// WeatherConfig contains weather cycling and physics modifiers.
type WeatherConfig struct {
	CycleFrames   int     // Frames per weather phase
	RainGravity   float64
	RainFriction  float64
	FrostFriction float64
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64 // How fast the camera chases the frog (0.0-1.0)
	LookAhead       float64 // Downstream offset so the frog sits above center
	MaxBackscroll   float64 // How far the view may trail the furthest point reached
}

// ScoreConfig contains scoring values.
type ScoreConfig struct {
	PerPad      int
	PerTadpole  int
	PerPot      int
	PerHazard   int     // Destroying a hazard
	DistanceDiv float64 // World units per distance point
}

// UIConfig contains HUD configuration values.
type UIConfig struct {
	HeartSize    float64
	HeartMargin  float64
	ChargeSize   float64
	HUDTextColor color.RGBA
	HUDBarColor  color.RGBA
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	PanelColor      color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	TitleY          float64
}

// GameOverConfig contains game over screen configuration values.
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// PauseConfig contains pause menu configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu    bool  // Skip menu and go directly to the river
	ShowOverlay bool  // Start with the debug overlay enabled
	Seed        int64
}

// RippleConfig tunes the spawned ripple visuals.
type RippleConfig struct {
	Lifetime  int
	MaxRings  int
	BaseAlpha float64
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Frog FrogConfig
var Pad PadConfig
var Hazard HazardConfig
var Wedge WedgeConfig
var Rings RingConfig
var Grid GridConfig
var Pebble PebbleConfig
var Course CourseConfig
var Weather WeatherConfig
var Camera CameraConfig
var Score ScoreConfig
var UI UIConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig
var Ripple RippleConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	RiverBlue   = color.RGBA{R: 24, G: 78, B: 119, A: 255}
	BankGreen   = color.RGBA{R: 52, G: 88, B: 48, A: 255}
	PadGreen    = color.RGBA{R: 64, G: 150, B: 72, A: 255}
	PaleGreen   = color.RGBA{R: 120, G: 190, B: 120, A: 255}
	IceBlue     = color.RGBA{R: 170, G: 215, B: 235, A: 255}
	LilyPink    = color.RGBA{R: 222, G: 140, B: 180, A: 255}
	RaftBrown   = color.RGBA{R: 130, G: 94, B: 52, A: 255}
	LogBrown    = color.RGBA{R: 106, G: 72, B: 40, A: 255}
	GraveGray   = color.RGBA{R: 110, G: 116, B: 122, A: 255}
	LaunchGold  = color.RGBA{R: 235, G: 190, B: 60, A: 255}
	WarpPurple  = color.RGBA{R: 150, G: 90, B: 210, A: 255}
	FrogGreen   = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	SnakeYellow = color.RGBA{R: 200, G: 180, B: 60, A: 255}
	PikeSilver  = color.RGBA{R: 160, G: 170, B: 180, A: 255}
	ThornDark   = color.RGBA{R: 70, G: 90, B: 50, A: 255}
	DangerRed   = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	DragonBlue  = color.RGBA{R: 90, G: 160, B: 230, A: 255}
	HeartRed    = color.RGBA{R: 230, G: 70, B: 90, A: 255}
	ShieldCyan  = color.RGBA{R: 90, G: 210, B: 220, A: 255}
	Overlay     = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  480,
		Height: 800,
	}

	Frog = FrogConfig{
		// Jump
		JumpSpeed:      6.5,
		HopImpulse:     9.0,
		HopGravity:     0.6,
		MaxJumpFrames:  90,    // force-complete runaway jumps, ~1.5s at 60fps
		MinJumpRange:   40.0,
		MaxJumpRange:   240.0,
		LaunchBoost:    1.8,
		AimAssistAngle: 0.12,

		// Landing
		LandingRadiusScale: 1.15,
		LandingEpsilon:     6.0,

		// Sliding
		SlideVelocityScale: 0.6,
		SlideMaxSpeed:      5.0,
		SlideDecay:         0.9,
		SlideStopSpeed:     0.15,

		// Health and buffs
		Health:           3,
		InvulnFrames:     90,
		MaxFloatCharges:  3,
		MaxChopCharges:   3,
		ScaredFrames:     45,
		FloatFrames:      240, // ~4 seconds of treading water
		PotInvulnFrames:  300,
		RideInvulnFrames: 20,

		Radius: 14.0,
	}

	Pad = PadConfig{
		Types: map[PadKind]PadTypeConfig{
			PadNormal:    {Name: "pad", Radius: 26, Mass: 1.0, Color: PadGreen},
			PadMoving:    {Name: "drifter", Radius: 26, Mass: 1.0, PatrolSpeed: 0.8, Color: PaleGreen},
			PadIce:       {Name: "floe", Radius: 24, Mass: 1.1, Color: IceBlue},
			PadCarrier:   {Name: "raft", Radius: 30, Mass: 1.6, PatrolSpeed: 0.6, DriftSpeed: 0.5, Color: RaftBrown},
			PadShrinking: {Name: "wilter", Radius: 26, Mass: 0.9, Color: PadGreen},
			PadPulsing:   {Name: "grave", Radius: 24, Mass: 1.2, Color: GraveGray},
			PadWaterLily: {Name: "lily", Radius: 22, Mass: 0.7, PatrolSpeed: 0.5, Color: LilyPink},
			PadLaunch:    {Name: "springpad", Radius: 24, Mass: 1.0, Color: LaunchGold},
			PadWarp:      {Name: "warppad", Radius: 24, Mass: 1.0, Color: WarpPurple},
		},

		Restitution:   0.4,  // elastic-with-loss bounce
		Friction:      0.94,
		RestEpsilon:   0.05,
		ContactMargin: 0.0,

		PatrolHalfSpan: 70.0,

		PulseRate:      0.035,
		PulseDepth:     0.3,
		PulseSafeScale: 0.85,

		ShrinkScale:    0.45,
		ShrinkDuration: 3.0,

		WarpDistance: 420.0,
		LaunchScaleX: 1.4,
		LaunchScaleY: 0.6,
	}

	Hazard = HazardConfig{
		Types: map[HazardKind]HazardTypeConfig{
			HazardDragonfly: {
				Name:        "dragonfly",
				Diameter:    22,
				SpriteW:     26, SpriteH: 18,
				Jumpable:    true,
				Choppable:   false,
				OrbitRadius: 38,
				OrbitRate:   0.06,
				Color:       DragonBlue,
			},
			HazardSnake: {
				Name:         "snake",
				Speed:        1.2,
				HitboxW:      34, HitboxH: 12, // narrower than the sprite
				SpriteW:      48, SpriteH: 16,
				Jumpable:     true,
				Choppable:    false,
				AnchorMargin: 6,
				Color:        SnakeYellow,
			},
			HazardLog: {
				Name:      "log",
				Speed:     1.6,
				HitboxW:   56, HitboxH: 14,
				SpriteW:   64, SpriteH: 18,
				Jumpable:  false,
				Choppable: true,
				Color:     LogBrown,
			},
			HazardPike: {
				Name:       "pike",
				Speed:      2.2,
				Diameter:   26,
				SpriteW:    40, SpriteH: 14,
				Jumpable:   false,
				Choppable:  false,
				HuntRadius: 220,
				Color:      PikeSilver,
			},
			HazardThornbush: {
				Name:      "thornbush",
				Diameter:  24,
				SpriteW:   28, SpriteH: 24,
				Jumpable:  false,
				Choppable: true,
				Color:     ThornDark,
			},
			HazardBramble: {
				Name:         "bramble",
				Diameter:     28,
				SpriteW:      34, SpriteH: 30,
				Jumpable:     false,
				Choppable:    true,
				Pushback:     18,
				PushbackNear: 40,
				Color:        DangerRed,
			},
		},

		DespawnBehind: 260.0,
		DespawnSide:   120.0,
	}

	Wedge = WedgeConfig{
		Margin:      4.0,
		MaxForce:    2.5,
		SpeedCap:    3.0,
		DragPerPad:  0.02,
		CheckFrames: 3,
	}

	Rings = RingConfig{
		NearRadius:    200.0,
		MediumRadius:  400.0,
		FarRadius:     600.0,
		MediumEvery:   2,
		FarEvery:      4,
		RecomputeDist: 48.0,
		RecomputeMax:  30,
	}

	Grid = GridConfig{
		CellSize:   64.0,
		MaxResults: 64,
	}

	Pebble = PebbleConfig{
		ArenaSize: 16,
		Speed:     7.0,
		Radius:    5.0,
		Lifetime:  60,
		Cooldown:  18,
	}

	Course = CourseConfig{
		BankWidth:  36.0,
		RowSpacing: 92.0,
		RowJitter:  28.0,
		PadsPerRow: [2]int{1, 3},
		SpawnAhead: 900.0,
		KindWeights: map[PadKind]int{
			PadNormal:    30,
			PadMoving:    12,
			PadIce:       8,
			PadCarrier:   5,
			PadShrinking: 8,
			PadPulsing:   7,
			PadWaterLily: 12,
			PadLaunch:    4,
			PadWarp:      2,
		},
		HazardChance: 0.28,
		HazardWeights: map[HazardKind]int{
			HazardDragonfly: 20,
			HazardSnake:     18,
			HazardLog:       16,
			HazardPike:      10,
			HazardThornbush: 14,
			HazardBramble:   8,
		},
		TadpoleChance: 0.22,
		PotChance:     0.05,
		VestChance:    0.04,
	}

	Weather = WeatherConfig{
		CycleFrames:   1800, // 30 seconds per phase
		RainGravity:   1.05,
		RainFriction:  0.9,
		FrostFriction: 0.85,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		LookAhead:       110.0,
		MaxBackscroll:   40.0,
	}

	Score = ScoreConfig{
		PerPad:      10,
		PerTadpole:  25,
		PerPot:      100,
		PerHazard:   50,
		DistanceDiv: 10.0,
	}

	UI = UIConfig{
		HeartSize:    14.0,
		HeartMargin:  6.0,
		ChargeSize:   10.0,
		HUDTextColor: White,
		HUDBarColor:  color.RGBA{R: 0, G: 0, B: 0, A: 120},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 12, G: 36, B: 52, A: 255},
		TitleColor:      LaunchGold,
		PanelColor:      color.RGBA{R: 18, G: 48, B: 66, A: 255},
		ButtonColor:     color.RGBA{R: 28, G: 74, B: 96, A: 255},
		ButtonHover:     color.RGBA{R: 44, G: 104, B: 130, A: 255},
		TitleY:          120,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 30, G: 14, B: 18, A: 255},
		TitleColor:        DangerRed,
		TextColorNormal:   White,
		TextColorSelected: LaunchGold,
		TitleY:            220,
		MenuStartY:        430,
		MenuItemHeight:    34,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	Pause = PauseConfig{
		OverlayColor:      Overlay,
		TextColorNormal:   White,
		TextColorSelected: LaunchGold,
		MenuItemHeight:    30,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Restart", "Main Menu"},
	}

	Debug = DebugConfig{
		SkipMenu:    false,
		ShowOverlay: false,
		Seed:        0,
	}

	Ripple = RippleConfig{
		Lifetime:  36,
		MaxRings:  3,
		BaseAlpha: 0.5,
	}
}
