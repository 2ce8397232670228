package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed     float64 `yaml:"jumpSpeed"`
	WallJumpSpeed float64 `yaml:"wallJumpSpeed"`
	SpeedPerWidth float64 `yaml:"speedPerWidth"` // target horizontal speed = width * SpeedPerWidth
	Smoothing     float64 `yaml:"smoothing"`     // seconds for the velocity gap to halve
	JumpCut       float64 `yaml:"jumpCut"`       // vertical speed factor when jump is released early
	MaxJumps      int     `yaml:"maxJumps"`

	// Collision
	CollisionInset float64 `yaml:"collisionInset"` // pixels trimmed from each side for solid checks
	SpikeInset     float64 `yaml:"spikeInset"`     // tiles trimmed from each side for spike checks
	UnstickStep    float64 `yaml:"unstickStep"`    // pixels pushed up per step while overlapping

	// Animation
	WalkThreshold float64 `yaml:"walkThreshold"` // |vx| above which the walk cycle plays
	WalkRate      float64 `yaml:"walkRate"`
	WallFrame     int     `yaml:"wallFrame"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	TileSize float64 `yaml:"tileSize"`
}

// LevelConfig contains level entity configuration values
type LevelConfig struct {
	NumberSize     float64 `yaml:"numberSize"`
	DoorOpenHeight float64 `yaml:"doorOpenHeight"` // pixels the door rises when opened
	DoorSpeed      float64 `yaml:"doorSpeed"`      // pixels per second

	// Idle numbers bob on a sine wave
	BobSpeed     float64 `yaml:"bobSpeed"`
	BobAmplitude float64 `yaml:"bobAmplitude"`

	// Spider patrol cycle, in seconds
	SpiderTravel float64 `yaml:"spiderTravel"`
	SpiderPeriod float64 `yaml:"spiderPeriod"`
}

// TransitionConfig contains level transition timing
type TransitionConfig struct {
	Duration  float64 `yaml:"duration"`  // starting timer value
	SoundAt   float64 `yaml:"soundAt"`   // timer value at which the next-level sound fires
	LoadAt    float64 `yaml:"loadAt"`    // timer value at which the target level is loaded
	FinishAt  float64 `yaml:"finishAt"`  // timer value at which play resumes
	FadeWidth float64 `yaml:"fadeWidth"` // |timer| below which the screen darkens
}

// EffectsConfig contains particle and overlay configuration
type EffectsConfig struct {
	ParticleLife    float64    `yaml:"particleLife"`
	ParticleGravity float64    `yaml:"particleGravity"`
	SpreadDegrees   int        `yaml:"spreadDegrees"`
	OverlayLife     float64    `yaml:"overlayLife"`
	OverlayScale    float64    `yaml:"overlayScale"` // font size = life^3 * half screen height * scale
	DeathCount      int        `yaml:"deathCount"`
	DeathPower      int        `yaml:"deathPower"`
	DeathColor      color.RGBA `yaml:"-"`
	PickupCount     int        `yaml:"pickupCount"`
	PickupPower     int        `yaml:"pickupPower"`
	PickupColor     color.RGBA `yaml:"-"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ScreenSize float64 // world pixels per camera screen
	Zoom       float64
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDX, HUDY   int
	HUDColor     color.RGBA
	PausedSuffix string
	OverlayColor color.RGBA
	FadeColor    color.RGBA
}

// TitleConfig contains title screen configuration values
type TitleConfig struct {
	ButtonWidth    int
	ButtonHeight   int
	ButtonOffsetY  int // play button sits this far above the screen center
	ButtonSpacing  int
	PlayLabel      string
	MusicOnLabel   string
	MusicOffLabel  string
	ButtonIdle     color.RGBA
	ButtonHover    color.RGBA
	ButtonPressed  color.RGBA
	ButtonText     color.RGBA
	TitleText      string
	TitleY         int
	BackgroundTint color.RGBA
}

// EndingLine is a single fading line of the credits screen
type EndingLine struct {
	Text  string // may contain %s, replaced with the final time
	Y     int
	Large bool
	Delay float64 // seconds before the line starts fading in
}

// EndingConfig contains credits screen configuration values
type EndingConfig struct {
	BrightenTime float64
	FadeTime     float64
	TextColor    color.RGBA
	Lines        []EndingLine
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Level LevelConfig
var Transition TransitionConfig
var Effects EffectsConfig
var Camera CameraConfig
var UI UIConfig
var Title TitleConfig
var Ending EndingConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip the title screen and go directly to the game
	StartLevel int
	TuningFile string
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Gray         = color.RGBA{R: 86, G: 86, B: 86, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Navy         = color.RGBA{R: 30, G: 50, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  768,
		Height: 768,
		Title:  "Catch the Countdown!",
	}

	Player = PlayerConfig{
		JumpSpeed:     300,
		WallJumpSpeed: 300,
		SpeedPerWidth: 10,
		Smoothing:     0.1,
		JumpCut:       0.5,
		MaxJumps:      2,

		CollisionInset: 0.5,
		SpikeInset:     0.25,
		UnstickStep:    0.5,

		WalkThreshold: 10,
		WalkRate:      20,
		WallFrame:     3,
	}

	Physics = PhysicsConfig{
		Gravity:  1000,
		TileSize: 16,
	}

	Level = LevelConfig{
		NumberSize:     16,
		DoorOpenHeight: 32,
		DoorSpeed:      16,
		BobSpeed:       3,
		BobAmplitude:   8,
		SpiderTravel:   3,
		SpiderPeriod:   18,
	}

	Transition = TransitionConfig{
		Duration:  1.0,
		SoundAt:   0.5,
		LoadAt:    0,
		FinishAt:  -0.5,
		FadeWidth: 0.5,
	}

	Effects = EffectsConfig{
		ParticleLife:    1.0,
		ParticleGravity: 1000,
		SpreadDegrees:   60,
		OverlayLife:     0.5,
		OverlayScale:    14,
		DeathCount:      200,
		DeathPower:      200,
		DeathColor:      Red,
		PickupCount:     20,
		PickupPower:     140,
		PickupColor:     White,
	}

	Camera = CameraConfig{
		ScreenSize: 256,
		Zoom:       3,
	}

	UI = UIConfig{
		HUDX:         10,
		HUDY:         10,
		HUDColor:     White,
		PausedSuffix: " (paused)",
		OverlayColor: White,
		FadeColor:    Black,
	}

	Title = TitleConfig{
		ButtonWidth:    240,
		ButtonHeight:   72,
		ButtonOffsetY:  80,
		ButtonSpacing:  150,
		PlayLabel:      "Play",
		MusicOnLabel:   "Music: On",
		MusicOffLabel:  "Music: Off",
		ButtonIdle:     DarkBlue,
		ButtonHover:    LightBlue,
		ButtonPressed:  Navy,
		ButtonText:     White,
		TitleText:      "Catch the Countdown!",
		TitleY:         180,
		BackgroundTint: Gray,
	}

	Ending = EndingConfig{
		BrightenTime: 2,
		FadeTime:     1,
		TextColor:    Black,
		Lines: []EndingLine{
			{Text: "Thanks for playing!", Y: 260, Large: true, Delay: 2},
			{Text: "Your time: %s", Y: 320, Large: true, Delay: 3},
			{Text: "Made for IcoJam 2023", Y: 380, Delay: 4},
			{Text: "By InfiniteCoder", Y: 410, Delay: 5},
		},
	}
}
