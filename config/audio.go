package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundJump
	SoundNumber
	SoundGameOver
	SoundNextLevel
	// UI sounds
	SoundButtonHover
	SoundButtonClick
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	MusicVol   float64
	SFXVol     float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Song              string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		MusicVol:   0.6,
		SFXVol:     1.0,
	}

	Sound = SoundConfig{
		Song: "audio/song.wav",
		SFXPaths: map[SoundID]string{
			SoundJump:        "audio/jump.wav",
			SoundNumber:      "audio/number.wav",
			SoundGameOver:    "audio/game_over.wav",
			SoundNextLevel:   "audio/next_level.wav",
			SoundButtonHover: "audio/button_hover.wav",
			SoundButtonClick: "audio/button_click.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundButtonHover: 0.5,
		},
	}
}
