package systems

import (
	"sync"

	"github.com/automoto/countdown/assets"
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicEnabled bool    = true
	globalMusicVolume  float64 = cfg.Audio.MusicVol
	globalSFXVolume    float64 = cfg.Audio.SFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Warnf("Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays pending SFX and keeps the song looping while music is on.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicEnabled && globalMusicPlayer == nil {
		PlayMusic(e, cfg.Sound.Song)
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Warnf("Could not play %s: %v", path, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts playing music with the given path (looping)
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()

	// Already playing this music
	if globalMusicKey == musicPath && globalMusicPlayer != nil {
		return
	}

	StopMusic(e)

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		log.Warnf("Could not start music: %v", err)
		globalMusicEnabled = false
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// SetMusicEnabled turns the background song on or off.
func SetMusicEnabled(e *ecs.ECS, on bool) {
	globalMusicEnabled = on
	if !on {
		StopMusic(e)
	}
}

// MusicEnabled reports whether the background song should be playing.
func MusicEnabled() bool {
	return globalMusicEnabled
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
