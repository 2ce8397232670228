package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/countdown/config"
	log "github.com/sirupsen/logrus"
)

// ErrNoLevels is returned when a session cannot find its first level.
var ErrNoLevels = errors.New("no levels available")

// Session owns the live level, player and state machine, and steps them once
// per frame.
type Session struct {
	Level  *Level
	Player *Player
	State  State
	Time   float64 // play time, frozen while paused

	src    LevelSource
	rng    *rand.Rand
	ended  bool
	sounds []config.SoundID
}

// NewSession loads the level at start and begins playing.
func NewSession(src LevelSource, start int, rng *rand.Rand) (*Session, error) {
	level, player, err := Load(src, start, rng)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, fmt.Errorf("level %d: %w", start, ErrNoLevels)
	}
	return &Session{
		Level:  level,
		Player: player,
		State:  Playing(),
		src:    src,
		rng:    rng,
	}, nil
}

// Update steps the session by one frame. now is the monotonic clock used for
// animation phases.
func (s *Session) Update(dt, now float64, in Input) error {
	if s.ended {
		return nil
	}
	f := &Frame{DT: dt, Time: now, Input: in}

	if in.PausePressed {
		s.State = s.State.TogglePause()
	}

	if s.State.Phase != PhasePaused {
		s.Time += dt
		s.Level.Update(dt)
	}

	if s.State.Phase == PhasePlaying {
		if s.Player.Update(f, s.Level) == OutcomeGameOver {
			log.Infof("Game over on level %d at %s", s.Level.Index, FormatTime(s.Time))
			s.State = BeginTransition(s.Level.Index)
		} else if s.Player.Position.X >= s.Level.Size.X {
			s.State = BeginTransition(s.Level.Index + 1)
		}
	}

	if s.State.Phase == PhaseTransition {
		var step TransitionStep
		s.State, step = s.State.Advance(dt, s.Level.Index)
		if step.PlaySound {
			f.Play(config.SoundNextLevel)
		}
		if step.Load {
			if err := s.loadTarget(); err != nil {
				return err
			}
		}
	}

	s.sounds = append(s.sounds, f.Sounds...)
	return nil
}

func (s *Session) loadTarget() error {
	target := s.State.Transition.Target
	level, player, err := Load(s.src, target, s.rng)
	if err != nil {
		return err
	}
	if level == nil {
		log.Infof("No level %d, session finished in %s", target, FormatTime(s.Time))
		s.ended = true
		return nil
	}
	s.Level, s.Player = level, player
	s.State = s.State.MarkLoaded()
	return nil
}

// Ended reports whether the player ran out of levels.
func (s *Session) Ended() bool {
	return s.ended
}

// DrainSounds returns the sounds triggered since the last call.
func (s *Session) DrainSounds() []config.SoundID {
	out := s.sounds
	s.sounds = nil
	return out
}

// PlayerVisible reports whether the player should be drawn. During a
// transition the player is hidden until the new level is loaded.
func (s *Session) PlayerVisible() bool {
	if s.State.Phase == PhaseTransition {
		return s.State.Transition.Loaded
	}
	return true
}

// FadeAlpha is the opacity of the transition cover.
func (s *Session) FadeAlpha() float64 {
	return s.State.FadeAlpha()
}

// HUDText is the timer line shown in the corner.
func (s *Session) HUDText() string {
	text := FormatTime(s.Time)
	if s.State.Phase == PhasePaused {
		text += config.UI.PausedSuffix
	}
	return text
}

// FormatTime renders seconds as HH:MM:SS.ss.
func FormatTime(seconds float64) string {
	whole := int(seconds)
	return fmt.Sprintf("%02d:%02d:%05.2f", whole/3600, (whole/60)%60, math.Mod(seconds, 60))
}
