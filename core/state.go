package core

import "github.com/automoto/countdown/config"

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseTransition
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "Paused"
	case PhaseTransition:
		return "LevelTransition"
	}
	return "Playing"
}

// Transition tracks a fade out, level swap and fade in.
type Transition struct {
	Target     int
	Timer      float64
	SoundFired bool
	Loaded     bool
}

// State is the game state machine. Transition functions return the next
// state and never mutate the receiver.
type State struct {
	Phase      Phase
	Transition Transition // valid in PhaseTransition
}

// TransitionStep lists the side effects the session must run after Advance.
type TransitionStep struct {
	PlaySound bool // the next-level sound
	Load      bool // load Transition.Target now
}

// Playing returns the running state.
func Playing() State {
	return State{Phase: PhasePlaying}
}

// BeginTransition starts a transition toward the target level index.
func BeginTransition(target int) State {
	return State{
		Phase:      PhaseTransition,
		Transition: Transition{Target: target, Timer: config.Transition.Duration},
	}
}

// TogglePause flips between Playing and Paused. Other phases are unchanged.
func (s State) TogglePause() State {
	switch s.Phase {
	case PhasePlaying:
		return State{Phase: PhasePaused}
	case PhasePaused:
		return Playing()
	}
	return s
}

// Advance runs the transition timer. The sound is requested once when the
// timer first reaches SoundAt, and only when the target differs from the
// current level. The load is requested once when the timer first reaches
// LoadAt. Play resumes at FinishAt once the level is loaded.
func (s State) Advance(dt float64, currentIndex int) (State, TransitionStep) {
	var step TransitionStep
	if s.Phase != PhaseTransition {
		return s, step
	}

	cfg := config.Transition
	t := s.Transition
	t.Timer -= dt

	if t.Timer <= cfg.SoundAt && !t.SoundFired {
		step.PlaySound = t.Target != currentIndex
		t.SoundFired = true
	}
	if t.Timer <= cfg.LoadAt && !t.Loaded {
		step.Load = true
	}

	s.Transition = t
	if t.Loaded && t.Timer <= cfg.FinishAt {
		return Playing(), step
	}
	return s, step
}

// MarkLoaded records that the target level is live.
func (s State) MarkLoaded() State {
	if s.Phase == PhaseTransition {
		s.Transition.Loaded = true
		if s.Transition.Timer <= config.Transition.FinishAt {
			return Playing()
		}
	}
	return s
}

// FadeAlpha is the opacity of the black screen cover, 1 at the midpoint of a
// transition and 0 outside one.
func (s State) FadeAlpha() float64 {
	if s.Phase != PhaseTransition {
		return 0
	}
	width := config.Transition.FadeWidth
	t := s.Transition.Timer
	if t < 0 {
		t = -t
	}
	if t > width {
		t = width
	}
	return 1 - t/width
}
