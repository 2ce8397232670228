package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionGrip
	ActionJump
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// String returns the action name used in tuning files and logs.
func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "moveLeft"
	case ActionMoveRight:
		return "moveRight"
	case ActionGrip:
		return "grip"
	case ActionJump:
		return "jump"
	case ActionPause:
		return "pause"
	}
	return "none"
}
