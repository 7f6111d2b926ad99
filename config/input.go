package config

// ActionID represents a logical actor action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:         "none",
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps an action name back to its id.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name && id != ActionNone {
			return id, true
		}
	}
	return ActionNone, false
}
