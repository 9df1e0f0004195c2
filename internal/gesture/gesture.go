// Package gesture tracks what a pointer drag does to the canvas.
package gesture

import "golang.org/x/mobile/event/mouse"

// State is the phase of the current pointer gesture.
type State int

const (
	Idle State = iota
	Painting
	Erasing
)

func (s State) String() string {
	switch s {
	case Painting:
		return "painting"
	case Erasing:
		return "erasing"
	default:
		return "idle"
	}
}

// Action is the canvas mutation requested by a pointer move.
type Action int

const (
	ActionNone Action = iota
	ActionPaint
	ActionErase
)

// Gesture is the state of one press-drag-release sequence.
// The zero value is Idle.
type Gesture struct {
	state State
}

// State returns the current phase.
func (g *Gesture) State() State { return g.state }

// Press starts a gesture. The primary button paints, the secondary erases and
// any other button leaves the gesture idle.
func (g *Gesture) Press(b mouse.Button) {
	switch b {
	case mouse.ButtonLeft:
		g.state = Painting
	case mouse.ButtonRight:
		g.state = Erasing
	default:
		g.state = Idle
	}
}

// Release ends the gesture.
func (g *Gesture) Release() { g.state = Idle }

// Move reports the action a pointer move performs in the current phase.
func (g *Gesture) Move() Action {
	switch g.state {
	case Painting:
		return ActionPaint
	case Erasing:
		return ActionErase
	default:
		return ActionNone
	}
}
