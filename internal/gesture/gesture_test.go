package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mobile/event/mouse"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		name   string
		button mouse.Button
		state  State
		action Action
	}{
		{"primary paints", mouse.ButtonLeft, Painting, ActionPaint},
		{"secondary erases", mouse.ButtonRight, Erasing, ActionErase},
		{"middle is ignored", mouse.ButtonMiddle, Idle, ActionNone},
		{"wheel is ignored", mouse.ButtonWheelUp, Idle, ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var g Gesture
			g.Press(tc.button)
			assert.Equal(t, tc.state, g.State())
			assert.Equal(t, tc.action, g.Move())
			g.Release()
			assert.Equal(t, Idle, g.State())
			assert.Equal(t, ActionNone, g.Move())
		})
	}
}

func TestZeroValueIsIdle(t *testing.T) {
	var g Gesture
	assert.Equal(t, Idle, g.State())
	assert.Equal(t, ActionNone, g.Move())
}

func TestSecondPressOverridesFirst(t *testing.T) {
	var g Gesture
	g.Press(mouse.ButtonLeft)
	g.Press(mouse.ButtonRight)
	assert.Equal(t, ActionErase, g.Move())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "painting", Painting.String())
	assert.Equal(t, "erasing", Erasing.String())
}
