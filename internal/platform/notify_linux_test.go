//go:build linux

package platform

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestNotifyWithoutSessionBus(t *testing.T) {
	boom := errors.New("no bus")
	original := sessionBus
	sessionBus = func(...dbus.ConnOption) (*dbus.Conn, error) { return nil, boom }
	t.Cleanup(func() { sessionBus = original })

	err := Notify("Scribble", "Saved x.png", Options{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "session bus")
}

func TestOptionsTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, Options{}.timeout())
	assert.Equal(t, DefaultTimeout/5, Options{Timeout: DefaultTimeout / 5}.timeout())
}
