// Package tray runs the system tray icon and reports menu clicks as events.
package tray

import (
	"errors"
	"os"
	"runtime"
	"sync"

	"fyne.io/systray"
	"github.com/rs/zerolog"
)

// Event is a tray menu action.
type Event int

const (
	EventShow Event = iota
	EventCheck
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventShow:
		return "show"
	case EventCheck:
		return "check"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrUnavailable means there is no session to host a tray icon.
var ErrUnavailable = errors.New("system tray unavailable")

const tooltip = "GAG stock notifier"

// Tray owns the icon and its menu.
type Tray struct {
	log    zerolog.Logger
	events chan Event
	done   chan struct{}

	stopOnce sync.Once
	end      func()
}

// Available reports whether a tray host is likely present.
func Available() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DBUS_SESSION_BUS_ADDRESS") != ""
}

// Start shows the tray icon. It returns ErrUnavailable when there is no
// session bus to talk to.
func Start(log zerolog.Logger) (*Tray, error) {
	if !Available() {
		return nil, ErrUnavailable
	}
	t := newTray(log)

	start, end := systray.RunWithExternalLoop(t.onReady, func() {})
	t.end = end
	start()
	return t, nil
}

func newTray(log zerolog.Logger) *Tray {
	return &Tray{
		log:    log.With().Str("component", "tray").Logger(),
		events: make(chan Event, 8),
		done:   make(chan struct{}),
	}
}

// Events delivers menu clicks. It is never closed.
func (t *Tray) Events() <-chan Event { return t.events }

// Stop removes the icon. Safe to call more than once.
func (t *Tray) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
		if t.end != nil {
			t.end()
		}
	})
}

func (t *Tray) onReady() {
	systray.SetIcon(Icon())
	systray.SetTitle("gagwatch")
	systray.SetTooltip(tooltip)

	show := systray.AddMenuItem("Show", "Open the window")
	check := systray.AddMenuItem("Check now", "Fetch stock immediately")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Save and exit")

	go t.forward(show.ClickedCh, check.ClickedCh, quit.ClickedCh)
	t.log.Debug().Msg("tray ready")
}

func (t *Tray) forward(show, check, quit <-chan struct{}) {
	for {
		select {
		case <-t.done:
			return
		case <-show:
			t.emit(EventShow)
		case <-check:
			t.emit(EventCheck)
		case <-quit:
			t.emit(EventQuit)
		}
	}
}

// emit never blocks; a burst of clicks beyond the buffer is dropped.
func (t *Tray) emit(e Event) {
	select {
	case t.events <- e:
	default:
		t.log.Debug().Str("event", e.String()).Msg("tray event dropped")
	}
}
