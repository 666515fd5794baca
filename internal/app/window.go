package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lunaracodes/gagwatch/internal/tray"
	"github.com/lunaracodes/gagwatch/internal/ui"
)

// windowHost tracks the window that is currently open, if any. Each window
// session is its own tea.Program; minimizing ends the program and Show
// starts a new one.
type windowHost struct {
	mu       sync.Mutex
	prog     *tea.Program
	quitting bool
	show     chan struct{}

	// newProgram is swapped in tests.
	newProgram func(ui.Options) *tea.Program
}

func (h *windowHost) set(p *tea.Program) {
	h.mu.Lock()
	h.prog = p
	h.mu.Unlock()
}

// release forgets the finished program and reports whether a quit was
// requested while it ran. Both happen under one lock so a concurrent
// requestQuit either sees no window or is seen here.
func (h *windowHost) release() (quitting bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prog = nil
	return h.quitting
}

func (h *windowHost) open() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.prog != nil
}

// send delivers msg to the open window. It reports false when the app is
// minimized.
func (h *windowHost) send(msg tea.Msg) bool {
	h.mu.Lock()
	p := h.prog
	h.mu.Unlock()
	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// requestQuit marks the session as ending and closes the open window. It
// reports false when no window is open; the caller then ends the session
// itself. The flag is set before the send, so a window that finishes in
// between still ends the loop.
func (h *windowHost) requestQuit() bool {
	h.mu.Lock()
	h.quitting = true
	h.mu.Unlock()
	return h.send(ui.QuitMsg{})
}

// requestShow asks the loop to reopen the window. Repeated requests while
// one is pending collapse into one.
func (h *windowHost) requestShow() {
	select {
	case h.show <- struct{}{}:
	default:
	}
}

// loop runs window sessions until one ends with OutcomeQuit or ctx is
// cancelled while minimized.
func (h *windowHost) loop(ctx context.Context, opts ui.Options, log zerolog.Logger) error {
	newProgram := h.newProgram
	if newProgram == nil {
		newProgram = func(o ui.Options) *tea.Program { return ui.NewProgram(o) }
	}

	for {
		prog := newProgram(opts)
		h.set(prog)
		final, err := prog.Run()
		quitting := h.release()
		if errors.Is(err, tea.ErrInterrupted) {
			log.Info().Msg("window interrupted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("run window: %w", err)
		}
		if quitting || ctx.Err() != nil || ui.OutcomeOf(final) == ui.OutcomeQuit {
			return nil
		}

		log.Info().Msg("minimized to tray")
		select {
		case <-ctx.Done():
			return nil
		case <-h.show:
			log.Info().Msg("window restored")
		}
	}
}

// forwardTray turns tray clicks into window messages, background checks, or
// a shutdown when no window is open to confirm it.
func forwardTray(ctx context.Context, events <-chan tray.Event, host *windowHost, checker *Checker, cancel context.CancelFunc, log zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			log.Debug().Str("event", ev.String()).Msg("tray event")
			switch ev {
			case tray.EventShow:
				if !host.open() {
					host.requestShow()
				}
			case tray.EventCheck:
				go checker.CheckAll(ctx)
			case tray.EventQuit:
				if !host.requestQuit() {
					cancel()
				}
			}
		}
	}
}
