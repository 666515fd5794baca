package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lunaracodes/gagwatch/internal/catalog"
	"github.com/lunaracodes/gagwatch/internal/clock"
	"github.com/lunaracodes/gagwatch/internal/prefs"
	"github.com/lunaracodes/gagwatch/internal/state"
	"github.com/lunaracodes/gagwatch/internal/watch"
)

// View represents the current active view.
type View int

const (
	ViewSeeds View = iota
	ViewGear
	ViewLog
)

var viewOrder = []View{ViewSeeds, ViewGear, ViewLog}

// name is the key stored in prefs.
func (v View) name() string {
	switch v {
	case ViewGear:
		return "gear"
	case ViewLog:
		return "log"
	default:
		return "seeds"
	}
}

// parseView maps a stored name back to a View; unknown names open Seeds.
func parseView(name string) View {
	for _, v := range viewOrder {
		if v.name() == name {
			return v
		}
	}
	return ViewSeeds
}

func (v View) title() string {
	switch v {
	case ViewSeeds:
		return "Seeds"
	case ViewGear:
		return "Gear"
	default:
		return "Notification Log"
	}
}

func (v View) category() (catalog.Category, bool) {
	switch v {
	case ViewSeeds:
		return catalog.Seeds, true
	case ViewGear:
		return catalog.Gear, true
	default:
		return 0, false
	}
}

// Outcome tells the caller why the window closed.
type Outcome int

const (
	// OutcomeQuit means the user confirmed quitting the application.
	OutcomeQuit Outcome = iota
	// OutcomeMinimize means the window was sent to the tray.
	OutcomeMinimize
)

const (
	snapshotInterval = time.Second
	logInterval      = 5 * time.Second
)

// Options configures the window.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Selection   *watch.Selection
	CheckNow    func(ctx context.Context) // runs a full check; may block
	Clock       clock.Clock
	ThemeName   string
	ViewName    string // view to open on, as stored in prefs
	PrefsPath   string
	CanMinimize bool
	Log         zerolog.Logger
}

// Model is the root window state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	store       *state.Store
	selection   *watch.Selection
	checkNow    func(ctx context.Context)
	clock       clock.Clock
	prefsPath   string
	canMinimize bool
	log         zerolog.Logger
	keys        keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	notice      string

	// Data state
	snapshot state.Snapshot
	checking bool

	// Checklist state
	cursor map[catalog.Category]int

	// Log state
	logViewport viewport.Model
	logLines    []state.LogEntry
	follow      bool

	// Overlays
	showHelp    bool
	confirmQuit bool

	outcome Outcome
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}
	sel := opts.Selection
	if sel == nil {
		sel = watch.New()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		store:       store,
		selection:   sel,
		checkNow:    opts.CheckNow,
		clock:       clk,
		prefsPath:   prefsPath,
		canMinimize: opts.CanMinimize,
		log:         opts.Log.With().Str("component", "ui").Logger(),
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: parseView(opts.ViewName),
		cursor:      make(map[catalog.Category]int),
		follow:      true,
		outcome:     OutcomeQuit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(snapshotInterval),
		logTickCmd(logInterval),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		if m.ctx.Err() != nil {
			return m.quit(OutcomeQuit)
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(snapshotInterval))

	case logTickMsg:
		m.refreshLog()
		return m, logTickCmd(logInterval)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case checkDoneMsg:
		m.checking = false
		m.notice = ""
		m.refreshLog()
		return m, fetchSnapshotCmd(m.store)

	case QuitMsg:
		return m.quit(OutcomeQuit)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.confirmQuit {
		return m.renderConfirmQuit()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit {
		switch {
		case key.Matches(msg, m.keys.Yes):
			return m.quit(OutcomeQuit)
		case key.Matches(msg, m.keys.No):
			m.confirmQuit = false
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.confirmQuit = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Minimize):
		if !m.canMinimize {
			m.notice = "Tray unavailable"
			return m, nil
		}
		return m.quit(OutcomeMinimize)

	case key.Matches(msg, m.keys.CheckNow):
		return m.startCheck()

	case key.Matches(msg, m.keys.Tab):
		m.switchView(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.switchView(-1)
		return m, nil

	case key.Matches(msg, m.keys.ViewSeeds):
		m.currentView = ViewSeeds
		return m, nil

	case key.Matches(msg, m.keys.ViewGear):
		m.currentView = ViewGear
		return m, nil

	case key.Matches(msg, m.keys.ViewLog):
		m.currentView = ViewLog
		m.refreshLog()
		return m, nil
	}

	if cat, ok := m.currentView.category(); ok {
		return m.handleChecklistKey(cat, msg)
	}
	return m.handleLogKey(msg)
}

func (m *Model) switchView(step int) {
	idx := 0
	for i, v := range viewOrder {
		if v == m.currentView {
			idx = i
		}
	}
	idx = (idx + step + len(viewOrder)) % len(viewOrder)
	m.currentView = viewOrder[idx]
	if m.currentView == ViewLog {
		m.refreshLog()
	}
}

func (m Model) startCheck() (tea.Model, tea.Cmd) {
	if m.checkNow == nil || m.checking {
		return m, nil
	}
	m.checking = true
	m.notice = "Checking stock..."
	return m, runCheckCmd(m.ctx, m.checkNow)
}

func (m Model) quit(outcome Outcome) (tea.Model, tea.Cmd) {
	m.outcome = outcome
	m.confirmQuit = false
	m.savePrefs()
	return m, tea.Quit
}

// savePrefs stores the theme and the open view. Failures are logged only.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, View: m.currentView.name()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Msg("save preferences")
	}
}

// Outcome returns why the window closed.
func (m Model) Outcome() Outcome { return m.outcome }

// renderMain renders header, command bar and the active view.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	if cat, ok := m.currentView.category(); ok {
		b.WriteString(m.renderChecklist(cat))
	} else {
		b.WriteString(m.renderLog())
	}
	return b.String()
}

// Messages

// QuitMsg asks the window to close and the application to exit.
type QuitMsg struct{}

type tickMsg time.Time

type logTickMsg time.Time

type snapshotMsg state.Snapshot

type checkDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func logTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func runCheckCmd(ctx context.Context, check func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		check(ctx)
		return checkDoneMsg{}
	}
}

// NewProgram builds the Bubble Tea program for one window session.
func NewProgram(opts Options, progOpts ...tea.ProgramOption) *tea.Program {
	all := append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	return tea.NewProgram(New(opts), all...)
}

// OutcomeOf extracts the outcome from the final model returned by Run.
func OutcomeOf(final tea.Model) Outcome {
	if m, ok := final.(Model); ok {
		return m.outcome
	}
	return OutcomeQuit
}
