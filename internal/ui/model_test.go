package ui

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunaracodes/gagwatch/internal/catalog"
	"github.com/lunaracodes/gagwatch/internal/clock"
	"github.com/lunaracodes/gagwatch/internal/prefs"
	"github.com/lunaracodes/gagwatch/internal/state"
	"github.com/lunaracodes/gagwatch/internal/watch"
)

var testNow = time.Date(2025, 7, 1, 12, 58, 30, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.Selection == nil {
		opts.Selection = watch.New()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Fake(testNow)
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	return next.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestToggleWritesThroughSelection(t *testing.T) {
	sel := watch.New()
	m := newTestModel(t, Options{Selection: sel})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	first := catalog.Seeds.Names()[0]
	if sel.Selected(catalog.Seeds, first) {
		t.Fatalf("%s still selected after toggle", first)
	}

	m, _ = press(t, m, keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	second := catalog.Seeds.Names()[1]
	if sel.Selected(catalog.Seeds, second) {
		t.Fatalf("%s still selected after toggle", second)
	}

	m, _ = press(t, m, keyRunes("2"), keyRunes("n"))
	if selected, _ := sel.Count(catalog.Gear); selected != 0 {
		t.Fatalf("gear selected after select-none = %d", selected)
	}
	if selected, total := sel.Count(catalog.Seeds); selected != total-2 {
		t.Fatalf("select-none in gear changed seeds: %d/%d", selected, total)
	}

	_, _ = press(t, m, keyRunes("a"))
	if selected, total := sel.Count(catalog.Gear); selected != total {
		t.Fatalf("gear after select-all = %d/%d", selected, total)
	}
}

func TestQuitNeedsConfirmation(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := press(t, m, keyRunes("q"))
	if isQuit(cmd) {
		t.Fatal("q quit without confirmation")
	}
	if !m.confirmQuit || !strings.Contains(m.View(), "Quit gagwatch?") {
		t.Fatal("confirmation dialog not shown")
	}

	m, cmd = press(t, m, keyRunes("n"))
	if isQuit(cmd) || m.confirmQuit {
		t.Fatal("n did not cancel the dialog")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd = press(t, m, keyRunes("y"))
	if !isQuit(cmd) {
		t.Fatal("y did not quit")
	}
	if OutcomeOf(m) != OutcomeQuit {
		t.Fatalf("outcome = %v, want OutcomeQuit", OutcomeOf(m))
	}
}

func TestMinimize(t *testing.T) {
	m := newTestModel(t, Options{CanMinimize: false})
	m, cmd := press(t, m, keyRunes("m"))
	if isQuit(cmd) {
		t.Fatal("minimize closed the window without a tray")
	}
	if m.notice == "" {
		t.Fatal("no notice shown when tray is unavailable")
	}

	m = newTestModel(t, Options{CanMinimize: true})
	m, cmd = press(t, m, keyRunes("m"))
	if !isQuit(cmd) || OutcomeOf(m) != OutcomeMinimize {
		t.Fatalf("minimize: quit=%v outcome=%v", isQuit(cmd), OutcomeOf(m))
	}
}

func TestQuitMsgFromCaller(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := press(t, m, QuitMsg{})
	if !isQuit(cmd) || OutcomeOf(m) != OutcomeQuit {
		t.Fatal("QuitMsg did not close the window")
	}
}

func TestTickQuitsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newTestModel(t, Options{Context: ctx})
	cancel()
	_, cmd := press(t, m, tickMsg(testNow))
	if !isQuit(cmd) {
		t.Fatal("tick after cancel did not quit")
	}
}

func TestCheckNowRunsInCommand(t *testing.T) {
	var calls atomic.Int32
	store := &state.Store{}
	m := newTestModel(t, Options{
		Store: store,
		CheckNow: func(context.Context) {
			calls.Add(1)
			store.AppendLog(state.LogEntry{At: testNow, Category: catalog.Seeds, Item: "Carrot", Text: "Carrot restocked!"})
		},
	})

	m, cmd := press(t, m, keyRunes("c"))
	if calls.Load() != 0 {
		t.Fatal("check ran inside Update")
	}
	if !m.checking || cmd == nil {
		t.Fatal("check not started")
	}

	// A second press while running is ignored.
	if _, again := press(t, m, keyRunes("c")); again != nil {
		t.Fatal("second check started while one is running")
	}

	msg := cmd()
	if calls.Load() != 1 {
		t.Fatalf("check calls = %d, want 1", calls.Load())
	}
	m, _ = press(t, m, msg)
	if m.checking {
		t.Fatal("still checking after done message")
	}
	if len(m.logLines) != 1 || m.logLines[0].Text != "Carrot restocked!" {
		t.Fatalf("log not refreshed: %+v", m.logLines)
	}
}

func TestHeaderShowsCountdownAndErrors(t *testing.T) {
	store := &state.Store{}
	store.SetCountdown(90 * time.Second)
	m := newTestModel(t, Options{Store: store})
	m, _ = press(t, m, snapshotMsg(store.Snapshot()))

	if header := m.renderHeader(); !strings.Contains(header, "Next check in: 90s") {
		t.Fatalf("header missing countdown: %q", header)
	}

	store.SetFetchError(catalog.Gear, context.DeadlineExceeded)
	m, _ = press(t, m, snapshotMsg(store.Snapshot()))
	if header := m.renderHeader(); !strings.Contains(header, "deadline exceeded") {
		t.Fatalf("header missing fetch error: %q", header)
	}
}

func TestChecklistShowsRestockText(t *testing.T) {
	store := &state.Store{}
	store.RecordRestock("Carrot", testNow.Add(-10*time.Minute))
	store.RecordRestock("Carrot", testNow.Add(-5*time.Minute))
	store.RecordRestock("Tomato", testNow.Add(-time.Minute))

	m := newTestModel(t, Options{Store: store})
	m, _ = press(t, m, snapshotMsg(store.Snapshot()))

	out := m.View()
	for _, want := range []string{"Carrot", "5m ago (Avg: 5m)", "New item!", "Seeds  25/25 watched"} {
		if !strings.Contains(out, want) {
			t.Fatalf("checklist missing %q", want)
		}
	}
}

func TestLogViewShowsRecentEntries(t *testing.T) {
	store := &state.Store{}
	for i := 0; i < 60; i++ {
		store.AppendLog(state.LogEntry{At: testNow, Category: catalog.Gear, Item: "Trowel", Text: "Trowel restocked!"})
	}
	m := newTestModel(t, Options{Store: store})
	m, _ = press(t, m, keyRunes("3"), snapshotMsg(store.Snapshot()))

	if m.currentView != ViewLog {
		t.Fatalf("view = %v, want log", m.currentView)
	}
	if len(m.logLines) != state.LogDisplayLimit {
		t.Fatalf("log lines = %d, want %d", len(m.logLines), state.LogDisplayLimit)
	}
	if out := m.View(); !strings.Contains(out, "last 50 of 60") {
		t.Fatal("log title does not mention the display limit")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.follow {
		t.Fatal("space did not pause follow mode")
	}
}

func TestTabCyclesViews(t *testing.T) {
	m := newTestModel(t, Options{})
	want := []View{ViewGear, ViewLog, ViewSeeds}
	for _, v := range want {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.currentView != v {
			t.Fatalf("view = %v, want %v", m.currentView, v)
		}
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.currentView != ViewLog {
		t.Fatalf("shift+tab view = %v, want log", m.currentView)
	}
}

func TestCycleThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path, ThemeName: "Classic"})

	m, _ = press(t, m, keyRunes("T"))
	if m.theme.Name != "Garden" {
		t.Fatalf("theme = %q, want Garden", m.theme.Name)
	}
	p, err := prefs.Load(path)
	if err != nil || p.Theme != "Garden" {
		t.Fatalf("saved prefs = %+v, %v", p, err)
	}
}

func TestViewRememberedAcrossWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path, CanMinimize: true})

	m, _ = press(t, m, keyRunes("2"), keyRunes("m"))
	if OutcomeOf(m) != OutcomeMinimize {
		t.Fatalf("outcome = %v, want minimize", OutcomeOf(m))
	}
	p, err := prefs.Load(path)
	if err != nil || p.View != "gear" || p.Theme != DefaultThemeName {
		t.Fatalf("saved prefs = %+v, %v", p, err)
	}

	reopened := newTestModel(t, Options{PrefsPath: path, ViewName: p.View})
	if reopened.currentView != ViewGear {
		t.Fatalf("reopened view = %v, want gear", reopened.currentView)
	}
	if unknown := newTestModel(t, Options{ViewName: "pets"}); unknown.currentView != ViewSeeds {
		t.Fatalf("unknown stored view opened %v", unknown.currentView)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(t, m, keyRunes("?"))
	if !strings.Contains(m.View(), ProjectURL) {
		t.Fatal("help overlay missing project URL")
	}
	m, _ = press(t, m, keyRunes("x"))
	if m.showHelp {
		t.Fatal("any key should close help")
	}
}
