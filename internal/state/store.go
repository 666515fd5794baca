package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

const (
	// MaxRestockHistory is how many restock instants are kept per item.
	MaxRestockHistory = 5

	// LogDisplayLimit is how many log entries are ever exposed for display.
	LogDisplayLimit = 50
)

// LogEntry is one line of the notification log.
type LogEntry struct {
	At       time.Time
	Category catalog.Category
	Item     string
	Text     string
}

// Line renders the entry as "[15:04:05] text".
func (e LogEntry) Line() string {
	return fmt.Sprintf("[%s] %s", e.At.Format("15:04:05"), e.Text)
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Countdown    time.Duration
	HasCountdown bool
	Checking     bool
	LastCheck    time.Time
	FetchErrors  map[catalog.Category]error
	Log          []LogEntry // last LogDisplayLimit entries, oldest first
	LogTotal     int
}

// Store coordinates concurrent access to history, log and scheduler state.
type Store struct {
	mu           sync.RWMutex
	history      map[string][]time.Time
	log          []LogEntry
	countdown    time.Duration
	hasCountdown bool
	checking     bool
	lastCheck    time.Time
	fetchErrors  map[catalog.Category]error
}

// RecordRestock appends at to the item's history, keeping only the most
// recent MaxRestockHistory instants.
func (s *Store) RecordRestock(name string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.history == nil {
		s.history = make(map[string][]time.Time)
	}
	h := append(s.history[name], at)
	if len(h) > MaxRestockHistory {
		h = append([]time.Time(nil), h[len(h)-MaxRestockHistory:]...)
	}
	s.history[name] = h
}

// History returns a copy of the item's restock instants, oldest first.
func (s *Store) History(name string) []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTimes(s.history[name])
}

// RestockText formats the item's history relative to now. ok is false for
// items that have never been seen in stock.
func (s *Store) RestockText(name string, now time.Time) (text string, ok bool) {
	h := s.History(name)
	if len(h) == 0 {
		return "", false
	}
	return FormatRestock(h, now), true
}

// AppendLog adds an entry to the notification log.
func (s *Store) AppendLog(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, entry)
}

// RecentLog returns up to n of the newest entries, oldest first. n is
// capped at LogDisplayLimit.
func (s *Store) RecentLog(n int) []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tail(s.log, n)
}

// SetCountdown publishes the time left until the next scheduled check.
func (s *Store) SetCountdown(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdown = d
	s.hasCountdown = true
}

// BeginCheck marks a fetch+notify pass as running.
func (s *Store) BeginCheck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checking = true
}

// FinishCheck marks the pass as done at the given time.
func (s *Store) FinishCheck(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checking = false
	s.lastCheck = at
}

// SetFetchError records the last fetch outcome for a category. A nil err
// clears it.
func (s *Store) SetFetchError(c catalog.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fetchErrors, c)
		return
	}
	if s.fetchErrors == nil {
		s.fetchErrors = make(map[catalog.Category]error)
	}
	s.fetchErrors[c] = err
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Countdown:    s.countdown,
		HasCountdown: s.hasCountdown,
		Checking:     s.checking,
		LastCheck:    s.lastCheck,
		Log:          tail(s.log, LogDisplayLimit),
		LogTotal:     len(s.log),
	}
	if len(s.fetchErrors) > 0 {
		snap.FetchErrors = make(map[catalog.Category]error, len(s.fetchErrors))
		for c, err := range s.fetchErrors {
			snap.FetchErrors[c] = err
		}
	}
	return snap
}

func tail(entries []LogEntry, n int) []LogEntry {
	if n > LogDisplayLimit {
		n = LogDisplayLimit
	}
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]LogEntry, len(entries))
	copy(out, entries)
	return out
}

func cloneTimes(ts []time.Time) []time.Time {
	if len(ts) == 0 {
		return nil
	}
	dup := make([]time.Time, len(ts))
	copy(dup, ts)
	return dup
}
