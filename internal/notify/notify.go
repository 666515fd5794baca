// Package notify delivers user-facing notifications about stock checks.
package notify

import (
	"errors"
	"fmt"
	"sync"
)

// Kind classifies a notification.
type Kind int

const (
	// KindRestock announces a watched item that is in stock.
	KindRestock Kind = iota
	// KindNoMatch reports that a category had no watched items in stock.
	KindNoMatch
	// KindError reports a failed fetch.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRestock:
		return "restock"
	case KindNoMatch:
		return "no-match"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Titles used for non-restock notifications.
const (
	AppTitle   = "GAG Notifier"
	ErrorTitle = "GAG Notifier Error"
)

// Notification is a single message with a title.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// Notifier dispatches notifications. Delivery is best effort.
type Notifier interface {
	Notify(n Notification) error
}

// Multi fans out to several notifiers.
type Multi struct {
	mu        sync.RWMutex
	notifiers []Notifier
}

// NewMulti returns a Multi over the given notifiers. Nil entries are skipped.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}
	for _, n := range notifiers {
		m.Add(n)
	}
	return m
}

// Add appends a notifier.
func (m *Multi) Add(n Notifier) {
	if n == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifiers = append(m.notifiers, n)
}

// Notify sends n to every notifier, even when an earlier one fails.
func (m *Multi) Notify(n Notification) error {
	m.mu.RLock()
	notifiers := m.notifiers
	m.mu.RUnlock()

	var errs []error
	for _, target := range notifiers {
		if err := target.Notify(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
