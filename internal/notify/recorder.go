package notify

import (
	"fmt"
	"io"
	"sync"
)

// Recorder keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

// Notify records n.
func (r *Recorder) Notify(n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

// Sent returns a copy of the recorded notifications in order.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Count returns how many notifications of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, sent := range r.sent {
		if sent.Kind == k {
			n++
		}
	}
	return n
}

// Printer writes notifications as lines, for one-shot runs.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Notify writes "title: message".
func (p *Printer) Notify(n Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprintf(p.w, "%s: %s\n", n.Title, n.Message); err != nil {
		return fmt.Errorf("print notification: %w", err)
	}
	return nil
}
