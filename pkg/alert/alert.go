// Package alert provides a single-slot transient notification with automatic
// expiry: raising replaces any active alert and restarts the dismissal timer,
// so only the most recent alert is ever visible.
package alert

import (
	"sync"
	"time"
)

// Alert is a dismissible operator notification.
type Alert struct {
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	RaisedAt time.Time `json:"raised_at"`
}

// Notifier owns at most one active alert. Raise schedules an automatic clear
// after the configured TTL and cancels the previous schedule, if any.
type Notifier struct {
	mu     sync.Mutex
	ttl    time.Duration
	active *Alert
	timer  *time.Timer
}

// NewNotifier creates a notifier whose alerts expire after ttl.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Notifier{ttl: ttl}
}

// Raise replaces the active alert and restarts the expiry timer.
func (n *Notifier) Raise(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	a := &Alert{Kind: kind, Message: message, RaisedAt: time.Now()}
	n.active = a
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// Another Raise may have replaced the alert since this timer fired.
		if n.active == a {
			n.active = nil
			n.timer = nil
		}
	})
}

// Active returns the current alert, or nil when none is showing.
func (n *Notifier) Active() *Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.active == nil {
		return nil
	}
	copy := *n.active
	return &copy
}

// Clear dismisses the active alert immediately.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.active = nil
}
