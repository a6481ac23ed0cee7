package services

import (
	"context"
	"sync"
	"time"

	"wemetstudio/internal/domain"
)

// DefaultNotificationDuration is how long a message stays visible.
const DefaultNotificationDuration = 2 * time.Second

// Notifier is a single-slot transient message. Show replaces the current
// message and restarts the dismissal timer; there is no queue.
type Notifier struct {
	mu       sync.Mutex
	clock    Clock
	duration time.Duration
	state    domain.Notification
	timer    Timer
	gen      uint64
	subs     map[chan domain.Notification]struct{}
}

// NewNotifier returns a hidden notifier. A non-positive duration uses
// DefaultNotificationDuration.
func NewNotifier(clock Clock, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifier{
		clock:    clock,
		duration: duration,
		subs:     make(map[chan domain.Notification]struct{}),
	}
}

// Show makes message visible and schedules its dismissal. A pending dismissal
// from an earlier Show is cancelled first.
func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.state = domain.Notification{Message: message, Visible: true}
	n.timer = n.clock.AfterFunc(n.duration, func() { n.expire(gen) })
	n.publish()
}

// Dismiss hides the current message immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	if !n.state.Visible {
		return
	}
	n.state = domain.Notification{}
	n.publish()
}

// Current returns the notification state.
func (n *Notifier) Current() domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Subscribe streams state changes until ctx is done. The current state is
// delivered first. Slow readers only see the latest state.
func (n *Notifier) Subscribe(ctx context.Context) <-chan domain.Notification {
	ch := make(chan domain.Notification, 1)

	n.mu.Lock()
	n.subs[ch] = struct{}{}
	ch <- n.state
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, ch)
		close(ch)
		n.mu.Unlock()
	}()
	return ch
}

// expire hides the message scheduled by generation gen. A timer that fires
// after a newer Show has no effect.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return
	}
	n.timer = nil
	n.state = domain.Notification{}
	n.publish()
}

// publish must be called with n.mu held.
func (n *Notifier) publish() {
	for ch := range n.subs {
		select {
		case ch <- n.state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- n.state
		}
	}
}
