// Package session contains the concurrent actors of a login run (the
// remote login session, the callback tunnel, and the abort watcher) and
// the one-shot events they use to signal the orchestrator.
package session

import "sync"

// Signal is a one-shot, single-writer event. Fire is idempotent; firing
// an already-fired signal is a no-op. Done returns a channel that is
// closed once the signal has fired, so "already raised" and "raised
// while waiting" look identical to a selecting reader.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal returns an unfired signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Fire raises the signal. Safe to call any number of times.
func (s *Signal) Fire() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel closed once the signal has fired.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Fired reports whether the signal has been raised.
func (s *Signal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Events is the full set of one-shot signals raised during a run. Each
// has exactly one writer; the orchestrator is the sole waiter.
type Events struct {
	URLReady     *Signal
	LoginDone    *Signal
	LoginError   *Signal
	TunnelReady  *Signal
	EnterPressed *Signal
}

// NewEvents returns a fresh event set for one run.
func NewEvents() *Events {
	return &Events{
		URLReady:     NewSignal(),
		LoginDone:    NewSignal(),
		LoginError:   NewSignal(),
		TunnelReady:  NewSignal(),
		EnterPressed: NewSignal(),
	}
}
