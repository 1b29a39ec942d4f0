package models

import (
	"sync"
	"time"
)

// Session tracks what the calculator window has done since it opened. The
// evaluator itself is owned by the controller; this is the observable side
// that status reporting and shutdown logging read.
type Session struct {
	mu          sync.RWMutex
	display     string
	lastError   string
	eventCount  int
	errorCount  int
	startTime   time.Time
	lastEventAt time.Time
}

// SessionStats is a copy of the session counters.
type SessionStats struct {
	Display     string
	LastError   string
	EventCount  int
	ErrorCount  int
	Uptime      time.Duration
	LastEventAt time.Time
}

// NewSession creates an empty session showing "0".
func NewSession() *Session {
	return &Session{
		display:   "0",
		startTime: time.Now(),
	}
}

// RecordEvent stores the display after a successful event and clears the
// last error.
func (s *Session) RecordEvent(display string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.display = display
	s.lastError = ""
	s.eventCount++
	s.lastEventAt = time.Now()
}

// RecordError stores a failed event.
func (s *Session) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = err.Error()
	s.eventCount++
	s.errorCount++
	s.lastEventAt = time.Now()
}

// LastError returns the message of the most recent failure, or "" if the
// last event succeeded.
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Stats returns a snapshot of the counters.
func (s *Session) Stats() SessionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SessionStats{
		Display:     s.display,
		LastError:   s.lastError,
		EventCount:  s.eventCount,
		ErrorCount:  s.errorCount,
		Uptime:      time.Since(s.startTime),
		LastEventAt: s.lastEventAt,
	}
}
