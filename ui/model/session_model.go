package model

import (
	"time"
)

// SessionModel tracks how long the current monitoring session has run and the
// monitoring time accumulated across sessions. Presenters poll Values().
// The zero value is ready to use.
type SessionModel struct {
	active      bool
	started     time.Time
	session     time.Duration
	accumulated time.Duration
	sessions    int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model from the monitoring flag observed at now.
func (m *SessionModel) OnTick(monitoring bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case monitoring && !m.active:
		m.active = true
		m.started = now
		m.session = 0
		m.sessions++
	case monitoring:
		m.session = now.Sub(m.started)
	case m.active:
		m.session = now.Sub(m.started)
		m.accumulated += m.session
		m.active = false
	}
}

// Sessions returns how many monitoring sessions have been started.
func (m *SessionModel) Sessions() int {
	if m == nil {
		return 0
	}
	return m.sessions
}

// Values returns the current session duration and the total accumulated duration.
// The total includes the ongoing session when active.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.session
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}
