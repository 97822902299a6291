package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates from the Tk
// timer. The zero value is usable (methods are nil-safe).
type Loop struct {
	Monitor  *MonitorPresenter
	Preview  *PreviewPresenter
	Status   *StatusPresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(monitor *MonitorPresenter, preview *PreviewPresenter, status *StatusPresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Monitor: monitor, Preview: preview, Status: status, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	l.Monitor.Tick()
	l.Preview.Tick()
	// Status last so posts from this tick are flushed immediately.
	l.Status.Tick()
	l.Session.Tick(now)
	if l.Schedule != nil {
		l.Schedule()
	}
}
