package model

import (
	"sync/atomic"
)

// MonitorModel tracks whether monitoring is active as seen by the UI. The
// zero value is stopped and usable. Atomic because button callbacks and
// presenter ticks may interleave with background logging.
type MonitorModel struct {
	active atomic.Bool
	status atomic.Pointer[string]
}

// NewMonitorModel returns a stopped model with status "Ready".
func NewMonitorModel() *MonitorModel {
	m := &MonitorModel{}
	m.SetStatus("Ready")
	return m
}

// Active reports whether monitoring is running.
func (m *MonitorModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the running flag.
func (m *MonitorModel) SetActive(b bool) {
	if m == nil {
		return
	}
	m.active.Store(b)
}

// Status returns the last status text.
func (m *MonitorModel) Status() string {
	if m == nil {
		return ""
	}
	if s := m.status.Load(); s != nil {
		return *s
	}
	return ""
}

// SetStatus records the status text shown to the user.
func (m *MonitorModel) SetStatus(s string) {
	if m == nil {
		return
	}
	m.status.Store(&s)
}
