package model

import (
	"testing"
	"time"
)

func TestSessionModel_MonitoringLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	session, total := m.Values()
	if session != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s session and total; got session=%v total=%v", session, total)
	}

	m.OnTick(false, base.Add(6*time.Second))
	session, total = m.Values()
	if session != 6*time.Second || total != 6*time.Second {
		t.Fatalf("stop should finalize at 6s; got session=%v total=%v", session, total)
	}

	// Idle ticks change nothing.
	m.OnTick(false, base.Add(20*time.Second))
	if s2, t2 := m.Values(); s2 != session || t2 != total {
		t.Fatalf("idle tick changed durations: session=%v total=%v", s2, t2)
	}

	m.OnTick(true, base.Add(30*time.Second))
	if s, _ := m.Values(); s != 0 {
		t.Fatalf("new session should start at zero, got %v", s)
	}
	m.OnTick(true, base.Add(33*time.Second))
	s3, t3 := m.Values()
	if s3 != 3*time.Second || t3 != 9*time.Second {
		t.Fatalf("second session expected 3s/9s got session=%v total=%v", s3, t3)
	}
	if m.Sessions() != 2 {
		t.Fatalf("expected 2 sessions, got %d", m.Sessions())
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, time.Now())
	if s, tot := m.Values(); s != 0 || tot != 0 || m.Sessions() != 0 {
		t.Fatalf("nil model should report zero values")
	}
}

func TestMonitorModel(t *testing.T) {
	m := NewMonitorModel()
	if m.Active() || m.Status() != "Ready" {
		t.Fatalf("unexpected initial state active=%v status=%q", m.Active(), m.Status())
	}
	m.SetActive(true)
	m.SetStatus("Running")
	if !m.Active() || m.Status() != "Running" {
		t.Fatalf("state not stored active=%v status=%q", m.Active(), m.Status())
	}
	var zero MonitorModel
	if zero.Active() || zero.Status() != "" {
		t.Fatalf("zero value should be stopped with empty status")
	}
}
