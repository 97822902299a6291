package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows status text, the change counter and monitoring durations.
type StatusBar interface {
	SetStatus(text string)
	SetChanges(n uint64)
	SetSession(session, total time.Duration)
}

type statusBar struct {
	statusLbl  *TLabelWidget
	changesLbl *TLabelWidget
	sessionLbl *TLabelWidget
	totalLbl   *TLabelWidget
}

// NewStatusBar creates the status rows starting at row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		statusLbl:  TLabel(Txt("Status: Ready")),
		changesLbl: TLabel(Txt("Changes detected: 0")),
		sessionLbl: TLabel(Txt("Session: 00:00"), Width(14)),
		totalLbl:   TLabel(Txt("Total: 00:00"), Width(14)),
	}
	Grid(s.statusLbl, Row(row), Column(0), Columnspan(2), Pady("0.5m"))
	Grid(s.changesLbl, Row(row+1), Column(0), Columnspan(2))
	Grid(s.sessionLbl, Row(row+2), Column(0), Sticky("e"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row+2), Column(1), Sticky("w"), Padx("0.2m"))
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

func (s *statusBar) SetChanges(n uint64) {
	if s == nil || s.changesLbl == nil {
		return
	}
	s.changesLbl.Configure(Txt(fmt.Sprintf("Changes detected: %d", n)))
}

func (s *statusBar) SetSession(session, total time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + formatMMSS(session)))
	s.totalLbl.Configure(Txt("Total: " + formatMMSS(total)))
}

func formatMMSS(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
