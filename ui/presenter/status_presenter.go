package presenter

import (
	"strings"
	"sync"
)

// StatusModel stores the most recent status text.
type StatusModel interface{ SetStatus(string) }

// StatusView sets the status label in the view.
type StatusView interface{ SetStatusLabel(string) }

// StatusPresenter queues status changes and reflects the latest one on Tick,
// so posts from any goroutine reach the label only on the UI thread.
type StatusPresenter struct {
	model   StatusModel
	view    StatusView
	mu      sync.Mutex
	latest  string
	pending []string
}

func NewStatusPresenter(model StatusModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{model: model, view: view}
}

// Post queues a status text. Texts starting with "Error:" are shown as is,
// everything else gets a "Status: " prefix.
func (p *StatusPresenter) Post(s string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, s)
	p.mu.Unlock()
}

// Tick flushes the queue, updating the view with the most recent status.
func (p *StatusPresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if last == p.latest {
		return
	}
	p.latest = last
	if p.model != nil {
		p.model.SetStatus(last)
	}
	p.view.SetStatusLabel(FormatStatus(last))
}

// FormatStatus renders a status for the label.
func FormatStatus(s string) string {
	if strings.HasPrefix(s, "Error:") {
		return s
	}
	return "Status: " + s
}
