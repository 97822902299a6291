package presenter

// MonitorModel provides the UI-side running flag.
type MonitorModel interface {
	Active() bool
	SetActive(bool)
}

// LifecycleContract narrows what the presenter needs from the monitor service.
type LifecycleContract interface {
	Start() bool
	Stop()
	Running() bool
}

// MonitorView updates UI elements affected by starting or stopping.
type MonitorView interface {
	SetRunning(bool)
}

// StatusSink accepts status text for display.
type StatusSink interface{ Post(string) }

// MonitorPresenter owns presentation logic for the Start/Stop button.
type MonitorPresenter struct {
	model   MonitorModel
	service LifecycleContract
	view    MonitorView
	status  StatusSink
}

func NewMonitorPresenter(model MonitorModel, service LifecycleContract, view MonitorView, status StatusSink) *MonitorPresenter {
	return &MonitorPresenter{model: model, service: service, view: view, status: status}
}

// Start launches monitoring. Idempotent.
func (p *MonitorPresenter) Start() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if p.model.Active() {
		return
	}
	p.service.Start()
	p.model.SetActive(true)
	p.view.SetRunning(true)
	p.post("Running")
}

// Stop halts monitoring. Idempotent.
func (p *MonitorPresenter) Stop() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if !p.model.Active() {
		return
	}
	p.service.Stop()
	p.model.SetActive(false)
	p.view.SetRunning(false)
	p.post("Stopped")
}

// Toggle flips the running state delegating to Start/Stop.
func (p *MonitorPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Active() {
		p.Stop()
		return
	}
	p.Start()
}

// Tick reconciles the UI flag with a loop that ended on its own.
func (p *MonitorPresenter) Tick() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if p.model.Active() && !p.service.Running() {
		p.model.SetActive(false)
		p.view.SetRunning(false)
		p.post("Error: monitoring stopped unexpectedly")
	}
}

func (p *MonitorPresenter) post(s string) {
	if p.status != nil {
		p.status.Post(s)
	}
}
