package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/screen-watch-go/domain/monitor"
	"github.com/soocke/screen-watch-go/ui/images"
)

// SnapshotSource supplies the most recent monitoring snapshot.
type SnapshotSource interface {
	Latest() monitor.Snapshot
	Running() bool
}

// PreviewView describes the UI surface updated by the presenter.
type PreviewView interface {
	UpdatePreview(img image.Image)
	SetChanges(n uint64)
}

// PreviewPresenter copies new snapshots into the preview and the change
// counter. It runs on the UI thread only.
type PreviewPresenter struct {
	source SnapshotSource
	view   PreviewView
	status StatusSink
	logger *slog.Logger
	w, h   int

	lastSeq   uint64
	failing   bool
	lastCount uint64
}

// NewPreviewPresenter constructs a preview presenter rendering at w x h.
func NewPreviewPresenter(source SnapshotSource, view PreviewView, status StatusSink, w, h int, logger *slog.Logger) *PreviewPresenter {
	return &PreviewPresenter{source: source, view: view, status: status, w: w, h: h, logger: logger}
}

// Tick pulls the latest snapshot and pushes it to the view when it is new.
// A failed cycle keeps the previous preview and reports the error.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.source == nil || p.view == nil {
		return
	}
	snap := p.source.Latest()
	if snap.Sequence == 0 || snap.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snap.Sequence
	if snap.Changes != p.lastCount {
		p.lastCount = snap.Changes
		p.view.SetChanges(snap.Changes)
	}
	if snap.Err != nil {
		p.failing = true
		p.post("Error: " + snap.Err.Error())
		return
	}
	if p.failing && p.source.Running() {
		p.failing = false
		p.post("Running")
	}
	if snap.Image != nil {
		p.Show(snap.Image)
	}
}

// Show renders img into the preview at the fixed preview size.
func (p *PreviewPresenter) Show(img image.Image) {
	if p == nil || p.view == nil || img == nil {
		return
	}
	p.view.UpdatePreview(images.Resize(img, p.w, p.h))
}

func (p *PreviewPresenter) post(s string) {
	if p.status != nil {
		p.status.Post(s)
	}
	if p.logger != nil {
		p.logger.Debug("preview status", "status", s, "sequence", p.lastSeq)
	}
}
