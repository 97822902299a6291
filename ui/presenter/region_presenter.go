package presenter

import (
	"errors"
	"image"
	"log/slog"

	"github.com/soocke/screen-watch-go/domain/region"
	"github.com/soocke/screen-watch-go/domain/selection"
)

// ErrMonitoringActive is returned when the region is edited while running.
var ErrMonitoringActive = errors.New("monitoring is active")

// RegionStore owns the active region.
type RegionStore interface {
	Get() region.Region
	Apply(region.Region)
}

// RegionView shows region fields and user-facing warnings.
type RegionView interface {
	SetRegionFields(r region.Region)
	Warn(title, msg string)
}

// Selector runs the interactive selection overlay.
type Selector interface {
	Select() selection.Outcome
}

// FrameCapturer takes a one-off capture for the initial preview.
type FrameCapturer interface {
	Capture(r region.Region) (*image.RGBA, error)
}

// PreviewShower renders a single image in the preview.
type PreviewShower interface{ Show(img image.Image) }

// ActiveModel reports whether monitoring is running.
type ActiveModel interface{ Active() bool }

// RegionPresenter applies region edits from the numeric fields and from the
// selection overlay.
type RegionPresenter struct {
	store    RegionStore
	active   ActiveModel
	view     RegionView
	selector Selector
	capturer FrameCapturer
	preview  PreviewShower
	status   StatusSink
	logger   *slog.Logger

	// Persist is called with every accepted region.
	Persist func(region.Region)
}

func NewRegionPresenter(store RegionStore, active ActiveModel, view RegionView, selector Selector, capturer FrameCapturer, preview PreviewShower, status StatusSink, logger *slog.Logger) *RegionPresenter {
	return &RegionPresenter{store: store, active: active, view: view, selector: selector, capturer: capturer, preview: preview, status: status, logger: logger}
}

// Apply parses the four edited fields and replaces the region atomically. On
// error the previous region is kept and shown again.
func (p *RegionPresenter) Apply(fields []string) error {
	if p == nil || p.store == nil || p.view == nil {
		return nil
	}
	if p.refuseWhileActive("Please stop monitoring before changing the region.") {
		return ErrMonitoringActive
	}
	r, err := region.Parse(fields)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("invalid region edit", "fields", fields, "error", err)
		}
		p.view.SetRegionFields(p.store.Get())
		p.post("Error: " + err.Error())
		return err
	}
	p.post("Region updated")
	p.commit(r)
	return nil
}

// Select runs the overlay and applies the selected rectangle. A cancelled
// selection leaves everything unchanged.
func (p *RegionPresenter) Select() error {
	if p == nil || p.store == nil || p.view == nil || p.selector == nil {
		return nil
	}
	if p.refuseWhileActive("Please stop monitoring before selecting a new region.") {
		return ErrMonitoringActive
	}
	out := p.selector.Select()
	if !out.OK {
		if p.logger != nil {
			p.logger.Info("region selection cancelled")
		}
		return nil
	}
	p.post("Region selected and ready")
	p.commit(out.Region)
	return nil
}

func (p *RegionPresenter) refuseWhileActive(msg string) bool {
	if p.active == nil || !p.active.Active() {
		return false
	}
	p.view.Warn("Warning", msg)
	return true
}

func (p *RegionPresenter) commit(r region.Region) {
	prev := p.store.Get()
	p.store.Apply(r)
	r = p.store.Get()
	p.view.SetRegionFields(r)
	if p.logger != nil {
		p.logger.Info("region updated", "from", prev.String(), "to", r.String())
	}
	if p.Persist != nil {
		p.Persist(r)
	}
	p.refreshPreview(r)
}

// refreshPreview shows one capture of r while monitoring is stopped.
func (p *RegionPresenter) refreshPreview(r region.Region) {
	if p.capturer == nil || p.preview == nil {
		return
	}
	img, err := p.capturer.Capture(r)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("preview capture failed", "region", r.String(), "error", err)
		}
		p.post("Error: " + err.Error())
		return
	}
	p.preview.Show(img)
}

func (p *RegionPresenter) post(s string) {
	if p.status != nil {
		p.status.Post(s)
	}
}
