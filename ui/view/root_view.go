package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/screen-watch-go/domain/region"
	"github.com/soocke/screen-watch-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on user actions.
type Handlers struct {
	OnToggle func()
	OnSelect func()
	OnApply  func(fields []string)
	OnExit   func()
}

// RootView composes the top-level application layout. It implements the
// view contracts of every presenter.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Preview Preview
	Region  RegionPanel
	Status  StatusBar

	// Widgets
	ToggleBtn *TButtonWidget
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: preview, controls, status rows.
func (rv *RootView) Build(initial region.Region, previewW, previewH int, h Handlers) {
	if rv == nil {
		return
	}
	rv.Preview = NewPreview(0, previewW, previewH)

	controls := TFrame()
	Grid(controls, Row(2), Column(0), Columnspan(2), Pady("2m"))
	rv.ToggleBtn = TButton(Txt("Start"), Style(theme.StylePrimaryButton), Command(h.OnToggle))
	Grid(rv.ToggleBtn, In(controls), Row(0), Column(0), Padx("1m"))
	selectBtn := TButton(Txt("Select Region"), Command(h.OnSelect))
	Grid(selectBtn, In(controls), Row(0), Column(1), Padx("1m"))
	rv.Region = NewRegionPanel(controls, 2, initial, h.OnApply)
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(h.OnExit))
	Grid(exitBtn, In(controls), Row(0), Column(3), Padx("1m"))

	rv.Status = NewStatusBar(3)
}

// SetRunning switches the toggle button caption.
func (rv *RootView) SetRunning(running bool) {
	if rv == nil || rv.ToggleBtn == nil {
		return
	}
	if running {
		rv.ToggleBtn.Configure(Txt("Stop"))
		return
	}
	rv.ToggleBtn.Configure(Txt("Start"))
}

// SetStatusLabel updates the status text.
func (rv *RootView) SetStatusLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetChanges updates the change counter.
func (rv *RootView) SetChanges(n uint64) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetChanges(n)
	}
}

// SetSession updates session and total monitoring durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(session, total)
	}
}

// UpdatePreview proxies to the preview subview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

// SetRegionFields shows r in the numeric fields.
func (rv *RootView) SetRegionFields(r region.Region) {
	if rv != nil && rv.Region != nil {
		rv.Region.SetFields(r)
	}
}

// Warn shows a modal warning dialog.
func (rv *RootView) Warn(title, msg string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Warn("user warning", "msg", msg)
	}
	Warn(title, msg)
}

// Warn shows a modal warning dialog parented to the main window.
func Warn(title, msg string) {
	MessageBox(Icon("warning"), Title(title), Msg(msg), Type("ok"), Parent(App))
}
