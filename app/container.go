package app

import (
	"log/slog"

	"github.com/soocke/screen-watch-go/config"
	"github.com/soocke/screen-watch-go/domain/capture"
	"github.com/soocke/screen-watch-go/domain/detect"
	"github.com/soocke/screen-watch-go/domain/monitor"
	"github.com/soocke/screen-watch-go/domain/region"
	"github.com/soocke/screen-watch-go/ui/model"
	"github.com/soocke/screen-watch-go/ui/presenter"
	"github.com/soocke/screen-watch-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Regions  *region.Store
	Capturer *capture.ScreenCapturer
	Monitor  *monitor.Service

	MonitorModel *model.MonitorModel
	Session      *model.SessionModel

	RootView *view.RootView
	Selector *view.RegionSelector

	// Presenters
	MonitorPresenter *presenter.MonitorPresenter
	RegionPresenter  *presenter.RegionPresenter
	PreviewPresenter *presenter.PreviewPresenter
	StatusPresenter  *presenter.StatusPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// RegionFromConfig returns the persisted region.
func RegionFromConfig(cfg *config.Config) region.Region {
	return region.Region{X: cfg.RegionX, Y: cfg.RegionY, Width: cfg.RegionW, Height: cfg.RegionH}
}

// NewMonitor builds the capture backend and monitoring service described by cfg.
func NewMonitor(cfg *config.Config, regions monitor.RegionSource, logger *slog.Logger) (*capture.ScreenCapturer, *monitor.Service) {
	capt := capture.New(cfg.CaptureBackend, logger)
	svc := monitor.NewService(capt, regions, detect.New(cfg.Threshold), monitor.Options{
		Interval:       cfg.Interval(),
		StatsInterval:  cfg.StatsInterval(),
		PerceptualHash: true,
	}, logger)
	return capt, svc
}

// BuildContainer constructs all components. No Tk calls are made here.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Regions = region.NewStore(RegionFromConfig(cfg))
	c.Capturer, c.Monitor = NewMonitor(cfg, c.Regions, logger)
	c.MonitorModel = model.NewMonitorModel()
	c.Session = model.NewSessionModel()
	c.RootView = view.NewRootView(logger)
	c.Selector = &view.RegionSelector{Bounds: capture.VirtualBounds, Logger: logger}
	return c
}

// WirePresenters connects presenters to the built root view. schedule is
// invoked at the end of every loop tick.
func (c *AppContainer) WirePresenters(schedule func()) {
	rv := c.RootView
	c.StatusPresenter = presenter.NewStatusPresenter(c.MonitorModel, rv)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Monitor, rv, c.StatusPresenter, c.Config.PreviewW, c.Config.PreviewH, c.Logger)
	c.MonitorPresenter = presenter.NewMonitorPresenter(c.MonitorModel, c.Monitor, rv, c.StatusPresenter)
	c.RegionPresenter = presenter.NewRegionPresenter(c.Regions, c.MonitorModel, rv, c.Selector, c.Capturer, c.PreviewPresenter, c.StatusPresenter, c.Logger)
	c.RegionPresenter.Persist = c.PersistRegion
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.MonitorModel, rv)
	c.Loop = presenter.NewLoop(c.MonitorPresenter, c.PreviewPresenter, c.StatusPresenter, c.SessionPresenter, schedule)
}

// PersistRegion writes r into the config file.
func (c *AppContainer) PersistRegion(r region.Region) {
	c.Config.RegionX, c.Config.RegionY = r.X, r.Y
	c.Config.RegionW, c.Config.RegionH = r.Width, r.Height
	if c.ConfigPath == "" {
		return
	}
	if err := c.Config.Save(c.ConfigPath); err != nil {
		c.Logger.Error("config save failed", "path", c.ConfigPath, "error", err)
		return
	}
	c.Logger.Debug("config saved", "path", c.ConfigPath)
}
