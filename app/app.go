package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/soocke/screen-watch-go/config"
	"github.com/soocke/screen-watch-go/debug"
	"github.com/soocke/screen-watch-go/ui/theme"
	"github.com/soocke/screen-watch-go/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const tick = 100 * time.Millisecond

type app struct {
	title   string
	c       *AppContainer
	logger  *slog.Logger
	afterID string
}

// NewApp prepares the application around a freshly built container.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	return &app{title: title, c: BuildContainer(cfg, cfgPath, logger), logger: logger}
}

// Start builds the UI and runs the Tk event loop until the window closes.
func (a *app) Start() {
	EnableDPIAwareness(a.logger)
	if a.c.Config.Debug {
		debug.StartGoroutineLogger(context.Background(), 10*time.Second, a.logger)
		debug.StartMemLogger(context.Background(), 10*time.Second, a.logger)
	}
	if err := theme.InitStyles(); err != nil {
		a.logger.Warn("theme unavailable", "error", err)
	}
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)

	a.c.RootView.Build(a.c.Regions.Get(), a.c.Config.PreviewW, a.c.Config.PreviewH, handlers(a))
	a.c.WirePresenters(a.scheduleUpdate)
	a.c.StatusPresenter.Post("Ready")
	a.logger.Info("ui ready",
		"region", a.c.Regions.Get().String(),
		"threshold", a.c.Config.Threshold,
		"interval", a.c.Config.Interval(),
		"backend", a.c.Capturer.Backend(),
	)

	a.scheduleUpdate()
	App.Center().Wait()
}

func handlers(a *app) view.Handlers {
	return view.Handlers{
		OnToggle: func() { a.c.MonitorPresenter.Toggle() },
		OnSelect: func() { _ = a.c.RegionPresenter.Select() },
		OnApply:  func(fields []string) { _ = a.c.RegionPresenter.Apply(fields) },
		OnExit:   a.exitHandler,
	}
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.MonitorPresenter.Stop()
	a.c.PersistRegion(a.c.Regions.Get())
	st := a.c.Monitor.Stats()
	a.logger.Info("exit",
		"changes", st.Changes,
		"captures", st.Captures,
		"failures", st.Failures,
		"sessions", a.c.Session.Sessions(),
	)
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps every presenter tick on the Tk thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
