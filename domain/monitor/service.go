// Package monitor runs the capture and compare polling loop.
package monitor

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/screen-watch-go/domain/capture"
	"github.com/soocke/screen-watch-go/domain/detect"
)

const (
	defaultInterval      = time.Second
	defaultStatsInterval = 5 * time.Second
)

// Options configures a Service.
type Options struct {
	Interval      time.Duration
	StatsInterval time.Duration
	// PerceptualHash adds a difference-hash distance to change log lines.
	PerceptualHash bool
}

// Service owns the single background polling goroutine. The change counter
// only grows and survives Stop/Start cycles.
type Service struct {
	capturer capture.Capturer
	regions  RegionSource
	detector detect.Detector
	opts     Options
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
	session string

	latest       atomic.Pointer[Snapshot]
	changes      atomic.Uint64
	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

var _ Controller = (*Service)(nil)

// NewService constructs a stopped Service.
func NewService(c capture.Capturer, regions RegionSource, d detect.Detector, opts Options, logger *slog.Logger) *Service {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.StatsInterval <= 0 {
		opts.StatsInterval = defaultStatsInterval
	}
	return &Service{capturer: c, regions: regions, detector: d, opts: opts, logger: logger}
}

// Start launches the polling loop. It returns false and does nothing when the
// loop is already running.
func (s *Service) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.session = uuid.NewString()
	go s.loop(s.stop, s.done, s.session)
	return true
}

// Stop signals the loop and waits for the current cycle to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()
	close(stop)
	<-done
}

// Run starts the loop and blocks until ctx is cancelled, then stops it.
func (s *Service) Run(ctx context.Context) error {
	if !s.Start() {
		return errors.New("monitor already running")
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

// Running reports whether the loop is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Session returns the id of the current or last monitoring session.
func (s *Service) Session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Latest returns the most recent snapshot, or a zero Snapshot before the
// first cycle.
func (s *Service) Latest() Snapshot {
	snap := s.latest.Load()
	if snap == nil {
		return Snapshot{}
	}
	return *snap
}

// Changes returns the number of cycles in which a change was detected.
func (s *Service) Changes() uint64 { return s.changes.Load() }

// Stats returns loop counters.
func (s *Service) Stats() Stats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	if captures > 0 {
		avg = time.Duration(total / captures)
	}
	snap := s.Latest()
	return Stats{
		Captures:    captures,
		Failures:    s.failures.Load(),
		Changes:     s.changes.Load(),
		AvgCapture:  avg,
		LastCapture: snap.CapturedAt,
		Sequence:    snap.Sequence,
	}
}

func (s *Service) loop(stop <-chan struct{}, done chan<- struct{}, session string) {
	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("session", session)
	defer close(done)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("monitor loop panic", "panic", r, "stack", string(debug.Stack()))
			s.mu.Lock()
			if s.session == session {
				s.running = false
			}
			s.mu.Unlock()
		}
	}()
	logger.Info("monitor started", "region", s.regions.Get().String(), "interval", s.opts.Interval)
	statsTicker := time.NewTicker(s.opts.StatsInterval)
	defer statsTicker.Stop()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var prev *image.RGBA
	for {
		select {
		case <-stop:
			logger.Info("monitor stopped", "changes", s.changes.Load())
			return
		case <-statsTicker.C:
			s.logStats(logger)
			continue
		case <-timer.C:
		}
		prev = s.cycle(prev, session, logger)
		timer.Reset(s.opts.Interval)
	}
}

// cycle captures once, compares against prev and publishes a snapshot. It
// returns the image to use as prev for the next cycle.
func (s *Service) cycle(prev *image.RGBA, session string, logger *slog.Logger) *image.RGBA {
	r := s.regions.Get()
	start := time.Now()
	curr, err := s.capturer.Capture(r)
	elapsed := time.Since(start)
	seq := s.sequence.Add(1)
	snap := &Snapshot{Region: r, CapturedAt: time.Now(), Sequence: seq, Session: session}
	if err != nil {
		s.failures.Add(1)
		logger.Error("capture failed", "region", r.String(), "error", err)
		snap.Err = err
		snap.Changes = s.changes.Load()
		s.latest.Store(snap)
		return nil
	}
	s.captures.Add(1)
	s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
	snap.Image = curr

	if prev != nil {
		res, cerr := s.detector.Compare(prev, curr)
		switch {
		case cerr != nil:
			s.failures.Add(1)
			logger.Error("compare failed", "region", r.String(), "error", cerr)
			snap.Err = &capture.CaptureError{Rect: r.Rect(), Err: cerr}
		case res.Changed:
			count := s.changes.Add(1)
			snap.Changed = true
			attrs := []any{"count", count, "changed_pixels", res.ChangedPixels, "ratio", res.Ratio()}
			if s.opts.PerceptualHash {
				if dist, herr := detect.PerceptualDistance(prev, curr); herr == nil {
					attrs = append(attrs, "phash_distance", dist)
				}
			}
			logger.Info("change detected", attrs...)
		}
	}
	snap.Changes = s.changes.Load()
	s.latest.Store(snap)
	return curr
}

func (s *Service) logStats(logger *slog.Logger) {
	st := s.Stats()
	logger.Debug("monitor.stats",
		"captures", st.Captures,
		"failures", st.Failures,
		"changes", st.Changes,
		"avg_capture", st.AvgCapture,
		"last_capture", st.LastCapture,
		"sequence", st.Sequence,
	)
}
