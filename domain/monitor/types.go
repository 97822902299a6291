package monitor

import (
	"image"
	"time"

	"github.com/soocke/screen-watch-go/domain/region"
)

// Snapshot is the immutable result of one poll cycle. Image is nil when the
// capture failed, in which case Err holds the cause.
type Snapshot struct {
	Image      *image.RGBA
	Region     region.Region
	CapturedAt time.Time
	Sequence   uint64
	Changes    uint64
	Changed    bool
	Err        error
	Session    string
}

// Stats summarises loop behaviour for instrumentation.
type Stats struct {
	Captures    uint64
	Failures    uint64
	Changes     uint64
	AvgCapture  time.Duration
	LastCapture time.Time
	Sequence    uint64
}

// RegionSource returns the region to capture on each cycle.
type RegionSource interface {
	Get() region.Region
}

// Source provides read-only access to monitoring output.
type Source interface {
	Latest() Snapshot
	Changes() uint64
	Running() bool
}

// Controller is the lifecycle surface used by presenters.
type Controller interface {
	Source
	Start() bool
	Stop()
}
