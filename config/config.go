package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Capture backends understood by the capture package.
const (
	BackendScreenshot   = "screenshot"
	BackendMultiDisplay = "multidisplay"
)

// Environment variables read by ApplyEnv.
const (
	EnvDebug      = "SCREEN_WATCH_DEBUG"
	EnvThreshold  = "SCREEN_WATCH_THRESHOLD"
	EnvIntervalMS = "SCREEN_WATCH_INTERVAL_MS"
	EnvBackend    = "SCREEN_WATCH_BACKEND"
)

// Config holds runtime configuration for change detection and app behavior.
// Fields may be loaded from a JSON file and overridden by environment
// variables or command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Detection parameters
	Threshold       int    `json:"threshold"`
	IntervalMS      int    `json:"interval_ms"`
	CaptureBackend  string `json:"capture_backend"`
	StatsIntervalMS int    `json:"stats_interval_ms"`

	// Watched region, persisted between runs.
	RegionX int `json:"region_x"`
	RegionY int `json:"region_y"`
	RegionW int `json:"region_w"`
	RegionH int `json:"region_h"`

	// Fixed preview size.
	PreviewW int `json:"preview_w"`
	PreviewH int `json:"preview_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Threshold:       30,
		IntervalMS:      1000,
		CaptureBackend:  BackendScreenshot,
		StatsIntervalMS: 5000,
		RegionX:         100,
		RegionY:         100,
		RegionW:         800,
		RegionH:         600,
		PreviewW:        400,
		PreviewH:        300,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		c.Threshold = 30
	}
	if c.Threshold > 255 {
		c.Threshold = 255
	}
	if c.IntervalMS < 50 {
		c.IntervalMS = 1000
	}
	if c.StatsIntervalMS <= 0 {
		c.StatsIntervalMS = 5000
	}
	switch c.CaptureBackend {
	case BackendScreenshot, BackendMultiDisplay:
	default:
		c.CaptureBackend = BackendScreenshot
	}
	if c.RegionW < 0 {
		c.RegionW = 0
	}
	if c.RegionH < 0 {
		c.RegionH = 0
	}
	if c.PreviewW <= 0 || c.PreviewH <= 0 {
		c.PreviewW, c.PreviewH = 400, 300
	}
	return nil
}

// Interval returns the poll cadence as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// StatsInterval returns the cadence of monitor statistics logging.
func (c *Config) StatsInterval() time.Duration {
	return time.Duration(c.StatsIntervalMS) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv overrides fields from a .env file (when envPath exists) and the
// process environment. Process variables win over .env values. Values that
// fail to parse are ignored.
func (c *Config) ApplyEnv(envPath string) {
	values := map[string]string{}
	if envPath != "" {
		if m, err := godotenv.Read(envPath); err == nil {
			values = m
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}
		v, ok := values[key]
		return strings.TrimSpace(v), ok
	}
	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v, ok := lookup(EnvThreshold); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Threshold = n
		}
	}
	if v, ok := lookup(EnvIntervalMS); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.IntervalMS = n
		}
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.CaptureBackend = strings.ToLower(v)
	}
	_ = c.Validate()
}
