package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_Values(t *testing.T) {
	c := DefaultConfig()
	if c.Threshold != 30 || c.IntervalMS != 1000 {
		t.Fatalf("unexpected detection defaults: threshold=%d interval=%d", c.Threshold, c.IntervalMS)
	}
	if c.RegionX != 100 || c.RegionY != 100 || c.RegionW != 800 || c.RegionH != 600 {
		t.Fatalf("unexpected region defaults: %+v", c)
	}
	if c.PreviewW != 400 || c.PreviewH != 300 {
		t.Fatalf("unexpected preview defaults: %dx%d", c.PreviewW, c.PreviewH)
	}
	if c.Interval() != time.Second {
		t.Fatalf("expected 1s interval, got %v", c.Interval())
	}
}

func TestValidate_Clamps(t *testing.T) {
	c := &Config{Threshold: 900, IntervalMS: 5, CaptureBackend: "bogus", RegionW: -3, RegionH: -1}
	_ = c.Validate()
	if c.Threshold != 255 {
		t.Fatalf("threshold not clamped: %d", c.Threshold)
	}
	if c.IntervalMS != 1000 {
		t.Fatalf("interval not reset: %d", c.IntervalMS)
	}
	if c.CaptureBackend != BackendScreenshot {
		t.Fatalf("backend not reset: %q", c.CaptureBackend)
	}
	if c.RegionW != 0 || c.RegionH != 0 {
		t.Fatalf("negative region size kept: %dx%d", c.RegionW, c.RegionH)
	}
	if c.PreviewW != 400 || c.PreviewH != 300 {
		t.Fatalf("preview size not defaulted: %dx%d", c.PreviewW, c.PreviewH)
	}
	neg := &Config{Threshold: -1}
	_ = neg.Validate()
	if neg.Threshold != 30 {
		t.Fatalf("negative threshold should reset to 30, got %d", neg.Threshold)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Threshold != 30 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.Threshold != 30 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestSaveLoad_PersistsRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.RegionX, c.RegionY, c.RegionW, c.RegionH = 5, 6, 70, 80
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.RegionX != 5 || got.RegionY != 6 || got.RegionW != 70 || got.RegionH != 80 {
		t.Fatalf("region not persisted: %+v", got)
	}
}

func TestApplyEnv_DotenvAndProcessOverride(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "SCREEN_WATCH_THRESHOLD=45\nSCREEN_WATCH_INTERVAL_MS=250\nSCREEN_WATCH_BACKEND=multidisplay\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvIntervalMS, "500")
	t.Setenv(EnvDebug, "true")

	c := DefaultConfig()
	c.ApplyEnv(envPath)
	if c.Threshold != 45 {
		t.Fatalf("threshold from .env not applied: %d", c.Threshold)
	}
	if c.IntervalMS != 500 {
		t.Fatalf("process env should win over .env, got %d", c.IntervalMS)
	}
	if c.CaptureBackend != BackendMultiDisplay {
		t.Fatalf("backend not applied: %q", c.CaptureBackend)
	}
	if !c.Debug {
		t.Fatalf("debug not applied")
	}
}

func TestApplyEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvThreshold, "loud")
	c := DefaultConfig()
	c.ApplyEnv("")
	if c.Threshold != 30 {
		t.Fatalf("invalid threshold should be ignored, got %d", c.Threshold)
	}
}
