package debug

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"testing"
	"time"
)

func TestLoggersStopOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	before := runtime.NumGoroutine()
	ctx, cancel := context.WithCancel(context.Background())
	StartGoroutineLogger(ctx, time.Millisecond, logger)
	StartMemLogger(ctx, time.Millisecond, logger)
	time.Sleep(10 * time.Millisecond)
	cancel()
	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before {
		if time.Now().After(deadline) {
			t.Fatalf("logger goroutines still running: before=%d now=%d", before, runtime.NumGoroutine())
		}
		time.Sleep(time.Millisecond)
	}
}
